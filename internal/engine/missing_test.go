package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disease-risk-server/internal/domain"
	"github.com/disease-risk-server/internal/knowledge"
)

func newTestAnalyzer(t *testing.T) *MissingAnalyzer {
	t.Helper()
	base, err := knowledge.NewBase()
	require.NoError(t, err)
	return NewMissingAnalyzer(base)
}

func TestMissingSortedByWeight(t *testing.T) {
	a := newTestAnalyzer(t)

	// Diabetes has four symptoms weighted >= 0.75; none reported.
	missing := a.Missing("diabetes", nil)
	require.Len(t, missing, 4)
	assert.Equal(t, "frequent_urination", missing[0].Key)
	assert.Equal(t, "increased_thirst", missing[1].Key)
	assert.Equal(t, "unexplained_weight_loss", missing[2].Key)
	assert.Equal(t, "extreme_hunger", missing[3].Key)

	for i := 1; i < len(missing); i++ {
		assert.GreaterOrEqual(t, missing[i-1].Weight, missing[i].Weight)
	}
	for _, m := range missing {
		assert.GreaterOrEqual(t, m.Weight, 0.75)
		assert.NotEmpty(t, m.Name)
	}
}

func TestMissingExcludesReported(t *testing.T) {
	a := newTestAnalyzer(t)

	missing := a.Missing("diabetes", []string{"frequent_urination", "increased_thirst"})
	require.Len(t, missing, 2)
	assert.Equal(t, "unexplained_weight_loss", missing[0].Key)
	assert.Equal(t, "extreme_hunger", missing[1].Key)
}

func TestMissingCappedAtFive(t *testing.T) {
	base, err := knowledge.NewBaseFromProfiles([]domain.DiseaseProfile{
		{Key: "synthetic", Bias: -2, Symptoms: []domain.SymptomWeight{
			{Key: "s1", Weight: 0.8},
			{Key: "s2", Weight: 0.9},
			{Key: "s3", Weight: 0.75},
			{Key: "s4", Weight: 0.95},
			{Key: "s5", Weight: 0.85},
			{Key: "s6", Weight: 0.78},
			{Key: "s7", Weight: 0.5},
		}},
	})
	require.NoError(t, err)
	a := NewMissingAnalyzer(base)

	missing := a.Missing("synthetic", nil)
	require.Len(t, missing, 5)
	assert.Equal(t, "s4", missing[0].Key)
	assert.Equal(t, "s2", missing[1].Key)
	// The lowest-weight qualifier s3 falls off the end; s7 never qualifies.
	for _, m := range missing {
		assert.NotEqual(t, "s3", m.Key)
		assert.NotEqual(t, "s7", m.Key)
	}
}

func TestMissingTiesKeepProfileOrder(t *testing.T) {
	base, err := knowledge.NewBaseFromProfiles([]domain.DiseaseProfile{
		{Key: "tied", Bias: -2, Symptoms: []domain.SymptomWeight{
			{Key: "first", Weight: 0.8},
			{Key: "second", Weight: 0.8},
			{Key: "third", Weight: 0.8},
		}},
	})
	require.NoError(t, err)
	a := NewMissingAnalyzer(base)

	missing := a.Missing("tied", nil)
	require.Len(t, missing, 3)
	assert.Equal(t, "first", missing[0].Key)
	assert.Equal(t, "second", missing[1].Key)
	assert.Equal(t, "third", missing[2].Key)
}

func TestMissingUnknownDiseaseIsEmptyNotError(t *testing.T) {
	a := newTestAnalyzer(t)

	missing := a.Missing("unknown_condition", []string{"fatigue"})
	assert.NotNil(t, missing)
	assert.Empty(t, missing)
}
