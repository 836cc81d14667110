package knowledge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disease-risk-server/internal/domain"
)

func TestNewBase(t *testing.T) {
	base, err := NewBase()
	require.NoError(t, err)

	keys := base.Diseases()
	assert.NotEmpty(t, keys)
	assert.Equal(t, "diabetes", keys[0])
	assert.Equal(t, "hypertension", keys[1])
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase passthrough", "diabetes", "diabetes"},
		{"spaces to underscores", "Heart Disease", "heart_disease"},
		{"hyphens to underscores", "COVID-19", "covid_19"},
		{"mixed separators", "Hepatitis-B Virus", "hepatitis_b_virus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKey(tt.input))
		})
	}
}

func TestBaseResolve(t *testing.T) {
	base, err := NewBase()
	require.NoError(t, err)

	t.Run("exact match after normalization", func(t *testing.T) {
		key, err := base.Resolve("Heart Disease")
		require.NoError(t, err)
		assert.Equal(t, "heart_disease", key)
	})

	t.Run("underscore-stripped match", func(t *testing.T) {
		// "COVID-19" normalizes to "covid_19", which only matches the
		// stored "covid19" key once underscores are stripped.
		key, err := base.Resolve("COVID-19")
		require.NoError(t, err)
		assert.Equal(t, "covid19", key)
	})

	t.Run("unknown disease", func(t *testing.T) {
		_, err := base.Resolve("Dragon Pox")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))

		var nfe *domain.NotFoundError
		require.ErrorAs(t, err, &nfe)
		assert.Equal(t, "Dragon Pox", nfe.Name)
		assert.Equal(t, "dragon_pox", nfe.Key)
	})
}

func TestBaseDiseasesOrderStable(t *testing.T) {
	base, err := NewBase()
	require.NoError(t, err)

	first := base.Diseases()
	second := base.Diseases()
	assert.Equal(t, first, second)

	// Mutating the returned slice must not affect the base.
	first[0] = "mutated"
	assert.Equal(t, second, base.Diseases())
}

func TestBaseSymptomsFor(t *testing.T) {
	base, err := NewBase()
	require.NoError(t, err)

	symptoms, names, err := base.SymptomsFor("diabetes")
	require.NoError(t, err)
	require.NotEmpty(t, symptoms)

	assert.Equal(t, "increased_thirst", symptoms[0].Key)
	assert.Equal(t, "Increased Thirst", names["increased_thirst"])

	_, _, err = base.SymptomsFor("unknown_condition")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSymptomDisplayNames(t *testing.T) {
	base, err := NewBase()
	require.NoError(t, err)

	tests := []struct {
		key      string
		expected string
	}{
		{"fatigue", "Fatigue"},
		{"chest_pain", "Chest Pain"},
		{"loss_taste_smell", "Loss of Taste or Smell"},
		{"shortness_breath", "Shortness of Breath"},
		{"pain_arms_neck", "Pain in Arms or Neck"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, base.SymptomName(tt.key), "key %s", tt.key)
	}
}

func TestBaseWeight(t *testing.T) {
	base, err := NewBase()
	require.NoError(t, err)

	w, ok := base.Weight("diabetes", "frequent_urination")
	assert.True(t, ok)
	assert.InDelta(t, 0.9, w, 1e-12)

	_, ok = base.Weight("diabetes", "no_such_symptom")
	assert.False(t, ok)

	_, ok = base.Weight("no_such_disease", "fatigue")
	assert.False(t, ok)
}

func TestNewBaseFromProfilesValidation(t *testing.T) {
	t.Run("weight above one rejected", func(t *testing.T) {
		_, err := NewBaseFromProfiles([]domain.DiseaseProfile{
			{Key: "bad", Bias: -1, Symptoms: []domain.SymptomWeight{{Key: "x", Weight: 1.2}}},
		})
		assert.Error(t, err)
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		_, err := NewBaseFromProfiles([]domain.DiseaseProfile{
			{Key: "bad", Bias: -1, Symptoms: []domain.SymptomWeight{{Key: "x", Weight: -0.1}}},
		})
		assert.Error(t, err)
	})

	t.Run("duplicate disease key rejected", func(t *testing.T) {
		_, err := NewBaseFromProfiles([]domain.DiseaseProfile{
			{Key: "dup", Bias: -1},
			{Key: "dup", Bias: -2},
		})
		assert.Error(t, err)
	})

	t.Run("duplicate symptom key rejected", func(t *testing.T) {
		_, err := NewBaseFromProfiles([]domain.DiseaseProfile{
			{Key: "d", Bias: -1, Symptoms: []domain.SymptomWeight{
				{Key: "x", Weight: 0.5},
				{Key: "x", Weight: 0.6},
			}},
		})
		assert.Error(t, err)
	})
}
