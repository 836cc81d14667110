package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/disease-risk-server/internal/domain"
)

func TestPosteriorFromPriorLikelihood(t *testing.T) {
	t.Run("standard inputs", func(t *testing.T) {
		res := PosteriorFromPriorLikelihood(0.3, 0.8, 0.05)
		// (0.8*0.3) / (0.8*0.3 + 0.05*0.7) = 0.24/0.275
		assert.InDelta(t, 0.24/0.275, res.Posterior, 1e-12)
		assert.Equal(t, 0.3, res.Prior)
		assert.Equal(t, 0.8, res.Likelihood)
		assert.Equal(t, 0.05, res.FalsePositiveRate)
	})

	t.Run("zero denominator coerced to zero", func(t *testing.T) {
		res := PosteriorFromPriorLikelihood(0, 0.8, 0)
		assert.Zero(t, res.Posterior)
	})

	t.Run("out of range inputs clamped", func(t *testing.T) {
		res := PosteriorFromPriorLikelihood(1.5, -0.2, 0.05)
		assert.Equal(t, 1.0, res.Prior)
		assert.Equal(t, 0.0, res.Likelihood)
		assert.GreaterOrEqual(t, res.Posterior, 0.0)
		assert.LessOrEqual(t, res.Posterior, 1.0)
	})

	t.Run("certain prior yields certain posterior", func(t *testing.T) {
		res := PosteriorFromPriorLikelihood(1, 0.8, 0.05)
		assert.InDelta(t, 1.0, res.Posterior, 1e-12)
	})
}

func TestPosteriorFromTest(t *testing.T) {
	t.Run("positive result", func(t *testing.T) {
		res, err := PosteriorFromTest(0.1, 0.9, 0.95, domain.TestPositive)
		require.NoError(t, err)
		// (0.9*0.1) / (0.09 + 0.05*0.9) = 0.09/0.135
		assert.InDelta(t, 0.09/0.135, res.Posterior, 1e-12)
		assert.InDelta(t, 0.05, res.FalsePositiveRate, 1e-12)
		assert.Equal(t, domain.TestPositive, res.TestResult)
	})

	t.Run("negative result", func(t *testing.T) {
		res, err := PosteriorFromTest(0.1, 0.9, 0.95, domain.TestNegative)
		require.NoError(t, err)
		// (0.1*0.1) / (0.01 + 0.95*0.9) = 0.01/0.865
		assert.InDelta(t, 0.01/0.865, res.Posterior, 1e-12)
		assert.Equal(t, domain.TestNegative, res.TestResult)
	})

	t.Run("negative result lowers posterior below prior", func(t *testing.T) {
		res, err := PosteriorFromTest(0.3, 0.9, 0.9, domain.TestNegative)
		require.NoError(t, err)
		assert.Less(t, res.Posterior, 0.3)
	})

	t.Run("invalid result rejected", func(t *testing.T) {
		_, err := PosteriorFromTest(0.1, 0.9, 0.95, domain.TestResult("inconclusive"))
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "test_result", ve.Field)
	})

	t.Run("zero denominator coerced to zero", func(t *testing.T) {
		// prior=1, sensitivity=0, positive: num=0, den=0.
		res, err := PosteriorFromTest(1, 0, 0.95, domain.TestPositive)
		require.NoError(t, err)
		assert.Zero(t, res.Posterior)
	})

	t.Run("out of range clamped not rejected", func(t *testing.T) {
		res, err := PosteriorFromTest(1.7, 0.9, 0.95, domain.TestPositive)
		require.NoError(t, err)
		assert.Equal(t, 1.0, res.Prior)
	})
}

func TestPosteriorFromTestStrict(t *testing.T) {
	t.Run("valid inputs pass through", func(t *testing.T) {
		lenient, err := PosteriorFromTest(0.1, 0.9, 0.95, domain.TestPositive)
		require.NoError(t, err)
		strict, err := PosteriorFromTestStrict(0.1, 0.9, 0.95, domain.TestPositive)
		require.NoError(t, err)
		assert.Equal(t, lenient, strict)
	})

	t.Run("out of range rejected", func(t *testing.T) {
		var ve *domain.ValidationError

		_, err := PosteriorFromTestStrict(1.2, 0.9, 0.95, domain.TestPositive)
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "prior", ve.Field)

		_, err = PosteriorFromTestStrict(0.1, -0.1, 0.95, domain.TestPositive)
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "sensitivity", ve.Field)

		_, err = PosteriorFromTestStrict(0.1, 0.9, 1.01, domain.TestPositive)
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "specificity", ve.Field)
	})

	t.Run("zero denominator is an error", func(t *testing.T) {
		_, err := PosteriorFromTestStrict(1, 0, 0.95, domain.TestPositive)
		var de *domain.DegenerateError
		require.ErrorAs(t, err, &de)
	})
}

func TestRiskFromPercentage(t *testing.T) {
	tests := []struct {
		p     float64
		level string
		key   domain.RiskLevel
		color string
	}{
		{0, "Low", domain.RiskLow, "success"},
		{29.99, "Low", domain.RiskLow, "success"},
		{30, "Moderate", domain.RiskMedium, "warning"},
		{59.99, "Moderate", domain.RiskMedium, "warning"},
		{60, "High", domain.RiskHigh, "danger"},
		{84.99, "High", domain.RiskHigh, "danger"},
		{85, "Critical", domain.RiskCritical, "dark"},
		{100, "Critical", domain.RiskCritical, "dark"},
	}

	for _, tt := range tests {
		got := RiskFromPercentage(tt.p)
		assert.Equal(t, tt.level, got.Level, "p=%v", tt.p)
		assert.Equal(t, tt.key, got.Key, "p=%v", tt.p)
		assert.Equal(t, tt.color, got.Color, "p=%v", tt.p)
		assert.NotEmpty(t, got.Description, "p=%v", tt.p)
	}
}
