package engine

import (
	"github.com/disease-risk-server/internal/domain"
)

// DefaultFalsePositiveRate is used by the prior/likelihood posterior when the
// caller does not supply a rate.
const DefaultFalsePositiveRate = 0.05

// PosteriorFromPriorLikelihood computes the Bayesian posterior from a prior, a
// likelihood and a false-positive rate. Inputs are clamped to [0,1] and a zero
// denominator yields a posterior of 0. This is the lenient policy used by the
// prediction pipeline, where the inputs come from the scorer and are already
// well-formed.
func PosteriorFromPriorLikelihood(prior, likelihood, falsePositiveRate float64) domain.BayesianResult {
	prior = clamp(prior, 0, 1)
	likelihood = clamp(likelihood, 0, 1)
	falsePositiveRate = clamp(falsePositiveRate, 0, 1)

	num := likelihood * prior
	den := num + falsePositiveRate*(1-prior)

	posterior := 0.0
	if den > 0 {
		posterior = num / den
	}

	return domain.BayesianResult{
		Prior:             prior,
		Likelihood:        likelihood,
		FalsePositiveRate: falsePositiveRate,
		Posterior:         posterior,
	}
}

// PosteriorFromTest computes the posterior probability of disease given a
// diagnostic test outcome and the test's sensitivity and specificity. The
// test result must be valid; the numeric inputs are clamped to [0,1] and a
// zero denominator yields a posterior of 0 (lenient policy).
func PosteriorFromTest(prior, sensitivity, specificity float64, result domain.TestResult) (domain.TestPosteriorResult, error) {
	if !result.IsValid() {
		return domain.TestPosteriorResult{}, domain.NewValidationError(
			"test_result", "must be \"positive\" or \"negative\"", string(result))
	}

	prior = clamp(prior, 0, 1)
	sensitivity = clamp(sensitivity, 0, 1)
	specificity = clamp(specificity, 0, 1)

	res, _ := testPosterior(prior, sensitivity, specificity, result)
	return res, nil
}

// PosteriorFromTestStrict is the strict-policy variant: out-of-range numeric
// inputs are rejected with a validation error instead of being clamped, and a
// zero denominator is reported as a degenerate-denominator error instead of
// being coerced to 0. Used by the standalone probability-calculator surface,
// where inputs are user-entered rather than scorer-derived.
func PosteriorFromTestStrict(prior, sensitivity, specificity float64, result domain.TestResult) (domain.TestPosteriorResult, error) {
	if !result.IsValid() {
		return domain.TestPosteriorResult{}, domain.NewValidationError(
			"test_result", "must be \"positive\" or \"negative\"", string(result))
	}
	if prior < 0 || prior > 1 {
		return domain.TestPosteriorResult{}, domain.NewValidationError(
			"prior", "must be between 0 and 1", prior)
	}
	if sensitivity < 0 || sensitivity > 1 {
		return domain.TestPosteriorResult{}, domain.NewValidationError(
			"sensitivity", "must be between 0 and 1", sensitivity)
	}
	if specificity < 0 || specificity > 1 {
		return domain.TestPosteriorResult{}, domain.NewValidationError(
			"specificity", "must be between 0 and 1", specificity)
	}

	res, den := testPosterior(prior, sensitivity, specificity, result)
	if den == 0 {
		return domain.TestPosteriorResult{}, &domain.DegenerateError{Op: "posterior_from_test"}
	}
	return res, nil
}

func testPosterior(prior, sensitivity, specificity float64, result domain.TestResult) (domain.TestPosteriorResult, float64) {
	var num, den float64
	if result == domain.TestPositive {
		num = sensitivity * prior
		den = num + (1-specificity)*(1-prior)
	} else {
		num = (1 - sensitivity) * prior
		den = num + specificity*(1-prior)
	}

	posterior := 0.0
	if den > 0 {
		posterior = num / den
	}

	return domain.TestPosteriorResult{
		Prior:             prior,
		Sensitivity:       sensitivity,
		Specificity:       specificity,
		FalsePositiveRate: 1 - specificity,
		Posterior:         posterior,
		TestResult:        result,
	}, den
}

// RiskFromPercentage maps a posterior percentage in [0,100] onto the 4-way
// risk taxonomy. Boundaries are half-open: exactly 30 is Moderate, exactly 60
// is High, exactly 85 is Critical.
func RiskFromPercentage(p float64) domain.RiskAssessment {
	switch {
	case p < 30:
		return domain.RiskAssessment{
			Level:       "Low",
			Key:         domain.RiskLow,
			Color:       "success",
			Description: "Low probability of disease",
		}
	case p < 60:
		return domain.RiskAssessment{
			Level:       "Moderate",
			Key:         domain.RiskMedium,
			Color:       "warning",
			Description: "Moderate probability - consider further testing",
		}
	case p < 85:
		return domain.RiskAssessment{
			Level:       "High",
			Key:         domain.RiskHigh,
			Color:       "danger",
			Description: "High probability - immediate medical consultation recommended",
		}
	default:
		return domain.RiskAssessment{
			Level:       "Critical",
			Key:         domain.RiskCritical,
			Color:       "dark",
			Description: "Critical risk level - urgent medical attention required",
		}
	}
}
