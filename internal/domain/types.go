// Package domain contains the core business entities and types for symptom-based
// disease risk estimation: knowledge-base profiles, prediction results, Bayesian
// posterior results and the risk-level taxonomy shared by the engine, the HTTP
// layer and the history store.
package domain

import (
	"time"
)

// RiskLevel is the persisted risk category derived from a posterior percentage.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// RiskLevels lists all levels in ascending severity order. The dashboard
// distribution and the percentage reconciliation both rely on this order.
var RiskLevels = [4]RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskCritical}

// IsValid reports whether the RiskLevel is one of the four known categories.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	default:
		return false
	}
}

// TestResult represents the outcome of a diagnostic test in the Bayesian
// test-result posterior calculation.
type TestResult string

const (
	TestPositive TestResult = "positive"
	TestNegative TestResult = "negative"
)

// IsValid reports whether the TestResult is positive or negative.
func (t TestResult) IsValid() bool {
	return t == TestPositive || t == TestNegative
}

// BMICategory is the display label for a BMI band.
type BMICategory string

const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// SymptomWeight is one entry of a disease profile. Order within a profile is
// significant: it decides tie-breaks when ranking missing symptoms.
type SymptomWeight struct {
	Key    string  `json:"key"`
	Weight float64 `json:"weight"`
}

// DiseaseProfile is an immutable disease entry in the knowledge base: a fixed
// set of symptom weights in [0,1] plus a bias term (typically negative).
// Profiles are validated once at construction and never mutated afterwards.
type DiseaseProfile struct {
	Key      string          `json:"key"`
	Bias     float64         `json:"bias"`
	Symptoms []SymptomWeight `json:"symptoms"`
}

// Demographics carries the optional per-request demographic inputs for scoring.
// Nil fields mean "not provided" and contribute nothing to the score.
type Demographics struct {
	Age      *int     `json:"age,omitempty"`
	HeightCM *float64 `json:"height_cm,omitempty"`
	WeightKG *float64 `json:"weight_kg,omitempty"`
}

// PredictionResult is the value object produced by a single scoring call.
// All probability-valued fields lie in [0,1].
type PredictionResult struct {
	Disease               string      `json:"disease"`
	RawProbability        float64     `json:"raw_probability"`
	CalibratedProbability float64     `json:"calibrated_probability"`
	Prior                 float64     `json:"prior_probability"`
	Likelihood            float64     `json:"likelihood"`
	SymptomsMatched       int         `json:"symptoms_matched"`
	TotalSymptoms         int         `json:"total_symptoms"`
	Confidence            float64     `json:"confidence_score"`
	BMI                   *float64    `json:"bmi,omitempty"`
	BMICategory           BMICategory `json:"bmi_category,omitempty"`
	BMIEffect             float64     `json:"bmi_effect"`
}

// BayesianResult is the outcome of the prior/likelihood posterior calculation.
type BayesianResult struct {
	Prior             float64 `json:"prior"`
	Likelihood        float64 `json:"likelihood"`
	FalsePositiveRate float64 `json:"false_positive_rate"`
	Posterior         float64 `json:"posterior"`
}

// TestPosteriorResult is the outcome of the sensitivity/specificity posterior
// calculation, including which test-result branch was evaluated.
type TestPosteriorResult struct {
	Prior             float64    `json:"prior"`
	Sensitivity       float64    `json:"sensitivity"`
	Specificity       float64    `json:"specificity"`
	FalsePositiveRate float64    `json:"false_positive_rate"`
	Posterior         float64    `json:"posterior"`
	TestResult        TestResult `json:"test_result"`
}

// MissingSymptom is a clinically important symptom absent from a patient's
// reported set. Produced and consumed within a single request.
type MissingSymptom struct {
	Key    string  `json:"key"`
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// RiskAssessment is the display form of a risk level.
type RiskAssessment struct {
	Level       string    `json:"level"` // Low | Moderate | High | Critical
	Key         RiskLevel `json:"key"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
}

// RiskBucket is one slice of the aggregate dashboard distribution.
type RiskBucket struct {
	Level      RiskLevel `json:"level"`
	Count      int       `json:"count"`
	Percentage int       `json:"percentage"`
}

// RiskDistribution is the aggregate risk breakdown shown on the clinician
// dashboard. When TotalPatients is positive the percentages sum to exactly 100;
// when it is zero they are all zero.
type RiskDistribution struct {
	TotalPatients int           `json:"total_patients"`
	Buckets       [4]RiskBucket `json:"distribution"`
	GeneratedAt   time.Time     `json:"generated_at"`
}

// PredictionRecord is the reduced projection of a PredictionResult persisted by
// the history store after each scoring call.
type PredictionRecord struct {
	ID             string    `json:"id"`
	Disease        string    `json:"disease"`
	Symptoms       []string  `json:"symptoms"`
	RawProbability float64   `json:"raw_probability"`
	Posterior      float64   `json:"posterior"`
	Confidence     float64   `json:"confidence"`
	RiskLevel      RiskLevel `json:"risk_level"`
	Age            *int      `json:"age,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
