// Package engine implements the prediction and risk-aggregation core: the
// probability scorer, the Bayesian posterior calculator, the missing-symptom
// analyzer and the percentage reconciler. Every exported function here is pure
// over the immutable knowledge base, so concurrent calls need no locking.
package engine

import (
	"math"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/disease-risk-server/internal/domain"
	"github.com/disease-risk-server/internal/knowledge"
)

// Scoring constants. The temperature softens the logit before the sigmoid so
// the calibrated probability is pulled toward 0.5 relative to the raw one.
const (
	calibrationTemperature = 1.8

	ageSeniorAdjustment = 0.5
	ageYouthAdjustment  = -0.5

	priorFloor   = 0.05
	priorCeiling = 0.95
)

// BMI step-function effects on the logit, keyed by band.
const (
	bmiUnderweightEffect = 0.25
	bmiNormalEffect      = 0.0
	bmiOverweightEffect  = 0.35
	bmiObeseEffect       = 0.6
)

// Scorer computes per-disease probability scores from reported symptoms and
// optional demographics.
type Scorer struct {
	base   *knowledge.Base
	logger *logrus.Logger
}

// NewScorer creates a Scorer over the given knowledge base.
func NewScorer(base *knowledge.Base, logger *logrus.Logger) *Scorer {
	return &Scorer{base: base, logger: logger}
}

// Score computes a PredictionResult for one disease. The disease name is
// resolved fuzzily; an unresolvable name returns *domain.NotFoundError. An
// empty or fully unmatched symptom set is not an error and yields the
// bias-only probability.
func (s *Scorer) Score(disease string, symptoms []string, demo domain.Demographics) (*domain.PredictionResult, error) {
	key, err := s.base.Resolve(disease)
	if err != nil {
		return nil, err
	}
	profile, err := s.base.Profile(key)
	if err != nil {
		return nil, err
	}

	z := profile.Bias

	if demo.Age != nil {
		switch {
		case *demo.Age > 50:
			z += ageSeniorAdjustment
		case *demo.Age < 20:
			z += ageYouthAdjustment
		}
	}

	var (
		bmi         *float64
		bmiCategory domain.BMICategory
		bmiEffect   float64
	)
	if demo.HeightCM != nil && demo.WeightKG != nil {
		v := ComputeBMI(*demo.HeightCM, *demo.WeightKG)
		bmi = &v
		bmiCategory, bmiEffect = classifyBMI(v)
		z += bmiEffect
	}

	present := make(map[string]struct{}, len(symptoms))
	for _, sym := range symptoms {
		present[sym] = struct{}{}
	}

	matched := 0
	for _, sw := range profile.Symptoms {
		if _, ok := present[sw.Key]; ok {
			z += sw.Weight
			matched++
		}
	}

	raw := sigmoid(z)
	calibrated := sigmoid(z / calibrationTemperature)

	prior := clamp(raw, priorFloor, priorCeiling)
	likelihood := 0.75 + raw*0.20

	// The bonus interval is closed at 30: a BMI of exactly 30.0 is Obese
	// for the category step but earns no confidence bonus.
	confidence := 0.5*math.Min(1, float64(matched)/5) + 0.4*raw
	if bmi != nil && (*bmi < 18.5 || *bmi > 30) {
		confidence += 0.1
	}

	return &domain.PredictionResult{
		Disease:               key,
		RawProbability:        raw,
		CalibratedProbability: calibrated,
		Prior:                 prior,
		Likelihood:            likelihood,
		SymptomsMatched:       matched,
		TotalSymptoms:         len(symptoms),
		Confidence:            confidence,
		BMI:                   bmi,
		BMICategory:           bmiCategory,
		BMIEffect:             bmiEffect,
	}, nil
}

// PredictAll scores every known disease against the symptom set and returns
// the results sorted by calibrated probability descending. A disease whose
// scoring fails is logged and skipped; the batch never aborts.
func (s *Scorer) PredictAll(symptoms []string, demo domain.Demographics) []*domain.PredictionResult {
	keys := s.base.Diseases()
	results := make([]*domain.PredictionResult, 0, len(keys))
	for _, key := range keys {
		res, err := s.Score(key, symptoms, demo)
		if err != nil {
			s.logger.WithFields(logrus.Fields{
				"disease": key,
				"error":   err.Error(),
			}).Warn("Skipping disease in batch prediction")
			continue
		}
		results = append(results, res)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CalibratedProbability > results[j].CalibratedProbability
	})
	return results
}

// ComputeBMI returns weight in kilograms divided by height in meters squared.
func ComputeBMI(heightCM, weightKG float64) float64 {
	m := heightCM / 100
	return weightKG / (m * m)
}

// classifyBMI maps a BMI value onto its band label and logit effect. Bands are
// half-open: [18.5,25) is Normal, [25,30) is Overweight.
func classifyBMI(bmi float64) (domain.BMICategory, float64) {
	switch {
	case bmi < 18.5:
		return domain.BMIUnderweight, bmiUnderweightEffect
	case bmi < 25:
		return domain.BMINormal, bmiNormalEffect
	case bmi < 30:
		return domain.BMIOverweight, bmiOverweightEffect
	default:
		return domain.BMIObese, bmiObeseEffect
	}
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
