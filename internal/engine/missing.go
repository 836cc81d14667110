package engine

import (
	"sort"

	"github.com/disease-risk-server/internal/domain"
	"github.com/disease-risk-server/internal/knowledge"
)

// Missing-symptom selection thresholds.
const (
	missingWeightThreshold = 0.75
	missingLimit           = 5
)

// MissingAnalyzer surfaces clinically significant symptoms a patient has not
// reported, as follow-up prompts alongside a prediction.
type MissingAnalyzer struct {
	base *knowledge.Base
}

// NewMissingAnalyzer creates a MissingAnalyzer over the given knowledge base.
func NewMissingAnalyzer(base *knowledge.Base) *MissingAnalyzer {
	return &MissingAnalyzer{base: base}
}

// Missing returns up to 5 high-weight symptoms of the disease that are absent
// from the reported set, sorted by weight descending with ties keeping the
// profile's insertion order. An unresolvable disease yields an empty slice,
// not an error: missing-symptom hints are advisory and must never fail a
// prediction that already succeeded on another path.
func (a *MissingAnalyzer) Missing(disease string, present []string) []domain.MissingSymptom {
	profile, err := a.base.Profile(disease)
	if err != nil {
		return []domain.MissingSymptom{}
	}

	reported := make(map[string]struct{}, len(present))
	for _, sym := range present {
		reported[sym] = struct{}{}
	}

	missing := make([]domain.MissingSymptom, 0, missingLimit)
	for _, sw := range profile.Symptoms {
		if sw.Weight < missingWeightThreshold {
			continue
		}
		if _, ok := reported[sw.Key]; ok {
			continue
		}
		missing = append(missing, domain.MissingSymptom{
			Key:    sw.Key,
			Name:   a.base.SymptomName(sw.Key),
			Weight: sw.Weight,
		})
	}

	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].Weight > missing[j].Weight
	})

	if len(missing) > missingLimit {
		missing = missing[:missingLimit]
	}
	return missing
}
