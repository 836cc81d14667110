// Package knowledge holds the static disease knowledge base: per-disease
// symptom weight profiles, the fuzzy disease-key resolver and the symptom
// display-name index. A Base is built once at startup and is read-only
// afterwards, so it is safe for concurrent use without synchronization.
package knowledge

import (
	"fmt"
	"strings"

	"github.com/disease-risk-server/internal/domain"
)

// symptomNameOverrides maps symptom keys whose auto-generated title-cased name
// reads badly to an explicit display name. Everything else falls back to
// underscores-to-spaces plus title casing.
var symptomNameOverrides = map[string]string{
	"loss_taste_smell": "Loss of Taste or Smell",
	"shortness_breath": "Shortness of Breath",
	"pain_arms_neck":   "Pain in Arms or Neck",
}

// Base is the immutable knowledge base. It keeps the profiles in insertion
// order and maintains two lookup indexes built once at construction: an
// exact-match index on normalized keys and an underscore-stripped index for
// fuzzy resolution.
type Base struct {
	profiles []domain.DiseaseProfile
	byKey    map[string]int       // normalized key -> profiles index
	stripped map[string]int       // key with underscores removed -> profiles index
	weights  []map[string]float64 // per-profile symptom weight lookup
	names    map[string]string    // symptom key -> display name
}

// NewBase builds the knowledge base from the built-in profile table.
func NewBase() (*Base, error) {
	return NewBaseFromProfiles(defaultProfiles)
}

// NewBaseFromProfiles builds a knowledge base from an explicit profile list,
// validating every weight. Mainly useful for tests with small fixtures.
func NewBaseFromProfiles(profiles []domain.DiseaseProfile) (*Base, error) {
	b := &Base{
		profiles: profiles,
		byKey:    make(map[string]int, len(profiles)),
		stripped: make(map[string]int, len(profiles)),
		weights:  make([]map[string]float64, len(profiles)),
		names:    make(map[string]string),
	}

	for i, p := range profiles {
		if p.Key == "" {
			return nil, fmt.Errorf("profile %d: empty disease key", i)
		}
		if _, dup := b.byKey[p.Key]; dup {
			return nil, fmt.Errorf("duplicate disease key %q", p.Key)
		}
		b.byKey[p.Key] = i

		// First profile wins for a stripped-form collision, matching the
		// insertion-order semantics of the fuzzy lookup.
		s := strings.ReplaceAll(p.Key, "_", "")
		if _, ok := b.stripped[s]; !ok {
			b.stripped[s] = i
		}

		w := make(map[string]float64, len(p.Symptoms))
		for _, sw := range p.Symptoms {
			if sw.Weight < 0 || sw.Weight > 1 {
				return nil, fmt.Errorf("disease %q: symptom %q weight %v outside [0,1]", p.Key, sw.Key, sw.Weight)
			}
			if _, dup := w[sw.Key]; dup {
				return nil, fmt.Errorf("disease %q: duplicate symptom %q", p.Key, sw.Key)
			}
			w[sw.Key] = sw.Weight
			if _, ok := b.names[sw.Key]; !ok {
				b.names[sw.Key] = displayName(sw.Key)
			}
		}
		b.weights[i] = w
	}

	return b, nil
}

// NormalizeKey lowercases a disease name and replaces spaces and hyphens with
// underscores, producing the canonical lookup key form.
func NormalizeKey(name string) string {
	key := strings.ToLower(name)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

// Resolve maps a user-supplied disease name to a knowledge-base key. It tries
// an exact match on the normalized form, then an underscore-stripped match
// against the index built at load time. A miss returns *domain.NotFoundError
// carrying the original input and the normalized attempt.
func (b *Base) Resolve(name string) (string, error) {
	key := NormalizeKey(name)
	if _, ok := b.byKey[key]; ok {
		return key, nil
	}
	if i, ok := b.stripped[strings.ReplaceAll(key, "_", "")]; ok {
		return b.profiles[i].Key, nil
	}
	return "", &domain.NotFoundError{Name: name, Key: key}
}

// Diseases returns all disease keys in insertion order. The returned slice is
// a copy and stable across calls.
func (b *Base) Diseases() []string {
	keys := make([]string, len(b.profiles))
	for i, p := range b.profiles {
		keys[i] = p.Key
	}
	return keys
}

// Profile resolves a disease name and returns its profile.
func (b *Base) Profile(name string) (*domain.DiseaseProfile, error) {
	key, err := b.Resolve(name)
	if err != nil {
		return nil, err
	}
	return &b.profiles[b.byKey[key]], nil
}

// Weight returns the weight of a symptom within a resolved disease key.
// The key must come from Resolve; an unknown key reports no match.
func (b *Base) Weight(diseaseKey, symptom string) (float64, bool) {
	i, ok := b.byKey[diseaseKey]
	if !ok {
		return 0, false
	}
	w, ok := b.weights[i][symptom]
	return w, ok
}

// SymptomsFor resolves a disease name and returns its symptoms as ordered
// (key, display name) pairs.
func (b *Base) SymptomsFor(name string) ([]domain.SymptomWeight, map[string]string, error) {
	p, err := b.Profile(name)
	if err != nil {
		return nil, nil, err
	}
	names := make(map[string]string, len(p.Symptoms))
	for _, sw := range p.Symptoms {
		names[sw.Key] = b.SymptomName(sw.Key)
	}
	return p.Symptoms, names, nil
}

// SymptomName returns the display name for a symptom key, falling back to the
// derived form for keys outside the index.
func (b *Base) SymptomName(key string) string {
	if name, ok := b.names[key]; ok {
		return name
	}
	return displayName(key)
}

// displayName derives a human-readable label from a symptom key, honoring the
// explicit override table first.
func displayName(key string) string {
	if name, ok := symptomNameOverrides[key]; ok {
		return name
	}
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
