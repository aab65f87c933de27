// Package normalize maps raw skill mentions onto canonical ontology entries.
package normalize

import (
	"strings"
	"unicode"

	"github.com/kailas-cloud/skillgap/internal/domain/skill"
	"github.com/kailas-cloud/skillgap/internal/ontology"
)

// Service normalizes free-form skill mentions against the ontology.
// Pure computation over the read-only store; safe for concurrent use.
type Service struct {
	store *ontology.Store

	terms     []string
	termIndex map[string]*termMatcher
}

// New creates a normalizer bound to an ontology store.
func New(store *ontology.Store) *Service {
	s := &Service{store: store}
	s.compileTerms()
	return s
}

// Normalize resolves one raw mention. Ontology hits carry the canonical
// name and a tier-based confidence; unknown mentions fall back to a
// title-cased form with low confidence, so no input is ever dropped.
func (s *Service) Normalize(raw string) skill.Match {
	trimmed := strings.TrimSpace(raw)

	sk, tier := s.store.Lookup(trimmed)
	if sk != nil {
		return skill.Match{
			Raw:        raw,
			Name:       sk.Name,
			Category:   sk.Category,
			Confidence: confidenceForTier(tier),
			InOntology: true,
		}
	}

	return skill.Match{
		Raw:        raw,
		Name:       titleCase(trimmed),
		Category:   skill.CategoryOther,
		Confidence: skill.ConfidenceFallback,
		InOntology: false,
	}
}

// NormalizeList normalizes a batch of mentions, dropping blanks and
// deduplicating by normalized name. The first occurrence wins; output
// order follows input order.
func (s *Service) NormalizeList(raws []string) []skill.Match {
	out := make([]skill.Match, 0, len(raws))
	seen := make(map[string]struct{}, len(raws))

	for _, raw := range raws {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		m := s.Normalize(raw)
		key := strings.ToLower(m.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m)
	}
	return out
}

func confidenceForTier(tier ontology.MatchTier) float64 {
	switch tier {
	case ontology.TierCanonical:
		return skill.ConfidenceCanonical
	case ontology.TierAlias:
		return skill.ConfidenceAlias
	case ontology.TierKeyword:
		return skill.ConfidenceKeyword
	default:
		return skill.ConfidenceFallback
	}
}

// titleCase upper-cases the first letter of each word, leaving the rest
// of the word untouched so acronym-ish input like "gRPC" survives.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevSpace := true
	for _, r := range s {
		if prevSpace {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		prevSpace = unicode.IsSpace(r)
	}
	return b.String()
}
