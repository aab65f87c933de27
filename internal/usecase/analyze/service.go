// Package analyze computes skill gap reports between a required and a
// candidate skill set.
package analyze

import (
	"math"
	"strings"

	"github.com/kailas-cloud/skillgap/internal/domain/gap"
	"github.com/kailas-cloud/skillgap/internal/domain/skill"
	"github.com/kailas-cloud/skillgap/internal/ontology"
	"github.com/kailas-cloud/skillgap/internal/usecase/normalize"
)

// relatedBonus is the percentage credit added for each missing skill the
// candidate partially covers through a related skill. Tunable; 0.3 keeps
// partial credit well below the weight of one real match.
const relatedBonus = 0.3

// Service computes gap reports. Pure computation over the read-only
// ontology; one report per call, safe for concurrent use.
type Service struct {
	store *ontology.Store
	norm  *normalize.Service
}

// New creates a gap analyzer.
func New(store *ontology.Store, norm *normalize.Service) *Service {
	return &Service{store: store, norm: norm}
}

// Analyze normalizes both lists and compares them as sets of canonical
// names. Candidate skills never count twice: a direct match is a direct
// match only, and related-skill credit applies just to missing skills.
func (s *Service) Analyze(required, candidate []string) *gap.Report {
	req := s.norm.NormalizeList(required)
	cand := s.norm.NormalizeList(candidate)

	candSet := make(map[string]string, len(cand)) // lowercased -> display
	for _, m := range cand {
		candSet[strings.ToLower(m.Name)] = m.Name
	}
	reqSet := make(map[string]struct{}, len(req))
	for _, m := range req {
		reqSet[strings.ToLower(m.Name)] = struct{}{}
	}

	report := &gap.Report{
		RelatedCoverage:    map[string][]string{},
		MatchingByCategory: map[skill.Category][]string{},
		MissingByCategory:  map[skill.Category][]string{},
	}

	for _, m := range req {
		if _, ok := candSet[strings.ToLower(m.Name)]; ok {
			report.Matching = append(report.Matching, m.Name)
			report.MatchingByCategory[m.Category] = append(report.MatchingByCategory[m.Category], m.Name)
		} else {
			report.Missing = append(report.Missing, m.Name)
			report.MissingByCategory[m.Category] = append(report.MissingByCategory[m.Category], m.Name)
		}
	}
	for _, m := range cand {
		if _, ok := reqSet[strings.ToLower(m.Name)]; !ok {
			report.Extra = append(report.Extra, m.Name)
		}
	}

	s.fillRelatedCoverage(report, candSet)
	s.fillPriorities(report, candSet)

	report.MatchPercentage = matchPercentage(len(report.Matching), len(req), len(report.RelatedCoverage))
	report.Severity = gap.SeverityFor(report.MatchPercentage)
	return report
}

// fillRelatedCoverage records, for every missing skill, which candidate
// skills the ontology lists as related to it.
func (s *Service) fillRelatedCoverage(report *gap.Report, candSet map[string]string) {
	for _, name := range report.Missing {
		sk := s.store.Get(name)
		if sk == nil {
			continue
		}
		var covering []string
		for _, relID := range sk.RelatedSkills {
			rel := s.store.Get(relID)
			if rel == nil {
				continue
			}
			if display, ok := candSet[strings.ToLower(rel.Name)]; ok {
				covering = append(covering, display)
			}
		}
		if len(covering) > 0 {
			report.RelatedCoverage[name] = covering
		}
	}
}

// fillPriorities marks missing skills that deserve attention first:
// high-demand ones, and quick wins whose prerequisite the candidate
// already holds.
func (s *Service) fillPriorities(report *gap.Report, candSet map[string]string) {
	for _, name := range report.Missing {
		sk := s.store.Get(name)
		if sk == nil {
			continue
		}
		if sk.MarketDemand == skill.DemandHigh || sk.MarketDemand == skill.DemandVeryHigh {
			report.HighPriorityMissing = append(report.HighPriorityMissing, name)
		}
		for _, parentID := range sk.ParentSkills {
			parent := s.store.Get(parentID)
			if parent == nil {
				continue
			}
			if _, ok := candSet[strings.ToLower(parent.Name)]; ok {
				report.QuickWins = append(report.QuickWins, name)
				break
			}
		}
	}
}

// matchPercentage is the direct-match ratio plus a small bonus per
// partially covered missing skill, clamped to [0, 100] and rounded to
// one decimal. An empty requirement list is a perfect match.
func matchPercentage(matching, required, covered int) float64 {
	if required == 0 {
		return 100
	}
	pct := 100*float64(matching)/float64(required) + relatedBonus*float64(covered)
	if pct > 100 {
		pct = 100
	}
	return math.Round(pct*10) / 10
}
