package analyze

import (
	"github.com/kailas-cloud/skillgap/internal/domain/gap"
	"github.com/kailas-cloud/skillgap/internal/domain/skill"
)

// Recommendation is one actionable learning suggestion for a missing skill.
type Recommendation struct {
	Skill         string         `json:"skill"`
	Category      skill.Category `json:"category"`
	MarketDemand  skill.Demand   `json:"market_demand"`
	HighPriority  bool           `json:"high_priority"`
	QuickWin      bool           `json:"quick_win"`
	LearningPath  string         `json:"learning_path,omitempty"`
	BestPractices []string       `json:"best_practices,omitempty"`
	CVTip         string         `json:"cv_tip,omitempty"`
}

// Recommendations turns a report's missing skills into learning
// suggestions, high-demand skills first, quick wins breaking ties, then
// the report's own missing order.
func (s *Service) Recommendations(report *gap.Report) []Recommendation {
	highPriority := make(map[string]bool, len(report.HighPriorityMissing))
	for _, name := range report.HighPriorityMissing {
		highPriority[name] = true
	}
	quickWins := make(map[string]bool, len(report.QuickWins))
	for _, name := range report.QuickWins {
		quickWins[name] = true
	}

	build := func(name string) Recommendation {
		rec := Recommendation{
			Skill:        name,
			Category:     skill.CategoryOther,
			HighPriority: highPriority[name],
			QuickWin:     quickWins[name],
		}
		if sk := s.store.Get(name); sk != nil {
			rec.Category = sk.Category
			rec.MarketDemand = sk.MarketDemand
			rec.LearningPath = sk.LearningPath
			rec.BestPractices = sk.BestPractices
			rec.CVTip = sk.CVTips
		}
		return rec
	}

	out := make([]Recommendation, 0, len(report.Missing))
	// Two ordered passes keep the sort stable without a comparator.
	for _, name := range report.Missing {
		if highPriority[name] {
			out = append(out, build(name))
		}
	}
	for _, name := range report.Missing {
		if !highPriority[name] {
			out = append(out, build(name))
		}
	}
	return out
}
