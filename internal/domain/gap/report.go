// Package gap defines the skill gap report produced by one comparison.
package gap

import "github.com/kailas-cloud/skillgap/internal/domain/skill"

// Severity is a four-level ordinal grade of how much of a required
// skill set a candidate fails to cover.
type Severity string

// Gap severities, ordered from best to worst coverage.
const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severity thresholds: lower bound of each band, inclusive.
const (
	lowThreshold    = 80
	mediumThreshold = 60
	highThreshold   = 40
)

// SeverityFor maps a match percentage to its severity band.
func SeverityFor(matchPercentage float64) Severity {
	switch {
	case matchPercentage >= lowThreshold:
		return SeverityLow
	case matchPercentage >= mediumThreshold:
		return SeverityMedium
	case matchPercentage >= highThreshold:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

// Report is the output of one gap computation. Created fresh per comparison,
// never mutated after construction, never persisted.
type Report struct {
	Matching []string `json:"matching_skills"`
	Missing  []string `json:"missing_skills"`
	Extra    []string `json:"extra_skills"`

	// RelatedCoverage maps each missing skill to candidate skills the
	// ontology lists as related to it. Partial-credit evidence only; the
	// skill stays in Missing.
	RelatedCoverage map[string][]string `json:"related_coverage"`

	MatchPercentage float64  `json:"match_percentage"`
	Severity        Severity `json:"gap_severity"`

	MatchingByCategory map[skill.Category][]string `json:"matching_by_category"`
	MissingByCategory  map[skill.Category][]string `json:"missing_by_category"`

	// HighPriorityMissing lists missing skills with high or very-high market demand.
	HighPriorityMissing []string `json:"high_priority_missing"`
	// QuickWins lists missing skills whose prerequisite is already in the candidate set.
	QuickWins []string `json:"quick_wins"`
}
