package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/kailas-cloud/skillgap/internal/domain/gap"
	"github.com/kailas-cloud/skillgap/internal/knowledge"
)

// BuildContext assembles a prompt-ready context block for a gap report:
// the formatted report followed by the most relevant knowledge documents
// for the query. Degrades to the report alone when retrieval yields
// nothing (uninitialized index, provider down).
func (r *Retriever) BuildContext(ctx context.Context, query string, report *gap.Report) (string, error) {
	var b strings.Builder
	b.WriteString(FormatReport(report))

	hits, err := r.Search(ctx, query, DefaultTopK, "")
	if err != nil {
		return "", fmt.Errorf("context retrieval: %w", err)
	}
	if len(hits) > 0 {
		b.WriteString("\nRelevant knowledge:\n")
		for _, h := range hits {
			fmt.Fprintf(&b, "- %s\n", h.Document.Content)
		}
	}
	return b.String(), nil
}

// SimpleContext builds the same kind of context block without any
// embedding lookups: career-path advice matched by role keywords plus
// the high-impact resume tips. The fallback for when no embedding
// provider is configured at all.
func SimpleContext(report *gap.Report, role string) string {
	var b strings.Builder
	b.WriteString(FormatReport(report))

	if path := knowledge.AdviceForRole(role); path != nil {
		fmt.Fprintf(&b, "\nCareer advice (%s):\n%s\n", path.Title, path.Advice)
	}

	b.WriteString("\nResume tips:\n")
	for _, tip := range knowledge.HighImpactTips() {
		fmt.Fprintf(&b, "- %s: %s\n", tip.Topic, tip.Text)
	}
	return b.String()
}

// FormatReport renders a gap report as compact prompt text.
func FormatReport(report *gap.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Skill match: %.1f%% (severity: %s)\n", report.MatchPercentage, report.Severity)
	if len(report.Matching) > 0 {
		fmt.Fprintf(&b, "Matching skills: %s\n", strings.Join(report.Matching, ", "))
	}
	if len(report.Missing) > 0 {
		fmt.Fprintf(&b, "Missing skills: %s\n", strings.Join(report.Missing, ", "))
	}
	if len(report.HighPriorityMissing) > 0 {
		fmt.Fprintf(&b, "Learn first (high demand): %s\n", strings.Join(report.HighPriorityMissing, ", "))
	}
	if len(report.QuickWins) > 0 {
		fmt.Fprintf(&b, "Quick wins: %s\n", strings.Join(report.QuickWins, ", "))
	}
	// Iterate Missing, not the map, so output order is stable.
	for _, skillName := range report.Missing {
		if covering, ok := report.RelatedCoverage[skillName]; ok {
			fmt.Fprintf(&b, "Partial coverage: %s via %s\n", skillName, strings.Join(covering, ", "))
		}
	}
	return b.String()
}
