package analyze

import (
	"sort"
	"strings"
	"testing"

	"github.com/kailas-cloud/skillgap/internal/domain/gap"
	"github.com/kailas-cloud/skillgap/internal/ontology"
	"github.com/kailas-cloud/skillgap/internal/usecase/normalize"
)

func newService(t *testing.T) *Service {
	t.Helper()
	store, err := ontology.Default()
	if err != nil {
		t.Fatalf("ontology.Default() error: %v", err)
	}
	return New(store, normalize.New(store))
}

func TestAnalyze_BackendCandidate(t *testing.T) {
	svc := newService(t)

	candidate := []string{"Python", "Django", "PostgreSQL", "Git", "Docker", "REST API", "Redis"}
	required := []string{"Python", "Go", "Kubernetes", "AWS", "Microservices", "Redis", "Kafka", "Docker"}

	report := svc.Analyze(required, candidate)

	assertSetEqual(t, "matching", report.Matching, []string{"Python", "Redis", "Docker"})
	assertSetEqual(t, "missing", report.Missing,
		[]string{"Go", "Kubernetes", "AWS", "Microservices", "Apache Kafka"})
	assertSetEqual(t, "extra", report.Extra,
		[]string{"Django", "PostgreSQL", "Git", "REST API"})

	// Docker partially covers four of the five missing skills.
	for _, name := range []string{"Go", "Kubernetes", "AWS", "Microservices"} {
		if covering := report.RelatedCoverage[name]; !contains(covering, "Docker") {
			t.Errorf("RelatedCoverage[%s] = %v, want Docker", name, covering)
		}
	}
	if _, ok := report.RelatedCoverage["Apache Kafka"]; ok {
		t.Error("Apache Kafka should have no related coverage here")
	}

	// 3/8 direct plus 0.3 per covered missing skill.
	want := 37.5 + relatedBonus*float64(len(report.RelatedCoverage))
	if report.MatchPercentage != want {
		t.Errorf("MatchPercentage = %v, want %v", report.MatchPercentage, want)
	}
	if report.Severity != gap.SeverityCritical {
		t.Errorf("Severity = %s, want critical", report.Severity)
	}

	// All five missing skills are in demand.
	assertSetEqual(t, "high priority", report.HighPriorityMissing,
		[]string{"Go", "Kubernetes", "AWS", "Microservices", "Apache Kafka"})

	// Kubernetes is a quick win: the candidate already holds Docker.
	assertSetEqual(t, "quick wins", report.QuickWins, []string{"Kubernetes"})
}

func TestAnalyze_EmptyRequired(t *testing.T) {
	svc := newService(t)

	report := svc.Analyze(nil, []string{"Python", "Docker"})
	if report.MatchPercentage != 100 {
		t.Errorf("MatchPercentage = %v, want 100", report.MatchPercentage)
	}
	if report.Severity != gap.SeverityLow {
		t.Errorf("Severity = %s, want low", report.Severity)
	}
	if len(report.Missing) != 0 || len(report.Matching) != 0 {
		t.Errorf("unexpected matching/missing: %v / %v", report.Matching, report.Missing)
	}
	assertSetEqual(t, "extra", report.Extra, []string{"Python", "Docker"})
}

func TestAnalyze_PerfectMatch(t *testing.T) {
	svc := newService(t)

	report := svc.Analyze([]string{"react", "typescript"}, []string{"ReactJS", "TS"})
	if report.MatchPercentage != 100 || report.Severity != gap.SeverityLow {
		t.Errorf("got %v / %s, want 100 / low", report.MatchPercentage, report.Severity)
	}
	if len(report.Missing) != 0 {
		t.Errorf("Missing = %v, want empty", report.Missing)
	}
}

func TestAnalyze_SetAlgebra(t *testing.T) {
	svc := newService(t)

	required := []string{"Python", "golang", "made-up-skill", "k8s", "Python"}
	report := svc.Analyze(required, []string{"python"})

	// matching and missing partition the normalized requirement set.
	seen := map[string]bool{}
	for _, name := range report.Matching {
		seen[strings.ToLower(name)] = true
	}
	for _, name := range report.Missing {
		key := strings.ToLower(name)
		if seen[key] {
			t.Errorf("%q in both matching and missing", name)
		}
		seen[key] = true
	}
	if len(seen) != 4 { // Python, Go, Made-up-skill, Kubernetes
		t.Errorf("partition covers %d names, want 4", len(seen))
	}
}

func TestAnalyze_ClampAt100(t *testing.T) {
	if pct := matchPercentage(8, 8, 5); pct != 100 {
		t.Errorf("matchPercentage(8,8,5) = %v, want clamp to 100", pct)
	}
}

func TestAnalyze_CategoryBuckets(t *testing.T) {
	svc := newService(t)

	report := svc.Analyze(
		[]string{"Go", "PostgreSQL", "totally-unknown"},
		[]string{"Go"},
	)

	if got := report.MatchingByCategory["Programming Language"]; !contains(got, "Go") {
		t.Errorf("matching buckets = %v", report.MatchingByCategory)
	}
	if got := report.MissingByCategory["Database"]; !contains(got, "PostgreSQL") {
		t.Errorf("missing buckets = %v", report.MissingByCategory)
	}
	// Unknown skills land in Other, never disappear.
	if got := report.MissingByCategory["Other"]; len(got) != 1 {
		t.Errorf("Other bucket = %v, want the unknown skill", got)
	}
}

func TestRecommendations_HighPriorityFirst(t *testing.T) {
	svc := newService(t)

	report := svc.Analyze(
		[]string{"Kubernetes", "RabbitMQ", "Flutter"},
		[]string{"Docker"},
	)
	recs := svc.Recommendations(report)
	if len(recs) != 3 {
		t.Fatalf("got %d recommendations, want 3", len(recs))
	}

	// Kubernetes (very high demand) must come before the medium-demand ones.
	if recs[0].Skill != "Kubernetes" || !recs[0].HighPriority {
		t.Errorf("first recommendation = %+v, want high-priority Kubernetes", recs[0])
	}
	if !recs[0].QuickWin {
		t.Error("Kubernetes should be a quick win with Docker in hand")
	}
	if recs[0].LearningPath == "" {
		t.Error("ontology recommendation missing its learning path")
	}
	for _, rec := range recs[1:] {
		if rec.HighPriority {
			t.Errorf("high-priority %s sorted after non-priority entries", rec.Skill)
		}
	}
}

func assertSetEqual(t *testing.T, label string, got, want []string) {
	t.Helper()
	g := append([]string(nil), got...)
	w := append([]string(nil), want...)
	sort.Strings(g)
	sort.Strings(w)
	if len(g) != len(w) {
		t.Errorf("%s = %v, want %v", label, got, want)
		return
	}
	for i := range g {
		if g[i] != w[i] {
			t.Errorf("%s = %v, want %v", label, got, want)
			return
		}
	}
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
