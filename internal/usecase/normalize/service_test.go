package normalize

import (
	"reflect"
	"testing"

	"github.com/kailas-cloud/skillgap/internal/domain/skill"
	"github.com/kailas-cloud/skillgap/internal/ontology"
)

func newService(t *testing.T) *Service {
	t.Helper()
	store, err := ontology.Default()
	if err != nil {
		t.Fatalf("ontology.Default() error: %v", err)
	}
	return New(store)
}

func TestNormalize_Tiers(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		raw        string
		wantName   string
		wantConf   float64
		inOntology bool
	}{
		{"React", "React", skill.ConfidenceCanonical, true},
		{"react", "React", skill.ConfidenceCanonical, true},
		{"reactjs", "React", skill.ConfidenceAlias, true},
		{"k8s", "Kubernetes", skill.ConfidenceAlias, true},
		{"golang", "Go", skill.ConfidenceAlias, true},
		{"jsx", "React", skill.ConfidenceKeyword, true},
		{"helm", "Kubernetes", skill.ConfidenceKeyword, true},
		{"  docker  ", "Docker", skill.ConfidenceCanonical, true},
		{"underwater basket weaving", "Underwater Basket Weaving", skill.ConfidenceFallback, false},
	}
	for _, tt := range tests {
		got := svc.Normalize(tt.raw)
		if got.Name != tt.wantName || got.Confidence != tt.wantConf || got.InOntology != tt.inOntology {
			t.Errorf("Normalize(%q) = {%s %.2f %v}, want {%s %.2f %v}",
				tt.raw, got.Name, got.Confidence, got.InOntology,
				tt.wantName, tt.wantConf, tt.inOntology)
		}
		if got.Raw != tt.raw {
			t.Errorf("Normalize(%q) lost raw input: %q", tt.raw, got.Raw)
		}
	}
}

func TestNormalize_UnknownKeepsCategoryOther(t *testing.T) {
	svc := newService(t)
	got := svc.Normalize("cobol")
	if got.InOntology || got.Category != skill.CategoryOther {
		t.Errorf("Normalize(cobol) = %+v, want fallback in Other", got)
	}
}

func TestNormalizeList_DedupeAndBlanks(t *testing.T) {
	svc := newService(t)

	got := svc.NormalizeList([]string{"react", "", "  ", "ReactJS", "React", "docker"})
	if len(got) != 2 {
		t.Fatalf("NormalizeList returned %d matches, want 2: %+v", len(got), got)
	}
	if got[0].Name != "React" || got[1].Name != "Docker" {
		t.Errorf("unexpected order: %s, %s", got[0].Name, got[1].Name)
	}
	// First occurrence wins: "react" hit the canonical tier.
	if got[0].Confidence != skill.ConfidenceCanonical {
		t.Errorf("first React match confidence = %v", got[0].Confidence)
	}
}

func TestNormalizeList_Deterministic(t *testing.T) {
	svc := newService(t)
	in := []string{"python", "golang", "k8s", "made-up-thing", "python"}
	a := svc.NormalizeList(in)
	b := svc.NormalizeList(in)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("NormalizeList not deterministic for identical input")
	}
}

func TestExtractFromText_OntologyScan(t *testing.T) {
	svc := newService(t)

	text := "Built microservices in Go, deployed with Docker and Kubernetes on AWS."
	got := svc.ExtractFromText(text)

	names := matchNames(got)
	for _, want := range []string{"Go", "Docker", "Kubernetes", "AWS", "Microservices"} {
		if !names[want] {
			t.Errorf("extraction missing %q from %v", want, keys(names))
		}
	}
	for _, m := range got {
		if !m.InOntology {
			t.Errorf("unexpected non-ontology match %q from unlabeled text", m.Name)
		}
	}
}

func TestExtractFromText_JavaNotInJavaScript(t *testing.T) {
	svc := newService(t)

	got := svc.ExtractFromText("Frontend developer, expert in JavaScript.")
	names := matchNames(got)
	if !names["JavaScript"] {
		t.Error("JavaScript not extracted")
	}
	if names["Java"] {
		t.Error("Java falsely extracted from the word JavaScript")
	}
}

func TestExtractFromText_LabeledSection(t *testing.T) {
	svc := newService(t)

	text := "Skills: Python, Dockerr, Elixir and Redis"
	got := svc.ExtractFromText(text)

	byName := map[string]skill.Match{}
	for _, m := range got {
		byName[m.Name] = m
	}

	// Ontology terms anywhere in the text win the scan pass first.
	if m, ok := byName["Python"]; !ok || m.Confidence != skill.ConfidenceCanonical {
		t.Errorf("Python = %+v, want canonical-confidence hit", m)
	}
	// Unknown tokens from a labeled line come through title-cased at
	// pattern confidence.
	if m, ok := byName["Elixir"]; !ok || m.InOntology || m.Confidence != skill.ConfidencePattern {
		t.Errorf("Elixir = %+v, want pattern-confidence fallback", m)
	}
	if m, ok := byName["Dockerr"]; !ok || m.InOntology {
		t.Errorf("Dockerr = %+v, want fallback (typo is not Docker)", m)
	}
}

func TestExtractFromText_TokenLengthBounds(t *testing.T) {
	svc := newService(t)

	long := "Technologies: x, " + "verylongtokenthatexceedsthelimitforsure"
	for _, m := range svc.ExtractFromText(long) {
		if m.Name == "X" {
			t.Error("single-character token should be dropped")
		}
		if len(m.Raw) > 29 {
			t.Errorf("oversized token survived: %q", m.Raw)
		}
	}
}

func TestExtractFromText_Deterministic(t *testing.T) {
	svc := newService(t)
	text := "Skills: Go, Python, React\nBuilt pipelines with Kafka and Terraform."
	a := svc.ExtractFromText(text)
	b := svc.ExtractFromText(text)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("ExtractFromText not deterministic for identical input")
	}
}

func TestExtractFromText_Empty(t *testing.T) {
	svc := newService(t)
	if got := svc.ExtractFromText("   "); got != nil {
		t.Errorf("ExtractFromText(blank) = %v, want nil", got)
	}
}

func matchNames(ms []skill.Match) map[string]bool {
	out := make(map[string]bool, len(ms))
	for _, m := range ms {
		out[m.Name] = true
	}
	return out
}

func keys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
