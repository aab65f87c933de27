package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"hash/fnv"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	chirouter "github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/skillgap/internal/domain"
	"github.com/kailas-cloud/skillgap/internal/domain/gap"
	"github.com/kailas-cloud/skillgap/internal/knowledge"
	"github.com/kailas-cloud/skillgap/internal/metrics"
	"github.com/kailas-cloud/skillgap/internal/ontology"
	"github.com/kailas-cloud/skillgap/internal/usecase/analyze"
	"github.com/kailas-cloud/skillgap/internal/usecase/normalize"
	"github.com/kailas-cloud/skillgap/internal/usecase/retrieval"
)

func TestMain(m *testing.M) {
	metrics.RegisterEngineMetrics()
	os.Exit(m.Run())
}

// fakeEmbedder produces deterministic bag-of-words vectors. No network.
type fakeEmbedder struct{}

func (fakeEmbedder) Embed(_ context.Context, text string) (domain.EmbeddingResult, error) {
	vec := make([]float32, 32)
	for _, word := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(word))
		vec[h.Sum32()%32]++
	}
	return domain.EmbeddingResult{Embedding: vec, TotalTokens: len(text)}, nil
}

func newTestHandler(t *testing.T, initIndex bool) http.Handler {
	t.Helper()

	store, err := ontology.Default()
	if err != nil {
		t.Fatalf("ontology.Default() error: %v", err)
	}
	norm := normalize.New(store)
	gaps := analyze.New(store, norm)
	retriever := retrieval.New(fakeEmbedder{}, fakeEmbedder{}, store, zap.NewNop())
	if initIndex {
		if err := retriever.Initialize(context.Background()); err != nil {
			t.Fatalf("Initialize error: %v", err)
		}
	}

	srv := NewServer(store, norm, gaps, retriever, 20, zap.NewNop())
	r := chirouter.NewRouter()
	srv.Routes(r)
	return r
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(rr.Body).Decode(&v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return v
}

func TestAnalyzeGap_BackendCandidate(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "POST", "/v1/gap", GapRequest{
		RequiredSkills:  []string{"Python", "Go", "Kubernetes", "AWS", "Microservices", "Redis", "Kafka", "Docker"},
		CandidateSkills: []string{"Python", "Django", "PostgreSQL", "Git", "Docker", "REST API", "Redis"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeBody[GapResponse](t, rr)
	if resp.Report == nil {
		t.Fatal("nil report")
	}
	if resp.Report.Severity != gap.SeverityCritical {
		t.Errorf("severity = %s, want critical", resp.Report.Severity)
	}
	if len(resp.Report.Missing) != 5 {
		t.Errorf("missing = %v, want 5 entries", resp.Report.Missing)
	}
	if len(resp.Recommendations) != len(resp.Report.Missing) {
		t.Errorf("got %d recommendations for %d missing skills",
			len(resp.Recommendations), len(resp.Report.Missing))
	}
	// High-priority recommendations come first.
	seenNormal := false
	for _, rec := range resp.Recommendations {
		if !rec.HighPriority {
			seenNormal = true
		} else if seenNormal {
			t.Fatalf("high-priority recommendation after a normal one: %+v", resp.Recommendations)
		}
	}
}

func TestAnalyzeGap_EmptyRequired(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "POST", "/v1/gap", GapRequest{
		CandidateSkills: []string{"Python"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeBody[GapResponse](t, rr)
	if resp.Report.MatchPercentage != 100 {
		t.Errorf("match = %.1f, want 100 for empty requirements", resp.Report.MatchPercentage)
	}
	if resp.Report.Severity != gap.SeverityLow {
		t.Errorf("severity = %s, want low", resp.Report.Severity)
	}
}

func TestAnalyzeGap_MalformedBody(t *testing.T) {
	handler := newTestHandler(t, false)

	req := httptest.NewRequest("POST", "/v1/gap", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if resp := decodeBody[ErrorResponse](t, rr); resp.Code != CodeBadRequest {
		t.Errorf("code = %s, want %s", resp.Code, CodeBadRequest)
	}
}

func TestNormalizeSkills(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "POST", "/v1/skills/normalize", NormalizeRequest{
		Skills: []string{"ReactJS", "golang", "Elixir"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeBody[matchListResponse](t, rr)
	if len(resp.Skills) != 3 {
		t.Fatalf("got %d skills, want 3", len(resp.Skills))
	}
	if resp.Skills[0].Name != "React" || !resp.Skills[0].InOntology {
		t.Errorf("ReactJS normalized to %+v", resp.Skills[0])
	}
	if resp.Skills[1].Name != "Go" {
		t.Errorf("golang normalized to %+v", resp.Skills[1])
	}
	if resp.Skills[2].InOntology {
		t.Errorf("Elixir should be an ontology miss: %+v", resp.Skills[2])
	}
}

func TestNormalizeSkills_MissingField(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "POST", "/v1/skills/normalize", map[string]any{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if resp := decodeBody[ErrorResponse](t, rr); resp.Code != CodeValidationFailed {
		t.Errorf("code = %s, want %s", resp.Code, CodeValidationFailed)
	}
}

func TestExtractSkills(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "POST", "/v1/skills/extract", ExtractRequest{
		Text: "Built services in Python and deployed them with Docker on AWS.",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeBody[matchListResponse](t, rr)
	found := map[string]bool{}
	for _, m := range resp.Skills {
		found[m.Name] = true
	}
	for _, want := range []string{"Python", "Docker", "AWS"} {
		if !found[want] {
			t.Errorf("extract missed %s: %+v", want, resp.Skills)
		}
	}
}

func TestListSkills(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "GET", "/v1/skills", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	all := decodeBody[SkillListResponse](t, rr)
	if all.Total < 40 {
		t.Errorf("total = %d, want the full ontology", all.Total)
	}

	rr = doJSON(t, handler, "GET", "/v1/skills?category=Database", nil)
	dbs := decodeBody[SkillListResponse](t, rr)
	if dbs.Total == 0 || dbs.Total >= all.Total {
		t.Fatalf("category filter returned %d of %d", dbs.Total, all.Total)
	}
	for _, sk := range dbs.Items {
		if string(sk.Category) != "Database" {
			t.Errorf("skill %s has category %s", sk.Name, sk.Category)
		}
	}

	rr = doJSON(t, handler, "GET", "/v1/skills?q=script", nil)
	hits := decodeBody[SkillListResponse](t, rr)
	names := map[string]bool{}
	for _, sk := range hits.Items {
		names[sk.Name] = true
	}
	if !names["JavaScript"] || !names["TypeScript"] {
		t.Errorf("q=script returned %v", names)
	}
}

func TestListSkills_UnknownCategory(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "GET", "/v1/skills?category=Bogus", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestGetSkill_ResolvesAlias(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "GET", "/v1/skills/k8s", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	sk := decodeBody[map[string]any](t, rr)
	if sk["name"] != "Kubernetes" {
		t.Errorf("k8s resolved to %v", sk["name"])
	}
}

func TestGetSkill_NotFound(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "GET", "/v1/skills/cobol", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if resp := decodeBody[ErrorResponse](t, rr); resp.Code != CodeSkillNotFound {
		t.Errorf("code = %s, want %s", resp.Code, CodeSkillNotFound)
	}
}

func TestSearchKnowledge_BeforeInitialize(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "POST", "/v1/search", SearchRequest{Query: "career advice"})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}
	if resp := decodeBody[SearchResponse](t, rr); resp.Total != 0 {
		t.Errorf("got %d hits before initialization, want 0", resp.Total)
	}
}

func TestSearchKnowledge_BlankQuery(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "POST", "/v1/search", SearchRequest{Query: "   "})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
	if resp := decodeBody[ErrorResponse](t, rr); resp.Code != CodeEmptyQuery {
		t.Errorf("code = %s, want %s", resp.Code, CodeEmptyQuery)
	}
}

func TestSearchKnowledge_DocTypeFilter(t *testing.T) {
	handler := newTestHandler(t, true)

	rr := doJSON(t, handler, "POST", "/v1/search", SearchRequest{
		Query:   "how do I grow into a senior backend role",
		TopK:    3,
		DocType: "career_path",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeBody[SearchResponse](t, rr)
	if resp.Total == 0 || resp.Total > 3 {
		t.Fatalf("total = %d, want 1..3", resp.Total)
	}
	for _, h := range resp.Items {
		if h.Document.Type != knowledge.TypeCareerPath {
			t.Errorf("hit %s has type %s", h.Document.ID, h.Document.Type)
		}
	}
}

func TestSearchKnowledge_InvalidDocType(t *testing.T) {
	handler := newTestHandler(t, true)

	rr := doJSON(t, handler, "POST", "/v1/search", SearchRequest{
		Query:   "anything",
		DocType: "novel",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestBuildContext_Fallback(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "POST", "/v1/context", ContextRequest{
		RequiredSkills:  []string{"Go", "Kubernetes"},
		CandidateSkills: []string{"Python"},
		Role:            "Senior Backend Developer",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeBody[ContextResponse](t, rr)
	if resp.Semantic {
		t.Error("expected non-semantic fallback without an index")
	}
	if !strings.Contains(resp.Context, "Skill match:") {
		t.Errorf("context missing report block: %q", resp.Context)
	}
	if !strings.Contains(resp.Context, "Career advice") {
		t.Errorf("context missing career advice: %q", resp.Context)
	}
}

func TestBuildContext_Semantic(t *testing.T) {
	handler := newTestHandler(t, true)

	rr := doJSON(t, handler, "POST", "/v1/context", ContextRequest{
		RequiredSkills:  []string{"Go", "Kubernetes"},
		CandidateSkills: []string{"Python"},
		Query:           "learning Kubernetes for backend work",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rr.Code, rr.Body.String())
	}

	resp := decodeBody[ContextResponse](t, rr)
	if !resp.Semantic {
		t.Error("expected semantic context with a ready index and a query")
	}
	if !strings.Contains(resp.Context, "Relevant knowledge:") {
		t.Errorf("context missing retrieved knowledge: %q", resp.Context)
	}
}

func TestHealthz(t *testing.T) {
	handler := newTestHandler(t, false)

	rr := doJSON(t, handler, "GET", "/healthz", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	resp := decodeBody[HealthzResponse](t, rr)
	if resp.Status != "ok" {
		t.Errorf("status = %s, want ok", resp.Status)
	}
	if resp.Checks["knowledge_index"] != "initializing" {
		t.Errorf("knowledge_index = %s, want initializing", resp.Checks["knowledge_index"])
	}

	rr = doJSON(t, newTestHandler(t, true), "GET", "/healthz", nil)
	if resp := decodeBody[HealthzResponse](t, rr); resp.Checks["knowledge_index"] != "ready" {
		t.Errorf("knowledge_index = %s, want ready", resp.Checks["knowledge_index"])
	}
}
