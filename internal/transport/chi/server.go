// Package chi implements the HTTP API over the go-chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/skillgap/internal/domain"
	"github.com/kailas-cloud/skillgap/internal/domain/gap"
	"github.com/kailas-cloud/skillgap/internal/domain/skill"
	"github.com/kailas-cloud/skillgap/internal/knowledge"
	"github.com/kailas-cloud/skillgap/internal/metrics"
	"github.com/kailas-cloud/skillgap/internal/ontology"
	"github.com/kailas-cloud/skillgap/internal/usecase/analyze"
	"github.com/kailas-cloud/skillgap/internal/usecase/normalize"
	"github.com/kailas-cloud/skillgap/internal/usecase/retrieval"
)

// ErrorCode is a machine-readable error identifier in error responses.
type ErrorCode string

// Error codes returned by the API.
const (
	CodeBadRequest       ErrorCode = "bad_request"
	CodeValidationFailed ErrorCode = "validation_failed"
	CodeSkillNotFound    ErrorCode = "skill_not_found"
	CodeEmptyQuery       ErrorCode = "empty_query"
	CodeProviderError    ErrorCode = "embedding_provider_error"
	CodeUnauthorized     ErrorCode = "unauthorized"
	CodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Server wires the engine services to HTTP handlers. A thin delegation
// layer; all domain logic lives in the usecase packages.
type Server struct {
	store     *ontology.Store
	norm      *normalize.Service
	gaps      *analyze.Service
	retriever *retrieval.Retriever
	maxTopK   int
	logger    *zap.Logger
	validate  *validator.Validate
}

// NewServer creates the HTTP API server.
func NewServer(
	store *ontology.Store,
	norm *normalize.Service,
	gaps *analyze.Service,
	retriever *retrieval.Retriever,
	maxTopK int,
	logger *zap.Logger,
) *Server {
	return &Server{
		store:     store,
		norm:      norm,
		gaps:      gaps,
		retriever: retriever,
		maxTopK:   maxTopK,
		logger:    logger,
		validate:  validator.New(),
	}
}

// Routes mounts all API routes on the given router.
func (s *Server) Routes(r chirouter.Router) {
	r.Post("/v1/gap", s.AnalyzeGap)
	r.Post("/v1/skills/normalize", s.NormalizeSkills)
	r.Post("/v1/skills/extract", s.ExtractSkills)
	r.Get("/v1/skills", s.ListSkills)
	r.Get("/v1/skills/{name}", s.GetSkill)
	r.Post("/v1/search", s.SearchKnowledge)
	r.Post("/v1/context", s.BuildContext)
	r.Get("/healthz", s.Healthz)
	r.Get("/metrics", s.Metrics)
}

// GapRequest is the body of POST /v1/gap.
type GapRequest struct {
	RequiredSkills  []string `json:"required_skills" validate:"dive,min=1,max=128"`
	CandidateSkills []string `json:"candidate_skills" validate:"dive,min=1,max=128"`
}

// GapResponse pairs the report with learning recommendations.
type GapResponse struct {
	Report          *gap.Report              `json:"report"`
	Recommendations []analyze.Recommendation `json:"recommendations"`
}

// AnalyzeGap handles POST /v1/gap.
func (s *Server) AnalyzeGap(w http.ResponseWriter, r *http.Request) {
	var req GapRequest
	if !s.decode(w, r, &req) {
		return
	}

	report := s.gaps.Analyze(req.RequiredSkills, req.CandidateSkills)
	metrics.GapAnalysesTotal.WithLabelValues(string(report.Severity)).Inc()

	writeJSON(w, http.StatusOK, GapResponse{
		Report:          report,
		Recommendations: s.gaps.Recommendations(report),
	})
}

// NormalizeRequest is the body of POST /v1/skills/normalize.
type NormalizeRequest struct {
	Skills []string `json:"skills" validate:"required,min=1,dive,min=1,max=128"`
}

// NormalizeSkills handles POST /v1/skills/normalize.
func (s *Server) NormalizeSkills(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if !s.decode(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, matchListResponse{
		Skills: s.norm.NormalizeList(req.Skills),
	})
}

// ExtractRequest is the body of POST /v1/skills/extract.
type ExtractRequest struct {
	Text string `json:"text" validate:"required,max=50000"`
}

// ExtractSkills handles POST /v1/skills/extract.
func (s *Server) ExtractSkills(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if !s.decode(w, r, &req) {
		return
	}

	writeJSON(w, http.StatusOK, matchListResponse{
		Skills: s.norm.ExtractFromText(req.Text),
	})
}

type matchListResponse struct {
	Skills []skill.Match `json:"skills"`
}

// SkillListResponse is the body of GET /v1/skills.
type SkillListResponse struct {
	Items []*skill.Skill `json:"items"`
	Total int            `json:"total"`
}

// ListSkills handles GET /v1/skills with optional ?category= and ?q= filters.
func (s *Server) ListSkills(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	var items []*skill.Skill
	switch {
	case query != "":
		items = s.store.Search(query)
		if category != "" {
			items = filterByCategory(items, skill.Category(category))
		}
	case category != "":
		cat, ok := parseCategory(category)
		if !ok {
			writeError(w, http.StatusBadRequest, CodeValidationFailed, "unknown category: "+category)
			return
		}
		items = s.store.ByCategory(cat)
	default:
		items = s.store.All()
	}

	if items == nil {
		items = []*skill.Skill{}
	}
	writeJSON(w, http.StatusOK, SkillListResponse{Items: items, Total: len(items)})
}

// GetSkill handles GET /v1/skills/{name}. The name resolves through the
// full lookup chain, so aliases and keywords work in the path too.
func (s *Server) GetSkill(w http.ResponseWriter, r *http.Request) {
	name := chirouter.URLParam(r, "name")

	sk := s.store.Get(name)
	if sk == nil {
		s.handleDomainError(w, domain.ErrSkillNotFound)
		return
	}

	writeJSON(w, http.StatusOK, sk)
}

// SearchRequest is the body of POST /v1/search.
type SearchRequest struct {
	Query   string `json:"query" validate:"required"`
	TopK    int    `json:"top_k" validate:"omitempty,gte=1"`
	DocType string `json:"doc_type" validate:"omitempty,oneof=skill career_path resume_tip"`
}

// SearchResponse is the body of POST /v1/search.
type SearchResponse struct {
	Items []knowledge.Hit `json:"items"`
	Total int             `json:"total"`
}

// SearchKnowledge handles POST /v1/search.
func (s *Server) SearchKnowledge(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if !s.decode(w, r, &req) {
		return
	}

	filter, err := knowledge.ParseType(req.DocType)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	topK := req.TopK
	if topK > s.maxTopK {
		topK = s.maxTopK
	}

	hits, err := s.retriever.Search(r.Context(), req.Query, topK, filter)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	outcome := "ok"
	if len(hits) == 0 {
		outcome = "empty"
	}
	metrics.KnowledgeSearchesTotal.WithLabelValues(docTypeLabel(filter), outcome).Inc()

	if hits == nil {
		hits = []knowledge.Hit{}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Items: hits, Total: len(hits)})
}

// ContextRequest is the body of POST /v1/context.
type ContextRequest struct {
	RequiredSkills  []string `json:"required_skills" validate:"dive,min=1,max=128"`
	CandidateSkills []string `json:"candidate_skills" validate:"dive,min=1,max=128"`
	Query           string   `json:"query" validate:"omitempty,max=512"`
	Role            string   `json:"role" validate:"omitempty,max=128"`
}

// ContextResponse is the body of POST /v1/context.
type ContextResponse struct {
	Context  string `json:"context"`
	Semantic bool   `json:"semantic"`
}

// BuildContext handles POST /v1/context. With a query and a ready index
// it retrieves supporting knowledge semantically; otherwise it falls back
// to the keyword-matched career advice block.
func (s *Server) BuildContext(w http.ResponseWriter, r *http.Request) {
	var req ContextRequest
	if !s.decode(w, r, &req) {
		return
	}

	report := s.gaps.Analyze(req.RequiredSkills, req.CandidateSkills)
	metrics.GapAnalysesTotal.WithLabelValues(string(report.Severity)).Inc()

	if req.Query != "" && s.retriever.Ready() {
		text, err := s.retriever.BuildContext(r.Context(), req.Query, report)
		if err != nil {
			s.handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, ContextResponse{Context: text, Semantic: true})
		return
	}

	writeJSON(w, http.StatusOK, ContextResponse{
		Context:  retrieval.SimpleContext(report, req.Role),
		Semantic: false,
	})
}

// HealthzResponse is the body of GET /healthz.
type HealthzResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Healthz handles GET /healthz. The engine itself has no external
// dependencies, so the endpoint always reports ok; index readiness is a
// check, not a failure.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	indexState := "initializing"
	if s.retriever.Ready() {
		indexState = "ready"
	}

	writeJSON(w, http.StatusOK, HealthzResponse{
		Status: "ok",
		Checks: map[string]string{
			"ontology":        "ready",
			"knowledge_index": indexState,
		},
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// decode parses and validates a JSON request body. Writes the error
// response itself and returns false when the request is rejected.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return false
	}
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmptyQuery):
		writeError(w, http.StatusBadRequest, CodeEmptyQuery, domain.ErrEmptyQuery.Error())
	case errors.Is(err, domain.ErrSkillNotFound):
		writeError(w, http.StatusNotFound, CodeSkillNotFound, domain.ErrSkillNotFound.Error())
	case errors.Is(err, domain.ErrEmbeddingProviderError):
		s.logger.Warn("provider error", zap.Error(err))
		writeError(w, http.StatusBadGateway, CodeProviderError, domain.ErrEmbeddingProviderError.Error())
	default:
		s.logger.Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
	}
}

func parseCategory(raw string) (skill.Category, bool) {
	for _, cat := range skill.Categories() {
		if string(cat) == raw {
			return cat, true
		}
	}
	return "", false
}

func filterByCategory(items []*skill.Skill, cat skill.Category) []*skill.Skill {
	var out []*skill.Skill
	for _, sk := range items {
		if sk.Category == cat {
			out = append(out, sk)
		}
	}
	return out
}

func docTypeLabel(t knowledge.Type) string {
	if t == "" {
		return "all"
	}
	return string(t)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
