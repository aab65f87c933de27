// Package retrieval implements semantic search over the career knowledge
// corpus: ontology skills, career paths, and resume tips.
package retrieval

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/kailas-cloud/skillgap/internal/domain"
	"github.com/kailas-cloud/skillgap/internal/domain/skill"
	"github.com/kailas-cloud/skillgap/internal/knowledge"
	"github.com/kailas-cloud/skillgap/internal/ontology"
)

// DefaultTopK is the result count when the caller does not ask for one.
const DefaultTopK = 3

// Retriever indexes the knowledge corpus with injected embeddings and
// answers similarity queries. It never computes embeddings itself.
// Documents and queries may embed through different decorator chains
// (instruction prefixes differ), hence two embedders.
type Retriever struct {
	embedDoc   domain.Embedder
	embedQuery domain.Embedder
	store      *ontology.Store
	log        *zap.Logger

	initOnce sync.Once
	ready    atomic.Bool
	idx      index
}

// New creates an uninitialized retriever. Searches before Initialize
// return empty results.
func New(embedDoc, embedQuery domain.Embedder, store *ontology.Store, log *zap.Logger) *Retriever {
	return &Retriever{embedDoc: embedDoc, embedQuery: embedQuery, store: store, log: log}
}

// Initialize builds the index: renders every corpus document and embeds
// it through the provider. Documents whose embedding fails are skipped
// with a warning; one bad document never aborts the rest. Safe to call
// concurrently and repeatedly; only the first call does work, later
// callers block until it finishes.
func (r *Retriever) Initialize(ctx context.Context) error {
	var err error
	r.initOnce.Do(func() {
		err = r.buildIndex(ctx)
		r.ready.Store(true)
	})
	return err
}

// Ready reports whether Initialize has completed.
func (r *Retriever) Ready() bool { return r.ready.Load() }

// Size returns the number of indexed documents.
func (r *Retriever) Size() int {
	if !r.ready.Load() {
		return 0
	}
	return r.idx.size()
}

func (r *Retriever) buildIndex(ctx context.Context) error {
	docs := r.corpus()

	skipped := 0
	for _, doc := range docs {
		res, err := r.embedDoc.Embed(ctx, doc.Content)
		if err != nil {
			if ctx.Err() != nil {
				return fmt.Errorf("index build canceled: %w", ctx.Err())
			}
			skipped++
			r.log.Warn("skipping document, embedding failed",
				zap.String("doc_id", doc.ID), zap.Error(err))
			continue
		}
		r.idx.add(doc, res.Embedding)
	}

	r.log.Info("knowledge index built",
		zap.Int("indexed", r.idx.size()), zap.Int("skipped", skipped))
	return nil
}

// corpus renders the full document set in a fixed order: skills first,
// then career paths, then resume tips.
func (r *Retriever) corpus() []knowledge.Document {
	var docs []knowledge.Document
	for _, sk := range r.store.All() {
		docs = append(docs, skillDocument(sk))
	}
	for _, p := range knowledge.CareerPaths() {
		docs = append(docs, p.Document())
	}
	for _, t := range knowledge.ResumeTips() {
		docs = append(docs, t.Document())
	}
	return docs
}

func skillDocument(sk *skill.Skill) knowledge.Document {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s). %s", sk.Name, sk.Category, sk.Description)
	if sk.LearningPath != "" {
		fmt.Fprintf(&b, " Learning path: %s.", sk.LearningPath)
	}
	if len(sk.BestPractices) > 0 {
		fmt.Fprintf(&b, " Best practices: %s.", strings.Join(sk.BestPractices, "; "))
	}
	if sk.CVTips != "" {
		fmt.Fprintf(&b, " CV tip: %s", sk.CVTips)
	}
	return knowledge.Document{
		ID:      "skill:" + sk.ID,
		Content: b.String(),
		Type:    knowledge.TypeSkill,
		Metadata: map[string]string{
			"category": string(sk.Category),
			"demand":   string(sk.MarketDemand),
		},
	}
}

// Search embeds the query and returns the topK most similar documents,
// optionally restricted to one type. Before Initialize completes it
// returns empty results, and a provider failure degrades the same way:
// empty results, nil error, a warning in the log.
func (r *Retriever) Search(ctx context.Context, query string, topK int, filter knowledge.Type) ([]knowledge.Hit, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}
	if topK <= 0 {
		topK = DefaultTopK
	}
	if !r.ready.Load() {
		return nil, nil
	}

	res, err := r.embedQuery.Embed(ctx, query)
	if err != nil {
		r.log.Warn("query embedding failed, returning no results",
			zap.String("query", query), zap.Error(err))
		return nil, nil
	}

	return r.idx.search(res.Embedding, topK, filter), nil
}
