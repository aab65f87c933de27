package retrieval

import (
	"math"
	"sort"

	"github.com/kailas-cloud/skillgap/internal/knowledge"
)

// index is a flat in-memory vector index: documents and their embeddings
// in parallel slices, ingestion order preserved. Brute-force scan is fine
// at this corpus size (dozens of documents).
type index struct {
	docs []knowledge.Document
	vecs [][]float32
}

func (ix *index) add(doc knowledge.Document, vec []float32) {
	ix.docs = append(ix.docs, doc)
	ix.vecs = append(ix.vecs, vec)
}

func (ix *index) size() int { return len(ix.docs) }

// search scores every document against the query vector and returns the
// topK best, optionally restricted to one document type. Ties keep
// ingestion order.
func (ix *index) search(query []float32, topK int, filter knowledge.Type) []knowledge.Hit {
	hits := make([]knowledge.Hit, 0, len(ix.docs))
	for i, doc := range ix.docs {
		if filter != "" && doc.Type != filter {
			continue
		}
		hits = append(hits, knowledge.Hit{
			Document: doc,
			Score:    cosine(query, ix.vecs[i]),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})

	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}

// cosine is the cosine similarity of two vectors. A zero-norm vector has
// no direction, so similarity against it is defined as 0. Vectors of
// different lengths are compared over the shared prefix.
func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
