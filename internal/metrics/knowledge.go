package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics: gap analyses and knowledge retrieval.
var (
	GapAnalysesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skillgap",
			Name:      "gap_analyses_total",
			Help:      "Total gap analyses by resulting severity",
		},
		[]string{"severity"},
	)

	KnowledgeSearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "skillgap",
			Name:      "knowledge_searches_total",
			Help:      "Total knowledge searches by document type filter and outcome",
		},
		[]string{"doc_type", "outcome"}, // outcome: "ok" / "empty"
	)

	KnowledgeIndexDocuments = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "skillgap",
			Name:      "knowledge_index_documents",
			Help:      "Number of documents in the knowledge index",
		},
	)
)

var engineMetricsRegistered bool

// RegisterEngineMetrics registers gap and retrieval metrics. Must be called once from main.
func RegisterEngineMetrics() {
	if engineMetricsRegistered {
		return
	}
	prometheus.MustRegister(GapAnalysesTotal)
	prometheus.MustRegister(KnowledgeSearchesTotal)
	prometheus.MustRegister(KnowledgeIndexDocuments)
	engineMetricsRegistered = true
}
