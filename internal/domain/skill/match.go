package skill

// Match confidence levels per lookup tier.
const (
	ConfidenceCanonical = 1.0
	ConfidenceAlias     = 0.95
	ConfidenceLabeled   = 0.9
	ConfidenceKeyword   = 0.8
	ConfidencePattern   = 0.6
	ConfidenceFallback  = 0.5
)

// Match is the result of normalizing one raw skill mention.
// When the mention is not in the ontology, Name holds a title-cased
// best-effort form and InOntology is false.
type Match struct {
	Raw        string   `json:"raw"`
	Name       string   `json:"normalized_name"`
	Category   Category `json:"category"`
	Confidence float64  `json:"confidence"`
	InOntology bool     `json:"in_ontology"`
}
