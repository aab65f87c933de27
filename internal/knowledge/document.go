// Package knowledge holds the static career advice corpus and the document
// model indexed by the retriever.
package knowledge

import "fmt"

// Type tags the origin of an indexed document.
type Type string

// Document types.
const (
	TypeSkill      Type = "skill"
	TypeCareerPath Type = "career_path"
	TypeResumeTip  Type = "resume_tip"
)

// ParseType validates a document type string. Empty means "no filter".
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case "", TypeSkill, TypeCareerPath, TypeResumeTip:
		return Type(s), nil
	default:
		return "", fmt.Errorf("unknown document type %q", s)
	}
}

// Document is one rendered text blob in the retrieval index.
type Document struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Type     Type              `json:"doc_type"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Hit pairs a document with its similarity score for one query.
type Hit struct {
	Document Document `json:"document"`
	Score    float64  `json:"score"`
}
