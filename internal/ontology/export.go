package ontology

import (
	"encoding/json"

	"github.com/kailas-cloud/skillgap/internal/domain/skill"
)

// ExportJSON renders the full skill table as indented JSON, grouped by
// category in declaration order. Intended for debugging and data review.
func (s *Store) ExportJSON() ([]byte, error) {
	grouped := make(map[skill.Category][]skill.Skill, len(skill.Categories()))
	for _, cat := range skill.Categories() {
		for _, sk := range s.ByCategory(cat) {
			grouped[cat] = append(grouped[cat], *sk)
		}
	}
	return json.MarshalIndent(grouped, "", "  ")
}
