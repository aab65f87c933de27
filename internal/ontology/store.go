// Package ontology holds the canonical skill table and its lookup indices.
//
// The store is built once at process start and read-only afterwards, so it
// is safe for unlimited concurrent readers without locking.
package ontology

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/skillgap/internal/domain"
	"github.com/kailas-cloud/skillgap/internal/domain/skill"
)

// Store provides O(1) average lookup of skills by canonical name, alias,
// or keyword, plus category-filtered enumeration.
type Store struct {
	// Three denormalized indices over the same Skill records: memory
	// traded for lookup speed. byName also carries the immutable IDs so
	// hierarchy references (parent/related IDs) resolve through Get.
	byName    map[string]*skill.Skill
	byAlias   map[string]*skill.Skill
	byKeyword map[string]*skill.Skill

	ordered []*skill.Skill
}

// Build indexes the given skills and verifies consistency.
// A duplicate name, alias, or keyword claimed by two distinct canonical
// skills makes lookups ambiguous and fails the build.
func Build(skills []skill.Skill) (*Store, error) {
	s := &Store{
		byName:    make(map[string]*skill.Skill, len(skills)*2),
		byAlias:   make(map[string]*skill.Skill, len(skills)*4),
		byKeyword: make(map[string]*skill.Skill, len(skills)*6),
		ordered:   make([]*skill.Skill, 0, len(skills)),
	}

	for i := range skills {
		if err := s.register(&skills[i]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) register(sk *skill.Skill) error {
	if sk.ID == "" || sk.Name == "" {
		return fmt.Errorf("%w: skill with empty id or name", domain.ErrInvalidSkillEntry)
	}

	for _, key := range []string{strings.ToLower(sk.ID), strings.ToLower(sk.Name)} {
		if prev, ok := s.byName[key]; ok && prev.ID != sk.ID {
			return fmt.Errorf("%w: %q claimed by %q and %q", domain.ErrDuplicateAlias, key, prev.ID, sk.ID)
		}
		s.byName[key] = sk
	}

	for _, alias := range sk.Aliases {
		key := strings.ToLower(strings.TrimSpace(alias))
		if key == "" {
			continue
		}
		if prev, ok := s.byAlias[key]; ok && prev.ID != sk.ID {
			return fmt.Errorf("%w: alias %q claimed by %q and %q", domain.ErrDuplicateAlias, key, prev.ID, sk.ID)
		}
		s.byAlias[key] = sk
	}

	for _, kw := range sk.Keywords {
		key := strings.ToLower(strings.TrimSpace(kw))
		if key == "" {
			continue
		}
		if prev, ok := s.byKeyword[key]; ok && prev.ID != sk.ID {
			return fmt.Errorf("%w: keyword %q claimed by %q and %q", domain.ErrDuplicateAlias, key, prev.ID, sk.ID)
		}
		s.byKeyword[key] = sk
	}

	s.ordered = append(s.ordered, sk)
	return nil
}

// MatchTier identifies which index produced a lookup hit.
type MatchTier int

// Lookup tiers, in priority order.
const (
	TierNone MatchTier = iota
	TierCanonical
	TierAlias
	TierKeyword
)

// Get resolves a raw mention case-insensitively against canonical names,
// then aliases, then keywords. Returns nil when nothing matches; absence
// from the ontology is an expected outcome, not an error.
func (s *Store) Get(name string) *skill.Skill {
	sk, _ := s.Lookup(name)
	return sk
}

// Lookup is Get plus the tier that matched, for confidence scoring.
func (s *Store) Lookup(name string) (*skill.Skill, MatchTier) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil, TierNone
	}
	if sk, ok := s.byName[key]; ok {
		return sk, TierCanonical
	}
	if sk, ok := s.byAlias[key]; ok {
		return sk, TierAlias
	}
	if sk, ok := s.byKeyword[key]; ok {
		return sk, TierKeyword
	}
	return nil, TierNone
}

// All returns every skill in registration order.
func (s *Store) All() []*skill.Skill {
	out := make([]*skill.Skill, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Len returns the number of canonical skills.
func (s *Store) Len() int { return len(s.ordered) }

// ByCategory returns skills of one category, in registration order.
func (s *Store) ByCategory(cat skill.Category) []*skill.Skill {
	var out []*skill.Skill
	for _, sk := range s.ordered {
		if sk.Category == cat {
			out = append(out, sk)
		}
	}
	return out
}

// Search returns skills whose name, alias, or keyword contains the query
// substring, case-insensitively, in registration order.
func (s *Store) Search(query string) []*skill.Skill {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []*skill.Skill
	for _, sk := range s.ordered {
		if matchesQuery(sk, q) {
			out = append(out, sk)
		}
	}
	return out
}

func matchesQuery(sk *skill.Skill, q string) bool {
	if strings.Contains(strings.ToLower(sk.Name), q) {
		return true
	}
	for _, a := range sk.Aliases {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	for _, kw := range sk.Keywords {
		if strings.Contains(strings.ToLower(kw), q) {
			return true
		}
	}
	return false
}

// Terms returns every registered lookup term (names, aliases, keywords)
// sorted by length descending, longest first, so that text scanning matches
// "JavaScript" before "Java". Each term maps back via Lookup.
func (s *Store) Terms() []string {
	seen := make(map[string]struct{}, len(s.byName)+len(s.byAlias)+len(s.byKeyword))
	for _, m := range []map[string]*skill.Skill{s.byName, s.byAlias, s.byKeyword} {
		for term := range m {
			seen[term] = struct{}{}
		}
	}

	terms := make([]string, 0, len(seen))
	for term := range seen {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if len(terms[i]) != len(terms[j]) {
			return len(terms[i]) > len(terms[j])
		}
		return terms[i] < terms[j]
	})
	return terms
}
