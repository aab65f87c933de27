package domain

import "errors"

var (
	// ErrDuplicateAlias signals that two canonical skills claim the same alias or keyword.
	// Raised at ontology build time; a store with ambiguous lookups must never become ready.
	ErrDuplicateAlias = errors.New("duplicate alias")
	// ErrInvalidSkillEntry signals a malformed entry in a skill list.
	ErrInvalidSkillEntry = errors.New("invalid skill entry")
	// ErrEmptyQuery signals an empty search query.
	ErrEmptyQuery = errors.New("empty query")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrSkillNotFound signals a skill missing from the ontology where a hit was required.
	ErrSkillNotFound = errors.New("skill not found")
)
