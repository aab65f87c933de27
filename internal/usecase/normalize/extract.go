package normalize

import (
	"regexp"
	"strings"

	"github.com/kailas-cloud/skillgap/internal/domain/skill"
	"github.com/kailas-cloud/skillgap/internal/ontology"
)

// labelLine captures the tail of lines like "Skills: Python, Docker" or
// "Tech stack - React and TypeScript".
var labelLine = regexp.MustCompile(`(?im)^.*?(?:skills?|technologies|tech\s+stack)\s*[:\-]\s*(.+)$`)

// tokenSplit breaks a labeled list into candidate tokens. Slash and
// hyphen are intentionally not separators so names like "CI/CD" and
// "scikit-learn" survive.
var tokenSplit = regexp.MustCompile(`[,;|•·]|\band\b`)

const (
	minTokenLen = 2
	maxTokenLen = 29
)

type termMatcher struct {
	term string
	re   *regexp.Regexp
	sk   *skill.Skill
	tier ontology.MatchTier
}

// compileTerms precompiles one boundary-aware pattern per ontology term.
// Terms arrive longest-first from the store, so "javascript" is tried
// before "java" and claims the skill first.
func (s *Service) compileTerms() {
	s.terms = s.store.Terms()
	s.termIndex = make(map[string]*termMatcher, len(s.terms))
	for _, term := range s.terms {
		sk, tier := s.store.Lookup(term)
		if sk == nil {
			continue
		}
		// Letters, digits, '+' and '#' are word characters here so "c#"
		// and "java" get real boundaries while "java" stays out of
		// "javascript".
		pattern := `(?:^|[^a-z0-9+#])` + regexp.QuoteMeta(term) + `(?:[^a-z0-9+#]|$)`
		s.termIndex[term] = &termMatcher{
			term: term,
			re:   regexp.MustCompile(pattern),
			sk:   sk,
			tier: tier,
		}
	}
}

// ExtractFromText mines skill mentions out of free-form text such as a
// resume or job description. Two passes: a boundary-aware scan for every
// ontology term, then tokenization of explicitly labeled skill lines,
// which may surface terms the ontology does not know. Output is
// deterministic for a given text and deduplicated per canonical skill.
func (s *Service) ExtractFromText(text string) []skill.Match {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	lower := strings.ToLower(text)
	var out []skill.Match
	seen := make(map[string]struct{})

	for _, term := range s.terms {
		tm, ok := s.termIndex[term]
		if !ok {
			continue
		}
		key := strings.ToLower(tm.sk.Name)
		if _, dup := seen[key]; dup {
			continue
		}
		if !tm.re.MatchString(lower) {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, skill.Match{
			Raw:        tm.term,
			Name:       tm.sk.Name,
			Category:   tm.sk.Category,
			Confidence: confidenceForTier(tm.tier),
			InOntology: true,
		})
	}

	for _, m := range labelLine.FindAllStringSubmatch(text, -1) {
		for _, token := range tokenSplit.Split(m[1], -1) {
			token = strings.Trim(token, " \t.")
			if len(token) < minTokenLen || len(token) > maxTokenLen {
				continue
			}

			if sk := s.store.Get(token); sk != nil {
				key := strings.ToLower(sk.Name)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				out = append(out, skill.Match{
					Raw:        token,
					Name:       sk.Name,
					Category:   sk.Category,
					Confidence: skill.ConfidenceLabeled,
					InOntology: true,
				})
				continue
			}

			name := titleCase(token)
			key := strings.ToLower(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, skill.Match{
				Raw:        token,
				Name:       name,
				Category:   skill.CategoryOther,
				Confidence: skill.ConfidencePattern,
				InOntology: false,
			})
		}
	}

	return out
}
