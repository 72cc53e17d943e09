// Package matcher ranks law sections against free-text case descriptions
// using fixed keyword and synonym rules.
package matcher

import (
	"sort"
	"strings"

	"virtual-lawyer/models"
)

const (
	synonymWeight = 3
	keywordWeight = 2
	textWeight    = 1
	sectionBonus  = 5
)

// Matcher scores law records against query text. The zero value uses no
// synonyms; use New or Default.
type Matcher struct {
	synonyms SynonymTable
}

// New creates a matcher backed by the given synonym table
func New(synonyms SynonymTable) *Matcher {
	return &Matcher{synonyms: synonyms}
}

// Default creates a matcher backed by DefaultSynonyms
func Default() *Matcher {
	return New(DefaultSynonyms())
}

// Match tokenizes text and returns every law scoring above zero, highest
// score first. Laws with a blank section are skipped.
func (m *Matcher) Match(text string, laws []models.Law) []models.MatchResult {
	tokens := Tokenize(text)
	results := make([]models.MatchResult, 0)
	if len(tokens) == 0 {
		return results
	}

	for i := range laws {
		if strings.TrimSpace(laws[i].Section) == "" {
			continue
		}
		if r, ok := m.Score(tokens, &laws[i]); ok {
			results = append(results, r)
		}
	}

	Rank(results)
	return results
}

// Score applies the scoring rules to one law. ok is false when the score is
// zero.
func (m *Matcher) Score(tokens []string, law *models.Law) (models.MatchResult, bool) {
	keywords := make(map[string]struct{}, len(law.Keywords))
	for _, k := range law.Keywords {
		keywords[strings.ToLower(strings.TrimSpace(k))] = struct{}{}
	}
	title := strings.ToLower(law.Title)
	desc := strings.ToLower(law.ShortDescription)
	section := strings.ToLower(law.Section)

	score := 0
	matched := make(map[string]struct{})
	sectionSeen := false

	for _, t := range tokens {
		if s, ok := m.synonyms.Lookup(t); ok && s == law.Section {
			score += synonymWeight
			matched[t] = struct{}{}
		}
		if _, ok := keywords[t]; ok {
			score += keywordWeight
			matched[t] = struct{}{}
		}
		if strings.Contains(title, t) || strings.Contains(desc, t) {
			score += textWeight
			matched[t] = struct{}{}
		}
		if t == section {
			sectionSeen = true
		}
	}
	if sectionSeen {
		score += sectionBonus
		matched[section] = struct{}{}
	}

	if score <= 0 {
		return models.MatchResult{}, false
	}

	tokenSet := make([]string, 0, len(matched))
	for t := range matched {
		tokenSet = append(tokenSet, t)
	}
	sort.Strings(tokenSet)

	return models.MatchResult{
		LawID:            law.ID,
		Section:          law.Section,
		Title:            law.Title,
		ShortDescription: law.ShortDescription,
		Score:            score,
		MatchedTokens:    tokenSet,
	}, true
}

// Rank orders results by descending score, then ascending section code
func Rank(results []models.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Section < results[j].Section
	})
}

// Match runs the default matcher
func Match(text string, laws []models.Law) []models.MatchResult {
	return Default().Match(text, laws)
}
