package nlp

import (
	"sort"
	"strings"

	"AutoPartsBot/internal/entity"
)

// Matcher scores catalog parts against free-text query tokens. Scoring is
// deterministic: the same tokens and catalog always yield the same ordering.
type Matcher struct {
	sim       Similarity
	threshold float64
}

func NewMatcher(sim Similarity) *Matcher {
	if sim == nil {
		sim = DefaultSimilarity
	}
	return &Matcher{
		sim:       sim,
		threshold: MatchThreshold,
	}
}

// Match scores every candidate against the query tokens. A candidate's score
// is the mean over tokens of the best per-token score across its searchable
// fields. Candidates below the threshold are dropped; ties keep catalog
// insertion order.
func (m *Matcher) Match(tokens []string, candidates []entity.Part) MatchResult {
	if len(tokens) == 0 || len(candidates) == 0 {
		return MatchResult{}
	}

	scored := make([]ScoredPart, 0, len(candidates))
	for _, part := range candidates {
		score := m.scorePart(tokens, part)
		if score >= m.threshold {
			scored = append(scored, ScoredPart{Part: part, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return MatchResult{Scored: scored}
}

func (m *Matcher) scorePart(tokens []string, part entity.Part) float64 {
	fields := searchFields(part)

	total := 0.0
	for _, token := range tokens {
		best := 0.0
		for _, field := range fields {
			score := m.sim(token, field.text) * field.weight
			if score > best {
				best = score
			}
			if best >= 1.0 {
				break
			}
		}
		total += best
	}
	return total / float64(len(tokens))
}

type weightedField struct {
	text   string
	weight float64
}

// searchFields lists the texts a query token can match against. Full field
// values match at full weight; individual words of multi-word categories and
// names match slightly discounted so "plugs" still finds "Spark Plugs" without
// outranking an exact category hit.
func searchFields(part entity.Part) []weightedField {
	fields := []weightedField{
		{text: part.Make, weight: 1.0},
		{text: part.Model, weight: 1.0},
		{text: part.Category, weight: 1.0},
	}
	for _, syn := range part.Synonyms {
		fields = append(fields, weightedField{text: syn, weight: 1.0})
	}

	for _, word := range strings.Fields(part.Category) {
		if len(word) > 2 {
			fields = append(fields, weightedField{text: word, weight: 0.85})
		}
	}
	for _, word := range strings.Fields(part.Name) {
		if len(word) > 2 {
			fields = append(fields, weightedField{text: word, weight: 0.85})
		}
	}

	return fields
}

// DefaultSimilarity scores two strings by edit distance after cleaning.
// Exact match is 1.0, a substring relation scores the length ratio, anything
// else degrades linearly with Levenshtein distance.
func DefaultSimilarity(a, b string) float64 {
	a = CleanText(a)
	b = CleanText(b)

	if a == "" || b == "" {
		return 0
	}
	if a == b {
		return 1.0
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		shorter, longer := len(a), len(b)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		return float64(shorter) / float64(longer)
	}

	dist := levenshteinDistance(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(dist)/float64(maxLen)
}

func levenshteinDistance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	matrix := make([][]int, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(rb)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(rb); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			matrix[i][j] = min3(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+cost,
			)
		}
	}

	return matrix[len(ra)][len(rb)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
