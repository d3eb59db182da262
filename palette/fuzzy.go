package palette

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Match is one ranked hit returned by a Matcher. Index points into the
// corpus passed to Search.
type Match struct {
	Index int
	Score float64
}

// Matcher ranks a query against a corpus of candidate field sets. Search
// returns hits best-first; equal scores keep corpus order, so ranking is
// deterministic for a fixed registry.
type Matcher interface {
	Search(query string, corpus [][]string) []Match
}

// Field weights: a title hit should outrank the same similarity buried in a
// description or keyword.
var fieldWeights = []float64{1.0, 0.92, 0.88, 0.85}

// LevenshteinMatcher scores candidates by normalized edit distance
// (1 - dist/maxLen) with token and prefix handling so that partial input
// like "creat" still lands on "Create Ticket". Candidates whose best field
// score falls below Threshold are dropped.
type LevenshteinMatcher struct {
	Threshold float64
}

const DefaultThreshold = 0.45

func NewLevenshteinMatcher(threshold float64) *LevenshteinMatcher {
	if threshold <= 0 || threshold >= 1 {
		threshold = DefaultThreshold
	}
	return &LevenshteinMatcher{Threshold: threshold}
}

func (m *LevenshteinMatcher) Search(query string, corpus [][]string) []Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	out := make([]Match, 0, len(corpus))
	for idx, fields := range corpus {
		best := 0.0
		for fi, field := range fields {
			w := fieldWeights[len(fieldWeights)-1]
			if fi < len(fieldWeights) {
				w = fieldWeights[fi]
			}
			if s := fieldScore(q, field) * w; s > best {
				best = s
			}
		}
		if best >= m.Threshold {
			out = append(out, Match{Index: idx, Score: best})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Index < out[j].Index
	})
	return out
}

// fieldScore takes the best of whole-field similarity, per-token similarity,
// and prefix similarity (slightly dampened so a full-token match still
// wins). A subsequence hit sets a floor so terse abbreviations like "ct"
// survive the threshold.
func fieldScore(q, field string) float64 {
	f := strings.ToLower(strings.TrimSpace(field))
	if f == "" {
		return 0
	}
	if f == q {
		return 1
	}
	qLen := utf8.RuneCountInString(q)
	best := similarity(q, f)
	for _, tok := range strings.Fields(f) {
		if s := similarity(q, tok); s > best {
			best = s
		}
		if p, ok := runePrefix(tok, qLen); ok {
			if s := similarity(q, p) * 0.95; s > best {
				best = s
			}
		}
	}
	if p, ok := runePrefix(f, qLen); ok {
		if s := similarity(q, p) * 0.95; s > best {
			best = s
		}
	}
	if best < subsequenceFloor && isSubsequence(q, f) {
		best = subsequenceFloor
	}
	return best
}

// subsequenceFloor sits just above the default threshold.
const subsequenceFloor = 0.5

// runePrefix returns the first n runes of s; ok is false when s is not
// strictly longer than n runes. Slicing by rune keeps multibyte input from
// being cut mid-character.
func runePrefix(s string, n int) (string, bool) {
	r := []rune(s)
	if len(r) <= n {
		return "", false
	}
	return string(r[:n]), true
}

func similarity(a, b string) float64 {
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	if dist >= maxLen {
		return 0
	}
	return 1 - float64(dist)/float64(maxLen)
}

func isSubsequence(q, s string) bool {
	qr := []rune(q)
	j := 0
	for _, r := range s {
		if j < len(qr) && r == qr[j] {
			j++
		}
	}
	return j == len(qr)
}
