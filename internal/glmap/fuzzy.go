package glmap

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// fuzzyThreshold is the minimum similarity score (0-100) for a fuzzy hit.
// Mirrors the 0.86 cutoff the original batch scripts used, so near-exact
// account names resolve and everything else stays unmapped.
const fuzzyThreshold = 86

// FuzzyMatcher resolves descriptions that match no keyword rule by
// similarity against chart-of-accounts names. Disabled by default; the
// keyword table alone decides unless the run opts in.
type FuzzyMatcher struct {
	accounts []ChartAccount
}

// NewFuzzyMatcher builds a fuzzy matcher over the ledger-code catalog.
func NewFuzzyMatcher(chart []ChartAccount) *FuzzyMatcher {
	return &FuzzyMatcher{accounts: chart}
}

// Match returns the chart account whose name is most similar to the
// description, when that similarity clears the threshold.
func (fm *FuzzyMatcher) Match(description string) (ChartAccount, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(description))
	if normalized == "" {
		return ChartAccount{}, false
	}

	best := ChartAccount{}
	bestScore := fuzzyThreshold - 1
	for _, acct := range fm.accounts {
		score := similarity(normalized, strings.ToUpper(acct.Name))
		if score > bestScore {
			bestScore = score
			best = acct
		}
	}
	if best.Code == "" {
		return ChartAccount{}, false
	}
	return best, true
}

// similarity scores two strings 0-100 using containment, Levenshtein
// distance, and subsequence ranking, keeping whichever is highest.
func similarity(s1, s2 string) int {
	if s1 == s2 {
		return 100
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0
	}

	if strings.Contains(s1, s2) {
		return 75 + (25 * len(s2) / len(s1))
	}
	if strings.Contains(s2, s1) {
		return 75 + (25 * len(s1) / len(s2))
	}

	maxLen := len(s1)
	if len(s2) > maxLen {
		maxLen = len(s2)
	}
	levScore := 100 * (maxLen - levenshteinDistance(s1, s2)) / maxLen

	rankScore := 0
	if rank := fuzzy.RankMatch(s2, s1); rank >= 0 && rank < len(s1) {
		rankScore = 60 - (rank * 40 / len(s1))
	}

	if levScore > rankScore {
		return levScore
	}
	return rankScore
}

// levenshteinDistance is the edit distance between two strings, computed
// with two rolling rows.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(r2)]
}
