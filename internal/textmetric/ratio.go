package textmetric

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Ratio computes Levenshtein-normalized similarity between two strings on a
// 0-100 scale. Two empty strings are identical and score 100.
func Ratio(a, b string) float64 {
	if a == b {
		return 100
	}
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 100
	}
	distance := levenshtein.ComputeDistance(a, b)
	return 100 * (1 - float64(distance)/float64(maxLen))
}

// TokenSortRatio computes Ratio over the alphabetically sorted whitespace
// tokens of both strings.
func TokenSortRatio(a, b string) float64 {
	return Ratio(sortTokens(a), sortTokens(b))
}

// PartialRatio computes the best Ratio of the shorter string against every
// window of the longer string with the same length, with the whole-string
// Ratio as a floor so near-misses across unequal lengths are not penalized
// twice. An empty string against a non-empty one scores 0.
func PartialRatio(a, b string) float64 {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		if len(longer) == 0 {
			return 100
		}
		return 0
	}
	if len(shorter) == len(longer) {
		return Ratio(string(shorter), string(longer))
	}

	best := Ratio(string(shorter), string(longer))
	window := len(shorter)
	for start := 0; start+window <= len(longer); start++ {
		score := Ratio(string(shorter), string(longer[start:start+window]))
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
