// Package match resolves free-text queries against the learned questions
// using Ratcliff/Obershelp string similarity: the ratio of recursively
// matched character runs over the combined length of both strings.
// Matching is case-sensitive and runs over the full raw strings.
package match

import (
	"github.com/ShariqueMemon11/Ai-chatbot/internal/domain"
)

// DefaultCutoff is the acceptance threshold on the 0-1 similarity scale.
// Candidates scoring below it are treated as no match.
const DefaultCutoff = 0.6

// Ratio returns the similarity of a and b in [0, 1]. Two empty strings are
// identical by definition. Comparison is character-wise, not byte-wise, so
// multi-byte questions score the same as in the reference algorithm.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matchedLen(ra, rb)) / float64(total)
}

// matchedLen sums the longest common run and, recursively, the matched runs
// to its left and right.
func matchedLen(a, b []rune) int {
	i, j, size := longestCommonRun(a, b)
	if size == 0 {
		return 0
	}
	return size + matchedLen(a[:i], b[:j]) + matchedLen(a[i+size:], b[j+size:])
}

// longestCommonRun finds the longest common run of a and b, preferring the
// earliest occurrence in a, then in b.
func longestCommonRun(a, b []rune) (bestI, bestJ, bestSize int) {
	// prev[j+1] holds the length of the common run ending at a[i-1]/b[j].
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 0; i < len(a); i++ {
		for j := 0; j < len(b); j++ {
			if a[i] != b[j] {
				curr[j+1] = 0
				continue
			}
			curr[j+1] = prev[j] + 1
			// Strict > keeps the earliest block among equals.
			if curr[j+1] > bestSize {
				bestSize = curr[j+1]
				bestI = i - bestSize + 1
				bestJ = j - bestSize + 1
			}
		}
		prev, curr = curr, prev
	}
	return bestI, bestJ, bestSize
}

// FindBestMatch returns the stored question most similar to the query, or
// false when no candidate reaches the cutoff. Ties break to the first
// candidate in sequence order that reaches the maximum score.
func FindBestMatch(query string, questions []string, cutoff float64) (string, bool) {
	best := ""
	bestScore := 0.0
	found := false

	for _, q := range questions {
		score := Ratio(query, q)
		if score < cutoff {
			continue
		}
		if !found || score > bestScore {
			best = q
			bestScore = score
			found = true
		}
	}

	return best, found
}

// AnswerFor looks up the exact question text in the document. The first
// structural match wins; duplicate questions are tolerated.
func AnswerFor(question string, doc *domain.KnowledgeDocument) (string, bool) {
	for _, qa := range doc.Questions {
		if qa.Question == question {
			return qa.Answer, true
		}
	}
	return "", false
}
