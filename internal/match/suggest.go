package match

import "fmt"

// MinSimilarity is the lowest NameSimilarity at which a known name is
// suggested.
const MinSimilarity = 0.5

// Closest returns the known name most similar to name. Ties go to the
// earliest name. Nothing is returned when no name reaches MinSimilarity or
// when name itself is known.
func Closest(name string, known []string) (string, bool) {
	var (
		best      string
		bestScore float64
	)

	for _, k := range known {
		if k == name {
			return "", false
		}

		if score := NameSimilarity(name, k); score >= MinSimilarity && score > bestScore {
			best, bestScore = k, score
		}
	}

	return best, bestScore > 0
}

// Hint returns a "did you mean" suggestion for name, or "" when no known
// name is close enough.
func Hint(name string, known []string) string {
	if k, ok := Closest(name, known); ok {
		return fmt.Sprintf("did you mean %s?", k)
	}

	return ""
}
