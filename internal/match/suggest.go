package match

// MinSimilarity is the lowest normalized similarity for which Suggest
// proposes a candidate.
const MinSimilarity = 0.5

// Suggest returns the candidate closest to name. Ties go to the earlier
// candidate. ok is false when nothing is similar enough or name already
// is a candidate.
func Suggest(name string, candidates []string) (best string, ok bool) {
	norm := Normalize(name)
	if norm == "" {
		return "", false
	}

	bestScore := 0.0

	for _, c := range candidates {
		if c == name {
			return "", false
		}

		score := Similarity(norm, Normalize(c))
		if score > bestScore {
			best, bestScore = c, score
		}
	}

	if bestScore < MinSimilarity {
		return "", false
	}

	return best, true
}
