package utils

import "strings"

// CanonicalDifficulty maps free-form difficulty input to the closed enum
// (Easy, Medium, Hard). The second return reports whether the input was
// recognized.
func CanonicalDifficulty(difficulty string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(difficulty)) {
	case "easy":
		return "Easy", true
	case "medium":
		return "Medium", true
	case "hard":
		return "Hard", true
	default:
		return "", false
	}
}

func NormalizeTopic(topic string) string {
	return strings.TrimSpace(topic)
}
