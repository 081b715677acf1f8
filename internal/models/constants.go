package models

// Session lifecycle states. Completed is terminal.
const (
	StatusOngoing   = "ongoing"
	StatusCompleted = "completed"
)

// Question origin tags.
const (
	OriginAI    = "AI"
	OriginHuman = "human"
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// contains all valid difficulty levels
var ValidDifficulties = map[string]bool{
	DifficultyEasy:   true,
	DifficultyMedium: true,
	DifficultyHard:   true,
}

func ValidDifficultiesList() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// Score bounds for graded answers.
const (
	MinScore = 0
	MaxScore = 10
)
