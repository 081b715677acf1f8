package ai

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Model replies are requested as minimal JSON but arrive however the model
// feels like. Parsing is three-tiered: strict JSON after fence stripping,
// then best-effort pattern extraction from free text, then the fixed
// fallback values.

var (
	questionPattern = regexp.MustCompile(`(?i)question["']?\s*:\s*["']([^"']+)["']`)
	idealPattern    = regexp.MustCompile(`(?i)ideal_answer["']?\s*:\s*["']([^"']+)["']`)
	scorePattern    = regexp.MustCompile(`(?i)score["']?\s*:\s*(-?[0-9]+)`)
	feedbackPattern = regexp.MustCompile(`(?i)feedback["']?\s*:\s*["']([^"']+)["']`)
)

type generationPayload struct {
	Question    string `json:"question"`
	IdealAnswer string `json:"ideal_answer"`
}

type gradePayload struct {
	Score    *json.Number `json:"score"`
	Feedback string       `json:"feedback"`
}

func parseGeneration(text string) *Generation {
	cleaned := stripFences(text)

	var payload generationPayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err == nil && payload.Question != "" {
		return &Generation{
			QuestionText: payload.Question,
			IdealAnswer:  payload.IdealAnswer,
		}
	}

	// pattern extraction from free text
	question := cleaned
	if m := questionPattern.FindStringSubmatch(cleaned); m != nil {
		question = m[1]
	}
	ideal := ""
	if m := idealPattern.FindStringSubmatch(cleaned); m != nil {
		ideal = m[1]
	}

	if strings.TrimSpace(question) == "" {
		return &Generation{
			QuestionText: FallbackQuestionText,
			IdealAnswer:  FallbackIdealAnswer,
			Degraded:     true,
			Reason:       "empty generation response",
		}
	}

	return &Generation{QuestionText: question, IdealAnswer: ideal}
}

func parseGrade(text string) *GradeResult {
	cleaned := stripFences(text)

	var payload gradePayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err == nil {
		feedback := payload.Feedback
		if feedback == "" {
			feedback = "No feedback generated"
		}
		return &GradeResult{
			Score:    coerceScore(payload.Score),
			Feedback: feedback,
		}
	}

	var score *int
	if m := scorePattern.FindStringSubmatch(cleaned); m != nil {
		var n json.Number = json.Number(m[1])
		score = coerceScore(&n)
	}
	feedback := cleaned
	if m := feedbackPattern.FindStringSubmatch(cleaned); m != nil {
		feedback = m[1]
	}
	if strings.TrimSpace(feedback) == "" {
		feedback = "No feedback generated"
	}

	return &GradeResult{Score: score, Feedback: feedback}
}

// coerceScore converts the raw score into an integer in [0,10]. Missing,
// fractional, or out-of-range values are treated as absent, not clamped.
func coerceScore(raw *json.Number) *int {
	if raw == nil {
		return nil
	}
	n, err := raw.Int64()
	if err != nil {
		return nil
	}
	if n < 0 || n > 10 {
		return nil
	}
	score := int(n)
	return &score
}

// stripFences removes a single surrounding markdown code fence, with or
// without a language tag.
func stripFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}

	trimmed = strings.TrimPrefix(trimmed, "```")
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		// drop the language tag line ("json", "text", ...)
		firstLine := strings.TrimSpace(trimmed[:idx])
		if firstLine == "" || !strings.ContainsAny(firstLine, "{}:") {
			trimmed = trimmed[idx+1:]
		}
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
