package ai

import (
	"testing"
)

func TestParseGenerationStrictJSON(t *testing.T) {
	gen := parseGeneration(`{"question": "What is a mutex?", "ideal_answer": "A lock."}`)
	if gen.Degraded {
		t.Fatalf("expected non-degraded result")
	}
	if gen.QuestionText != "What is a mutex?" || gen.IdealAnswer != "A lock." {
		t.Fatalf("unexpected parse result: %+v", gen)
	}
}

func TestParseGenerationFencedJSON(t *testing.T) {
	gen := parseGeneration("```json\n{\"question\": \"What is a channel?\", \"ideal_answer\": \"A typed conduit.\"}\n```")
	if gen.QuestionText != "What is a channel?" {
		t.Fatalf("expected fenced JSON to parse, got %+v", gen)
	}
}

func TestParseGenerationPatternFallback(t *testing.T) {
	text := `Sure! Here you go: "question": "Explain deadlock", "ideal_answer": "Circular wait"`
	gen := parseGeneration(text)
	if gen.QuestionText != "Explain deadlock" {
		t.Fatalf("expected pattern extraction, got %+v", gen)
	}
	if gen.IdealAnswer != "Circular wait" {
		t.Fatalf("expected ideal answer extraction, got %+v", gen)
	}
}

func TestParseGenerationFreeTextBecomesQuestion(t *testing.T) {
	gen := parseGeneration("Explain how garbage collection works in Go.")
	if gen.Degraded {
		t.Fatalf("free text should not degrade")
	}
	if gen.QuestionText != "Explain how garbage collection works in Go." {
		t.Fatalf("expected raw text as question, got %+v", gen)
	}
	if gen.IdealAnswer != "" {
		t.Fatalf("expected empty ideal answer, got %q", gen.IdealAnswer)
	}
}

func TestParseGenerationEmptyFallsBack(t *testing.T) {
	gen := parseGeneration("   ")
	if !gen.Degraded {
		t.Fatalf("expected degraded result for empty reply")
	}
	if gen.QuestionText != FallbackQuestionText {
		t.Fatalf("expected fallback question, got %q", gen.QuestionText)
	}
}

func TestParseGradeStrictJSON(t *testing.T) {
	grade := parseGrade(`{"score": 8, "feedback": "Good answer."}`)
	if grade.Score == nil || *grade.Score != 8 {
		t.Fatalf("expected score 8, got %+v", grade.Score)
	}
	if grade.Feedback != "Good answer." {
		t.Fatalf("unexpected feedback %q", grade.Feedback)
	}
}

func TestParseGradeOutOfRangeScoreIsAbsent(t *testing.T) {
	for _, text := range []string{
		`{"score": 11, "feedback": "too high"}`,
		`{"score": -1, "feedback": "negative"}`,
	} {
		grade := parseGrade(text)
		if grade.Score != nil {
			t.Fatalf("expected out-of-range score to be absent for %s, got %d", text, *grade.Score)
		}
	}
}

func TestParseGradeFractionalScoreIsAbsent(t *testing.T) {
	grade := parseGrade(`{"score": 7.5, "feedback": "close"}`)
	if grade.Score != nil {
		t.Fatalf("expected fractional score to be absent, got %d", *grade.Score)
	}
}

func TestParseGradeMissingScore(t *testing.T) {
	grade := parseGrade(`{"feedback": "no score here"}`)
	if grade.Score != nil {
		t.Fatalf("expected nil score, got %d", *grade.Score)
	}
	if grade.Feedback != "no score here" {
		t.Fatalf("unexpected feedback %q", grade.Feedback)
	}
}

func TestParseGradePatternFallback(t *testing.T) {
	grade := parseGrade(`The candidate did well. "score": 6, "feedback": "Solid grasp of basics"`)
	if grade.Score == nil || *grade.Score != 6 {
		t.Fatalf("expected extracted score 6, got %+v", grade.Score)
	}
	if grade.Feedback != "Solid grasp of basics" {
		t.Fatalf("unexpected feedback %q", grade.Feedback)
	}
}

func TestParseGradeFreeTextKeepsFeedback(t *testing.T) {
	grade := parseGrade("I cannot grade this response.")
	if grade.Score != nil {
		t.Fatalf("expected nil score for free text")
	}
	if grade.Feedback != "I cannot grade this response." {
		t.Fatalf("expected raw text as feedback, got %q", grade.Feedback)
	}
}

func TestStripFences(t *testing.T) {
	cases := map[string]string{
		"```json\n{\"a\":1}\n```": `{"a":1}`,
		"```\n{\"a\":1}\n```":     `{"a":1}`,
		`{"a":1}`:                 `{"a":1}`,
		"  plain text  ":          "plain text",
	}
	for input, want := range cases {
		if got := stripFences(input); got != want {
			t.Fatalf("stripFences(%q): expected %q, got %q", input, want, got)
		}
	}
}
