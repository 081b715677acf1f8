package models

import (
	"strings"
)

type CreateSessionRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
}

// implements the Validator interface
func (r *CreateSessionRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return &ErrorResponse{
			Code:    "missing_topic",
			Message: "Topic field is required",
		}
	}

	if r.Difficulty == "" {
		r.Difficulty = DifficultyEasy
	}

	if !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{
			Code:    "invalid_difficulty",
			Message: "Difficulty must be one of: Easy, Medium, Hard",
		}
	}

	return nil
}

type SubmitAnswerRequest struct {
	SessionID  uint   `json:"session_id"`
	QuestionID uint   `json:"question_id"`
	Response   string `json:"response"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.SessionID == 0 {
		return &ErrorResponse{Code: "missing_session_id", Message: "session_id is required"}
	}
	if r.QuestionID == 0 {
		return &ErrorResponse{Code: "missing_question_id", Message: "question_id is required"}
	}
	if strings.TrimSpace(r.Response) == "" {
		return &ErrorResponse{Code: "missing_response", Message: "response must not be empty"}
	}
	return nil
}

type GenerateQuestionRequest struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	SessionID  *uint  `json:"session_id,omitempty"`
}

func (r *GenerateQuestionRequest) Validate() error {
	if strings.TrimSpace(r.Topic) == "" {
		return &ErrorResponse{Code: "missing_topic", Message: "Topic field is required"}
	}
	if r.Difficulty == "" {
		r.Difficulty = DifficultyEasy
	}
	if !ValidDifficulties[r.Difficulty] {
		return &ErrorResponse{Code: "invalid_difficulty", Message: "Difficulty must be one of: Easy, Medium, Hard"}
	}
	return nil
}
