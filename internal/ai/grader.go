package ai

import (
	"context"

	"prepmate/interview/internal/models"
)

// Grader is a thin adapter over the Client that frames a question, its
// ideal answer, and the user's response into a grading request.
type Grader struct {
	client *Client
}

func NewGrader(client *Client) *Grader {
	return &Grader{client: client}
}

// Grade scores response against question. The returned score is nil when
// grading degraded; feedback always explains the outcome.
func (g *Grader) Grade(ctx context.Context, question *models.Question, response string) (*GradeResult, error) {
	return g.client.Grade(ctx, question.QuestionText, question.IdealAnswer, response)
}
