package ai

import (
	"context"

	"prepmate/interview/internal/models"
)

// Generator is a thin adapter over the Client that frames topic and
// difficulty into a generation request and maps the result into an
// unpersisted Question. No state of its own.
type Generator struct {
	client *Client
}

func NewGenerator(client *Client) *Generator {
	return &Generator{client: client}
}

// NextQuestion produces a new AI-origin question for the given session
// context. previous carries the text of questions already asked, to bias
// against repetition.
func (g *Generator) NextQuestion(ctx context.Context, topic, difficulty string, previous []string) (*models.Question, error) {
	generation, err := g.client.Generate(ctx, topic, difficulty, previous)
	if err != nil {
		return nil, err
	}

	return &models.Question{
		QuestionText: generation.QuestionText,
		GeneratedBy:  models.OriginAI,
		Topic:        topic,
		Difficulty:   difficulty,
		IdealAnswer:  generation.IdealAnswer,
	}, nil
}
