package ai

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"prepmate/interview/internal/llm"
	"prepmate/interview/internal/prompts"
)

// ErrUnconfigured is returned when no provider credential is available and
// the operation cannot be attempted at all. Every other failure mode
// (network, malformed output, timeout) degrades to a fallback value.
var ErrUnconfigured = errors.New("ai client is not configured with a provider")

// Fallback values, used when the provider reply is unusable. Generation
// falls back to a fixed safe question so an interview never breaks.
const (
	FallbackQuestionText = "Explain polymorphism in Object-Oriented Programming."
	FallbackIdealAnswer  = "Polymorphism allows objects to be treated as instances of their parent class."
	FallbackFeedback     = "AI grading failed. Please review manually."
)

// Sampling parameters per operation, matching the interview tuning the
// prompts were written for.
const (
	generateTemperature = 0.3
	generateMaxTokens   = 500
	gradeTemperature    = 0.2
	gradeMaxTokens      = 300
)

// Generation is the outcome of a question-generation call. Degraded marks
// that the fallback pair was substituted; Reason says why.
type Generation struct {
	QuestionText string
	IdealAnswer  string
	Degraded     bool
	Reason       string
}

// GradeResult is the outcome of a grading call. Score is nil whenever the
// provider returned no usable integer in [0,10]; out-of-range values are
// treated as absent, never clamped.
type GradeResult struct {
	Score    *int
	Feedback string
	Degraded bool
	Reason   string
}

// Client calls the language-model provider and converts its replies into
// structured values. Parsing failures never escape as errors: each
// operation has a deterministic fallback.
type Client struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	timeout  time.Duration
	logger   *zap.Logger
}

func NewClient(provider llm.Provider, promptProvider prompts.PromptProvider, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		provider: provider,
		prompts:  promptProvider,
		timeout:  timeout,
		logger:   logger,
	}
}

// Unconfigured builds a client with no provider. Generate and Grade return
// ErrUnconfigured; nothing else changes. Credential absence is an ordinary,
// testable state rather than a process-wide warning.
func Unconfigured(promptProvider prompts.PromptProvider, logger *zap.Logger) *Client {
	return NewClient(nil, promptProvider, 0, logger)
}

func (c *Client) Configured() bool {
	return c.provider != nil
}

func (c *Client) ProviderName() string {
	if c.provider == nil {
		return "none"
	}
	return c.provider.Name()
}

// Generate produces one interview question with a short ideal answer.
// avoidList carries the text of previously asked questions; avoidance is
// advisory only and duplicates are accepted noise.
func (c *Client) Generate(ctx context.Context, topic, difficulty string, avoidList []string) (*Generation, error) {
	if c.provider == nil {
		return nil, ErrUnconfigured
	}

	system, user, err := c.prompts.BuildPrompt("generate", map[string]string{
		"Topic":             topic,
		"Difficulty":        difficulty,
		"PreviousQuestions": strings.Join(avoidList, "\n"),
	})
	if err != nil {
		return nil, err
	}

	text, err := c.complete(ctx, llm.Request{
		System:      system,
		User:        user,
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
	})
	if err != nil {
		c.logger.Warn("question generation degraded",
			zap.String("provider", c.provider.Name()),
			zap.Error(err))
		return &Generation{
			QuestionText: FallbackQuestionText,
			IdealAnswer:  FallbackIdealAnswer,
			Degraded:     true,
			Reason:       err.Error(),
		}, nil
	}

	return parseGeneration(text), nil
}

// Grade scores a submitted answer against the question and its ideal
// answer. A provider failure yields a nil score with explanatory feedback.
func (c *Client) Grade(ctx context.Context, questionText, idealAnswer, response string) (*GradeResult, error) {
	if c.provider == nil {
		return nil, ErrUnconfigured
	}

	system, user, err := c.prompts.BuildPrompt("grade", map[string]string{
		"Question":    questionText,
		"IdealAnswer": idealAnswer,
		"Response":    response,
	})
	if err != nil {
		return nil, err
	}

	text, err := c.complete(ctx, llm.Request{
		System:      system,
		User:        user,
		Temperature: gradeTemperature,
		MaxTokens:   gradeMaxTokens,
	})
	if err != nil {
		c.logger.Warn("answer grading degraded",
			zap.String("provider", c.provider.Name()),
			zap.Error(err))
		return &GradeResult{
			Score:    nil,
			Feedback: FallbackFeedback,
			Degraded: true,
			Reason:   err.Error(),
		}, nil
	}

	return parseGrade(text), nil
}

// complete performs the single outbound call, bounded by the configured
// timeout. No retries.
func (c *Client) complete(ctx context.Context, req llm.Request) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return c.provider.Complete(ctx, req)
}
