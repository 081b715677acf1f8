package interview

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"prepmate/interview/internal/ai"
	"prepmate/interview/internal/models"
	"prepmate/interview/internal/repositories"
)

// ErrForbidden marks access to a session by a user who does not own it.
var ErrForbidden = errors.New("session belongs to another user")

const unavailableGradingFeedback = "Automated grading was unavailable for this answer."

// DefaultQuestionThreshold is the number of answered questions after which
// a session completes.
const DefaultQuestionThreshold = 5

// Service owns the interview session lifecycle: creation, per-turn
// advancement, completion. It decides when the AI components are called and
// how their failures are absorbed. Persistence errors propagate; AI
// degradation never fails the surrounding operation.
type Service struct {
	sessions  *repositories.SessionRepository
	questions *repositories.QuestionRepository
	answers   *repositories.AnswerRepository
	generator *ai.Generator
	grader    *ai.Grader
	threshold int
	logger    *zap.Logger
}

func NewService(
	sessions *repositories.SessionRepository,
	questions *repositories.QuestionRepository,
	answers *repositories.AnswerRepository,
	generator *ai.Generator,
	grader *ai.Grader,
	threshold int,
	logger *zap.Logger,
) *Service {
	if threshold <= 0 {
		threshold = DefaultQuestionThreshold
	}
	return &Service{
		sessions:  sessions,
		questions: questions,
		answers:   answers,
		generator: generator,
		grader:    grader,
		threshold: threshold,
		logger:    logger,
	}
}

// CreateSession persists a new ongoing session, then best-effort generates
// the opening question. AI unavailability never blocks session creation:
// the session is returned with zero questions when generation cannot run.
func (s *Service) CreateSession(ctx context.Context, userID uint, topic, difficulty string) (*models.InterviewSession, error) {
	session := &models.InterviewSession{
		UserID:     userID,
		Topic:      topic,
		Difficulty: difficulty,
		Status:     models.StatusOngoing,
	}
	if err := s.sessions.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	question, err := s.generator.NextQuestion(ctx, topic, difficulty, nil)
	if err != nil {
		s.logger.Warn("opening question generation unavailable",
			zap.Uint("session_id", session.ID),
			zap.Error(err))
		return session, nil
	}

	question.SessionID = &session.ID
	if err := s.questions.Create(question); err != nil {
		return nil, fmt.Errorf("failed to persist opening question: %w", err)
	}

	return s.sessions.GetByID(session.ID)
}

// SubmitResult is the outcome of one interview turn.
type SubmitResult struct {
	Answer        *models.Answer
	NextQuestion  *models.Question
	SessionStatus string
}

// SubmitAnswer runs one turn: persist the answer first (the submission is
// never lost), grade it best-effort, then either generate the next question
// or complete the session. Generation and completion share the same answer
// count and are mutually exclusive: once the threshold is reached no
// further question is generated.
func (s *Service) SubmitAnswer(ctx context.Context, userID, sessionID, questionID uint, response string) (*SubmitResult, error) {
	question, err := s.questions.GetByID(questionID)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}

	answer := &models.Answer{
		UserID:     userID,
		SessionID:  &session.ID,
		QuestionID: question.ID,
		Response:   response,
	}
	if err := s.answers.Create(answer); err != nil {
		return nil, fmt.Errorf("failed to persist answer: %w", err)
	}

	s.gradeAnswer(ctx, answer, question)

	count, err := s.answers.CountBySessionAndUser(session.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count answers: %w", err)
	}

	result := &SubmitResult{
		Answer:        answer,
		SessionStatus: session.Status,
	}

	if int(count) < s.threshold {
		result.NextQuestion = s.generateNext(ctx, session)
		return result, nil
	}

	if err := s.sessions.Complete(session.ID); err != nil {
		return nil, fmt.Errorf("failed to complete session: %w", err)
	}
	result.SessionStatus = models.StatusCompleted
	return result, nil
}

// gradeAnswer grades best-effort and records the outcome on the persisted
// answer. Failures are logged and absorbed; the answer keeps a nil score
// with explanatory feedback.
func (s *Service) gradeAnswer(ctx context.Context, answer *models.Answer, question *models.Question) {
	grade, err := s.grader.Grade(ctx, question, answer.Response)
	if err != nil {
		s.logger.Warn("grading unavailable",
			zap.Uint("answer_id", answer.ID),
			zap.Error(err))
		feedback := unavailableGradingFeedback
		if updateErr := s.answers.UpdateGrade(answer.ID, nil, &feedback); updateErr != nil {
			s.logger.Error("failed to record grading outcome", zap.Error(updateErr))
			return
		}
		answer.Feedback = &feedback
		return
	}

	if grade.Degraded {
		s.logger.Warn("grading degraded",
			zap.Uint("answer_id", answer.ID),
			zap.String("reason", grade.Reason))
	}

	feedback := grade.Feedback
	if err := s.answers.UpdateGrade(answer.ID, grade.Score, &feedback); err != nil {
		s.logger.Error("failed to record grading outcome", zap.Error(err))
		return
	}
	answer.Score = grade.Score
	answer.Feedback = &feedback
}

// generateNext appends one more question to the session, passing all prior
// question texts as the avoid-list. Avoidance is advisory; duplicate text
// is accepted. Any failure yields a nil next question and the turn still
// succeeds.
func (s *Service) generateNext(ctx context.Context, session *models.InterviewSession) *models.Question {
	avoid := make([]string, 0, len(session.Questions))
	for _, q := range session.Questions {
		avoid = append(avoid, q.QuestionText)
	}

	question, err := s.generator.NextQuestion(ctx, session.Topic, session.Difficulty, avoid)
	if err != nil {
		s.logger.Warn("next question generation unavailable",
			zap.Uint("session_id", session.ID),
			zap.Error(err))
		return nil
	}

	question.SessionID = &session.ID
	if err := s.questions.Create(question); err != nil {
		s.logger.Error("failed to persist next question",
			zap.Uint("session_id", session.ID),
			zap.Error(err))
		return nil
	}
	return question
}

// SessionDetail returns the session with a per-question view of the
// requesting user's first answer, plus a computed performance summary.
func (s *Service) SessionDetail(ctx context.Context, userID, sessionID uint) (*models.SessionDetailResponse, error) {
	session, err := s.sessions.GetByID(sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}

	details := make([]models.QuestionDetail, 0, len(session.Questions))
	answered := 0
	totalScore := 0
	for _, question := range session.Questions {
		answer, err := s.answers.FirstByQuestionAndUser(question.ID, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to load answers: %w", err)
		}
		if answer != nil {
			answered++
			if answer.Score != nil {
				totalScore += *answer.Score
			}
		}
		details = append(details, models.QuestionDetail{Question: question, Answer: answer})
	}

	performance := models.Performance{
		TotalQuestions: len(session.Questions),
		AnsweredCount:  answered,
	}
	if len(session.Questions) > 0 {
		mean := math.Round(float64(totalScore)/float64(len(session.Questions))*100) / 100
		performance.Score = &mean
	}

	return &models.SessionDetailResponse{
		Session:     *session,
		Questions:   details,
		Performance: performance,
	}, nil
}

func (s *Service) ListSessions(ctx context.Context, userID uint) ([]models.InterviewSession, error) {
	return s.sessions.ListByUser(userID)
}

// GenerateAdHoc creates a standalone question, optionally linked into a
// session. Unlike session creation, the caller asked for generation
// explicitly, so an unavailable AI client surfaces as an error here.
func (s *Service) GenerateAdHoc(ctx context.Context, topic, difficulty string, sessionID *uint) (*models.Question, error) {
	question, err := s.generator.NextQuestion(ctx, topic, difficulty, nil)
	if err != nil {
		return nil, err
	}

	if sessionID != nil {
		if session, err := s.sessions.GetByID(*sessionID); err == nil {
			question.SessionID = &session.ID
		}
	}

	if err := s.questions.Create(question); err != nil {
		return nil, fmt.Errorf("failed to persist question: %w", err)
	}
	return question, nil
}
