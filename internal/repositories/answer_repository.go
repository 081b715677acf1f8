package repositories

import (
	"errors"

	"gorm.io/gorm"

	"prepmate/interview/internal/models"
)

type AnswerRepository struct {
	DB *gorm.DB
}

func (r *AnswerRepository) Create(answer *models.Answer) error {
	return r.DB.Create(answer).Error
}

// UpdateGrade records the grading outcome on an existing answer. score may
// be nil (grading degraded); feedback always carries an explanation.
func (r *AnswerRepository) UpdateGrade(answerID uint, score *int, feedback *string) error {
	return r.DB.Model(&models.Answer{}).
		Where("id = ?", answerID).
		Updates(map[string]interface{}{
			"score":    score,
			"feedback": feedback,
		}).Error
}

func (r *AnswerRepository) CountBySessionAndUser(sessionID, userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.Answer{}).
		Where("session_id = ? AND user_id = ?", sessionID, userID).
		Count(&count).Error
	return count, err
}

// FirstByQuestionAndUser returns the user's earliest answer to a question,
// or nil when the question is unanswered.
func (r *AnswerRepository) FirstByQuestionAndUser(questionID, userID uint) (*models.Answer, error) {
	var answer models.Answer
	err := r.DB.Where("question_id = ? AND user_id = ?", questionID, userID).
		Order("id ASC").First(&answer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *AnswerRepository) ListByUser(userID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.DB.Preload("Question").
		Where("user_id = ?", userID).Order("id DESC").Find(&answers).Error
	return answers, err
}

// ListByUserChronological returns the user's answers oldest first, for
// time-bucketed progress rollups.
func (r *AnswerRepository) ListByUserChronological(userID uint) ([]models.Answer, error) {
	var answers []models.Answer
	err := r.DB.Where("user_id = ?", userID).Order("created_at ASC, id ASC").Find(&answers).Error
	return answers, err
}

// GroupedAverage is one aggregation bucket: a grouping key (topic or
// difficulty), the average score across the bucket, and the answer count.
type GroupedAverage struct {
	Key      string  `json:"key"`
	AvgScore float64 `json:"avg_score"`
	Count    int64   `json:"count"`
}

// AverageByTopic averages graded answers per question topic for one user.
// Ungraded answers (null score) are excluded from the average.
func (r *AnswerRepository) AverageByTopic(userID uint) ([]GroupedAverage, error) {
	return r.groupedAverage(userID, "questions.topic")
}

// AverageByDifficulty averages graded answers per question difficulty.
func (r *AnswerRepository) AverageByDifficulty(userID uint) ([]GroupedAverage, error) {
	return r.groupedAverage(userID, "questions.difficulty")
}

func (r *AnswerRepository) groupedAverage(userID uint, column string) ([]GroupedAverage, error) {
	var rows []GroupedAverage
	err := r.DB.Model(&models.Answer{}).
		Select(column+" AS key, AVG(answers.score) AS avg_score, COUNT(*) AS count").
		Joins("JOIN questions ON questions.id = answers.question_id").
		Where("answers.user_id = ? AND answers.score IS NOT NULL", userID).
		Group(column).
		Order(column + " ASC").
		Scan(&rows).Error
	return rows, err
}
