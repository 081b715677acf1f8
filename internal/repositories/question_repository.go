package repositories

import (
	"errors"

	"gorm.io/gorm"

	"prepmate/interview/internal/models"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository struct {
	DB *gorm.DB
}

func (r *QuestionRepository) Create(question *models.Question) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) GetByID(questionID uint) (*models.Question, error) {
	var question models.Question
	err := r.DB.First(&question, questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// ListBySession returns a session's questions in insertion order, which is
// presentation order.
func (r *QuestionRepository) ListBySession(sessionID uint) ([]models.Question, error) {
	var questions []models.Question
	err := r.DB.Where("session_id = ?", sessionID).Order("id ASC").Find(&questions).Error
	return questions, err
}

// Attach links a detached question into a session's sequence. Questions are
// immutable otherwise.
func (r *QuestionRepository) Attach(questionID, sessionID uint) error {
	return r.DB.Model(&models.Question{}).
		Where("id = ?", questionID).
		Update("session_id", sessionID).Error
}
