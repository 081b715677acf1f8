package repositories

import (
	"errors"

	"gorm.io/gorm"

	"prepmate/interview/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository struct {
	DB *gorm.DB
}

func (r *SessionRepository) Create(session *models.InterviewSession) error {
	return r.DB.Create(session).Error
}

// GetByID loads a session with its questions in insertion order.
func (r *SessionRepository) GetByID(sessionID uint) (*models.InterviewSession, error) {
	var session models.InterviewSession
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).First(&session, sessionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) ListByUser(userID uint) ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).Where("user_id = ?", userID).Order("id DESC").Find(&sessions).Error
	return sessions, err
}

// Complete flips an ongoing session to completed. The status guard makes
// the transition exactly-once: a session already completed is left alone.
func (r *SessionRepository) Complete(sessionID uint) error {
	return r.DB.Model(&models.InterviewSession{}).
		Where("id = ? AND status = ?", sessionID, models.StatusOngoing).
		Update("status", models.StatusCompleted).Error
}

func (r *SessionRepository) CountCompletedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&models.InterviewSession{}).
		Where("user_id = ? AND status = ?", userID, models.StatusCompleted).
		Count(&count).Error
	return count, err
}

func (r *SessionRepository) ListCompleted() ([]models.InterviewSession, error) {
	var sessions []models.InterviewSession
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).Where("status = ?", models.StatusCompleted).Order("id ASC").Find(&sessions).Error
	return sessions, err
}
