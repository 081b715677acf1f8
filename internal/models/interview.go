package models

import (
	"gorm.io/gorm"
)

// InterviewSession is one interview attempt by a user on a topic/difficulty.
// The question list is append-only; insertion order is presentation order.
// Only the interview service mutates sessions, and a session that reaches
// StatusCompleted is never reopened.
type InterviewSession struct {
	gorm.Model
	UserID     uint       `gorm:"index;not null" json:"user_id"`
	Topic      string     `gorm:"not null" json:"topic"`
	Difficulty string     `gorm:"not null;default:Easy" json:"difficulty"`
	Status     string     `gorm:"not null;default:ongoing;index" json:"status"`
	Questions  []Question `gorm:"foreignKey:SessionID" json:"questions"`
}

// Question is a single interview prompt. A question may exist detached from
// any session (ad-hoc generation). Immutable after creation, except for
// being linked into a session.
//
// IdealAnswer is a grading reference only and is never serialized to
// clients during a live turn.
type Question struct {
	gorm.Model
	SessionID    *uint  `gorm:"index" json:"session_id"`
	QuestionText string `gorm:"type:text;not null" json:"question_text"`
	GeneratedBy  string `gorm:"not null;default:AI" json:"generated_by"`
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	IdealAnswer  string `gorm:"type:text" json:"-"`
}

// Answer is a user's submitted response to a question. It is created
// exactly once per submission attempt; when grading degrades, Score stays
// nil and Feedback carries the grader's explanation. Score, when set, is an
// integer in [MinScore, MaxScore].
type Answer struct {
	gorm.Model
	UserID     uint    `gorm:"index;not null" json:"user_id"`
	SessionID  *uint   `gorm:"index" json:"session_id"`
	QuestionID uint    `gorm:"index;not null" json:"question_id"`
	Response   string  `gorm:"type:text;not null" json:"response"`
	Score      *int    `json:"score"`
	Feedback   *string `json:"feedback"`

	Question *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}
