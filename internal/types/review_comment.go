package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewComment is instructor-authored feedback attached to one question of
// a student's analysis. IsCorrect is tri-state: nil means the reviewer left
// feedback without judging correctness. Only comments with FeedbackVisible
// set are ever shown to the student.
type ReviewComment struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CloneProgressID uuid.UUID      `gorm:"type:uuid;not null;index" json:"clone_progress_id"`
	QuestionID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"question_id"`
	ReviewerID      uuid.UUID      `gorm:"type:uuid;not null" json:"reviewer_id"`
	IsCorrect       *bool          `gorm:"column:is_correct" json:"is_correct,omitempty"`
	Feedback        string         `gorm:"type:text;column:feedback" json:"feedback"`
	FeedbackVisible bool           `gorm:"column:feedback_visible;not null;default:false" json:"feedback_visible"`
	CreatedAt       time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ReviewComment) TableName() string { return "review_comment" }
