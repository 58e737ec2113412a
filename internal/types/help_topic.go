package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HelpTopic links a help article to the analysis question it explains.
type HelpTopic struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	AnalysisQuestionID uuid.UUID      `gorm:"type:uuid;not null;index" json:"analysis_question_id"`
	Title              string         `gorm:"column:title;not null" json:"title"`
	Body               string         `gorm:"type:text;column:body" json:"body"`
	VideoURL           string         `gorm:"column:video_url" json:"video_url,omitempty"`
	CreatedAt          time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (HelpTopic) TableName() string { return "help_topic" }
