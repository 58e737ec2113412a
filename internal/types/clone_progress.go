package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/gabevillegas628/dsap-backend/internal/status"
)

// ProgressKind separates assigned-clone work from practice-clone work. The
// two are stored in the same table but served by distinct store endpoints.
type ProgressKind string

const (
	ProgressKindAssigned ProgressKind = "assigned"
	ProgressKindPractice ProgressKind = "practice"
)

// CloneProgress is the persisted working record for one (student, clone)
// pair: the serialized answers blob, the step the student is on, the review
// status, and any instructor comments. It is created on first save and only
// ever deleted by an administrator.
type CloneProgress struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StudentID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_student_clone,unique" json:"student_id"`
	Student     *User           `gorm:"constraint:OnDelete:CASCADE;foreignKey:StudentID;references:ID" json:"student,omitempty"`
	CloneID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_student_clone,unique" json:"clone_id"`
	Clone       *Clone          `gorm:"constraint:OnDelete:CASCADE;foreignKey:CloneID;references:ID" json:"clone,omitempty"`
	Kind        ProgressKind    `gorm:"column:kind;not null;default:'assigned'" json:"kind"`
	Status      status.Status   `gorm:"column:status;index" json:"status"`
	CurrentStep AnalysisStep    `gorm:"column:current_step;not null;default:'clone_editing'" json:"current_step"`
	Progress    int             `gorm:"column:progress;not null;default:0" json:"progress"`
	Answers     datatypes.JSON  `gorm:"type:jsonb;column:answers" json:"answers"`
	Comments    []ReviewComment `gorm:"constraint:OnDelete:CASCADE;foreignKey:CloneProgressID;references:ID" json:"comments,omitempty"`
	LastSaved   time.Time       `gorm:"column:last_saved" json:"last_saved"`
	SubmittedAt *time.Time      `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	CreatedAt   time.Time       `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"deleted_at,omitempty"`
}

func (CloneProgress) TableName() string { return "clone_progress" }
