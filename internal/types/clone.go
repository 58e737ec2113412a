package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Clone is a DNA sequence sample, either assigned to one student or shared
// as a practice sample. The review status for a student's work on a clone
// lives on the CloneProgress record, not here.
type Clone struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CloneName    string         `gorm:"uniqueIndex;not null;column:clone_name" json:"clone_name"`
	Library      string         `gorm:"column:library" json:"library"`
	Sequence     string         `gorm:"type:text;column:sequence" json:"sequence,omitempty"`
	IsPractice   bool           `gorm:"column:is_practice;not null;default:false" json:"is_practice"`
	AssignedToID *uuid.UUID     `gorm:"type:uuid;column:assigned_to_id;index" json:"assigned_to_id,omitempty"`
	AssignedTo   *User          `gorm:"constraint:OnDelete:SET NULL;foreignKey:AssignedToID;references:ID" json:"assigned_to,omitempty"`
	CreatedAt    time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Clone) TableName() string { return "clone" }
