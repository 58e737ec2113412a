package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiscussionMessage is one post in a clone's discussion thread between the
// student working the clone and the staff reviewing it.
type DiscussionMessage struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CloneID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"clone_id"`
	Clone     *Clone         `gorm:"constraint:OnDelete:CASCADE;foreignKey:CloneID;references:ID" json:"clone,omitempty"`
	SenderID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"sender_id"`
	Sender    *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:SenderID;references:ID" json:"sender,omitempty"`
	Body      string         `gorm:"type:text;not null;column:body" json:"body"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (DiscussionMessage) TableName() string { return "discussion_message" }
