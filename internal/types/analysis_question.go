package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Question input types. The display-only types render content but carry no
// answer, so they never count toward progress.
const (
	QuestionTypeYesNo           = "yes_no"
	QuestionTypeSelect          = "select"
	QuestionTypeText            = "text"
	QuestionTypeTextarea        = "textarea"
	QuestionTypeNumber          = "number"
	QuestionTypeDNASequence     = "dna_sequence"
	QuestionTypeProteinSequence = "protein_sequence"
	QuestionTypeBlast           = "blast"
	QuestionTypeSequenceRange   = "sequence_range"
	QuestionTypeBlastComparison = "blast_comparison"
	QuestionTypeSequenceDisplay = "sequence_display"
	QuestionTypeTextHeader      = "text_header"
	QuestionTypeSectionDivider  = "section_divider"
	QuestionTypeInfoText        = "info_text"
)

// ShowIfRule gates a question's visibility on another question's answer.
type ShowIfRule struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
}

type conditionalLogic struct {
	ShowIf *ShowIfRule `json:"showIf,omitempty"`
}

type AnalysisQuestion struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Step             AnalysisStep   `gorm:"column:step;not null;index" json:"step"`
	Type             string         `gorm:"column:type;not null" json:"type"`
	Text             string         `gorm:"column:text;type:text;not null" json:"text"`
	Required         bool           `gorm:"column:required;not null;default:false" json:"required"`
	Order            int            `gorm:"column:question_order;not null;default:0" json:"order"`
	QuestionGroup    string         `gorm:"column:question_group;not null;default:'General'" json:"question_group"`
	GroupOrder       int            `gorm:"column:group_order;not null;default:0" json:"group_order"`
	ConditionalLogic datatypes.JSON `gorm:"type:jsonb;column:conditional_logic" json:"conditional_logic,omitempty"`
	Options          datatypes.JSON `gorm:"type:jsonb;column:options" json:"options,omitempty"`
	CreatedAt        time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AnalysisQuestion) TableName() string { return "analysis_question" }

// ShowIf parses the conditional-logic blob. A missing or unparseable blob
// means the question is unconditionally visible.
func (q *AnalysisQuestion) ShowIf() *ShowIfRule {
	if len(q.ConditionalLogic) == 0 {
		return nil
	}
	var cl conditionalLogic
	if err := json.Unmarshal(q.ConditionalLogic, &cl); err != nil {
		return nil
	}
	return cl.ShowIf
}

// IsDisplayOnly reports whether the question type carries no answer semantics.
func (q *AnalysisQuestion) IsDisplayOnly() bool {
	switch q.Type {
	case QuestionTypeTextHeader, QuestionTypeSectionDivider, QuestionTypeInfoText,
		QuestionTypeBlastComparison, QuestionTypeSequenceDisplay:
		return true
	default:
		return false
	}
}
