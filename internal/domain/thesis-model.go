package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserType string

const (
	UserTypeLPU    UserType = "lpu"
	UserTypeNonLPU UserType = "non-lpu"
)

func (t UserType) Valid() bool {
	return t == UserTypeLPU || t == UserTypeNonLPU
}

// ThesisSubmission is one thesis record collected by the public form.
// Exactly one of (StudentNumber + ProgramDepartment) or SchoolName is set,
// depending on UserType.
type ThesisSubmission struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt         time.Time `gorm:"autoCreateTime;index:idx_thesis_submissions_created_at,sort:desc" json:"created_at"`
	UserType          UserType  `gorm:"type:varchar(10);not null" json:"user_type"`
	Name              string    `gorm:"type:text;not null" json:"name"`
	StudentNumber     *string   `gorm:"type:text" json:"student_number,omitempty"`
	ProgramDepartment *string   `gorm:"type:text" json:"program_department,omitempty"`
	SchoolName        *string   `gorm:"type:text" json:"school_name,omitempty"`
	ThesisTitle       string    `gorm:"type:text;not null" json:"thesis_title"`
}

func (ThesisSubmission) TableName() string {
	return "thesis_submissions"
}

func (t *ThesisSubmission) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
