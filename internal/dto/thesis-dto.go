package dto

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/SundayYogurt/thesis_service/internal/domain"
	"github.com/SundayYogurt/thesis_service/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SubmitThesisRequest is what the public form sends. Store-assigned fields
// (id, created_at) are never part of it.
type SubmitThesisRequest struct {
	UserType          domain.UserType `json:"user_type" validate:"required,oneof=lpu non-lpu"`
	Name              string          `json:"name" validate:"required"`
	StudentNumber     string          `json:"student_number,omitempty" validate:"required_if=UserType lpu"`
	ProgramDepartment string          `json:"program_department,omitempty" validate:"required_if=UserType lpu"`
	SchoolName        string          `json:"school_name,omitempty" validate:"required_if=UserType non-lpu"`
	ThesisTitle       string          `json:"thesis_title" validate:"required"`
}

type ThesisResponse struct {
	ID                uuid.UUID       `json:"id"`
	CreatedAt         time.Time       `json:"created_at"`
	UserType          domain.UserType `json:"user_type"`
	Name              string          `json:"name"`
	StudentNumber     *string         `json:"student_number,omitempty"`
	ProgramDepartment *string         `json:"program_department,omitempty"`
	SchoolName        *string         `json:"school_name,omitempty"`
	ThesisTitle       string          `json:"thesis_title"`
}

// ValidationError carries one message per offending field, keyed by JSON name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid submission: " + strings.Join(parts, "; ")
}

var fieldMessages = map[string]string{
	"user_type":          "User type must be lpu or non-lpu",
	"name":               "Name is required",
	"student_number":     "Student number is required for LPU students",
	"program_department": "Program/Department is required for LPU students",
	"school_name":        "School name is required for non-LPU students",
	"thesis_title":       "Thesis title is required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize cleans every text field and drops the pair that does not belong
// to the selected user type.
func (r *SubmitThesisRequest) Normalize() {
	r.UserType = domain.UserType(strings.ToLower(utils.CleanText(string(r.UserType))))
	r.Name = utils.CleanText(r.Name)
	r.StudentNumber = utils.CleanText(r.StudentNumber)
	r.ProgramDepartment = utils.CleanText(r.ProgramDepartment)
	r.SchoolName = utils.CleanText(r.SchoolName)
	r.ThesisTitle = utils.CleanText(r.ThesisTitle)

	switch r.UserType {
	case domain.UserTypeLPU:
		r.SchoolName = ""
	case domain.UserTypeNonLPU:
		r.StudentNumber = ""
		r.ProgramDepartment = ""
	}
}

// Validate checks the required-field rules. Call Normalize first so that
// whitespace-only values count as missing.
func (r SubmitThesisRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
		}
		fields[fe.Field()] = msg
	}
	return &ValidationError{Fields: fields}
}

func (r SubmitThesisRequest) ToModel() *domain.ThesisSubmission {
	m := &domain.ThesisSubmission{
		UserType:    r.UserType,
		Name:        r.Name,
		ThesisTitle: r.ThesisTitle,
	}
	switch r.UserType {
	case domain.UserTypeLPU:
		m.StudentNumber = utils.OptionalText(r.StudentNumber)
		m.ProgramDepartment = utils.OptionalText(r.ProgramDepartment)
	case domain.UserTypeNonLPU:
		m.SchoolName = utils.OptionalText(r.SchoolName)
	}
	return m
}

func ToThesisResponse(m domain.ThesisSubmission) ThesisResponse {
	return ThesisResponse{
		ID:                m.ID,
		CreatedAt:         m.CreatedAt,
		UserType:          m.UserType,
		Name:              m.Name,
		StudentNumber:     m.StudentNumber,
		ProgramDepartment: m.ProgramDepartment,
		SchoolName:        m.SchoolName,
		ThesisTitle:       m.ThesisTitle,
	}
}

func ToThesisResponses(list []domain.ThesisSubmission) []ThesisResponse {
	out := make([]ThesisResponse, 0, len(list))
	for _, m := range list {
		out = append(out, ToThesisResponse(m))
	}
	return out
}
