package dto

import (
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/pkg/validation"
)

// AddStudentRequest represents the data needed to enroll a student
type AddStudentRequest struct {
	FirstName   string `json:"firstName" example:"Ana"`
	LastName    string `json:"lastName" example:"Pop"`
	StudentID   string `json:"studentId" example:"S1"`
	Email       string `json:"email" example:"ana.pop@utm.md"`
	DateOfBirth string `json:"dateOfBirth" example:"01-01-2000"`
}

// ToModel converts the request into an enrolled student record
func (r AddStudentRequest) ToModel() models.Student {
	return models.NewStudent(r.FirstName, r.LastName, r.StudentID, r.Email, r.DateOfBirth)
}

// StudentResponse represents a student record
type StudentResponse struct {
	FullName    string `json:"fullName" example:"Ana Pop"`
	FirstName   string `json:"firstName" example:"Ana"`
	LastName    string `json:"lastName" example:"Pop"`
	StudentID   string `json:"studentId" example:"S1"`
	Email       string `json:"email" example:"ana.pop@utm.md"`
	DateOfBirth string `json:"dateOfBirth" example:"01-01-2000"`
	Graduated   bool   `json:"graduated" example:"false"`
}

// StudentFacultyResponse answers which faculty holds a student
type StudentFacultyResponse struct {
	StudentID string `json:"studentId" example:"S1"`
	Faculty   string `json:"faculty" example:"CS"`
}

// NewStudentResponse converts a student record
func NewStudentResponse(s models.Student) StudentResponse {
	return StudentResponse{
		FullName:    s.FullName(),
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		StudentID:   s.StudentID,
		Email:       s.Email,
		DateOfBirth: s.DateOfBirth,
		Graduated:   s.IsGraduated(),
	}
}

// NewStudentResponses converts a list of student records, keeping order
func NewStudentResponses(students []models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

// NewWarningDetails converts validation warnings for the response envelope
func NewWarningDetails(warnings []validation.Warning) []WarningDetail {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]WarningDetail, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, WarningDetail{Field: w.Field, Message: w.Message})
	}
	return out
}
