package dto

import "github.com/yigit/uniregistry/internal/app/services"

// CreateFacultyRequest represents faculty creation data.
// Empty values are accepted, matching the console.
type CreateFacultyRequest struct {
	Name  string `json:"name" example:"CS"`
	Field string `json:"field" example:"Computing"`
}

// FacultyResponse represents a faculty together with its students
type FacultyResponse struct {
	Name      string            `json:"name" example:"CS"`
	Field     string            `json:"field" example:"Computing"`
	Enrolled  []StudentResponse `json:"enrolled"`
	Graduates []StudentResponse `json:"graduates"`
}

// StudentListResponse lists full names of one group of a faculty
type StudentListResponse struct {
	Faculty string   `json:"faculty" example:"CS"`
	Group   string   `json:"group" example:"enrolled" enums:"enrolled,graduated"`
	Names   []string `json:"names"`
}

// NewFacultyResponse converts a service snapshot into its response form
func NewFacultyResponse(snap services.FacultySnapshot) FacultyResponse {
	return FacultyResponse{
		Name:      snap.Name,
		Field:     snap.Field,
		Enrolled:  NewStudentResponses(snap.Enrolled),
		Graduates: NewStudentResponses(snap.Graduates),
	}
}

// NewStudentListResponse builds a StudentListResponse, never encoding a null list
func NewStudentListResponse(faculty, group string, names []string) StudentListResponse {
	if names == nil {
		names = []string{}
	}
	return StudentListResponse{Faculty: faculty, Group: group, Names: names}
}
