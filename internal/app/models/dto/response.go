package dto

import "time"

// APIResponse is the envelope returned by every endpoint
type APIResponse struct {
	Success   bool            `json:"success" example:"true"`
	Message   string          `json:"message,omitempty" example:"Faculty created successfully"`
	Data      interface{}     `json:"data,omitempty"`
	Error     *ErrorDetail    `json:"error,omitempty"`
	Warnings  []WarningDetail `json:"warnings,omitempty"`
	Timestamp time.Time       `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// WarningDetail describes a non-blocking problem with submitted data
type WarningDetail struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"must be a valid email"`
}

// NewSuccessResponse creates a successful envelope around data
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NameListResponse wraps an ordered list of names
type NameListResponse struct {
	Names []string `json:"names"`
	Count int      `json:"count" example:"2"`
}

// NewNameListResponse builds a NameListResponse, never encoding a null list
func NewNameListResponse(names []string) NameListResponse {
	if names == nil {
		names = []string{}
	}
	return NameListResponse{Names: names, Count: len(names)}
}

// UniversityResponse describes the managed university
type UniversityResponse struct {
	Name         string `json:"name" example:"Technical University of Moldova"`
	FacultyCount int    `json:"facultyCount" example:"3"`
}
