package models

// Student is a single student record owned by exactly one faculty
type Student struct {
	FirstName   string `json:"firstName" yaml:"first_name" example:"Ana"`            // Student's first name
	LastName    string `json:"lastName" yaml:"last_name" example:"Pop"`              // Student's last name
	StudentID   string `json:"studentId" yaml:"student_id" example:"S1"`             // Lookup key inside a faculty, not enforced unique
	Email       string `json:"email" yaml:"email" example:"ana.pop@utm.md"`          // Contact email
	DateOfBirth string `json:"dateOfBirth" yaml:"date_of_birth" example:"01-01-2000"` // Free-form date of birth
	Graduated   bool   `json:"graduated" yaml:"graduated" example:"false"`           // Set once by Graduate
}

// NewStudent creates an enrolled (not graduated) student record
func NewStudent(firstName, lastName, studentID, email, dateOfBirth string) Student {
	return Student{
		FirstName:   firstName,
		LastName:    lastName,
		StudentID:   studentID,
		Email:       email,
		DateOfBirth: dateOfBirth,
	}
}

// FullName returns the first and last name joined by a single space
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// IsGraduated reports whether the student has been graduated
func (s Student) IsGraduated() bool {
	return s.Graduated
}

// Graduate marks the student as graduated. Calling it again has no effect.
func (s *Student) Graduate() {
	s.Graduated = true
}
