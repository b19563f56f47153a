package services

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
	"github.com/yigit/uniregistry/internal/pkg/validation"
)

// RegistryService defines the operations the console and HTTP drivers call
type RegistryService interface {
	UniversityName() string
	CreateFaculty(name, field string)
	GetFaculty(name string) (FacultySnapshot, error)
	AddStudent(facultyName string, student models.Student) ([]validation.Warning, error)
	GraduateStudent(facultyName, studentID string) ([]string, error)
	ListEnrolled(facultyName string) ([]string, error)
	ListGraduates(facultyName string) ([]string, error)
	SearchFacultyByStudent(studentID string) (string, bool)
	ListAllFaculties() []string
	ListFacultiesByField(field string) []string
	FacultyCount() int
}

// FacultySnapshot is a detached copy of one faculty, safe to hand to callers
// outside the service lock
type FacultySnapshot struct {
	Name      string
	Field     string
	Enrolled  []models.Student
	Graduates []models.Student
}

// registryServiceImpl implements the RegistryService interface.
// The university model has no locking of its own; mu serializes every call.
type registryServiceImpl struct {
	mu         sync.Mutex
	university *models.University
	logger     zerolog.Logger
}

// NewRegistryService creates a new registry service over the given university
func NewRegistryService(university *models.University, logger zerolog.Logger) RegistryService {
	return &registryServiceImpl{
		university: university,
		logger:     logger.With().Str("component", "registry").Logger(),
	}
}

// UniversityName returns the name of the managed university
func (s *registryServiceImpl) UniversityName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.university.Name()
}

// CreateFaculty creates a faculty. Duplicate names are accepted.
func (s *registryServiceImpl) CreateFaculty(name, field string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.university.GetFacultyByName(name); exists {
		s.logger.Warn().Str("faculty", name).Msg("Faculty name already used, new faculty will not be reachable by name")
	}

	s.university.CreateFaculty(name, field)
	s.logger.Debug().Str("faculty", name).Str("field", field).Msg("Faculty created")
}

// GetFaculty returns a snapshot of the first faculty with the given name
func (s *registryServiceImpl) GetFaculty(name string) (FacultySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	faculty, err := s.lookup(name)
	if err != nil {
		return FacultySnapshot{}, err
	}

	return FacultySnapshot{
		Name:      faculty.Name(),
		Field:     faculty.Field(),
		Enrolled:  faculty.Enrolled(),
		Graduates: faculty.Graduates(),
	}, nil
}

// AddStudent enrolls a student. Field checks only produce warnings.
func (s *registryServiceImpl) AddStudent(facultyName string, student models.Student) ([]validation.Warning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	faculty, err := s.lookup(facultyName)
	if err != nil {
		return nil, err
	}

	warnings := validation.CheckStudent(validation.StudentRecord{
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		StudentID:   student.StudentID,
		Email:       student.Email,
		DateOfBirth: student.DateOfBirth,
	})
	for _, w := range warnings {
		s.logger.Warn().Str("faculty", facultyName).Str("studentId", student.StudentID).
			Str("field", w.Field).Msg("Student record " + w.Message)
	}

	if faculty.HasStudent(student.StudentID) {
		s.logger.Warn().Str("faculty", facultyName).Str("studentId", student.StudentID).Msg("Student ID already present in faculty")
	}

	// records always enter as enrolled; graduation goes through GraduateStudent
	student.Graduated = false
	faculty.AddStudent(student)
	s.logger.Debug().Str("faculty", facultyName).Str("studentId", student.StudentID).Msg("Student added")

	return warnings, nil
}

// GraduateStudent graduates a student and returns the faculty's graduate names
// as of the same call. An unknown student ID is logged and ignored.
func (s *registryServiceImpl) GraduateStudent(facultyName, studentID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	faculty, err := s.lookup(facultyName)
	if err != nil {
		return nil, err
	}

	if !faculty.IsEnrolled(studentID) {
		s.logger.Warn().Str("faculty", facultyName).Str("studentId", studentID).Msg("No enrolled student with this ID, nothing to graduate")
	}

	faculty.GraduateStudent(studentID)
	s.logger.Debug().Str("faculty", facultyName).Str("studentId", studentID).Msg("Graduate requested")
	return faculty.ListGraduates(), nil
}

// ListEnrolled returns enrolled student names for a faculty
func (s *registryServiceImpl) ListEnrolled(facultyName string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	faculty, err := s.lookup(facultyName)
	if err != nil {
		return nil, err
	}
	return faculty.ListEnrolled(), nil
}

// ListGraduates returns graduated student names for a faculty
func (s *registryServiceImpl) ListGraduates(facultyName string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	faculty, err := s.lookup(facultyName)
	if err != nil {
		return nil, err
	}
	return faculty.ListGraduates(), nil
}

// SearchFacultyByStudent returns the first faculty holding the student ID
func (s *registryServiceImpl) SearchFacultyByStudent(studentID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.university.SearchFacultyByStudent(studentID)
}

// ListAllFaculties returns every faculty name in creation order
func (s *registryServiceImpl) ListAllFaculties() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.university.ListAllFaculties()
}

// ListFacultiesByField returns faculty names with an exactly matching field
func (s *registryServiceImpl) ListFacultiesByField(field string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.university.ListFacultiesByField(field)
}

// FacultyCount returns the number of faculties, duplicates included
func (s *registryServiceImpl) FacultyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.university.Faculties())
}

// lookup must be called with mu held
func (s *registryServiceImpl) lookup(name string) (models.FacultyHandle, error) {
	faculty, ok := s.university.GetFacultyByName(name)
	if !ok {
		s.logger.Debug().Str("faculty", name).Msg("Faculty lookup missed")
		return models.FacultyHandle{}, fmt.Errorf("faculty %q: %w", name, apperrors.ErrFacultyNotFound)
	}
	return faculty, nil
}
