package models

// University owns every faculty. It is not safe for concurrent use; callers
// that share one across goroutines must serialize access themselves.
type University struct {
	name      string
	faculties []Faculty
}

// NewUniversity creates a university with no faculties
func NewUniversity(name string) *University {
	return &University{name: name}
}

// Name returns the university name
func (u *University) Name() string {
	return u.name
}

// CreateFaculty appends a new empty faculty and returns a handle to it.
// Faculty names are not checked for duplicates; lookups return the first match.
func (u *University) CreateFaculty(name, field string) FacultyHandle {
	u.faculties = append(u.faculties, NewFaculty(name, field))
	return FacultyHandle{university: u, index: len(u.faculties) - 1}
}

// GetFacultyByName returns a handle to the first faculty with the exact name
func (u *University) GetFacultyByName(name string) (FacultyHandle, bool) {
	for i := range u.faculties {
		if u.faculties[i].Name() == name {
			return FacultyHandle{university: u, index: i}, true
		}
	}
	return FacultyHandle{}, false
}

// SearchFacultyByStudent returns the name of the first faculty, in creation
// order, that has ever held the given student ID
func (u *University) SearchFacultyByStudent(studentID string) (string, bool) {
	for i := range u.faculties {
		if u.faculties[i].HasStudent(studentID) {
			return u.faculties[i].Name(), true
		}
	}
	return "", false
}

// ListAllFaculties returns faculty names in creation order
func (u *University) ListAllFaculties() []string {
	names := make([]string, 0, len(u.faculties))
	for i := range u.faculties {
		names = append(names, u.faculties[i].Name())
	}
	return names
}

// ListFacultiesByField returns names of faculties whose field matches exactly
func (u *University) ListFacultiesByField(field string) []string {
	names := []string{}
	for i := range u.faculties {
		if u.faculties[i].Field() == field {
			names = append(names, u.faculties[i].Name())
		}
	}
	return names
}

// Faculties returns handles to every faculty in creation order
func (u *University) Faculties() []FacultyHandle {
	handles := make([]FacultyHandle, 0, len(u.faculties))
	for i := range u.faculties {
		handles = append(handles, FacultyHandle{university: u, index: i})
	}
	return handles
}

// FacultyHandle refers to a faculty by its position in the owning university.
// It stays valid when later faculties are created, and every change made
// through it is visible through the university.
type FacultyHandle struct {
	university *University
	index      int
}

// Valid reports whether the handle refers to a faculty
func (h FacultyHandle) Valid() bool {
	return h.university != nil && h.index >= 0 && h.index < len(h.university.faculties)
}

func (h FacultyHandle) faculty() *Faculty {
	return &h.university.faculties[h.index]
}

// Name returns the faculty name
func (h FacultyHandle) Name() string { return h.faculty().Name() }

// Field returns the faculty field of study
func (h FacultyHandle) Field() string { return h.faculty().Field() }

// AddStudent enrolls a student in the faculty
func (h FacultyHandle) AddStudent(student Student) { h.faculty().AddStudent(student) }

// GraduateStudent graduates the first enrolled student with the ID, if any
func (h FacultyHandle) GraduateStudent(studentID string) { h.faculty().GraduateStudent(studentID) }

// ListEnrolled returns the full names of enrolled students
func (h FacultyHandle) ListEnrolled() []string { return h.faculty().ListEnrolled() }

// ListGraduates returns the full names of graduated students
func (h FacultyHandle) ListGraduates() []string { return h.faculty().ListGraduates() }

// HasStudent reports whether the faculty holds the ID in either list
func (h FacultyHandle) HasStudent(studentID string) bool { return h.faculty().HasStudent(studentID) }

// IsEnrolled reports whether the ID is currently enrolled
func (h FacultyHandle) IsEnrolled(studentID string) bool { return h.faculty().IsEnrolled(studentID) }

// Enrolled returns a copy of the enrolled records
func (h FacultyHandle) Enrolled() []Student { return h.faculty().Enrolled() }

// Graduates returns a copy of the graduated records
func (h FacultyHandle) Graduates() []Student { return h.faculty().Graduates() }
