package models

// Faculty represents a faculty at the university together with the students it owns.
// Students are held by value; graduation moves a record from enrolled to graduated.
type Faculty struct {
	name      string
	field     string
	enrolled  []Student
	graduated []Student
}

// NewFaculty creates a faculty with no students
func NewFaculty(name, field string) Faculty {
	return Faculty{name: name, field: field}
}

// Name returns the faculty name, which is also its lookup key
func (f *Faculty) Name() string {
	return f.name
}

// Field returns the field of study
func (f *Faculty) Field() string {
	return f.field
}

// AddStudent appends a student to the enrolled list. Duplicate IDs are accepted.
func (f *Faculty) AddStudent(student Student) {
	f.enrolled = append(f.enrolled, student)
}

// GraduateStudent moves the first enrolled student with the given ID to the
// graduated list. An unknown ID leaves the faculty unchanged.
func (f *Faculty) GraduateStudent(studentID string) {
	idx := indexOfStudent(f.enrolled, studentID)
	if idx < 0 {
		return
	}

	student := f.enrolled[idx]
	student.Graduate()
	f.graduated = append(f.graduated, student)
	f.enrolled = append(f.enrolled[:idx], f.enrolled[idx+1:]...)
}

// ListEnrolled returns the full names of enrolled students in insertion order
func (f *Faculty) ListEnrolled() []string {
	return fullNames(f.enrolled)
}

// ListGraduates returns the full names of graduated students in graduation order
func (f *Faculty) ListGraduates() []string {
	return fullNames(f.graduated)
}

// HasStudent reports whether the ID belongs to an enrolled or graduated student
func (f *Faculty) HasStudent(studentID string) bool {
	return indexOfStudent(f.enrolled, studentID) >= 0 || indexOfStudent(f.graduated, studentID) >= 0
}

// IsEnrolled reports whether the ID belongs to a currently enrolled student
func (f *Faculty) IsEnrolled(studentID string) bool {
	return indexOfStudent(f.enrolled, studentID) >= 0
}

// Enrolled returns a copy of the enrolled student records
func (f *Faculty) Enrolled() []Student {
	return append([]Student{}, f.enrolled...)
}

// Graduates returns a copy of the graduated student records
func (f *Faculty) Graduates() []Student {
	return append([]Student{}, f.graduated...)
}

func indexOfStudent(students []Student, studentID string) int {
	for i := range students {
		if students[i].StudentID == studentID {
			return i
		}
	}
	return -1
}

func fullNames(students []Student) []string {
	names := make([]string, 0, len(students))
	for _, s := range students {
		names = append(names, s.FullName())
	}
	return names
}
