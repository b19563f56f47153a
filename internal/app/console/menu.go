package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

// Menu choices
const (
	ChoiceExit = iota
	ChoiceCreateFaculty
	ChoiceAddStudent
	ChoiceGraduateStudent
	ChoiceListEnrolled
	ChoiceListGraduates
	ChoiceSearchByStudent
	ChoiceListFaculties
	ChoiceListByField
)

const menuText = `
---- University Management System ----
1. Create Faculty
2. Add Student to Faculty
3. Graduate Student
4. Display Enrolled Students in Faculty
5. Display Graduated Students in Faculty
6. Search Faculty by Student ID
7. Display All Faculties
8. Display Faculties by Field
0. Exit
Enter your choice: `

const notFoundInAnyFaculty = "Student not found in any faculty."

// errInputClosed signals that the input ended in the middle of a prompt
var errInputClosed = errors.New("input closed")

// Menu drives the registry from a line-oriented text stream
type Menu struct {
	registry services.RegistryService
	in       *bufio.Reader
	out      io.Writer
	logger   zerolog.Logger
}

// NewMenu creates a menu reading commands from in and writing results to out
func NewMenu(registry services.RegistryService, in io.Reader, out io.Writer, logger zerolog.Logger) *Menu {
	return &Menu{
		registry: registry,
		in:       bufio.NewReader(in),
		out:      out,
		logger:   logger.With().Str("component", "console").Logger(),
	}
}

// Run shows the menu until the user picks 0 or the input ends
func (m *Menu) Run() error {
	for {
		m.print(menuText)

		line, err := m.readLine()
		if err != nil {
			if errors.Is(err, errInputClosed) {
				m.println("Exiting...")
				return nil
			}
			return err
		}

		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr != nil {
			choice = -1
		}

		if choice == ChoiceExit {
			m.println("Exiting...")
			return nil
		}

		if err := m.dispatch(choice); err != nil {
			if errors.Is(err, errInputClosed) {
				m.println("Exiting...")
				return nil
			}
			return err
		}
	}
}

func (m *Menu) dispatch(choice int) error {
	m.logger.Debug().Int("choice", choice).Msg("Menu choice")

	switch choice {
	case ChoiceCreateFaculty:
		return m.createFaculty()
	case ChoiceAddStudent:
		return m.addStudent()
	case ChoiceGraduateStudent:
		return m.graduateStudent()
	case ChoiceListEnrolled:
		return m.listStudents("Enrolled", m.registry.ListEnrolled)
	case ChoiceListGraduates:
		return m.listStudents("Graduated", m.registry.ListGraduates)
	case ChoiceSearchByStudent:
		return m.searchByStudent()
	case ChoiceListFaculties:
		m.printList("Faculties in "+m.registry.UniversityName()+":", m.registry.ListAllFaculties())
		return nil
	case ChoiceListByField:
		field, err := m.prompt("Enter Field: ")
		if err != nil {
			return err
		}
		m.printList("Faculties in the field of "+field+":", m.registry.ListFacultiesByField(field))
		return nil
	default:
		m.println("Invalid choice! Please try again.")
		return nil
	}
}

func (m *Menu) createFaculty() error {
	name, err := m.prompt("Enter Faculty Name: ")
	if err != nil {
		return err
	}
	field, err := m.prompt("Enter Faculty Field: ")
	if err != nil {
		return err
	}

	m.registry.CreateFaculty(name, field)
	m.println("Faculty created successfully.")
	return nil
}

func (m *Menu) addStudent() error {
	facultyName, err := m.prompt("Enter Faculty Name: ")
	if err != nil {
		return err
	}

	// ask for the student only when the faculty exists
	if _, err := m.registry.GetFaculty(facultyName); err != nil {
		return m.renderLookupError(err)
	}

	fields := make([]string, 0, 5)
	for _, p := range []string{
		"Enter Student's First Name: ",
		"Enter Student's Last Name: ",
		"Enter Student ID: ",
		"Enter Student Email: ",
		"Enter Student Date of Birth (DD-MM-YYYY): ",
	} {
		v, err := m.prompt(p)
		if err != nil {
			return err
		}
		fields = append(fields, v)
	}

	student := models.NewStudent(fields[0], fields[1], fields[2], fields[3], fields[4])
	warnings, err := m.registry.AddStudent(facultyName, student)
	if err != nil {
		return m.renderLookupError(err)
	}

	m.println("Student added successfully.")
	for _, w := range warnings {
		m.println("Warning: " + w.String())
	}
	return nil
}

func (m *Menu) graduateStudent() error {
	facultyName, err := m.prompt("Enter Faculty Name: ")
	if err != nil {
		return err
	}
	if _, err := m.registry.GetFaculty(facultyName); err != nil {
		return m.renderLookupError(err)
	}

	studentID, err := m.prompt("Enter Student ID: ")
	if err != nil {
		return err
	}
	if _, err := m.registry.GraduateStudent(facultyName, studentID); err != nil {
		return m.renderLookupError(err)
	}

	// reported regardless of whether an enrolled student matched
	m.println("Student graduated successfully.")
	return nil
}

func (m *Menu) listStudents(kind string, list func(string) ([]string, error)) error {
	facultyName, err := m.prompt("Enter Faculty Name: ")
	if err != nil {
		return err
	}

	names, err := list(facultyName)
	if err != nil {
		return m.renderLookupError(err)
	}
	m.printList(kind+" Students in "+facultyName+":", names)
	return nil
}

func (m *Menu) searchByStudent() error {
	studentID, err := m.prompt("Enter Student ID: ")
	if err != nil {
		return err
	}

	faculty, ok := m.registry.SearchFacultyByStudent(studentID)
	if !ok {
		faculty = notFoundInAnyFaculty
	}
	m.println("Student belongs to: " + faculty)
	return nil
}

func (m *Menu) renderLookupError(err error) error {
	if errors.Is(err, apperrors.ErrFacultyNotFound) {
		m.println("Faculty not found.")
		return nil
	}
	return err
}

func (m *Menu) prompt(label string) (string, error) {
	m.print(label)
	return m.readLine()
}

// readLine returns the next line without its terminator. Lines have no length
// limit; a final line without a newline is still returned.
func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			return "", errInputClosed
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (m *Menu) printList(header string, items []string) {
	m.println(header)
	for _, item := range items {
		m.println("- " + item)
	}
}

func (m *Menu) print(s string) {
	fmt.Fprint(m.out, s)
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}
