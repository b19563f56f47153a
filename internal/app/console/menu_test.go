package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/services"
)

func runScript(t *testing.T, lines ...string) string {
	t.Helper()
	svc := services.NewRegistryService(models.NewUniversity("Technical University of Moldova"), zerolog.Nop())

	var out bytes.Buffer
	menu := NewMenu(svc, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, zerolog.Nop())
	if err := menu.Run(); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}
	return out.String()
}

func assertContainsInOrder(t *testing.T, output string, want ...string) {
	t.Helper()
	rest := output
	for _, w := range want {
		idx := strings.Index(rest, w)
		if idx < 0 {
			t.Fatalf("expected %q after previous matches in output:\n%s", w, output)
		}
		rest = rest[idx+len(w):]
	}
}

func TestMenuWorkedExample(t *testing.T) {
	out := runScript(t,
		"1", "CS", "Computing",
		"2", "CS", "Ana", "Pop", "S1", "a@x.com", "01-01-2000",
		"4", "CS",
		"3", "CS", "S1",
		"4", "CS",
		"5", "CS",
		"6", "S1",
		"0",
	)

	assertContainsInOrder(t, out,
		"Faculty created successfully.",
		"Student added successfully.",
		"Enrolled Students in CS:\n- Ana Pop\n",
		"Student graduated successfully.",
		"Enrolled Students in CS:\n\n",
		"Graduated Students in CS:\n- Ana Pop\n",
		"Student belongs to: CS\n",
		"Exiting...",
	)
	if strings.Contains(out, "Warning:") {
		t.Fatalf("did not expect warnings:\n%s", out)
	}
}

func TestMenuFacultyNotFound(t *testing.T) {
	out := runScript(t,
		"2", "Nowhere",
		"3", "Nowhere",
		"4", "Nowhere",
		"5", "Nowhere",
		"0",
	)

	if got := strings.Count(out, "Faculty not found."); got != 4 {
		t.Fatalf("expected 4 not-found messages, got %d:\n%s", got, out)
	}
	if strings.Contains(out, "Enter Student's First Name") || strings.Contains(out, "Enter Student ID") {
		t.Fatalf("should not prompt for student fields after a faculty miss:\n%s", out)
	}
}

func TestMenuGraduateUnknownStudentStillReportsSuccess(t *testing.T) {
	out := runScript(t,
		"1", "CS", "Computing",
		"3", "CS", "ghost",
		"5", "CS",
		"0",
	)

	assertContainsInOrder(t, out,
		"Student graduated successfully.",
		"Graduated Students in CS:\n\n",
	)
}

func TestMenuSearchMissAndListings(t *testing.T) {
	out := runScript(t,
		"6", "S9",
		"1", "FCIM", "Computing",
		"1", "FEN", "Energy",
		"1", "FAI", "Computing",
		"7",
		"8", "Computing",
		"0",
	)

	assertContainsInOrder(t, out,
		"Student belongs to: Student not found in any faculty.",
		"Faculties in Technical University of Moldova:\n- FCIM\n- FEN\n- FAI\n",
		"Faculties in the field of Computing:\n- FCIM\n- FAI\n",
	)
}

func TestMenuInvalidChoices(t *testing.T) {
	out := runScript(t, "9", "abc", "", "0")

	if got := strings.Count(out, "Invalid choice! Please try again."); got != 3 {
		t.Fatalf("expected 3 invalid-choice messages, got %d:\n%s", got, out)
	}
}

func TestMenuPrintsValidationWarnings(t *testing.T) {
	out := runScript(t,
		"1", "CS", "Computing",
		"2", "CS", "Ana", "Pop", "S1", "not-an-email", "2000/01/01",
		"0",
	)

	assertContainsInOrder(t, out,
		"Student added successfully.",
		"Warning: email must be a valid email",
		"Warning: dateOfBirth must use the DD-MM-YYYY format",
	)
}

func TestMenuEndOfInputExits(t *testing.T) {
	svc := services.NewRegistryService(models.NewUniversity("TUM"), zerolog.Nop())

	var out bytes.Buffer
	menu := NewMenu(svc, strings.NewReader("1\nCS\n"), &out, zerolog.Nop())
	if err := menu.Run(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(out.String(), "Exiting...\n") {
		t.Fatalf("expected graceful exit, got:\n%s", out.String())
	}
	if svc.FacultyCount() != 0 {
		t.Fatal("faculty must not be created from a truncated prompt")
	}
}

func TestMenuSurvivesVeryLongLines(t *testing.T) {
	long := strings.Repeat("x", 256*1024)
	out := runScript(t,
		long,
		"1", long, "Computing",
		"7",
		"0",
	)

	assertContainsInOrder(t, out,
		"Invalid choice! Please try again.",
		"Faculty created successfully.",
		"- "+long+"\n",
		"Exiting...",
	)
}

func TestMenuLastLineWithoutNewline(t *testing.T) {
	svc := services.NewRegistryService(models.NewUniversity("Technical University of Moldova"), zerolog.Nop())

	var out bytes.Buffer
	menu := NewMenu(svc, strings.NewReader("1\r\nCS\r\nComputing\r\n7"), &out, zerolog.Nop())
	if err := menu.Run(); err != nil {
		t.Fatalf("menu returned error: %v", err)
	}

	assertContainsInOrder(t, out.String(),
		"Faculty created successfully.",
		"Faculties in Technical University of Moldova:\n- CS\n",
		"Exiting...",
	)
}
