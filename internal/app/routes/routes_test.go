package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/uniregistry/internal/app/controllers"
	"github.com/yigit/uniregistry/internal/app/models"
	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/app/services"
)

type envelope struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message"`
	Data     json.RawMessage     `json:"data"`
	Error    *dto.ErrorDetail    `json:"error"`
	Warnings []dto.WarningDetail `json:"warnings"`
}

func newTestRouter(t *testing.T) (*gin.Engine, services.RegistryService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := services.NewRegistryService(models.NewUniversity("Technical University of Moldova"), zerolog.Nop())
	router := gin.New()
	SetupRouter(router, controllers.NewFacultyController(registry), controllers.NewStudentController(registry))
	return router, registry
}

func do(t *testing.T, router *gin.Engine, method, path string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return rec.Code, env
}

func decode(t *testing.T, raw json.RawMessage, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("failed to decode data %s: %v", raw, err)
	}
}

func TestAPIWorkedExample(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodPost, "/api/v1/faculties", dto.CreateFacultyRequest{Name: "CS", Field: "Computing"})
	if code != http.StatusCreated || !env.Success {
		t.Fatalf("create faculty: status %d env %+v", code, env)
	}

	code, env = do(t, router, http.MethodPost, "/api/v1/faculties/CS/students", dto.AddStudentRequest{
		FirstName: "Ana", LastName: "Pop", StudentID: "S1", Email: "a@x.com", DateOfBirth: "01-01-2000",
	})
	if code != http.StatusCreated {
		t.Fatalf("add student: status %d env %+v", code, env)
	}
	if len(env.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", env.Warnings)
	}

	code, env = do(t, router, http.MethodGet, "/api/v1/faculties/CS/students/enrolled", nil)
	var list dto.StudentListResponse
	decode(t, env.Data, &list)
	if code != http.StatusOK || !reflect.DeepEqual(list.Names, []string{"Ana Pop"}) {
		t.Fatalf("enrolled: status %d list %+v", code, list)
	}

	code, env = do(t, router, http.MethodPost, "/api/v1/faculties/CS/students/S1/graduate", nil)
	decode(t, env.Data, &list)
	if code != http.StatusOK || !reflect.DeepEqual(list.Names, []string{"Ana Pop"}) || list.Group != "graduated" {
		t.Fatalf("graduate: status %d list %+v", code, list)
	}

	_, env = do(t, router, http.MethodGet, "/api/v1/faculties/CS/students/enrolled", nil)
	decode(t, env.Data, &list)
	if len(list.Names) != 0 || list.Names == nil {
		t.Fatalf("expected empty non-null enrolled list, got %+v", list)
	}

	code, env = do(t, router, http.MethodGet, "/api/v1/students/S1/faculty", nil)
	var found dto.StudentFacultyResponse
	decode(t, env.Data, &found)
	if code != http.StatusOK || found.Faculty != "CS" {
		t.Fatalf("search: status %d data %+v", code, found)
	}

	code, env = do(t, router, http.MethodGet, "/api/v1/faculties/CS", nil)
	var faculty dto.FacultyResponse
	decode(t, env.Data, &faculty)
	if code != http.StatusOK || len(faculty.Graduates) != 1 || !faculty.Graduates[0].Graduated || faculty.Graduates[0].FullName != "Ana Pop" {
		t.Fatalf("faculty detail: status %d data %+v", code, faculty)
	}
}

func TestAPIFacultyNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	requests := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/api/v1/faculties/Nowhere", nil},
		{http.MethodPost, "/api/v1/faculties/Nowhere/students", dto.AddStudentRequest{StudentID: "S1"}},
		{http.MethodGet, "/api/v1/faculties/Nowhere/students/enrolled", nil},
		{http.MethodGet, "/api/v1/faculties/Nowhere/students/graduated", nil},
		{http.MethodPost, "/api/v1/faculties/Nowhere/students/S1/graduate", nil},
	}

	for _, r := range requests {
		code, env := do(t, router, r.method, r.path, r.body)
		if code != http.StatusNotFound || env.Error == nil || env.Error.Code != dto.ErrorCodeResourceNotFound {
			t.Errorf("%s %s: expected 404 RES_001, got %d %+v", r.method, r.path, code, env.Error)
		}
	}
}

func TestAPIGraduateUnknownStudentIsOK(t *testing.T) {
	router, registry := newTestRouter(t)
	registry.CreateFaculty("CS", "Computing")

	code, env := do(t, router, http.MethodPost, "/api/v1/faculties/CS/students/ghost/graduate", nil)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("expected 200 success, got %d %+v", code, env)
	}
}

func TestAPISearchMiss(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodGet, "/api/v1/students/S404/faculty", nil)
	if code != http.StatusNotFound || env.Error == nil || env.Error.Field != "studentId" {
		t.Fatalf("expected 404 for unknown student, got %d %+v", code, env)
	}
}

func TestAPIListFaculties(t *testing.T) {
	router, registry := newTestRouter(t)
	registry.CreateFaculty("Computer Science", "Computing")
	registry.CreateFaculty("FEN", "Energy")
	registry.CreateFaculty("FAI", "Computing")

	_, env := do(t, router, http.MethodGet, "/api/v1/faculties", nil)
	var list dto.NameListResponse
	decode(t, env.Data, &list)
	if want := []string{"Computer Science", "FEN", "FAI"}; !reflect.DeepEqual(list.Names, want) || list.Count != 3 {
		t.Fatalf("expected %v, got %+v", want, list)
	}

	_, env = do(t, router, http.MethodGet, "/api/v1/faculties?field="+url.QueryEscape("Computing"), nil)
	decode(t, env.Data, &list)
	if want := []string{"Computer Science", "FAI"}; !reflect.DeepEqual(list.Names, want) {
		t.Fatalf("expected %v, got %+v", want, list)
	}

	_, env = do(t, router, http.MethodGet, "/api/v1/faculties?field=", nil)
	decode(t, env.Data, &list)
	if len(list.Names) != 0 {
		t.Fatalf("expected no faculty with empty field, got %+v", list)
	}

	code, env := do(t, router, http.MethodGet, "/api/v1/faculties/"+url.PathEscape("Computer Science"), nil)
	if code != http.StatusOK {
		t.Fatalf("expected escaped name lookup to succeed, got %d %+v", code, env)
	}

	_, env = do(t, router, http.MethodGet, "/api/v1/university", nil)
	var uni dto.UniversityResponse
	decode(t, env.Data, &uni)
	if uni.Name != "Technical University of Moldova" || uni.FacultyCount != 3 {
		t.Fatalf("unexpected university %+v", uni)
	}
}

func TestAPIAddStudentWarningsAndBadJSON(t *testing.T) {
	router, registry := newTestRouter(t)
	registry.CreateFaculty("CS", "Computing")

	code, env := do(t, router, http.MethodPost, "/api/v1/faculties/CS/students", dto.AddStudentRequest{
		FirstName: "Ana", LastName: "Pop", StudentID: "S1", Email: "nope",
	})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	if len(env.Warnings) != 1 || env.Warnings[0].Field != "email" {
		t.Fatalf("expected an email warning, got %+v", env.Warnings)
	}

	code, env = do(t, router, http.MethodPost, "/api/v1/faculties/CS/students", "{not json")
	if code != http.StatusBadRequest || env.Error == nil || env.Error.Code != dto.ErrorCodeValidationFailed {
		t.Fatalf("expected 400 VAL_001, got %d %+v", code, env.Error)
	}

	code, _ = do(t, router, http.MethodPost, "/api/v1/faculties", "[]")
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-object faculty payload, got %d", code)
	}
}

func TestAPIHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodGet, "/api/v1/health", nil)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("expected healthy response, got %d %+v", code, env)
	}
}

func TestAPIUnknownRouteUsesEnvelope(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodGet, "/api/v1/nothing-here", nil)
	if code != http.StatusNotFound || env.Success || env.Error == nil || env.Error.Code != dto.ErrorCodeResourceNotFound {
		t.Fatalf("expected 404 RES_001 envelope, got %d %+v", code, env.Error)
	}
	if details, _ := env.Error.Details.(string); details != "no route for GET /api/v1/nothing-here" {
		t.Fatalf("unexpected details %v", env.Error.Details)
	}
}

func TestAPIBadJSONDetails(t *testing.T) {
	router, _ := newTestRouter(t)

	code, env := do(t, router, http.MethodPost, "/api/v1/faculties", "{")
	if code != http.StatusBadRequest || env.Error == nil || env.Error.Code != dto.ErrorCodeValidationFailed {
		t.Fatalf("expected 400 VAL_001, got %d %+v", code, env.Error)
	}
	if details, _ := env.Error.Details.(string); !strings.HasPrefix(details, "validation failed: invalid faculty data") {
		t.Fatalf("unexpected details %v", env.Error.Details)
	}
}
