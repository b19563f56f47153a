package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/app/services"
	"github.com/yigit/uniregistry/internal/middleware"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
)

// StudentController handles student operations scoped to a faculty
type StudentController struct {
	registry services.RegistryService
}

// NewStudentController creates a new StudentController
func NewStudentController(registry services.RegistryService) *StudentController {
	return &StudentController{
		registry: registry,
	}
}

// AddStudent enrolls a student in a faculty
// @Summary Add a student to a faculty
// @Description Field problems are returned as warnings and never block the add
// @Tags students
// @Accept json
// @Produce json
// @Param name path string true "Faculty name"
// @Param request body dto.AddStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculties/{name}/students [post]
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var req dto.AddStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: invalid student data: %v", apperrors.ErrValidationFailed, err))
		return
	}

	student := req.ToModel()
	warnings, err := c.registry.AddStudent(ctx.Param("name"), student)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp := dto.NewSuccessResponse(dto.NewStudentResponse(student), "Student added successfully")
	resp.Warnings = dto.NewWarningDetails(warnings)
	ctx.JSON(http.StatusCreated, resp)
}

// GraduateStudent graduates the first enrolled student with the given ID.
// The response is the same whether or not a student matched.
// @Summary Graduate a student
// @Tags students
// @Produce json
// @Param name path string true "Faculty name"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculties/{name}/students/{studentId}/graduate [post]
func (c *StudentController) GraduateStudent(ctx *gin.Context) {
	facultyName := ctx.Param("name")
	graduates, err := c.registry.GraduateStudent(facultyName, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		dto.NewStudentListResponse(facultyName, "graduated", graduates),
		"Student graduated successfully",
	))
}

// ListEnrolled lists the full names of enrolled students
// @Summary List enrolled students
// @Tags students
// @Produce json
// @Param name path string true "Faculty name"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculties/{name}/students/enrolled [get]
func (c *StudentController) ListEnrolled(ctx *gin.Context) {
	c.listGroup(ctx, "enrolled", c.registry.ListEnrolled)
}

// ListGraduates lists the full names of graduated students
// @Summary List graduated students
// @Tags students
// @Produce json
// @Param name path string true "Faculty name"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculties/{name}/students/graduated [get]
func (c *StudentController) ListGraduates(ctx *gin.Context) {
	c.listGroup(ctx, "graduated", c.registry.ListGraduates)
}

func (c *StudentController) listGroup(ctx *gin.Context, group string, list func(string) ([]string, error)) {
	facultyName := ctx.Param("name")
	names, err := list(facultyName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewStudentListResponse(facultyName, group, names), ""))
}

// SearchFacultyByStudent finds the first faculty, in creation order, holding the student
// @Summary Find a student's faculty
// @Tags students
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentFacultyResponse}
// @Failure 404 {object} dto.APIResponse "Student not found in any faculty"
// @Router /students/{studentId}/faculty [get]
func (c *StudentController) SearchFacultyByStudent(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	faculty, ok := c.registry.SearchFacultyByStudent(studentID)
	if !ok {
		middleware.HandleAPIError(ctx, apperrors.ErrStudentNotFound)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.StudentFacultyResponse{
		StudentID: studentID,
		Faculty:   faculty,
	}, ""))
}
