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

// FacultyController handles faculty-related operations
type FacultyController struct {
	registry services.RegistryService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(registry services.RegistryService) *FacultyController {
	return &FacultyController{
		registry: registry,
	}
}

// GetUniversity returns the university name and faculty count
// @Summary Get university
// @Tags university
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.UniversityResponse}
// @Router /university [get]
func (c *FacultyController) GetUniversity(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.UniversityResponse{
		Name:         c.registry.UniversityName(),
		FacultyCount: c.registry.FacultyCount(),
	}, ""))
}

// CreateFaculty handles faculty creation
// @Summary Create a new faculty
// @Description Creates a faculty. Names are not checked for duplicates; lookups return the first match.
// @Tags faculties
// @Accept json
// @Produce json
// @Param request body dto.CreateFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty created successfully"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Router /faculties [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, fmt.Errorf("%w: invalid faculty data: %v", apperrors.ErrValidationFailed, err))
		return
	}

	c.registry.CreateFaculty(req.Name, req.Field)

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.FacultyResponse{
		Name:      req.Name,
		Field:     req.Field,
		Enrolled:  []dto.StudentResponse{},
		Graduates: []dto.StudentResponse{},
	}, "Faculty created successfully"))
}

// ListFaculties lists faculty names in creation order, optionally filtered by field
// @Summary List faculties
// @Tags faculties
// @Produce json
// @Param field query string false "Exact, case-sensitive field of study"
// @Success 200 {object} dto.APIResponse{data=dto.NameListResponse}
// @Router /faculties [get]
func (c *FacultyController) ListFaculties(ctx *gin.Context) {
	var names []string
	if field, ok := ctx.GetQuery("field"); ok {
		names = c.registry.ListFacultiesByField(field)
	} else {
		names = c.registry.ListAllFaculties()
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewNameListResponse(names), ""))
}

// GetFacultyByName retrieves the first faculty with the given name
// @Summary Get faculty details
// @Tags faculties
// @Produce json
// @Param name path string true "Faculty name"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyResponse}
// @Failure 404 {object} dto.APIResponse "Faculty not found"
// @Router /faculties/{name} [get]
func (c *FacultyController) GetFacultyByName(ctx *gin.Context) {
	snap, err := c.registry.GetFaculty(ctx.Param("name"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewFacultyResponse(snap), ""))
}
