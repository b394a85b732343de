package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/services"
	"github.com/yigit/ams/internal/middleware"
)

// FacultyController handles faculty-related operations
type FacultyController struct {
	facultyService services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// RegisterFaculty handles faculty registration
// @Summary Register a faculty member
// @Description Registers a faculty member in one of the college's course departments and emails a generated password
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Param request body dto.RegisterFacultyRequest true "Faculty information"
// @Success 201 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course department not offered"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /colleges/{collegeId}/faculty [post]
func (c *FacultyController) RegisterFaculty(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseIDParam(ctx, "collegeId", "college")
	if !ok {
		return
	}
	var req dto.RegisterFacultyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.Register(ctx.Request.Context(), p, collegeID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(faculty, "Faculty registered successfully"))
}

// ImportFaculty registers faculty from an uploaded spreadsheet
// @Summary Import faculty from a spreadsheet
// @Description Columns: name, email, number, designation, course, department. Failed rows are reported without aborting the batch.
// @Tags faculty
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Param file formData file true "Spreadsheet (.xlsx)"
// @Success 200 {object} dto.APIResponse{data=dto.BulkImportResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing or unreadable file"
// @Router /colleges/{collegeId}/faculty/import [post]
func (c *FacultyController) ImportFaculty(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseIDParam(ctx, "collegeId", "college")
	if !ok {
		return
	}
	upload, ok := readUpload(ctx)
	if !ok {
		return
	}

	result, err := c.facultyService.Import(ctx.Request.Context(), p, collegeID, upload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Faculty import finished"))
}

// ListHODs lists the heads of department of a college
// @Summary List HODs
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultyResponse}
// @Router /colleges/{collegeId}/hods [get]
func (c *FacultyController) ListHODs(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseIDParam(ctx, "collegeId", "college")
	if !ok {
		return
	}

	hods, err := c.facultyService.ListHODs(ctx.Request.Context(), p, collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(hods, ""))
}

// ListDepartmentFaculty lists the faculty of the caller's department
// @Summary List department faculty
// @Tags faculty
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.FacultyResponse}
// @Router /faculty/department [get]
func (c *FacultyController) ListDepartmentFaculty(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}

	faculty, err := c.facultyService.ListDepartmentFaculty(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, ""))
}

// UpdateFaculty updates an existing faculty member
// @Summary Update a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param facultyId path int true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Updated faculty information"
// @Success 200 {object} dto.APIResponse{data=dto.FacultyResponse} "Faculty updated"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /faculty/{facultyId} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "facultyId", "faculty")
	if !ok {
		return
	}
	var req dto.UpdateFacultyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	faculty, err := c.facultyService.Update(ctx.Request.Context(), p, facultyID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, "Faculty updated successfully"))
}

// DeleteFaculty removes a faculty member and their assignments
// @Summary Delete a faculty member
// @Tags faculty
// @Security BearerAuth
// @Param facultyId path int true "Faculty ID"
// @Success 204 "Faculty deleted"
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{facultyId} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	facultyID, ok := parseIDParam(ctx, "facultyId", "faculty")
	if !ok {
		return
	}

	if err := c.facultyService.Delete(ctx.Request.Context(), p, facultyID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
