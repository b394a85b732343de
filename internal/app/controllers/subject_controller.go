package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/services"
	"github.com/yigit/ams/internal/middleware"
)

// SubjectController manages the subject catalog of a department
type SubjectController struct {
	subjectService services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// ImportSubjects applies an uploaded (semester, subject name) spreadsheet
// @Summary Import subjects from a spreadsheet
// @Description Idempotent: re-importing the same sheet creates nothing new. An unknown semester rolls back the whole import.
// @Tags subjects
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet (.xlsx) with columns semester, subject name"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectImportResponse}
// @Failure 400 {object} dto.ErrorResponse "Missing columns or unreadable file"
// @Failure 404 {object} dto.ErrorResponse "Semester not found"
// @Router /subjects/import [post]
func (c *SubjectController) ImportSubjects(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	upload, ok := readUpload(ctx)
	if !ok {
		return
	}

	result, err := c.subjectService.ImportSubjects(ctx.Request.Context(), p, upload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Subjects imported successfully"))
}

// AddSubjects applies catalog rows sent as JSON
// @Summary Add subjects
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AddSubjectsRequest true "Subjects"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectImportResponse}
// @Router /subjects [post]
func (c *SubjectController) AddSubjects(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	var req dto.AddSubjectsRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.subjectService.AddSubjects(ctx.Request.Context(), p, req.Subjects)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Subjects saved successfully"))
}

// ListSubjects lists the department's subjects by semester
// @Summary List semester subjects
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.SemesterSubjectResponse}
// @Router /subjects [get]
func (c *SubjectController) ListSubjects(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}

	subjects, err := c.subjectService.ListSemesterSubjects(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subjects, ""))
}
