package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/services"
	"github.com/yigit/ams/internal/middleware"
)

// LegacyController exposes the standalone registration records
type LegacyController struct {
	legacyService services.LegacyRegistrationService
}

// NewLegacyController creates a new LegacyController
func NewLegacyController(legacyService services.LegacyRegistrationService) *LegacyController {
	return &LegacyController{legacyService: legacyService}
}

// RegisterCollege
// @Summary Register a legacy college record
// @Tags legacy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LegacyCollegeRequest true "College"
// @Success 201 {object} dto.APIResponse{data=models.CollegeRegistration}
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Router /legacy/colleges [post]
func (c *LegacyController) RegisterCollege(ctx *gin.Context) {
	var req dto.LegacyCollegeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	college, err := c.legacyService.RegisterCollege(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(college, "College registered"))
}

// AuthenticateCollege
// @Summary Check legacy college credentials
// @Tags legacy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LegacyLoginRequest true "Email and password"
// @Success 200 {object} dto.APIResponse{data=models.CollegeRegistration}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /legacy/colleges/login [post]
func (c *LegacyController) AuthenticateCollege(ctx *gin.Context) {
	var req dto.LegacyLoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	college, err := c.legacyService.AuthenticateCollege(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(college, ""))
}

// ListColleges
// @Summary List legacy college records
// @Tags legacy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.CollegeRegistration}
// @Router /legacy/colleges [get]
func (c *LegacyController) ListColleges(ctx *gin.Context) {
	colleges, err := c.legacyService.ListColleges(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(colleges, ""))
}

// RegisterFaculty
// @Summary Register a legacy faculty record
// @Description The generated password is returned only in this response
// @Tags legacy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LegacyFacultyRequest true "Faculty"
// @Success 201 {object} dto.APIResponse{data=dto.LegacyCredentialsResponse}
// @Router /legacy/faculty [post]
func (c *LegacyController) RegisterFaculty(ctx *gin.Context) {
	var req dto.LegacyFacultyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	creds, err := c.legacyService.RegisterFaculty(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(creds, "Faculty registered"))
}

// AuthenticateFaculty
// @Summary Check legacy faculty credentials
// @Tags legacy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LegacyLoginRequest true "Faculty id and password"
// @Success 200 {object} dto.APIResponse{data=models.FacultyRegistration}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /legacy/faculty/login [post]
func (c *LegacyController) AuthenticateFaculty(ctx *gin.Context) {
	var req dto.LegacyLoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	faculty, err := c.legacyService.AuthenticateFaculty(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, ""))
}

// ListFaculty
// @Summary List legacy faculty records
// @Tags legacy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.FacultyRegistration}
// @Router /legacy/faculty [get]
func (c *LegacyController) ListFaculty(ctx *gin.Context) {
	faculty, err := c.legacyService.ListFaculty(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(faculty, ""))
}

// RegisterStudent
// @Summary Register a legacy student record
// @Description The generated password is returned only in this response
// @Tags legacy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LegacyStudentRequest true "Student"
// @Success 201 {object} dto.APIResponse{data=dto.LegacyCredentialsResponse}
// @Router /legacy/students [post]
func (c *LegacyController) RegisterStudent(ctx *gin.Context) {
	var req dto.LegacyStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	creds, err := c.legacyService.RegisterStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(creds, "Student registered"))
}

// AuthenticateStudent
// @Summary Check legacy student credentials
// @Tags legacy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.LegacyLoginRequest true "Student id and password"
// @Success 200 {object} dto.APIResponse{data=models.StudentRegistration}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /legacy/students/login [post]
func (c *LegacyController) AuthenticateStudent(ctx *gin.Context) {
	var req dto.LegacyLoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	student, err := c.legacyService.AuthenticateStudent(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, ""))
}

// ListStudents
// @Summary List legacy student records
// @Tags legacy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.StudentRegistration}
// @Router /legacy/students [get]
func (c *LegacyController) ListStudents(ctx *gin.Context) {
	students, err := c.legacyService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, ""))
}
