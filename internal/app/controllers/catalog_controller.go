package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/services"
	"github.com/yigit/ams/internal/middleware"
)

// CatalogController serves courses, semesters and college offerings
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// ListCourses returns every course
// @Summary List courses
// @Tags catalog
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /courses [get]
func (c *CatalogController) ListCourses(ctx *gin.Context) {
	courses, err := c.catalogService.ListCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, ""))
}

// ListCourseDepartments returns the departments mapped to a course
// @Summary List departments mapped to a course
// @Tags catalog
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.DepartmentResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid course ID"
// @Router /courses/{courseId}/departments [get]
func (c *CatalogController) ListCourseDepartments(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseId", "course")
	if !ok {
		return
	}

	departments, err := c.catalogService.ListCourseDepartments(ctx.Request.Context(), courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(departments, ""))
}

// ListCourseSemesters returns semesters 1..N of a course
// @Summary List the semesters of a course
// @Tags catalog
// @Produce json
// @Param course query string true "Course name"
// @Success 200 {object} dto.APIResponse{data=[]dto.SemesterResponse}
// @Failure 400 {object} dto.ErrorResponse "Course name missing"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Router /semesters [get]
func (c *CatalogController) ListCourseSemesters(ctx *gin.Context) {
	course := strings.TrimSpace(ctx.Query("course"))
	if course == "" {
		badRequest(ctx, "Course is required", "query parameter 'course' is missing")
		return
	}

	semesters, err := c.catalogService.ListCourseSemesters(ctx.Request.Context(), course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(semesters, ""))
}

// ListCollegeCourses returns the courses a college offers
// @Summary List courses offered by a college
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.CourseResponse}
// @Failure 403 {object} dto.ErrorResponse "Another college"
// @Router /colleges/{collegeId}/courses [get]
func (c *CatalogController) ListCollegeCourses(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseIDParam(ctx, "collegeId", "college")
	if !ok {
		return
	}

	courses, err := c.catalogService.ListCollegeCourses(ctx.Request.Context(), p, collegeID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(courses, ""))
}

// SaveCourseDepartments maps departments to a college course
// @Summary Offer a course with departments
// @Description Maps departments to a course offered by the college. An empty list offers the course without departments.
// @Tags colleges
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Param request body dto.SaveCourseDepartmentsRequest true "Course and departments"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDepartmentsResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "College or course not found"
// @Router /colleges/{collegeId}/course-departments [post]
func (c *CatalogController) SaveCourseDepartments(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseIDParam(ctx, "collegeId", "college")
	if !ok {
		return
	}
	var req dto.SaveCourseDepartmentsRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.catalogService.SaveCollegeCourseDepartments(ctx.Request.Context(), p, collegeID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Course departments saved"))
}

// ListCourseDepartmentsOfCollege returns the departments of one college course
// @Summary List departments of a college course
// @Tags colleges
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Param course query string true "Course name"
// @Success 200 {object} dto.APIResponse{data=dto.CourseDepartmentsResponse}
// @Router /colleges/{collegeId}/course-departments [get]
func (c *CatalogController) ListCourseDepartmentsOfCollege(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseIDParam(ctx, "collegeId", "college")
	if !ok {
		return
	}
	course := strings.TrimSpace(ctx.Query("course"))
	if course == "" {
		badRequest(ctx, "Course is required", "query parameter 'course' is missing")
		return
	}

	resp, err := c.catalogService.ListCollegeCourseDepartments(ctx.Request.Context(), p, collegeID, course)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp, ""))
}
