package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/services"
	"github.com/yigit/ams/internal/middleware"
	"github.com/yigit/ams/internal/pkg/helpers"
)

// AttendanceController handles attendance marking and history
type AttendanceController struct {
	attendanceService services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// ListStudents lists the students a faculty member takes attendance for
// @Summary List students of an assigned subject
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param semester query int true "Semester number"
// @Param subject query string true "Subject name"
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Failure 403 {object} dto.ErrorResponse "Not assigned to the subject"
// @Router /attendance/students [get]
func (c *AttendanceController) ListStudents(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	semester, err := strconv.Atoi(ctx.Query("semester"))
	if err != nil || semester < 1 {
		badRequest(ctx, "Invalid semester", "query parameter 'semester' must be a positive number")
		return
	}
	subject := strings.TrimSpace(ctx.Query("subject"))
	if subject == "" {
		badRequest(ctx, "Subject is required", "query parameter 'subject' is missing")
		return
	}

	students, err := c.attendanceService.ListStudents(ctx.Request.Context(), p, semester, subject)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, ""))
}

// MarkAttendance records today's attendance
// @Summary Mark attendance
// @Description Writes every record for today in one transaction and notifies each student by email
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Attendance records"
// @Success 200 {object} dto.APIResponse{data=dto.MarkAttendanceResponse}
// @Failure 404 {object} dto.ErrorResponse "Student enrollment or subject not found"
// @Router /attendance [post]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	var req dto.MarkAttendanceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	result, err := c.attendanceService.MarkAttendance(ctx.Request.Context(), p, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Attendance saved successfully"))
}

// MyAttendance returns the calling student's attendance history
// @Summary My attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.APIResponse{data=dto.StudentAttendanceResponse}
// @Router /attendance/me [get]
func (c *AttendanceController) MyAttendance(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	from, err := helpers.ParseOptionalDate(ctx.Query("from"))
	if err != nil {
		badRequest(ctx, "Invalid date", "'from' must use the YYYY-MM-DD format")
		return
	}
	to, err := helpers.ParseOptionalDate(ctx.Query("to"))
	if err != nil {
		badRequest(ctx, "Invalid date", "'to' must use the YYYY-MM-DD format")
		return
	}

	history, err := c.attendanceService.StudentAttendance(ctx.Request.Context(), p, from, to)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(history, ""))
}
