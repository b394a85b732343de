package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/services"
	"github.com/yigit/ams/internal/middleware"
	"github.com/yigit/ams/internal/pkg/helpers"
)

// StudentController handles student registration and maintenance
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// RegisterStudent handles student registration
// @Summary Register a student
// @Description Registers and enrolls a student in the HOD's department and emails a generated password
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Param request body dto.RegisterStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.ErrorResponse "Department or semester not found"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /colleges/{collegeId}/students [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseIDParam(ctx, "collegeId", "college")
	if !ok {
		return
	}
	var req dto.RegisterStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.Register(ctx.Request.Context(), p, collegeID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(student, "Student registered successfully"))
}

// ImportStudents registers students from an uploaded spreadsheet
// @Summary Import students from a spreadsheet
// @Description Columns: name, email, number, parents number, course, department, semester
// @Tags students
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Param file formData file true "Spreadsheet (.xlsx)"
// @Success 200 {object} dto.APIResponse{data=dto.BulkImportResponse}
// @Router /colleges/{collegeId}/students/import [post]
func (c *StudentController) ImportStudents(ctx *gin.Context) {
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

	result, err := c.studentService.Import(ctx.Request.Context(), p, collegeID, upload)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result, "Student import finished"))
}

// ListStudents returns one page of the HOD's students
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param collegeId path int true "College ID"
// @Param page query int false "Page number (1-based)" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse{items=[]dto.StudentResponse}}
// @Router /colleges/{collegeId}/students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	collegeID, ok := parseIDParam(ctx, "collegeId", "college")
	if !ok {
		return
	}
	page := helpers.PageFromQuery(ctx)

	students, err := c.studentService.List(ctx.Request.Context(), p, collegeID, page.Number, page.Size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(students, ""))
}

// UpdateStudent updates a student and moves them between semesters
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated student information"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Router /students/{studentId} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId", "student")
	if !ok {
		return
	}
	var req dto.UpdateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	student, err := c.studentService.Update(ctx.Request.Context(), p, studentID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(student, "Student updated successfully"))
}

// DeleteStudent removes a student with their enrollment and attendance
// @Summary Delete a student
// @Tags students
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 204 "Student deleted"
// @Router /students/{studentId} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId", "student")
	if !ok {
		return
	}

	if err := c.studentService.Delete(ctx.Request.Context(), p, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
