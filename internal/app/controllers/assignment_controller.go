package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/services"
	"github.com/yigit/ams/internal/middleware"
)

// AssignmentController links faculty to the subjects they teach
type AssignmentController struct {
	assignmentService services.AssignmentService
}

// NewAssignmentController creates a new AssignmentController
func NewAssignmentController(assignmentService services.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// Assign assigns a semester subject to a faculty member
// @Summary Assign a subject to a faculty member
// @Tags assignments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignSubjectRequest true "Assignment"
// @Success 201 {object} dto.APIResponse{data=dto.AssignmentResponse}
// @Failure 404 {object} dto.ErrorResponse "Faculty, subject or semester not found, or subject not offered"
// @Failure 409 {object} dto.ErrorResponse "Already assigned"
// @Router /faculty-assignments [post]
func (c *AssignmentController) Assign(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}
	var req dto.AssignSubjectRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	assignment, err := c.assignmentService.Assign(ctx.Request.Context(), p, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(assignment, "Subject assigned successfully"))
}

// ListMine lists the caller's assignments
// @Summary List my assignments
// @Tags assignments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AssignmentResponse}
// @Router /faculty-assignments/me [get]
func (c *AssignmentController) ListMine(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}

	assignments, err := c.assignmentService.ListForFaculty(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(assignments, ""))
}
