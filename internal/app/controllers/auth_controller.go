package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/services"
	"github.com/yigit/ams/internal/middleware"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Register handles college registration
// @Summary Register a college
// @Description Creates a college account. College name and email must both be unused.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterCollegeRequest true "College registration information"
// @Success 201 {object} dto.APIResponse{data=dto.CollegeResponse} "College registered"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 409 {object} dto.ErrorResponse "College name or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterCollegeRequest
	if !middleware.BindJSON(ctx, &req) {
		c.logger.Warn().Msg("Invalid college registration payload")
		return
	}

	college, err := c.authService.RegisterCollege(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("College registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("collegeID", college.ID).Msg("College registered")
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(college, "College registered successfully"))
}

// Login handles user login
// @Summary User login
// @Description Authenticates a college, faculty member or student and returns an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	token, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(token, "Login successful"))
}

// Me returns the authenticated caller
// @Summary Current principal
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PrincipalResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	p, ok := middleware.MustPrincipal(ctx)
	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.PrincipalResponse{
		UserID:    p.UserID,
		Email:     p.Email,
		Role:      string(p.RoleType),
		CollegeID: p.CollegeID,
	}, ""))
}
