package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
	"github.com/yigit/ams/internal/pkg/mail"
	"github.com/yigit/ams/internal/pkg/validation"
)

// AuthService handles login and college registration
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	RegisterCollege(ctx context.Context, req dto.RegisterCollegeRequest) (*dto.CollegeResponse, error)
}

type authServiceImpl struct {
	collegeRepo repositories.ICollegeRepository
	facultyRepo repositories.IFacultyRepository
	studentRepo repositories.IStudentRepository
	jwtService  *auth.JWTService
	mailer      Mailer
	logger      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	collegeRepo repositories.ICollegeRepository,
	facultyRepo repositories.IFacultyRepository,
	studentRepo repositories.IStudentRepository,
	jwtService *auth.JWTService,
	mailer Mailer,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		collegeRepo: collegeRepo,
		facultyRepo: facultyRepo,
		studentRepo: studentRepo,
		jwtService:  jwtService,
		mailer:      mailer,
		logger:      logger,
	}
}

// Login resolves the account behind email among colleges, faculty and students, in that order
func (s *authServiceImpl) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	email := normalizeEmail(req.Email)

	principal, name, hash, err := s.lookupAccount(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Info().Str("email", email).Msg("Login attempt for unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(hash, req.Password) {
		s.logger.Info().Str("email", email).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(principal)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Info().Int64("userID", principal.UserID).Str("role", string(principal.RoleType)).Msg("User logged in")
	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(expiresIn),
		Role:        string(principal.RoleType),
		UserID:      principal.UserID,
		CollegeID:   principal.CollegeID,
		Name:        name,
	}, nil
}

func (s *authServiceImpl) lookupAccount(ctx context.Context, email string) (auth.Principal, string, string, error) {
	college, err := s.collegeRepo.GetByEmail(ctx, email)
	if err == nil {
		return auth.Principal{
			UserID:    college.ID,
			Email:     college.Email,
			RoleType:  models.RoleCollege,
			CollegeID: college.ID,
		}, college.CollegeName, college.Password, nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return auth.Principal{}, "", "", err
	}

	faculty, err := s.facultyRepo.GetByEmail(ctx, email)
	if err == nil {
		return auth.Principal{
			UserID:    faculty.ID,
			Email:     faculty.Email,
			RoleType:  models.RoleForDesignation(faculty.Designation),
			CollegeID: faculty.CollegeID,
		}, faculty.Name, faculty.Password, nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		return auth.Principal{}, "", "", err
	}

	student, err := s.studentRepo.GetByEmail(ctx, email)
	if err != nil {
		return auth.Principal{}, "", "", err
	}
	p := auth.Principal{UserID: student.ID, Email: student.Email, RoleType: models.RoleStudent}
	enrollment, err := s.studentRepo.GetEnrollmentByStudentID(ctx, student.ID)
	switch {
	case err == nil:
		p.CollegeID = enrollment.CollegeID
	case errors.Is(err, apperrors.ErrResourceNotFound):
		s.logger.Warn().Int64("studentID", student.ID).Msg("Student has no enrollment")
	default:
		return auth.Principal{}, "", "", err
	}
	return p, student.Name, student.Password, nil
}

// RegisterCollege creates a college account and sends the welcome email
func (s *authServiceImpl) RegisterCollege(ctx context.Context, req dto.RegisterCollegeRequest) (*dto.CollegeResponse, error) {
	name := strings.TrimSpace(req.CollegeName)
	email := normalizeEmail(req.Email)

	if !validation.ValidName(name) {
		return nil, validationErrorf("college name must be between %d and %d characters", validation.NameMinLength, validation.NameMaxLength)
	}
	if !validation.ValidEmail(email) {
		return nil, validationErrorf("invalid email format")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, validationErrorf("password must be at least %d characters", validation.PasswordMinLength)
	}

	exists, err := s.collegeRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCollegeNameExists
	}
	exists, err = s.collegeRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCollegeEmailExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	college := &models.College{
		CollegeName: name,
		Email:       email,
		Password:    hash,
		CollegeType: strings.TrimSpace(req.Type),
	}
	if _, err := s.collegeRepo.Create(ctx, college); err != nil {
		return nil, err
	}

	s.mailer.Enqueue(mail.CollegeWelcome(mail.College{Name: college.CollegeName, Email: college.Email}))
	s.logger.Info().Int64("collegeID", college.ID).Str("name", college.CollegeName).Msg("College registered")

	return &dto.CollegeResponse{
		ID:          college.ID,
		CollegeName: college.CollegeName,
		Email:       college.Email,
		Type:        college.CollegeType,
	}, nil
}
