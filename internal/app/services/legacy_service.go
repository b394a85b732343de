package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
)

// LegacyRegistrationService serves the flat registration records used by older clients.
// None of these records are linked to the main schema.
type LegacyRegistrationService interface {
	RegisterCollege(ctx context.Context, req dto.LegacyCollegeRequest) (*models.CollegeRegistration, error)
	AuthenticateCollege(ctx context.Context, req dto.LegacyLoginRequest) (*models.CollegeRegistration, error)
	ListColleges(ctx context.Context) ([]*models.CollegeRegistration, error)

	RegisterFaculty(ctx context.Context, req dto.LegacyFacultyRequest) (*dto.LegacyCredentialsResponse, error)
	AuthenticateFaculty(ctx context.Context, req dto.LegacyLoginRequest) (*models.FacultyRegistration, error)
	ListFaculty(ctx context.Context) ([]*models.FacultyRegistration, error)

	RegisterStudent(ctx context.Context, req dto.LegacyStudentRequest) (*dto.LegacyCredentialsResponse, error)
	AuthenticateStudent(ctx context.Context, req dto.LegacyLoginRequest) (*models.StudentRegistration, error)
	ListStudents(ctx context.Context) ([]*models.StudentRegistration, error)
}

type legacyServiceImpl struct {
	repo   repositories.ILegacyRepository
	logger zerolog.Logger
}

// NewLegacyRegistrationService creates a new LegacyRegistrationService
func NewLegacyRegistrationService(repo repositories.ILegacyRepository, logger zerolog.Logger) LegacyRegistrationService {
	return &legacyServiceImpl{repo: repo, logger: logger}
}

// invalidOnNotFound hides which part of a legacy login was wrong
func invalidOnNotFound(err error) error {
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return apperrors.ErrInvalidCredentials
	}
	return err
}

func parseLegacyID(identifier string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(identifier), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.ErrInvalidCredentials
	}
	return id, nil
}

func (s *legacyServiceImpl) RegisterCollege(ctx context.Context, req dto.LegacyCollegeRequest) (*models.CollegeRegistration, error) {
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	c := &models.CollegeRegistration{
		Email:       normalizeEmail(req.Email),
		CollegeName: strings.TrimSpace(req.CollegeName),
		Password:    hash,
	}
	if err := s.repo.CreateCollege(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Info().Str("email", c.Email).Msg("Legacy college registered")
	return c, nil
}

func (s *legacyServiceImpl) AuthenticateCollege(ctx context.Context, req dto.LegacyLoginRequest) (*models.CollegeRegistration, error) {
	c, err := s.repo.GetCollegeByEmail(ctx, normalizeEmail(req.Identifier))
	if err != nil {
		return nil, invalidOnNotFound(err)
	}
	if !auth.CheckPassword(c.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return c, nil
}

func (s *legacyServiceImpl) ListColleges(ctx context.Context) ([]*models.CollegeRegistration, error) {
	return s.repo.ListColleges(ctx)
}

// RegisterFaculty stores a faculty record with a generated 8 character password.
// The plain password is only ever returned here.
func (s *legacyServiceImpl) RegisterFaculty(ctx context.Context, req dto.LegacyFacultyRequest) (*dto.LegacyCredentialsResponse, error) {
	password := auth.GeneratePassword(auth.FacultyPasswordLength)
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	f := &models.FacultyRegistration{
		Name:        strings.TrimSpace(req.Name),
		Email:       normalizeEmail(req.Email),
		Password:    hash,
		Designation: strings.TrimSpace(req.Designation),
		Department:  strings.TrimSpace(req.Department),
		DOB:         req.DOB,
		Gender:      strings.TrimSpace(req.Gender),
		PhoneNumber: strings.TrimSpace(req.Number),
	}
	id, err := s.repo.CreateFaculty(ctx, f)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("id", id).Msg("Legacy faculty registered")
	return &dto.LegacyCredentialsResponse{ID: id, Email: f.Email, Password: password}, nil
}

func (s *legacyServiceImpl) AuthenticateFaculty(ctx context.Context, req dto.LegacyLoginRequest) (*models.FacultyRegistration, error) {
	id, err := parseLegacyID(req.Identifier)
	if err != nil {
		return nil, err
	}
	f, err := s.repo.GetFacultyByID(ctx, id)
	if err != nil {
		return nil, invalidOnNotFound(err)
	}
	if !auth.CheckPassword(f.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return f, nil
}

func (s *legacyServiceImpl) ListFaculty(ctx context.Context) ([]*models.FacultyRegistration, error) {
	return s.repo.ListFaculty(ctx)
}

// RegisterStudent stores a student record with a generated 6 character password
func (s *legacyServiceImpl) RegisterStudent(ctx context.Context, req dto.LegacyStudentRequest) (*dto.LegacyCredentialsResponse, error) {
	password := auth.GeneratePassword(auth.StudentPasswordLength)
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	st := &models.StudentRegistration{
		Name:          strings.TrimSpace(req.Name),
		Email:         normalizeEmail(req.Email),
		Password:      hash,
		Department:    strings.TrimSpace(req.Department),
		Semester:      req.Semester,
		DOB:           req.DOB,
		Gender:        strings.TrimSpace(req.Gender),
		PhoneNumber:   strings.TrimSpace(req.Number),
		ParentsNumber: strings.TrimSpace(req.ParentsNumber),
	}
	id, err := s.repo.CreateStudent(ctx, st)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("id", id).Msg("Legacy student registered")
	return &dto.LegacyCredentialsResponse{ID: id, Email: st.Email, Password: password}, nil
}

func (s *legacyServiceImpl) AuthenticateStudent(ctx context.Context, req dto.LegacyLoginRequest) (*models.StudentRegistration, error) {
	id, err := parseLegacyID(req.Identifier)
	if err != nil {
		return nil, err
	}
	st, err := s.repo.GetStudentByID(ctx, id)
	if err != nil {
		return nil, invalidOnNotFound(err)
	}
	if !auth.CheckPassword(st.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return st, nil
}

func (s *legacyServiceImpl) ListStudents(ctx context.Context) ([]*models.StudentRegistration, error) {
	return s.repo.ListStudents(ctx)
}
