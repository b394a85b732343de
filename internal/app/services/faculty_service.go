package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/ams/internal/app/auth"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
	"github.com/yigit/ams/internal/pkg/mail"
	"github.com/yigit/ams/internal/pkg/validation"
)

// Spreadsheet columns of a faculty import
const (
	ColumnName        = "name"
	ColumnEmail       = "email"
	ColumnNumber      = "number"
	ColumnDesignation = "designation"
	ColumnCourse      = "course"
	ColumnDepartment  = "department"
)

// FacultyService defines the interface for faculty account operations
type FacultyService interface {
	Register(ctx context.Context, p auth.Principal, collegeID int64, req dto.RegisterFacultyRequest) (*dto.FacultyResponse, error)
	ListHODs(ctx context.Context, p auth.Principal, collegeID int64) ([]dto.FacultyResponse, error)
	ListDepartmentFaculty(ctx context.Context, p auth.Principal) ([]dto.FacultyResponse, error)
	Update(ctx context.Context, p auth.Principal, facultyID int64, req dto.UpdateFacultyRequest) (*dto.FacultyResponse, error)
	Delete(ctx context.Context, p auth.Principal, facultyID int64) error
	Import(ctx context.Context, p auth.Principal, collegeID int64, upload Upload) (*dto.BulkImportResponse, error)
}

type facultyServiceImpl struct {
	collegeRepo repositories.ICollegeRepository
	catalogRepo repositories.ICatalogRepository
	facultyRepo repositories.IFacultyRepository
	authz       *appauth.AuthorizationService
	mailer      Mailer
	loginURL    string
	logger      zerolog.Logger
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(
	collegeRepo repositories.ICollegeRepository,
	catalogRepo repositories.ICatalogRepository,
	facultyRepo repositories.IFacultyRepository,
	authz *appauth.AuthorizationService,
	mailer Mailer,
	loginURL string,
	logger zerolog.Logger,
) FacultyService {
	return &facultyServiceImpl{
		collegeRepo: collegeRepo,
		catalogRepo: catalogRepo,
		facultyRepo: facultyRepo,
		authz:       authz,
		mailer:      mailer,
		loginURL:    loginURL,
		logger:      logger,
	}
}

func facultyDetails(f *models.Faculty) mail.FacultyDetails {
	return mail.FacultyDetails{
		Name:        f.Name,
		Email:       f.Email,
		Number:      f.PhoneNumber,
		Designation: f.Designation,
		Course:      f.CourseName,
		Department:  f.DepartmentName,
	}
}

// validateFacultyProfile checks the fields shared by registration and update
func validateFacultyProfile(name, email, number, designation string) error {
	if !validation.ValidName(name) {
		return validationErrorf("name must be between %d and %d characters", validation.NameMinLength, validation.NameMaxLength)
	}
	if !validation.ValidEmail(email) {
		return validationErrorf("invalid email format")
	}
	if !validation.ValidPhone(number) {
		return validationErrorf("invalid phone number")
	}
	if designation == "" {
		return validationErrorf("designation is required")
	}
	return nil
}

// Register creates a faculty account with a generated password and mails the credentials.
// A HOD may only register faculty into their own department.
func (s *facultyServiceImpl) Register(ctx context.Context, p auth.Principal, collegeID int64, req dto.RegisterFacultyRequest) (*dto.FacultyResponse, error) {
	if err := s.authz.EnsureCollege(p, collegeID); err != nil {
		return nil, err
	}

	faculty := &models.Faculty{
		Name:           strings.TrimSpace(req.Name),
		Email:          normalizeEmail(req.Email),
		PhoneNumber:    strings.TrimSpace(req.Number),
		Designation:    strings.TrimSpace(req.Designation),
		CourseName:     strings.TrimSpace(req.Course),
		DepartmentName: strings.TrimSpace(req.Department),
		CollegeID:      collegeID,
	}
	if err := validateFacultyProfile(faculty.Name, faculty.Email, faculty.PhoneNumber, faculty.Designation); err != nil {
		return nil, err
	}
	if faculty.CourseName == "" || faculty.DepartmentName == "" {
		return nil, validationErrorf("course and department are required")
	}

	ccd, err := s.catalogRepo.FindCollegeCourseDepartment(ctx, collegeID, faculty.CourseName, faculty.DepartmentName)
	if err != nil {
		return nil, err
	}
	if p.RoleType == models.RoleHOD {
		hod, err := s.authz.HOD(ctx, p)
		if err != nil {
			return nil, err
		}
		if hod.CollegeCourseDepartmentID != ccd.ID {
			return nil, apperrors.NewForbiddenError("faculty can only be registered in your own department")
		}
	}
	faculty.CollegeCourseDepartmentID = ccd.ID

	exists, err := s.facultyRepo.EmailExists(ctx, faculty.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	college, err := s.collegeRepo.GetByID(ctx, collegeID)
	if err != nil {
		return nil, err
	}

	password := auth.GeneratePassword(auth.FacultyPasswordLength)
	faculty.Password, err = auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.facultyRepo.Create(ctx, faculty); err != nil {
		return nil, err
	}

	s.mailer.Enqueue(mail.FacultyCredentials(
		facultyDetails(faculty),
		mail.College{Name: college.CollegeName, Email: college.Email},
		password,
		s.loginURL,
	))
	s.logger.Info().
		Int64("facultyID", faculty.ID).
		Int64("collegeID", collegeID).
		Str("designation", faculty.Designation).
		Msg("Faculty registered")

	resp := dto.NewFacultyResponse(faculty)
	return &resp, nil
}

func toFacultyResponses(faculty []*models.Faculty) []dto.FacultyResponse {
	out := make([]dto.FacultyResponse, 0, len(faculty))
	for _, f := range faculty {
		out = append(out, dto.NewFacultyResponse(f))
	}
	return out
}

func (s *facultyServiceImpl) ListHODs(ctx context.Context, p auth.Principal, collegeID int64) ([]dto.FacultyResponse, error) {
	if err := s.authz.EnsureCollege(p, collegeID); err != nil {
		return nil, err
	}
	hods, err := s.facultyRepo.ListHODsByCollege(ctx, collegeID)
	if err != nil {
		return nil, err
	}
	return toFacultyResponses(hods), nil
}

func (s *facultyServiceImpl) ListDepartmentFaculty(ctx context.Context, p auth.Principal) ([]dto.FacultyResponse, error) {
	hod, err := s.authz.HOD(ctx, p)
	if err != nil {
		return nil, err
	}
	faculty, err := s.facultyRepo.ListByCollegeCourseDepartment(ctx, hod.CollegeCourseDepartmentID)
	if err != nil {
		return nil, err
	}
	return toFacultyResponses(faculty), nil
}

// Update changes a faculty profile and mails the new details
func (s *facultyServiceImpl) Update(ctx context.Context, p auth.Principal, facultyID int64, req dto.UpdateFacultyRequest) (*dto.FacultyResponse, error) {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if err := s.authz.CanManageFaculty(ctx, p, faculty); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)
	number := strings.TrimSpace(req.Number)
	designation := strings.TrimSpace(req.Designation)
	if err := validateFacultyProfile(name, email, number, designation); err != nil {
		return nil, err
	}

	if email != faculty.Email {
		exists, err := s.facultyRepo.EmailExists(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperrors.ErrEmailAlreadyExists
		}
	}

	faculty.Name = name
	faculty.Email = email
	faculty.PhoneNumber = number
	faculty.Designation = designation
	if err := s.facultyRepo.Update(ctx, faculty); err != nil {
		return nil, err
	}

	college, err := s.collegeRepo.GetByID(ctx, faculty.CollegeID)
	if err != nil {
		s.logger.Error().Err(err).Int64("facultyID", faculty.ID).Msg("Failed to load college for update notice")
	} else {
		s.mailer.Enqueue(mail.FacultyUpdated(facultyDetails(faculty), mail.College{Name: college.CollegeName, Email: college.Email}))
	}
	s.logger.Info().Int64("facultyID", faculty.ID).Int64("by", p.UserID).Msg("Faculty updated")

	resp := dto.NewFacultyResponse(faculty)
	return &resp, nil
}

// Delete removes a faculty member; assignments go with it
func (s *facultyServiceImpl) Delete(ctx context.Context, p auth.Principal, facultyID int64) error {
	faculty, err := s.facultyRepo.GetByID(ctx, facultyID)
	if err != nil {
		return err
	}
	if err := s.authz.CanManageFaculty(ctx, p, faculty); err != nil {
		return err
	}
	if p.RoleType == models.RoleHOD && p.UserID == facultyID {
		return validationErrorf("a head of department cannot delete their own account")
	}

	if err := s.facultyRepo.Delete(ctx, facultyID); err != nil {
		return err
	}
	s.logger.Info().Int64("facultyID", facultyID).Int64("by", p.UserID).Msg("Faculty deleted")
	return nil
}

// Import registers every row of a faculty spreadsheet. Rows fail independently.
func (s *facultyServiceImpl) Import(ctx context.Context, p auth.Principal, collegeID int64, upload Upload) (*dto.BulkImportResponse, error) {
	if err := s.authz.EnsureCollege(p, collegeID); err != nil {
		return nil, err
	}
	rows, err := readSpreadsheet(upload, ColumnName, ColumnEmail, ColumnDesignation, ColumnCourse, ColumnDepartment)
	if err != nil {
		return nil, err
	}

	resp := &dto.BulkImportResponse{Failed: []dto.RowError{}}
	for _, r := range rows {
		req := dto.RegisterFacultyRequest{
			Name:        r.Get(ColumnName),
			Email:       r.Get(ColumnEmail),
			Number:      r.Get(ColumnNumber),
			Designation: r.Get(ColumnDesignation),
			Course:      r.Get(ColumnCourse),
			Department:  r.Get(ColumnDepartment),
		}
		if _, err := s.Register(ctx, p, collegeID, req); err != nil {
			if !isRowError(err) {
				return nil, err
			}
			resp.Failed = append(resp.Failed, rowError(r.Number, err))
			continue
		}
		resp.Created++
	}

	s.logger.Info().
		Int64("collegeID", collegeID).
		Int("created", resp.Created).
		Int("failed", len(resp.Failed)).
		Msg("Faculty import finished")
	return resp, nil
}

// isRowError reports whether err is caused by the row's data rather than the system
func isRowError(err error) bool {
	return apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrResourceNotFound, apperrors.ErrConflict, apperrors.ErrPermissionDenied) ||
		errors.Is(err, apperrors.ErrBadRequest)
}
