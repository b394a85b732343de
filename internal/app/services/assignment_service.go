package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/ams/internal/app/auth"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
)

// AssignmentService links faculty members to the subjects they teach
type AssignmentService interface {
	Assign(ctx context.Context, p auth.Principal, req dto.AssignSubjectRequest) (*dto.AssignmentResponse, error)
	ListForFaculty(ctx context.Context, p auth.Principal) ([]dto.AssignmentResponse, error)
}

type assignmentServiceImpl struct {
	catalogRepo    repositories.ICatalogRepository
	subjectRepo    repositories.ISubjectRepository
	facultyRepo    repositories.IFacultyRepository
	assignmentRepo repositories.IAssignmentRepository
	authz          *appauth.AuthorizationService
	logger         zerolog.Logger
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(
	catalogRepo repositories.ICatalogRepository,
	subjectRepo repositories.ISubjectRepository,
	facultyRepo repositories.IFacultyRepository,
	assignmentRepo repositories.IAssignmentRepository,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) AssignmentService {
	return &assignmentServiceImpl{
		catalogRepo:    catalogRepo,
		subjectRepo:    subjectRepo,
		facultyRepo:    facultyRepo,
		assignmentRepo: assignmentRepo,
		authz:          authz,
		logger:         logger,
	}
}

func toAssignmentResponse(a *models.FacultyAssignment) dto.AssignmentResponse {
	return dto.AssignmentResponse{
		ID:        a.ID,
		FacultyID: a.FacultyID,
		Semester:  a.SemesterNumber,
		Subject:   a.SubjectName,
	}
}

// Assign lets a HOD assign a subject of their department to a faculty member.
// Faculty, subject, semester and the department's offering of the subject are
// resolved in that order, each with its own not-found error.
func (s *assignmentServiceImpl) Assign(ctx context.Context, p auth.Principal, req dto.AssignSubjectRequest) (*dto.AssignmentResponse, error) {
	hod, err := s.authz.HOD(ctx, p)
	if err != nil {
		return nil, err
	}

	subjectName := strings.TrimSpace(req.Subject)
	if subjectName == "" {
		return nil, validationErrorf("subject is required")
	}

	faculty, err := s.facultyRepo.GetByID(ctx, req.FacultyID)
	if err != nil {
		return nil, err
	}
	if faculty.CollegeCourseDepartmentID != hod.CollegeCourseDepartmentID {
		return nil, apperrors.NewForbiddenError("faculty belongs to another department")
	}

	subject, err := s.subjectRepo.GetSubjectByName(ctx, subjectName)
	if err != nil {
		return nil, err
	}
	sem, err := s.catalogRepo.GetSemesterByNumber(ctx, req.Semester)
	if err != nil {
		return nil, err
	}
	ccdss, err := s.subjectRepo.FindCCDSS(ctx, faculty.CollegeCourseDepartmentID, sem.ID, subject.ID)
	if err != nil {
		return nil, err
	}

	assignment := &models.FacultyAssignment{
		FacultyID:      faculty.ID,
		CCDSSID:        ccdss.ID,
		SemesterNumber: sem.SemesterNumber,
		SubjectName:    subject.Name,
	}
	if _, err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("facultyID", faculty.ID).
		Int64("ccdssID", ccdss.ID).
		Int64("by", hod.ID).
		Msg("Subject assigned to faculty")

	resp := toAssignmentResponse(assignment)
	return &resp, nil
}

func (s *assignmentServiceImpl) ListForFaculty(ctx context.Context, p auth.Principal) ([]dto.AssignmentResponse, error) {
	faculty, err := s.authz.Faculty(ctx, p)
	if err != nil {
		return nil, err
	}
	assignments, err := s.assignmentRepo.ListByFaculty(ctx, faculty.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, toAssignmentResponse(a))
	}
	return out, nil
}
