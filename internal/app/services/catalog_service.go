package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"
	appauth "github.com/yigit/ams/internal/app/auth"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/app/repositories"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/auth"
)

// CatalogService exposes courses and manages which departments a college offers
type CatalogService interface {
	ListCourses(ctx context.Context) ([]dto.CourseResponse, error)
	ListCourseDepartments(ctx context.Context, courseID int64) ([]dto.DepartmentResponse, error)
	ListCourseSemesters(ctx context.Context, courseName string) ([]dto.SemesterResponse, error)
	ListCollegeCourses(ctx context.Context, p auth.Principal, collegeID int64) ([]dto.CourseResponse, error)
	SaveCollegeCourseDepartments(ctx context.Context, p auth.Principal, collegeID int64, req dto.SaveCourseDepartmentsRequest) (*dto.CourseDepartmentsResponse, error)
	ListCollegeCourseDepartments(ctx context.Context, p auth.Principal, collegeID int64, courseName string) (*dto.CourseDepartmentsResponse, error)
}

type catalogServiceImpl struct {
	collegeRepo repositories.ICollegeRepository
	catalogRepo repositories.ICatalogRepository
	tx          db.Transactor
	authz       *appauth.AuthorizationService
	logger      zerolog.Logger
}

// NewCatalogService creates a new CatalogService
func NewCatalogService(
	collegeRepo repositories.ICollegeRepository,
	catalogRepo repositories.ICatalogRepository,
	tx db.Transactor,
	authz *appauth.AuthorizationService,
	logger zerolog.Logger,
) CatalogService {
	return &catalogServiceImpl{
		collegeRepo: collegeRepo,
		catalogRepo: catalogRepo,
		tx:          tx,
		authz:       authz,
		logger:      logger,
	}
}

func toCourseResponses(courses []*models.Course) []dto.CourseResponse {
	out := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, dto.CourseResponse{ID: c.ID, Name: c.Name, TotalSemesters: c.TotalSemesters})
	}
	return out
}

func toDepartmentResponses(departments []*models.Department) []dto.DepartmentResponse {
	out := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, dto.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return out
}

func (s *catalogServiceImpl) ListCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.catalogRepo.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

func (s *catalogServiceImpl) ListCourseDepartments(ctx context.Context, courseID int64) ([]dto.DepartmentResponse, error) {
	if _, err := s.catalogRepo.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}
	departments, err := s.catalogRepo.ListDepartmentsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return toDepartmentResponses(departments), nil
}

func (s *catalogServiceImpl) ListCourseSemesters(ctx context.Context, courseName string) ([]dto.SemesterResponse, error) {
	courseName = strings.TrimSpace(courseName)
	if courseName == "" {
		return nil, validationErrorf("course is required")
	}

	course, err := s.catalogRepo.GetCourseByName(ctx, courseName)
	if err != nil {
		return nil, err
	}
	semesters, err := s.catalogRepo.ListSemestersUpTo(ctx, course.TotalSemesters)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SemesterResponse, 0, len(semesters))
	for _, sem := range semesters {
		out = append(out, dto.SemesterResponse{ID: sem.ID, SemesterNumber: sem.SemesterNumber})
	}
	return out, nil
}

func (s *catalogServiceImpl) ListCollegeCourses(ctx context.Context, p auth.Principal, collegeID int64) ([]dto.CourseResponse, error) {
	if err := s.authz.EnsureCollege(p, collegeID); err != nil {
		return nil, err
	}
	courses, err := s.catalogRepo.ListCollegeCourses(ctx, collegeID)
	if err != nil {
		return nil, err
	}
	return toCourseResponses(courses), nil
}

// cleanDepartmentNames trims names, rejects blanks and drops duplicates keeping order
func cleanDepartmentNames(names []string) ([]string, error) {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for i, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			return nil, validationErrorf("department %d has an empty name", i+1)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}

// SaveCollegeCourseDepartments offers a course at a college with the given departments.
// With no departments the course is offered under the placeholder department.
func (s *catalogServiceImpl) SaveCollegeCourseDepartments(ctx context.Context, p auth.Principal, collegeID int64, req dto.SaveCourseDepartmentsRequest) (*dto.CourseDepartmentsResponse, error) {
	if err := s.authz.EnsureCollege(p, collegeID); err != nil {
		return nil, err
	}

	courseName := strings.TrimSpace(req.CourseName)
	if courseName == "" {
		return nil, validationErrorf("course name is required")
	}
	names, err := cleanDepartmentNames(req.Departments)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.collegeRepo.GetByID(ctx, collegeID); err != nil {
			return err
		}
		course, err := s.catalogRepo.GetCourseByName(ctx, courseName)
		if err != nil {
			return err
		}
		collegeCourse, err := s.catalogRepo.FindOrCreateCollegeCourse(ctx, collegeID, course.ID)
		if err != nil {
			return err
		}

		if len(names) == 0 {
			none, err := s.catalogRepo.FindOrCreateDepartment(ctx, models.NoneDepartment)
			if err != nil {
				return err
			}
			_, err = s.catalogRepo.FindOrCreateCollegeCourseDepartment(ctx, collegeCourse.ID, none.ID)
			return err
		}

		if err := s.dropPlaceholder(ctx, collegeCourse.ID); err != nil {
			return err
		}
		for _, name := range names {
			dept, err := s.catalogRepo.FindOrCreateDepartment(ctx, name)
			if err != nil {
				return err
			}
			if _, err := s.catalogRepo.FindOrCreateCourseDepartment(ctx, course.ID, dept.ID); err != nil {
				return err
			}
			if _, err := s.catalogRepo.FindOrCreateCollegeCourseDepartment(ctx, collegeCourse.ID, dept.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("collegeID", collegeID).Str("course", courseName).Strs("departments", names).Msg("College course departments saved")
	return s.listCollegeCourseDepartments(ctx, collegeID, courseName)
}

func (s *catalogServiceImpl) dropPlaceholder(ctx context.Context, collegeCourseID int64) error {
	none, err := s.catalogRepo.GetDepartmentByName(ctx, models.NoneDepartment)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil
		}
		return err
	}
	_, err = s.catalogRepo.DeleteCollegeCourseDepartment(ctx, collegeCourseID, none.ID)
	return err
}

func (s *catalogServiceImpl) ListCollegeCourseDepartments(ctx context.Context, p auth.Principal, collegeID int64, courseName string) (*dto.CourseDepartmentsResponse, error) {
	if err := s.authz.EnsureCollege(p, collegeID); err != nil {
		return nil, err
	}
	courseName = strings.TrimSpace(courseName)
	if courseName == "" {
		return nil, validationErrorf("course is required")
	}
	if _, err := s.catalogRepo.GetCourseByName(ctx, courseName); err != nil {
		return nil, err
	}
	return s.listCollegeCourseDepartments(ctx, collegeID, courseName)
}

func (s *catalogServiceImpl) listCollegeCourseDepartments(ctx context.Context, collegeID int64, courseName string) (*dto.CourseDepartmentsResponse, error) {
	departments, err := s.catalogRepo.ListCollegeCourseDepartments(ctx, collegeID, courseName)
	if err != nil {
		return nil, err
	}
	return &dto.CourseDepartmentsResponse{
		CollegeID:   collegeID,
		CourseName:  courseName,
		Departments: toDepartmentResponses(departments),
	}, nil
}
