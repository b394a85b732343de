package auth

import (
	"context"

	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/repositories"
	"github.com/yigit/ams/internal/pkg/apperrors"
	pkgauth "github.com/yigit/ams/internal/pkg/auth"
	"github.com/yigit/ams/internal/pkg/logger"
)

// AuthorizationService scopes callers to their own college and department
type AuthorizationService struct {
	facultyRepo repositories.IFacultyRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(facultyRepo repositories.IFacultyRepository) *AuthorizationService {
	return &AuthorizationService{facultyRepo: facultyRepo}
}

// EnsureCollege rejects callers addressing a college other than their own
func (s *AuthorizationService) EnsureCollege(p pkgauth.Principal, collegeID int64) error {
	if p.CollegeID != collegeID {
		logger.Warn().
			Int64("userID", p.UserID).
			Int64("tokenCollegeID", p.CollegeID).
			Int64("collegeID", collegeID).
			Msg("Cross-college access rejected")
		return apperrors.NewForbiddenError("access to this college is not allowed")
	}
	return nil
}

// Faculty loads the faculty member behind a HOD or FACULTY token
func (s *AuthorizationService) Faculty(ctx context.Context, p pkgauth.Principal) (*models.Faculty, error) {
	if p.RoleType != models.RoleHOD && p.RoleType != models.RoleFaculty {
		return nil, apperrors.NewForbiddenError("faculty access required")
	}
	f, err := s.facultyRepo.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if f.CollegeID != p.CollegeID {
		return nil, apperrors.NewForbiddenError("access to this college is not allowed")
	}
	return f, nil
}

// HOD loads the head of department behind a HOD token
func (s *AuthorizationService) HOD(ctx context.Context, p pkgauth.Principal) (*models.Faculty, error) {
	f, err := s.Faculty(ctx, p)
	if err != nil {
		return nil, err
	}
	if !f.IsHOD() {
		return nil, apperrors.NewForbiddenError("head of department access required")
	}
	return f, nil
}

// CanManageFaculty allows a college to manage its own faculty and a HOD
// to manage faculty of their own department
func (s *AuthorizationService) CanManageFaculty(ctx context.Context, p pkgauth.Principal, target *models.Faculty) error {
	if err := s.EnsureCollege(p, target.CollegeID); err != nil {
		return err
	}
	if p.RoleType == models.RoleCollege {
		return nil
	}
	hod, err := s.HOD(ctx, p)
	if err != nil {
		return err
	}
	if hod.CollegeCourseDepartmentID != target.CollegeCourseDepartmentID {
		return apperrors.NewForbiddenError("faculty belongs to another department")
	}
	return nil
}

// CanManageStudent allows a HOD to manage students enrolled in their department
func (s *AuthorizationService) CanManageStudent(ctx context.Context, p pkgauth.Principal, enrollment *models.StudentEnrollment) error {
	if err := s.EnsureCollege(p, enrollment.CollegeID); err != nil {
		return err
	}
	hod, err := s.HOD(ctx, p)
	if err != nil {
		return err
	}
	if hod.CollegeCourseDepartmentID != enrollment.CollegeCourseDepartmentID {
		return apperrors.NewForbiddenError("student belongs to another department")
	}
	return nil
}
