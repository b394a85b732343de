package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/dberrors"
	"github.com/yigit/ams/internal/pkg/logger"
)

// AssignmentRepository handles faculty to subject assignments
type AssignmentRepository struct {
	baseRepository
}

// NewAssignmentRepository creates a new AssignmentRepository
func NewAssignmentRepository(conn db.DBTX) *AssignmentRepository {
	return &AssignmentRepository{baseRepository: newBaseRepository(conn)}
}

// Create assigns a faculty member to a CCDSS
func (r *AssignmentRepository) Create(ctx context.Context, a *models.FacultyAssignment) (int64, error) {
	sql, args, err := r.sb.Insert("faculty_assignments").
		Columns("faculty_id", "ccdss_id").
		Values(a.FacultyID, a.CCDSSID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create assignment query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&a.ID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_assignments_unique") {
			return 0, apperrors.ErrAssignmentExists
		}
		logger.Error().Err(err).Int64("facultyID", a.FacultyID).Int64("ccdssID", a.CCDSSID).Msg("Error executing create assignment query")
		return 0, fmt.Errorf("error creating assignment: %w", err)
	}
	return a.ID, nil
}

// Exists reports whether the faculty member teaches the CCDSS
func (r *AssignmentRepository) Exists(ctx context.Context, facultyID, ccdssID int64) (bool, error) {
	return r.exists(ctx, r.sb.Select("1").From("faculty_assignments").
		Where(squirrel.Eq{"faculty_id": facultyID, "ccdss_id": ccdssID}))
}

// ListByFaculty returns the subjects a faculty member teaches, ordered by semester
func (r *AssignmentRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.FacultyAssignment, error) {
	sql, args, err := r.sb.Select("fa.id", "fa.faculty_id", "fa.ccdss_id", "sem.semester_number", "s.name").
		From("faculty_assignments fa").
		Join("ccd_semester_subjects x ON x.id = fa.ccdss_id").
		Join("semesters sem ON sem.id = x.semester_id").
		Join("subjects s ON s.id = x.subject_id").
		Where(squirrel.Eq{"fa.faculty_id": facultyID}).
		OrderBy("sem.semester_number ASC", "s.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list assignments query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying assignments: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.FacultyAssignment, error) {
		a := &models.FacultyAssignment{}
		return a, row.Scan(&a.ID, &a.FacultyID, &a.CCDSSID, &a.SemesterNumber, &a.SubjectName)
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning assignments: %w", err)
	}
	return list, nil
}
