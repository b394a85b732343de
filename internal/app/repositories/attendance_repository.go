package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/logger"
)

// AttendanceRepository handles day-level attendance records
type AttendanceRepository struct {
	baseRepository
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(conn db.DBTX) *AttendanceRepository {
	return &AttendanceRepository{baseRepository: newBaseRepository(conn)}
}

// Upsert writes the record for its enrollment, subject and day, replacing any earlier status
func (r *AttendanceRepository) Upsert(ctx context.Context, a *models.Attendance) error {
	sql, args, err := r.sb.Insert("attendance").
		Columns("student_enrollment_id", "subject_id", "faculty_id", "attendance_date", "status").
		Values(a.StudentEnrollmentID, a.SubjectID, a.FacultyID, squirrel.Expr("?::date", a.Date.Format(time.DateOnly)), string(a.Status)).
		Suffix("ON CONFLICT (student_enrollment_id, subject_id, attendance_date) " +
			"DO UPDATE SET status = EXCLUDED.status, faculty_id = EXCLUDED.faculty_id RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build upsert attendance query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&a.ID); err != nil {
		logger.Error().Err(err).
			Int64("enrollmentID", a.StudentEnrollmentID).
			Int64("subjectID", a.SubjectID).
			Msg("Error executing upsert attendance query")
		return fmt.Errorf("error saving attendance: %w", err)
	}
	return nil
}

// ListByEnrollment returns attendance for an enrollment, newest first.
// from and to are inclusive calendar days and may be nil.
func (r *AttendanceRepository) ListByEnrollment(ctx context.Context, enrollmentID int64, from, to *time.Time) ([]*models.Attendance, error) {
	sel := r.sb.Select("a.id", "a.student_enrollment_id", "a.subject_id", "COALESCE(a.faculty_id, 0)",
		"a.attendance_date", "a.status", "s.name", "COALESCE(f.name, '')").
		From("attendance a").
		Join("subjects s ON s.id = a.subject_id").
		LeftJoin("faculty f ON f.id = a.faculty_id").
		Where(squirrel.Eq{"a.student_enrollment_id": enrollmentID})
	if from != nil {
		sel = sel.Where("a.attendance_date >= ?::date", from.Format(time.DateOnly))
	}
	if to != nil {
		sel = sel.Where("a.attendance_date <= ?::date", to.Format(time.DateOnly))
	}

	sql, args, err := sel.OrderBy("a.attendance_date DESC", "s.name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list attendance query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("enrollmentID", enrollmentID).Msg("Error executing list attendance query")
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Attendance, error) {
		a := &models.Attendance{}
		var status string
		err := row.Scan(&a.ID, &a.StudentEnrollmentID, &a.SubjectID, &a.FacultyID, &a.Date, &status, &a.SubjectName, &a.FacultyName)
		a.Status = models.AttendanceStatus(status)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning attendance: %w", err)
	}
	return list, nil
}
