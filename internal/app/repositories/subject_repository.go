package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/apperrors"
)

// SubjectRepository handles the subject catalog chain:
// subjects, semester subjects, department semester subjects and CCDSS rows.
type SubjectRepository struct {
	baseRepository
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(conn db.DBTX) *SubjectRepository {
	return &SubjectRepository{baseRepository: newBaseRepository(conn)}
}

// FindOrCreateSubject returns the id of the subject with name
func (r *SubjectRepository) FindOrCreateSubject(ctx context.Context, name string) (int64, bool, error) {
	return r.findOrCreate(ctx, "subject",
		r.sb.Insert("subjects").Columns("name").Values(name),
		r.sb.Select("id").From("subjects").Where(squirrel.Eq{"name": name}))
}

// GetSubjectByName retrieves a subject by name
func (r *SubjectRepository) GetSubjectByName(ctx context.Context, name string) (*models.Subject, error) {
	sql, args, err := r.sb.Select("id", "name").From("subjects").Where(squirrel.Eq{"name": name}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get subject query: %w", err)
	}

	s := &models.Subject{}
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Name); err != nil {
		return nil, mapNoRows(err, apperrors.ErrSubjectNotFound)
	}
	return s, nil
}

// FindOrCreateSemesterSubject places a subject in a semester
func (r *SubjectRepository) FindOrCreateSemesterSubject(ctx context.Context, semesterID, subjectID int64) (int64, bool, error) {
	return r.findOrCreate(ctx, "semester subject",
		r.sb.Insert("semester_subjects").Columns("semester_id", "subject_id").Values(semesterID, subjectID),
		r.sb.Select("id").From("semester_subjects").Where(squirrel.Eq{"semester_id": semesterID, "subject_id": subjectID}))
}

// FindOrCreateDepartmentSemesterSubject places a semester subject in a department
func (r *SubjectRepository) FindOrCreateDepartmentSemesterSubject(ctx context.Context, departmentID, semesterID, subjectID int64) (int64, bool, error) {
	key := squirrel.Eq{"department_id": departmentID, "semester_id": semesterID, "subject_id": subjectID}
	return r.findOrCreate(ctx, "department semester subject",
		r.sb.Insert("department_semester_subjects").Columns("department_id", "semester_id", "subject_id").Values(departmentID, semesterID, subjectID),
		r.sb.Select("id").From("department_semester_subjects").Where(key))
}

// FindOrCreateCCDSS offers a semester subject in a college course department
func (r *SubjectRepository) FindOrCreateCCDSS(ctx context.Context, ccdID, semesterID, subjectID int64) (int64, bool, error) {
	key := squirrel.Eq{"college_course_department_id": ccdID, "semester_id": semesterID, "subject_id": subjectID}
	return r.findOrCreate(ctx, "ccd semester subject",
		r.sb.Insert("ccd_semester_subjects").Columns("college_course_department_id", "semester_id", "subject_id").Values(ccdID, semesterID, subjectID),
		r.sb.Select("id").From("ccd_semester_subjects").Where(key))
}

// FindCCDSS retrieves the offering of a subject in a semester of a college course department
func (r *SubjectRepository) FindCCDSS(ctx context.Context, ccdID, semesterID, subjectID int64) (*models.CollegeCourseDepartmentSemesterSubject, error) {
	sql, args, err := r.sb.Select("id", "college_course_department_id", "semester_id", "subject_id").
		From("ccd_semester_subjects").
		Where(squirrel.Eq{"college_course_department_id": ccdID, "semester_id": semesterID, "subject_id": subjectID}).
		Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get ccdss query: %w", err)
	}

	c := &models.CollegeCourseDepartmentSemesterSubject{}
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&c.ID, &c.CollegeCourseDepartmentID, &c.SemesterID, &c.SubjectID); err != nil {
		return nil, mapNoRows(err, apperrors.ErrSubjectNotOffered)
	}
	return c, nil
}

// ListSemesterSubjects returns the subjects of a college course department ordered by semester
func (r *SubjectRepository) ListSemesterSubjects(ctx context.Context, ccdID int64) ([]*models.SemesterSubjectView, error) {
	sql, args, err := r.sb.Select("sem.semester_number", "s.id", "s.name").
		From("ccd_semester_subjects x").
		Join("semesters sem ON sem.id = x.semester_id").
		Join("subjects s ON s.id = x.subject_id").
		Where(squirrel.Eq{"x.college_course_department_id": ccdID}).
		OrderBy("sem.semester_number ASC", "s.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list semester subjects query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying semester subjects: %w", err)
	}
	views, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.SemesterSubjectView, error) {
		v := &models.SemesterSubjectView{}
		return v, row.Scan(&v.SemesterNumber, &v.SubjectID, &v.SubjectName)
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning semester subjects: %w", err)
	}
	return views, nil
}
