package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/dberrors"
	"github.com/yigit/ams/internal/pkg/logger"
)

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	baseRepository
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(conn db.DBTX) *FacultyRepository {
	return &FacultyRepository{baseRepository: newBaseRepository(conn)}
}

func (r *FacultyRepository) selectFaculty() squirrel.SelectBuilder {
	return r.sb.Select("f.id", "f.name", "f.email", "f.password", "f.designation", "f.phone_number",
		"f.college_course_department_id", "f.created_at", "f.updated_at", "cc.college_id", "c.name", "d.name").
		From("faculty f").
		Join("college_course_departments ccd ON ccd.id = f.college_course_department_id").
		Join("college_courses cc ON cc.id = ccd.college_course_id").
		Join("courses c ON c.id = cc.course_id").
		Join("departments d ON d.id = ccd.department_id")
}

func scanFaculty(row scanner) (*models.Faculty, error) {
	f := &models.Faculty{}
	err := row.Scan(&f.ID, &f.Name, &f.Email, &f.Password, &f.Designation, &f.PhoneNumber,
		&f.CollegeCourseDepartmentID, &f.CreatedAt, &f.UpdatedAt, &f.CollegeID, &f.CourseName, &f.DepartmentName)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Create inserts a faculty member and returns its id
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) (int64, error) {
	sql, args, err := r.sb.Insert("faculty").
		Columns("name", "email", "password", "designation", "phone_number", "college_course_department_id").
		Values(faculty.Name, faculty.Email, faculty.Password, faculty.Designation, faculty.PhoneNumber, faculty.CollegeCourseDepartmentID).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	err = r.q(ctx).QueryRow(ctx, sql, args...).Scan(&faculty.ID, &faculty.CreatedAt, &faculty.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", faculty.Email).Msg("Error executing create faculty query")
		return 0, fmt.Errorf("error creating faculty: %w", err)
	}

	return faculty.ID, nil
}

func (r *FacultyRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Faculty, error) {
	sql, args, err := r.selectFaculty().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	f, err := scanFaculty(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapNoRows(err, apperrors.ErrFacultyNotFound)
	}
	return f, nil
}

// GetByID retrieves a faculty member with its college, course and department
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return r.getOne(ctx, squirrel.Eq{"f.id": id})
}

// GetByEmail retrieves a faculty member by login email
func (r *FacultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	return r.getOne(ctx, squirrel.Eq{"f.email": email})
}

// EmailExists reports whether a faculty email is taken
func (r *FacultyRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, r.sb.Select("1").From("faculty").Where(squirrel.Eq{"email": email}))
}

func (r *FacultyRepository) list(ctx context.Context, sel squirrel.SelectBuilder) ([]*models.Faculty, error) {
	sql, args, err := sel.OrderBy("f.name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculty query")
		return nil, fmt.Errorf("error querying faculty: %w", err)
	}
	defer rows.Close()

	result := []*models.Faculty{}
	for rows.Next() {
		f, err := scanFaculty(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}
	return result, nil
}

// ListHODsByCollege returns every head of department of a college
func (r *FacultyRepository) ListHODsByCollege(ctx context.Context, collegeID int64) ([]*models.Faculty, error) {
	return r.list(ctx, r.selectFaculty().Where(squirrel.Eq{
		"cc.college_id": collegeID,
		"f.designation": models.DesignationHOD,
	}))
}

// ListByCollegeCourseDepartment returns the non-HOD faculty of an offering
func (r *FacultyRepository) ListByCollegeCourseDepartment(ctx context.Context, ccdID int64) ([]*models.Faculty, error) {
	return r.list(ctx, r.selectFaculty().
		Where(squirrel.Eq{"f.college_course_department_id": ccdID}).
		Where(squirrel.NotEq{"f.designation": models.DesignationHOD}))
}

// Update saves the editable profile fields of a faculty member
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	faculty.UpdatedAt = time.Now()
	sql, args, err := r.sb.Update("faculty").
		SetMap(map[string]interface{}{
			"name":         faculty.Name,
			"email":        faculty.Email,
			"designation":  faculty.Designation,
			"phone_number": faculty.PhoneNumber,
			"updated_at":   faculty.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": faculty.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "faculty_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("facultyID", faculty.ID).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}

// Delete removes a faculty member; assignments cascade and attendance keeps a null faculty
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("faculty").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}
	return nil
}
