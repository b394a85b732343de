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
)

// LegacyRepository stores the flat registration tables kept for older clients
type LegacyRepository struct {
	baseRepository
}

// NewLegacyRepository creates a new LegacyRepository
func NewLegacyRepository(conn db.DBTX) *LegacyRepository {
	return &LegacyRepository{baseRepository: newBaseRepository(conn)}
}

// CreateCollege inserts a college registration keyed by email
func (r *LegacyRepository) CreateCollege(ctx context.Context, c *models.CollegeRegistration) error {
	sql, args, err := r.sb.Insert("college_registrations").
		Columns("email", "college_name", "password").
		Values(c.Email, c.CollegeName, c.Password).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create college registration query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&c.CreatedAt); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrLegacyRecordNotUnique
		}
		return fmt.Errorf("error creating college registration: %w", err)
	}
	return nil
}

// GetCollegeByEmail retrieves a college registration
func (r *LegacyRepository) GetCollegeByEmail(ctx context.Context, email string) (*models.CollegeRegistration, error) {
	sql, args, err := r.sb.Select("email", "college_name", "password", "created_at").
		From("college_registrations").Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get college registration query: %w", err)
	}

	c := &models.CollegeRegistration{}
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&c.Email, &c.CollegeName, &c.Password, &c.CreatedAt); err != nil {
		return nil, mapNoRows(err, apperrors.ErrCollegeNotFound)
	}
	return c, nil
}

// ListColleges returns every college registration
func (r *LegacyRepository) ListColleges(ctx context.Context) ([]*models.CollegeRegistration, error) {
	sql, args, err := r.sb.Select("email", "college_name", "password", "created_at").
		From("college_registrations").OrderBy("college_name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list college registrations query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying college registrations: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.CollegeRegistration, error) {
		c := &models.CollegeRegistration{}
		return c, row.Scan(&c.Email, &c.CollegeName, &c.Password, &c.CreatedAt)
	})
}

var facultyRegistrationColumns = []string{"id", "name", "email", "password", "designation", "department", "dob", "gender", "phone_number"}

func scanFacultyRegistration(row scanner) (*models.FacultyRegistration, error) {
	f := &models.FacultyRegistration{}
	err := row.Scan(&f.ID, &f.Name, &f.Email, &f.Password, &f.Designation, &f.Department, &f.DOB, &f.Gender, &f.PhoneNumber)
	return f, err
}

// CreateFaculty inserts a faculty registration
func (r *LegacyRepository) CreateFaculty(ctx context.Context, f *models.FacultyRegistration) (int64, error) {
	sql, args, err := r.sb.Insert("faculty_registrations").
		Columns(facultyRegistrationColumns[1:]...).
		Values(f.Name, f.Email, f.Password, f.Designation, f.Department, f.DOB, f.Gender, f.PhoneNumber).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create faculty registration query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&f.ID); err != nil {
		return 0, fmt.Errorf("error creating faculty registration: %w", err)
	}
	return f.ID, nil
}

// GetFacultyByID retrieves a faculty registration
func (r *LegacyRepository) GetFacultyByID(ctx context.Context, id int64) (*models.FacultyRegistration, error) {
	sql, args, err := r.sb.Select(facultyRegistrationColumns...).
		From("faculty_registrations").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty registration query: %w", err)
	}

	f, err := scanFacultyRegistration(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapNoRows(err, apperrors.ErrFacultyNotFound)
	}
	return f, nil
}

// ListFaculty returns every faculty registration
func (r *LegacyRepository) ListFaculty(ctx context.Context) ([]*models.FacultyRegistration, error) {
	sql, args, err := r.sb.Select(facultyRegistrationColumns...).
		From("faculty_registrations").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty registrations query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying faculty registrations: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.FacultyRegistration, error) {
		return scanFacultyRegistration(row)
	})
}

var studentRegistrationColumns = []string{"id", "name", "email", "password", "department", "semester", "dob", "gender", "phone_number", "parents_number"}

func scanStudentRegistration(row scanner) (*models.StudentRegistration, error) {
	s := &models.StudentRegistration{}
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Password, &s.Department, &s.Semester, &s.DOB, &s.Gender, &s.PhoneNumber, &s.ParentsNumber)
	return s, err
}

// CreateStudent inserts a student registration
func (r *LegacyRepository) CreateStudent(ctx context.Context, s *models.StudentRegistration) (int64, error) {
	sql, args, err := r.sb.Insert("student_registrations").
		Columns(studentRegistrationColumns[1:]...).
		Values(s.Name, s.Email, s.Password, s.Department, s.Semester, s.DOB, s.Gender, s.PhoneNumber, s.ParentsNumber).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student registration query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&s.ID); err != nil {
		return 0, fmt.Errorf("error creating student registration: %w", err)
	}
	return s.ID, nil
}

// GetStudentByID retrieves a student registration
func (r *LegacyRepository) GetStudentByID(ctx context.Context, id int64) (*models.StudentRegistration, error) {
	sql, args, err := r.sb.Select(studentRegistrationColumns...).
		From("student_registrations").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student registration query: %w", err)
	}

	s, err := scanStudentRegistration(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapNoRows(err, apperrors.ErrStudentNotFound)
	}
	return s, nil
}

// ListStudents returns every student registration
func (r *LegacyRepository) ListStudents(ctx context.Context) ([]*models.StudentRegistration, error) {
	sql, args, err := r.sb.Select(studentRegistrationColumns...).
		From("student_registrations").OrderBy("id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list student registrations query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying student registrations: %w", err)
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.StudentRegistration, error) {
		return scanStudentRegistration(row)
	})
}
