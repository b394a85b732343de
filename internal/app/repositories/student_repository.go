package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/db"
	"github.com/yigit/ams/internal/pkg/apperrors"
	"github.com/yigit/ams/internal/pkg/dberrors"
	"github.com/yigit/ams/internal/pkg/logger"
)

// StudentRepository handles students and their enrollments
type StudentRepository struct {
	baseRepository
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(conn db.DBTX) *StudentRepository {
	return &StudentRepository{baseRepository: newBaseRepository(conn)}
}

// Create inserts a student and returns its id
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("name", "email", "password", "phone_number", "parents_number").
		Values(student.Name, student.Email, student.Password, student.PhoneNumber, student.ParentsNumber).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.q(ctx).QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", student.Email).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return student.ID, nil
}

func (r *StudentRepository) getStudent(ctx context.Context, where squirrel.Sqlizer) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "password", "phone_number", "parents_number", "created_at", "updated_at").
		From("students").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s := &models.Student{}
	err = r.q(ctx).QueryRow(ctx, sql, args...).
		Scan(&s.ID, &s.Name, &s.Email, &s.Password, &s.PhoneNumber, &s.ParentsNumber, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, mapNoRows(err, apperrors.ErrStudentNotFound)
	}
	return s, nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getStudent(ctx, squirrel.Eq{"id": id})
}

// GetByEmail retrieves a student by login email
func (r *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return r.getStudent(ctx, squirrel.Eq{"email": email})
}

// EmailExists reports whether a student email is taken
func (r *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, r.sb.Select("1").From("students").Where(squirrel.Eq{"email": email}))
}

// Update saves the editable profile fields of a student
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now()
	sql, args, err := r.sb.Update("students").
		SetMap(map[string]interface{}{
			"name":           student.Name,
			"email":          student.Email,
			"phone_number":   student.PhoneNumber,
			"parents_number": student.ParentsNumber,
			"updated_at":     student.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student together with enrollment and attendance
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// CreateEnrollment places a student in a semester of a college course department
func (r *StudentRepository) CreateEnrollment(ctx context.Context, e *models.StudentEnrollment) (int64, error) {
	sql, args, err := r.sb.Insert("student_enrollments").
		Columns("student_id", "college_course_department_id", "semester_id").
		Values(e.StudentID, e.CollegeCourseDepartmentID, e.SemesterID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create enrollment query: %w", err)
	}

	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&e.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.NewConflictError("student is already enrolled")
		}
		logger.Error().Err(err).Int64("studentID", e.StudentID).Msg("Error executing create enrollment query")
		return 0, fmt.Errorf("error creating enrollment: %w", err)
	}
	return e.ID, nil
}

// UpdateEnrollmentSemester moves a student to another semester
func (r *StudentRepository) UpdateEnrollmentSemester(ctx context.Context, studentID, semesterID int64) error {
	sql, args, err := r.sb.Update("student_enrollments").
		Set("semester_id", semesterID).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update enrollment query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating enrollment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrEnrollmentNotFound
	}
	return nil
}

func (r *StudentRepository) selectEnrollment() squirrel.SelectBuilder {
	return r.sb.Select("e.id", "e.student_id", "e.college_course_department_id", "e.semester_id",
		"s.id", "s.name", "s.email", "s.password", "s.phone_number", "s.parents_number", "s.created_at", "s.updated_at",
		"sem.semester_number", "col.id", "col.college_name", "col.email", "c.name", "d.name").
		From("student_enrollments e").
		Join("students s ON s.id = e.student_id").
		Join("semesters sem ON sem.id = e.semester_id").
		Join("college_course_departments ccd ON ccd.id = e.college_course_department_id").
		Join("college_courses cc ON cc.id = ccd.college_course_id").
		Join("colleges col ON col.id = cc.college_id").
		Join("courses c ON c.id = cc.course_id").
		Join("departments d ON d.id = ccd.department_id")
}

func scanEnrollment(row scanner) (*models.StudentEnrollment, error) {
	e := &models.StudentEnrollment{Student: &models.Student{}}
	s := e.Student
	err := row.Scan(&e.ID, &e.StudentID, &e.CollegeCourseDepartmentID, &e.SemesterID,
		&s.ID, &s.Name, &s.Email, &s.Password, &s.PhoneNumber, &s.ParentsNumber, &s.CreatedAt, &s.UpdatedAt,
		&e.SemesterNumber, &e.CollegeID, &e.CollegeName, &e.CollegeEmail, &e.CourseName, &e.DepartmentName)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// GetEnrollmentByStudentID returns the enrollment of a student with its college context
func (r *StudentRepository) GetEnrollmentByStudentID(ctx context.Context, studentID int64) (*models.StudentEnrollment, error) {
	sql, args, err := r.selectEnrollment().Where(squirrel.Eq{"e.student_id": studentID}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get enrollment query: %w", err)
	}

	e, err := scanEnrollment(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, mapNoRows(err, apperrors.NotFoundf(apperrors.ErrEnrollmentNotFound,
			"student enrollment not found for student id: %d", studentID))
	}
	return e, nil
}

func (r *StudentRepository) queryEnrollments(ctx context.Context, sel squirrel.SelectBuilder) ([]*models.StudentEnrollment, error) {
	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list enrollments query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list enrollments query")
		return nil, fmt.Errorf("error querying enrollments: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.StudentEnrollment, error) {
		return scanEnrollment(row)
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning enrollments: %w", err)
	}
	return list, nil
}

// ListEnrollmentsByCCD returns one page of students in a college course department and the total count
func (r *StudentRepository) ListEnrollmentsByCCD(ctx context.Context, ccdID int64, offset, limit int) ([]*models.StudentEnrollment, int64, error) {
	where := squirrel.Eq{"e.college_course_department_id": ccdID}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("student_enrollments e").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count enrollments query: %w", err)
	}
	var total int64
	if err := r.q(ctx).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting enrollments: %w", err)
	}

	list, err := r.queryEnrollments(ctx, r.selectEnrollment().
		Where(where).
		OrderBy("sem.semester_number ASC", "s.name ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)))
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListEnrollmentsByCCDAndSemester returns every student of one semester of a college course department
func (r *StudentRepository) ListEnrollmentsByCCDAndSemester(ctx context.Context, ccdID, semesterID int64) ([]*models.StudentEnrollment, error) {
	return r.queryEnrollments(ctx, r.selectEnrollment().
		Where(squirrel.Eq{"e.college_course_department_id": ccdID, "e.semester_id": semesterID}).
		OrderBy("s.name ASC"))
}
