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

// CatalogRepository handles courses, semesters, departments and the
// college/course/department offering tables.
type CatalogRepository struct {
	baseRepository
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(conn db.DBTX) *CatalogRepository {
	return &CatalogRepository{baseRepository: newBaseRepository(conn)}
}

// --- Courses ---

func (r *CatalogRepository) queryCourses(ctx context.Context, sel squirrel.SelectBuilder) ([]*models.Course, error) {
	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing course query")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		c := &models.Course{}
		if err := rows.Scan(&c.ID, &c.Name, &c.TotalSemesters); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// ListCourses returns every course ordered by name
func (r *CatalogRepository) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return r.queryCourses(ctx, r.sb.Select("id", "name", "total_semesters").From("courses").OrderBy("name ASC"))
}

func (r *CatalogRepository) getCourse(ctx context.Context, where squirrel.Sqlizer) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "name", "total_semesters").From("courses").Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	c := &models.Course{}
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&c.ID, &c.Name, &c.TotalSemesters); err != nil {
		return nil, mapNoRows(err, apperrors.ErrCourseNotFound)
	}
	return c, nil
}

// GetCourseByID retrieves a course by ID
func (r *CatalogRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return r.getCourse(ctx, squirrel.Eq{"id": id})
}

// GetCourseByName retrieves a course by its exact name
func (r *CatalogRepository) GetCourseByName(ctx context.Context, name string) (*models.Course, error) {
	return r.getCourse(ctx, squirrel.Eq{"name": name})
}

// UpsertCourse creates a course or updates its semester count
func (r *CatalogRepository) UpsertCourse(ctx context.Context, name string, totalSemesters int) (int64, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("name", "total_semesters").
		Values(name, totalSemesters).
		Suffix("ON CONFLICT (name) DO UPDATE SET total_semesters = EXCLUDED.total_semesters RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build upsert course query: %w", err)
	}

	var id int64
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("error upserting course: %w", err)
	}
	return id, nil
}

// ListCollegeCourses returns the courses a college offers
func (r *CatalogRepository) ListCollegeCourses(ctx context.Context, collegeID int64) ([]*models.Course, error) {
	return r.queryCourses(ctx, r.sb.Select("c.id", "c.name", "c.total_semesters").
		From("college_courses cc").
		Join("courses c ON c.id = cc.course_id").
		Where(squirrel.Eq{"cc.college_id": collegeID}).
		OrderBy("c.name ASC"))
}

// --- Semesters ---

// GetSemesterByNumber retrieves a semester by its number
func (r *CatalogRepository) GetSemesterByNumber(ctx context.Context, number int) (*models.Semester, error) {
	sql, args, err := r.sb.Select("id", "semester_number").From("semesters").
		Where(squirrel.Eq{"semester_number": number}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get semester query: %w", err)
	}

	s := &models.Semester{}
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&s.ID, &s.SemesterNumber); err != nil {
		return nil, mapNoRows(err, apperrors.ErrSemesterNotFound)
	}
	return s, nil
}

// ListSemestersUpTo returns semesters 1..max in order
func (r *CatalogRepository) ListSemestersUpTo(ctx context.Context, max int) ([]*models.Semester, error) {
	sql, args, err := r.sb.Select("id", "semester_number").From("semesters").
		Where(squirrel.LtOrEq{"semester_number": max}).
		OrderBy("semester_number ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list semesters query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying semesters: %w", err)
	}
	semesters, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Semester, error) {
		s := &models.Semester{}
		return s, row.Scan(&s.ID, &s.SemesterNumber)
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning semesters: %w", err)
	}
	return semesters, nil
}

// EnsureSemester creates a semester number if it is missing
func (r *CatalogRepository) EnsureSemester(ctx context.Context, number int) (int64, error) {
	id, _, err := r.findOrCreate(ctx, "semester",
		r.sb.Insert("semesters").Columns("semester_number").Values(number),
		r.sb.Select("id").From("semesters").Where(squirrel.Eq{"semester_number": number}))
	return id, err
}

// --- Departments ---

// GetDepartmentByName retrieves a department by name
func (r *CatalogRepository) GetDepartmentByName(ctx context.Context, name string) (*models.Department, error) {
	sql, args, err := r.sb.Select("id", "name").From("departments").
		Where(squirrel.Eq{"name": name}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get department query: %w", err)
	}

	d := &models.Department{}
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&d.ID, &d.Name); err != nil {
		return nil, mapNoRows(err, apperrors.ErrDepartmentNotFound)
	}
	return d, nil
}

// FindOrCreateDepartment returns the department with name, creating it if needed
func (r *CatalogRepository) FindOrCreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	id, _, err := r.findOrCreate(ctx, "department",
		r.sb.Insert("departments").Columns("name").Values(name),
		r.sb.Select("id").From("departments").Where(squirrel.Eq{"name": name}))
	if err != nil {
		return nil, err
	}
	return &models.Department{ID: id, Name: name}, nil
}

func (r *CatalogRepository) queryDepartments(ctx context.Context, sel squirrel.SelectBuilder) ([]*models.Department, error) {
	sql, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build department query: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing department query")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	departments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Department, error) {
		d := &models.Department{}
		return d, row.Scan(&d.ID, &d.Name)
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning departments: %w", err)
	}
	return departments, nil
}

// ListDepartmentsByCourse returns departments mapped to a course in any college
func (r *CatalogRepository) ListDepartmentsByCourse(ctx context.Context, courseID int64) ([]*models.Department, error) {
	return r.queryDepartments(ctx, r.sb.Select("d.id", "d.name").
		From("course_departments cd").
		Join("departments d ON d.id = cd.department_id").
		Where(squirrel.Eq{"cd.course_id": courseID}).
		Where(squirrel.NotEq{"d.name": models.NoneDepartment}).
		OrderBy("d.name ASC"))
}

// ListCollegeCourseDepartments returns the distinct departments of a college course
func (r *CatalogRepository) ListCollegeCourseDepartments(ctx context.Context, collegeID int64, courseName string) ([]*models.Department, error) {
	return r.queryDepartments(ctx, r.sb.Select("d.id", "d.name").Distinct().
		From("college_course_departments ccd").
		Join("college_courses cc ON cc.id = ccd.college_course_id").
		Join("courses c ON c.id = cc.course_id").
		Join("departments d ON d.id = ccd.department_id").
		Where(squirrel.Eq{"cc.college_id": collegeID, "c.name": courseName}).
		OrderBy("d.name ASC"))
}

// --- Offerings ---

// FindOrCreateCourseDepartment maps a department onto a course
func (r *CatalogRepository) FindOrCreateCourseDepartment(ctx context.Context, courseID, departmentID int64) (int64, error) {
	id, _, err := r.findOrCreate(ctx, "course department",
		r.sb.Insert("course_departments").Columns("course_id", "department_id").Values(courseID, departmentID),
		r.sb.Select("id").From("course_departments").Where(squirrel.Eq{"course_id": courseID, "department_id": departmentID}))
	return id, err
}

// FindOrCreateCollegeCourse records that a college offers a course
func (r *CatalogRepository) FindOrCreateCollegeCourse(ctx context.Context, collegeID, courseID int64) (*models.CollegeCourse, error) {
	id, _, err := r.findOrCreate(ctx, "college course",
		r.sb.Insert("college_courses").Columns("college_id", "course_id").Values(collegeID, courseID),
		r.sb.Select("id").From("college_courses").Where(squirrel.Eq{"college_id": collegeID, "course_id": courseID}))
	if err != nil {
		return nil, err
	}
	return &models.CollegeCourse{ID: id, CollegeID: collegeID, CourseID: courseID}, nil
}

// FindOrCreateCollegeCourseDepartment maps a department onto a college course
func (r *CatalogRepository) FindOrCreateCollegeCourseDepartment(ctx context.Context, collegeCourseID, departmentID int64) (int64, error) {
	id, _, err := r.findOrCreate(ctx, "college course department",
		r.sb.Insert("college_course_departments").Columns("college_course_id", "department_id").Values(collegeCourseID, departmentID),
		r.sb.Select("id").From("college_course_departments").Where(squirrel.Eq{"college_course_id": collegeCourseID, "department_id": departmentID}))
	return id, err
}

// DeleteCollegeCourseDepartment removes one department mapping of a college course.
// It reports false when no mapping existed.
func (r *CatalogRepository) DeleteCollegeCourseDepartment(ctx context.Context, collegeCourseID, departmentID int64) (bool, error) {
	sql, args, err := r.sb.Delete("college_course_departments").
		Where(squirrel.Eq{"college_course_id": collegeCourseID, "department_id": departmentID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete college course department query: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return false, apperrors.ErrDepartmentHasStaff
		}
		return false, fmt.Errorf("error deleting college course department: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *CatalogRepository) selectCCD() squirrel.SelectBuilder {
	return r.sb.Select("ccd.id", "ccd.college_course_id", "ccd.department_id", "cc.college_id", "c.id", "c.name", "d.name").
		From("college_course_departments ccd").
		Join("college_courses cc ON cc.id = ccd.college_course_id").
		Join("courses c ON c.id = cc.course_id").
		Join("departments d ON d.id = ccd.department_id")
}

func (r *CatalogRepository) getCCD(ctx context.Context, sel squirrel.SelectBuilder) (*models.CollegeCourseDepartment, error) {
	sql, args, err := sel.Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build college course department query: %w", err)
	}

	ccd := &models.CollegeCourseDepartment{}
	err = r.q(ctx).QueryRow(ctx, sql, args...).Scan(&ccd.ID, &ccd.CollegeCourseID, &ccd.DepartmentID,
		&ccd.CollegeID, &ccd.CourseID, &ccd.CourseName, &ccd.DepartmentName)
	if err != nil {
		return nil, mapNoRows(err, apperrors.ErrOfferingNotFound)
	}
	return ccd, nil
}

// FindCollegeCourseDepartment resolves the offering for a college, course name and department name
func (r *CatalogRepository) FindCollegeCourseDepartment(ctx context.Context, collegeID int64, courseName, departmentName string) (*models.CollegeCourseDepartment, error) {
	return r.getCCD(ctx, r.selectCCD().Where(squirrel.Eq{
		"cc.college_id": collegeID,
		"c.name":        courseName,
		"d.name":        departmentName,
	}))
}

// GetCollegeCourseDepartmentByID retrieves an offering by ID
func (r *CatalogRepository) GetCollegeCourseDepartmentByID(ctx context.Context, id int64) (*models.CollegeCourseDepartment, error) {
	return r.getCCD(ctx, r.selectCCD().Where(squirrel.Eq{"ccd.id": id}))
}
