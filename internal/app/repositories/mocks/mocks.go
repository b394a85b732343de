// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/repositories"
)

var (
	_ repositories.ICollegeRepository    = (*CollegeRepository)(nil)
	_ repositories.ICatalogRepository    = (*CatalogRepository)(nil)
	_ repositories.ISubjectRepository    = (*SubjectRepository)(nil)
	_ repositories.IFacultyRepository    = (*FacultyRepository)(nil)
	_ repositories.IStudentRepository    = (*StudentRepository)(nil)
	_ repositories.IAssignmentRepository = (*AssignmentRepository)(nil)
	_ repositories.IAttendanceRepository = (*AttendanceRepository)(nil)
	_ repositories.ILegacyRepository     = (*LegacyRepository)(nil)
)

func int64Result(args mock.Arguments) (int64, error) {
	return args.Get(0).(int64), args.Error(1)
}

func findOrCreateResult(args mock.Arguments) (int64, bool, error) {
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

// CollegeRepository mocks repositories.ICollegeRepository
type CollegeRepository struct {
	mock.Mock
}

func (m *CollegeRepository) Create(ctx context.Context, college *models.College) (int64, error) {
	return int64Result(m.Called(ctx, college))
}

func (m *CollegeRepository) GetByID(ctx context.Context, id int64) (*models.College, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.College), args.Error(1)
}

func (m *CollegeRepository) GetByEmail(ctx context.Context, email string) (*models.College, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.College), args.Error(1)
}

func (m *CollegeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *CollegeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// CatalogRepository mocks repositories.ICatalogRepository
type CatalogRepository struct {
	mock.Mock
}

func courses(args mock.Arguments) ([]*models.Course, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Course), args.Error(1)
}

func course(args mock.Arguments) (*models.Course, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func departments(args mock.Arguments) ([]*models.Department, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Department), args.Error(1)
}

func ccd(args mock.Arguments) (*models.CollegeCourseDepartment, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollegeCourseDepartment), args.Error(1)
}

func (m *CatalogRepository) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return courses(m.Called(ctx))
}

func (m *CatalogRepository) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return course(m.Called(ctx, id))
}

func (m *CatalogRepository) GetCourseByName(ctx context.Context, name string) (*models.Course, error) {
	return course(m.Called(ctx, name))
}

func (m *CatalogRepository) UpsertCourse(ctx context.Context, name string, totalSemesters int) (int64, error) {
	return int64Result(m.Called(ctx, name, totalSemesters))
}

func (m *CatalogRepository) ListCollegeCourses(ctx context.Context, collegeID int64) ([]*models.Course, error) {
	return courses(m.Called(ctx, collegeID))
}

func (m *CatalogRepository) GetSemesterByNumber(ctx context.Context, number int) (*models.Semester, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Semester), args.Error(1)
}

func (m *CatalogRepository) ListSemestersUpTo(ctx context.Context, max int) ([]*models.Semester, error) {
	args := m.Called(ctx, max)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Semester), args.Error(1)
}

func (m *CatalogRepository) EnsureSemester(ctx context.Context, number int) (int64, error) {
	return int64Result(m.Called(ctx, number))
}

func (m *CatalogRepository) GetDepartmentByName(ctx context.Context, name string) (*models.Department, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *CatalogRepository) FindOrCreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *CatalogRepository) ListDepartmentsByCourse(ctx context.Context, courseID int64) ([]*models.Department, error) {
	return departments(m.Called(ctx, courseID))
}

func (m *CatalogRepository) ListCollegeCourseDepartments(ctx context.Context, collegeID int64, courseName string) ([]*models.Department, error) {
	return departments(m.Called(ctx, collegeID, courseName))
}

func (m *CatalogRepository) FindOrCreateCourseDepartment(ctx context.Context, courseID, departmentID int64) (int64, error) {
	return int64Result(m.Called(ctx, courseID, departmentID))
}

func (m *CatalogRepository) FindOrCreateCollegeCourse(ctx context.Context, collegeID, courseID int64) (*models.CollegeCourse, error) {
	args := m.Called(ctx, collegeID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollegeCourse), args.Error(1)
}

func (m *CatalogRepository) FindOrCreateCollegeCourseDepartment(ctx context.Context, collegeCourseID, departmentID int64) (int64, error) {
	return int64Result(m.Called(ctx, collegeCourseID, departmentID))
}

func (m *CatalogRepository) DeleteCollegeCourseDepartment(ctx context.Context, collegeCourseID, departmentID int64) (bool, error) {
	args := m.Called(ctx, collegeCourseID, departmentID)
	return args.Bool(0), args.Error(1)
}

func (m *CatalogRepository) FindCollegeCourseDepartment(ctx context.Context, collegeID int64, courseName, departmentName string) (*models.CollegeCourseDepartment, error) {
	return ccd(m.Called(ctx, collegeID, courseName, departmentName))
}

func (m *CatalogRepository) GetCollegeCourseDepartmentByID(ctx context.Context, id int64) (*models.CollegeCourseDepartment, error) {
	return ccd(m.Called(ctx, id))
}

// SubjectRepository mocks repositories.ISubjectRepository
type SubjectRepository struct {
	mock.Mock
}

func (m *SubjectRepository) FindOrCreateSubject(ctx context.Context, name string) (int64, bool, error) {
	return findOrCreateResult(m.Called(ctx, name))
}

func (m *SubjectRepository) GetSubjectByName(ctx context.Context, name string) (*models.Subject, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Subject), args.Error(1)
}

func (m *SubjectRepository) FindOrCreateSemesterSubject(ctx context.Context, semesterID, subjectID int64) (int64, bool, error) {
	return findOrCreateResult(m.Called(ctx, semesterID, subjectID))
}

func (m *SubjectRepository) FindOrCreateDepartmentSemesterSubject(ctx context.Context, departmentID, semesterID, subjectID int64) (int64, bool, error) {
	return findOrCreateResult(m.Called(ctx, departmentID, semesterID, subjectID))
}

func (m *SubjectRepository) FindOrCreateCCDSS(ctx context.Context, ccdID, semesterID, subjectID int64) (int64, bool, error) {
	return findOrCreateResult(m.Called(ctx, ccdID, semesterID, subjectID))
}

func (m *SubjectRepository) FindCCDSS(ctx context.Context, ccdID, semesterID, subjectID int64) (*models.CollegeCourseDepartmentSemesterSubject, error) {
	args := m.Called(ctx, ccdID, semesterID, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollegeCourseDepartmentSemesterSubject), args.Error(1)
}

func (m *SubjectRepository) ListSemesterSubjects(ctx context.Context, ccdID int64) ([]*models.SemesterSubjectView, error) {
	args := m.Called(ctx, ccdID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.SemesterSubjectView), args.Error(1)
}

// FacultyRepository mocks repositories.IFacultyRepository
type FacultyRepository struct {
	mock.Mock
}

func faculty(args mock.Arguments) (*models.Faculty, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Faculty), args.Error(1)
}

func facultyList(args mock.Arguments) ([]*models.Faculty, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Faculty), args.Error(1)
}

func (m *FacultyRepository) Create(ctx context.Context, f *models.Faculty) (int64, error) {
	return int64Result(m.Called(ctx, f))
}

func (m *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return faculty(m.Called(ctx, id))
}

func (m *FacultyRepository) GetByEmail(ctx context.Context, email string) (*models.Faculty, error) {
	return faculty(m.Called(ctx, email))
}

func (m *FacultyRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *FacultyRepository) ListHODsByCollege(ctx context.Context, collegeID int64) ([]*models.Faculty, error) {
	return facultyList(m.Called(ctx, collegeID))
}

func (m *FacultyRepository) ListByCollegeCourseDepartment(ctx context.Context, ccdID int64) ([]*models.Faculty, error) {
	return facultyList(m.Called(ctx, ccdID))
}

func (m *FacultyRepository) Update(ctx context.Context, f *models.Faculty) error {
	return m.Called(ctx, f).Error(0)
}

func (m *FacultyRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// StudentRepository mocks repositories.IStudentRepository
type StudentRepository struct {
	mock.Mock
}

func student(args mock.Arguments) (*models.Student, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *StudentRepository) Create(ctx context.Context, s *models.Student) (int64, error) {
	return int64Result(m.Called(ctx, s))
}

func (m *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return student(m.Called(ctx, id))
}

func (m *StudentRepository) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	return student(m.Called(ctx, email))
}

func (m *StudentRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *StudentRepository) Update(ctx context.Context, s *models.Student) error {
	return m.Called(ctx, s).Error(0)
}

func (m *StudentRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *StudentRepository) CreateEnrollment(ctx context.Context, e *models.StudentEnrollment) (int64, error) {
	return int64Result(m.Called(ctx, e))
}

func (m *StudentRepository) UpdateEnrollmentSemester(ctx context.Context, studentID, semesterID int64) error {
	return m.Called(ctx, studentID, semesterID).Error(0)
}

func (m *StudentRepository) GetEnrollmentByStudentID(ctx context.Context, studentID int64) (*models.StudentEnrollment, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentEnrollment), args.Error(1)
}

func (m *StudentRepository) ListEnrollmentsByCCD(ctx context.Context, ccdID int64, offset, limit int) ([]*models.StudentEnrollment, int64, error) {
	args := m.Called(ctx, ccdID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.StudentEnrollment), args.Get(1).(int64), args.Error(2)
}

func (m *StudentRepository) ListEnrollmentsByCCDAndSemester(ctx context.Context, ccdID, semesterID int64) ([]*models.StudentEnrollment, error) {
	args := m.Called(ctx, ccdID, semesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StudentEnrollment), args.Error(1)
}

// AssignmentRepository mocks repositories.IAssignmentRepository
type AssignmentRepository struct {
	mock.Mock
}

func (m *AssignmentRepository) Create(ctx context.Context, a *models.FacultyAssignment) (int64, error) {
	return int64Result(m.Called(ctx, a))
}

func (m *AssignmentRepository) Exists(ctx context.Context, facultyID, ccdssID int64) (bool, error) {
	args := m.Called(ctx, facultyID, ccdssID)
	return args.Bool(0), args.Error(1)
}

func (m *AssignmentRepository) ListByFaculty(ctx context.Context, facultyID int64) ([]*models.FacultyAssignment, error) {
	args := m.Called(ctx, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FacultyAssignment), args.Error(1)
}

// AttendanceRepository mocks repositories.IAttendanceRepository
type AttendanceRepository struct {
	mock.Mock
}

func (m *AttendanceRepository) Upsert(ctx context.Context, a *models.Attendance) error {
	return m.Called(ctx, a).Error(0)
}

func (m *AttendanceRepository) ListByEnrollment(ctx context.Context, enrollmentID int64, from, to *time.Time) ([]*models.Attendance, error) {
	args := m.Called(ctx, enrollmentID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Attendance), args.Error(1)
}

// LegacyRepository mocks repositories.ILegacyRepository
type LegacyRepository struct {
	mock.Mock
}

func (m *LegacyRepository) CreateCollege(ctx context.Context, c *models.CollegeRegistration) error {
	return m.Called(ctx, c).Error(0)
}

func (m *LegacyRepository) GetCollegeByEmail(ctx context.Context, email string) (*models.CollegeRegistration, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CollegeRegistration), args.Error(1)
}

func (m *LegacyRepository) ListColleges(ctx context.Context) ([]*models.CollegeRegistration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CollegeRegistration), args.Error(1)
}

func (m *LegacyRepository) CreateFaculty(ctx context.Context, f *models.FacultyRegistration) (int64, error) {
	return int64Result(m.Called(ctx, f))
}

func (m *LegacyRepository) GetFacultyByID(ctx context.Context, id int64) (*models.FacultyRegistration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FacultyRegistration), args.Error(1)
}

func (m *LegacyRepository) ListFaculty(ctx context.Context) ([]*models.FacultyRegistration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FacultyRegistration), args.Error(1)
}

func (m *LegacyRepository) CreateStudent(ctx context.Context, s *models.StudentRegistration) (int64, error) {
	return int64Result(m.Called(ctx, s))
}

func (m *LegacyRepository) GetStudentByID(ctx context.Context, id int64) (*models.StudentRegistration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentRegistration), args.Error(1)
}

func (m *LegacyRepository) ListStudents(ctx context.Context) ([]*models.StudentRegistration, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StudentRegistration), args.Error(1)
}
