package repositories

import (
	"context"
	"time"

	"github.com/yigit/ams/internal/app/models"
)

// ICollegeRepository defines college persistence
type ICollegeRepository interface {
	Create(ctx context.Context, college *models.College) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.College, error)
	GetByEmail(ctx context.Context, email string) (*models.College, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ICatalogRepository defines course, semester, department and offering persistence
type ICatalogRepository interface {
	ListCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetCourseByName(ctx context.Context, name string) (*models.Course, error)
	UpsertCourse(ctx context.Context, name string, totalSemesters int) (int64, error)
	ListCollegeCourses(ctx context.Context, collegeID int64) ([]*models.Course, error)

	GetSemesterByNumber(ctx context.Context, number int) (*models.Semester, error)
	ListSemestersUpTo(ctx context.Context, max int) ([]*models.Semester, error)
	EnsureSemester(ctx context.Context, number int) (int64, error)

	GetDepartmentByName(ctx context.Context, name string) (*models.Department, error)
	FindOrCreateDepartment(ctx context.Context, name string) (*models.Department, error)
	ListDepartmentsByCourse(ctx context.Context, courseID int64) ([]*models.Department, error)
	ListCollegeCourseDepartments(ctx context.Context, collegeID int64, courseName string) ([]*models.Department, error)

	FindOrCreateCourseDepartment(ctx context.Context, courseID, departmentID int64) (int64, error)
	FindOrCreateCollegeCourse(ctx context.Context, collegeID, courseID int64) (*models.CollegeCourse, error)
	FindOrCreateCollegeCourseDepartment(ctx context.Context, collegeCourseID, departmentID int64) (int64, error)
	DeleteCollegeCourseDepartment(ctx context.Context, collegeCourseID, departmentID int64) (bool, error)
	FindCollegeCourseDepartment(ctx context.Context, collegeID int64, courseName, departmentName string) (*models.CollegeCourseDepartment, error)
	GetCollegeCourseDepartmentByID(ctx context.Context, id int64) (*models.CollegeCourseDepartment, error)
}

// ISubjectRepository defines the subject catalog chain
type ISubjectRepository interface {
	FindOrCreateSubject(ctx context.Context, name string) (int64, bool, error)
	GetSubjectByName(ctx context.Context, name string) (*models.Subject, error)
	FindOrCreateSemesterSubject(ctx context.Context, semesterID, subjectID int64) (int64, bool, error)
	FindOrCreateDepartmentSemesterSubject(ctx context.Context, departmentID, semesterID, subjectID int64) (int64, bool, error)
	FindOrCreateCCDSS(ctx context.Context, ccdID, semesterID, subjectID int64) (int64, bool, error)
	FindCCDSS(ctx context.Context, ccdID, semesterID, subjectID int64) (*models.CollegeCourseDepartmentSemesterSubject, error)
	ListSemesterSubjects(ctx context.Context, ccdID int64) ([]*models.SemesterSubjectView, error)
}

// IFacultyRepository defines faculty persistence
type IFacultyRepository interface {
	Create(ctx context.Context, faculty *models.Faculty) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetByEmail(ctx context.Context, email string) (*models.Faculty, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListHODsByCollege(ctx context.Context, collegeID int64) ([]*models.Faculty, error)
	ListByCollegeCourseDepartment(ctx context.Context, ccdID int64) ([]*models.Faculty, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
}

// IStudentRepository defines student and enrollment persistence
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error

	CreateEnrollment(ctx context.Context, e *models.StudentEnrollment) (int64, error)
	UpdateEnrollmentSemester(ctx context.Context, studentID, semesterID int64) error
	GetEnrollmentByStudentID(ctx context.Context, studentID int64) (*models.StudentEnrollment, error)
	ListEnrollmentsByCCD(ctx context.Context, ccdID int64, offset, limit int) ([]*models.StudentEnrollment, int64, error)
	ListEnrollmentsByCCDAndSemester(ctx context.Context, ccdID, semesterID int64) ([]*models.StudentEnrollment, error)
}

// IAssignmentRepository defines faculty assignment persistence
type IAssignmentRepository interface {
	Create(ctx context.Context, a *models.FacultyAssignment) (int64, error)
	Exists(ctx context.Context, facultyID, ccdssID int64) (bool, error)
	ListByFaculty(ctx context.Context, facultyID int64) ([]*models.FacultyAssignment, error)
}

// IAttendanceRepository defines attendance persistence
type IAttendanceRepository interface {
	Upsert(ctx context.Context, a *models.Attendance) error
	ListByEnrollment(ctx context.Context, enrollmentID int64, from, to *time.Time) ([]*models.Attendance, error)
}

// ILegacyRepository defines the flat registration tables
type ILegacyRepository interface {
	CreateCollege(ctx context.Context, c *models.CollegeRegistration) error
	GetCollegeByEmail(ctx context.Context, email string) (*models.CollegeRegistration, error)
	ListColleges(ctx context.Context) ([]*models.CollegeRegistration, error)
	CreateFaculty(ctx context.Context, f *models.FacultyRegistration) (int64, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.FacultyRegistration, error)
	ListFaculty(ctx context.Context) ([]*models.FacultyRegistration, error)
	CreateStudent(ctx context.Context, s *models.StudentRegistration) (int64, error)
	GetStudentByID(ctx context.Context, id int64) (*models.StudentRegistration, error)
	ListStudents(ctx context.Context) ([]*models.StudentRegistration, error)
}

var (
	_ ICollegeRepository    = (*CollegeRepository)(nil)
	_ ICatalogRepository    = (*CatalogRepository)(nil)
	_ ISubjectRepository    = (*SubjectRepository)(nil)
	_ IFacultyRepository    = (*FacultyRepository)(nil)
	_ IStudentRepository    = (*StudentRepository)(nil)
	_ IAssignmentRepository = (*AssignmentRepository)(nil)
	_ IAttendanceRepository = (*AttendanceRepository)(nil)
	_ ILegacyRepository     = (*LegacyRepository)(nil)
)
