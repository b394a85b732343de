package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/ams/internal/app/controllers"
	"github.com/yigit/ams/internal/app/models"
	"github.com/yigit/ams/internal/app/models/dto"
	"github.com/yigit/ams/internal/middleware"
)

// Controllers groups every HTTP handler set mounted by SetupRouter
type Controllers struct {
	Auth       *controllers.AuthController
	Catalog    *controllers.CatalogController
	Faculty    *controllers.FacultyController
	Student    *controllers.StudentController
	Subject    *controllers.SubjectController
	Assignment *controllers.AssignmentController
	Attendance *controllers.AttendanceController
	Legacy     *controllers.LegacyController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	health := func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	}
	router.GET("/ping", health)

	// API version group
	v1 := router.Group("/api/v1")
	v1.GET("/health", health)

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
	}
	v1.GET("/courses", c.Catalog.ListCourses)
	v1.GET("/courses/:courseId/departments", c.Catalog.ListCourseDepartments)
	v1.GET("/semesters", c.Catalog.ListCourseSemesters)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	college := authMiddleware.RoleRequired(models.RoleCollege)
	collegeOrHOD := authMiddleware.RoleRequired(models.RoleCollege, models.RoleHOD)
	hod := authMiddleware.RoleRequired(models.RoleHOD)
	faculty := authMiddleware.RoleRequired(models.RoleFaculty)
	student := authMiddleware.RoleRequired(models.RoleStudent)

	authenticated.GET("/auth/me", c.Auth.Me)

	colleges := authenticated.Group("/colleges/:collegeId")
	{
		colleges.GET("/courses", college, c.Catalog.ListCollegeCourses)
		colleges.POST("/course-departments", college, c.Catalog.SaveCourseDepartments)
		colleges.GET("/course-departments", college, c.Catalog.ListCourseDepartmentsOfCollege)

		colleges.POST("/faculty", collegeOrHOD, c.Faculty.RegisterFaculty)
		colleges.POST("/faculty/import", collegeOrHOD, c.Faculty.ImportFaculty)
		colleges.GET("/hods", college, c.Faculty.ListHODs)

		colleges.POST("/students", hod, c.Student.RegisterStudent)
		colleges.POST("/students/import", hod, c.Student.ImportStudents)
		colleges.GET("/students", hod, c.Student.ListStudents)
	}

	facultyGroup := authenticated.Group("/faculty")
	{
		facultyGroup.GET("/department", hod, c.Faculty.ListDepartmentFaculty)
		facultyGroup.PUT("/:facultyId", collegeOrHOD, c.Faculty.UpdateFaculty)
		facultyGroup.DELETE("/:facultyId", collegeOrHOD, c.Faculty.DeleteFaculty)
	}

	students := authenticated.Group("/students", hod)
	{
		students.PUT("/:studentId", c.Student.UpdateStudent)
		students.DELETE("/:studentId", c.Student.DeleteStudent)
	}

	subjects := authenticated.Group("/subjects", hod)
	{
		subjects.POST("", c.Subject.AddSubjects)
		subjects.POST("/import", c.Subject.ImportSubjects)
		subjects.GET("", c.Subject.ListSubjects)
	}

	assignments := authenticated.Group("/faculty-assignments")
	{
		assignments.POST("", hod, c.Assignment.Assign)
		assignments.GET("/me", faculty, c.Assignment.ListMine)
	}

	attendance := authenticated.Group("/attendance")
	{
		attendance.GET("/students", faculty, c.Attendance.ListStudents)
		attendance.POST("", faculty, c.Attendance.MarkAttendance)
		attendance.GET("/me", student, c.Attendance.MyAttendance)
	}

	legacy := authenticated.Group("/legacy", college)
	{
		legacy.POST("/colleges", c.Legacy.RegisterCollege)
		legacy.GET("/colleges", c.Legacy.ListColleges)
		legacy.POST("/colleges/login", c.Legacy.AuthenticateCollege)
		legacy.POST("/faculty", c.Legacy.RegisterFaculty)
		legacy.GET("/faculty", c.Legacy.ListFaculty)
		legacy.POST("/faculty/login", c.Legacy.AuthenticateFaculty)
		legacy.POST("/students", c.Legacy.RegisterStudent)
		legacy.GET("/students", c.Legacy.ListStudents)
		legacy.POST("/students/login", c.Legacy.AuthenticateStudent)
	}
}
