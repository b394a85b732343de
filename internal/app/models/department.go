package models

// Department is a named branch of study, shared across colleges
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CourseDepartment records that a course has a department
type CourseDepartment struct {
	ID           int64 `json:"id"`
	CourseID     int64 `json:"courseId"`
	DepartmentID int64 `json:"departmentId"`
}

// CollegeCourse records that a college offers a course
type CollegeCourse struct {
	ID        int64 `json:"id"`
	CollegeID int64 `json:"collegeId"`
	CourseID  int64 `json:"courseId"`
}

// CollegeCourseDepartment links a college's course offering to a department.
// Faculty and students belong to exactly one of these.
type CollegeCourseDepartment struct {
	ID              int64 `json:"id"`
	CollegeCourseID int64 `json:"collegeCourseId"`
	DepartmentID    int64 `json:"departmentId"`

	// Denormalised lookups, populated by joins
	CollegeID      int64  `json:"collegeId"`
	CourseID       int64  `json:"courseId"`
	CourseName     string `json:"courseName"`
	DepartmentName string `json:"departmentName"`
}
