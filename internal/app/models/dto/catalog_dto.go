package dto

// CourseResponse describes a course
type CourseResponse struct {
	ID             int64  `json:"id" example:"1"`
	Name           string `json:"name" example:"B.Tech"`
	TotalSemesters int    `json:"totalSemesters" example:"8"`
}

// DepartmentResponse describes a department
type DepartmentResponse struct {
	ID   int64  `json:"id" example:"3"`
	Name string `json:"name" example:"Computer Science"`
}

// SemesterResponse describes a semester
type SemesterResponse struct {
	ID             int64 `json:"id" example:"1"`
	SemesterNumber int   `json:"semesterNumber" example:"1"`
}

// SaveCourseDepartmentsRequest maps departments onto a course offered by a college
type SaveCourseDepartmentsRequest struct {
	CourseName  string   `json:"courseName" binding:"required"`
	Departments []string `json:"departments"`
}

// CourseDepartmentsResponse lists the departments of a college course
type CourseDepartmentsResponse struct {
	CollegeID   int64                `json:"collegeId"`
	CourseName  string               `json:"courseName"`
	Departments []DepartmentResponse `json:"departments"`
}
