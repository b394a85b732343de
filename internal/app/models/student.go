package models

import "time"

// Student is a learner account
type Student struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	PhoneNumber   string    `json:"number"`
	ParentsNumber string    `json:"parentsNumber"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// StudentEnrollment places a student in a semester of a college/course/department.
// A student has at most one enrollment.
type StudentEnrollment struct {
	ID                        int64 `json:"id"`
	StudentID                 int64 `json:"studentId"`
	CollegeCourseDepartmentID int64 `json:"collegeCourseDepartmentId"`
	SemesterID                int64 `json:"semesterId"`

	// Populated by joins
	Student        *Student `json:"student,omitempty"`
	SemesterNumber int      `json:"semester"`
	CollegeID      int64    `json:"collegeId"`
	CollegeName    string   `json:"collegeName"`
	CollegeEmail   string   `json:"-"`
	CourseName     string   `json:"course"`
	DepartmentName string   `json:"department"`
}
