package models

import "time"

// Faculty is a teaching staff member. Designation "HOD" grants the HOD role.
type Faculty struct {
	ID                        int64     `json:"id"`
	Name                      string    `json:"name"`
	Email                     string    `json:"email"`
	Password                  string    `json:"-"`
	Designation               string    `json:"designation"`
	PhoneNumber               string    `json:"number"`
	CollegeCourseDepartmentID int64     `json:"collegeCourseDepartmentId"`
	CreatedAt                 time.Time `json:"createdAt"`
	UpdatedAt                 time.Time `json:"updatedAt"`

	// Populated by joins
	CollegeID      int64  `json:"collegeId"`
	CourseName     string `json:"course"`
	DepartmentName string `json:"department"`
}

// IsHOD reports whether the faculty member heads the department
func (f *Faculty) IsHOD() bool {
	return f.Designation == DesignationHOD
}
