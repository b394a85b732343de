package models

import "time"

// CollegeRegistration is the legacy college sign-up record keyed by email
type CollegeRegistration struct {
	Email       string    `json:"email"`
	CollegeName string    `json:"collegeName"`
	Password    string    `json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FacultyRegistration is the legacy faculty record
type FacultyRegistration struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"-"`
	Designation string  `json:"designation"`
	Department  string  `json:"department"`
	DOB         *string `json:"dob,omitempty"`
	Gender      string  `json:"gender"`
	PhoneNumber string  `json:"number"`
}

// StudentRegistration is the legacy student record
type StudentRegistration struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Password      string  `json:"-"`
	Department    string  `json:"department"`
	Semester      int     `json:"sem"`
	DOB           *string `json:"dob,omitempty"`
	Gender        string  `json:"gender"`
	PhoneNumber   string  `json:"number"`
	ParentsNumber string  `json:"parentsNumber"`
}
