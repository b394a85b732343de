package dto

import "github.com/yigit/ams/internal/app/models"

// RegisterFacultyRequest registers a faculty member in a college course department
type RegisterFacultyRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Number      string `json:"number" binding:"omitempty,numeric,min=7,max=15"`
	Designation string `json:"designation" binding:"required"`
	Course      string `json:"course" binding:"required"`
	Department  string `json:"department" binding:"required"`
}

// UpdateFacultyRequest updates a faculty member's profile
type UpdateFacultyRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=255"`
	Email       string `json:"email" binding:"required,email"`
	Number      string `json:"number" binding:"omitempty,numeric,min=7,max=15"`
	Designation string `json:"designation" binding:"required"`
}

// FacultyResponse is the public view of a faculty member
type FacultyResponse struct {
	ID          int64  `json:"id" example:"7"`
	Name        string `json:"name" example:"Asha Rao"`
	Email       string `json:"email" example:"asha@gec.edu"`
	Number      string `json:"number" example:"9876543210"`
	Designation string `json:"designation" example:"HOD"`
	Course      string `json:"course" example:"B.Tech"`
	Department  string `json:"department" example:"Computer Science"`
}

// NewFacultyResponse maps a faculty model
func NewFacultyResponse(f *models.Faculty) FacultyResponse {
	return FacultyResponse{
		ID:          f.ID,
		Name:        f.Name,
		Email:       f.Email,
		Number:      f.PhoneNumber,
		Designation: f.Designation,
		Course:      f.CourseName,
		Department:  f.DepartmentName,
	}
}

// RegisterStudentRequest registers and enrolls a student
type RegisterStudentRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=255"`
	Email         string `json:"email" binding:"required,email"`
	Number        string `json:"number" binding:"omitempty,numeric,min=7,max=15"`
	ParentsNumber string `json:"parentsNumber" binding:"omitempty,numeric,min=7,max=15"`
	Course        string `json:"course" binding:"required"`
	Department    string `json:"department" binding:"required"`
	Semester      int    `json:"sem" binding:"required,min=1"`
}

// UpdateStudentRequest updates a student and moves the enrollment to another semester
type UpdateStudentRequest struct {
	Name          string `json:"name" binding:"required,min=2,max=255"`
	Email         string `json:"email" binding:"required,email"`
	Number        string `json:"number" binding:"omitempty,numeric,min=7,max=15"`
	ParentsNumber string `json:"parentsNumber" binding:"omitempty,numeric,min=7,max=15"`
	Semester      int    `json:"sem" binding:"required,min=1"`
}

// StudentResponse is the public view of an enrolled student
type StudentResponse struct {
	ID            int64  `json:"id" example:"42"`
	Name          string `json:"name" example:"Ravi Kumar"`
	Email         string `json:"email" example:"ravi@gec.edu"`
	Number        string `json:"number" example:"9876500000"`
	ParentsNumber string `json:"parentsNumber" example:"9876511111"`
	Course        string `json:"course" example:"B.Tech"`
	Department    string `json:"department" example:"Computer Science"`
	Semester      int    `json:"sem" example:"3"`
}

// NewStudentResponse maps an enrollment with its student
func NewStudentResponse(e *models.StudentEnrollment) StudentResponse {
	resp := StudentResponse{
		Course:     e.CourseName,
		Department: e.DepartmentName,
		Semester:   e.SemesterNumber,
	}
	if e.Student != nil {
		resp.ID = e.Student.ID
		resp.Name = e.Student.Name
		resp.Email = e.Student.Email
		resp.Number = e.Student.PhoneNumber
		resp.ParentsNumber = e.Student.ParentsNumber
	}
	return resp
}

// RowError reports why one spreadsheet row was rejected
type RowError struct {
	Row   int    `json:"row" example:"4"`
	Error string `json:"error" example:"email already exists"`
}

// BulkImportResponse summarises a people import
type BulkImportResponse struct {
	Created int        `json:"created" example:"18"`
	Failed  []RowError `json:"failed"`
}
