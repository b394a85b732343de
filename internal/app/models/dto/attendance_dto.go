package dto

import "time"

// AttendanceEntry is one student's status for a subject
type AttendanceEntry struct {
	StudentID int64  `json:"studentId" binding:"required,min=1"`
	Subject   string `json:"subject" binding:"required"`
	Status    string `json:"status" binding:"required" example:"PRESENT"`
}

// MarkAttendanceRequest marks today's attendance for several students
type MarkAttendanceRequest struct {
	Records []AttendanceEntry `json:"records" binding:"required,min=1,dive"`
}

// MarkAttendanceResponse reports how many records were written
type MarkAttendanceResponse struct {
	Date  string `json:"date" example:"2025-03-14"`
	Saved int    `json:"saved" example:"30"`
}

// AttendanceRecordResponse is one stored attendance record
type AttendanceRecordResponse struct {
	Date    string `json:"date" example:"2025-03-14"`
	Subject string `json:"subject" example:"Operating Systems"`
	Status  string `json:"status" example:"PRESENT"`
	Faculty string `json:"faculty,omitempty" example:"Asha Rao"`
}

// SubjectAttendanceSummary aggregates a student's attendance for one subject
type SubjectAttendanceSummary struct {
	Subject    string  `json:"subject" example:"Operating Systems"`
	Present    int     `json:"present" example:"18"`
	Total      int     `json:"total" example:"20"`
	Percentage float64 `json:"percentage" example:"90"`
}

// StudentAttendanceResponse is a student's attendance history
type StudentAttendanceResponse struct {
	From    *time.Time                 `json:"from,omitempty"`
	To      *time.Time                 `json:"to,omitempty"`
	Records []AttendanceRecordResponse `json:"records"`
	Summary []SubjectAttendanceSummary `json:"summary"`
}
