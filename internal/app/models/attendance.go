package models

import "time"

// AttendanceStatus is the outcome recorded for one student, subject and day
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
)

// Valid reports whether s is a known status
func (s AttendanceStatus) Valid() bool {
	return s == AttendancePresent || s == AttendanceAbsent
}

// FacultyAssignment authorises a faculty member to teach a CCDSS
type FacultyAssignment struct {
	ID        int64 `json:"id"`
	FacultyID int64 `json:"facultyId"`
	CCDSSID   int64 `json:"ccdssId"`

	SemesterNumber int    `json:"semester"`
	SubjectName    string `json:"subject"`
}

// Attendance is a single day-level attendance record
type Attendance struct {
	ID                  int64            `json:"id"`
	StudentEnrollmentID int64            `json:"studentEnrollmentId"`
	SubjectID           int64            `json:"subjectId"`
	FacultyID           int64            `json:"facultyId"`
	Date                time.Time        `json:"date"`
	Status              AttendanceStatus `json:"status"`

	SubjectName string `json:"subject"`
	FacultyName string `json:"facultyName"`
}
