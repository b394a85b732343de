package models

// Subject is a globally unique subject name
type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SemesterSubject places a subject in a semester
type SemesterSubject struct {
	ID         int64 `json:"id"`
	SemesterID int64 `json:"semesterId"`
	SubjectID  int64 `json:"subjectId"`
}

// DepartmentSemesterSubject places a semester subject in a department
type DepartmentSemesterSubject struct {
	ID           int64 `json:"id"`
	DepartmentID int64 `json:"departmentId"`
	SemesterID   int64 `json:"semesterId"`
	SubjectID    int64 `json:"subjectId"`
}

// CollegeCourseDepartmentSemesterSubject is a subject taught in one semester
// of one college/course/department offering.
type CollegeCourseDepartmentSemesterSubject struct {
	ID                        int64 `json:"id"`
	CollegeCourseDepartmentID int64 `json:"collegeCourseDepartmentId"`
	SemesterID                int64 `json:"semesterId"`
	SubjectID                 int64 `json:"subjectId"`
}

// SemesterSubjectView is a flattened (semester, subject) pair
type SemesterSubjectView struct {
	SemesterNumber int    `json:"semester"`
	SubjectID      int64  `json:"subjectId"`
	SubjectName    string `json:"subject"`
}
