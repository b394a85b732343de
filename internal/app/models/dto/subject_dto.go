package dto

// SubjectRow is one (semester, subject name) pair of a catalog import
type SubjectRow struct {
	Semester    int    `json:"semester" binding:"required,min=1"`
	SubjectName string `json:"subjectName" binding:"required"`
}

// AddSubjectsRequest adds catalog rows without a spreadsheet
type AddSubjectsRequest struct {
	Subjects []SubjectRow `json:"subjects" binding:"required,min=1,dive"`
}

// SubjectImportResponse summarises a catalog import
type SubjectImportResponse struct {
	RowsProcessed   int    `json:"rowsProcessed" example:"12"`
	SubjectsCreated int    `json:"subjectsCreated" example:"4"`
	MappingsCreated int    `json:"mappingsCreated" example:"12"`
	ArchivedAs      string `json:"archivedAs,omitempty"`
}

// SemesterSubjectResponse is a subject offered in a semester
type SemesterSubjectResponse struct {
	Semester    int    `json:"semester" example:"3"`
	SubjectID   int64  `json:"subjectId" example:"11"`
	SubjectName string `json:"subject" example:"Operating Systems"`
}

// AssignSubjectRequest assigns a subject of a semester to a faculty member
type AssignSubjectRequest struct {
	FacultyID int64  `json:"facultyId" binding:"required,min=1"`
	Subject   string `json:"subject" binding:"required"`
	Semester  int    `json:"semester" binding:"required,min=1"`
}

// AssignmentResponse describes a faculty assignment
type AssignmentResponse struct {
	ID        int64  `json:"id"`
	FacultyID int64  `json:"facultyId"`
	Semester  int    `json:"semester"`
	Subject   string `json:"subject"`
}
