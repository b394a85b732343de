package dto

// LegacyCollegeRequest registers a legacy college record
type LegacyCollegeRequest struct {
	CollegeName string `json:"collegeName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

// LegacyFacultyRequest registers a legacy faculty record
type LegacyFacultyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Designation string  `json:"designation"`
	Department  string  `json:"department"`
	DOB         *string `json:"dob"`
	Gender      string  `json:"gender"`
	Number      string  `json:"number" binding:"omitempty,numeric"`
}

// LegacyStudentRequest registers a legacy student record
type LegacyStudentRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Department    string  `json:"department"`
	Semester      int     `json:"sem" binding:"omitempty,min=1"`
	DOB           *string `json:"dob"`
	Gender        string  `json:"gender"`
	Number        string  `json:"number" binding:"omitempty,numeric"`
	ParentsNumber string  `json:"parentsNumber" binding:"omitempty,numeric"`
}

// LegacyLoginRequest authenticates a legacy record. Colleges use their email
// as identifier, faculty and students their numeric id.
type LegacyLoginRequest struct {
	Identifier string `json:"id" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LegacyCredentialsResponse returns the generated password exactly once
type LegacyCredentialsResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
