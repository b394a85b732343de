package models

// Course is a degree programme shared by all colleges, e.g. "B.Tech"
type Course struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	TotalSemesters int    `json:"totalSemesters"`
}

// Semester is a global semester number
type Semester struct {
	ID             int64 `json:"id"`
	SemesterNumber int   `json:"semesterNumber"`
}
