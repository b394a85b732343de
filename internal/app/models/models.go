package models

// RoleType defines the role carried in an access token
type RoleType string

const (
	RoleCollege RoleType = "COLLEGE"
	RoleHOD     RoleType = "HOD"
	RoleFaculty RoleType = "FACULTY"
	RoleStudent RoleType = "STUDENT"
)

// DesignationHOD marks a faculty member as head of department
const DesignationHOD = "HOD"

// NoneDepartment is the placeholder department for courses offered without departments
const NoneDepartment = "none"

// RoleForDesignation maps a faculty designation to its access role
func RoleForDesignation(designation string) RoleType {
	if designation == DesignationHOD {
		return RoleHOD
	}
	return RoleFaculty
}
