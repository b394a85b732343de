package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterCollegeRequest is the public college sign-up form
type RegisterCollegeRequest struct {
	CollegeName     string `json:"collegeName" binding:"required,min=2,max=255"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"omitempty,eqfield=Password"`
	Type            string `json:"type" binding:"max=100"`
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"86400"`
	Role        string `json:"role" example:"HOD" enums:"COLLEGE,HOD,FACULTY,STUDENT"`
	UserID      int64  `json:"userId" example:"7"`
	CollegeID   int64  `json:"collegeId" example:"1"`
	Name        string `json:"name" example:"Asha Rao"`
}

// CollegeResponse is the public view of a college
type CollegeResponse struct {
	ID          int64  `json:"id" example:"1"`
	CollegeName string `json:"collegeName" example:"Government Engineering College"`
	Email       string `json:"email" example:"office@gec.edu"`
	Type        string `json:"type" example:"Engineering"`
}

// PrincipalResponse describes the caller of an authenticated request
type PrincipalResponse struct {
	UserID    int64  `json:"userId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CollegeID int64  `json:"collegeId"`
}
