package models

import "time"

// College is a tenant of the system
type College struct {
	ID          int64     `json:"id"`
	CollegeName string    `json:"collegeName"`
	Email       string    `json:"email"`
	Password    string    `json:"-"`
	CollegeType string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt"`
}
