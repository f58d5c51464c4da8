package dto

import "time"

type PlatformStats struct {
	FacultyCount     int64            `json:"faculty_count"`
	InstitutionCount int64            `json:"institution_count"`
	UsersByRole      map[string]int64 `json:"users_by_role"`
	RecentSignups    []RecentSignup   `json:"recent_signups"`
}

type RecentSignup struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
