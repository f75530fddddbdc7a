package models

import (
	"time"
)

// UserRole defines allowed roles in the system
type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleFaculty UserRole = "faculty"
	RoleAdmin   UserRole = "admin"
	RoleKitchen UserRole = "kitchen"
)

// ValidRole reports whether r is one of the four canteen roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin, RoleKitchen:
		return true
	}
	return false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	UserID       string    `json:"user_id" gorm:"uniqueIndex;not null"` // college identifier, e.g. STU001
	Role         UserRole  `json:"role" gorm:"not null"`
	PasswordHash string    `json:"-" gorm:"column:password;not null"`
	CreatedAt    time.Time `json:"created_at"`
}
