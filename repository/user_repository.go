package repository

import (
	"errors"
	"strings"

	"canteen-api/models"

	"gorm.io/gorm"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// DuplicateError reports a UNIQUE violation on registration.
type DuplicateError struct {
	Field string // "email" or "user_id"
}

func (e *DuplicateError) Error() string {
	if e.Field == "email" {
		return "Email already registered"
	}
	return "User ID already registered"
}

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new account. Duplicate email or user_id comes back as a
// DuplicateError naming the offending field.
func (r *UserRepository) Create(user *models.User) error {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &DuplicateError{Field: "email"}
	}
	if err := r.db.Model(&models.User{}).Where("user_id = ?", user.UserID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &DuplicateError{Field: "user_id"}
	}

	if err := r.db.Create(user).Error; err != nil {
		// Two registrations can still race past the pre-checks; the UNIQUE
		// index is the real guard.
		if strings.Contains(err.Error(), "users.email") {
			return &DuplicateError{Field: "email"}
		}
		if strings.Contains(err.Error(), "users.user_id") {
			return &DuplicateError{Field: "user_id"}
		}
		return err
	}
	return nil
}

// GetByCredential finds a user by email or college id, scoped to the role
// the login form was submitted under.
func (r *UserRepository) GetByCredential(emailOrID string, role models.UserRole) (*models.User, error) {
	var user models.User
	err := r.db.Where("(email = ? OR user_id = ?) AND role = ?", emailOrID, emailOrID, role).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUserID(userID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
