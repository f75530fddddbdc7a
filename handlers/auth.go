package handlers

import (
	"errors"
	"net/http"

	"canteen-api/middleware"
	"canteen-api/models"
	"canteen-api/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	users *repository.UserRepository
}

func NewAuthHandler(users *repository.UserRepository) *AuthHandler {
	return &AuthHandler{users: users}
}

type RegisterRequest struct {
	Name            string          `json:"name" binding:"required"`
	Email           string          `json:"email" binding:"required,email"`
	Role            models.UserRole `json:"role" binding:"required"`
	UserID          string          `json:"userId" binding:"required"`
	Password        string          `json:"password" binding:"required,min=6"`
	ConfirmPassword string          `json:"confirmPassword"`
}

type LoginRequest struct {
	EmailOrID string          `json:"emailOrId" binding:"required"`
	Password  string          `json:"password" binding:"required"`
	Role      models.UserRole `json:"role" binding:"required"`
}

// Register creates a new account
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Passwords do not match"})
		return
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role. Must be: student, faculty, admin, or kitchen"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error. Try again later."})
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		UserID:       req.UserID,
		Role:         req.Role,
		PasswordHash: string(hash),
	}
	if err := h.users.Create(&user); err != nil {
		var dup *repository.DuplicateError
		if errors.As(err, &dup) {
			c.JSON(http.StatusBadRequest, gin.H{"error": dup.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error. Try again later."})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful",
		"token":   token,
		"user":    user,
	})
}

// Login verifies credentials and returns the user record without the
// password, plus a signed JWT for the presentation layer.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All fields are required"})
		return
	}

	user, err := h.users.GetByCredential(req.EmailOrID, req.Role)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// GetUser returns a public profile by college id
func (h *AuthHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetByUserID(c.Param("userId"))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// GetProfile returns the authenticated caller's account
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user, err := h.users.GetByUserID(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
