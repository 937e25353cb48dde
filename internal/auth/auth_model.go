package auth

import (
	"time"

	"github.com/DhavalSuthar-24/scoutkz/internal/user"
)

type RegisterRequest struct {
	Phone    string `json:"phone" binding:"required,e164,startswith=+7,len=12" example:"+77011234567"`
	Email    string `json:"email" binding:"required,email,max=255" example:"player@example.com"`
	Password string `json:"password" binding:"required,min=6,max=72" example:"secret123"`
	Role     string `json:"role" binding:"omitempty,oneof=player parent coach scout" example:"player"`
	FullName string `json:"full_name" binding:"required,min=2,max=100" example:"Aidos Nurlanov"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required" example:"+77011234567"` // phone or email
	Password   string `json:"password" binding:"required" example:"secret123"`
}

// UpdateProfileRequest changes only the fields that are present. An empty
// string clears organization, city or bio.
type UpdateProfileRequest struct {
	FullName     *string `json:"full_name,omitempty" binding:"omitempty,min=2,max=100" example:"Aidos Nurlanov"`
	Email        *string `json:"email,omitempty" binding:"omitempty,email,max=255" example:"new@example.com"`
	Organization *string `json:"organization,omitempty" binding:"omitempty,max=255" example:"FC Kairat Academy"`
	City         *string `json:"city,omitempty" binding:"omitempty,max=100" example:"Almaty"`
	Bio          *string `json:"bio,omitempty" binding:"omitempty,max=1000"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID           uint      `json:"id"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	Role         user.Role `json:"role"`
	FullName     string    `json:"full_name"`
	Organization *string   `json:"organization"`
	City         *string   `json:"city"`
	Bio          *string   `json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FilterUserRecord strips fields that must never leave the server.
func FilterUserRecord(u *user.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Phone:        u.Phone,
		Email:        u.Email,
		Role:         u.Role,
		FullName:     u.FullName,
		Organization: u.Organization,
		City:         u.City,
		Bio:          u.Bio,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
