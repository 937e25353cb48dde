package user

import "time"

type Role string

const (
	RolePlayer Role = "player"
	RoleParent Role = "parent"
	RoleCoach  Role = "coach"
	RoleScout  Role = "scout"
	RoleAdmin  Role = "admin"
)

// User is an account. Email is stored lower-cased so the unique index is
// effectively case-insensitive.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Phone        string    `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"size:255;not null" json:"-"`
	Role         Role      `gorm:"size:20;not null;default:player" json:"role"`
	FullName     string    `gorm:"size:100;not null" json:"full_name"`
	Organization *string   `gorm:"size:255" json:"organization"`
	City         *string   `gorm:"size:100" json:"city"`
	Bio          *string   `gorm:"type:text" json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
