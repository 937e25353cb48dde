package video

import (
	"io"
	"time"

	"github.com/DhavalSuthar-24/scoutkz/internal/player"
)

const (
	DefaultTitle      = "Video"
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
)

type Video struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	PlayerID    uint           `gorm:"not null;index" json:"player_id"`
	Player      *player.Player `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Title       string         `gorm:"size:200;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	VideoURL    string         `gorm:"size:500;not null" json:"video_url"`
	ExternalID  string         `gorm:"size:255;not null" json:"external_id"`
	Duration    int            `gorm:"not null;default:0" json:"duration"`
	FileSize    int64          `gorm:"not null;default:0" json:"file_size"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// VideoWithOwner carries the user who owns the video's player profile.
type VideoWithOwner struct {
	Video
	OwnerUserID uint `json:"owner_user_id"`
}

// UploadFile is the raw file part of an upload request.
type UploadFile struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

type UploadInput struct {
	File        *UploadFile
	Title       string
	Description string
}

type UpdateRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=200" example:"Hat-trick vs Astana U19"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
}

type VideoResponse struct {
	Message string `json:"message"`
	Video   *Video `json:"video"`
}
