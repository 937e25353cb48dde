package rating

import (
	"time"

	"github.com/DhavalSuthar-24/scoutkz/internal/player"
	"github.com/DhavalSuthar-24/scoutkz/internal/user"
)

// Rating is one rater's assessment of one player. A rater holds at most
// one rating per player.
type Rating struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	PlayerID      uint           `gorm:"not null;uniqueIndex:idx_ratings_player_rater;index" json:"player_id"`
	Player        *player.Player `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RaterID       uint           `gorm:"not null;uniqueIndex:idx_ratings_player_rater;index" json:"rater_id"`
	Rater         *user.User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Speed         int            `gorm:"not null;check:speed BETWEEN 1 AND 10" json:"speed"`
	Dribbling     int            `gorm:"not null;check:dribbling BETWEEN 1 AND 10" json:"dribbling"`
	Passing       int            `gorm:"not null;check:passing BETWEEN 1 AND 10" json:"passing"`
	Shooting      int            `gorm:"not null;check:shooting BETWEEN 1 AND 10" json:"shooting"`
	Defending     int            `gorm:"not null;check:defending BETWEEN 1 AND 10" json:"defending"`
	OverallRating int            `gorm:"not null;check:overall_rating BETWEEN 1 AND 10" json:"overall_rating"`
	Comments      string         `gorm:"size:500" json:"comments"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type RatingRequest struct {
	PlayerID      uint   `json:"player_id" binding:"required" example:"1"`
	Speed         int    `json:"speed" binding:"required,min=1,max=10" example:"8"`
	Dribbling     int    `json:"dribbling" binding:"required,min=1,max=10" example:"7"`
	Passing       int    `json:"passing" binding:"required,min=1,max=10" example:"7"`
	Shooting      int    `json:"shooting" binding:"required,min=1,max=10" example:"9"`
	Defending     int    `json:"defending" binding:"required,min=1,max=10" example:"5"`
	OverallRating int    `json:"overall_rating" binding:"required,min=1,max=10" example:"8"`
	Comments      string `json:"comments" binding:"omitempty,max=500"`
}

type RatingResponse struct {
	Message string  `json:"message"`
	Rating  *Rating `json:"rating"`
	IsNew   bool    `json:"isNew"`
}

// RatingWithRater is a rating as seen on the rated player's page.
type RatingWithRater struct {
	Rating
	RaterName string    `json:"rater_name"`
	RaterRole user.Role `json:"rater_role"`
}

// RatingWithPlayer is a rating as seen in the rater's own history.
type RatingWithPlayer struct {
	Rating
	PlayerName string          `json:"player_name"`
	Position   player.Position `json:"position"`
	City       string          `json:"city"`
}
