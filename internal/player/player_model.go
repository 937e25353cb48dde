package player

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/DhavalSuthar-24/scoutkz/internal/user"
)

type Position string

const (
	PositionGoalkeeper Position = "goalkeeper"
	PositionDefender   Position = "defender"
	PositionMidfielder Position = "midfielder"
	PositionForward    Position = "forward"
)

type Foot string

const (
	FootLeft  Foot = "left"
	FootRight Foot = "right"
	FootBoth  Foot = "both"
)

// Localized labels accepted on input. Keys are case-folded.
var positionLabels = map[string]Position{
	"goalkeeper":   PositionGoalkeeper,
	"вратарь":      PositionGoalkeeper,
	"defender":     PositionDefender,
	"защитник":     PositionDefender,
	"midfielder":   PositionMidfielder,
	"полузащитник": PositionMidfielder,
	"forward":      PositionForward,
	"нападающий":   PositionForward,
}

var footLabels = map[string]Foot{
	"left":   FootLeft,
	"левая":  FootLeft,
	"right":  FootRight,
	"правая": FootRight,
	"both":   FootBoth,
	"обе":    FootBoth,
}

// ParsePosition accepts a position code or its Russian label in any case.
func ParsePosition(s string) (Position, error) {
	if p, ok := positionLabels[fold(s)]; ok {
		return p, nil
	}
	return "", fmt.Errorf("unknown position %q", s)
}

// ParseFoot accepts a preferred-foot code or its Russian label in any case.
func ParseFoot(s string) (Foot, error) {
	if f, ok := footLabels[fold(s)]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unknown preferred foot %q", s)
}

func fold(s string) string {
	// Casers keep state, so one per call.
	return cases.Fold().String(strings.TrimSpace(s))
}

// Player is the scouting profile owned by exactly one user.
type Player struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	UserID          uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	User            *user.User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Age             int        `gorm:"not null;check:age BETWEEN 10 AND 35" json:"age"`
	City            string     `gorm:"size:50;not null;index" json:"city"`
	Position        Position   `gorm:"size:20;not null;index" json:"position"`
	Height          int        `gorm:"not null;check:height BETWEEN 140 AND 220" json:"height"`
	Weight          int        `gorm:"not null;check:weight BETWEEN 40 AND 150" json:"weight"`
	PreferredFoot   Foot       `gorm:"size:10;not null" json:"preferred_foot"`
	ExperienceYears int        `gorm:"not null;default:0;check:experience_years BETWEEN 0 AND 25" json:"experience_years"`
	Club            string     `gorm:"size:100" json:"club"`
	Bio             string     `gorm:"size:500" json:"bio"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// AvgRating renders as a one-decimal string, e.g. "8.0". Halves round up,
// so 8.25 is "8.3".
type AvgRating float64

func (a AvgRating) String() string {
	rounded := math.Floor(float64(a)*10+0.5) / 10
	return strconv.FormatFloat(rounded, 'f', 1, 64)
}

func (a AvgRating) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// PlayerDetails is a profile joined with its owner and live rating
// aggregates.
type PlayerDetails struct {
	Player
	FullName    string    `json:"full_name"`
	Phone       string    `json:"phone"`
	AvgRating   AvgRating `json:"avg_rating"`
	RatingCount int64     `json:"rating_count"`
}

type ProfileRequest struct {
	Age             int    `json:"age" binding:"required,min=10,max=35" example:"20"`
	City            string `json:"city" binding:"required,min=2,max=50" example:"Almaty"`
	Position        string `json:"position" binding:"required" example:"forward"`
	Height          int    `json:"height" binding:"required,min=140,max=220" example:"178"`
	Weight          int    `json:"weight" binding:"required,min=40,max=150" example:"70"`
	PreferredFoot   string `json:"preferred_foot" binding:"required" example:"right"`
	ExperienceYears *int   `json:"experience_years" binding:"omitempty,min=0,max=25" example:"5"`
	Club            string `json:"club" binding:"omitempty,max=100" example:"Kairat U21"`
	Bio             string `json:"bio" binding:"omitempty,max=500"`
}

type ProfileResponse struct {
	Message string         `json:"message"`
	Profile *PlayerDetails `json:"profile"`
	IsNew   bool           `json:"isNew"`
}

// ListQuery is the raw query string of GET /players.
type ListQuery struct {
	City     string `form:"city" binding:"omitempty,max=50"`
	Position string `form:"position"`
	AgeMin   *int   `form:"age_min" binding:"omitempty,min=0"`
	AgeMax   *int   `form:"age_max" binding:"omitempty,min=0"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListFilter is a validated, normalized ListQuery.
type ListFilter struct {
	City     string
	Position Position
	AgeMin   *int
	AgeMax   *int
	Page     int
	Limit    int
}

func (f ListFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Summary holds the counters behind the stats endpoint.
type Summary struct {
	VideosCount  int64
	RatingsCount int64
	AvgRating    float64
}

type Stats struct {
	ProfileCompleted bool    `json:"profileCompleted"`
	VideosCount      int64   `json:"videosCount"`
	RatingsCount     int64   `json:"ratingsCount"`
	AverageRating    *string `json:"averageRating"`
}
