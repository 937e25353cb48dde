package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/scoutkz/pkg/apperr"
)

type PlayerService struct {
	repo PlayerRepository
}

func NewPlayerService(repo PlayerRepository) *PlayerService {
	return &PlayerService{repo: repo}
}

// CreateOrUpdateProfile stores the caller's profile, replacing every
// mutable field if one already exists.
func (s *PlayerService) CreateOrUpdateProfile(ctx context.Context, userID uint, req ProfileRequest) (*PlayerDetails, bool, error) {
	position, err := ParsePosition(req.Position)
	if err != nil {
		return nil, false, apperr.Validation("position must be one of: goalkeeper, defender, midfielder, forward")
	}
	foot, err := ParseFoot(req.PreferredFoot)
	if err != nil {
		return nil, false, apperr.Validation("preferred_foot must be one of: left, right, both")
	}

	p := &Player{
		UserID:        userID,
		Age:           req.Age,
		City:          strings.TrimSpace(req.City),
		Position:      position,
		Height:        req.Height,
		Weight:        req.Weight,
		PreferredFoot: foot,
		Club:          strings.TrimSpace(req.Club),
		Bio:           strings.TrimSpace(req.Bio),
	}
	if req.ExperienceYears != nil {
		p.ExperienceYears = *req.ExperienceYears
	}

	created, err := s.repo.Upsert(ctx, p)
	if err != nil {
		return nil, false, apperr.FromStore(fmt.Errorf("upsert profile: %w", err))
	}

	saved, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, false, fmt.Errorf("reload profile: %w", err)
	}
	if saved == nil {
		return nil, false, apperr.Internal("profile vanished after save", nil)
	}
	return saved, created, nil
}

func (s *PlayerService) GetProfile(ctx context.Context, userID uint) (*PlayerDetails, error) {
	p, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return nil, apperr.NotFound("player profile not found")
	}
	return p, nil
}

func (s *PlayerService) GetPlayerByID(ctx context.Context, id uint) (*PlayerDetails, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	if p == nil {
		return nil, apperr.NotFound("player not found")
	}
	return p, nil
}

// NormalizeFilter validates q and applies paging defaults.
func NormalizeFilter(q ListQuery) (ListFilter, error) {
	f := ListFilter{
		City:   strings.TrimSpace(q.City),
		AgeMin: q.AgeMin,
		AgeMax: q.AgeMax,
		Page:   q.Page,
		Limit:  q.Limit,
	}
	if q.Position != "" {
		p, err := ParsePosition(q.Position)
		if err != nil {
			return ListFilter{}, apperr.Validation("position must be one of: goalkeeper, defender, midfielder, forward")
		}
		f.Position = p
	}
	if f.AgeMin != nil && f.AgeMax != nil && *f.AgeMin > *f.AgeMax {
		return ListFilter{}, apperr.Validation("age_min must not exceed age_max")
	}
	if f.Page < 1 {
		f.Page = 1
	}
	switch {
	case f.Limit <= 0:
		f.Limit = DefaultPageSize
	case f.Limit > MaxPageSize:
		f.Limit = MaxPageSize
	}
	return f, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context, q ListQuery) ([]PlayerDetails, error) {
	f, err := NormalizeFilter(q)
	if err != nil {
		return nil, err
	}
	players, err := s.repo.FindAll(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	if players == nil {
		players = []PlayerDetails{}
	}
	return players, nil
}

// GetStats never fails for a user without a profile; it reports an empty
// dashboard instead.
func (s *PlayerService) GetStats(ctx context.Context, userID uint) (*Stats, error) {
	playerID, err := s.repo.IDByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	if playerID == 0 {
		return &Stats{}, nil
	}

	sum, err := s.repo.Summary(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	stats := &Stats{
		ProfileCompleted: true,
		VideosCount:      sum.VideosCount,
		RatingsCount:     sum.RatingsCount,
	}
	if sum.RatingsCount > 0 {
		avg := AvgRating(sum.AvgRating).String()
		stats.AverageRating = &avg
	}
	return stats, nil
}
