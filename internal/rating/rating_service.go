package rating

import (
	"context"
	"fmt"
	"strings"

	"github.com/DhavalSuthar-24/scoutkz/internal/player"
	"github.com/DhavalSuthar-24/scoutkz/pkg/apperr"
)

type RatingService struct {
	repo    RatingRepository
	players player.PlayerRepository
}

func NewRatingService(repo RatingRepository, players player.PlayerRepository) *RatingService {
	return &RatingService{repo: repo, players: players}
}

// CreateOrUpdateRating records raterID's scores for a player. Score ranges
// are enforced by request binding; the player must exist.
func (s *RatingService) CreateOrUpdateRating(ctx context.Context, raterID uint, req RatingRequest) (*Rating, bool, error) {
	exists, err := s.players.Exists(ctx, req.PlayerID)
	if err != nil {
		return nil, false, fmt.Errorf("check player: %w", err)
	}
	if !exists {
		return nil, false, apperr.NotFound("player not found")
	}

	rt := &Rating{
		PlayerID:      req.PlayerID,
		RaterID:       raterID,
		Speed:         req.Speed,
		Dribbling:     req.Dribbling,
		Passing:       req.Passing,
		Shooting:      req.Shooting,
		Defending:     req.Defending,
		OverallRating: req.OverallRating,
		Comments:      strings.TrimSpace(req.Comments),
	}
	created, err := s.repo.Upsert(ctx, rt)
	if err != nil {
		return nil, false, apperr.FromStore(fmt.Errorf("upsert rating: %w", err))
	}

	saved, err := s.repo.FindByPair(ctx, req.PlayerID, raterID)
	if err != nil {
		return nil, false, fmt.Errorf("reload rating: %w", err)
	}
	if saved == nil {
		return nil, false, apperr.Internal("rating vanished after save", nil)
	}
	return saved, created, nil
}

func (s *RatingService) GetPlayerRatings(ctx context.Context, playerID uint) ([]RatingWithRater, error) {
	ratings, err := s.repo.FindByPlayerID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("player ratings: %w", err)
	}
	if ratings == nil {
		ratings = []RatingWithRater{}
	}
	return ratings, nil
}

func (s *RatingService) GetMyRatings(ctx context.Context, raterID uint) ([]RatingWithPlayer, error) {
	ratings, err := s.repo.FindByRaterID(ctx, raterID)
	if err != nil {
		return nil, fmt.Errorf("my ratings: %w", err)
	}
	if ratings == nil {
		ratings = []RatingWithPlayer{}
	}
	return ratings, nil
}
