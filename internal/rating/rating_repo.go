package rating

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type RatingRepository interface {
	// Upsert inserts r or overwrites the scores of the existing rating for
	// the same (player, rater) pair.
	Upsert(ctx context.Context, r *Rating) (created bool, err error)
	FindByPair(ctx context.Context, playerID, raterID uint) (*Rating, error)
	FindByPlayerID(ctx context.Context, playerID uint) ([]RatingWithRater, error)
	FindByRaterID(ctx context.Context, raterID uint) ([]RatingWithPlayer, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// upsertRatingSQL writes a rating in one statement; inserted is derived
// from xmax, which is 0 only for a row this statement created.
const upsertRatingSQL = `INSERT INTO ratings
	(player_id, rater_id, speed, dribbling, passing, shooting, defending, overall_rating, comments, created_at, updated_at)
	VALUES (@player_id, @rater_id, @speed, @dribbling, @passing, @shooting, @defending, @overall_rating, @comments, @now, @now)
	ON CONFLICT (player_id, rater_id) DO UPDATE SET
		speed = EXCLUDED.speed,
		dribbling = EXCLUDED.dribbling,
		passing = EXCLUDED.passing,
		shooting = EXCLUDED.shooting,
		defending = EXCLUDED.defending,
		overall_rating = EXCLUDED.overall_rating,
		comments = EXCLUDED.comments,
		updated_at = EXCLUDED.updated_at
	RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`

type upsertResult struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Inserted  bool
}

func (r *ratingRepository) Upsert(ctx context.Context, rt *Rating) (bool, error) {
	var res upsertResult
	err := r.db.WithContext(ctx).Raw(upsertRatingSQL, map[string]interface{}{
		"player_id":      rt.PlayerID,
		"rater_id":       rt.RaterID,
		"speed":          rt.Speed,
		"dribbling":      rt.Dribbling,
		"passing":        rt.Passing,
		"shooting":       rt.Shooting,
		"defending":      rt.Defending,
		"overall_rating": rt.OverallRating,
		"comments":       rt.Comments,
		"now":            time.Now(),
	}).Scan(&res).Error
	if err != nil {
		return false, err
	}
	rt.ID = res.ID
	rt.CreatedAt = res.CreatedAt
	rt.UpdatedAt = res.UpdatedAt
	return res.Inserted, nil
}

func (r *ratingRepository) FindByPair(ctx context.Context, playerID, raterID uint) (*Rating, error) {
	var rt Rating
	err := r.db.WithContext(ctx).Where("player_id = ? AND rater_id = ?", playerID, raterID).First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *ratingRepository) FindByPlayerID(ctx context.Context, playerID uint) ([]RatingWithRater, error) {
	ratings := []RatingWithRater{}
	err := r.db.WithContext(ctx).
		Table("ratings AS r").
		Select("r.*, u.full_name AS rater_name, u.role AS rater_role").
		Joins("JOIN users u ON u.id = r.rater_id").
		Where("r.player_id = ?", playerID).
		Order("r.created_at DESC, r.id DESC").
		Scan(&ratings).Error
	return ratings, err
}

func (r *ratingRepository) FindByRaterID(ctx context.Context, raterID uint) ([]RatingWithPlayer, error) {
	ratings := []RatingWithPlayer{}
	err := r.db.WithContext(ctx).
		Table("ratings AS r").
		Select("r.*, u.full_name AS player_name, p.position, p.city").
		Joins("JOIN players p ON p.id = r.player_id").
		Joins("JOIN users u ON u.id = p.user_id").
		Where("r.rater_id = ?", raterID).
		Order("r.created_at DESC, r.id DESC").
		Scan(&ratings).Error
	return ratings, err
}
