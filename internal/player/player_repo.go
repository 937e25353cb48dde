package player

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

// PlayerRepository is the player profile accessor. Lookups return
// (nil, nil) when the profile does not exist.
type PlayerRepository interface {
	// Upsert inserts p or overwrites the mutable fields of the profile
	// already owned by p.UserID. created reports which happened.
	Upsert(ctx context.Context, p *Player) (created bool, err error)
	FindByUserID(ctx context.Context, userID uint) (*PlayerDetails, error)
	FindByID(ctx context.Context, id uint) (*PlayerDetails, error)
	FindAll(ctx context.Context, f ListFilter) ([]PlayerDetails, error)
	// IDByUserID returns the profile id of userID, or 0 without a profile.
	IDByUserID(ctx context.Context, userID uint) (uint, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Summary(ctx context.Context, playerID uint) (*Summary, error)
}

type playerRepository struct {
	db *gorm.DB
}

func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// upsertPlayerSQL writes a profile in one statement. xmax is 0 only on a
// freshly inserted row, which is how inserted is told apart from updated.
const upsertPlayerSQL = `INSERT INTO players
	(user_id, age, city, position, height, weight, preferred_foot, experience_years, club, bio, created_at, updated_at)
	VALUES (@user_id, @age, @city, @position, @height, @weight, @preferred_foot, @experience_years, @club, @bio, @now, @now)
	ON CONFLICT (user_id) DO UPDATE SET
		age = EXCLUDED.age,
		city = EXCLUDED.city,
		position = EXCLUDED.position,
		height = EXCLUDED.height,
		weight = EXCLUDED.weight,
		preferred_foot = EXCLUDED.preferred_foot,
		experience_years = EXCLUDED.experience_years,
		club = EXCLUDED.club,
		bio = EXCLUDED.bio,
		updated_at = EXCLUDED.updated_at
	RETURNING id, created_at, updated_at, (xmax = 0) AS inserted`

type upsertResult struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Inserted  bool
}

func (r *playerRepository) Upsert(ctx context.Context, p *Player) (bool, error) {
	var res upsertResult
	err := r.db.WithContext(ctx).Raw(upsertPlayerSQL, map[string]interface{}{
		"user_id":          p.UserID,
		"age":              p.Age,
		"city":             p.City,
		"position":         string(p.Position),
		"height":           p.Height,
		"weight":           p.Weight,
		"preferred_foot":   string(p.PreferredFoot),
		"experience_years": p.ExperienceYears,
		"club":             p.Club,
		"bio":              p.Bio,
		"now":              time.Now(),
	}).Scan(&res).Error
	if err != nil {
		return false, err
	}
	p.ID = res.ID
	p.CreatedAt = res.CreatedAt
	p.UpdatedAt = res.UpdatedAt
	return res.Inserted, nil
}

// details selects profiles with owner name/phone and rating aggregates.
func (r *playerRepository) details(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("players AS p").
		Select(`p.*, u.full_name, u.phone,
			COALESCE(AVG(r.overall_rating), 0)::float8 AS avg_rating,
			COUNT(r.id) AS rating_count`).
		Joins("JOIN users u ON u.id = p.user_id").
		Joins("LEFT JOIN ratings r ON r.player_id = p.id").
		Group("p.id, u.full_name, u.phone")
}

func (r *playerRepository) findOne(q *gorm.DB) (*PlayerDetails, error) {
	var d PlayerDetails
	res := q.Limit(1).Scan(&d)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &d, nil
}

func (r *playerRepository) FindByUserID(ctx context.Context, userID uint) (*PlayerDetails, error) {
	return r.findOne(r.details(ctx).Where("p.user_id = ?", userID))
}

func (r *playerRepository) FindByID(ctx context.Context, id uint) (*PlayerDetails, error) {
	return r.findOne(r.details(ctx).Where("p.id = ?", id))
}

func (r *playerRepository) FindAll(ctx context.Context, f ListFilter) ([]PlayerDetails, error) {
	query := r.details(ctx)

	if f.City != "" {
		query = query.Where("p.city ILIKE ?", "%"+likeEscaper.Replace(f.City)+"%")
	}
	if f.Position != "" {
		query = query.Where("p.position = ?", f.Position)
	}
	if f.AgeMin != nil {
		query = query.Where("p.age >= ?", *f.AgeMin)
	}
	if f.AgeMax != nil {
		query = query.Where("p.age <= ?", *f.AgeMax)
	}

	players := []PlayerDetails{}
	err := query.
		Order("avg_rating DESC, p.created_at DESC").
		Offset(f.Offset()).
		Limit(f.Limit).
		Scan(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) IDByUserID(ctx context.Context, userID uint) (uint, error) {
	var p Player
	err := r.db.WithContext(ctx).Select("id").Where("user_id = ?", userID).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return p.ID, nil
}

func (r *playerRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Player{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *playerRepository) Summary(ctx context.Context, playerID uint) (*Summary, error) {
	var s Summary
	err := r.db.WithContext(ctx).Raw(`SELECT
		(SELECT COUNT(*) FROM videos WHERE player_id = @id) AS videos_count,
		(SELECT COUNT(*) FROM ratings WHERE player_id = @id) AS ratings_count,
		(SELECT COALESCE(AVG(overall_rating), 0)::float8 FROM ratings WHERE player_id = @id) AS avg_rating`,
		map[string]interface{}{"id": playerID}).
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
