// Package testutil provides in-memory repositories and a fake video host
// so services and routes can be exercised without Postgres or S3.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoutkz/internal/auth"
	"github.com/DhavalSuthar-24/scoutkz/internal/player"
	"github.com/DhavalSuthar-24/scoutkz/internal/rating"
	"github.com/DhavalSuthar-24/scoutkz/internal/user"
	"github.com/DhavalSuthar-24/scoutkz/internal/video"
)

// Store mimics the four tables, including their unique and foreign keys.
type Store struct {
	mu    sync.Mutex
	clock time.Time

	users   map[uint]user.User
	players map[uint]player.Player
	videos  map[uint]video.Video
	ratings map[uint]rating.Rating
	nextID  uint

	// FailVideoCreate, when set, is returned by the next video insert.
	FailVideoCreate error
}

func NewStore() *Store {
	return &Store{
		clock:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		users:   map[uint]user.User{},
		players: map[uint]player.Player{},
		videos:  map[uint]video.Video{},
		ratings: map[uint]rating.Rating{},
	}
}

func (s *Store) Users() auth.AuthRepository { return userRepo{s} }
func (s *Store) Players() player.PlayerRepository { return playerRepo{s} }
func (s *Store) Ratings() rating.RatingRepository { return ratingRepo{s} }
func (s *Store) Videos() video.VideoRepository { return videoRepo{s} }

// tick returns strictly increasing timestamps so newest-first ordering is
// deterministic. Callers hold s.mu.
func (s *Store) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// VideoCount reports how many video rows exist.
func (s *Store) VideoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.videos)
}

// RatingCount reports how many rating rows exist.
func (s *Store) RatingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ratings)
}

// SetRole changes a stored user's role, e.g. to create an admin.
func (s *Store) SetRole(userID uint, role user.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.users[userID]
	u.Role = role
	s.users[userID] = u
}

// DeleteUser removes a user and cascades like the real schema.
func (s *Store) DeleteUser(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
	for pid, p := range s.players {
		if p.UserID == userID {
			s.deletePlayer(pid)
		}
	}
	for rid, r := range s.ratings {
		if r.RaterID == userID {
			delete(s.ratings, rid)
		}
	}
}

func (s *Store) deletePlayer(id uint) {
	delete(s.players, id)
	for vid, v := range s.videos {
		if v.PlayerID == id {
			delete(s.videos, vid)
		}
	}
	for rid, r := range s.ratings {
		if r.PlayerID == id {
			delete(s.ratings, rid)
		}
	}
}

type userRepo struct{ s *Store }

func (r userRepo) CreateUser(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Phone == u.Phone || strings.EqualFold(existing.Email, u.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	u.ID = r.s.id()
	u.CreatedAt = r.s.tick()
	u.UpdatedAt = u.CreatedAt
	r.s.users[u.ID] = *u
	return nil
}

func (r userRepo) find(match func(user.User) bool) *user.User {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if match(u) {
			found := u
			return &found
		}
	}
	return nil
}

func (r userRepo) GetUserByID(_ context.Context, id uint) (*user.User, error) {
	return r.find(func(u user.User) bool { return u.ID == id }), nil
}

func (r userRepo) GetUserByPhone(_ context.Context, phone string) (*user.User, error) {
	return r.find(func(u user.User) bool { return u.Phone == phone }), nil
}

func (r userRepo) GetUserByEmail(_ context.Context, email string) (*user.User, error) {
	return r.find(func(u user.User) bool { return strings.EqualFold(u.Email, email) }), nil
}

func (r userRepo) UpdateUser(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for _, other := range r.s.users {
		if other.ID != u.ID && strings.EqualFold(other.Email, u.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	u.UpdatedAt = r.s.tick()
	r.s.users[u.ID] = *u
	return nil
}

type playerRepo struct{ s *Store }

func (r playerRepo) Upsert(_ context.Context, p *player.Player) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[p.UserID]; !ok {
		return false, gorm.ErrForeignKeyViolated
	}
	now := r.s.tick()
	for id, existing := range r.s.players {
		if existing.UserID == p.UserID {
			p.ID = id
			p.CreatedAt = existing.CreatedAt
			p.UpdatedAt = now
			r.s.players[id] = *p
			return false, nil
		}
	}
	p.ID = r.s.id()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.s.players[p.ID] = *p
	return true, nil
}

// details joins a profile with its owner and rating aggregates. Callers
// hold s.mu.
func (r playerRepo) details(p player.Player) player.PlayerDetails {
	d := player.PlayerDetails{Player: p}
	if u, ok := r.s.users[p.UserID]; ok {
		d.FullName = u.FullName
		d.Phone = u.Phone
	}
	var sum int
	for _, rt := range r.s.ratings {
		if rt.PlayerID == p.ID {
			sum += rt.OverallRating
			d.RatingCount++
		}
	}
	if d.RatingCount > 0 {
		d.AvgRating = player.AvgRating(float64(sum) / float64(d.RatingCount))
	}
	return d
}

func (r playerRepo) FindByUserID(_ context.Context, userID uint) (*player.PlayerDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.players {
		if p.UserID == userID {
			d := r.details(p)
			return &d, nil
		}
	}
	return nil, nil
}

func (r playerRepo) FindByID(_ context.Context, id uint) (*player.PlayerDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.players[id]
	if !ok {
		return nil, nil
	}
	d := r.details(p)
	return &d, nil
}

func (r playerRepo) FindAll(_ context.Context, f player.ListFilter) ([]player.PlayerDetails, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := []player.PlayerDetails{}
	for _, p := range r.s.players {
		if f.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(f.City)) {
			continue
		}
		if f.Position != "" && p.Position != f.Position {
			continue
		}
		if f.AgeMin != nil && p.Age < *f.AgeMin {
			continue
		}
		if f.AgeMax != nil && p.Age > *f.AgeMax {
			continue
		}
		all = append(all, r.details(p))
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].AvgRating != all[j].AvgRating {
			return all[i].AvgRating > all[j].AvgRating
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	start := f.Offset()
	if start >= len(all) {
		return []player.PlayerDetails{}, nil
	}
	end := start + f.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r playerRepo) IDByUserID(_ context.Context, userID uint) (uint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, p := range r.s.players {
		if p.UserID == userID {
			return id, nil
		}
	}
	return 0, nil
}

func (r playerRepo) Exists(_ context.Context, id uint) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.players[id]
	return ok, nil
}

func (r playerRepo) Summary(_ context.Context, playerID uint) (*player.Summary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum player.Summary
	for _, v := range r.s.videos {
		if v.PlayerID == playerID {
			sum.VideosCount++
		}
	}
	var total int
	for _, rt := range r.s.ratings {
		if rt.PlayerID == playerID {
			sum.RatingsCount++
			total += rt.OverallRating
		}
	}
	if sum.RatingsCount > 0 {
		sum.AvgRating = float64(total) / float64(sum.RatingsCount)
	}
	return &sum, nil
}

type ratingRepo struct{ s *Store }

func (r ratingRepo) Upsert(_ context.Context, rt *rating.Rating) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.players[rt.PlayerID]; !ok {
		return false, gorm.ErrForeignKeyViolated
	}
	if _, ok := r.s.users[rt.RaterID]; !ok {
		return false, gorm.ErrForeignKeyViolated
	}
	now := r.s.tick()
	for id, existing := range r.s.ratings {
		if existing.PlayerID == rt.PlayerID && existing.RaterID == rt.RaterID {
			rt.ID = id
			rt.CreatedAt = existing.CreatedAt
			rt.UpdatedAt = now
			r.s.ratings[id] = *rt
			return false, nil
		}
	}
	rt.ID = r.s.id()
	rt.CreatedAt = now
	rt.UpdatedAt = now
	r.s.ratings[rt.ID] = *rt
	return true, nil
}

func (r ratingRepo) FindByPair(_ context.Context, playerID, raterID uint) (*rating.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rt := range r.s.ratings {
		if rt.PlayerID == playerID && rt.RaterID == raterID {
			found := rt
			return &found, nil
		}
	}
	return nil, nil
}

func (r ratingRepo) FindByPlayerID(_ context.Context, playerID uint) ([]rating.RatingWithRater, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []rating.RatingWithRater{}
	for _, rt := range r.s.ratings {
		if rt.PlayerID != playerID {
			continue
		}
		rater := r.s.users[rt.RaterID]
		out = append(out, rating.RatingWithRater{Rating: rt, RaterName: rater.FullName, RaterRole: rater.Role})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r ratingRepo) FindByRaterID(_ context.Context, raterID uint) ([]rating.RatingWithPlayer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []rating.RatingWithPlayer{}
	for _, rt := range r.s.ratings {
		if rt.RaterID != raterID {
			continue
		}
		p := r.s.players[rt.PlayerID]
		out = append(out, rating.RatingWithPlayer{
			Rating:     rt,
			PlayerName: r.s.users[p.UserID].FullName,
			Position:   p.Position,
			City:       p.City,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type videoRepo struct{ s *Store }

func (r videoRepo) CountByPlayerID(_ context.Context, playerID uint) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, v := range r.s.videos {
		if v.PlayerID == playerID {
			n++
		}
	}
	return n, nil
}

func (r videoRepo) Create(_ context.Context, v *video.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.FailVideoCreate; err != nil {
		r.s.FailVideoCreate = nil
		return err
	}
	if _, ok := r.s.players[v.PlayerID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	v.ID = r.s.id()
	v.CreatedAt = r.s.tick()
	v.UpdatedAt = v.CreatedAt
	r.s.videos[v.ID] = *v
	return nil
}

func (r videoRepo) FindByID(_ context.Context, id uint) (*video.VideoWithOwner, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	v, ok := r.s.videos[id]
	if !ok {
		return nil, nil
	}
	return &video.VideoWithOwner{Video: v, OwnerUserID: r.s.players[v.PlayerID].UserID}, nil
}

func (r videoRepo) FindByPlayerID(_ context.Context, playerID uint) ([]video.Video, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := []video.Video{}
	for _, v := range r.s.videos {
		if v.PlayerID == playerID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r videoRepo) Update(_ context.Context, v *video.Video) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.videos[v.ID]
	if !ok {
		return fmt.Errorf("video %d: %w", v.ID, gorm.ErrRecordNotFound)
	}
	existing.Title = v.Title
	existing.Description = v.Description
	existing.UpdatedAt = v.UpdatedAt
	r.s.videos[v.ID] = existing
	return nil
}

func (r videoRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.videos, id)
	return nil
}
