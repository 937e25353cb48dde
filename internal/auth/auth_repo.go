package auth

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoutkz/internal/user"
)

// AuthRepository is the user accessor. Lookups return (nil, nil) when no
// user matches.
type AuthRepository interface {
	CreateUser(ctx context.Context, u *user.User) error
	GetUserByID(ctx context.Context, id uint) (*user.User, error)
	GetUserByPhone(ctx context.Context, phone string) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	UpdateUser(ctx context.Context, u *user.User) error
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *authRepository) GetUserByID(ctx context.Context, id uint) (*user.User, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *authRepository) GetUserByPhone(ctx context.Context, phone string) (*user.User, error) {
	return r.first(r.db.WithContext(ctx).Where("phone = ?", phone))
}

func (r *authRepository) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email))
}

func (r *authRepository) UpdateUser(ctx context.Context, u *user.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *authRepository) first(q *gorm.DB) (*user.User, error) {
	var u user.User
	if err := q.First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}
