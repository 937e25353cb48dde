package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/DhavalSuthar-24/scoutkz/config"
	"github.com/DhavalSuthar-24/scoutkz/internal/user"
	"github.com/DhavalSuthar-24/scoutkz/pkg/apperr"
	"github.com/DhavalSuthar-24/scoutkz/pkg/token"
	"github.com/DhavalSuthar-24/scoutkz/utils"
)

const (
	msgInvalidCredentials = "invalid phone/email or password"
	msgInvalidToken       = "invalid or expired token"
)

// AuthService owns registration, login and token verification.
type AuthService struct {
	repo       AuthRepository
	secret     string
	ttl        time.Duration
	bcryptCost int

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthService(repo AuthRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		repo:       repo,
		secret:     cfg.JWT.Secret,
		ttl:        cfg.TokenTTL(),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.GetUserByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("lookup phone: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("user with this phone already exists")
	}
	existing, err = s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("user with this email already exists")
	}

	role := user.RolePlayer
	if req.Role != "" {
		role = user.Role(req.Role)
	}
	if !selfAssignable(role) {
		return nil, apperr.Validation("invalid role")
	}

	hashed, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	newUser := &user.User{
		Phone:    phone,
		Email:    email,
		Password: hashed,
		Role:     role,
		FullName: strings.TrimSpace(req.FullName),
	}
	if err := s.repo.CreateUser(ctx, newUser); err != nil {
		return nil, apperr.FromStore(fmt.Errorf("create user: %w", err))
	}
	return s.issue(newUser)
}

// Login authenticates by phone or email. Unknown identifiers and wrong
// passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*AuthResponse, error) {
	identifier = strings.TrimSpace(identifier)

	var (
		u   *user.User
		err error
	)
	if strings.Contains(identifier, "@") {
		u, err = s.repo.GetUserByEmail(ctx, identifier)
	} else {
		u, err = s.repo.GetUserByPhone(ctx, identifier)
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if u == nil {
		// Burn the same bcrypt time as a real comparison.
		utils.CheckPassword(s.fakeHash(), password)
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}
	if !utils.CheckPassword(u.Password, password) {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}
	return s.issue(u)
}

// VerifyToken resolves a token to the current user record.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*user.User, error) {
	claims, err := token.ValidateJWT(tokenString, s.secret)
	if err != nil {
		if errors.Is(err, token.ErrExpired) {
			return nil, apperr.Unauthorized("token has expired")
		}
		return nil, apperr.Unauthorized(msgInvalidToken)
	}

	u, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("lookup token user: %w", err)
	}
	if u == nil {
		return nil, apperr.Unauthorized("user not found")
	}
	return u, nil
}

func (s *AuthService) GetMe(ctx context.Context, userID uint) (*user.User, error) {
	u, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, req UpdateProfileRequest) (*user.User, error) {
	u, err := s.GetMe(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		u.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != u.Email {
			other, err := s.repo.GetUserByEmail(ctx, email)
			if err != nil {
				return nil, fmt.Errorf("lookup email: %w", err)
			}
			if other != nil && other.ID != u.ID {
				return nil, apperr.Conflict("user with this email already exists")
			}
			u.Email = email
		}
	}
	u.Organization = patch(u.Organization, req.Organization)
	u.City = patch(u.City, req.City)
	u.Bio = patch(u.Bio, req.Bio)

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return nil, apperr.FromStore(fmt.Errorf("update user: %w", err))
	}
	return u, nil
}

func (s *AuthService) issue(u *user.User) (*AuthResponse, error) {
	tok, err := token.GenerateJWT(u.ID, s.secret, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("access token generation failed: %w", err)
	}
	return &AuthResponse{Token: tok, User: FilterUserRecord(u)}, nil
}

func (s *AuthService) fakeHash() string {
	s.dummyOnce.Do(func() {
		h, err := utils.HashPassword("timing-equalizer", s.bcryptCost)
		if err != nil {
			log.Printf("auth: dummy hash: %v", err)
		}
		s.dummyHash = h
	})
	return s.dummyHash
}

func selfAssignable(r user.Role) bool {
	for _, allowed := range user.SelfAssignable() {
		if r == allowed {
			return true
		}
	}
	return false
}

// patch applies an optional update; an empty string clears the field.
func patch(cur, in *string) *string {
	if in == nil {
		return cur
	}
	v := strings.TrimSpace(*in)
	if v == "" {
		return nil
	}
	return &v
}
