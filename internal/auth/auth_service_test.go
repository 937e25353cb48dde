package auth_test

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/DhavalSuthar-24/scoutkz/config"
	"github.com/DhavalSuthar-24/scoutkz/internal/auth"
	"github.com/DhavalSuthar-24/scoutkz/internal/testutil"
	"github.com/DhavalSuthar-24/scoutkz/internal/user"
	"github.com/DhavalSuthar-24/scoutkz/pkg/apperr"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryHours = 1
	cfg.Auth.BcryptCost = bcrypt.MinCost
	return cfg
}

func newService(t *testing.T) (*auth.AuthService, *testutil.Store) {
	t.Helper()
	store := testutil.NewStore()
	return auth.NewAuthService(store.Users(), testConfig()), store
}

func register(t *testing.T, svc *auth.AuthService, phone, email, role string) *auth.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), auth.RegisterRequest{
		Phone:    phone,
		Email:    email,
		Password: "secret123",
		Role:     role,
		FullName: "Aidos Nurlanov",
	})
	if err != nil {
		t.Fatalf("register %s: %v", phone, err)
	}
	return resp
}

func TestRegisterDefaultsToPlayer(t *testing.T) {
	svc, _ := newService(t)
	resp := register(t, svc, "+77011234567", "Aidos@Example.com", "")

	if resp.Token == "" {
		t.Fatal("expected a token")
	}
	if resp.User.Role != user.RolePlayer {
		t.Fatalf("expected role player, got %q", resp.User.Role)
	}
	if resp.User.Email != "aidos@example.com" {
		t.Fatalf("expected lower-cased email, got %q", resp.User.Email)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	svc, _ := newService(t)
	register(t, svc, "+77011234567", "a@example.com", "player")

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Phone: "+77011234567", Email: "b@example.com", Password: "secret123", FullName: "Other",
	})
	if !apperr.Is(err, apperr.KindConflict) || err.Error() != "user with this phone already exists" {
		t.Fatalf("expected phone conflict, got %v", err)
	}

	_, err = svc.Register(context.Background(), auth.RegisterRequest{
		Phone: "+77019999999", Email: "A@example.com", Password: "secret123", FullName: "Other",
	})
	if !apperr.Is(err, apperr.KindConflict) || err.Error() != "user with this email already exists" {
		t.Fatalf("expected email conflict, got %v", err)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Phone: "+77011234567", Email: "a@example.com", Password: "secret123", Role: "admin", FullName: "Root",
	})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestLoginByPhoneOrEmail(t *testing.T) {
	svc, _ := newService(t)
	reg := register(t, svc, "+77011234567", "scout@example.com", "scout")

	for _, identifier := range []string{"+77011234567", "SCOUT@example.com"} {
		resp, err := svc.Login(context.Background(), identifier, "secret123")
		if err != nil {
			t.Fatalf("login with %s: %v", identifier, err)
		}
		if resp.User.ID != reg.User.ID || resp.User.Role != user.RoleScout {
			t.Fatalf("login with %s returned %+v", identifier, resp.User)
		}
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := newService(t)
	register(t, svc, "+77011234567", "a@example.com", "")

	_, wrongPassword := svc.Login(context.Background(), "+77011234567", "nope-nope")
	_, unknownUser := svc.Login(context.Background(), "+77010000000", "secret123")

	for _, err := range []error{wrongPassword, unknownUser} {
		if !apperr.Is(err, apperr.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	}
	if wrongPassword.Error() != unknownUser.Error() {
		t.Fatalf("messages differ: %q vs %q", wrongPassword, unknownUser)
	}
}

func TestVerifyToken(t *testing.T) {
	svc, store := newService(t)
	reg := register(t, svc, "+77011234567", "a@example.com", "coach")

	u, err := svc.VerifyToken(context.Background(), reg.Token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if u.ID != reg.User.ID || u.Role != user.RoleCoach {
		t.Fatalf("unexpected user %+v", u)
	}

	if _, err := svc.VerifyToken(context.Background(), "garbage"); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized for garbage token, got %v", err)
	}

	store.DeleteUser(reg.User.ID)
	_, err = svc.VerifyToken(context.Background(), reg.Token)
	if !apperr.Is(err, apperr.KindUnauthorized) || err.Error() != "user not found" {
		t.Fatalf("expected user not found, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	svc, _ := newService(t)
	first := register(t, svc, "+77011234567", "a@example.com", "scout")
	register(t, svc, "+77017654321", "b@example.com", "scout")

	org := "FC Kairat Academy"
	u, err := svc.UpdateProfile(context.Background(), first.User.ID, auth.UpdateProfileRequest{Organization: &org})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.Organization == nil || *u.Organization != org {
		t.Fatalf("organization not set: %+v", u.Organization)
	}

	empty := ""
	u, err = svc.UpdateProfile(context.Background(), first.User.ID, auth.UpdateProfileRequest{Organization: &empty})
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if u.Organization != nil {
		t.Fatalf("expected organization cleared, got %q", *u.Organization)
	}

	taken := "B@example.com"
	_, err = svc.UpdateProfile(context.Background(), first.User.ID, auth.UpdateProfileRequest{Email: &taken})
	if !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}
