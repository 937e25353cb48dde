package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoutkz/internal/auth"
	"github.com/DhavalSuthar-24/scoutkz/internal/testutil"
	"github.com/DhavalSuthar-24/scoutkz/internal/user"
)

func TestRepoCreateUserDuplicate(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := auth.NewAuthRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(testutil.SQL(`INSERT INTO "users"`, `RETURNING "id"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.CreateUser(context.Background(), &user.User{Phone: "+77010000001", Email: "a@b.kz", Password: "x", Role: user.RolePlayer, FullName: "A"})
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("err = %v, want ErrDuplicatedKey", err)
	}
}

func TestRepoGetUserByEmailIgnoresCase(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := auth.NewAuthRepository(db)

	mock.ExpectQuery(testutil.SQL(`FROM "users" WHERE LOWER(email) = LOWER($1)`, "LIMIT $2")).
		WithArgs("Aru@Mail.KZ", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).AddRow(int64(3), "aru@mail.kz", "scout"))

	u, err := repo.GetUserByEmail(context.Background(), "Aru@Mail.KZ")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if u == nil || u.ID != 3 || u.Role != user.RoleScout {
		t.Fatalf("got %+v", u)
	}
}

func TestRepoGetUserByPhoneMissing(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := auth.NewAuthRepository(db)

	mock.ExpectQuery(testutil.SQL(`FROM "users" WHERE phone = $1`)).
		WithArgs("+77019999999", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	u, err := repo.GetUserByPhone(context.Background(), "+77019999999")
	if err != nil || u != nil {
		t.Fatalf("GetUserByPhone = %v, %v; want nil, nil", u, err)
	}
}
