package player_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/scoutkz/internal/player"
	"github.com/DhavalSuthar-24/scoutkz/internal/testutil"
)

func TestRepoUpsertReportsInsertFromWrite(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := player.NewPlayerRepository(db)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	upsert := testutil.SQL(
		"INSERT INTO players",
		"ON CONFLICT (user_id) DO UPDATE SET",
		"bio = EXCLUDED.bio",
		"RETURNING id, created_at, updated_at, (xmax = 0) AS inserted",
	)
	cols := []string{"id", "created_at", "updated_at", "inserted"}
	args := []driver.Value{uint(5), 20, "Almaty", "forward", 178, 70, "right", 3, "Kairat", "", sqlmock.AnyArg(), sqlmock.AnyArg()}

	mock.ExpectQuery(upsert).WithArgs(args...).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(9), now, now, true))
	mock.ExpectQuery(upsert).WithArgs(args...).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(9), now, now.Add(time.Hour), false))

	p := &player.Player{
		UserID: 5, Age: 20, City: "Almaty", Position: player.PositionForward,
		Height: 178, Weight: 70, PreferredFoot: player.FootRight, ExperienceYears: 3, Club: "Kairat",
	}
	created, err := repo.Upsert(context.Background(), p)
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if !created || p.ID != 9 || !p.CreatedAt.Equal(now) {
		t.Fatalf("first upsert: created=%v id=%d created_at=%v", created, p.ID, p.CreatedAt)
	}

	created, err = repo.Upsert(context.Background(), p)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if created {
		t.Error("second upsert reported an insert")
	}
	if !p.UpdatedAt.Equal(now.Add(time.Hour)) {
		t.Errorf("updated_at = %v", p.UpdatedAt)
	}
}

func TestRepoUpsertTranslatesForeignKeyError(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := player.NewPlayerRepository(db)

	mock.ExpectQuery(testutil.SQL("INSERT INTO players")).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := repo.Upsert(context.Background(), &player.Player{UserID: 404})
	if !errors.Is(err, gorm.ErrForeignKeyViolated) {
		t.Fatalf("err = %v, want ErrForeignKeyViolated", err)
	}
}

func TestRepoFindAllFiltersAndOrders(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := player.NewPlayerRepository(db)
	ageMin, ageMax := 16, 21

	mock.ExpectQuery(testutil.SQL(
		"SELECT p.*, u.full_name, u.phone",
		"COALESCE(AVG(r.overall_rating), 0)::float8 AS avg_rating",
		"COUNT(r.id) AS rating_count",
		"FROM players AS p JOIN users u ON u.id = p.user_id LEFT JOIN ratings r ON r.player_id = p.id",
		"WHERE p.city ILIKE $1 AND p.position = $2 AND p.age >= $3 AND p.age <= $4",
		"GROUP BY p.id, u.full_name, u.phone",
		"ORDER BY avg_rating DESC, p.created_at DESC",
		"LIMIT $5 OFFSET $6",
	)).
		WithArgs(`%50\%\_a\\b%`, "forward", 16, 21, 5, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "city", "position", "full_name", "phone", "avg_rating", "rating_count"}).
			AddRow(int64(2), int64(7), "Almaty", "forward", "Aru", "+77010000002", 8.25, int64(4)).
			AddRow(int64(1), int64(6), "Almaty", "forward", "Dias", "+77010000001", 0.0, int64(0)))

	got, err := repo.FindAll(context.Background(), player.ListFilter{
		City: `50%_a\b`, Position: player.PositionForward, AgeMin: &ageMin, AgeMax: &ageMax, Page: 2, Limit: 5,
	})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d players, want 2", len(got))
	}
	if got[0].ID != 2 || got[0].FullName != "Aru" || got[0].AvgRating.String() != "8.3" || got[0].RatingCount != 4 {
		t.Errorf("first row = %+v", got[0])
	}
	if got[1].ID != 1 || got[1].AvgRating.String() != "0.0" {
		t.Errorf("second row = %+v", got[1])
	}
}

func TestRepoFindAllFirstPageHasNoOffset(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := player.NewPlayerRepository(db)

	mock.ExpectQuery(testutil.SQL("GROUP BY p.id", "ORDER BY avg_rating DESC", "LIMIT $1")).
		WithArgs(20).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.FindAll(context.Background(), player.ListFilter{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("got %#v, want empty non-nil slice", got)
	}
}

func TestRepoFindByIDMissing(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := player.NewPlayerRepository(db)

	mock.ExpectQuery(testutil.SQL("FROM players AS p", "WHERE p.id = $1", "LIMIT $2")).
		WithArgs(uint(42), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.FindByID(context.Background(), 42)
	if err != nil || got != nil {
		t.Fatalf("FindByID = %v, %v; want nil, nil", got, err)
	}
}

func TestRepoIDByUserID(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := player.NewPlayerRepository(db)

	mock.ExpectQuery(testutil.SQL(`FROM "players" WHERE user_id = $1`)).
		WithArgs(uint(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(testutil.SQL(`FROM "players" WHERE user_id = $1`)).
		WithArgs(uint(8), 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	id, err := repo.IDByUserID(context.Background(), 7)
	if err != nil || id != 3 {
		t.Fatalf("IDByUserID(7) = %d, %v", id, err)
	}
	id, err = repo.IDByUserID(context.Background(), 8)
	if err != nil || id != 0 {
		t.Fatalf("IDByUserID(8) = %d, %v; want 0, nil", id, err)
	}
}

func TestRepoSummaryBindsPlayerOnEverySubquery(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := player.NewPlayerRepository(db)

	mock.ExpectQuery(testutil.SQL(
		"(SELECT COUNT(*) FROM videos WHERE player_id = $1) AS videos_count",
		"(SELECT COUNT(*) FROM ratings WHERE player_id = $2) AS ratings_count",
		"FROM ratings WHERE player_id = $3) AS avg_rating",
	)).
		WithArgs(uint(4), uint(4), uint(4)).
		WillReturnRows(sqlmock.NewRows([]string{"videos_count", "ratings_count", "avg_rating"}).
			AddRow(int64(2), int64(3), 7.5))

	s, err := repo.Summary(context.Background(), 4)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if s.VideosCount != 2 || s.RatingsCount != 3 || s.AvgRating != 7.5 {
		t.Errorf("summary = %+v", s)
	}
}
