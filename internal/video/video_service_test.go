package video_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DhavalSuthar-24/scoutkz/internal/player"
	"github.com/DhavalSuthar-24/scoutkz/internal/testutil"
	"github.com/DhavalSuthar-24/scoutkz/internal/user"
	"github.com/DhavalSuthar-24/scoutkz/internal/video"
	"github.com/DhavalSuthar-24/scoutkz/pkg/apperr"
)

const maxBytes = 10 << 20

type fixture struct {
	store *testutil.Store
	host  *testutil.FakeHost
	svc   *video.VideoService
}

func setup(t *testing.T) fixture {
	t.Helper()
	store := testutil.NewStore()
	host := &testutil.FakeHost{}
	return fixture{
		store: store,
		host:  host,
		svc:   video.NewVideoService(store.Videos(), store.Players(), host, 5, maxBytes),
	}
}

func (f fixture) addUser(t *testing.T, phone string, role user.Role) uint {
	t.Helper()
	u := &user.User{Phone: phone, Email: phone + "@example.com", Password: "x", Role: role, FullName: "User " + phone}
	if err := f.store.Users().CreateUser(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func (f fixture) profile(t *testing.T, userID uint) uint {
	t.Helper()
	p := &player.Player{UserID: userID, Age: 18, City: "Almaty", Position: player.PositionForward, Height: 178, Weight: 70, PreferredFoot: player.FootRight}
	if _, err := f.store.Players().Upsert(context.Background(), p); err != nil {
		t.Fatalf("seed player: %v", err)
	}
	return p.ID
}

func clip(title string) video.UploadInput {
	return video.UploadInput{
		File: &video.UploadFile{
			Reader:      strings.NewReader("fake mp4 bytes"),
			Size:        14,
			ContentType: "video/mp4",
			Filename:    "goal.mp4",
		},
		Title: title,
	}
}

func expectValidation(t *testing.T, err error, msg string) {
	t.Helper()
	if !apperr.Is(err, apperr.KindValidation) || !strings.Contains(err.Error(), msg) {
		t.Fatalf("expected validation error %q, got %v", msg, err)
	}
}

func TestUploadPreconditions(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	uid := f.addUser(t, "+77011234567", user.RolePlayer)

	// The missing file is reported before the missing profile.
	_, err := f.svc.Upload(ctx, uid, video.UploadInput{})
	expectValidation(t, err, "video file is required")

	in := clip("")
	in.File.ContentType = "image/png"
	_, err = f.svc.Upload(ctx, uid, in)
	expectValidation(t, err, "only video files are allowed")

	in = clip("")
	in.File.Size = maxBytes + 1
	_, err = f.svc.Upload(ctx, uid, in)
	expectValidation(t, err, "file is too large")

	_, err = f.svc.Upload(ctx, uid, clip(""))
	expectValidation(t, err, "create a player profile first")

	if len(f.host.Uploads) != 0 {
		t.Fatalf("host called %d times for rejected uploads", len(f.host.Uploads))
	}
}

func TestUploadDefaultsTitle(t *testing.T) {
	f := setup(t)
	uid := f.addUser(t, "+77011234567", user.RolePlayer)
	pid := f.profile(t, uid)

	v, err := f.svc.Upload(context.Background(), uid, clip("   "))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if v.Title != video.DefaultTitle || v.PlayerID != pid || v.VideoURL == "" || v.FileSize != 14 {
		t.Fatalf("unexpected video %+v", v)
	}
}

func TestUploadQuota(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	uid := f.addUser(t, "+77011234567", user.RolePlayer)
	f.profile(t, uid)

	for i := 0; i < 5; i++ {
		if _, err := f.svc.Upload(ctx, uid, clip("clip")); err != nil {
			t.Fatalf("upload %d: %v", i+1, err)
		}
	}
	_, err := f.svc.Upload(ctx, uid, clip("one too many"))
	expectValidation(t, err, "video limit reached")

	if n := f.store.VideoCount(); n != 5 {
		t.Fatalf("expected 5 rows, got %d", n)
	}
	if n := len(f.host.Uploads); n != 5 {
		t.Fatalf("expected 5 host uploads, got %d", n)
	}
}

func TestUploadHostFailureWritesNothing(t *testing.T) {
	f := setup(t)
	uid := f.addUser(t, "+77011234567", user.RolePlayer)
	f.profile(t, uid)
	f.host.UploadErr = errors.New("connection reset")

	_, err := f.svc.Upload(context.Background(), uid, clip("clip"))
	if !apperr.Is(err, apperr.KindInternal) {
		t.Fatalf("expected internal error, got %v", err)
	}
	if n := f.store.VideoCount(); n != 0 {
		t.Fatalf("expected no rows, got %d", n)
	}
}

func TestUpdateAndDeleteAuthorization(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	owner := f.addUser(t, "+77011234567", user.RolePlayer)
	other := f.addUser(t, "+77017654321", user.RolePlayer)
	admin := f.addUser(t, "+77010000000", user.RoleAdmin)
	f.profile(t, owner)

	v, err := f.svc.Upload(ctx, owner, clip("clip"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	title := "Hat-trick"
	_, err = f.svc.Update(ctx, v.ID, other, user.RolePlayer, video.UpdateRequest{Title: &title})
	if !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	updated, err := f.svc.Update(ctx, v.ID, owner, user.RolePlayer, video.UpdateRequest{Title: &title})
	if err != nil || updated.Title != title {
		t.Fatalf("owner update: %+v, %v", updated, err)
	}

	blank := "  "
	_, err = f.svc.Update(ctx, v.ID, owner, user.RolePlayer, video.UpdateRequest{Title: &blank})
	expectValidation(t, err, "title must not be empty")

	if err := f.svc.Delete(ctx, v.ID, other, user.RolePlayer); !apperr.Is(err, apperr.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := f.svc.Delete(ctx, v.ID, admin, user.RoleAdmin); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if err := f.svc.Delete(ctx, v.ID, owner, user.RolePlayer); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestDeleteIgnoresHostFailure(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	uid := f.addUser(t, "+77011234567", user.RolePlayer)
	f.profile(t, uid)

	v, err := f.svc.Upload(ctx, uid, clip("clip"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	f.host.DeleteErr = errors.New("bucket unavailable")

	if err := f.svc.Delete(ctx, v.ID, uid, user.RolePlayer); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n := f.store.VideoCount(); n != 0 {
		t.Fatalf("expected row removed, got %d", n)
	}
	if len(f.host.Deleted) != 1 || f.host.Deleted[0] != v.ExternalID {
		t.Fatalf("expected host delete of %s, got %v", v.ExternalID, f.host.Deleted)
	}
}

func TestListMineWithoutProfile(t *testing.T) {
	f := setup(t)
	uid := f.addUser(t, "+77011234567", user.RoleParent)

	videos, err := f.svc.ListMine(context.Background(), uid)
	if err != nil || videos == nil || len(videos) != 0 {
		t.Fatalf("expected empty list, got %v, %v", videos, err)
	}
}
