package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/DhavalSuthar-24/scoutkz/config"
	"github.com/DhavalSuthar-24/scoutkz/internal/auth"
	"github.com/DhavalSuthar-24/scoutkz/internal/player"
	"github.com/DhavalSuthar-24/scoutkz/internal/rating"
	"github.com/DhavalSuthar-24/scoutkz/internal/testutil"
	"github.com/DhavalSuthar-24/scoutkz/internal/video"
)

func newTestServer(t *testing.T) (*gin.Engine, *testutil.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.App.FrontendURL = []string{"http://localhost:3000"}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpiryHours = 1
	cfg.Auth.BcryptCost = bcrypt.MinCost

	store := testutil.NewStore()
	players := store.Players()
	svc := Services{
		Auth:    auth.NewAuthService(store.Users(), cfg),
		Players: player.NewPlayerService(players),
		Ratings: rating.NewRatingService(store.Ratings(), players),
		Videos:  video.NewVideoService(store.Videos(), players, &testutil.FakeHost{}, 5, 10<<20),
	}
	return SetupRoutes(cfg, svc), store
}

func do(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, status int) {
	t.Helper()
	if w.Code != status {
		t.Fatalf("expected %d, got %d: %s", status, w.Code, w.Body.String())
	}
}

func registerUser(t *testing.T, r http.Handler, phone, role string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"phone":     phone,
		"email":     phone[1:] + "@example.com",
		"password":  "secret123",
		"role":      role,
		"full_name": "User " + role,
	})
	expectStatus(t, w, http.StatusCreated)
	var resp auth.AuthResponse
	decode(t, w, &resp)
	return resp.Token
}

func uploadVideo(t *testing.T, r http.Handler, token, title string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename="goal.mp4"`, video.FormField))
	h.Set("Content-Type", "video/mp4")
	part, err := mw.CreatePart(h)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	part.Write([]byte("fake mp4 bytes"))
	if err := mw.WriteField("title", title); err != nil {
		t.Fatalf("write title: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/videos/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(t, r, http.MethodGet, "/api/health", "", nil)
	expectStatus(t, w, http.StatusOK)

	var body map[string]string
	decode(t, w, &body)
	if body["status"] != "OK" || body["timestamp"] == "" {
		t.Fatalf("unexpected health body %v", body)
	}
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestServer(t)
	expectStatus(t, do(t, r, http.MethodGet, "/api/nope", "", nil), http.StatusNotFound)
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestServer(t)
	w := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"phone":     "87011234567",
		"email":     "not-an-email",
		"password":  "123",
		"full_name": "A",
	})
	expectStatus(t, w, http.StatusBadRequest)

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decode(t, w, &body)
	for _, field := range []string{"phone", "email", "password", "full_name"} {
		if body.Fields[field] == "" {
			t.Fatalf("expected a message for %s, got %v", field, body.Fields)
		}
	}
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	r, _ := newTestServer(t)
	expectStatus(t, do(t, r, http.MethodGet, "/api/auth/me", "", nil), http.StatusUnauthorized)
	expectStatus(t, do(t, r, http.MethodGet, "/api/players", "bogus", nil), http.StatusUnauthorized)
}

func TestScoutingFlow(t *testing.T) {
	r, store := newTestServer(t)

	playerToken := registerUser(t, r, "+77011234567", "player")
	scoutToken := registerUser(t, r, "+77017654321", "scout")

	// Players cannot browse other players.
	expectStatus(t, do(t, r, http.MethodGet, "/api/players", playerToken, nil), http.StatusForbidden)

	// Uploading before the profile exists is rejected.
	expectStatus(t, uploadVideo(t, r, playerToken, "Early"), http.StatusBadRequest)

	profile := gin.H{
		"age": 18, "city": "Almaty", "position": "forward",
		"height": 178, "weight": 70, "preferred_foot": "right",
	}
	w := do(t, r, http.MethodPost, "/api/players/profile", playerToken, profile)
	expectStatus(t, w, http.StatusCreated)
	var created struct {
		Message string `json:"message"`
		IsNew   bool   `json:"isNew"`
		Profile struct {
			ID uint `json:"id"`
		} `json:"profile"`
	}
	decode(t, w, &created)
	if !created.IsNew || created.Message != "Profile created" {
		t.Fatalf("unexpected create response %+v", created)
	}
	playerID := created.Profile.ID

	w = do(t, r, http.MethodPost, "/api/players/profile", playerToken, profile)
	expectStatus(t, w, http.StatusOK)
	var updated struct {
		Message string `json:"message"`
		IsNew   bool   `json:"isNew"`
	}
	decode(t, w, &updated)
	if updated.IsNew || updated.Message != "Profile updated" {
		t.Fatalf("unexpected update response %+v", updated)
	}

	expectStatus(t, uploadVideo(t, r, playerToken, "Hat-trick"), http.StatusCreated)
	expectStatus(t, uploadVideo(t, r, scoutToken, "Not mine"), http.StatusForbidden)

	scores := gin.H{
		"player_id": playerID, "speed": 8, "dribbling": 7, "passing": 7,
		"shooting": 9, "defending": 5, "overall_rating": 8,
	}
	expectStatus(t, do(t, r, http.MethodPost, "/api/ratings", scoutToken, scores), http.StatusCreated)
	expectStatus(t, do(t, r, http.MethodPost, "/api/ratings", scoutToken, scores), http.StatusOK)
	expectStatus(t, do(t, r, http.MethodPost, "/api/ratings", playerToken, scores), http.StatusForbidden)
	if n := store.RatingCount(); n != 1 {
		t.Fatalf("expected 1 rating, got %d", n)
	}

	scores["overall_rating"] = 11
	expectStatus(t, do(t, r, http.MethodPost, "/api/ratings", scoutToken, scores), http.StatusBadRequest)

	w = do(t, r, http.MethodGet, fmt.Sprintf("/api/players/%d", playerID), scoutToken, nil)
	expectStatus(t, w, http.StatusOK)
	var details map[string]any
	decode(t, w, &details)
	if details["avg_rating"] != "8.0" || details["rating_count"] != float64(1) {
		t.Fatalf("unexpected aggregates %v / %v", details["avg_rating"], details["rating_count"])
	}

	w = do(t, r, http.MethodGet, "/api/players?city=alm", scoutToken, nil)
	expectStatus(t, w, http.StatusOK)
	var list []map[string]any
	decode(t, w, &list)
	if len(list) != 1 {
		t.Fatalf("expected 1 player, got %d", len(list))
	}

	w = do(t, r, http.MethodGet, "/api/players?page=-1&limit=-5", scoutToken, nil)
	expectStatus(t, w, http.StatusOK)
	decode(t, w, &list)
	if len(list) != 1 {
		t.Fatalf("expected negative paging to fall back to defaults, got %d players", len(list))
	}

	w = do(t, r, http.MethodGet, "/api/players/me/stats", playerToken, nil)
	expectStatus(t, w, http.StatusOK)
	var stats player.Stats
	decode(t, w, &stats)
	if !stats.ProfileCompleted || stats.VideosCount != 1 || stats.RatingsCount != 1 ||
		stats.AverageRating == nil || *stats.AverageRating != "8.0" {
		t.Fatalf("unexpected stats %+v", stats)
	}

	expectStatus(t, do(t, r, http.MethodGet, "/api/players/9999", scoutToken, nil), http.StatusNotFound)
	expectStatus(t, do(t, r, http.MethodGet, "/api/players/abc", scoutToken, nil), http.StatusBadRequest)
}
