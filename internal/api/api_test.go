package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aura-labs/aura/internal/app/challenge"
	"github.com/aura-labs/aura/internal/app/habit"
	"github.com/aura-labs/aura/internal/app/reward"
	"github.com/aura-labs/aura/internal/domain"
	"github.com/aura-labs/aura/internal/infra/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	st, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	habits := habit.NewService(st, domain.DefaultHabitSettings())
	rewards := reward.NewService(st, challenge.NewSeededGenerator(1))
	return NewServer(habits, rewards, nil, "test")
}

func doJSON(t *testing.T, srv *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

// ─── Health and Version ─────────────────────────────────────────────────────

func TestAPI_Health(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "GET", "/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]interface{}
	json.NewDecoder(w.Body).Decode(&body)
	if body["status"] != "ok" {
		t.Errorf("status = %v, want ok", body["status"])
	}
}

func TestAPI_Version(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "GET", "/api/version", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	json.NewDecoder(w.Body).Decode(&body)
	if body["version"] != "test" {
		t.Errorf("version = %q, want test", body["version"])
	}
}

// ─── Habit ──────────────────────────────────────────────────────────────────

func TestAPI_HabitMarkAndGet(t *testing.T) {
	srv := newTestServer(t)

	today := time.Now().Format(domain.ISODate)
	w := doJSON(t, srv, "POST", "/api/habit/mark", fmt.Sprintf(`{"date": %q}`, today))
	if w.Code != http.StatusOK {
		t.Fatalf("mark status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, srv, "GET", "/api/habit/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
	var data domain.HabitData
	if err := json.NewDecoder(w.Body).Decode(&data); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if data.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", data.CurrentStreak)
	}
}

func TestAPI_HabitMark_FutureDateRejected(t *testing.T) {
	srv := newTestServer(t)

	future := time.Now().AddDate(0, 0, 2).Format(domain.ISODate)
	w := doJSON(t, srv, "POST", "/api/habit/mark", fmt.Sprintf(`{"date": %q}`, future))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAPI_HabitMark_BadBody(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/habit/mark", `{"date": "not-a-date"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAPI_HabitExportImport(t *testing.T) {
	srv := newTestServer(t)

	today := time.Now().Format(domain.ISODate)
	doJSON(t, srv, "POST", "/api/habit/mark", fmt.Sprintf(`{"date": %q}`, today))

	w := doJSON(t, srv, "GET", "/api/habit/export", "")
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d", w.Code)
	}
	exported := w.Body.String()

	w = doJSON(t, srv, "POST", "/api/habit/import", exported)
	if w.Code != http.StatusOK {
		t.Fatalf("import status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, srv, "POST", "/api/habit/import", "not json at all")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad import status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

// ─── Activities ─────────────────────────────────────────────────────────────

func TestAPI_AddActivity(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/activities/", `{"title": "Morning run", "category": "health"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var activity domain.Activity
	if err := json.NewDecoder(w.Body).Decode(&activity); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if activity.ID == "" {
		t.Error("activity ID is empty")
	}
	if activity.Points != 15 {
		t.Errorf("Points = %d, want 15", activity.Points)
	}
}

func TestAPI_AddActivity_Validation(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/activities/", `{"title": "", "category": "health"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty title status = %d, want %d", w.Code, http.StatusBadRequest)
	}

	w = doJSON(t, srv, "POST", "/api/activities/", `{"title": "x", "category": "cooking"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown category status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAPI_ToggleActivity(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/activities/", `{"title": "Read", "category": "learning"}`)
	var activity domain.Activity
	json.NewDecoder(w.Body).Decode(&activity)

	w = doJSON(t, srv, "POST", "/api/activities/"+activity.ID+"/toggle", "")
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d, body %s", w.Code, w.Body.String())
	}

	var body struct {
		Activity domain.Activity `json:"activity"`
		Events   []domain.Event  `json:"events"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Activity.Completed {
		t.Error("activity not completed after toggle")
	}
}

func TestAPI_ToggleActivity_NotFound(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/activities/nope/toggle", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAPI_DeleteActivity(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/activities/", `{"title": "Stretch", "category": "health"}`)
	var activity domain.Activity
	json.NewDecoder(w.Body).Decode(&activity)

	w = doJSON(t, srv, "DELETE", "/api/activities/"+activity.ID, "")
	if w.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want %d", w.Code, http.StatusNoContent)
	}

	w = doJSON(t, srv, "DELETE", "/api/activities/"+activity.ID, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

// ─── Stats and Categories ───────────────────────────────────────────────────

func TestAPI_Stats(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "GET", "/api/stats", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body map[string]interface{}
	json.NewDecoder(w.Body).Decode(&body)
	if body["tier"] != "Dormant" {
		t.Errorf("tier = %v, want Dormant", body["tier"])
	}
}

func TestAPI_Categories(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "GET", "/api/categories", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var cats []domain.CategoryConfig
	if err := json.NewDecoder(w.Body).Decode(&cats); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(cats) != len(domain.Categories) {
		t.Errorf("got %d categories, want %d", len(cats), len(domain.Categories))
	}
}

// ─── Challenges and Achievements ────────────────────────────────────────────

func TestAPI_Challenges(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "GET", "/api/challenges/", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var body []map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != challenge.BatchSize {
		t.Errorf("got %d challenges, want %d", len(body), challenge.BatchSize)
	}
}

func TestAPI_ClaimChallenge_NotCompleted(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "GET", "/api/challenges/", "")
	var body []struct {
		Challenge domain.DailyChallenge `json:"challenge"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}

	w = doJSON(t, srv, "POST", "/api/challenges/"+body[0].Challenge.ID+"/claim", "")
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestAPI_ClaimChallenge_NotFound(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/challenges/missing/claim", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAPI_Achievements(t *testing.T) {
	srv := newTestServer(t)

	// Completing an activity unlocks the first-activity achievement.
	w := doJSON(t, srv, "POST", "/api/activities/", `{"title": "Meditate", "category": "mindfulness"}`)
	var activity domain.Activity
	json.NewDecoder(w.Body).Decode(&activity)
	doJSON(t, srv, "POST", "/api/activities/"+activity.ID+"/toggle", "")

	w = doJSON(t, srv, "GET", "/api/achievements", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body []struct {
		Achievement domain.AchievementDef `json:"achievement"`
		Unlocked    bool                  `json:"unlocked"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != len(reward.Catalog) {
		t.Fatalf("got %d achievements, want %d", len(body), len(reward.Catalog))
	}

	unlocked := false
	for _, e := range body {
		if e.Achievement.ID == "first_activity" && e.Unlocked {
			unlocked = true
		}
	}
	if !unlocked {
		t.Error("first_activity not reported unlocked")
	}
}
