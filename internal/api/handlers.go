package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aura-labs/aura/internal/app/reward"
	"github.com/aura-labs/aura/internal/domain"
)

// ─── Habit ──────────────────────────────────────────────────────────────────

func (s *Server) handleHabitData(w http.ResponseWriter, r *http.Request) {
	data, err := s.habits.Data()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

type markRequest struct {
	Date       string `json:"date"` // YYYY-MM-DD, empty means today
	Successful *bool  `json:"successful"`
}

func (s *Server) handleHabitMark(w http.ResponseWriter, r *http.Request) {
	var req markRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	now := time.Now()
	date := now
	if req.Date != "" {
		parsed, err := time.ParseInLocation(domain.ISODate, req.Date, now.Location())
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	successful := true
	if req.Successful != nil {
		successful = *req.Successful
	}

	var (
		data domain.HabitData
		err  error
	)
	if successful {
		data, err = s.habits.MarkDaySuccessfulAt(date, now)
	} else {
		data, err = s.habits.MarkDayUnsuccessfulAt(date, now)
	}
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleHabitReset(w http.ResponseWriter, r *http.Request) {
	data, err := s.habits.ResetStreak(true)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (s *Server) handleHabitExport(w http.ResponseWriter, r *http.Request) {
	raw, err := s.habits.Export()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, raw)
}

func (s *Server) handleHabitImport(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read body")
		return
	}
	data, err := s.habits.Import(string(raw))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// ─── Activities ─────────────────────────────────────────────────────────────

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.rewards.Activities()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

type addActivityRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
}

func (s *Server) handleAddActivity(w http.ResponseWriter, r *http.Request) {
	var req addActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	activity, err := s.rewards.AddActivity(req.Title, domain.Category(req.Category), req.Description, req.Emoji)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, activity)
}

func (s *Server) handleToggleActivity(w http.ResponseWriter, r *http.Request) {
	activity, events, err := s.rewards.ToggleActivity(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"activity": activity,
		"events":   events,
	})
}

func (s *Server) handleDeleteActivity(w http.ResponseWriter, r *http.Request) {
	if err := s.rewards.DeleteActivity(chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Stats ──────────────────────────────────────────────────────────────────

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	stats, err := s.rewards.StatsAt(now)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	todayPoints, err := s.rewards.TodayPoints(now)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	tier := domain.TierForPoints(stats.TotalPoints)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"stats":        stats,
		"tier":         tier.Name,
		"today_points": todayPoints,
	})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, domain.Categories)
}

// ─── Challenges ─────────────────────────────────────────────────────────────

func (s *Server) handleChallenges(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	challenges, err := s.rewards.EnsureDailyChallengesAt(now)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	out := make([]map[string]interface{}, 0, len(challenges))
	for _, c := range challenges {
		out = append(out, map[string]interface{}{
			"challenge":  c,
			"expired":    c.IsExpiredAt(now),
			"percentage": c.ProgressPct(),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleClaimChallenge(w http.ResponseWriter, r *http.Request) {
	rw, events, err := s.rewards.ClaimChallenge(chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reward": rw,
		"events": events,
	})
}

// ─── Achievements ───────────────────────────────────────────────────────────

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	stats, err := s.rewards.Stats()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	unlockedAt := make(map[string]time.Time, len(stats.Achievements))
	for _, a := range stats.Achievements {
		unlockedAt[a.ID] = a.UnlockedAt
	}

	out := make([]map[string]interface{}, 0, len(reward.Catalog))
	for _, def := range reward.Catalog {
		entry := map[string]interface{}{
			"achievement": def,
			"unlocked":    false,
		}
		if at, ok := unlockedAt[def.ID]; ok {
			entry["unlocked"] = true
			entry["unlocked_at"] = at
		}
		out = append(out, entry)
	}
	writeJSON(w, http.StatusOK, out)
}
