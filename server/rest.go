package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-pkgz/lgr"

	"deskhub/pkg/domain"
)

// statusHandler returns server status with job and quota snapshots
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"jobs":    s.scheduler.Statuses(),
		"quota": map[string]interface{}{
			"remaining": s.quota.Remaining(),
			"limit":     s.quota.Limit(),
			"usage":     s.quota.UsageRatio(),
		},
	}
	renderJSON(w, r, http.StatusOK, status)
}

// jobsHandler returns all job statuses
func (s *Server) jobsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.scheduler.Statuses())
}

// runJobHandler triggers a job by name
func (s *Server) runJobHandler(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := s.scheduler.RunJobNow(r.Context(), name); err != nil {
		renderError(w, r, err, http.StatusConflict)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"result": "ok", "job": name})
}

// listNewsHandler returns recent news items
func (s *Server) listNewsHandler(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	items, err := s.db.ListNews(r.Context(), limit)
	if err != nil {
		lgr.Printf("[ERROR] failed to list news: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, items)
}

// listFeedsHandler returns all feeds
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	enabledOnly := r.URL.Query().Get("enabled") == "true"
	feeds, err := s.db.GetFeeds(r.Context(), enabledOnly)
	if err != nil {
		lgr.Printf("[ERROR] failed to list feeds: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

// createFeedHandler adds a feed source
func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL   string `json:"url"`
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		renderError(w, r, fmt.Errorf("feed URL is required"), http.StatusBadRequest)
		return
	}

	feed := &domain.Feed{URL: req.URL, Title: req.Title, Enabled: true}
	if err := s.db.CreateFeed(r.Context(), feed); err != nil {
		lgr.Printf("[ERROR] failed to create feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, feed)
}

// enableFeedHandler enables a feed
func (s *Server) enableFeedHandler(w http.ResponseWriter, r *http.Request) {
	s.updateFeedStatus(w, r, true)
}

// disableFeedHandler disables a feed
func (s *Server) disableFeedHandler(w http.ResponseWriter, r *http.Request) {
	s.updateFeedStatus(w, r, false)
}

func (s *Server) updateFeedStatus(w http.ResponseWriter, r *http.Request, enabled bool) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.db.UpdateFeedStatus(r.Context(), id, enabled); err != nil {
		lgr.Printf("[ERROR] failed to update feed status: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"id": id, "enabled": enabled})
}

// deleteFeedHandler deletes a feed and its news items
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.db.DeleteFeed(r.Context(), id); err != nil {
		lgr.Printf("[ERROR] failed to delete feed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listTasksHandler returns tasks, completed ones included on demand
func (s *Server) listTasksHandler(w http.ResponseWriter, r *http.Request) {
	includeCompleted := r.URL.Query().Get("all") == "true"
	tasks, err := s.db.ListTasks(r.Context(), includeCompleted)
	if err != nil {
		lgr.Printf("[ERROR] failed to list tasks: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, tasks)
}

// createTaskHandler adds a task
func (s *Server) createTaskHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		DueAt       string `json:"due_at"`
		Priority    string `json:"priority"`
		Recurrence  string `json:"recurrence"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		renderError(w, r, fmt.Errorf("task title is required"), http.StatusBadRequest)
		return
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.Priority(req.Priority),
		Recurrence:  domain.Recurrence(req.Recurrence),
	}
	if req.DueAt != "" {
		due, err := time.Parse(time.RFC3339, req.DueAt)
		if err != nil {
			renderError(w, r, fmt.Errorf("due_at must be RFC3339"), http.StatusBadRequest)
			return
		}
		task.DueAt = &due
	}

	if err := s.db.CreateTask(r.Context(), task); err != nil {
		lgr.Printf("[ERROR] failed to create task: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, task)
}

// completeTaskHandler marks a task done
func (s *Server) completeTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.db.CompleteTask(r.Context(), id); err != nil {
		lgr.Printf("[ERROR] failed to complete task: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"id": id, "completed": true})
}

// deleteTaskHandler removes a task
func (s *Server) deleteTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}
	if err := s.db.DeleteTask(r.Context(), id); err != nil {
		lgr.Printf("[ERROR] failed to delete task: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listGamesHandler returns the game library, optionally for one platform or
// filtered to games not yet finished
func (s *Server) listGamesHandler(w http.ResponseWriter, r *http.Request) {
	var games []*domain.GameRecord
	var err error
	if r.URL.Query().Get("incomplete") == "true" {
		games, err = s.db.ListIncompleteGames(r.Context())
	} else {
		games, err = s.db.ListGames(r.Context(), domain.Platform(r.URL.Query().Get("platform")))
	}
	if err != nil {
		lgr.Printf("[ERROR] failed to list games: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, games)
}

// upsertGameHandler adds or updates a game record, matched by platform and
// external id. Lets the foreground register titles outside the synced libraries.
func (s *Server) upsertGameHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Platform             string `json:"platform"`
		ExternalID           string `json:"external_id"`
		Title                string `json:"title"`
		PlaytimeMinutes      int    `json:"playtime_minutes"`
		AchievementsUnlocked int    `json:"achievements_unlocked"`
		AchievementsTotal    int    `json:"achievements_total"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.Platform == "" || req.ExternalID == "" {
		renderError(w, r, fmt.Errorf("platform and external_id are required"), http.StatusBadRequest)
		return
	}

	game := &domain.GameRecord{
		Platform:             domain.Platform(req.Platform),
		ExternalID:           req.ExternalID,
		Title:                req.Title,
		PlaytimeMinutes:      req.PlaytimeMinutes,
		AchievementsUnlocked: req.AchievementsUnlocked,
		AchievementsTotal:    req.AchievementsTotal,
	}
	if err := s.db.UpsertGame(r.Context(), game); err != nil {
		lgr.Printf("[ERROR] failed to upsert game: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusCreated, game)
}

// setGameCompletedHandler toggles the user-controlled completed flag
func (s *Server) setGameCompletedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		renderError(w, r, err, http.StatusBadRequest)
		return
	}

	var req struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.db.SetGameCompleted(r.Context(), id, req.Completed); err != nil {
		lgr.Printf("[ERROR] failed to set game completed: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]interface{}{"id": id, "completed": req.Completed})
}

// getSettingHandler reads one setting, a missing key reads as empty
func (s *Server) getSettingHandler(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	value, err := s.db.GetSetting(r.Context(), key)
	if err != nil {
		lgr.Printf("[ERROR] failed to get setting: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"key": key, "value": value})
}

// setSettingHandler stores one setting, the next job run picks it up
func (s *Server) setSettingHandler(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var req struct {
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}

	if err := s.db.SetSetting(r.Context(), key, req.Value); err != nil {
		lgr.Printf("[ERROR] failed to set setting: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]string{"key": key, "value": req.Value})
}

// quotaHandler reports daily API budget usage
func (s *Server) quotaHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, map[string]interface{}{
		"remaining": s.quota.Remaining(),
		"limit":     s.quota.Limit(),
		"usage":     s.quota.UsageRatio(),
	})
}

// pathID parses the {id} path segment
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}

// queryInt parses an integer query parameter with a default
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return def
	}
	return val
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
