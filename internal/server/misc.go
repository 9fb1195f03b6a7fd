package server

import (
	"net/http"
	"strconv"

	"household-hub/internal/llm"
	"household-hub/internal/metrics"
)

func (s *Server) handleGetHousehold(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	hh, err := s.households.Get(r.Context(), session.HouseholdID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if hh == nil {
		writeError(w, http.StatusNotFound, "household not found")
		return
	}
	writeJSON(w, http.StatusOK, hh)
}

type telegramChatRequest struct {
	ChatID int64 `json:"chat_id"`
}

// handleSetTelegramChat links the household to the Telegram chat that should
// receive grocery list notifications.
func (s *Server) handleSetTelegramChat(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	var req telegramChatRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ChatID == 0 {
		writeError(w, http.StatusBadRequest, "chat_id is required")
		return
	}

	if err := s.households.SetTelegramChat(r.Context(), session.HouseholdID, req.ChatID); err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"chat_id": req.ChatID})
}

// handleCalendarAuthURL returns the Google consent URL the client should
// open to connect their calendar.
func (s *Server) handleCalendarAuthURL(w http.ResponseWriter, r *http.Request) {
	if s.calendar == nil || !s.calendar.Enabled() {
		writeError(w, http.StatusNotImplemented, "calendar integration not configured")
		return
	}
	session := sessionFrom(r)
	state := strconv.FormatInt(session.MemberID, 10)
	writeJSON(w, http.StatusOK, map[string]string{"auth_url": s.calendar.AuthURL(state)})
}

type calendarConnectRequest struct {
	Code string `json:"code"`
}

func (s *Server) handleCalendarConnect(w http.ResponseWriter, r *http.Request) {
	if s.calendar == nil || !s.calendar.Enabled() {
		writeError(w, http.StatusNotImplemented, "calendar integration not configured")
		return
	}

	var req calendarConnectRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	session := sessionFrom(r)
	if err := s.calendar.Connect(r.Context(), session.MemberID, req.Code); err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"connected": true})
}

// handleCalendarStatus reports whether the caller has a linked calendar.
// Always answers, even when the integration is not configured.
func (s *Server) handleCalendarStatus(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	connected := false
	if s.calendar != nil && s.calendar.Enabled() {
		var err error
		connected, err = s.calendar.Connected(r.Context(), session.MemberID)
		if err != nil {
			writeServerError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]bool{"connected": connected})
}

func (s *Server) handleCalendarDisconnect(w http.ResponseWriter, r *http.Request) {
	if s.calendar == nil || !s.calendar.Enabled() {
		writeError(w, http.StatusNotImplemented, "calendar integration not configured")
		return
	}

	session := sessionFrom(r)
	if err := s.calendar.Disconnect(r.Context(), session.MemberID); err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (s *Server) handleSuggestDinners(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	recipes, err := s.recipes.List(r.Context(), session.HouseholdID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	known := make([]string, 0, len(recipes))
	for _, rec := range recipes {
		known = append(known, rec.Name)
	}

	count := 0
	if v := r.URL.Query().Get("count"); v != "" {
		count, _ = strconv.Atoi(v)
	}

	suggestions, err := llm.SuggestDinners(r.Context(), s.gen("dinner_suggester"), llm.SuggestionRequest{
		KnownRecipes: known,
		Cuisine:      r.URL.Query().Get("cuisine"),
		Count:        count,
	})
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, suggestions)
}

func (s *Server) handleSystemHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, metrics.GetSysHealth(s.cfg.DatabasePath))
}

func (s *Server) handleDailyUsage(w http.ResponseWriter, r *http.Request) {
	days := 7
	if v := r.URL.Query().Get("days"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			days = parsed
		}
	}

	usage, err := s.metrics.GetDailyUsage(days)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if usage == nil {
		usage = []metrics.DailyUsage{}
	}
	writeJSON(w, http.StatusOK, usage)
}
