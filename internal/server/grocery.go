package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"household-hub/internal/grocery"
	"household-hub/internal/mealplan"
)

type regenerateRequest struct {
	// Staples overrides the carry-over set. When absent, staples are pulled
	// from the previous week's list.
	Staples []grocery.StapleItem `json:"staples"`
}

func (s *Server) handleRegenerateGroceryList(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	planID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	plan, err := s.plans.GetPlan(r.Context(), session.HouseholdID, planID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if plan == nil {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}

	var req regenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	staples := req.Staples
	if staples == nil {
		staples, err = s.grocery.ListStaples(r.Context(), session.HouseholdID, plan.WeekStart.AddDate(0, 0, -7))
		if err != nil {
			writeServerError(w, err)
			return
		}
	}

	items, err := s.builder.Regenerate(r.Context(), *plan, staples)
	if err != nil {
		writeServerError(w, err)
		return
	}

	s.notifyGroceryList(r, session.HouseholdID, *plan, items)

	writeJSON(w, http.StatusOK, items)
}

type previewRequest struct {
	Meals   []mealplan.Meal      `json:"meals"`
	Staples []grocery.StapleItem `json:"staples"`
}

// handlePreviewGroceryList aggregates a draft list without touching the
// database, so clients can show the result of a plan still being edited.
func (s *Server) handlePreviewGroceryList(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	var req previewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	items, err := s.builder.Preview(r.Context(), session.HouseholdID, req.Meals, req.Staples)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetGroceryList(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	planID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	plan, err := s.plans.GetPlan(r.Context(), session.HouseholdID, planID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if plan == nil {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}

	items, err := s.grocery.ListItems(r.Context(), planID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if items == nil {
		items = []grocery.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

type checkRequest struct {
	Checked bool `json:"checked"`
}

func (s *Server) handleCheckGroceryItem(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req checkRequest
	if !decodeBody(w, r, &req) {
		return
	}

	found, err := s.grocery.SetItemChecked(r.Context(), session.HouseholdID, itemID, req.Checked)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "grocery item not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"checked": req.Checked})
}

// notifyGroceryList pushes the freshly generated list to the household's
// Telegram chat, when one is configured. Best effort.
func (s *Server) notifyGroceryList(r *http.Request, householdID int64, plan mealplan.WeeklyPlan, items []grocery.Item) {
	if !s.notifier.Enabled() {
		return
	}

	hh, err := s.households.Get(r.Context(), householdID)
	if err != nil || hh == nil || hh.TelegramChatID == nil {
		return
	}

	text := "Grocery list for week of " + plan.WeekStart.Format("Jan 2") + "\n\n" + grocery.FormatList(items)
	if err := s.notifier.Send(*hh.TelegramChatID, text); err != nil {
		log.Printf("Warning: could not send grocery list notification: %v", err)
	}
}
