package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"household-hub/internal/mealplan"
)

type planRequest struct {
	WeekStart string `json:"week_start"` // YYYY-MM-DD, snapped to its Monday
	Notes     string `json:"notes"`
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	plans, err := s.plans.ListPlans(r.Context(), session.HouseholdID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, plans)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	var req planRequest
	if !decodeBody(w, r, &req) {
		return
	}

	weekStart := mealplan.NextWeekStart(time.Now().UTC())
	if req.WeekStart != "" {
		parsed, err := time.Parse("2006-01-02", req.WeekStart)
		if err != nil {
			writeError(w, http.StatusBadRequest, "week_start must be YYYY-MM-DD")
			return
		}
		weekStart = parsed
	}

	id, err := s.plans.CreatePlan(r.Context(), mealplan.WeeklyPlan{
		HouseholdID: session.HouseholdID,
		WeekStart:   weekStart,
		Notes:       req.Notes,
		CreatedBy:   session.MemberID,
	})
	if errors.Is(err, mealplan.ErrWeekTaken) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeServerError(w, err)
		return
	}

	plan, err := s.plans.GetPlan(r.Context(), session.HouseholdID, id)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

// planResponse bundles a plan with its meal slots.
type planResponse struct {
	mealplan.WeeklyPlan
	Meals []mealplan.Meal `json:"meals"`
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	plan, err := s.plans.GetPlan(r.Context(), session.HouseholdID, id)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if plan == nil {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}

	meals, err := s.plans.ListMeals(r.Context(), plan.ID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, planResponse{WeeklyPlan: *plan, Meals: meals})
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.plans.DeletePlan(r.Context(), session.HouseholdID, id)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "plan not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type mealRequest struct {
	Day          int    `json:"day"`
	RecipeID     *int64 `json:"recipe_id"`
	CustomName   string `json:"custom_name"`
	CookMemberID *int64 `json:"cook_member_id"`
}

func (s *Server) handleAddMeal(w http.ResponseWriter, r *http.Request) {
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

	var req mealRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !s.validateMealRefs(w, r, req) {
		return
	}

	meal := mealplan.Meal{
		WeeklyPlanID: planID,
		Day:          req.Day,
		RecipeID:     req.RecipeID,
		CustomName:   req.CustomName,
		CookMemberID: req.CookMemberID,
	}
	id, err := s.plans.AddMeal(r.Context(), meal)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	meal.ID = id

	s.syncMealToCalendar(r, *plan, &meal)

	writeJSON(w, http.StatusCreated, meal)
}

func (s *Server) handleUpdateMeal(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	planID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	mealID, ok := pathID(w, r, "mealID")
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

	existing, err := s.plans.GetMeal(r.Context(), planID, mealID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "meal not found")
		return
	}

	var req mealRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !s.validateMealRefs(w, r, req) {
		return
	}

	meal := mealplan.Meal{
		ID:              mealID,
		WeeklyPlanID:    planID,
		Day:             req.Day,
		RecipeID:        req.RecipeID,
		CustomName:      req.CustomName,
		CookMemberID:    req.CookMemberID,
		CalendarEventID: existing.CalendarEventID,
	}
	updated, err := s.plans.UpdateMeal(r.Context(), meal)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "meal not found")
		return
	}

	s.syncMealToCalendar(r, *plan, &meal)

	writeJSON(w, http.StatusOK, meal)
}

func (s *Server) handleDeleteMeal(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	planID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	mealID, ok := pathID(w, r, "mealID")
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

	meal, err := s.plans.GetMeal(r.Context(), planID, mealID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if meal == nil {
		writeError(w, http.StatusNotFound, "meal not found")
		return
	}

	deleted, err := s.plans.DeleteMeal(r.Context(), planID, mealID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "meal not found")
		return
	}

	if s.calendar != nil && meal.CalendarEventID != "" {
		if err := s.calendar.DeleteEvent(r.Context(), mealCalendarOwner(*meal, session.MemberID), meal.CalendarEventID); err != nil {
			log.Printf("Warning: could not delete calendar event for meal %d: %v", mealID, err)
		}
	}

	writeJSON(w, http.StatusNoContent, nil)
}

// validateMealRefs rejects meal payloads that reference a recipe outside the
// caller's household or a cook who is not one of its members. Writes the
// error response itself and reports whether the payload is usable.
func (s *Server) validateMealRefs(w http.ResponseWriter, r *http.Request, req mealRequest) bool {
	session := sessionFrom(r)

	if req.RecipeID == nil && req.CustomName == "" {
		writeError(w, http.StatusBadRequest, "either recipe_id or custom_name is required")
		return false
	}
	if req.RecipeID != nil {
		rec, err := s.recipes.Get(r.Context(), session.HouseholdID, *req.RecipeID)
		if err != nil {
			writeServerError(w, err)
			return false
		}
		if rec == nil {
			writeError(w, http.StatusBadRequest, "recipe not found")
			return false
		}
	}
	if req.CookMemberID != nil {
		cook, err := s.households.GetMember(r.Context(), *req.CookMemberID)
		if err != nil {
			writeServerError(w, err)
			return false
		}
		if cook == nil || cook.HouseholdID != session.HouseholdID {
			writeError(w, http.StatusBadRequest, "cook_member_id is not a household member")
			return false
		}
	}
	return true
}

// mealCalendarOwner picks the member whose Google Calendar a meal belongs
// to: the assigned cook when there is one, otherwise the caller.
func mealCalendarOwner(meal mealplan.Meal, callerID int64) int64 {
	if meal.CookMemberID != nil {
		return *meal.CookMemberID
	}
	return callerID
}

// syncMealToCalendar mirrors the meal into the cook's Google Calendar.
// Best effort: failures are logged and never fail the request.
func (s *Server) syncMealToCalendar(r *http.Request, plan mealplan.WeeklyPlan, meal *mealplan.Meal) {
	if s.calendar == nil || !s.calendar.Enabled() {
		return
	}
	session := sessionFrom(r)

	title := meal.CustomName
	if meal.RecipeID != nil {
		rec, err := s.recipes.Get(r.Context(), session.HouseholdID, *meal.RecipeID)
		if err == nil && rec != nil {
			title = rec.Name
		}
	}
	if title == "" {
		return
	}

	eventID, err := s.calendar.SyncMeal(r.Context(), mealCalendarOwner(*meal, session.MemberID), plan, *meal, title)
	if err != nil {
		log.Printf("Warning: calendar sync failed for meal %d: %v", meal.ID, err)
		return
	}
	if eventID == "" || eventID == meal.CalendarEventID {
		return
	}

	meal.CalendarEventID = eventID
	if err := s.plans.SetMealCalendarEvent(r.Context(), meal.ID, eventID); err != nil {
		log.Printf("Warning: could not store calendar event id for meal %d: %v", meal.ID, err)
	}
}
