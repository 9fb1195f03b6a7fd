package mealplan

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	plandb "household-hub/internal/mealplan/db"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrWeekTaken is returned when a household already has a plan for the week.
var ErrWeekTaken = fmt.Errorf("a plan already exists for that week")

// Repository is a database-backed repository for weekly plans and meals.
type Repository struct {
	queries *plandb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: plandb.New(d),
		db:      d,
	}
}

// CreatePlan inserts a weekly plan. The week start is truncated to its
// Monday; one plan per household per week.
func (r *Repository) CreatePlan(ctx context.Context, plan WeeklyPlan) (int64, error) {
	// Stored as a plain YYYY-MM-DD string so SQL date comparisons work
	// regardless of how the driver encodes time.Time values.
	id, err := r.queries.InsertWeeklyPlan(ctx, plandb.InsertWeeklyPlanParams{
		HouseholdID: plan.HouseholdID,
		WeekStart:   WeekStartFor(plan.WeekStart).Format("2006-01-02"),
		Notes:       plan.Notes,
		CreatedBy:   plan.CreatedBy,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrWeekTaken
		}
		return 0, fmt.Errorf("failed to insert weekly plan: %w", err)
	}
	return id, nil
}

// GetPlan retrieves a plan by id, or nil when the household has no such plan.
func (r *Repository) GetPlan(ctx context.Context, householdID, id int64) (*WeeklyPlan, error) {
	dbPlan, err := r.queries.GetWeeklyPlanByID(ctx, plandb.GetWeeklyPlanByIDParams{ID: id, HouseholdID: householdID})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get weekly plan %d: %w", id, err)
	}
	plan := planFromDB(dbPlan)
	return &plan, nil
}

// ListPlans retrieves a household's plans, most recent week first.
func (r *Repository) ListPlans(ctx context.Context, householdID int64) ([]WeeklyPlan, error) {
	dbPlans, err := r.queries.ListWeeklyPlansByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list weekly plans: %w", err)
	}
	plans := make([]WeeklyPlan, 0, len(dbPlans))
	for _, p := range dbPlans {
		plans = append(plans, planFromDB(p))
	}
	return plans, nil
}

// DeletePlan removes a plan; meals and the grocery list cascade.
func (r *Repository) DeletePlan(ctx context.Context, householdID, id int64) (bool, error) {
	affected, err := r.queries.DeleteWeeklyPlan(ctx, plandb.DeleteWeeklyPlanParams{ID: id, HouseholdID: householdID})
	if err != nil {
		return false, fmt.Errorf("failed to delete weekly plan %d: %w", id, err)
	}
	return affected > 0, nil
}

// AddMeal inserts a meal slot into a plan.
func (r *Repository) AddMeal(ctx context.Context, m Meal) (int64, error) {
	if m.Day < 1 || m.Day > 7 {
		return 0, fmt.Errorf("day must be between 1 and 7, got %d", m.Day)
	}
	id, err := r.queries.InsertMeal(ctx, plandb.InsertMealParams{
		WeeklyPlanID: m.WeeklyPlanID,
		Day:          int64(m.Day),
		RecipeID:     toNullInt64(m.RecipeID),
		CustomName:   m.CustomName,
		CookMemberID: toNullInt64(m.CookMemberID),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert meal: %w", err)
	}
	return id, nil
}

// UpdateMeal rewrites a meal slot. Returns false when the plan has no such meal.
func (r *Repository) UpdateMeal(ctx context.Context, m Meal) (bool, error) {
	if m.Day < 1 || m.Day > 7 {
		return false, fmt.Errorf("day must be between 1 and 7, got %d", m.Day)
	}
	affected, err := r.queries.UpdateMeal(ctx, plandb.UpdateMealParams{
		Day:          int64(m.Day),
		RecipeID:     toNullInt64(m.RecipeID),
		CustomName:   m.CustomName,
		CookMemberID: toNullInt64(m.CookMemberID),
		ID:           m.ID,
		WeeklyPlanID: m.WeeklyPlanID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to update meal %d: %w", m.ID, err)
	}
	return affected > 0, nil
}

// GetMeal retrieves one meal slot, or nil when absent.
func (r *Repository) GetMeal(ctx context.Context, planID, mealID int64) (*Meal, error) {
	dbMeal, err := r.queries.GetMealByID(ctx, plandb.GetMealByIDParams{ID: mealID, WeeklyPlanID: planID})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get meal %d: %w", mealID, err)
	}
	m := mealFromDB(dbMeal)
	return &m, nil
}

// DeleteMeal removes a meal slot. Returns false when the plan has no such meal.
func (r *Repository) DeleteMeal(ctx context.Context, planID, mealID int64) (bool, error) {
	affected, err := r.queries.DeleteMeal(ctx, plandb.DeleteMealParams{ID: mealID, WeeklyPlanID: planID})
	if err != nil {
		return false, fmt.Errorf("failed to delete meal %d: %w", mealID, err)
	}
	return affected > 0, nil
}

// ListMeals retrieves all meal slots of a plan, ordered by day.
func (r *Repository) ListMeals(ctx context.Context, weeklyPlanID int64) ([]Meal, error) {
	dbMeals, err := r.queries.ListMealsByPlanID(ctx, weeklyPlanID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals for plan %d: %w", weeklyPlanID, err)
	}
	meals := make([]Meal, 0, len(dbMeals))
	for _, m := range dbMeals {
		meals = append(meals, mealFromDB(m))
	}
	return meals, nil
}

// SetMealCalendarEvent records the external calendar event id for a meal.
func (r *Repository) SetMealCalendarEvent(ctx context.Context, mealID int64, eventID string) error {
	return r.queries.SetMealCalendarEvent(ctx, plandb.SetMealCalendarEventParams{
		CalendarEventID: eventID,
		ID:              mealID,
	})
}

func isUniqueViolation(err error) bool {
	if serr, ok := err.(*sqlite.Error); ok {
		code := serr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

func toNullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func planFromDB(p plandb.WeeklyPlan) WeeklyPlan {
	weekStart, _ := time.Parse("2006-01-02", p.WeekStart)
	return WeeklyPlan{
		ID:          p.ID,
		HouseholdID: p.HouseholdID,
		WeekStart:   weekStart,
		Notes:       p.Notes,
		CreatedBy:   p.CreatedBy,
		CreatedAt:   p.CreatedAt,
	}
}

func mealFromDB(m plandb.Meal) Meal {
	meal := Meal{
		ID:              m.ID,
		WeeklyPlanID:    m.WeeklyPlanID,
		Day:             int(m.Day),
		CustomName:      m.CustomName,
		CalendarEventID: m.CalendarEventID,
	}
	if m.RecipeID.Valid {
		v := m.RecipeID.Int64
		meal.RecipeID = &v
	}
	if m.CookMemberID.Valid {
		v := m.CookMemberID.Int64
		meal.CookMemberID = &v
	}
	return meal
}
