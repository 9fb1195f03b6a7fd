package mealplan

import "time"

// WeeklyPlan is one household's meal schedule for a 7-day period starting on
// a Monday. One plan per household per week.
type WeeklyPlan struct {
	ID          int64     `json:"id"`
	HouseholdID int64     `json:"household_id"`
	WeekStart   time.Time `json:"week_start"`
	Notes       string    `json:"notes"`
	CreatedBy   int64     `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// Meal is a single planned dinner slot. A day may hold zero or more meals.
// Either RecipeID or CustomName identifies what is cooked; custom-named
// meals contribute no grocery items.
type Meal struct {
	ID              int64  `json:"id"`
	WeeklyPlanID    int64  `json:"weekly_plan_id"`
	Day             int    `json:"day"` // 1 (Monday) through 7 (Sunday)
	RecipeID        *int64 `json:"recipe_id,omitempty"`
	CustomName      string `json:"custom_name,omitempty"`
	CookMemberID    *int64 `json:"cook_member_id,omitempty"`
	CalendarEventID string `json:"calendar_event_id,omitempty"`
}

// NextWeekStart returns the Monday strictly after t, truncated to midnight UTC.
func NextWeekStart(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	daysAhead := (int(time.Monday) - int(t.Weekday()) + 7) % 7
	if daysAhead == 0 {
		daysAhead = 7
	}
	return t.AddDate(0, 0, daysAhead)
}

// WeekStartFor returns the Monday of the week containing t, truncated to
// midnight UTC.
func WeekStartFor(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	daysBack := (int(t.Weekday()) - int(time.Monday) + 7) % 7
	return t.AddDate(0, 0, -daysBack)
}

// MealDate resolves a meal's calendar date from its plan's week start.
func MealDate(plan WeeklyPlan, m Meal) time.Time {
	return plan.WeekStart.AddDate(0, 0, m.Day-1)
}
