package grocery

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"household-hub/internal/database"
	"household-hub/internal/household"
	"household-hub/internal/mealplan"
	"household-hub/internal/recipe"
)

// fixtureDB spins up a fresh migrated database with one household, one
// two-recipe plan, and returns everything the grocery flow needs.
type fixture struct {
	householdID int64
	plan        mealplan.WeeklyPlan
	plans       *mealplan.Repository
	recipes     *recipe.Repository
	grocery     *Repository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	households := household.NewRepository(db.SQL)
	householdID, memberID, err := households.CreateWithOwner(ctx, "Test House", household.Member{
		Name:         "Alex",
		Email:        "alex@example.com",
		PasswordHash: "not-a-real-hash",
		Role:         household.RoleAdult,
	})
	if err != nil {
		t.Fatalf("Failed to create household: %v", err)
	}

	recipes := recipe.NewRepository(db.SQL)
	g := "g"
	tbsp := "tbsp"
	pastaID, err := recipes.Create(ctx, recipe.Recipe{HouseholdID: householdID, Name: "Spaghetti al Pomodoro"},
		[]recipe.NewIngredientLine{
			{Name: "spaghetti", Department: "Pantry", Quantity: qty(200), Unit: &g},
			{Name: "olive oil", Department: "Pantry", Quantity: qty(1), Unit: &tbsp},
			{Name: "salt", Department: "Pantry"},
		})
	if err != nil {
		t.Fatalf("Failed to create recipe: %v", err)
	}

	plans := mealplan.NewRepository(db.SQL)
	weekStart := time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC)
	planID, err := plans.CreatePlan(ctx, mealplan.WeeklyPlan{
		HouseholdID: householdID,
		WeekStart:   weekStart,
		CreatedBy:   memberID,
	})
	if err != nil {
		t.Fatalf("Failed to create plan: %v", err)
	}
	plan, err := plans.GetPlan(ctx, householdID, planID)
	if err != nil || plan == nil {
		t.Fatalf("Failed to load plan: %v", err)
	}

	for _, day := range []int{1, 4} {
		if _, err := plans.AddMeal(ctx, mealplan.Meal{WeeklyPlanID: planID, Day: day, RecipeID: &pastaID}); err != nil {
			t.Fatalf("Failed to add meal: %v", err)
		}
	}

	return &fixture{
		householdID: householdID,
		plan:        *plan,
		plans:       plans,
		recipes:     recipes,
		grocery:     NewRepository(db.SQL),
	}
}

func TestRegenerateAgainstDatabase(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := NewBuilder(f.plans, f.recipes, f.grocery, Config{Locale: "en"})
	staples := []StapleItem{{Name: "milk", Department: "Dairy", Quantity: "1", Unit: "l"}}

	if _, err := b.Regenerate(ctx, f.plan, staples); err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	items, err := f.grocery.ListItems(ctx, f.plan.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d: %v", len(items), items)
	}

	spaghetti := itemByName(t, items, "spaghetti")
	if spaghetti.Quantity != "400" || spaghetti.Unit != "g" {
		t.Errorf("spaghetti = %q %q, want 400 g", spaghetti.Quantity, spaghetti.Unit)
	}
	if len(spaghetti.Breakdown) == 0 {
		t.Error("expected breakdown to survive the round trip")
	}

	milk := itemByName(t, items, "milk")
	if !milk.Staple {
		t.Error("expected milk to be flagged as staple")
	}

	// Staple carry-over query finds the staple by the plan's week.
	carried, err := f.grocery.ListStaples(ctx, f.householdID, f.plan.WeekStart)
	if err != nil {
		t.Fatalf("ListStaples failed: %v", err)
	}
	if len(carried) != 1 || carried[0].Name != "milk" {
		t.Fatalf("expected milk staple carried over, got %v", carried)
	}
}

func TestRegenerateResetsCheckedState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := NewBuilder(f.plans, f.recipes, f.grocery, Config{Locale: "en"})
	if _, err := b.Regenerate(ctx, f.plan, nil); err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	items, err := f.grocery.ListItems(ctx, f.plan.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}

	found, err := f.grocery.SetItemChecked(ctx, f.householdID, items[0].ID, true)
	if err != nil || !found {
		t.Fatalf("SetItemChecked failed: found=%v err=%v", found, err)
	}

	items, err = f.grocery.ListItems(ctx, f.plan.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	checked := 0
	for _, it := range items {
		if it.Checked {
			checked++
		}
	}
	if checked != 1 {
		t.Fatalf("expected exactly 1 checked item, got %d", checked)
	}

	// Regeneration wipes the list, checked state included.
	if _, err := b.Regenerate(ctx, f.plan, nil); err != nil {
		t.Fatalf("second Regenerate failed: %v", err)
	}
	items, err = f.grocery.ListItems(ctx, f.plan.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	for _, it := range items {
		if it.Checked {
			t.Errorf("item %q still checked after regeneration", it.Name)
		}
	}
}

func TestSetItemCheckedScopedToHousehold(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	b := NewBuilder(f.plans, f.recipes, f.grocery, Config{Locale: "en"})
	if _, err := b.Regenerate(ctx, f.plan, nil); err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}
	items, err := f.grocery.ListItems(ctx, f.plan.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}

	found, err := f.grocery.SetItemChecked(ctx, f.householdID+1, items[0].ID, true)
	if err != nil {
		t.Fatalf("SetItemChecked failed: %v", err)
	}
	if found {
		t.Error("another household must not be able to check this item")
	}
}

