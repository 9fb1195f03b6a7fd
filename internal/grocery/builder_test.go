package grocery

import (
	"context"
	"fmt"
	"testing"

	"household-hub/internal/mealplan"
	"household-hub/internal/recipe"
)

// --- Mocks ---

type mockMealSource struct {
	meals []mealplan.Meal
	err   error
}

func (m *mockMealSource) ListMeals(_ context.Context, _ int64) ([]mealplan.Meal, error) {
	return m.meals, m.err
}

type mockRecipeSource struct {
	titles map[int64]string
	rows   []recipe.IngredientRow
	err    error
}

func (m *mockRecipeSource) Titles(_ context.Context, _ int64, _ []int64) (map[int64]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.titles, nil
}

func (m *mockRecipeSource) Ingredients(_ context.Context, _ int64, _ []int64) ([]recipe.IngredientRow, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.rows, nil
}

type mockStore struct {
	listID       int64
	replaceCalls [][]Item
	nextID       int64
	created      map[string]int64
	replaceErr   error
}

func newMockStore() *mockStore {
	return &mockStore{listID: 77, nextID: 1000, created: map[string]int64{}}
}

func (m *mockStore) FindOrCreateList(_ context.Context, _ int64) (int64, error) {
	return m.listID, nil
}

func (m *mockStore) ReplaceItems(_ context.Context, _ int64, items []Item) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.replaceCalls = append(m.replaceCalls, items)
	return nil
}

func (m *mockStore) FindOrCreateIngredientByName(_ context.Context, _ int64, name string) (int64, error) {
	if id, ok := m.created[name]; ok {
		return id, nil
	}
	m.nextID++
	m.created[name] = m.nextID
	return m.nextID, nil
}

// --- Fixtures ---

const (
	pastaID = int64(1)
	saladID = int64(2)
)

func weekFixture() (*mockMealSource, *mockRecipeSource) {
	id := func(v int64) *int64 { return &v }

	meals := &mockMealSource{meals: []mealplan.Meal{
		{ID: 1, Day: 1, RecipeID: id(pastaID)},
		{ID: 2, Day: 3, RecipeID: id(pastaID)},
		{ID: 3, Day: 5, RecipeID: id(saladID)},
		{ID: 4, Day: 6, CustomName: "Leftovers"},
	}}

	tbsp := "tbsp"
	g := "g"
	recipes := &mockRecipeSource{
		titles: map[int64]string{pastaID: "Spaghetti al Pomodoro", saladID: "Tomato Salad"},
		rows: []recipe.IngredientRow{
			{RecipeID: pastaID, RecipeName: "Spaghetti al Pomodoro", IngredientID: 11, IngredientName: "spaghetti", Department: "Pantry", Quantity: qty(200), Unit: &g},
			{RecipeID: pastaID, RecipeName: "Spaghetti al Pomodoro", IngredientID: 12, IngredientName: "tomato", Department: "Produce", Quantity: qty(2)},
			{RecipeID: pastaID, RecipeName: "Spaghetti al Pomodoro", IngredientID: 13, IngredientName: "olive oil", Department: "Pantry", Quantity: qty(1), Unit: &tbsp},
			{RecipeID: saladID, RecipeName: "Tomato Salad", IngredientID: 12, IngredientName: "tomato", Department: "Produce", Quantity: qty(1)},
			{RecipeID: saladID, RecipeName: "Tomato Salad", IngredientID: 13, IngredientName: "olive oil", Department: "Pantry", Quantity: qty(2), Unit: &tbsp},
			{RecipeID: saladID, RecipeName: "Tomato Salad", IngredientID: 14, IngredientName: "salt", Department: "Pantry", Quantity: nil},
		},
	}
	return meals, recipes
}

func itemByName(t *testing.T, items []Item, name string) Item {
	t.Helper()
	for _, it := range items {
		if it.Name == name {
			return it
		}
	}
	t.Fatalf("item %q not found in %v", name, items)
	return Item{}
}

// --- Tests ---

func TestRegenerateConsolidatesWeek(t *testing.T) {
	meals, recipes := weekFixture()
	store := newMockStore()
	b := NewBuilder(meals, recipes, store, Config{Locale: "en"})

	plan := mealplan.WeeklyPlan{ID: 5, HouseholdID: 9}
	items, err := b.Regenerate(context.Background(), plan, nil)
	if err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d: %v", len(items), items)
	}

	spaghetti := itemByName(t, items, "spaghetti")
	if spaghetti.Quantity != "400" || spaghetti.Unit != "g" {
		t.Errorf("spaghetti = %q %q, want 400 g", spaghetti.Quantity, spaghetti.Unit)
	}

	tomato := itemByName(t, items, "tomato")
	if tomato.Quantity != "5" || tomato.Unit != "" {
		t.Errorf("tomato = %q %q, want 5 with empty unit", tomato.Quantity, tomato.Unit)
	}

	oil := itemByName(t, items, "olive oil")
	if oil.Quantity != "4" || oil.Unit != "tbsp" {
		t.Errorf("olive oil = %q %q, want 4 tbsp", oil.Quantity, oil.Unit)
	}

	salt := itemByName(t, items, "salt")
	if salt.Quantity != "1" || salt.Unit != "" {
		t.Errorf("salt = %q %q, want 1 with empty unit", salt.Quantity, salt.Unit)
	}

	// The pasta contribution shows its doubled occurrence in the breakdown.
	found := false
	for _, entry := range spaghetti.Breakdown {
		if entry.RecipeName == "Spaghetti al Pomodoro (×2)" && entry.Quantity == "400" {
			found = true
		}
	}
	if !found {
		t.Errorf("spaghetti breakdown missing doubled entry: %v", spaghetti.Breakdown)
	}

	if len(store.replaceCalls) != 1 {
		t.Fatalf("expected 1 persist, got %d", len(store.replaceCalls))
	}
}

func TestRegenerateSortsByDepartmentThenName(t *testing.T) {
	meals, recipes := weekFixture()
	b := NewBuilder(meals, recipes, newMockStore(), Config{Locale: "en"})

	items, err := b.Regenerate(context.Background(), mealplan.WeeklyPlan{ID: 5}, nil)
	if err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	var got []string
	for _, it := range items {
		got = append(got, it.Department+"/"+it.Name)
	}
	want := []string{"Pantry/olive oil", "Pantry/salt", "Pantry/spaghetti", "Produce/tomato"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sort order = %v, want %v", got, want)
		}
	}
}

func TestRegenerateIsDestructive(t *testing.T) {
	meals, recipes := weekFixture()
	store := newMockStore()
	b := NewBuilder(meals, recipes, store, Config{Locale: "en"})
	plan := mealplan.WeeklyPlan{ID: 5}

	first, err := b.Regenerate(context.Background(), plan, nil)
	if err != nil {
		t.Fatalf("first Regenerate failed: %v", err)
	}
	second, err := b.Regenerate(context.Background(), plan, nil)
	if err != nil {
		t.Fatalf("second Regenerate failed: %v", err)
	}

	// Same inputs, same output; every run rewrites the full list.
	if len(store.replaceCalls) != 2 {
		t.Fatalf("expected 2 persists, got %d", len(store.replaceCalls))
	}
	if fmt.Sprint(first) != fmt.Sprint(second) {
		t.Errorf("regeneration not idempotent:\nfirst:  %v\nsecond: %v", first, second)
	}
}

func TestStapleMergesIntoMatchingItem(t *testing.T) {
	meals, recipes := weekFixture()
	b := NewBuilder(meals, recipes, newMockStore(), Config{Locale: "en"})

	staples := []StapleItem{
		{IngredientID: 13, Name: "olive oil", Department: "Pantry", Quantity: "1", Unit: "Tbsp"},
	}
	items, err := b.Regenerate(context.Background(), mealplan.WeeklyPlan{ID: 5}, staples)
	if err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	oil := itemByName(t, items, "olive oil")
	if oil.Quantity != "5" || oil.Unit != "tbsp" {
		t.Errorf("merged staple = %q %q, want 5 tbsp", oil.Quantity, oil.Unit)
	}
	if !oil.Staple {
		t.Error("merged item should be flagged as staple")
	}

	last := oil.Breakdown[len(oil.Breakdown)-1]
	if last.RecipeName != StapleEntryName {
		t.Errorf("expected trailing staple breakdown entry, got %v", oil.Breakdown)
	}
}

func TestStapleUnitMismatchConcatenates(t *testing.T) {
	meals, recipes := weekFixture()
	b := NewBuilder(meals, recipes, newMockStore(), Config{Locale: "en"})

	staples := []StapleItem{
		{IngredientID: 13, Name: "olive oil", Department: "Pantry", Quantity: "1", Unit: "bottle"},
	}
	items, err := b.Regenerate(context.Background(), mealplan.WeeklyPlan{ID: 5}, staples)
	if err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	oil := itemByName(t, items, "olive oil")
	if oil.Quantity != "4 tbsp + 1 bottle" || oil.Unit != "" {
		t.Errorf("mismatched staple = %q %q, want concatenated display", oil.Quantity, oil.Unit)
	}
}

func TestStapleWithoutMatchBecomesOwnItem(t *testing.T) {
	meals, recipes := weekFixture()
	store := newMockStore()
	b := NewBuilder(meals, recipes, store, Config{Locale: "en"})

	staples := []StapleItem{
		{Name: "milk", Department: "Dairy", Quantity: "1", Unit: "l"},
	}
	items, err := b.Regenerate(context.Background(), mealplan.WeeklyPlan{ID: 5, HouseholdID: 9}, staples)
	if err != nil {
		t.Fatalf("Regenerate failed: %v", err)
	}

	milk := itemByName(t, items, "milk")
	if !milk.Staple || milk.Quantity != "1" || milk.Unit != "l" {
		t.Errorf("unexpected staple item: %+v", milk)
	}
	// A name-only staple gets an ingredient created for it before persisting.
	if milk.IngredientID == 0 {
		t.Error("expected ingredient id to be resolved for name-only staple")
	}
	if _, ok := store.created["milk"]; !ok {
		t.Error("expected milk ingredient to be created")
	}
}

func TestPreviewDoesNotPersist(t *testing.T) {
	meals, recipes := weekFixture()
	store := newMockStore()
	b := NewBuilder(meals, recipes, store, Config{Locale: "en"})

	items, err := b.Preview(context.Background(), 1, meals.meals, []StapleItem{
		{Name: "coffee", Department: "Beverages", Quantity: "1", Unit: "bag"},
	})
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(items))
	}
	if len(store.replaceCalls) != 0 {
		t.Error("Preview must not write to the store")
	}
	if len(store.created) != 0 {
		t.Error("Preview must not create ingredients")
	}
}

func TestRegenerateAbortsOnReadFailure(t *testing.T) {
	meals, _ := weekFixture()
	recipes := &mockRecipeSource{err: fmt.Errorf("db closed")}
	store := newMockStore()
	b := NewBuilder(meals, recipes, store, Config{Locale: "en"})

	_, err := b.Regenerate(context.Background(), mealplan.WeeklyPlan{ID: 5}, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	// Nothing may be written when a read failed.
	if len(store.replaceCalls) != 0 {
		t.Error("store must stay untouched after a read failure")
	}
}

func TestFormatListGroupsByDepartment(t *testing.T) {
	items := []Item{
		{Name: "olive oil", Department: "Pantry", Quantity: "4", Unit: "tbsp"},
		{Name: "spaghetti", Department: "Pantry", Quantity: "400", Unit: "g"},
		{Name: "tomato", Department: "Produce", Quantity: "5", Staple: true},
	}
	got := FormatList(items)
	want := "Pantry:\n- olive oil: 4 tbsp\n- spaghetti: 400 g\n\nProduce:\n- tomato: 5 (staple)\n"
	if got != want {
		t.Errorf("FormatList:\ngot:  %q\nwant: %q", got, want)
	}
}
