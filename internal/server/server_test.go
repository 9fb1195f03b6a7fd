package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"household-hub/internal/allowance"
	"household-hub/internal/calendar"
	"household-hub/internal/config"
	"household-hub/internal/database"
	"household-hub/internal/grocery"
	"household-hub/internal/household"
	"household-hub/internal/llm"
	"household-hub/internal/mealplan"
	"household-hub/internal/metrics"
	"household-hub/internal/notify"
	"household-hub/internal/recipe"
)

type stubTextGenerator struct {
	response string
}

func (s *stubTextGenerator) GenerateContent(_ context.Context, _ string) (llm.ContentResponse, error) {
	return llm.ContentResponse{Content: s.response}, nil
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
		JWTSecret:    "test-secret",
		SortLocale:   "en",
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	householdRepo := household.NewRepository(db.SQL)
	recipeRepo := recipe.NewRepository(db.SQL)
	planRepo := mealplan.NewRepository(db.SQL)
	groceryRepo := grocery.NewRepository(db.SQL)
	textGen := &stubTextGenerator{response: `{"department": "Pantry"}`}
	notifier, err := notify.NewNotifier("")
	if err != nil {
		t.Fatalf("Failed to create notifier: %v", err)
	}

	return New(Deps{
		Config:     cfg,
		Households: householdRepo,
		Tokens:     household.NewTokenIssuer(cfg.JWTSecret),
		Recipes:    recipeRepo,
		Importer:   recipe.NewImporter(textGen),
		Plans:      planRepo,
		Grocery:    groceryRepo,
		Builder: grocery.NewBuilder(planRepo, recipeRepo, groceryRepo, grocery.Config{
			Locale: cfg.SortLocale,
		}),
		Allowances: allowance.NewRepository(db.SQL),
		Calendar:   calendar.NewSyncer(cfg, calendar.NewTokenRepository(db.SQL)),
		Notifier:   notifier,
		TextGen:    textGen,
		Metrics:    metrics.NewStore(db.SQL),
	}).Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, h http.Handler) string {
	t.Helper()
	token, _ := registerHousehold(t, h, "Test House", "alex@example.com")
	return token
}

func registerHousehold(t *testing.T, h http.Handler, name, email string) (string, int64) {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
		"household_name": name,
		"name":           "Alex",
		"email":          email,
		"password":       "hunter2hunter2",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("register = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token    string `json:"token"`
		MemberID int64  `json:"member_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode register response: %v", err)
	}
	return resp.Token, resp.MemberID
}

func TestAuthFlow(t *testing.T) {
	h := newTestServer(t)
	register(t, h)

	t.Run("login with correct password", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "alex@example.com",
			"password": "hunter2hunter2",
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("login = %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("login with wrong password", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/auth/login", "", map[string]string{
			"email":    "alex@example.com",
			"password": "wrong",
		})
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("login = %d, want 401", rec.Code)
		}
	})

	t.Run("protected route without token", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodGet, "/api/recipes", "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("recipes without token = %d, want 401", rec.Code)
		}
	})

	t.Run("short password rejected", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/auth/register", "", map[string]string{
			"household_name": "Other House",
			"name":           "Sam",
			"email":          "sam@example.com",
			"password":       "short",
		})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("register = %d, want 400", rec.Code)
		}
	})
}

func TestGroceryListOverHTTP(t *testing.T) {
	h := newTestServer(t)
	token := register(t, h)

	// Create a recipe with ingredient lines.
	rec := doJSON(t, h, http.MethodPost, "/api/recipes", token, map[string]interface{}{
		"name": "Spaghetti al Pomodoro",
		"ingredients": []map[string]interface{}{
			{"name": "spaghetti", "quantity": 200, "unit": "g"},
			{"name": "tomato", "quantity": 2},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create recipe = %d: %s", rec.Code, rec.Body.String())
	}
	var created recipe.Recipe
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("Failed to decode recipe: %v", err)
	}

	// The stubbed categorizer assigned the department.
	if len(created.Ingredients) == 0 || created.Ingredients[0].Department != "Pantry" {
		t.Errorf("expected categorized ingredients, got %v", created.Ingredients)
	}

	// Create a plan and schedule the recipe twice.
	rec = doJSON(t, h, http.MethodPost, "/api/weekly-plans", token, map[string]string{
		"week_start": "2025-06-02",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create plan = %d: %s", rec.Code, rec.Body.String())
	}
	var plan mealplan.WeeklyPlan
	if err := json.Unmarshal(rec.Body.Bytes(), &plan); err != nil {
		t.Fatalf("Failed to decode plan: %v", err)
	}

	for _, day := range []int{1, 4} {
		rec = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/weekly-plans/%d/meals", plan.ID), token,
			map[string]interface{}{"day": day, "recipe_id": created.ID})
		if rec.Code != http.StatusCreated {
			t.Fatalf("add meal = %d: %s", rec.Code, rec.Body.String())
		}
	}

	// Regenerate and verify aggregation.
	rec = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/weekly-plans/%d/regenerate-grocery-list", plan.ID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("regenerate = %d: %s", rec.Code, rec.Body.String())
	}
	var items []grocery.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("Failed to decode items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	for _, it := range items {
		switch it.Name {
		case "spaghetti":
			if it.Quantity != "400" || it.Unit != "g" {
				t.Errorf("spaghetti = %q %q, want 400 g", it.Quantity, it.Unit)
			}
		case "tomato":
			if it.Quantity != "4" {
				t.Errorf("tomato = %q, want 4", it.Quantity)
			}
		default:
			t.Errorf("unexpected item %q", it.Name)
		}
	}

	// The stored list round-trips.
	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/weekly-plans/%d/grocery-list", plan.ID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get list = %d: %s", rec.Code, rec.Body.String())
	}
	items = nil
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("Failed to decode items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 stored items, got %d", len(items))
	}

	// Check one item off.
	rec = doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/grocery-items/%d/checked", items[0].ID), token,
		map[string]bool{"checked": true})
	if rec.Code != http.StatusOK {
		t.Fatalf("check item = %d: %s", rec.Code, rec.Body.String())
	}

	// A list for a plan the household does not own is a 404.
	rec = doJSON(t, h, http.MethodGet, "/api/weekly-plans/999/grocery-list", token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign plan = %d, want 404", rec.Code)
	}
}

func TestPreviewOverHTTP(t *testing.T) {
	h := newTestServer(t)
	token := register(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/weekly-plans/generate-grocery-list", token, map[string]interface{}{
		"meals": []map[string]interface{}{},
		"staples": []map[string]interface{}{
			{"name": "milk", "department": "Dairy", "quantity": "1", "unit": "l"},
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("preview = %d: %s", rec.Code, rec.Body.String())
	}
	var items []grocery.Item
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("Failed to decode items: %v", err)
	}
	if len(items) != 1 || items[0].Name != "milk" || !items[0].Staple {
		t.Fatalf("unexpected preview: %v", items)
	}
}

func TestMembersAndAllowance(t *testing.T) {
	h := newTestServer(t)
	token := register(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/members", token, map[string]interface{}{
		"name":                   "Kid",
		"email":                  "kid@example.com",
		"password":               "kidpassword",
		"role":                   "kid",
		"weekly_allowance_cents": 500,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add member = %d: %s", rec.Code, rec.Body.String())
	}
	var kid household.Member
	if err := json.Unmarshal(rec.Body.Bytes(), &kid); err != nil {
		t.Fatalf("Failed to decode member: %v", err)
	}

	rec = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/members/%d/allowance/entries", kid.ID), token,
		map[string]interface{}{"amount_cents": 500, "memo": "weekly"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add entry = %d: %s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/members/%d/allowance", kid.ID), token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get allowance = %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		BalanceCents int64 `json:"balance_cents"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode allowance: %v", err)
	}
	if resp.BalanceCents != 500 {
		t.Errorf("balance = %d, want 500", resp.BalanceCents)
	}

	// Zero-amount entries are rejected.
	rec = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/members/%d/allowance/entries", kid.ID), token,
		map[string]interface{}{"amount_cents": 0})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("zero entry = %d, want 400", rec.Code)
	}
}

func TestRecipesAreIsolatedBetweenHouseholds(t *testing.T) {
	h := newTestServer(t)
	tokenA, _ := registerHousehold(t, h, "House A", "a@example.com")
	tokenB, _ := registerHousehold(t, h, "House B", "b@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/recipes", tokenA, map[string]interface{}{
		"name": "Secret Family Sauce",
		"ingredients": []map[string]interface{}{
			{"name": "secret spice", "quantity": 1, "unit": "tsp"},
		},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create recipe = %d: %s", rec.Code, rec.Body.String())
	}
	var secret recipe.Recipe
	if err := json.Unmarshal(rec.Body.Bytes(), &secret); err != nil {
		t.Fatalf("Failed to decode recipe: %v", err)
	}

	t.Run("preview ignores foreign recipe ids", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/weekly-plans/generate-grocery-list", tokenB, map[string]interface{}{
			"meals": []map[string]interface{}{
				{"day": 1, "recipe_id": secret.ID},
			},
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("preview = %d: %s", rec.Code, rec.Body.String())
		}
		var items []grocery.Item
		if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
			t.Fatalf("Failed to decode items: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("expected no items from a foreign recipe, got %v", items)
		}
	})

	t.Run("meal rejects foreign recipe id", func(t *testing.T) {
		rec := doJSON(t, h, http.MethodPost, "/api/weekly-plans", tokenB, map[string]string{
			"week_start": "2025-06-02",
		})
		if rec.Code != http.StatusCreated {
			t.Fatalf("create plan = %d: %s", rec.Code, rec.Body.String())
		}
		var plan mealplan.WeeklyPlan
		if err := json.Unmarshal(rec.Body.Bytes(), &plan); err != nil {
			t.Fatalf("Failed to decode plan: %v", err)
		}

		rec = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/weekly-plans/%d/meals", plan.ID), tokenB,
			map[string]interface{}{"day": 1, "recipe_id": secret.ID})
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("add meal with foreign recipe = %d, want 400", rec.Code)
		}
	})
}

func TestMealRejectsForeignCook(t *testing.T) {
	h := newTestServer(t)
	_, memberA := registerHousehold(t, h, "House A", "a@example.com")
	tokenB, _ := registerHousehold(t, h, "House B", "b@example.com")

	rec := doJSON(t, h, http.MethodPost, "/api/weekly-plans", tokenB, map[string]string{
		"week_start": "2025-06-02",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create plan = %d: %s", rec.Code, rec.Body.String())
	}
	var plan mealplan.WeeklyPlan
	if err := json.Unmarshal(rec.Body.Bytes(), &plan); err != nil {
		t.Fatalf("Failed to decode plan: %v", err)
	}

	rec = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/weekly-plans/%d/meals", plan.ID), tokenB,
		map[string]interface{}{"day": 2, "custom_name": "Leftovers", "cook_member_id": memberA})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("add meal with foreign cook = %d, want 400", rec.Code)
	}
}

func TestMealCalendarOwner(t *testing.T) {
	cook := int64(9)
	if got := mealCalendarOwner(mealplan.Meal{CookMemberID: &cook}, 4); got != 9 {
		t.Errorf("expected the assigned cook to own the event, got member %d", got)
	}
	if got := mealCalendarOwner(mealplan.Meal{}, 4); got != 4 {
		t.Errorf("expected the caller to own the event when no cook is set, got member %d", got)
	}
}

func TestCalendarStatusAndDisconnect(t *testing.T) {
	h := newTestServer(t)
	token := register(t, h)

	rec := doJSON(t, h, http.MethodGet, "/api/calendar/status", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("calendar status = %d: %s", rec.Code, rec.Body.String())
	}
	var status struct {
		Connected bool `json:"connected"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("Failed to decode status: %v", err)
	}
	if status.Connected {
		t.Error("expected connected=false without a linked calendar")
	}

	// Without OAuth credentials the disconnect endpoint is unavailable.
	rec = doJSON(t, h, http.MethodDelete, "/api/calendar/connect", token, nil)
	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("calendar disconnect = %d, want 501", rec.Code)
	}
}
