package recipe

import "time"

// Recipe is a household's stored recipe.
type Recipe struct {
	ID          int64           `json:"id"`
	HouseholdID int64           `json:"household_id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Cuisine     string          `json:"cuisine"`
	Rating      int             `json:"rating"`
	SourceURL   string          `json:"source_url,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	Ingredients []IngredientRow `json:"ingredients,omitempty"`
}

// Ingredient is deduplicated by name within a household (case-insensitive).
// Department drives grocery-aisle grouping; StoreID is the preferred store.
type Ingredient struct {
	ID          int64  `json:"id"`
	HouseholdID int64  `json:"household_id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	StoreID     *int64 `json:"store_id,omitempty"`
}

// IngredientRow is one (ingredient, quantity, unit) line of a recipe, joined
// with the ingredient's metadata. Quantity is nil for amount-less lines like
// "salt to taste"; Unit is nil when the quantity is a bare count.
type IngredientRow struct {
	RecipeID       int64    `json:"recipe_id"`
	RecipeName     string   `json:"recipe_name,omitempty"`
	IngredientID   int64    `json:"ingredient_id"`
	IngredientName string   `json:"ingredient_name"`
	Department     string   `json:"department"`
	StoreID        *int64   `json:"store_id,omitempty"`
	Quantity       *float64 `json:"quantity"`
	Unit           *string  `json:"unit"`
	Notes          string   `json:"notes,omitempty"`
}

// NewIngredientLine is the input shape for creating or updating a recipe's
// ingredient list: the ingredient is referenced by name and resolved (or
// created) against the household's deduplicated ingredient table.
type NewIngredientLine struct {
	Name       string   `json:"name"`
	Department string   `json:"department,omitempty"`
	Quantity   *float64 `json:"quantity"`
	Unit       *string  `json:"unit"`
	Notes      string   `json:"notes,omitempty"`
}
