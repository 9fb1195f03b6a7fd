package recipe

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	recipedb "household-hub/internal/recipe/db"
)

// Repository is a database-backed repository for recipes and ingredients.
type Repository struct {
	queries *recipedb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: recipedb.New(d),
		db:      d,
	}
}

// Create inserts a recipe with its ingredient lines in one transaction.
// Ingredient names are resolved against the household's deduplicated table.
func (r *Repository) Create(ctx context.Context, rec Recipe, lines []NewIngredientLine) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	id, err := qtx.InsertRecipe(ctx, recipedb.InsertRecipeParams{
		HouseholdID: rec.HouseholdID,
		Name:        rec.Name,
		Category:    rec.Category,
		Cuisine:     rec.Cuisine,
		Rating:      int64(rec.Rating),
		SourceUrl:   rec.SourceURL,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe: %w", err)
	}

	if err := insertLines(ctx, qtx, rec.HouseholdID, id, lines); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit recipe: %w", err)
	}
	return id, nil
}

// Update rewrites a recipe's fields and, when lines is non-nil, replaces its
// ingredient list.
func (r *Repository) Update(ctx context.Context, rec Recipe, lines []NewIngredientLine) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	affected, err := qtx.UpdateRecipe(ctx, recipedb.UpdateRecipeParams{
		Name:        rec.Name,
		Category:    rec.Category,
		Cuisine:     rec.Cuisine,
		Rating:      int64(rec.Rating),
		ID:          rec.ID,
		HouseholdID: rec.HouseholdID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to update recipe: %w", err)
	}
	if affected == 0 {
		return false, nil
	}

	if lines != nil {
		if err := qtx.DeleteRecipeIngredients(ctx, rec.ID); err != nil {
			return false, fmt.Errorf("failed to clear recipe ingredients: %w", err)
		}
		if err := insertLines(ctx, qtx, rec.HouseholdID, rec.ID, lines); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit recipe update: %w", err)
	}
	return true, nil
}

// Get retrieves a recipe with its ingredient rows,
// or nil when the household has no such recipe.
func (r *Repository) Get(ctx context.Context, householdID, id int64) (*Recipe, error) {
	dbRec, err := r.queries.GetRecipeByID(ctx, recipedb.GetRecipeByIDParams{ID: id, HouseholdID: householdID})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get recipe %d: %w", id, err)
	}

	rows, err := r.Ingredients(ctx, householdID, []int64{id})
	if err != nil {
		return nil, err
	}

	rec := fromDB(dbRec)
	rec.Ingredients = rows
	return &rec, nil
}

// List retrieves all of a household's recipes, without ingredient detail.
func (r *Repository) List(ctx context.Context, householdID int64) ([]Recipe, error) {
	dbRecs, err := r.queries.ListRecipesByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]Recipe, 0, len(dbRecs))
	for _, dbRec := range dbRecs {
		recipes = append(recipes, fromDB(dbRec))
	}
	return recipes, nil
}

// Delete removes a recipe; its ingredient rows cascade.
// Returns false when the household has no such recipe.
func (r *Repository) Delete(ctx context.Context, householdID, id int64) (bool, error) {
	affected, err := r.queries.DeleteRecipe(ctx, recipedb.DeleteRecipeParams{ID: id, HouseholdID: householdID})
	if err != nil {
		return false, fmt.Errorf("failed to delete recipe %d: %w", id, err)
	}
	return affected > 0, nil
}

// Titles maps recipe ids to display names. Recipes of other households are
// silently absent from the result.
func (r *Repository) Titles(ctx context.Context, householdID int64, recipeIDs []int64) (map[int64]string, error) {
	if len(recipeIDs) == 0 {
		return map[int64]string{}, nil
	}
	rows, err := r.queries.GetRecipeTitles(ctx, recipedb.GetRecipeTitlesParams{HouseholdID: householdID, Ids: recipeIDs})
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe titles: %w", err)
	}
	titles := make(map[int64]string, len(rows))
	for _, row := range rows {
		titles[row.ID] = row.Name
	}
	return titles, nil
}

// Ingredients fetches the ingredient rows of a set of recipes, joined with
// ingredient metadata. Only the household's own recipes produce rows.
func (r *Repository) Ingredients(ctx context.Context, householdID int64, recipeIDs []int64) ([]IngredientRow, error) {
	if len(recipeIDs) == 0 {
		return []IngredientRow{}, nil
	}
	dbRows, err := r.queries.ListRecipeIngredients(ctx, recipedb.ListRecipeIngredientsParams{HouseholdID: householdID, RecipeIds: recipeIDs})
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe ingredients: %w", err)
	}

	rows := make([]IngredientRow, 0, len(dbRows))
	for _, row := range dbRows {
		out := IngredientRow{
			RecipeID:       row.RecipeID,
			RecipeName:     row.RecipeName,
			IngredientID:   row.IngredientID,
			IngredientName: row.IngredientName,
			Department:     row.Department,
			Notes:          row.Notes,
		}
		if row.Quantity.Valid {
			v := row.Quantity.Float64
			out.Quantity = &v
		}
		if row.Unit.Valid {
			u := row.Unit.String
			out.Unit = &u
		}
		if row.StoreID.Valid {
			s := row.StoreID.Int64
			out.StoreID = &s
		}
		rows = append(rows, out)
	}
	return rows, nil
}

// IngredientExists reports whether the household already has an ingredient
// with this name (case-insensitive).
func (r *Repository) IngredientExists(ctx context.Context, householdID int64, name string) (bool, error) {
	_, err := r.queries.GetIngredientByName(ctx, recipedb.GetIngredientByNameParams{
		HouseholdID: householdID,
		Name:        strings.TrimSpace(name),
	})
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up ingredient %q: %w", name, err)
	}
	return true, nil
}

// FindOrCreateIngredient resolves an ingredient by case-insensitive name,
// inserting a lower-cased row with the given department when absent.
func (r *Repository) FindOrCreateIngredient(ctx context.Context, householdID int64, name, department string) (int64, error) {
	return findOrCreateIngredient(ctx, r.queries, householdID, name, department)
}

func insertLines(ctx context.Context, qtx *recipedb.Queries, householdID, recipeID int64, lines []NewIngredientLine) error {
	for _, line := range lines {
		ingredientID, err := findOrCreateIngredient(ctx, qtx, householdID, line.Name, line.Department)
		if err != nil {
			return err
		}

		params := recipedb.InsertRecipeIngredientParams{
			RecipeID:     recipeID,
			IngredientID: ingredientID,
			Notes:        line.Notes,
		}
		if line.Quantity != nil {
			params.Quantity = sql.NullFloat64{Float64: *line.Quantity, Valid: true}
		}
		if line.Unit != nil {
			params.Unit = sql.NullString{String: *line.Unit, Valid: true}
		}
		if err := qtx.InsertRecipeIngredient(ctx, params); err != nil {
			return fmt.Errorf("failed to insert ingredient line %q: %w", line.Name, err)
		}
	}
	return nil
}

func findOrCreateIngredient(ctx context.Context, q *recipedb.Queries, householdID int64, name, department string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("ingredient name is empty")
	}

	ing, err := q.GetIngredientByName(ctx, recipedb.GetIngredientByNameParams{
		HouseholdID: householdID,
		Name:        name,
	})
	if err == nil {
		return ing.ID, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up ingredient %q: %w", name, err)
	}

	id, err := q.InsertIngredient(ctx, recipedb.InsertIngredientParams{
		HouseholdID: householdID,
		Name:        strings.ToLower(name),
		Department:  department,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create ingredient %q: %w", name, err)
	}
	return id, nil
}

func fromDB(dbRec recipedb.Recipe) Recipe {
	return Recipe{
		ID:          dbRec.ID,
		HouseholdID: dbRec.HouseholdID,
		Name:        dbRec.Name,
		Category:    dbRec.Category,
		Cuisine:     dbRec.Cuisine,
		Rating:      int(dbRec.Rating),
		SourceURL:   dbRec.SourceUrl,
		CreatedAt:   dbRec.CreatedAt,
	}
}
