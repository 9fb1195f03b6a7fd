package grocery

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	grocerydb "household-hub/internal/grocery/db"
)

// Repository handles persistence of grocery lists and items.
type Repository struct {
	queries *grocerydb.Queries
	db      *sql.DB
}

// NewRepository creates a new grocery repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: grocerydb.New(d),
		db:      d,
	}
}

// FindOrCreateList returns the grocery list id for a weekly plan, creating
// the list lazily on first generation.
func (r *Repository) FindOrCreateList(ctx context.Context, weeklyPlanID int64) (int64, error) {
	list, err := r.queries.GetGroceryListByPlanID(ctx, weeklyPlanID)
	if err == nil {
		return list.ID, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to get grocery list for plan %d: %w", weeklyPlanID, err)
	}

	id, err := r.queries.InsertGroceryList(ctx, weeklyPlanID)
	if err != nil {
		return 0, fmt.Errorf("failed to create grocery list for plan %d: %w", weeklyPlanID, err)
	}
	return id, nil
}

// ReplaceItems deletes all prior items for a list and inserts the new batch
// in a single transaction. An item without an ingredient id is skipped with
// a warning rather than failing the batch.
func (r *Repository) ReplaceItems(ctx context.Context, listID int64, items []Item) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	if err := qtx.DeleteGroceryItemsByListID(ctx, listID); err != nil {
		return fmt.Errorf("failed to delete existing grocery items: %w", err)
	}

	for _, item := range items {
		if item.IngredientID == 0 {
			log.Printf("Warning: skipping grocery item %q with unresolved ingredient", item.Name)
			continue
		}

		breakdownJSON, err := json.Marshal(item.Breakdown)
		if err != nil {
			return fmt.Errorf("failed to marshal breakdown for %q: %w", item.Name, err)
		}

		if err := qtx.InsertGroceryItem(ctx, grocerydb.InsertGroceryItemParams{
			GroceryListID: listID,
			IngredientID:  item.IngredientID,
			Quantity:      item.Quantity,
			Unit:          item.Unit,
			Checked:       item.Checked,
			Staple:        item.Staple,
			Breakdown:     string(breakdownJSON),
		}); err != nil {
			return fmt.Errorf("failed to insert grocery item %q: %w", item.Name, err)
		}
	}

	return tx.Commit()
}

// ListItems returns the persisted items of a plan's grocery list.
// A plan with no list yet yields an empty slice.
func (r *Repository) ListItems(ctx context.Context, weeklyPlanID int64) ([]Item, error) {
	list, err := r.queries.GetGroceryListByPlanID(ctx, weeklyPlanID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []Item{}, nil
		}
		return nil, fmt.Errorf("failed to get grocery list: %w", err)
	}

	rows, err := r.queries.ListGroceryItemsByListID(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list grocery items: %w", err)
	}

	items := make([]Item, 0, len(rows))
	for _, row := range rows {
		var breakdown []BreakdownEntry
		if err := json.Unmarshal([]byte(row.Breakdown), &breakdown); err != nil {
			log.Printf("Warning: failed to unmarshal breakdown for item %d: %v", row.ID, err)
		}
		items = append(items, Item{
			ID:           row.ID,
			IngredientID: row.IngredientID,
			Name:         row.Name,
			Department:   row.Department,
			StoreID:      nullableID(row.StoreID),
			Quantity:     row.Quantity,
			Unit:         row.Unit,
			Checked:      row.Checked,
			Staple:       row.Staple,
			Breakdown:    breakdown,
		})
	}
	return items, nil
}

// ListStaples returns the staple-flagged items of the household's plan for
// the given week, for carry-over into the next generation.
func (r *Repository) ListStaples(ctx context.Context, householdID int64, weekStart time.Time) ([]StapleItem, error) {
	rows, err := r.queries.ListStapleItemsByHouseholdWeek(ctx, grocerydb.ListStapleItemsByHouseholdWeekParams{
		HouseholdID: householdID,
		WeekStart:   weekStart.Format("2006-01-02"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list staple items: %w", err)
	}

	staples := make([]StapleItem, 0, len(rows))
	for _, row := range rows {
		staples = append(staples, StapleItem{
			IngredientID: row.IngredientID,
			Name:         row.Name,
			Department:   row.Department,
			Quantity:     row.Quantity,
			Unit:         row.Unit,
			StoreID:      nullableID(row.StoreID),
		})
	}
	return staples, nil
}

// SetItemChecked toggles an item's checked flag, scoped to the household.
// Returns false when no such item belongs to the household.
func (r *Repository) SetItemChecked(ctx context.Context, householdID, itemID int64, checked bool) (bool, error) {
	affected, err := r.queries.SetGroceryItemChecked(ctx, grocerydb.SetGroceryItemCheckedParams{
		Checked:     checked,
		ID:          itemID,
		HouseholdID: householdID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to update grocery item %d: %w", itemID, err)
	}
	return affected > 0, nil
}

// FindOrCreateIngredientByName resolves an ingredient by case-insensitive
// name lookup, inserting a new lower-cased row when absent.
func (r *Repository) FindOrCreateIngredientByName(ctx context.Context, householdID int64, name string) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, fmt.Errorf("ingredient name is empty")
	}

	ing, err := r.queries.GetIngredientByName(ctx, grocerydb.GetIngredientByNameParams{
		HouseholdID: householdID,
		Name:        name,
	})
	if err == nil {
		return ing.ID, nil
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to look up ingredient %q: %w", name, err)
	}

	id, err := r.queries.InsertIngredient(ctx, grocerydb.InsertIngredientParams{
		HouseholdID: householdID,
		Name:        strings.ToLower(name),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create ingredient %q: %w", name, err)
	}
	return id, nil
}

func nullableID(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	id := v.Int64
	return &id
}
