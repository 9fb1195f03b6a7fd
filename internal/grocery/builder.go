package grocery

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"household-hub/internal/mealplan"
	"household-hub/internal/recipe"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StapleEntryName labels the synthetic breakdown entry added when a staple
// item is merged into a recipe-sourced grocery item.
const StapleEntryName = "Staple"

// BreakdownEntry is one recipe's contribution to a grocery item, retained so
// the UI can show why an item is on the list.
type BreakdownEntry struct {
	RecipeID   int64  `json:"recipe_id,omitempty"`
	RecipeName string `json:"recipe_name"`
	Quantity   string `json:"quantity"`
	Unit       string `json:"unit"`
}

// Item is one consolidated row on a shopping list.
type Item struct {
	ID           int64            `json:"id,omitempty"`
	IngredientID int64            `json:"ingredient_id,omitempty"`
	Name         string           `json:"name"`
	Department   string           `json:"department"`
	StoreID      *int64           `json:"store_id,omitempty"`
	Quantity     string           `json:"quantity"`
	Unit         string           `json:"unit"`
	Checked      bool             `json:"checked"`
	Staple       bool             `json:"staple"`
	Breakdown    []BreakdownEntry `json:"breakdown,omitempty"`
}

// StapleItem is a grocery item carried over from a previous week's list,
// independent of any recipe. The ingredient may be referenced by id or, for
// manually-typed staples, by name only.
type StapleItem struct {
	IngredientID int64  `json:"ingredient_id,omitempty"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	Quantity     string `json:"quantity"`
	Unit         string `json:"unit"`
	StoreID      *int64 `json:"store_id,omitempty"`
}

// MealSource reads the meal slots of a weekly plan.
type MealSource interface {
	ListMeals(ctx context.Context, weeklyPlanID int64) ([]mealplan.Meal, error)
}

// RecipeSource reads recipe titles and ingredient rows for a set of recipes.
// Lookups are household-scoped; ids belonging to another household resolve
// to nothing.
type RecipeSource interface {
	Titles(ctx context.Context, householdID int64, recipeIDs []int64) (map[int64]string, error)
	Ingredients(ctx context.Context, householdID int64, recipeIDs []int64) ([]recipe.IngredientRow, error)
}

// Store persists generated grocery lists.
type Store interface {
	FindOrCreateList(ctx context.Context, weeklyPlanID int64) (int64, error)
	ReplaceItems(ctx context.Context, listID int64, items []Item) error
	FindOrCreateIngredientByName(ctx context.Context, householdID int64, name string) (int64, error)
}

// Config carries the policy knobs the two aggregation call sites of the
// source system disagreed on, made explicit.
type Config struct {
	Policy MixedUnitPolicy
	Locale string
}

// Builder turns a week's meals into a consolidated grocery list and
// reconciles it with staple carry-over items.
type Builder struct {
	meals    MealSource
	recipes  RecipeSource
	store    Store
	policy   MixedUnitPolicy
	collator *collate.Collator
	locks    *planLocks
}

// NewBuilder creates a Builder. An unparseable locale falls back to English.
func NewBuilder(meals MealSource, recipes RecipeSource, store Store, cfg Config) *Builder {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.English
	}
	return &Builder{
		meals:    meals,
		recipes:  recipes,
		store:    store,
		policy:   cfg.Policy,
		collator: collate.New(tag),
		locks:    newPlanLocks(),
	}
}

// Regenerate rebuilds and persists the grocery list for a weekly plan.
// Regeneration is destructive: all prior items for the plan's list are
// deleted and reinserted fresh, so checked state and manual edits made since
// the last generation are reset. Regenerations for the same plan are
// serialized; the delete+insert runs in one transaction and only after every
// read has succeeded.
func (b *Builder) Regenerate(ctx context.Context, plan mealplan.WeeklyPlan, staples []StapleItem) ([]Item, error) {
	unlock := b.locks.lock(plan.ID)
	defer unlock()

	meals, err := b.meals.ListMeals(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals for plan %d: %w", plan.ID, err)
	}

	items, err := b.compute(ctx, plan.HouseholdID, meals, staples)
	if err != nil {
		return nil, err
	}

	items = b.resolveIngredients(ctx, plan.HouseholdID, items)

	listID, err := b.store.FindOrCreateList(ctx, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find or create grocery list: %w", err)
	}
	if err := b.store.ReplaceItems(ctx, listID, items); err != nil {
		return nil, fmt.Errorf("failed to persist grocery items: %w", err)
	}
	return items, nil
}

// Preview aggregates a client-supplied meal list plus optional staples into
// a draft grocery list without persisting anything. It shares the canonical
// aggregation path with Regenerate.
func (b *Builder) Preview(ctx context.Context, householdID int64, meals []mealplan.Meal, staples []StapleItem) ([]Item, error) {
	return b.compute(ctx, householdID, meals, staples)
}

func (b *Builder) compute(ctx context.Context, householdID int64, meals []mealplan.Meal, staples []StapleItem) ([]Item, error) {
	recipeIDs := distinctRecipeIDs(meals)

	titles, err := b.recipes.Titles(ctx, householdID, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe titles: %w", err)
	}
	occurrences := CountOccurrences(meals, titles)

	rows, err := b.recipes.Ingredients(ctx, householdID, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recipe ingredients: %w", err)
	}

	type bucket struct {
		item   Item
		tuples []QuantityTuple
	}
	buckets := make(map[int64]*bucket)
	var order []int64

	for _, row := range rows {
		occ, ok := occurrences[row.RecipeID]
		if !ok || occ.Count == 0 {
			continue
		}

		bk, seen := buckets[row.IngredientID]
		if !seen {
			bk = &bucket{item: Item{
				IngredientID: row.IngredientID,
				Name:         row.IngredientName,
				Department:   row.Department,
				StoreID:      row.StoreID,
			}}
			buckets[row.IngredientID] = bk
			order = append(order, row.IngredientID)
		}

		unit := ""
		if row.Unit != nil {
			unit = *row.Unit
		}
		bk.tuples = append(bk.tuples, QuantityTuple{
			Quantity:    row.Quantity,
			Unit:        unit,
			Occurrences: occ.Count,
		})
		bk.item.Breakdown = append(bk.item.Breakdown, breakdownEntry(row, occ, unit))
	}

	items := make([]Item, 0, len(order))
	index := make(map[int64]int)
	for _, id := range order {
		bk := buckets[id]
		agg := AggregateQuantities(bk.tuples, b.policy)
		bk.item.Quantity = agg.Quantity
		bk.item.Unit = agg.Unit
		index[id] = len(items)
		items = append(items, bk.item)
	}

	items = mergeStaples(items, index, staples)

	sort.SliceStable(items, func(i, j int) bool {
		if c := b.collator.CompareString(items[i].Department, items[j].Department); c != 0 {
			return c < 0
		}
		return b.collator.CompareString(items[i].Name, items[j].Name) < 0
	})

	return items, nil
}

// resolveIngredients backfills ingredient ids for items that arrived with a
// name only (manually-typed staples). A failed lookup drops just that item
// with a warning; the rest of the batch continues.
func (b *Builder) resolveIngredients(ctx context.Context, householdID int64, items []Item) []Item {
	kept := items[:0]
	for _, item := range items {
		if item.IngredientID == 0 {
			if item.Name == "" {
				log.Printf("Warning: dropping grocery item with no ingredient reference or name")
				continue
			}
			id, err := b.store.FindOrCreateIngredientByName(ctx, householdID, item.Name)
			if err != nil {
				log.Printf("Warning: dropping grocery item %q: ingredient lookup failed: %v", item.Name, err)
				continue
			}
			item.IngredientID = id
		}
		kept = append(kept, item)
	}
	return kept
}

func breakdownEntry(row recipe.IngredientRow, occ Occurrence, unit string) BreakdownEntry {
	name := occ.Name
	if name == "" {
		name = row.RecipeName
	}
	if occ.Count > 1 {
		name = fmt.Sprintf("%s (×%d)", name, occ.Count)
	}

	entry := BreakdownEntry{RecipeID: row.RecipeID, RecipeName: name, Unit: NormalizeUnit(unit)}
	if row.Quantity != nil {
		entry.Quantity = FormatQuantity(*row.Quantity * float64(occ.Count))
	} else {
		// Amount-less lines count one per planned use.
		entry.Quantity = FormatQuantity(float64(occ.Count))
		entry.Unit = ""
	}
	return entry
}

// mergeStaples folds carry-over staples into the recipe-sourced items.
// Matching ingredient: mark staple and sum quantities when the units agree
// (including both empty); otherwise fall back to a concatenated display
// string and clear the unit. No match: the staple becomes its own item.
func mergeStaples(items []Item, index map[int64]int, staples []StapleItem) []Item {
	for _, st := range staples {
		pos, exists := -1, false
		if st.IngredientID != 0 {
			pos, exists = indexOf(index, st.IngredientID)
		}

		if !exists {
			items = append(items, Item{
				IngredientID: st.IngredientID,
				Name:         st.Name,
				Department:   st.Department,
				StoreID:      st.StoreID,
				Quantity:     st.Quantity,
				Unit:         NormalizeUnit(st.Unit),
				Staple:       true,
				Breakdown: []BreakdownEntry{{
					RecipeName: StapleEntryName,
					Quantity:   st.Quantity,
					Unit:       NormalizeUnit(st.Unit),
				}},
			})
			continue
		}

		item := &items[pos]
		item.Staple = true

		existingQty, errA := strconv.ParseFloat(item.Quantity, 64)
		stapleQty, errB := strconv.ParseFloat(st.Quantity, 64)
		if errA == nil && errB == nil && NormalizeUnit(item.Unit) == NormalizeUnit(st.Unit) {
			item.Quantity = FormatQuantity(existingQty + stapleQty)
			item.Unit = NormalizeUnit(item.Unit)
		} else {
			item.Quantity = joinQuantityUnit(item.Quantity, item.Unit) +
				" + " + joinQuantityUnit(st.Quantity, NormalizeUnit(st.Unit))
			item.Unit = ""
		}
		item.Breakdown = append(item.Breakdown, BreakdownEntry{
			RecipeName: StapleEntryName,
			Quantity:   st.Quantity,
			Unit:       NormalizeUnit(st.Unit),
		})
	}
	return items
}

func indexOf(index map[int64]int, id int64) (int, bool) {
	pos, ok := index[id]
	return pos, ok
}

func distinctRecipeIDs(meals []mealplan.Meal) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, m := range meals {
		if m.RecipeID == nil {
			continue
		}
		if _, ok := seen[*m.RecipeID]; ok {
			continue
		}
		seen[*m.RecipeID] = struct{}{}
		ids = append(ids, *m.RecipeID)
	}
	return ids
}

// FormatList renders items as plain text grouped by department, for
// notification delivery.
func FormatList(items []Item) string {
	var sb strings.Builder
	lastDept := "\x00"
	for _, item := range items {
		if item.Department != lastDept {
			if lastDept != "\x00" {
				sb.WriteString("\n")
			}
			dept := item.Department
			if dept == "" {
				dept = "Other"
			}
			sb.WriteString(dept + ":\n")
			lastDept = item.Department
		}
		line := "- " + item.Name
		if item.Quantity != "" {
			line += ": " + joinQuantityUnit(item.Quantity, item.Unit)
		}
		if item.Staple {
			line += " (staple)"
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}
