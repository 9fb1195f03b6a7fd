package grocery

import (
	"household-hub/internal/mealplan"
)

// Occurrence is the number of meal slots in a week referencing one recipe,
// with the recipe's display name carried along for the breakdown.
type Occurrence struct {
	Count int
	Name  string
}

// CountOccurrences maps recipe id to its occurrence count for a week's
// meals. The count is per meal slot, not per distinct day. Meals without a
// recipe reference (custom-named meals) are excluded and never contribute
// grocery items.
func CountOccurrences(meals []mealplan.Meal, titles map[int64]string) map[int64]Occurrence {
	occurrences := make(map[int64]Occurrence)
	for _, m := range meals {
		if m.RecipeID == nil {
			continue
		}
		occ := occurrences[*m.RecipeID]
		occ.Count++
		occ.Name = titles[*m.RecipeID]
		occurrences[*m.RecipeID] = occ
	}
	return occurrences
}
