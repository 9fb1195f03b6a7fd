package grocery

import (
	"math"
	"strconv"
	"strings"
)

// MixedUnitPolicy decides what happens when one ingredient accumulates
// quantities in more than one unit.
type MixedUnitPolicy int

const (
	// MixedUnitJoin concatenates every per-unit total into a single display
	// string joined by " + ". Nothing is lost; the quantity becomes a
	// formatted string and the unit field is cleared.
	MixedUnitJoin MixedUnitPolicy = iota

	// MixedUnitFirst keeps the total of the first unit seen and discards the
	// rest. Kept for comparison; the builder always uses MixedUnitJoin.
	MixedUnitFirst
)

// QuantityTuple is one recipe's contribution to an ingredient:
// quantity (nil when the recipe lists the ingredient without an amount,
// e.g. "salt to taste"), the unit as written, and how many meal slots in the
// week use that recipe.
type QuantityTuple struct {
	Quantity    *float64
	Unit        string
	Occurrences int
}

// Aggregated is the consolidated result for one ingredient.
// Quantity is always a formatted display string.
type Aggregated struct {
	Quantity string
	Unit     string
}

// NormalizeUnit lower-cases and trims a unit string so "Cups" and " cups "
// accumulate into the same bucket.
func NormalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// FormatQuantity renders a total without a decimal point when it is whole,
// otherwise rounded to 2 decimal places with trailing zeros stripped.
func FormatQuantity(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded == math.Trunc(rounded) {
		return strconv.FormatFloat(math.Trunc(rounded), 'f', 0, 64)
	}
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// AggregateQuantities consolidates all of an ingredient's tuples into one
// (quantity, unit) result.
//
// If no tuple carries a quantity, the result counts one per planned
// occurrence with an empty unit: the shopper still needs a reminder to buy
// it once per planned use. Otherwise quantities are scaled by occurrences
// and accumulated per normalized unit; a single distinct unit yields a plain
// total, multiple units are resolved per the policy.
func AggregateQuantities(tuples []QuantityTuple, policy MixedUnitPolicy) Aggregated {
	withQuantity := make([]QuantityTuple, 0, len(tuples))
	occurrenceTotal := 0
	for _, t := range tuples {
		occurrenceTotal += t.Occurrences
		if t.Quantity != nil {
			withQuantity = append(withQuantity, t)
		}
	}

	if len(withQuantity) == 0 {
		return Aggregated{Quantity: FormatQuantity(float64(occurrenceTotal)), Unit: ""}
	}

	totals := make(map[string]float64)
	var unitOrder []string
	for _, t := range withQuantity {
		unit := NormalizeUnit(t.Unit)
		if _, seen := totals[unit]; !seen {
			unitOrder = append(unitOrder, unit)
		}
		totals[unit] += *t.Quantity * float64(t.Occurrences)
	}

	if len(unitOrder) == 1 {
		unit := unitOrder[0]
		return Aggregated{Quantity: FormatQuantity(totals[unit]), Unit: unit}
	}

	if policy == MixedUnitFirst {
		unit := unitOrder[0]
		return Aggregated{Quantity: FormatQuantity(totals[unit]), Unit: unit}
	}

	parts := make([]string, 0, len(unitOrder))
	for _, unit := range unitOrder {
		parts = append(parts, joinQuantityUnit(FormatQuantity(totals[unit]), unit))
	}
	return Aggregated{Quantity: strings.Join(parts, " + "), Unit: ""}
}

func joinQuantityUnit(quantity, unit string) string {
	return strings.TrimSpace(quantity + " " + unit)
}
