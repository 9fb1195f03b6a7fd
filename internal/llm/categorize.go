package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Departments a grocery item can be filed under. The model must pick one.
var departments = []string{
	"Produce", "Dairy", "Meat", "Seafood", "Bakery", "Frozen",
	"Pantry", "Beverages", "Snacks", "Household", "Other",
}

// CategorizeDepartment asks the model which grocery department an ingredient
// belongs to. Unknown or malformed answers fall back to "Other".
func CategorizeDepartment(ctx context.Context, textGen TextGenerator, ingredientName string) (string, error) {
	prompt := fmt.Sprintf(`
You are a grocery categorization assistant. Given an ingredient name, pick the single
best matching store department from this list: %s.

Return the output as a JSON object with the following structure:
{"department": "Department Name"}

Ensure the output is valid JSON. Do not include any other text in your response.

Ingredient: %q
`, strings.Join(departments, ", "), ingredientName)

	resp, err := textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to categorize ingredient %q: %w", ingredientName, err)
	}

	var out struct {
		Department string `json:"department"`
	}
	if err := json.Unmarshal([]byte(resp.Content), &out); err != nil {
		return "", fmt.Errorf("failed to parse categorization response: %w. Response: %s", err, resp.Content)
	}

	for _, d := range departments {
		if strings.EqualFold(out.Department, d) {
			return d, nil
		}
	}
	return "Other", nil
}
