package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// SuggestionRequest narrows dinner suggestions to the household's tastes.
type SuggestionRequest struct {
	KnownRecipes []string
	Cuisine      string
	Count        int
}

// Suggestion is one proposed dinner idea.
type Suggestion struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// SuggestDinners asks the model for dinner ideas, preferring variety over
// the household's existing recipes.
func SuggestDinners(ctx context.Context, textGen TextGenerator, req SuggestionRequest) ([]Suggestion, error) {
	count := req.Count
	if count <= 0 {
		count = 5
	}

	var constraints strings.Builder
	if req.Cuisine != "" {
		fmt.Fprintf(&constraints, "Prefer %s cuisine.\n", req.Cuisine)
	}
	if len(req.KnownRecipes) > 0 {
		fmt.Fprintf(&constraints, "The household already cooks these, suggest different dishes: %s\n",
			strings.Join(req.KnownRecipes, ", "))
	}

	prompt := fmt.Sprintf(`
You are a family meal-planning assistant. Suggest %d weeknight dinner ideas suitable
for a household with kids.
%s
Return the output as a JSON object with the following structure:
{"suggestions": [{"name": "Dish Name", "reason": "Why it fits"}, ...]}

Ensure the output is valid JSON. Do not include any other text in your response.
`, count, constraints.String())

	resp, err := textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate dinner suggestions: %w", err)
	}

	var out struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(resp.Content), &out); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions response: %w. Response: %s", err, resp.Content)
	}
	return out.Suggestions, nil
}
