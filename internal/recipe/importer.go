package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"household-hub/internal/llm"

	"github.com/PuerkitoBio/goquery"
)

// Importer fetches a recipe page and extracts structured ingredient lines.
type Importer struct {
	httpClient *http.Client
	textGen    llm.TextGenerator
}

// ImportedRecipe is the draft produced from a URL, ready to be reviewed and
// saved as a household recipe.
type ImportedRecipe struct {
	Name        string              `json:"name"`
	Category    string              `json:"category"`
	Cuisine     string              `json:"cuisine"`
	SourceURL   string              `json:"source_url"`
	Ingredients []NewIngredientLine `json:"ingredients"`
}

// NewImporter creates a new Importer instance.
func NewImporter(textGen llm.TextGenerator) *Importer {
	return &Importer{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		textGen:    textGen,
	}
}

// ImportURL fetches the URL and extracts a draft recipe using the model.
// Nothing is persisted; the caller saves the draft once the user confirms.
func (i *Importer) ImportURL(ctx context.Context, url string) (*ImportedRecipe, error) {
	content, err := i.fetchAndCleanHTML(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch content: %w", err)
	}

	prompt := fmt.Sprintf(`
You are a recipe extraction expert. Extract the recipe details from the following page text.
Split each ingredient into a numeric quantity, a unit, and the ingredient name. Use null for
the quantity when the ingredient has no amount (e.g. "salt to taste") and null for the unit
when the quantity is a bare count (e.g. "2 eggs").

Return the result strictly as a JSON object with this structure:
{
  "name": "Recipe Title",
  "category": "e.g. Dinner",
  "cuisine": "e.g. Italian",
  "ingredients": [
    {"name": "flour", "quantity": 2, "unit": "cup", "notes": ""},
    {"name": "eggs", "quantity": 2, "unit": null, "notes": ""},
    {"name": "salt", "quantity": null, "unit": null, "notes": "to taste"}
  ]
}

Ensure the output is valid JSON. Do not include any other text in your response.

Page content:
%s
`, content)

	resp, err := i.textGen.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("ai extraction failed: %w", err)
	}

	var imported ImportedRecipe
	if err := json.Unmarshal([]byte(resp.Content), &imported); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w. Response: %s", err, resp.Content)
	}
	imported.SourceURL = url

	if imported.Name == "" || len(imported.Ingredients) == 0 {
		return nil, fmt.Errorf("no recipe found at %s", url)
	}

	return &imported, nil
}

func (i *Importer) fetchAndCleanHTML(url string) (string, error) {
	resp, err := i.httpClient.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	// Remove noise to save LLM tokens
	doc.Find("script, style, nav, footer, iframe, ads, .ads, #ads").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	return doc.Find("body").Text(), nil
}
