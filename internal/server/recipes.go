package server

import (
	"log"
	"net/http"
	"strings"

	"household-hub/internal/llm"
	"household-hub/internal/recipe"
)

type recipeRequest struct {
	Name        string                     `json:"name"`
	Category    string                     `json:"category"`
	Cuisine     string                     `json:"cuisine"`
	Rating      int                        `json:"rating"`
	SourceURL   string                     `json:"source_url"`
	Ingredients []recipe.NewIngredientLine `json:"ingredients"`
}

func (s *Server) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	recipes, err := s.recipes.List(r.Context(), session.HouseholdID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (s *Server) handleCreateRecipe(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	var req recipeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "recipe name is required")
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "rating must be between 0 and 5")
		return
	}

	lines := s.categorizeNewIngredients(r, session.HouseholdID, req.Ingredients)

	id, err := s.recipes.Create(r.Context(), recipe.Recipe{
		HouseholdID: session.HouseholdID,
		Name:        req.Name,
		Category:    req.Category,
		Cuisine:     req.Cuisine,
		Rating:      req.Rating,
		SourceURL:   req.SourceURL,
	}, lines)
	if err != nil {
		writeServerError(w, err)
		return
	}

	created, err := s.recipes.Get(r.Context(), session.HouseholdID, id)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetRecipe(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rec, err := s.recipes.Get(r.Context(), session.HouseholdID, id)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleUpdateRecipe(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req recipeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "recipe name is required")
		return
	}

	lines := s.categorizeNewIngredients(r, session.HouseholdID, req.Ingredients)

	updated, err := s.recipes.Update(r.Context(), recipe.Recipe{
		ID:          id,
		HouseholdID: session.HouseholdID,
		Name:        req.Name,
		Category:    req.Category,
		Cuisine:     req.Cuisine,
		Rating:      req.Rating,
		SourceURL:   req.SourceURL,
	}, lines)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if !updated {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}

	rec, err := s.recipes.Get(r.Context(), session.HouseholdID, id)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteRecipe(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.recipes.Delete(r.Context(), session.HouseholdID, id)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "recipe not found")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type importRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleImportRecipe(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !strings.HasPrefix(req.URL, "http://") && !strings.HasPrefix(req.URL, "https://") {
		writeError(w, http.StatusBadRequest, "url must be absolute")
		return
	}

	imported, err := s.importer.ImportURL(r.Context(), req.URL)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, imported)
}

// categorizeNewIngredients backfills a department for lines that would create
// a new ingredient without one. Categorization failures fall back to "Other"
// so a flaky model never blocks a save.
func (s *Server) categorizeNewIngredients(r *http.Request, householdID int64, lines []recipe.NewIngredientLine) []recipe.NewIngredientLine {
	for i, line := range lines {
		if line.Department != "" {
			continue
		}
		exists, err := s.recipes.IngredientExists(r.Context(), householdID, line.Name)
		if err != nil || exists {
			continue
		}

		dept, err := llm.CategorizeDepartment(r.Context(), s.gen("ingredient_categorizer"), line.Name)
		if err != nil {
			log.Printf("Warning: could not categorize %q: %v", line.Name, err)
			dept = "Other"
		}
		lines[i].Department = dept
	}
	return lines
}
