package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"household-hub/internal/allowance"
	"household-hub/internal/calendar"
	"household-hub/internal/config"
	"household-hub/internal/grocery"
	"household-hub/internal/household"
	"household-hub/internal/llm"
	"household-hub/internal/mealplan"
	"household-hub/internal/metrics"
	"household-hub/internal/notify"
	"household-hub/internal/recipe"
)

// Server wires the HTTP surface to the domain repositories.
type Server struct {
	cfg        *config.Config
	households *household.Repository
	tokens     *household.TokenIssuer
	recipes    *recipe.Repository
	importer   *recipe.Importer
	plans      *mealplan.Repository
	grocery    *grocery.Repository
	builder    *grocery.Builder
	allowances *allowance.Repository
	calendar   *calendar.Syncer
	notifier   *notify.Notifier
	textGen    llm.TextGenerator
	metrics    *metrics.Store
}

// Deps bundles everything the server needs.
type Deps struct {
	Config     *config.Config
	Households *household.Repository
	Tokens     *household.TokenIssuer
	Recipes    *recipe.Repository
	Importer   *recipe.Importer
	Plans      *mealplan.Repository
	Grocery    *grocery.Repository
	Builder    *grocery.Builder
	Allowances *allowance.Repository
	Calendar   *calendar.Syncer
	Notifier   *notify.Notifier
	TextGen    llm.TextGenerator
	Metrics    *metrics.Store
}

func New(d Deps) *Server {
	return &Server{
		cfg:        d.Config,
		households: d.Households,
		tokens:     d.Tokens,
		recipes:    d.Recipes,
		importer:   d.Importer,
		plans:      d.Plans,
		grocery:    d.Grocery,
		builder:    d.Builder,
		allowances: d.Allowances,
		calendar:   d.Calendar,
		notifier:   d.Notifier,
		textGen:    d.TextGen,
		metrics:    d.Metrics,
	}
}

// gen returns the text generator wrapped so calls report usage under the
// given agent name.
func (s *Server) gen(agentName string) llm.TextGenerator {
	var recorder llm.MetaRecorder
	if s.metrics != nil {
		recorder = s.metrics
	}
	return llm.WithMetrics(s.textGen, recorder, agentName, func(err error) {
		log.Printf("Warning: could not record metrics: %v", err)
	})
}

// Handler builds the chi router for the full API surface.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Route("/recipes", func(r chi.Router) {
				r.Get("/", s.handleListRecipes)
				r.Post("/", s.handleCreateRecipe)
				r.Post("/import", s.handleImportRecipe)
				r.Get("/{id}", s.handleGetRecipe)
				r.Put("/{id}", s.handleUpdateRecipe)
				r.Delete("/{id}", s.handleDeleteRecipe)
			})

			r.Route("/weekly-plans", func(r chi.Router) {
				r.Get("/", s.handleListPlans)
				r.Post("/", s.handleCreatePlan)
				r.Post("/generate-grocery-list", s.handlePreviewGroceryList)
				r.Get("/{id}", s.handleGetPlan)
				r.Delete("/{id}", s.handleDeletePlan)
				r.Post("/{id}/meals", s.handleAddMeal)
				r.Put("/{id}/meals/{mealID}", s.handleUpdateMeal)
				r.Delete("/{id}/meals/{mealID}", s.handleDeleteMeal)
				r.Post("/{id}/regenerate-grocery-list", s.handleRegenerateGroceryList)
				r.Get("/{id}/grocery-list", s.handleGetGroceryList)
			})

			r.Put("/grocery-items/{id}/checked", s.handleCheckGroceryItem)

			r.Route("/members", func(r chi.Router) {
				r.Get("/", s.handleListMembers)
				r.Post("/", s.handleAddMember)
				r.Get("/{id}/allowance", s.handleGetAllowance)
				r.Post("/{id}/allowance/entries", s.handleAddAllowanceEntry)
			})

			r.Get("/household", s.handleGetHousehold)
			r.Put("/household/telegram-chat", s.handleSetTelegramChat)

			r.Get("/calendar/connect", s.handleCalendarAuthURL)
			r.Post("/calendar/connect", s.handleCalendarConnect)
			r.Delete("/calendar/connect", s.handleCalendarDisconnect)
			r.Get("/calendar/status", s.handleCalendarStatus)
			r.Get("/suggestions/dinners", s.handleSuggestDinners)
			r.Get("/system/health", s.handleSystemHealth)
			r.Get("/system/usage", s.handleDailyUsage)
		})
	})

	return r
}
