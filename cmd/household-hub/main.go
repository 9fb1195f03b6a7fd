package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"household-hub/internal/allowance"
	"household-hub/internal/calendar"
	"household-hub/internal/config"
	"household-hub/internal/database"
	"household-hub/internal/grocery"
	"household-hub/internal/household"
	"household-hub/internal/llm"
	"household-hub/internal/mealplan"
	"household-hub/internal/metrics"
	"household-hub/internal/notify"
	"household-hub/internal/recipe"
	"household-hub/internal/server"
)

func main() {
	// Local development convenience; missing .env is fine.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	geminiClient, err := llm.NewGeminiClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}
	defer geminiClient.Close()

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	householdRepo := household.NewRepository(db.SQL)
	recipeRepo := recipe.NewRepository(db.SQL)
	planRepo := mealplan.NewRepository(db.SQL)
	groceryRepo := grocery.NewRepository(db.SQL)
	allowanceRepo := allowance.NewRepository(db.SQL)
	tokenRepo := calendar.NewTokenRepository(db.SQL)
	metricsStore := metrics.NewStore(db.SQL)
	if err := metricsStore.Cleanup(90); err != nil {
		log.Printf("Warning: could not prune old execution metrics: %v", err)
	}

	builder := grocery.NewBuilder(planRepo, recipeRepo, groceryRepo, grocery.Config{
		Policy: grocery.MixedUnitJoin,
		Locale: cfg.SortLocale,
	})

	importerGen := llm.WithMetrics(geminiClient, metricsStore, "recipe_importer", func(err error) {
		log.Printf("Warning: could not record metrics: %v", err)
	})
	importer := recipe.NewImporter(importerGen)

	notifier, err := notify.NewNotifier(cfg.TelegramBotToken)
	if err != nil {
		log.Fatalf("Failed to initialize Telegram notifier: %v", err)
	}

	syncer := calendar.NewSyncer(cfg, tokenRepo)

	srvHandler := server.New(server.Deps{
		Config:     cfg,
		Households: householdRepo,
		Tokens:     household.NewTokenIssuer(cfg.JWTSecret),
		Recipes:    recipeRepo,
		Importer:   importer,
		Plans:      planRepo,
		Grocery:    groceryRepo,
		Builder:    builder,
		Allowances: allowanceRepo,
		Calendar:   syncer,
		Notifier:   notifier,
		TextGen:    geminiClient,
		Metrics:    metricsStore,
	}).Handler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: srvHandler,
	}

	go func() {
		log.Printf("Household Hub listening on port %s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
