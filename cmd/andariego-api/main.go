// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"andariego/internal/config"
	httptransport "andariego/internal/http"
	"andariego/internal/infra"
	"andariego/internal/itinerary"
	"andariego/internal/maps"
	"andariego/internal/modules/assistant"
	"andariego/internal/modules/expense"
	"andariego/internal/modules/trips"
	"andariego/internal/translate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Firebase.ProjectID == "" {
		log.Fatal("ANDARIEGO_FIREBASE_PROJECT_ID is required")
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	generator := itinerary.NewGenerator(cfg.AI.GeminiKey)
	if !generator.IsConfigured() {
		log.Print("GEMINI_API_KEY not set; itineraries will use the offline fallback")
	}

	tripStore := trips.NewStore(dbPool)
	tripCache := trips.NewCache(redisClient)
	tripSvc := trips.NewService(generator, tripStore, tripCache)

	expenseSvc := expense.NewService(expense.NewStore(dbPool))

	assistantSvc := assistant.NewService(assistant.NewStore(dbPool), cfg.AI.GeminiKey)

	var translator *translate.Service
	if cfg.Translate.APIKey != "" {
		translator = translate.NewService(cfg.Translate.APIKey)
	}

	var places *maps.PlacesService
	if cfg.Maps.APIKey != "" {
		places, err = maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	handler := httptransport.NewRouter(httptransport.ServerDeps{
		Trips:      tripSvc,
		Expenses:   expenseSvc,
		Assistant:  assistantSvc,
		Translator: translator,
		Places:     places,
		Verifier:   verifier,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
