package main

import (
	"AutoPartsBot/internal/config"
	"AutoPartsBot/pkg/log"
	redisPkg "AutoPartsBot/pkg/redis"
	"github.com/joho/godotenv"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	logger := log.NewLogger()
	if err := godotenv.Load(); err != nil {
		logger.Warnf("No .env file loaded: %v", err)
	}

	fiberApp := config.NewFiber(logger)
	validator := config.NewValidator()
	sessionStore := redisPkg.New()

	options := []config.ServerOption{
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithSessionStore(sessionStore),
		config.WithMiddleware(),
		config.WithGeminiClient(),
		config.WithUtils(),
		config.WithDatasets(os.Getenv("DATASET_DIR")),
		config.WithDialogueOptions(),
	}
	// Leads and transcripts need Postgres; everything else runs without it.
	if os.Getenv("DB_HOST") != "" {
		options = append(options, config.WithDatabase())
	}

	server, err := config.NewServer(options...)
	if err != nil {
		logger.Fatal(err)
	}

	server.RegisterHandler()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Server started successfully")

	<-sigChan
	logger.Info("Shutting down server...")
}
