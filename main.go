package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"skillsummary/adapters/dynamo"
	"skillsummary/adapters/postgres"
	"skillsummary/app"
	"skillsummary/internal"
	"skillsummary/internal/config"
	"skillsummary/internal/errors"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URI == "" {
		return nil, errors.ConfigInvalid("DATABASE_URI is required")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URI)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	dynamoClient, err := dynamo.NewClient(ctx, appConfig.Scoring)
	if err != nil {
		log.Fatalf("Failed to initialize score store client: %v", err)
	}

	service := app.NewDailySummaryService(
		postgres.NewSessionRepository(db),
		dynamo.NewScoreRepository(dynamoClient, appConfig.Scoring.TableName),
		postgres.NewSummaryRepository(db, appConfig.Summary.TableName),
		appConfig.Summary.WritePolicy,
		internal.NewDefaultLogger(),
	)

	if err := service.Run(ctx); err != nil {
		log.Fatalf("Summary run failed: %v", err)
	}
}
