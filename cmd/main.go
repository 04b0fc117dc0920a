package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/skillvet/interviewd/internal/client"
	"github.com/skillvet/interviewd/internal/config"
	"github.com/skillvet/interviewd/internal/interview"
	"github.com/skillvet/interviewd/internal/server"
	"github.com/skillvet/interviewd/storage"
)

func main() {
	godotenv.Load(".env")
	cfg := config.NewConfig()
	if cfg.ModelAPIKey == "" {
		log.Fatal("MODEL_API_KEY is required")
	}

	db, err := storage.NewSqliteDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer db.Close()

	interviews, err := storage.NewInterviews(db)
	if err != nil {
		log.Fatalf("Failed to init interviews storage: %s", err)
	}

	modelClient := client.NewClient(cfg)
	orchestrator := interview.NewOrchestrator(interviews, modelClient, cfg.ModelTimeout)

	srv := server.NewServer(orchestrator, interviews)
	if err := srv.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to run server: %s", err)
	}
}
