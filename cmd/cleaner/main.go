package main

import (
	"context"
	"log"

	"go-jobfinder/internal/ai"
	"go-jobfinder/internal/cleaner"
	"go-jobfinder/internal/config"
	"go-jobfinder/internal/database"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. LLM provider: %s (%s)", cfg.LLM.Provider, cfg.LLM.Model)

	ctx := context.Background()

	//connect database
	repo, err := database.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer repo.Close()

	if err := repo.InitSchema(ctx); err != nil {
		log.Fatalf("❌ Failed to init schema: %v", err)
	}

	//init llm client
	llm, err := ai.NewClient(cfg.LLM)
	if err != nil {
		log.Fatalf("❌ Failed to init LLM client: %v", err)
	}

	jobs, err := repo.ListJobs(ctx)
	if err != nil {
		log.Fatalf("❌ Failed to load jobs: %v", err)
	}
	if len(jobs) == 0 {
		log.Println("ℹ️ No jobs to clean.")
		return
	}
	log.Printf("🚀 Cleaning %d jobs...", len(jobs))

	pipeline := cleaner.NewPipeline(llm)
	cleaned := pipeline.CleanBatch(ctx, jobs)

	if err := repo.ReplaceCleanedJobs(ctx, cleaned); err != nil {
		log.Fatalf("❌ Failed to save cleaned jobs: %v", err)
	}

	cleaner.Summarize(cleaned).Log()
	log.Println("🏁 Execution finished.")
}
