package main

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"go-jobfinder/internal/company"
	"go-jobfinder/internal/config"
	"go-jobfinder/internal/database"
	"go-jobfinder/internal/fetch"
	"go-jobfinder/internal/models"
	"go-jobfinder/internal/reporter"
	"go-jobfinder/internal/scraper"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Config loaded. %d searches configured.", len(cfg.Searches))

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

	//init telegram reporter (optional)
	var tg *reporter.TelegramReporter
	if cfg.TelegramToken != "" {
		tg, err = reporter.NewTelegramReporter(cfg)
		if err != nil {
			log.Fatalf("❌ Failed to init Telegram reporter: %v", err)
		}
		log.Println("🤖 Telegram reporter initialized.")
	}

	client := fetch.NewClient()
	enricher := company.NewService(repo, client, cfg.CompanyDelayMinMs, cfg.CompanyDelayMaxMs)
	s := scraper.New(client, enricher, cfg.JobDelayMinMs, cfg.JobDelayMaxMs)

	runAll := func() {
		for _, search := range cfg.Searches {
			runSearch(ctx, cfg, repo, s, tg, search)
		}
		exportCSV(ctx, cfg, repo)
	}

	if cfg.Schedule != "" {
		//scheduled mode: keep running and scrape on the cron spec
		log.Printf("⏰ Scheduled mode: %q", cfg.Schedule)
		c := cron.New()
		if _, err := c.AddFunc(cfg.Schedule, runAll); err != nil {
			log.Fatalf("❌ Invalid schedule %q: %v", cfg.Schedule, err)
		}
		c.Run()
		return
	}

	log.Println("🚀 Starting scrape...")
	runAll()
	log.Println("🏁 Execution finished.")
}

func runSearch(ctx context.Context, cfg *config.Config, repo *database.Repository, s *scraper.Scraper, tg *reporter.TelegramReporter, search config.Search) {
	log.Printf("\n▶️ Search: %q in %q (target %d jobs)", search.Keywords, search.Location, search.TotalJobs)

	run := &models.JobRun{
		RunDate:        time.Now(),
		SearchQuery:    search.Keywords,
		LocationFilter: search.Location,
		Status:         models.RunPending,
	}
	run, err := repo.CreateJobRun(ctx, run)
	if err != nil {
		log.Printf("❌ Failed to create run record: %v", err)
		return
	}

	params := scraper.SearchParams{
		Keywords:   search.Keywords,
		Location:   search.Location,
		TimeFilter: search.TimeFilter,
		Remote:     search.Remote,
		PartTime:   search.PartTime,
	}
	jobs, err := s.ScrapeSearch(ctx, params, search.TotalJobs)
	if err != nil {
		msg := err.Error()
		if dbErr := repo.CompleteJobRun(ctx, run.ID, models.RunFailed, 0, &msg); dbErr != nil {
			log.Printf("⚠️ Failed to mark run failed: %v", dbErr)
		}
		log.Printf("❌ Search failed: %v", err)
		if tg != nil {
			if tgErr := tg.SendError(err); tgErr != nil {
				log.Printf("⚠️ Failed to send error to Telegram: %v", tgErr)
			}
		}
		return
	}

	for _, job := range jobs {
		job.RunID = run.ID
	}
	saved, err := repo.SaveJobs(ctx, jobs)
	if err != nil {
		log.Printf("⚠️ Failed to save some jobs: %v", err)
	}
	log.Printf("📦 Found %d jobs, %d new", len(jobs), saved)

	if err := repo.CompleteJobRun(ctx, run.ID, models.RunCompleted, len(jobs), nil); err != nil {
		log.Printf("⚠️ Failed to complete run record: %v", err)
	}

	if tg != nil {
		run.JobCount = len(jobs)
		if err := tg.SendRunSummary(run, saved); err != nil {
			log.Printf("⚠️ Failed to send run summary to Telegram: %v", err)
		}
	}
}

func exportCSV(ctx context.Context, cfg *config.Config, repo *database.Repository) {
	if cfg.ExportCSV == "" {
		return
	}
	count, err := repo.ExportJobsCSV(ctx, cfg.ExportCSV)
	if err != nil {
		log.Printf("⚠️ CSV export failed: %v", err)
		return
	}
	log.Printf("📁 Exported %d jobs to %s", count, cfg.ExportCSV)
}
