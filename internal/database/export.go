package database

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"go-jobfinder/internal/models"
)

// csvHeader is the fixed export column order. Consumers feed these files to
// spreadsheets, so the order never changes between runs.
var csvHeader = []string{
	"company", "title", "location", "work_location_type", "level", "salary_range",
	"content", "employment_type", "job_function", "industries", "posted_time",
	"applicants", "job_id", "date", "parsing_link", "job_posting_link", "run_id",
}

// ExportJobsCSV writes every stored job to path, replacing the file when it
// already exists.
func (r *Repository) ExportJobsCSV(ctx context.Context, path string) (int, error) {
	jobs, err := r.ListJobs(ctx)
	if err != nil {
		return 0, err
	}
	if err := WriteJobsCSV(path, jobs); err != nil {
		return 0, err
	}
	return len(jobs), nil
}

func WriteJobsCSV(path string, jobs []*models.Job) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, job := range jobs {
		salary := ""
		if job.SalaryRange != nil {
			salary = *job.SalaryRange
		}
		record := []string{
			job.Company, job.Title, job.Location, job.WorkLocationType, job.Level, salary,
			job.Content, job.EmploymentType, job.JobFunction, job.Industries, job.PostedTime,
			job.Applicants, job.JobID, job.Date, job.ParsingLink, job.JobPostingLink,
			fmt.Sprintf("%d", job.RunID),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
