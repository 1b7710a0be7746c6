package database

import (
	"context"
	"fmt"
	"time"

	"go-jobfinder/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func ConnectDB(ctx context.Context, connString string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	// IMPORTANT: Supabase connection pooler (PgBouncer in Transaction mode)
	// does not support prepared statements easily. We MUST disable the statement cache.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Ping to ensure connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database unreachable: %w", err)
	}

	return &Repository{db: pool}, nil
}

func (r *Repository) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

// InitSchema creates the tables if they do not exist yet. Idempotent, runs
// at startup.
func (r *Repository) InitSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS job_runs (
			id BIGSERIAL PRIMARY KEY,
			run_date DATE NOT NULL,
			search_query TEXT NOT NULL,
			location_filter TEXT NOT NULL,
			job_count INTEGER NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'pending',
			error_message TEXT,
			started_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS companies (
			id TEXT PRIMARY KEY,
			company_name TEXT NOT NULL UNIQUE,
			company_size TEXT,
			followers TEXT,
			industry TEXT,
			company_url TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			company TEXT NOT NULL,
			title TEXT NOT NULL,
			location TEXT NOT NULL,
			work_location_type TEXT NOT NULL,
			level TEXT NOT NULL DEFAULT '',
			salary_range TEXT,
			content TEXT NOT NULL DEFAULT '',
			employment_type TEXT NOT NULL DEFAULT '',
			job_function TEXT NOT NULL DEFAULT '',
			industries TEXT NOT NULL DEFAULT '',
			posted_time TEXT NOT NULL DEFAULT 'N/A',
			posted_date TEXT,
			applicants TEXT NOT NULL DEFAULT 'N/A',
			job_id TEXT NOT NULL,
			date TEXT NOT NULL,
			parsing_link TEXT NOT NULL,
			job_posting_link TEXT NOT NULL DEFAULT 'N/A',
			run_id BIGINT REFERENCES job_runs(id),
			company_id TEXT REFERENCES companies(id),
			company_size TEXT,
			company_followers TEXT,
			company_industry TEXT,
			company_info_link TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS cleaned_jobs (
			id TEXT PRIMARY KEY,
			company TEXT NOT NULL,
			title TEXT NOT NULL,
			location TEXT NOT NULL,
			work_location_type TEXT NOT NULL,
			level TEXT NOT NULL DEFAULT '',
			salary_range TEXT,
			content TEXT NOT NULL DEFAULT '',
			employment_type TEXT NOT NULL DEFAULT '',
			job_function TEXT NOT NULL DEFAULT '',
			industries TEXT NOT NULL DEFAULT '',
			posted_time TEXT NOT NULL DEFAULT 'N/A',
			posted_date TEXT,
			applicants TEXT NOT NULL DEFAULT 'N/A',
			job_id TEXT NOT NULL,
			date TEXT NOT NULL,
			parsing_link TEXT NOT NULL,
			job_posting_link TEXT NOT NULL DEFAULT 'N/A',
			run_id BIGINT,
			company_id TEXT,
			company_size TEXT,
			company_followers TEXT,
			company_industry TEXT,
			company_info_link TEXT,
			min_years_experience INTEGER NOT NULL DEFAULT 0,
			experience_level INTEGER NOT NULL DEFAULT 0,
			experience_level_label TEXT NOT NULL DEFAULT '',
			salary_min DOUBLE PRECISION,
			salary_max DOUBLE PRECISION,
			salary_mid DOUBLE PRECISION,
			salary_currency TEXT,
			salary_period TEXT,
			salary_corrected BOOLEAN NOT NULL DEFAULT FALSE,
			cleaned_work_location_type TEXT NOT NULL DEFAULT 'Unknown',
			location_corrected BOOLEAN NOT NULL DEFAULT FALSE,
			cleaned_employment_type TEXT NOT NULL DEFAULT 'Unknown',
			employment_corrected BOOLEAN NOT NULL DEFAULT FALSE,
			processing_errors TEXT[] NOT NULL DEFAULT '{}',
			processing_complete BOOLEAN NOT NULL DEFAULT FALSE
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to init schema: %w", err)
		}
	}
	return nil
}

// ---------------- RUN OPERATIONS ----------------

func (r *Repository) CreateJobRun(ctx context.Context, run *models.JobRun) (*models.JobRun, error) {
	query := `
		INSERT INTO job_runs (run_date, search_query, location_filter, status, started_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, started_at`
	err := r.db.QueryRow(ctx, query, run.RunDate, run.SearchQuery, run.LocationFilter, run.Status, time.Now()).
		Scan(&run.ID, &run.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create job run: %w", err)
	}
	return run, nil
}

// CompleteJobRun moves a run to its terminal status with the final count.
func (r *Repository) CompleteJobRun(ctx context.Context, runID int64, status models.RunStatus, jobCount int, errMessage *string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE job_runs SET status = $1, job_count = $2, error_message = $3, completed_at = now() WHERE id = $4`,
		status, jobCount, errMessage, runID)
	if err != nil {
		return fmt.Errorf("failed to complete job run: %w", err)
	}
	return nil
}

// ---------------- JOB OPERATIONS ----------------

// SaveJob inserts a job, keeping the existing row untouched when the id was
// already stored. Returns true when a new row was written.
func (r *Repository) SaveJob(ctx context.Context, job *models.Job) (bool, error) {
	query := `
		INSERT INTO jobs (id, company, title, location, work_location_type, level, salary_range,
			content, employment_type, job_function, industries, posted_time, posted_date, applicants,
			job_id, date, parsing_link, job_posting_link, run_id,
			company_id, company_size, company_followers, company_industry, company_info_link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)
		ON CONFLICT (id) DO NOTHING`

	tag, err := r.db.Exec(ctx, query,
		job.ID, job.Company, job.Title, job.Location, job.WorkLocationType, job.Level, job.SalaryRange,
		job.Content, job.EmploymentType, job.JobFunction, job.Industries, job.PostedTime, job.PostedDate, job.Applicants,
		job.JobID, job.Date, job.ParsingLink, job.JobPostingLink, job.RunID,
		job.CompanyID, job.CompanySize, job.CompanyFollowers, job.CompanyIndustry, job.CompanyInfoLink)
	if err != nil {
		return false, fmt.Errorf("failed to save job: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// SaveJobs stores a batch and reports how many rows were actually inserted.
func (r *Repository) SaveJobs(ctx context.Context, jobs []*models.Job) (int, error) {
	saved := 0
	for _, job := range jobs {
		inserted, err := r.SaveJob(ctx, job)
		if err != nil {
			return saved, err
		}
		if inserted {
			saved++
		}
	}
	return saved, nil
}

const jobColumns = `id, company, title, location, work_location_type, level, salary_range,
	content, employment_type, job_function, industries, posted_time, posted_date, applicants,
	job_id, date, parsing_link, job_posting_link, run_id,
	company_id, company_size, company_followers, company_industry, company_info_link, created_at`

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(&job.ID, &job.Company, &job.Title, &job.Location, &job.WorkLocationType,
		&job.Level, &job.SalaryRange, &job.Content, &job.EmploymentType, &job.JobFunction,
		&job.Industries, &job.PostedTime, &job.PostedDate, &job.Applicants, &job.JobID, &job.Date,
		&job.ParsingLink, &job.JobPostingLink, &job.RunID,
		&job.CompanyID, &job.CompanySize, &job.CompanyFollowers, &job.CompanyIndustry,
		&job.CompanyInfoLink, &job.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs returns every stored job, oldest first.
func (r *Repository) ListJobs(ctx context.Context) ([]*models.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// ListJobsByRun returns the jobs of one scrape run, oldest first.
func (r *Repository) ListJobsByRun(ctx context.Context, runID int64) ([]*models.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE run_id = $1 ORDER BY created_at`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs for run %d: %w", runID, err)
	}
	defer rows.Close()

	var jobs []*models.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// ---------------- COMPANY OPERATIONS ----------------

// GetCompanyByName returns (nil, nil) when the company is not stored yet.
func (r *Repository) GetCompanyByName(ctx context.Context, name string) (*models.Company, error) {
	var c models.Company
	err := r.db.QueryRow(ctx,
		`SELECT id, company_name, company_size, followers, industry, company_url FROM companies WHERE company_name = $1`,
		name).Scan(&c.ID, &c.CompanyName, &c.CompanySize, &c.Followers, &c.Industry, &c.CompanyURL)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return &c, nil
}

// SaveCompany upserts by name. On conflict each field keeps its stored value
// when present, so enrichment only ever fills gaps.
func (r *Repository) SaveCompany(ctx context.Context, c *models.Company) (string, error) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	query := `
		INSERT INTO companies (id, company_name, company_size, followers, industry, company_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (company_name) DO UPDATE SET
			company_size = COALESCE(companies.company_size, EXCLUDED.company_size),
			followers = COALESCE(companies.followers, EXCLUDED.followers),
			industry = COALESCE(companies.industry, EXCLUDED.industry),
			company_url = COALESCE(companies.company_url, EXCLUDED.company_url)
		RETURNING id`

	var id string
	err := r.db.QueryRow(ctx, query, c.ID, c.CompanyName, c.CompanySize, c.Followers, c.Industry, c.CompanyURL).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to save company: %w", err)
	}
	return id, nil
}

// ---------------- CLEANED JOB OPERATIONS ----------------

// ReplaceCleanedJobs swaps the cleaned_jobs table for the given batch in one
// transaction. The table always reflects the latest cleaning run wholesale.
func (r *Repository) ReplaceCleanedJobs(ctx context.Context, cleaned []*models.CleanedJob) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE cleaned_jobs`); err != nil {
		return fmt.Errorf("failed to truncate cleaned_jobs: %w", err)
	}

	query := `
		INSERT INTO cleaned_jobs (id, company, title, location, work_location_type, level, salary_range,
			content, employment_type, job_function, industries, posted_time, posted_date, applicants,
			job_id, date, parsing_link, job_posting_link, run_id,
			company_id, company_size, company_followers, company_industry, company_info_link,
			min_years_experience, experience_level, experience_level_label,
			salary_min, salary_max, salary_mid, salary_currency, salary_period, salary_corrected,
			cleaned_work_location_type, location_corrected,
			cleaned_employment_type, employment_corrected,
			processing_errors, processing_complete)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37, $38, $39)`

	for _, cj := range cleaned {
		var salMin, salMax, salMid *float64
		var salCurrency, salPeriod *string
		if cj.Salary != nil {
			salMin, salMax, salMid = cj.Salary.Min, cj.Salary.Max, cj.Salary.Mid
			salCurrency, salPeriod = &cj.Salary.Currency, &cj.Salary.Period
		}
		errs := cj.ProcessingErrors
		if errs == nil {
			errs = []string{}
		}
		_, err := tx.Exec(ctx, query,
			cj.ID, cj.Company, cj.Title, cj.Location, cj.WorkLocationType, cj.Level, cj.SalaryRange,
			cj.Content, cj.EmploymentType, cj.JobFunction, cj.Industries, cj.PostedTime, cj.PostedDate, cj.Applicants,
			cj.JobID, cj.Date, cj.ParsingLink, cj.JobPostingLink, cj.RunID,
			cj.CompanyID, cj.CompanySize, cj.CompanyFollowers, cj.CompanyIndustry, cj.CompanyInfoLink,
			cj.MinYearsExperience, int(cj.ExperienceLevel), cj.ExperienceLevelLabel,
			salMin, salMax, salMid, salCurrency, salPeriod, cj.SalaryCorrected,
			string(cj.CleanedLocationType), cj.LocationCorrected,
			string(cj.CleanedEmployment), cj.EmploymentCorrected,
			errs, cj.ProcessingComplete)
		if err != nil {
			return fmt.Errorf("failed to insert cleaned job %s: %w", cj.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cleaned jobs: %w", err)
	}
	return nil
}
