package models

import (
	"time"
)

type RunStatus string

const (
	RunPending   RunStatus = "pending"
	RunCompleted RunStatus = "completed"
	RunFailed    RunStatus = "failed"
)

// Job is one scraped posting. Rows are immutable after insert: the cleaning
// pipeline writes its results to cleaned_jobs, never back into this table.
type Job struct {
	ID               string    `json:"id"`
	Company          string    `json:"company"`
	Title            string    `json:"title"`
	Location         string    `json:"location"`
	WorkLocationType string    `json:"work_location_type"`
	Level            string    `json:"level"`
	SalaryRange      *string   `json:"salary_range,omitempty"`
	Content          string    `json:"content"`
	EmploymentType   string    `json:"employment_type"`
	JobFunction      string    `json:"job_function"`
	Industries       string    `json:"industries"`
	PostedTime       string    `json:"posted_time"`
	PostedDate       *string   `json:"posted_date,omitempty"`
	Applicants       string    `json:"applicants"`
	JobID            string    `json:"job_id"` // source-assigned, may repeat across runs
	Date             string    `json:"date"`
	ParsingLink      string    `json:"parsing_link"`
	JobPostingLink   string    `json:"job_posting_link"`
	RunID            int64     `json:"run_id"`
	CompanyID        *string   `json:"company_id,omitempty"`
	CompanySize      *string   `json:"company_size,omitempty"`
	CompanyFollowers *string   `json:"company_followers,omitempty"`
	CompanyIndustry  *string   `json:"company_industry,omitempty"`
	CompanyInfoLink  *string   `json:"company_info_link,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// Company is employer metadata, deduplicated by name. Fields merge on update
// and an existing non-null value is never overwritten with null.
type Company struct {
	ID          string  `json:"id"`
	CompanyName string  `json:"company_name"`
	CompanySize *string `json:"company_size,omitempty"`
	Followers   *string `json:"followers,omitempty"`
	Industry    *string `json:"industry,omitempty"`
	CompanyURL  *string `json:"company_url,omitempty"`
}

// Enriched reports whether at least one of the key fields is populated.
func (c *Company) Enriched() bool {
	return c.CompanySize != nil || c.Followers != nil || c.Industry != nil || c.CompanyURL != nil
}

// JobRun is one scrape session. Status moves pending -> completed/failed
// exactly once; JobCount is meaningful only once the status is terminal.
type JobRun struct {
	ID             int64      `json:"id"`
	RunDate        time.Time  `json:"run_date"`
	SearchQuery    string     `json:"search_query"`
	LocationFilter string     `json:"location_filter"`
	JobCount       int        `json:"job_count"`
	Status         RunStatus  `json:"status"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
