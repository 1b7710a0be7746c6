package models

// ExperienceLevel is an ordered band derived from minimum years of experience.
type ExperienceLevel int

const (
	EntryLevel ExperienceLevel = iota
	Junior
	Associate
	Mid
	Senior
	StaffPrincipal
	DirectorExecutive
)

// ExperienceLevelFromYears maps a year count onto its band. Negative years
// (the "undetermined" sentinel) classify as entry level.
func ExperienceLevelFromYears(years int) ExperienceLevel {
	switch {
	case years <= 0:
		return EntryLevel
	case years == 1:
		return Junior
	case years <= 3:
		return Associate
	case years <= 5:
		return Mid
	case years <= 8:
		return Senior
	case years <= 12:
		return StaffPrincipal
	default:
		return DirectorExecutive
	}
}

func (l ExperienceLevel) Label() string {
	switch l {
	case EntryLevel:
		return "Entry level"
	case Junior:
		return "Junior"
	case Associate:
		return "Associate/Early career"
	case Mid:
		return "Mid-level"
	case Senior:
		return "Senior"
	case StaffPrincipal:
		return "Staff/Principal/Lead"
	case DirectorExecutive:
		return "Director/VP/Executive"
	default:
		return "Unknown"
	}
}

type WorkLocationType string

const (
	LocationRemote  WorkLocationType = "Remote"
	LocationHybrid  WorkLocationType = "Hybrid"
	LocationOnSite  WorkLocationType = "On-site"
	LocationUnknown WorkLocationType = "Unknown"
)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "Full-time"
	EmploymentPartTime   EmploymentType = "Part-time"
	EmploymentContract   EmploymentType = "Contract"
	EmploymentInternship EmploymentType = "Internship"
	EmploymentUnknown    EmploymentType = "Unknown"
)

// SalaryRange holds normalized salary bounds. Mid is always the arithmetic
// mean of Min and Max when both are present.
type SalaryRange struct {
	Min      *float64 `json:"min_salary,omitempty"`
	Max      *float64 `json:"max_salary,omitempty"`
	Mid      *float64 `json:"mid_salary,omitempty"`
	Currency string   `json:"currency"`
	Period   string   `json:"period"` // yearly, monthly, hourly
}

// NewSalaryRange builds a range and computes the mid point.
func NewSalaryRange(min, max *float64, currency, period string) *SalaryRange {
	if currency == "" {
		currency = "USD"
	}
	if period == "" {
		period = "yearly"
	}
	r := &SalaryRange{Min: min, Max: max, Currency: currency, Period: period}
	if min != nil && max != nil {
		mid := (*min + *max) / 2
		r.Mid = &mid
	}
	return r
}

// CleanedJob is the enrichment result for one source Job. The cleaned_jobs
// table is replaced wholesale on each pipeline run.
type CleanedJob struct {
	Job

	MinYearsExperience   int              `json:"min_years_experience"`
	ExperienceLevel      ExperienceLevel  `json:"experience_level"`
	ExperienceLevelLabel string           `json:"experience_level_label"`
	Salary               *SalaryRange     `json:"salary,omitempty"`
	SalaryCorrected      bool             `json:"salary_corrected"`
	CleanedLocationType  WorkLocationType `json:"cleaned_work_location_type"`
	LocationCorrected    bool             `json:"location_corrected"`
	CleanedEmployment    EmploymentType   `json:"cleaned_employment_type"`
	EmploymentCorrected  bool             `json:"employment_corrected"`
	ProcessingErrors     []string         `json:"processing_errors,omitempty"`
	ProcessingComplete   bool             `json:"processing_complete"`
}
