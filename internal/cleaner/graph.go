package cleaner

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go-jobfinder/internal/ai"
	"go-jobfinder/internal/models"
)

// Pipeline runs each job through a fixed linear workflow:
//
//	initialize -> extract experience -> extract salary
//	           -> validate location  -> validate employment -> finalize
//
// Every node captures its own failures in ProcessingErrors and leaves a safe
// default behind, so a batch always yields exactly one cleaned row per input
// row no matter what goes wrong inside a node.
type Pipeline struct {
	experience *ExperienceChain
	salary     *SalaryChain
	location   *LocationChain
	employment *EmploymentChain
}

func NewPipeline(llm ai.Client) *Pipeline {
	return &Pipeline{
		experience: NewExperienceChain(llm),
		salary:     NewSalaryChain(llm),
		location:   NewLocationChain(llm),
		employment: NewEmploymentChain(llm),
	}
}

// Clean runs one job through the workflow. A panic inside a node is recorded
// as a processing error on the row instead of taking down the batch.
func (p *Pipeline) Clean(ctx context.Context, job *models.Job) (cj *models.CleanedJob) {
	cj = &models.CleanedJob{Job: *job}
	defer func() {
		if r := recover(); r != nil {
			cj.ProcessingErrors = append(cj.ProcessingErrors, fmt.Sprintf("cleaning panicked: %v", r))
			cj.ProcessingComplete = true
		}
	}()

	p.initialize(cj)
	p.extractExperience(ctx, cj)
	p.extractSalary(ctx, cj)
	p.validateLocation(ctx, cj)
	p.validateEmployment(ctx, cj)
	p.finalize(cj)

	return cj
}

// CleanBatch processes jobs in order and returns one cleaned row per input.
func (p *Pipeline) CleanBatch(ctx context.Context, jobs []*models.Job) []*models.CleanedJob {
	cleaned := make([]*models.CleanedJob, 0, len(jobs))
	for i, job := range jobs {
		cleaned = append(cleaned, p.Clean(ctx, job))
		if (i+1)%10 == 0 || i+1 == len(jobs) {
			log.Printf("[cleaner] processed %d/%d jobs", i+1, len(jobs))
		}
	}
	return cleaned
}

func (p *Pipeline) initialize(cj *models.CleanedJob) {
	cj.ProcessingErrors = nil
	cj.ProcessingComplete = false
	cj.SalaryCorrected = false
	cj.LocationCorrected = false
	cj.EmploymentCorrected = false
}

func (p *Pipeline) extractExperience(ctx context.Context, cj *models.CleanedJob) {
	years, err := p.experience.Extract(ctx, cj.Content)
	if err != nil {
		cj.ProcessingErrors = append(cj.ProcessingErrors, fmt.Sprintf("failed to extract experience: %v", err))
		years = 0
	}
	cj.MinYearsExperience = years
	cj.ExperienceLevel = models.ExperienceLevelFromYears(years)
	cj.ExperienceLevelLabel = cj.ExperienceLevel.Label()
}

func (p *Pipeline) extractSalary(ctx context.Context, cj *models.CleanedJob) {
	// A parseable salary already on record wins and counts as uncorrected.
	if cj.SalaryRange != nil && strings.TrimSpace(*cj.SalaryRange) != "" {
		if existing := extractSalaryPattern(*cj.SalaryRange); existing != nil {
			cj.Salary = existing
			cj.SalaryCorrected = false
			return
		}
	}

	extracted, err := p.salary.Extract(ctx, cj.Content)
	if err != nil {
		cj.ProcessingErrors = append(cj.ProcessingErrors, fmt.Sprintf("failed to extract salary: %v", err))
		cj.Salary = nil
		cj.SalaryCorrected = false
		return
	}
	cj.Salary = extracted
	cj.SalaryCorrected = extracted != nil
}

func (p *Pipeline) validateLocation(ctx context.Context, cj *models.CleanedJob) {
	original := strings.TrimSpace(cj.WorkLocationType)

	if original == "" {
		detected, err := p.location.Validate(ctx, cj.Content, "")
		if err != nil {
			cj.ProcessingErrors = append(cj.ProcessingErrors, fmt.Sprintf("failed to validate location type: %v", err))
			cj.CleanedLocationType = models.LocationUnknown
			cj.LocationCorrected = false
			return
		}
		cj.CleanedLocationType = detected
		cj.LocationCorrected = detected != models.LocationUnknown
		return
	}

	validated, err := p.location.Validate(ctx, cj.Content, original)
	if err != nil {
		cj.ProcessingErrors = append(cj.ProcessingErrors, fmt.Sprintf("failed to validate location type: %v", err))
		cj.CleanedLocationType = mapLocationType(original)
		cj.LocationCorrected = false
		return
	}

	originalEnum := mapLocationType(original)
	if validated == models.LocationUnknown {
		// Inconclusive validation keeps what was on record.
		cj.CleanedLocationType = originalEnum
		cj.LocationCorrected = false
		return
	}
	cj.CleanedLocationType = validated
	cj.LocationCorrected = originalEnum != validated
}

func (p *Pipeline) validateEmployment(ctx context.Context, cj *models.CleanedJob) {
	original := strings.TrimSpace(cj.EmploymentType)

	if original == "" {
		detected, err := p.employment.Validate(ctx, cj.Content, "")
		if err != nil {
			cj.ProcessingErrors = append(cj.ProcessingErrors, fmt.Sprintf("failed to validate employment type: %v", err))
			cj.CleanedEmployment = models.EmploymentUnknown
			cj.EmploymentCorrected = false
			return
		}
		cj.CleanedEmployment = detected
		cj.EmploymentCorrected = detected != models.EmploymentUnknown
		return
	}

	validated, err := p.employment.Validate(ctx, cj.Content, original)
	if err != nil {
		cj.ProcessingErrors = append(cj.ProcessingErrors, fmt.Sprintf("failed to validate employment type: %v", err))
		cj.CleanedEmployment = mapEmploymentType(original)
		cj.EmploymentCorrected = false
		return
	}

	originalEnum := mapEmploymentType(original)
	if validated == models.EmploymentUnknown {
		cj.CleanedEmployment = originalEnum
		cj.EmploymentCorrected = false
		return
	}
	cj.CleanedEmployment = validated
	cj.EmploymentCorrected = originalEnum != validated
}

func (p *Pipeline) finalize(cj *models.CleanedJob) {
	cj.ProcessingComplete = true
}
