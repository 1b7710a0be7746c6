package cleaner

import (
	"log"
	"sort"

	"go-jobfinder/internal/models"
)

// Summary aggregates one cleaning run for reporting.
type Summary struct {
	Total               int
	WithSalary          int
	SalaryCorrected     int
	LocationCorrected   int
	EmploymentCorrected int
	WithErrors          int
	ByLevel             map[string]int
}

func Summarize(cleaned []*models.CleanedJob) Summary {
	s := Summary{Total: len(cleaned), ByLevel: make(map[string]int)}
	for _, cj := range cleaned {
		if cj.Salary != nil {
			s.WithSalary++
		}
		if cj.SalaryCorrected {
			s.SalaryCorrected++
		}
		if cj.LocationCorrected {
			s.LocationCorrected++
		}
		if cj.EmploymentCorrected {
			s.EmploymentCorrected++
		}
		if len(cj.ProcessingErrors) > 0 {
			s.WithErrors++
		}
		s.ByLevel[cj.ExperienceLevelLabel]++
	}
	return s
}

func (s Summary) Log() {
	log.Printf("[cleaner] cleaned %d jobs: %d with salary (%d corrected), %d location corrections, %d employment corrections, %d with errors",
		s.Total, s.WithSalary, s.SalaryCorrected, s.LocationCorrected, s.EmploymentCorrected, s.WithErrors)

	levels := make([]string, 0, len(s.ByLevel))
	for level := range s.ByLevel {
		levels = append(levels, level)
	}
	sort.Strings(levels)
	for _, level := range levels {
		log.Printf("[cleaner]   %s: %d", level, s.ByLevel[level])
	}
}
