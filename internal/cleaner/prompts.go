package cleaner

import "fmt"

const experiencePromptTemplate = `Analyze the following job description and extract the minimum years of experience required.
Look for phrases like:
- "X+ years of experience"
- "X to Y years experience"
- "Minimum X years"
- "At least X years"
- "X years or more"
- Entry level, Junior, Senior, etc.

If no specific years are mentioned, infer from job level keywords:
- Intern/Internship: 0 years
- Entry level/Junior: 0-1 years
- Associate/Early career: 1-3 years
- Mid-level: 3-5 years
- Senior: 5-8 years
- Staff/Principal/Lead: 8-12 years
- Director/VP/Executive: 12+ years

Return only the minimum number of years as an integer. If unclear, return -1.

Job Description:
%s

Minimum years of experience required:
`

const salaryPromptTemplate = `Analyze the following job description and extract salary information.
Look for:
- Salary ranges (e.g., "$80,000 - $120,000")
- Hourly rates (e.g., "$25-35/hour")
- Annual salaries (e.g., "$100K per year")
- Benefits mentions that might include salary

Return the information in this exact format:
MIN_SALARY: [number or null]
MAX_SALARY: [number or null]
CURRENCY: [USD/EUR/etc or null]
PERIOD: [yearly/monthly/hourly or null]

If no salary information is found, return all fields as null.

Job Description:
%s

Salary Information:
`

const locationPromptTemplate = `Analyze the following job description and determine the work location type.
The location type should be one of: Remote, Hybrid, On-site

Look for keywords like:
- Remote: "remote work", "work from home", "remote position", "100%% remote"
- Hybrid: "hybrid", "flexible work", "some remote", "office/remote mix"
- On-site: "on-site", "in-office", "office-based", "no remote option"

Current classification: %s

Job Description:
%s

Based on the job description, is the current classification correct?
Return only: Remote, Hybrid, or On-site

Work location type:
`

const employmentPromptTemplate = `Analyze the following job description and determine the employment type.
The employment type should be one of: Full-time, Part-time, Contract, Internship

Look for keywords like:
- Full-time: "full time", "40 hours", "permanent", "salaried"
- Part-time: "part time", "20 hours", "flexible hours"
- Contract: "contract", "contractor", "freelance", "consulting"
- Internship: "intern", "internship", "student position"

Current classification: %s

Job Description:
%s

Based on the job description, is the current classification correct?
Return only: Full-time, Part-time, Contract, or Internship

Employment type:
`

func experiencePrompt(content string) string {
	return fmt.Sprintf(experiencePromptTemplate, content)
}

func salaryPrompt(content string) string {
	return fmt.Sprintf(salaryPromptTemplate, content)
}

func locationPrompt(content, currentType string) string {
	return fmt.Sprintf(locationPromptTemplate, currentType, content)
}

func employmentPrompt(content, currentType string) string {
	return fmt.Sprintf(employmentPromptTemplate, currentType, content)
}
