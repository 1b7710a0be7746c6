// Load envs from .env
// Load YAML config
// Validate config
// Provide default values

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Search is one scrape request: keywords + filters, mirroring the source
// site's guest search parameters.
type Search struct {
	Keywords   string `yaml:"keywords"`
	Location   string `yaml:"location"`
	TimeFilter string `yaml:"time_filter"` // r86400=24h, r604800=7d, r2592000=30d
	Remote     bool   `yaml:"remote"`
	PartTime   bool   `yaml:"parttime"`
	TotalJobs  int    `yaml:"total_jobs"`
}

// LLM configures the fallback classifier used by the cleaning chains.
type LLM struct {
	Provider    string  `yaml:"provider"` // "ollama" or "openai"
	Model       string  `yaml:"model"`
	BaseURL     string  `yaml:"base_url"`
	APIKey      string  `yaml:"api_key" env:"OPENAI_API_KEY"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

type Config struct {
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`

	Searches []Search `yaml:"searches"`
	LLM      LLM      `yaml:"llm"`

	//Rate-limit delay bounds, milliseconds
	JobDelayMinMs     int `yaml:"job_delay_min_ms"`
	JobDelayMaxMs     int `yaml:"job_delay_max_ms"`
	CompanyDelayMinMs int `yaml:"company_delay_min_ms"`
	CompanyDelayMaxMs int `yaml:"company_delay_max_ms"`

	//Paths
	ExportCSV string `yaml:"export_csv"`

	//Optional run-summary reporting
	TelegramToken  string `yaml:"telegram_token" env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID int64  `yaml:"telegram_chat_id" env:"TELEGRAM_CHAT_ID"`

	//Optional cron spec for scheduled scrapes ("" = run once)
	Schedule string `yaml:"schedule"`
}

func Load() *Config {
	return LoadFrom("configs/config.yaml")
}

func LoadFrom(path string) *Config {
	_ = godotenv.Load()

	//Load yaml config
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Could not read %s: %v", path, err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", path, err)
		}
	}

	//Override with env vars
	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	}
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		cfg.TelegramToken = token
	}
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	cfg.applyDefaults()

	//Validate required fields
	if err := cfg.validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	return cfg
}

func (c *Config) applyDefaults() {
	if c.LLM.Provider == "" {
		c.LLM.Provider = "ollama"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "llama3.2"
	}
	if c.LLM.BaseURL == "" && c.LLM.Provider == "ollama" {
		c.LLM.BaseURL = "http://localhost:11434"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.1
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 1000
	}
	if c.JobDelayMinMs == 0 {
		c.JobDelayMinMs = 1000
	}
	if c.JobDelayMaxMs == 0 {
		c.JobDelayMaxMs = 4000
	}
	if c.CompanyDelayMinMs == 0 {
		c.CompanyDelayMinMs = 5000
	}
	if c.CompanyDelayMaxMs == 0 {
		c.CompanyDelayMaxMs = 10000
	}
	if c.ExportCSV == "" {
		c.ExportCSV = "data/jobs_export.csv"
	}
	for i := range c.Searches {
		if c.Searches[i].TimeFilter == "" {
			c.Searches[i].TimeFilter = "r86400"
		}
		if c.Searches[i].TotalJobs == 0 {
			c.Searches[i].TotalJobs = 50
		}
	}
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.LLM.Provider == "openai" && c.LLM.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required when llm.provider is openai")
	}
	if c.JobDelayMinMs > c.JobDelayMaxMs {
		return fmt.Errorf("job_delay_min_ms exceeds job_delay_max_ms")
	}
	if c.CompanyDelayMinMs > c.CompanyDelayMaxMs {
		return fmt.Errorf("company_delay_min_ms exceeds company_delay_max_ms")
	}
	return nil
}
