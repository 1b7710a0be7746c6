package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	path := writeConfig(t, `
database_url: postgres://localhost/jobs
searches:
  - keywords: go developer
    location: Berlin
  - keywords: data engineer
    location: Remote
    remote: true
    parttime: true
    time_filter: r604800
    total_jobs: 100
llm:
  provider: ollama
  model: llama3.2
`)

	cfg := LoadFrom(path)

	assert.Equal(t, "postgres://localhost/jobs", cfg.DatabaseURL)
	if assert.Len(t, cfg.Searches, 2) {
		//defaults fill the first search
		assert.Equal(t, "r86400", cfg.Searches[0].TimeFilter)
		assert.Equal(t, 50, cfg.Searches[0].TotalJobs)
		//explicit values survive
		assert.Equal(t, "r604800", cfg.Searches[1].TimeFilter)
		assert.Equal(t, 100, cfg.Searches[1].TotalJobs)
		assert.True(t, cfg.Searches[1].Remote)
		assert.True(t, cfg.Searches[1].PartTime)
	}

	//llm and delay defaults
	assert.Equal(t, "http://localhost:11434", cfg.LLM.BaseURL)
	assert.Equal(t, 0.1, cfg.LLM.Temperature)
	assert.Equal(t, 1000, cfg.LLM.MaxTokens)
	assert.Equal(t, 1000, cfg.JobDelayMinMs)
	assert.Equal(t, 4000, cfg.JobDelayMaxMs)
	assert.Equal(t, 5000, cfg.CompanyDelayMinMs)
	assert.Equal(t, 10000, cfg.CompanyDelayMaxMs)
	assert.Equal(t, "data/jobs_export.csv", cfg.ExportCSV)
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-host/jobs")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("TELEGRAM_BOT_TOKEN", "bot-token")
	t.Setenv("TELEGRAM_CHAT_ID", "123456")

	path := writeConfig(t, `
database_url: postgres://yaml-host/jobs
llm:
  provider: openai
  model: gpt-4o-mini
`)

	cfg := LoadFrom(path)

	assert.Equal(t, "postgres://env-host/jobs", cfg.DatabaseURL)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "bot-token", cfg.TelegramToken)
	assert.Equal(t, int64(123456), cfg.TelegramChatID)
}
