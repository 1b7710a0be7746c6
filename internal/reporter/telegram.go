package reporter

import (
	"fmt"

	"go-jobfinder/internal/config"
	"go-jobfinder/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	//turn this on in case of debug
	//bot.Debug = true

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

// SendRunSummary reports a finished scrape run.
func (t *TelegramReporter) SendRunSummary(run *models.JobRun, savedJobs int) error {
	text := fmt.Sprintf(
		"✅ <b>Scrape run #%d finished</b>\n"+
			"🔎 %s in %s\n"+
			"📋 %d jobs found, %d new\n"+
			"📅 %s",
		run.ID,
		run.SearchQuery,
		run.LocationFilter,
		run.JobCount,
		savedJobs,
		run.RunDate.Format("2006-01-02"),
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendError(errReq error) error {
	text := fmt.Sprintf("⚠️ <b>JobFinder Error</b>:\n%v", errReq)
	return t.SendMessage(text)
}
