// internal/workers/documents/deliver-document/config.go
package deliverdocument

import (
	"time"

	"legal-workers/internal/common/config"
)

type Config struct {
	EmailEnabled   bool
	SMSEnabled     bool
	FromEmail      string
	SMSSenderID    string
	DefaultFormats []string
	Timeout        time.Duration
}

func LoadConfig() *Config {
	return &Config{
		EmailEnabled:   true,
		SMSEnabled:     true,
		DefaultFormats: []string{"pdf"},
		Timeout:        20 * time.Second,
	}
}

func FromAppConfig(cfg *config.Config) *Config {
	c := LoadConfig()
	if cfg == nil {
		return c
	}
	if wc := config.GetWorkerConfig(cfg, TaskType); wc.Timeout > 0 {
		c.Timeout = config.GetDuration(wc.Timeout)
	}
	aws := cfg.Integrations.AWS
	c.EmailEnabled = aws.SES.Enabled
	c.SMSEnabled = aws.SNS.Enabled
	c.FromEmail = aws.SES.FromEmail
	c.SMSSenderID = aws.SNS.DefaultSMSSenderID
	return c
}
