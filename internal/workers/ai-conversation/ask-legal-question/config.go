// internal/workers/ai-conversation/ask-legal-question/config.go
package asklegalquestion

import (
	"time"

	"legal-workers/internal/common/config"
)

type Config struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout:  60 * time.Second,
		CacheTTL: time.Hour,
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
	if cfg.Ask.CacheTTL > 0 {
		c.CacheTTL = time.Duration(cfg.Ask.CacheTTL) * time.Second
	}
	return c
}
