// internal/workers/documents/generate-document/config.go
package generatedocument

import (
	"time"

	"legal-workers/internal/common/config"
	"legal-workers/internal/legal/projector"
)

type Config struct {
	Timeout        time.Duration
	DefaultFormats []string
	Paginated      projector.PaginatedOptions
	AppVersion     string
}

func LoadConfig() *Config {
	return &Config{
		Timeout:        30 * time.Second,
		DefaultFormats: []string{string(projector.FormatHTML), string(projector.FormatPDF)},
		Paginated:      projector.DefaultPaginatedOptions(),
		AppVersion:     "1.0.0",
	}
}

// FromAppConfig overlays the application settings on the defaults.
func FromAppConfig(cfg *config.Config) *Config {
	c := LoadConfig()
	if cfg == nil {
		return c
	}

	if wc := config.GetWorkerConfig(cfg, TaskType); wc.Timeout > 0 {
		c.Timeout = config.GetDuration(wc.Timeout)
	}
	docs := cfg.Documents
	if len(docs.DefaultFormats) > 0 {
		c.DefaultFormats = docs.DefaultFormats
	}
	if docs.PageSize != "" {
		c.Paginated.PageSize = docs.PageSize
	}
	if docs.FontFamily != "" {
		c.Paginated.FontFamily = docs.FontFamily
	}
	if docs.FontSize > 0 {
		c.Paginated.FontSize = docs.FontSize
	}
	if docs.AppVersion != "" {
		c.AppVersion = docs.AppVersion
	} else if cfg.App.Version != "" {
		c.AppVersion = cfg.App.Version
	}
	if cfg.App.Name != "" {
		c.Paginated.Creator = cfg.App.Name
	}
	return c
}
