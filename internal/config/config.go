package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/opencivic/campaign-cli/internal/textclean"
)

// Config holds the full application configuration.
type Config struct {
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Batch  BatchConfig  `yaml:"batch" mapstructure:"batch"`
	Export ExportConfig `yaml:"export" mapstructure:"export"`
	Clean  CleanConfig  `yaml:"clean" mapstructure:"clean"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// BatchConfig configures batch record processing.
type BatchConfig struct {
	// MaxConcurrentLines caps the per-line parse workers in the analyze
	// command. 1 means sequential.
	MaxConcurrentLines int `yaml:"max_concurrent_lines" mapstructure:"max_concurrent_lines"`
}

// ExportConfig configures spreadsheet export.
type ExportConfig struct {
	SheetName string `yaml:"sheet_name" mapstructure:"sheet_name"`
}

// CleanConfig configures text sanitization. The placeholders replace titles
// and summaries that normalize to nothing readable.
type CleanConfig struct {
	TitlePlaceholder      string `yaml:"title_placeholder" mapstructure:"title_placeholder"`
	NoSummaryPlaceholder  string `yaml:"no_summary_placeholder" mapstructure:"no_summary_placeholder"`
	BadSummaryPlaceholder string `yaml:"bad_summary_placeholder" mapstructure:"bad_summary_placeholder"`
}

// Placeholders converts the section into the value form textclean takes.
func (c CleanConfig) Placeholders() textclean.Placeholders {
	return textclean.Placeholders{
		Title:      c.TitlePlaceholder,
		NoSummary:  c.NoSummaryPlaceholder,
		BadSummary: c.BadSummaryPlaceholder,
	}
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("CAMPAIGN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("batch.max_concurrent_lines", 1)
	v.SetDefault("export.sheet_name", "Candidates")
	v.SetDefault("clean.title_placeholder", textclean.PlaceholderTitle)
	v.SetDefault("clean.no_summary_placeholder", textclean.PlaceholderNoSummary)
	v.SetDefault("clean.bad_summary_placeholder", textclean.PlaceholderBadSummary)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
