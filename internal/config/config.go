// Package config loads application configuration from file and environment
// and initializes the global logger.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sells-group/listclean-cli/internal/clean"
)

// Config holds the full application configuration.
type Config struct {
	Clean     CleanConfig     `yaml:"clean" mapstructure:"clean"`
	Directory DirectoryConfig `yaml:"directory" mapstructure:"directory"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Telemetry TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// CleanConfig selects which cleaning steps run.
type CleanConfig struct {
	Names                    bool   `yaml:"names" mapstructure:"names"`
	Company                  bool   `yaml:"company" mapstructure:"company"`
	InferLastName            bool   `yaml:"infer_last_name" mapstructure:"infer_last_name"`
	ValidateEmail            bool   `yaml:"validate_email" mapstructure:"validate_email"`
	CheckCompanyEmailPattern bool   `yaml:"check_company_email_pattern" mapstructure:"check_company_email_pattern"`
	Phone                    bool   `yaml:"phone" mapstructure:"phone"`
	JobTitle                 bool   `yaml:"job_title" mapstructure:"job_title"`
	QualityScore             bool   `yaml:"quality_score" mapstructure:"quality_score"`
	RemoveDuplicates         bool   `yaml:"remove_duplicates" mapstructure:"remove_duplicates"`
	SplitByCompany           bool   `yaml:"split_by_company" mapstructure:"split_by_company"`
	MaxLists                 int    `yaml:"max_lists" mapstructure:"max_lists"`
	StripEmoji               bool   `yaml:"strip_emoji" mapstructure:"strip_emoji"`
	SplitTaglines            bool   `yaml:"split_taglines" mapstructure:"split_taglines"`
	StrictEmail              bool   `yaml:"strict_email" mapstructure:"strict_email"`
	DefaultRegion            string `yaml:"default_region" mapstructure:"default_region"`
	Parallelism              int    `yaml:"parallelism" mapstructure:"parallelism"`
}

// Options converts the config into pipeline options.
func (c CleanConfig) Options() clean.Options {
	return clean.Options{
		Names:             c.Names,
		Company:           c.Company,
		InferLastName:     c.InferLastName,
		ValidateEmail:     c.ValidateEmail,
		CheckEmailPattern: c.CheckCompanyEmailPattern,
		Phone:             c.Phone,
		JobTitle:          c.JobTitle,
		QualityScore:      c.QualityScore,
		RemoveDuplicates:  c.RemoveDuplicates,
		SplitByCompany:    c.SplitByCompany,
		MaxLists:          c.MaxLists,
		StripEmoji:        c.StripEmoji,
		SplitTaglines:     c.SplitTaglines,
		StrictEmail:       c.StrictEmail,
		DefaultRegion:     c.DefaultRegion,
		Parallelism:       c.Parallelism,
	}
}

// DirectoryConfig points at the optional company-directory file.
type DirectoryConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// StoreConfig configures the run-history database. An empty path disables
// persistence.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// TelemetryConfig configures the optional usage webhook.
type TelemetryConfig struct {
	WebhookURL  string `yaml:"webhook_url" mapstructure:"webhook_url"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("LISTCLEAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults: all cleaning steps on; pattern checking, dedupe and
	// splitting are opt-in.
	v.SetDefault("clean.names", true)
	v.SetDefault("clean.company", true)
	v.SetDefault("clean.infer_last_name", true)
	v.SetDefault("clean.validate_email", true)
	v.SetDefault("clean.check_company_email_pattern", false)
	v.SetDefault("clean.phone", true)
	v.SetDefault("clean.job_title", true)
	v.SetDefault("clean.quality_score", true)
	v.SetDefault("clean.remove_duplicates", false)
	v.SetDefault("clean.split_by_company", false)
	v.SetDefault("clean.max_lists", 4)
	v.SetDefault("clean.strip_emoji", true)
	v.SetDefault("clean.split_taglines", true)
	v.SetDefault("clean.strict_email", false)
	v.SetDefault("clean.default_region", "US")
	v.SetDefault("clean.parallelism", 1)
	v.SetDefault("store.path", "listclean.db")
	v.SetDefault("telemetry.timeout_secs", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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
