// Package config provides configuration loading and management using koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jsamuelsen/quote-quiz/internal/domain"
)

// Default configuration values.
const (
	// DefaultServerPort is the default HTTP server port.
	DefaultServerPort = 8080

	// DefaultMaxRequestSize is the default maximum request body size (64KB).
	// Submission bodies are two short strings.
	DefaultMaxRequestSize = 64 << 10

	// DefaultRequestTimeout bounds a single request.
	DefaultRequestTimeout = 5 * time.Second

	// DefaultLogFileMaxSizeMB is the default max log file size in megabytes.
	DefaultLogFileMaxSizeMB = 100

	// DefaultLogFileMaxBackups is the default number of old log files to retain.
	DefaultLogFileMaxBackups = 3

	// DefaultLogFileMaxAgeDays is the default max days to retain old log files.
	DefaultLogFileMaxAgeDays = 28

	// DefaultDeviceHeader carries the anonymous device identity.
	DefaultDeviceHeader = "X-Device-Id"

	// DefaultSweepSchedule evicts stale locks five minutes after midnight.
	DefaultSweepSchedule = "5 0 * * *"
)

// Config is the root configuration structure.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Quiz      QuizConfig      `koanf:"quiz"      validate:"required"`
}

// AppConfig contains application-level settings.
type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig contains rolling log file settings.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"       validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"   validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"    validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

// TelemetryConfig contains OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true,omitempty,url"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
	Insecure     bool    `koanf:"insecure"`
}

// QuizConfig contains the daily quiz settings.
type QuizConfig struct {
	// Timezone decides where a calendar day starts and ends.
	Timezone string `koanf:"timezone" validate:"required,timezone"`

	// DeviceHeader names the request header carrying the device id.
	DeviceHeader string `koanf:"device_header" validate:"required"`

	// FeaturedQuoteID is served by /quotes/today. Empty features the first quote.
	FeaturedQuoteID string `koanf:"featured_quote_id"`

	Quotes       []QuoteConfig      `koanf:"quotes"        validate:"required,min=1,dive"`
	LockEviction LockEvictionConfig `koanf:"lock_eviction"`
}

// QuoteConfig seeds one quote.
type QuoteConfig struct {
	ID       string `koanf:"id"        validate:"required"`
	Template string `koanf:"template"  validate:"required"`
	Author   string `koanf:"author"    validate:"required"`
	AnswerA  string `koanf:"answer_a"  validate:"required"`
	AnswerB  string `koanf:"answer_b"  validate:"required"`
}

// LockEvictionConfig schedules removal of past-day lock entries.
type LockEvictionConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Schedule string `koanf:"schedule" validate:"required_if=Enabled true,omitempty,cronspec"`
}

// DomainQuotes converts the seed list into domain quotes.
func (q QuizConfig) DomainQuotes() []domain.Quote {
	out := make([]domain.Quote, 0, len(q.Quotes))
	for _, c := range q.Quotes {
		out = append(out, domain.Quote{
			ID:       c.ID,
			Template: c.Template,
			Author:   c.Author,
			AnswerA:  c.AnswerA,
			AnswerB:  c.AnswerB,
		})
	}

	return out
}

// defaults returns the default configuration values.
func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quote-quiz",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "10s",
		"server.write_timeout":    "10s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  DefaultRequestTimeout.String(),
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/app.log",
		"log.file.max_size":    DefaultLogFileMaxSizeMB,
		"log.file.max_backups": DefaultLogFileMaxBackups,
		"log.file.max_age":     DefaultLogFileMaxAgeDays,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quote-quiz",
		"telemetry.sampling_rate": 1.0,
		"telemetry.insecure":      true,

		"quiz.timezone":          "UTC",
		"quiz.device_header":     DefaultDeviceHeader,
		"quiz.featured_quote_id": "2025-09-08",
		"quiz.quotes": []map[string]any{
			{
				"id":       "2025-09-08",
				"template": "{A}를 예측하는 가장 좋은 방법은 {B}를 창조하는 것이다.",
				"author":   "Peter Drucker",
				"answer_a": "미래",
				"answer_b": "미래",
			},
		},
		"quiz.lock_eviction.enabled":  true,
		"quiz.lock_eviction.schedule": DefaultSweepSchedule,
	}
}

// envPrefix marks environment variables that override configuration.
const envPrefix = "APP_"

// Load builds the configuration from, lowest precedence first: defaults,
// configs/base.yaml, configs/{profile}.yaml and APP_* environment variables.
// Missing files are skipped.
func Load(profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	files := []string{"configs/base.yaml"}
	if profile != "" {
		files = append(files, "configs/"+profile+".yaml")
	}

	for _, path := range files {
		if err := loadFileIfExists(k, path); err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKeyMapper(k.Keys())), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeyMapper maps APP_QUIZ_DEVICE_HEADER onto quiz.device_header by
// matching against the already known keys, whose names may contain
// underscores. Unknown variables fall back to "_" as the separator.
func envKeyMapper(known []string) func(string) string {
	byFlat := make(map[string]string, len(known))
	for _, key := range known {
		byFlat[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(name string) string {
		flat := strings.ToLower(strings.TrimPrefix(name, envPrefix))
		if key, ok := byFlat[flat]; ok {
			return key
		}

		return strings.ReplaceAll(flat, "_", ".")
	}
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
