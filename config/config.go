package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Environment represents the application environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	// Application
	App AppConfig

	// Roster data source
	Roster RosterConfig

	// Report parameters
	Report ReportConfig

	// Observability
	Observability ObservabilityConfig
}

// AppConfig holds general application settings.
type AppConfig struct {
	Name        string
	Environment Environment
	Debug       bool
	Version     string
}

// RosterConfig holds roster data source settings.
type RosterConfig struct {
	// Path to the roster file (CSV or XLSX).
	Path string

	// Format is "csv", "xlsx", or empty to detect by file extension.
	Format string

	// Delimiter for CSV files.
	Delimiter rune

	// Sheet name for XLSX workbooks; empty means the first sheet.
	Sheet string
}

// ReportConfig holds the parameters of the analytical report.
type ReportConfig struct {
	// TargetFaculty - факультет, по которому строится детальная выборка.
	TargetFaculty string

	// GradeCourse - курс для поиска факультета с лучшим средним баллом.
	GradeCourse string

	// RareNamePrefix - буква, с которой начинаются искомые редкие имена.
	RareNamePrefix string

	// MinRunLength - минимальная длина серии подряд выданных номеров ИСУ.
	MinRunLength int
}

// ObservabilityConfig holds logging settings.
type ObservabilityConfig struct {
	LogLevel  string // debug, info, warn, error
	LogFormat string // json, text
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App:           loadAppConfig(),
		Roster:        loadRosterConfig(),
		Report:        loadReportConfig(),
		Observability: loadObservabilityConfig(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func loadAppConfig() AppConfig {
	env := Environment(getEnv("APP_ENV", "development"))

	return AppConfig{
		Name:        getEnv("APP_NAME", "isu-roster-stats"),
		Environment: env,
		Debug:       env == EnvDevelopment || getEnvBool("APP_DEBUG", false),
		Version:     getEnv("APP_VERSION", "0.1.0"),
	}
}

func loadRosterConfig() RosterConfig {
	comma := ','
	if d := getEnv("ROSTER_DELIMITER", ""); d != "" {
		comma = []rune(d)[0]
	}

	return RosterConfig{
		Path:      getEnv("ROSTER_PATH", "isu_fake_data.csv"),
		Format:    strings.ToLower(getEnv("ROSTER_FORMAT", "")),
		Delimiter: comma,
		Sheet:     getEnv("ROSTER_SHEET", ""),
	}
}

func loadReportConfig() ReportConfig {
	return ReportConfig{
		TargetFaculty:  getEnv("ROSTER_TARGET_FACULTY", "факультет систем управления и робототехники"),
		GradeCourse:    getEnv("ROSTER_GRADE_COURSE", "3-й"),
		RareNamePrefix: getEnv("ROSTER_RARE_NAME_PREFIX", "П"),
		MinRunLength:   getEnvInt("ROSTER_MIN_RUN_LENGTH", 5),
	}
}

func loadObservabilityConfig() ObservabilityConfig {
	return ObservabilityConfig{
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// DetectFormat returns the effective roster format, deriving it from the
// file extension when not set explicitly.
func (c RosterConfig) DetectFormat() string {
	if c.Format != "" {
		return c.Format
	}
	switch strings.ToLower(filepath.Ext(c.Path)) {
	case ".xlsx", ".xlsm":
		return "xlsx"
	default:
		return "csv"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	if c.Roster.Path == "" {
		errs = append(errs, "ROSTER_PATH is required")
	}

	switch c.Roster.DetectFormat() {
	case "csv", "xlsx":
	default:
		errs = append(errs, "ROSTER_FORMAT must be csv or xlsx")
	}

	if c.Report.TargetFaculty == "" {
		errs = append(errs, "ROSTER_TARGET_FACULTY is required")
	}

	if c.Report.RareNamePrefix == "" {
		errs = append(errs, "ROSTER_RARE_NAME_PREFIX is required")
	}

	if c.Report.MinRunLength < 1 {
		errs = append(errs, "ROSTER_MIN_RUN_LENGTH must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == EnvDevelopment
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == EnvProduction
}

// --- Helper functions for environment variable parsing ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
