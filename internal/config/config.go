package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"control-horas/internal/domain"
)

// Config holds all configuration options for the billing tracker application
type Config struct {
	Billing     BillingConfig
	Database    DatabaseConfig
	Report      ReportConfig
	Form        FormConfig
	Application ApplicationConfig
}

// BillingConfig holds the billing constants. The hourly rate is applied once
// at entry creation; changing it never rewrites historical entries.
type BillingConfig struct {
	HourlyRate     float64 `env:"HORAS_HOURLY_RATE"`
	CurrencySymbol string  `env:"HORAS_CURRENCY_SYMBOL"`
}

// DatabaseConfig holds persistence configuration for both backends
type DatabaseConfig struct {
	Backend      string        `env:"HORAS_DB_BACKEND"` // "sqlite" or "postgres"
	Dir          string        `env:"HORAS_DB_DIR"`
	Filename     string        `env:"HORAS_DB_FILENAME"`
	URL          string        `env:"DATABASE_URL"` // postgres backend only
	QueryTimeout time.Duration `env:"HORAS_DB_QUERY_TIMEOUT"`
	WriteTimeout time.Duration `env:"HORAS_DB_WRITE_TIMEOUT"`
}

// ReportConfig holds the PDF layout geometry in millimeters on an A4-like
// page. ColDate/ColTrip/ColDuration/ColCost are the fixed column starts.
type ReportConfig struct {
	Title           string
	PageWidth       float64
	PageHeight      float64
	Margin          float64
	BottomThreshold float64
	ColDate         float64
	ColTrip         float64
	ColDuration     float64
	ColCost         float64
}

// FormConfig holds the entry form defaults
type FormConfig struct {
	DefaultTripType string `env:"HORAS_DEFAULT_TRIP_TYPE"`
	TripTypes       []string
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"HORAS_APP_TIMEOUT"`
	Verbose bool          `env:"HORAS_APP_VERBOSE"`
}

// Backend identifiers accepted by DatabaseConfig.Backend
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".horas")

	return &Config{
		Billing: BillingConfig{
			HourlyRate:     625,
			CurrencySymbol: "$",
		},
		Database: DatabaseConfig{
			Backend:      BackendSQLite,
			Dir:          defaultDBDir,
			Filename:     "horas.db",
			QueryTimeout: 10 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		Report: ReportConfig{
			Title:           "Control de Horas - Facturación",
			PageWidth:       210,
			PageHeight:      297,
			Margin:          20,
			BottomThreshold: 270,
			ColDate:         20,
			ColTrip:         50,
			ColDuration:     110,
			ColCost:         160,
		},
		Form: FormConfig{
			DefaultTripType: domain.TripRendicion,
			TripTypes:       []string{domain.TripRendicion, domain.TripVisita},
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the SQLite database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Billing configuration
	if rate := os.Getenv("HORAS_HOURLY_RATE"); rate != "" {
		if r, err := strconv.ParseFloat(rate, 64); err == nil {
			c.Billing.HourlyRate = r
		}
	}
	if symbol := os.Getenv("HORAS_CURRENCY_SYMBOL"); symbol != "" {
		c.Billing.CurrencySymbol = symbol
	}

	// Database configuration
	if backend := os.Getenv("HORAS_DB_BACKEND"); backend != "" {
		c.Database.Backend = backend
	}
	if dir := os.Getenv("HORAS_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("HORAS_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if url := os.Getenv("DATABASE_URL"); url != "" {
		c.Database.URL = url
	}
	if timeout := os.Getenv("HORAS_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if timeout := os.Getenv("HORAS_DB_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.WriteTimeout = d
		}
	}

	// Form configuration
	if tripType := os.Getenv("HORAS_DEFAULT_TRIP_TYPE"); tripType != "" {
		c.Form.DefaultTripType = tripType
	}

	// Application configuration
	if timeout := os.Getenv("HORAS_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("HORAS_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Billing.HourlyRate <= 0 {
		return &ConfigError{Field: "billing.hourly_rate", Message: "hourly rate must be positive"}
	}
	if c.Billing.CurrencySymbol == "" {
		return &ConfigError{Field: "billing.currency_symbol", Message: "currency symbol cannot be empty"}
	}

	switch c.Database.Backend {
	case BackendSQLite:
		if c.Database.Dir == "" {
			return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
		}
		if c.Database.Filename == "" {
			return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
		}
	case BackendPostgres:
		if c.Database.URL == "" {
			return &ConfigError{Field: "database.url", Message: "DATABASE_URL is required for the postgres backend"}
		}
	default:
		return &ConfigError{Field: "database.backend", Message: "backend must be sqlite or postgres"}
	}

	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Report.PageWidth <= 0 || c.Report.PageHeight <= 0 {
		return &ConfigError{Field: "report.page_size", Message: "page dimensions must be positive"}
	}
	if c.Report.Margin < 0 || c.Report.Margin >= c.Report.PageHeight {
		return &ConfigError{Field: "report.margin", Message: "margin must fit within the page"}
	}
	if c.Report.BottomThreshold <= c.Report.Margin || c.Report.BottomThreshold > c.Report.PageHeight {
		return &ConfigError{Field: "report.bottom_threshold", Message: "bottom threshold must lie between margin and page height"}
	}

	if c.Form.DefaultTripType == "" {
		return &ConfigError{Field: "form.default_trip_type", Message: "default trip type cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
