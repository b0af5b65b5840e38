package contract

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/huangsam/votetab/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 3
	MaxPrecision       = 6
	DefaultDropPrefix  = "raw_"
)

// Config holds the runtime configuration for a tabulation run.
// This struct remains the "final, validated" config.
type Config struct {
	DatasetPath string
	Column      schema.Column
	MinLevel    *schema.DifficultyLevel
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	DropPrefix  string
	Width       int // Terminal width override (0 = auto-detect)

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DatasetPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Limit          int    `mapstructure:"limit"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	DropPrefix     string `mapstructure:"drop-prefix"`
	Width          int    `mapstructure:"width"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Color          string `mapstructure:"color"`

	// --- Fields from tabulateCmd.Flags() ---
	Column string `mapstructure:"column"`

	// --- Fields from frequenciesCmd.Flags() ---
	MinLevel string `mapstructure:"min-level"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.MinLevel != nil {
		level := *c.MinLevel
		clone.MinLevel = &level
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processColumn(cfg, input); err != nil {
		return err
	}
	if err := processMinLevel(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfig(cfg, input); err != nil {
		return err
	}
	if err := resolveDatasetPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates all non-column related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}

	// --- 4. Drop Prefix ---
	cfg.DropPrefix = strings.TrimSpace(input.DropPrefix)
	if cfg.DropPrefix == "" {
		cfg.DropPrefix = DefaultDropPrefix
	}

	return nil
}

// processColumn resolves the tabulation column and asserts it exists.
func processColumn(cfg *Config, input *ConfigRawInput) error {
	name := schema.ColumnName(strings.ToLower(strings.TrimSpace(input.Column)))
	if name == "" {
		// Tabulation column is only required by the tabulate command; the
		// other commands operate on fixed columns.
		cfg.Column = schema.DifficultyCol
		return nil
	}
	col, ok := schema.ColumnByName(name)
	if !ok {
		return fmt.Errorf("unknown column '%s'. must be party, voting_difficulty, presumed_reason", input.Column)
	}
	cfg.Column = col
	return nil
}

// processMinLevel parses the optional difficulty floor for threshold filtering.
func processMinLevel(cfg *Config, input *ConfigRawInput) error {
	raw := strings.TrimSpace(input.MinLevel)
	if raw == "" {
		cfg.MinLevel = nil
		return nil
	}
	level, err := schema.ParseDifficulty(strings.ToLower(raw))
	if err != nil {
		return fmt.Errorf("invalid --min-level: %w", err)
	}
	cfg.MinLevel = &level
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateBackendConfig validates the run store backend configuration.
func validateBackendConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	return ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect)
}

// resolveDatasetPath normalizes the dataset path from positional args.
func resolveDatasetPath(cfg *Config, input *ConfigRawInput) error {
	path := strings.TrimSpace(input.DatasetPathStr)
	if path == "" {
		return fmt.Errorf("dataset path is required")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	cfg.DatasetPath = filepath.Clean(absPath)
	return nil
}
