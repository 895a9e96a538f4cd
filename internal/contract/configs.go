package contract

import (
	"fmt"
	"strings"

	"github.com/vahanlens/vahanlens/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
	DefaultServeAddr   = ":8080"
	DefaultSeedValue   = 42
)

// Config holds the runtime configuration for the reports.
// This struct remains the "final, validated" config.
type Config struct {
	Filter      schema.FilterSpec
	GroupBy     []schema.Dimension
	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	TopBy    schema.TopBy
	TopGrain schema.Grain

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	SeedValue int64
	SeedFrom  schema.Period
	SeedTo    schema.Period

	ServeAddr string

	UseColors bool // Enable colored growth labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	From           string `mapstructure:"from"`
	To             string `mapstructure:"to"`
	Categories     string `mapstructure:"category"`
	Makers         string `mapstructure:"maker"`
	States         string `mapstructure:"state"`
	GroupBy        string `mapstructure:"group-by"`
	Limit          int    `mapstructure:"limit"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Width          int    `mapstructure:"width"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`
	Color          string `mapstructure:"color"`

	// --- Fields from topCmd.Flags() ---
	By    string `mapstructure:"by"`
	Grain string `mapstructure:"grain"`

	// --- Fields from seedCmd.Flags() ---
	Seed int64 `mapstructure:"seed"`

	// --- Fields from serveCmd.Flags() ---
	Addr string `mapstructure:"addr"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.GroupBy != nil {
		clone.GroupBy = make([]schema.Dimension, len(c.GroupBy))
		copy(clone.GroupBy, c.GroupBy)
	}
	clone.Filter = cloneFilter(c.Filter)
	return &clone
}

func cloneFilter(f schema.FilterSpec) schema.FilterSpec {
	out := f
	if f.From != nil {
		from := *f.From
		out.From = &from
	}
	if f.To != nil {
		to := *f.To
		out.To = &to
	}
	if f.Categories != nil {
		out.Categories = make([]schema.Category, len(f.Categories))
		copy(out.Categories, f.Categories)
	}
	if f.Makers != nil {
		out.Makers = make([]string, len(f.Makers))
		copy(out.Makers, f.Makers)
	}
	if f.States != nil {
		out.States = make([]string, len(f.States))
		copy(out.States, f.States)
	}
	return out
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processFilter(cfg, input); err != nil {
		return err
	}
	if err := processGrouping(cfg, input); err != nil {
		return err
	}
	if err := processTopMode(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
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

// validateSimpleInputs processes and validates all non-filter related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.SeedValue = input.Seed
	cfg.ServeAddr = input.Addr
	if cfg.ServeAddr == "" {
		cfg.ServeAddr = DefaultServeAddr
	}

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

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", input.Output)
	}

	// --- 3. Backend Validation ---
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}

	return nil
}

// processFilter parses the period bounds and list filters into a FilterSpec.
func processFilter(cfg *Config, input *ConfigRawInput) error {
	filter := schema.FilterSpec{}

	if input.From != "" {
		from, err := schema.ParsePeriod(input.From)
		if err != nil {
			return fmt.Errorf("invalid --from: %w", err)
		}
		filter.From = &from
	}
	if input.To != "" {
		to, err := schema.ParsePeriod(input.To)
		if err != nil {
			return fmt.Errorf("invalid --to: %w", err)
		}
		filter.To = &to
	}

	for _, raw := range splitList(input.Categories) {
		cat := schema.Category(strings.ToUpper(raw))
		if _, ok := schema.ValidCategories[cat]; !ok {
			return fmt.Errorf("invalid category '%s'. must be 2W, 3W, 4W", raw)
		}
		filter.Categories = append(filter.Categories, cat)
	}
	filter.Makers = splitList(input.Makers)
	filter.States = splitList(input.States)

	if err := filter.Validate(); err != nil {
		return err
	}
	cfg.Filter = filter

	// Seed range defaults to the filter bounds so 'seed --from --to' reads
	// naturally. Falling back happens in the seed generator itself.
	if filter.From != nil {
		cfg.SeedFrom = *filter.From
	}
	if filter.To != nil {
		cfg.SeedTo = *filter.To
	}

	return nil
}

// processGrouping parses the group-by dimension list.
func processGrouping(cfg *Config, input *ConfigRawInput) error {
	cfg.GroupBy = nil
	for _, raw := range splitList(input.GroupBy) {
		dim := schema.Dimension(strings.ToLower(raw))
		if _, ok := schema.ValidDimensions[dim]; !ok {
			return fmt.Errorf("invalid group-by dimension '%s'. must be period, category, maker, state", raw)
		}
		cfg.GroupBy = append(cfg.GroupBy, dim)
	}
	if len(cfg.GroupBy) == 0 {
		cfg.GroupBy = []schema.Dimension{schema.DimPeriod, schema.DimCategory}
	}
	return nil
}

// processTopMode parses the ranking axis and grain for the top command.
func processTopMode(cfg *Config, input *ConfigRawInput) error {
	cfg.TopBy = schema.TopBy(strings.ToLower(input.By))
	if cfg.TopBy == "" {
		cfg.TopBy = schema.TopByMaker
	}
	if _, ok := schema.ValidTopBy[cfg.TopBy]; !ok {
		return fmt.Errorf("invalid --by value '%s'. must be maker or category", input.By)
	}

	cfg.TopGrain = schema.Grain(strings.ToLower(input.Grain))
	if cfg.TopGrain == "" {
		cfg.TopGrain = schema.MonthGrain
	}
	if _, ok := schema.ValidGrains[cfg.TopGrain]; !ok {
		return fmt.Errorf("invalid --grain value '%s'. must be month, quarter, year", input.Grain)
	}
	return nil
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
