package contract

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/pepalyzer/schema"
)

// Default values for configuration.
const (
	DefaultSince       = "30 days"
	DefaultResultLimit = 0 // 0 = no limit
	MaxResultLimit     = 1000
)

// Config holds the runtime configuration for a report run.
// This struct is the final, validated config.
type Config struct {
	RepoPath    string
	StartTime   time.Time
	EndTime     time.Time
	Output      schema.OutputMode
	OutputFile  string
	Order       schema.OrderMode
	ResultLimit int

	WithMetadata bool // Read current PEP documents and merge header metadata
	WithSignals  bool // Run signal detection over current PEP documents

	UseColors bool // Enable colored labels in text/table output
	Width     int  // Terminal width override (0 = auto-detect)
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config
// file). Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	Since      string `mapstructure:"since"`
	Until      string `mapstructure:"until"`
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Order      string `mapstructure:"order"`
	Limit      int    `mapstructure:"limit"`
	Metadata   bool   `mapstructure:"metadata"`
	Signals    bool   `mapstructure:"signals"`
	Color      string `mapstructure:"color"`
	Width      int    `mapstructure:"width"`
}

// Clone returns a copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and populates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processTimeRange(cfg, input, time.Now()); err != nil {
		return err
	}
	resolveRepoPath(ctx, cfg, client, input)
	return nil
}

// validateSimpleInputs processes and validates all non-time fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output mode '%s'. must be text, table, json, csv, parquet", input.Output)
	}

	cfg.Order = schema.OrderMode(strings.ToLower(input.Order))
	if _, ok := schema.ValidOrderModes[cfg.Order]; !ok {
		return fmt.Errorf("invalid order mode '%s'. must be number or activity", input.Order)
	}

	if input.Limit < 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be between 0 and %d", MaxResultLimit)
	}
	cfg.ResultLimit = input.Limit

	if input.Width < 0 {
		return fmt.Errorf("width must be non-negative")
	}
	cfg.Width = input.Width

	useColors, err := ParseBoolString(strings.ToLower(input.Color))
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	cfg.OutputFile = input.OutputFile
	cfg.WithMetadata = input.Metadata
	cfg.WithSignals = input.Signals
	return nil
}

// processTimeRange resolves the since/until bounds. Since defaults to the
// standard lookback window; until is optional and zero means unbounded.
func processTimeRange(cfg *Config, input *ConfigRawInput, now time.Time) error {
	since := input.Since
	if strings.TrimSpace(since) == "" {
		since = DefaultSince
	}
	start, err := ParseTimeBound(since, now)
	if err != nil {
		return fmt.Errorf("invalid --since value: %w", err)
	}
	cfg.StartTime = start

	if strings.TrimSpace(input.Until) != "" {
		end, err := ParseTimeBound(input.Until, now)
		if err != nil {
			return fmt.Errorf("invalid --until value: %w", err)
		}
		if !end.After(cfg.StartTime) {
			return fmt.Errorf("--until must be after --since")
		}
		cfg.EndTime = end
	}
	return nil
}

// resolveRepoPath normalizes the repo path to the repository root. If git
// cannot resolve a root the raw path is kept with a warning: the log fetch
// will then degrade to an empty commit set rather than a hard failure.
func resolveRepoPath(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) {
	path := input.RepoPathStr
	if path == "" {
		path = "."
	}
	root, err := client.GetRepoRoot(ctx, path)
	if err != nil {
		LogWarn("Could not resolve repository root", err)
		cfg.RepoPath = path
		return
	}
	cfg.RepoPath = root
}
