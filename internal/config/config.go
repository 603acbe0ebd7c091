// Package config defines the configuration file layout and converts it into
// simulation parameters. Values are resolved from defaults, a YAML file,
// FIRECALC_* environment variables and bound command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variable overrides, e.g. FIRECALC_SIMULATION_YEARS.
const EnvPrefix = "FIRECALC"

// DefaultConfigFile is the file written by init-config when no path is given.
const DefaultConfigFile = "firecalc.yaml"

// Configuration holds all configuration for firecalc.
type Configuration struct {
	Simulation SimulationConfig `mapstructure:"simulation" yaml:"simulation"`
	Output     OutputConfig     `mapstructure:"output" yaml:"output"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// SimulationConfig holds the simulation inputs as they appear in the file.
type SimulationConfig struct {
	AnnualReturn        float64 `mapstructure:"annual_return" yaml:"annual_return"`
	MonthlyContribution float64 `mapstructure:"monthly_contribution" yaml:"monthly_contribution"`
	Years               int     `mapstructure:"years" yaml:"years"`
	AnnualExpenses      float64 `mapstructure:"annual_expenses" yaml:"annual_expenses"`
	Inflation           float64 `mapstructure:"inflation" yaml:"inflation"`
	ContributionMonths  int     `mapstructure:"contribution_months" yaml:"contribution_months"` // 0 = contribute for the whole horizon
	FireMultiple        float64 `mapstructure:"fire_multiple" yaml:"fire_multiple"`
	StartDate           string  `mapstructure:"start_date" yaml:"start_date,omitempty"` // YYYY-MM
}

// OutputConfig holds report options
type OutputConfig struct {
	Format   string `mapstructure:"format" yaml:"format"`
	Language string `mapstructure:"language" yaml:"language"`
	Currency string `mapstructure:"currency" yaml:"currency"`
	File     string `mapstructure:"file" yaml:"file,omitempty"`
	Dir      string `mapstructure:"dir" yaml:"dir,omitempty"` // timestamped report file in this directory
	Render   bool   `mapstructure:"render" yaml:"render,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`             // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`           // json, console
	OutputFile string `mapstructure:"output_file" yaml:"output_file,omitempty"` // optional file output
}

// DefaultConfiguration returns the built-in configuration: 10% return, 1000 a
// month for the first 120 months of a 42 year horizon, against 72 000 of
// yearly expenses.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Simulation: SimulationConfig{
			AnnualReturn:        0.10,
			MonthlyContribution: 1000,
			Years:               42,
			AnnualExpenses:      72000,
			Inflation:           0.03,
			ContributionMonths:  120,
			FireMultiple:        25,
		},
		Output: OutputConfig{
			Format:   "console",
			Language: "en",
			Currency: "PLN",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// SetDefaults registers every configuration key with its default value so
// that environment overrides and Unmarshal see the full key set.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfiguration()
	v.SetDefault("simulation.annual_return", d.Simulation.AnnualReturn)
	v.SetDefault("simulation.monthly_contribution", d.Simulation.MonthlyContribution)
	v.SetDefault("simulation.years", d.Simulation.Years)
	v.SetDefault("simulation.annual_expenses", d.Simulation.AnnualExpenses)
	v.SetDefault("simulation.inflation", d.Simulation.Inflation)
	v.SetDefault("simulation.contribution_months", d.Simulation.ContributionMonths)
	v.SetDefault("simulation.fire_multiple", d.Simulation.FireMultiple)
	v.SetDefault("simulation.start_date", d.Simulation.StartDate)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.language", d.Output.Language)
	v.SetDefault("output.currency", d.Output.Currency)
	v.SetDefault("output.file", d.Output.File)
	v.SetDefault("output.dir", d.Output.Dir)
	v.SetDefault("output.render", d.Output.Render)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output_file", d.Logging.OutputFile)
}

// NewViper returns a viper instance with defaults and environment overrides configured.
func NewViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load resolves the configuration from v, reading configPath first when it is not empty.
func Load(v *viper.Viper, configPath string) (*Configuration, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configPath, err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	if err := configuration.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &configuration, nil
}

// LoadConfiguration loads a YAML configuration file with environment overrides applied.
func LoadConfiguration(configPath string) (*Configuration, error) {
	return Load(NewViper(), configPath)
}

// Validate checks the configuration, including the simulation parameters it describes
func (c *Configuration) Validate() error {
	if _, err := c.Parameters(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Output.Currency) == "" {
		return fmt.Errorf("output currency is required")
	}
	if c.Output.File != "" && c.Output.Dir != "" {
		return fmt.Errorf("output file and output directory are mutually exclusive")
	}
	if err := ValidateLogging(c.Logging); err != nil {
		return err
	}
	return nil
}

// ValidateLogging checks the logging level and format names
func ValidateLogging(l LoggingConfig) error {
	switch strings.ToLower(l.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", l.Level)
	}
	switch strings.ToLower(l.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("invalid log format: %s", l.Format)
	}
	return nil
}

// Parameters converts the file representation into validated simulation parameters.
func (c *Configuration) Parameters() (domain.SimulationParameters, error) {
	s := c.Simulation
	params := domain.SimulationParameters{
		AnnualReturn:        decimal.NewFromFloat(s.AnnualReturn),
		MonthlyContribution: decimal.NewFromFloat(s.MonthlyContribution),
		Years:               s.Years,
		AnnualExpenses:      decimal.NewFromFloat(s.AnnualExpenses),
		Inflation:           decimal.NewFromFloat(s.Inflation),
		FireMultiple:        decimal.NewFromFloat(s.FireMultiple),
	}
	if s.ContributionMonths < 0 {
		return params, fmt.Errorf("%w: contribution months cannot be negative, got %d", domain.ErrInvalidParameter, s.ContributionMonths)
	}
	if s.ContributionMonths > 0 {
		params = params.WithContributionMonths(s.ContributionMonths)
	}
	if s.StartDate != "" {
		start, err := dateutil.ParseMonth(s.StartDate)
		if err != nil {
			return params, fmt.Errorf("%w: start date: %v", domain.ErrInvalidParameter, err)
		}
		params.StartDate = &start
	}
	if err := params.Validate(); err != nil {
		return params, err
	}
	return params, nil
}

// SaveConfiguration writes the configuration as YAML
func SaveConfiguration(config *Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
