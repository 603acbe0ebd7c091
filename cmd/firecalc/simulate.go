package main

import (
	"fmt"

	"github.com/rpgo/fire-calculator/internal/calculation"
	"github.com/rpgo/fire-calculator/internal/config"
	"github.com/rpgo/fire-calculator/internal/domain"
	"github.com/rpgo/fire-calculator/internal/output"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// flagKeys maps simulate flags to configuration keys.
var flagKeys = map[string]string{
	"annual-return":        "simulation.annual_return",
	"monthly-contribution": "simulation.monthly_contribution",
	"years":                "simulation.years",
	"annual-expenses":      "simulation.annual_expenses",
	"inflation":            "simulation.inflation",
	"contribution-months":  "simulation.contribution_months",
	"fire-multiple":        "simulation.fire_multiple",
	"start-date":           "simulation.start_date",
	"format":               "output.format",
	"lang":                 "output.language",
	"currency":             "output.currency",
	"output":               "output.file",
	"output-dir":           "output.dir",
	"render":               "output.render",
	"log-level":            "logging.level",
	"log-format":           "logging.format",
}

type simulateOptions struct {
	configFile string
	saveConfig string
	debug      bool
}

func newSimulateCmd() *cobra.Command {
	var opts simulateOptions
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation and print the report",
		Example: `  firecalc simulate
  firecalc simulate --annual-return 0.07 --monthly-contribution 2500 --years 30
  firecalc simulate --config firecalc.yaml --format html --output report.html
  firecalc simulate --lang pl --contribution-months 120 --start-date 2025-01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, v, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configFile, "config", "c", "", "YAML configuration file")
	f.Float64("annual-return", 0, "expected annual return, e.g. 0.10 for 10%")
	f.Float64("monthly-contribution", 0, "amount invested every month")
	f.Int("years", 0, "investment horizon in years")
	f.Float64("annual-expenses", 0, "current annual expenses; the FIRE target is a multiple of them")
	f.Float64("inflation", 0, "annual inflation applied to the FIRE target")
	f.Int("contribution-months", 0, "stop contributing after this many months (default 120, 0 = never)")
	f.Float64("fire-multiple", 0, "FIRE target as a multiple of annual expenses")
	f.String("start-date", "", "first simulated month (YYYY-MM), used to date the FIRE month")
	f.StringP("format", "f", "", "output format (see 'firecalc formats')")
	f.String("lang", "", "report language: en, pl")
	f.String("currency", "", "currency code shown in the report")
	f.StringP("output", "o", "", "write the report to a file instead of stdout")
	f.String("output-dir", "", "write the report to a timestamped file in this directory")
	f.Bool("render", false, "render markdown output for the terminal")
	f.String("log-level", "", "log level (debug, info, warn, error)")
	f.String("log-format", "", "log format (console, json)")
	f.BoolVar(&opts.debug, "debug", false, "log a per-year breakdown while simulating")
	f.StringVar(&opts.saveConfig, "save-config", "", "save the effective configuration to a YAML file")

	if err := bindFlags(v, f); err != nil {
		panic(err)
	}
	return cmd
}

// bindFlags binds every flag in flagKeys to its configuration key, so a flag
// set on the command line overrides the environment and the config file.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := fs.Lookup(name)
		if flag == nil {
			return fmt.Errorf("bind flag %s: not defined", name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

func runSimulate(cmd *cobra.Command, v *viper.Viper, opts simulateOptions) error {
	cfg, err := config.Load(v, opts.configFile)
	if err != nil {
		return err
	}
	if !output.IsSupportedLanguage(cfg.Output.Language) {
		return fmt.Errorf("unsupported language %q, expected one of %v", cfg.Output.Language, output.SupportedLanguages())
	}
	formatter, err := output.ResolveFormatter(cfg.Output.Format)
	if err != nil {
		return err
	}
	if cfg.Output.Render && formatter.Name() != "markdown" {
		return fmt.Errorf("--render requires markdown output, got %s", formatter.Name())
	}

	levelOverride := ""
	if opts.debug {
		levelOverride = "debug"
	}
	logger, err := initializeLogger(cfg.Logging, levelOverride)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	params, err := cfg.Parameters()
	if err != nil {
		return err
	}

	engine := calculation.NewSimulationEngine()
	engine.Debug = opts.debug
	engine.SetLogger(logger.Sugar())
	result, err := engine.Run(cmd.Context(), params)
	if err != nil {
		return err
	}

	if opts.saveConfig != "" {
		if err := config.SaveConfiguration(cfg, opts.saveConfig); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		logger.Info("configuration saved", zap.String("op", "simulate"), zap.String("file", opts.saveConfig))
	}

	report := &domain.Report{
		Result:   result,
		Language: cfg.Output.Language,
		Currency: cfg.Output.Currency,
	}

	if cfg.Output.File != "" {
		if err := output.SaveReport(cfg.Output.File, report, formatter.Name()); err != nil {
			return err
		}
		logger.Info("report written",
			zap.String("op", "simulate"),
			zap.String("format", formatter.Name()),
			zap.String("file", cfg.Output.File),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", cfg.Output.File)
		return nil
	}

	if cfg.Output.Dir != "" {
		path, err := output.WriteFormatted(formatter, report, cfg.Output.Dir)
		if err != nil {
			return err
		}
		logger.Info("report written",
			zap.String("op", "simulate"),
			zap.String("format", formatter.Name()),
			zap.String("file", path),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
		return nil
	}

	if cfg.Output.Render {
		md, err := formatter.Format(report)
		if err != nil {
			return err
		}
		rendered, err := renderMarkdown(md, defaultWrapWidth)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
		return err
	}

	return output.GenerateReport(cmd.OutOrStdout(), report, formatter.Name())
}
