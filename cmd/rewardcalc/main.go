package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/lotto-precourse/reward-calculator/internal/calculation"
	"github.com/lotto-precourse/reward-calculator/internal/config"
	"github.com/lotto-precourse/reward-calculator/internal/domain"
	"github.com/lotto-precourse/reward-calculator/internal/logging"
	"github.com/lotto-precourse/reward-calculator/internal/output"
	"github.com/lotto-precourse/reward-calculator/pkg/decimal"
	"github.com/spf13/cobra"
)

type globalConfig struct {
	logLevel  string
	prettyLog bool
	logger    calculation.Logger
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rewardcalc: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	g := &globalConfig{logger: calculation.NopLogger{}}
	rootCommand := &cobra.Command{
		Use:           "rewardcalc",
		Short:         "lottery reward rate and prize formatting",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCommand.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log `level` (debug, info, warn, error, off)")
	rootCommand.PersistentFlags().BoolVar(&g.prettyLog, "pretty-log", false, "human readable log output")

	rootCommand.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		l, err := logging.New(logging.Config{
			Level:  g.logLevel,
			Pretty: g.prettyLog,
			Out:    cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		g.logger = logging.NewAdapter(l)
		return nil
	}

	rootCommand.AddCommand(
		newDemoCommand(g),
		newPercentCommand(g),
		newRateCommand(),
		newCashCommand(),
	)
	return rootCommand
}

type demoOptions struct {
	configFile string
	format     string
	outputFile string
	seed       int64
}

func newDemoCommand(g *globalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:                   "demo [options]",
		Short:                 "run every sample and print the results",
		DisableFlagsInUseLine: true,
		Args:                  cobra.NoArgs,
	}
	opts := new(demoOptions)
	c.Flags().StringVar(&opts.configFile, "config", "", "YAML sample `file` (built-in sample if empty)")
	c.Flags().StringVarP(&opts.format, "format", "f", "console", "output `format` (console, json, yaml, csv)")
	c.Flags().StringVarP(&opts.outputFile, "output", "o", "", "write the report to `path` instead of stdout")
	c.Flags().Int64Var(&opts.seed, "seed", 0, "random seed for the functional sample (0 uses the clock)")
	c.RunE = func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, g, opts, cmd.Flags().Changed("seed"))
	}
	return c
}

func runDemo(cmd *cobra.Command, g *globalConfig, opts *demoOptions, seedSet bool) error {
	var cfg *domain.Configuration
	if opts.configFile == "" {
		cfg = config.DefaultConfiguration()
	} else {
		var err error
		cfg, err = config.NewInputParser().LoadFromFile(opts.configFile)
		if err != nil {
			return err
		}
	}
	if seedSet {
		cfg.Functional.Seed = opts.seed
	}

	engine := calculation.NewEngine()
	engine.SetLogger(g.logger)
	report, err := engine.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	if opts.outputFile != "" {
		if err := output.WriteFormatted(report, opts.format, opts.outputFile); err != nil {
			return err
		}
		g.logger.Infof("report written to %s", opts.outputFile)
		return nil
	}
	return output.Render(cmd.OutOrStdout(), report, opts.format)
}

func newPercentCommand(g *globalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "percent TOTAL_CASH_PRIZE TICKET_BUDGET",
		Short: "print the prize as a percentage of the budget",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prize, err := parseAmount("total cash prize", args[0])
			if err != nil {
				return err
			}
			budget, err := parseAmount("ticket budget", args[1])
			if err != nil {
				return err
			}
			if budget.IsZero() {
				g.logger.Warnf("ticket budget is zero, reward rate defaults to 0")
			}
			// A zero budget prints as "0.0", the rate at RateScale.
			rate := calculation.CalculatePercent(prize, budget)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rate.StringFixed(calculation.RateScale))
			return err
		},
	}
}

func newRateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rate REWARD_RATE",
		Short: "format a reward rate with grouped thousands and one decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := parseAmount("reward rate", args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), calculation.FormatRewardRate(rate))
			return err
		},
	}
}

func newCashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cash CASH_PRIZE",
		Short: "format a whole cash prize with grouped thousands",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.ParseInt(args[0], 10, 64)
			if errors.Is(err, strconv.ErrRange) {
				return fmt.Errorf("cash prize %q is too large", args[0])
			}
			if err != nil {
				return fmt.Errorf("cash prize %q is not a whole number", args[0])
			}
			if n < 0 {
				return fmt.Errorf("cash prize cannot be negative")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), calculation.FormatCashPrize(n))
			return err
		},
	}
}

func parseAmount(what, s string) (decimal.Amount, error) {
	a, err := decimal.NewAmountFromString(s)
	if err != nil {
		return decimal.Amount{}, fmt.Errorf("%s %q: %w", what, s, err)
	}
	if a.IsNegative() {
		return decimal.Amount{}, fmt.Errorf("%s cannot be negative", what)
	}
	return a, nil
}
