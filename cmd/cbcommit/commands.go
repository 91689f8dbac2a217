package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/agreerandom"
	"github.com/coinbase/cb-commit-go/pkg/commit/logging"
	"github.com/coinbase/cb-commit-go/pkg/commit/registry"
)

const (
	schemeFlag     = "scheme"
	configFileFlag = "config"
	seedFlag       = "seed"
	iterationsFlag = "iterations"
	logLevelFlag   = "log-level"
	jsonFlag       = "json"

	allSchemes = "all"
)

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "cbcommit",
		Short:         "Exercise the commitment schemes compiled into this binary",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.AddCommand(newVersionCmd())
	root.AddCommand(newSchemesCmd())
	root.AddCommand(newRunCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the binary version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cbcommit %s (%s)\n", commit.WrapperVersion(), commit.BuildCommit())
		},
	}
}

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List known schemes and whether this build includes them",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range registry.Known() {
				status := "enabled"
				if _, err := registry.Lookup(name); errors.Is(err, commit.ErrSchemeDisabled) {
					status = "disabled"
				}
				fmt.Fprintf(w, "%s\t%s\n", name, status)
			}
			_ = w.Flush()
		},
	}
}

type runOptions struct {
	scheme     string
	configPath string
	seed       string
	iterations int
	logLevel   string
	json       bool
}

func newRunCmd() *cobra.Command {
	var opts runOptions
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate a key, commit, verify and check that a tampered opening is refused",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchemes(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.scheme, schemeFlag, allSchemes, "scheme to run, or \"all\"")
	cmd.Flags().StringVar(&opts.configPath, configFileFlag, "", "YAML config file; defaults are used when empty")
	cmd.Flags().StringVar(&opts.seed, seedFlag, "", "hex seed for a reproducible run (at least 16 bytes); never use for real commitments")
	cmd.Flags().IntVar(&opts.iterations, iterationsFlag, 1, "rounds per scheme")
	cmd.Flags().StringVar(&opts.logLevel, logLevelFlag, "info", "debug, info, warn or error")
	cmd.Flags().BoolVar(&opts.json, jsonFlag, false, "print reports as JSON")
	return cmd
}

func runSchemes(ctx context.Context, stdout, stderr io.Writer, opts runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	logger := logging.NewText(stderr, level)

	if opts.iterations <= 0 {
		return fmt.Errorf("--%s must be positive, got %d", iterationsFlag, opts.iterations)
	}

	cfg := commit.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := commit.LoadConfig(opts.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = *loaded
	}

	schemes, err := selectSchemes(opts.scheme)
	if err != nil {
		return err
	}

	var reports []*registry.Report
	var failed int
	for _, s := range schemes {
		rng, err := randomness(opts.seed, s.Name())
		if err != nil {
			return err
		}
		if opts.seed != "" {
			logger.Warn(ctx, "seeded run: commitments are reproducible and not hiding", "scheme", s.Name())
		}
		for i := 0; i < opts.iterations; i++ {
			report, err := s.Run(ctx, &cfg, rng, logger.With("iteration", i))
			if err != nil {
				if report == nil {
					return err
				}
				failed++
			}
			reports = append(reports, report)
		}
	}

	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("encode reports: %w", err)
		}
	} else {
		printReports(stdout, reports)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d rounds failed", failed, len(reports))
	}
	return nil
}

func selectSchemes(name string) ([]registry.Scheme, error) {
	if name == allSchemes {
		all := registry.All()
		if len(all) == 0 {
			return nil, fmt.Errorf("no schemes compiled in: %w", commit.ErrSchemeDisabled)
		}
		return all, nil
	}
	s, err := registry.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []registry.Scheme{s}, nil
}

func randomness(seedHex, label string) (io.Reader, error) {
	if seedHex == "" {
		return rand.Reader, nil
	}
	seed, err := hex.DecodeString(seedHex)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", seedFlag, err)
	}
	defer commit.ZeroizeBytes(seed)
	return agreerandom.NewReader(seed, "cbcommit/run/"+label)
}

func printReports(w io.Writer, reports []*registry.Report) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCHEME\tRESULT\tKEY\tCOMMITMENT\tOPENING\tELAPSED")
	for _, r := range reports {
		result := "ok"
		if !r.OK() {
			result = "FAIL"
		}
		fmt.Fprintf(tw, "%s\t%s\t%dB\t%dB\t%dB\t%s\n",
			r.Scheme, result, r.KeyBytes, r.CommitmentBytes, r.OpeningBytes, r.Elapsed.Round(time.Microsecond))
	}
	_ = tw.Flush()
}
