// Package main provides the CLI entry point for optref, a tool that
// generates an HTML options reference page from an options catalogue and
// the example files that use those options.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"go.jacobcolvin.com/optref/catalogue"
	"go.jacobcolvin.com/optref/docgen"
	"go.jacobcolvin.com/optref/log"
	"go.jacobcolvin.com/optref/version"
)

func main() {
	logCfg := log.NewConfig()
	cfg := docgen.NewConfig()

	rootCmd := &cobra.Command{
		Use:   "optref [flags]",
		Short: "Generate an HTML options reference page",
		Long: `optref reads the options catalogue embedded in a source file, finds the
test and gallery examples that use each option, and writes an HTML reference
page grouped by label.

Pass --debug-file to print what the scanner sees in an example file instead
of generating the page. Pass --watch with --output to keep the page up to date
while editing.`,
		Args:          cobra.NoArgs,
		Version:       version.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(os.Stderr)
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	schemaCmd := &cobra.Command{
		Use:           "schema",
		Short:         "Print the JSON Schema catalogue blocks are validated against",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printSchema(cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(schemaCmd)

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	cfg.RegisterFlags(rootCmd.Flags())

	completionErr := logCfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	completionErr = cfg.RegisterCompletions(rootCmd)
	if completionErr != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", completionErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *docgen.Config) error {
	gen, err := cfg.NewGenerator()
	if err != nil {
		return err
	}

	if cfg.Watch {
		return cfg.NewWatcher(gen).Run(ctx)
	}

	if cfg.Output == "" || cfg.Output == "-" {
		return gen.Generate(os.Stdout)
	}

	err = gen.GenerateFile(cfg.Output)
	if err != nil {
		return err
	}

	slog.Info("wrote page", slog.String("path", cfg.Output))

	return nil
}

func printSchema(w io.Writer) error {
	out, err := json.MarshalIndent(catalogue.Schema(), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", docgen.ErrWriteOutput, err)
	}

	out = append(out, '\n')

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", docgen.ErrWriteOutput, err)
	}

	return nil
}
