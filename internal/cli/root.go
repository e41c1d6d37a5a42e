// Package cli implements cargoctl, the offline companion to the cargo service.
//
// Every command runs in-process against the same packing engine, manifest
// parsers and report renderers the HTTP API uses, so plans computed here match
// what the service would return.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/guttosm/cargo-service/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Exit codes returned by Execute.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitInvalid    = 2
	ExitIncomplete = 3
)

// Build information, injected from main via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// globalFlags are bound to the root command's persistent flags.
type globalFlags struct {
	json    bool
	verbose bool
}

// ExitError carries a process exit code alongside the failure.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitErr(code int, err error) error {
	return &ExitError{Code: code, Err: err}
}

// NewRootCommand builds cargoctl with all subcommands registered.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "cargoctl",
		Short: "Plan container loads from the command line",
		Long: `cargoctl packs cargo manifests into shipping containers, renders load
reports and manages credentials for the cargo service.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.WarnLevel
			if flags.verbose {
				level = zerolog.DebugLevel
			}
			log := logger.New(cmd.ErrOrStderr(), true).Level(level)
			cmd.SetContext(log.WithContext(cmd.Context()))
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flags.json, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(
		newPackCommand(flags),
		newSnapCommand(flags),
		newContainersCommand(flags),
		newConstraintsCommand(flags),
		newTokenCommand(flags),
		newKeysCommand(flags),
	)

	return rootCmd
}

// Execute runs rootCmd with args and returns the process exit code.
func Execute(rootCmd *cobra.Command, args []string) int {
	rootCmd.SetArgs(args)
	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return ExitOK
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	printError(rootCmd.ErrOrStderr(), jsonOut, err)

	var exit *ExitError
	if errors.As(err, &exit) {
		return exit.Code
	}
	return ExitFailure
}

func printError(w io.Writer, jsonOut bool, err error) {
	if jsonOut {
		_ = writeJSON(w, map[string]any{"error": map[string]string{"message": err.Error()}})
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Main is the cargoctl entry point used by cmd/cargoctl.
func Main() {
	os.Exit(Execute(NewRootCommand(), os.Args[1:]))
}
