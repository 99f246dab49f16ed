package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/quaywork/warehousectl/internal/config"
	"github.com/quaywork/warehousectl/internal/shipstation"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Settings string // optional settings file path
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the warehousectl CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "warehousectl",
		Short: "Warehouse order actions against ShipStation",
		Long: `warehousectl locates orders in ShipStation by order number or fuzzy
customer name and applies warehouse actions: a RUSH tag or an internal note.

Examples:
  warehousectl do "Noah Wolfe" RUSH
  warehousectl do 9219 "check battery"
  warehousectl find "noha wolfe"`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			configureLogging(opts.Verbose)
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Settings, "settings", "", "path to YAML settings file")

	// Add subcommands
	cmd.AddCommand(NewFindCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewTagsCommand(opts))
	cmd.AddCommand(NewRushCommand(opts))
	cmd.AddCommand(NewNoteCommand(opts))
	cmd.AddCommand(NewDoCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// configureLogging sets the default slog handler based on the verbose flag.
func configureLogging(verbose bool) {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// newClient loads configuration and constructs the upstream client.
// Missing credentials come back as a ConfigError exit before any network
// call happens.
func newClient(opts *RootOptions) (*shipstation.Client, config.Config, error) {
	cfg, err := config.Load(opts.Settings)
	if err != nil {
		return nil, config.Config{}, WrapExitError(ExitConfigError, "configuration error", err)
	}
	return shipstation.New(cfg), cfg, nil
}
