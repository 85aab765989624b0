package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rcakit/ishikawa/pkg/buildinfo"
)

// Execute runs the ishikawa CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (render, serve,
// preview, profiles, cache), configures logging based on the --verbose flag,
// and executes the command tree against ctx.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "ishikawa",
		Short:        "Ishikawa renders cause-and-effect diagrams",
		Long:         `Ishikawa renders cause-and-effect (fishbone) diagrams from JSON input: an effect statement plus categorized contributing factors, laid out on a horizontal spine with angled category bones.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newProfilesCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
