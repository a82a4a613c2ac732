package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/pakaje/pakaje/internal/branding"
	"github.com/pakaje/pakaje/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	manifestFile string
	verbose      bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: branding.CLIName(),
})

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates, prints and shape-checks package.json manifests.

The manifest path comes from --file, then the "file" config key, then ./package.json.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		setupLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&manifestFile, "file", "f", "", "Path to the manifest (default: config key \"file\" or ./package.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags.
// Errors are logged before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logger.Error(err.Error())
		return err
	}
	return nil
}

// setupLogger applies --verbose or the log_level setting. An unparsable
// log_level falls back to info with a warning.
func setupLogger() {
	if verbose {
		logger.SetLevel(log.DebugLevel)
		return
	}
	raw := config.Get(config.KeyLogLevel)
	level, err := log.ParseLevel(raw)
	if err != nil {
		logger.SetLevel(log.InfoLevel)
		logger.Warn("ignoring invalid config value", "key", config.KeyLogLevel, "value", raw, "fallback", config.DefaultLogLevel)
		return
	}
	logger.SetLevel(level)
}

// resolveFile returns the manifest path the current command operates on.
func resolveFile() string {
	if manifestFile != "" {
		return manifestFile
	}
	return config.Get(config.KeyFile)
}
