package cli

import (
	"fmt"
	"os"

	"github.com/kartoza/kinetics-lab/internal/catalog"
	"github.com/kartoza/kinetics-lab/internal/config"
	"github.com/kartoza/kinetics-lab/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalOptions are the flags shared by every command
type globalOptions struct {
	catalogPath string
	logLevel    string
	dev         bool
}

// NewRootCommand builds the command tree. Without a subcommand the root
// command starts the server, like `serve`.
func NewRootCommand(version string) *cobra.Command {
	g := &globalOptions{}
	serve := &serveOptions{}

	rootCmd := &cobra.Command{
		Use:   "kinetics-lab",
		Short: "Explore how temperature and concentration drive reaction rates",
		Long: `Kinetics Lab evaluates the Arrhenius rate constant and the reaction rate of
a catalog of chemical reactions, and plots rate against temperature in an
interactive single-page app.

Run without a subcommand to open the app window.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, g, serve)
		},
	}
	rootCmd.SetVersionTemplate("Kinetics Lab v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&g.catalogPath, "catalog", "", "Catalog file (.yaml or .db); built-in catalog when empty")
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&g.dev, "dev", false, "Human-readable development logging")
	addServeFlags(rootCmd, serve)

	rootCmd.AddCommand(
		newServeCommand(g),
		newEvaluateCommand(g),
		newCurveCommand(g),
		newReactionsCommand(g),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on error
func Execute(version string) {
	if err := NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveConfig layers defaults, the settings file, the environment and
// finally explicitly set flags.
func resolveConfig(cmd *cobra.Command, g *globalOptions) (config.Config, error) {
	cfg := config.Default()
	cfg.Version = cmd.Root().Version

	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not load settings: %v\n", err)
	}
	cfg = cfg.Apply(settings)

	flags := cmd.Flags()
	if flags.Changed("catalog") {
		cfg.CatalogPath = g.catalogPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if flags.Changed("dev") {
		cfg.Development = g.dev
	}

	return cfg, nil
}

// bootstrap resolves the configuration and builds the logger and catalog
func bootstrap(cmd *cobra.Command, g *globalOptions) (config.Config, *zap.Logger, *catalog.Catalog, error) {
	cfg, err := resolveConfig(cmd, g)
	if err != nil {
		return cfg, nil, nil, err
	}
	return load(cfg)
}

func load(cfg config.Config) (config.Config, *zap.Logger, *catalog.Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return cfg, nil, nil, err
	}
	zap.ReplaceGlobals(logger)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return cfg, logger, nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Debug("Catalog loaded", zap.String("source", cat.Source()), zap.Int("reactions", cat.Len()))

	return cfg, logger, cat, nil
}
