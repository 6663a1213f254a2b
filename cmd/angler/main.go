package main

import (
	"fmt"
	"os"

	"anglermatch/internal/config"
	"anglermatch/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	cfgPath  string
	verbose  bool
	darkMode bool

	// Loaded by PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "angler",
	Short: "Angler Match - find fishing buddies near you",
	Long: `Angler Match walks you through a short onboarding wizard and then
shows nearby anglers one card at a time.

  1. Profile: name, home water, fishing style, experience, interests
  2. Location: a typed spot or the device position, plus a search radius
  3. Availability: days in the next two weeks and preferred times
  4. Matching: match or pass on each angler

Everything stays in memory; nothing is saved when you quit.

Run without arguments to start the interactive wizard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Logging.DebugMode = true
			loaded.Logging.Level = "debug"
		}
		if darkMode {
			loaded.UI.DarkMode = true
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", cfgPath, err)
		}

		if err := logging.Initialize(loaded.Logging.Options()); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		cfg = loaded
		logger = logging.Get(logging.CategoryBoot)
		logger.Info("starting", zap.String("command", cmd.CommandPath()), zap.String("config", cfgPath))
		logConfig(loaded)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive wizard
		return runWizard(cmd.Context(), cmd.OutOrStdout())
	},
}

// deckCmd prints the candidate deck
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "List the anglers on the matching deck",
	Args:  cobra.NoArgs,
	RunE:  showDeck,
}

// calendarCmd prints the date window and time slots
var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show the bookable dates and time slots",
	Long: `Prints the two-week date window starting today and the five
time-of-day slots offered on the availability screen.`,
	Args: cobra.NoArgs,
	RunE: showCalendar,
}

// configCmd groups config file helpers
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Writes the default configuration to --config. With --force an
existing file is replaced, even one that no longer loads.`,
	Args: cobra.NoArgs,
	// The existing file is never read, so a broken one can be repaired.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: initConfig,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  showConfig,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultConfigPath(), "Config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging to the log directory")
	rootCmd.PersistentFlags().BoolVar(&darkMode, "dark", false, "Force the dark color theme")

	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	// Add commands to root
	rootCmd.AddCommand(deckCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(configCmd)
}

// logConfig records the effective settings and any env overrides.
func logConfig(c *config.Config) {
	clog := logging.Get(logging.CategoryConfig)
	clog.Debug("config loaded",
		zap.String("path", cfgPath),
		zap.Int("default_radius", c.Location.DefaultRadius),
		zap.String("deck_file", c.Deck.File),
		zap.Bool("device_position", c.Device.HasPosition()),
		zap.Bool("dark_mode", c.UI.DarkMode))

	applied, ignored := c.EnvOverrides()
	if len(applied) > 0 {
		clog.Info("env overrides applied", zap.Strings("vars", applied))
	}
	for _, key := range ignored {
		clog.Warn("ignoring unparseable env override", zap.String("var", key))
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
