// Package cmd implements the tracey command line.
package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"traceytext/internal/config"
	"traceytext/internal/logging"
)

var (
	cfg     = config.Default()
	logger  = zap.NewNop()
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tracey",
	Short: "Build and present TraceyText slide decks",
	Long: `tracey reads TraceyText presentations: views (highlighted code listings,
appended logs, per-slide captions) kept in step by one slide counter.

It writes the HTML page that drives a presentation in the browser, renders
single slides as text or JSON, and plays a presentation in the terminal.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $XDG_CONFIG_HOME/tracey/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TRACEY")
	// e.g. TRACEY_PANEL_FLOAT_X for panel.float_x
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

// setup loads the configuration and builds the logger for the command
// about to run.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	cfg = c

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	path := cfg.Logging.File
	if path == "" && cmd == presentCmd {
		// stderr belongs to the player's screen.
		path = filepath.Join(config.ConfigDir(), "tracey.log")
	}
	l, err := logging.New(level, path)
	if err != nil {
		return err
	}
	logger = l
	logger.Debug("config loaded", zap.String("file", viper.ConfigFileUsed()))
	return nil
}
