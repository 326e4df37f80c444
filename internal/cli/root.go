// Package cli implements the quarry command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quarry/internal/config"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "quarry",
	Short: "Query web search providers from one place",
	Long: `Quarry is a uniform front end over multiple web-search providers.
Each provider has its own authentication scheme and wire format; quarry
hides that behind one engine contract so a query looks the same no
matter which backend answers it.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.quarry/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(enginesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		cfg = &config.Config{}
	}

	// Merge verbose flag from config if not set via CLI
	if cfg.Verbose && !verbose {
		verbose = true
	}
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of quarry",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("quarry v0.2.0")
	},
}

// configCmd shows config info
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration information",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultConfigPath()
		}

		fmt.Println("📋 Configuration")
		fmt.Printf("   Path: %s\n", path)
		fmt.Printf("   Exists: %v\n", config.Exists(path))

		if cfg != nil {
			fmt.Printf("   Default engine: %s\n", cfg.Engine)
			fmt.Printf("   Configured engines: %d\n", len(cfg.Engines))
			fmt.Printf("   Proxy: %v\n", cfg.Proxy != "")
			fmt.Printf("   Verbose: %v\n", cfg.Verbose)
		}
		return nil
	},
}

// configInitCmd writes a starter config file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file with empty credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = config.DefaultConfigPath()
		}
		if config.Exists(path) {
			return fmt.Errorf("config already exists at %s", path)
		}
		if err := config.CreateDefault(path); err != nil {
			return err
		}
		fmt.Printf("Wrote starter config to %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verbose
}
