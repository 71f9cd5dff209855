// Package commands implements the CLI commands for wordwash.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "wordwash",
	Short: "Normalize Microsoft Word and Excel clipboard HTML",
	Long: `Wordwash detects HTML pasted from Microsoft Word or Excel and rewrites
it into minimal, semantically correct markup: real headings, properly
nested lists, and only the formatting a rich-text field should keep.

Examples:
  # Clean a saved clipboard capture
  wordwash clean paste.html

  # Clean from stdin, write compact HTML to a file
  pbpaste | wordwash clean -o cleaned.html --pretty=false

  # Inspect what the classifier sees without cleaning
  wordwash detect paste.html

  # Full result with stats and warnings as JSON
  wordwash clean paste.html --format json`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.wordwash.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".wordwash")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("WORDWASH")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// logInfo prints an info message to stderr (unless quiet mode).
func logInfo(format string, args ...any) {
	if !viper.GetBool("quiet") {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
