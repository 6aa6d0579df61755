// Package cmd implements the CLI commands for betterspecs-md using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "betterspecs-md",
	Short: "betterspecs-md — convert the betterspecs.org style guide into Markdown",
	Long: `betterspecs-md converts the betterspecs.org RSpec style guide into a
Markdown document (or JSON/PDF), one level-3 heading per guideline, with the
code examples emitted as fenced ruby blocks.

Usage:
  betterspecs-md convert [flags]
  betterspecs-md check <guide.md>`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.betterspecs-md.yaml)")
}

// initConfig reads in the config file and BSMD_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".betterspecs-md")
	}

	viper.SetEnvPrefix("BSMD")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and defaults cover everything.
	_ = viper.ReadInConfig()
}
