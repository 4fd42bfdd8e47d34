// Package cmd contains the command-line interface logic for jobscout.
// It uses the Cobra library to wire commands and flags.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var (
	configPath string
	outputFile string

	rootCmd = &cobra.Command{
		Use:   "jobscout",
		Short: "jobscout discovers new job postings on career sites.",
		Long: `A career-site link harvester that renders listing pages, classifies
hyperlinks that look like individual job postings, filters them by work
location, and reports only postings not seen in earlier runs.`,
		Version: Version,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "Path to the directory containing jobscout.yaml")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Results workbook path (overrides config)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if configPath != "" && configPath != "." {
		fmt.Fprintln(os.Stderr, "Using config path:", configPath)
	}
}
