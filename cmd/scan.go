package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"jobscout/internal/config"
	"jobscout/internal/core"
	"jobscout/internal/keystore"
	"jobscout/internal/logger"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Visit the configured career pages and collect new job postings",
	Long: `Scan renders each career page from the input workbook, classifies every
hyperlink, filters by location, and appends postings not seen in earlier
runs to the results workbook.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}

		if inputFile, _ := cmd.Flags().GetString("input"); inputFile != "" {
			cfg.Input.File = inputFile
		}
		if outputFile != "" {
			cfg.Output.File = outputFile
		}

		logger.Setup(cfg.Logging)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		keys, err := keystore.Open(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("Redis key mirror unavailable, continuing with workbook history only")
		}
		defer keys.Close()

		orchestrator := core.NewOrchestrator(&cfg, keys)
		defer orchestrator.Close()

		if err := orchestrator.Run(ctx); err != nil {
			log.Fatal().Err(err).Msg("Scan failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringP("input", "i", "", "Targets workbook path (overrides config)")
}
