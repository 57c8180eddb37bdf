package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/studysaathi/studysaathi/internal/logger"
)

var (
	configFile string
)

func main() {
	var debugMode bool
	rootCommand := cobra.Command{
		Use:           "studysaathi",
		Short:         "Inspect and export StudySaathi progress from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(debugMode)
		},
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	rootCommand.AddCommand(
		newMigrateCommand(),
		newProgressCommand(),
		newPlanCommand(),
	)
	if err := rootCommand.Execute(); err != nil {
		if _, fprintfErr := fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err); fprintfErr != nil {
			panic(fmt.Errorf("failed to output an error: %w. Reason: %w", err, fprintfErr))
		}
		os.Exit(1)
	}
	_ = zap.L().Sync()
	os.Exit(0)
}

// setupLogger replaces the global zap logger; commands log through zap.L().
func setupLogger(debugMode bool) error {
	log, err := logger.New("local", debugMode)
	if err != nil {
		return fmt.Errorf("logger.New() > %w", err)
	}
	if !debugMode {
		log = log.WithOptions(zap.IncreaseLevel(zapcore.InfoLevel))
	}
	zap.ReplaceGlobals(log)
	return nil
}
