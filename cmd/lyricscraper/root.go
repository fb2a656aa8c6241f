package main

import (
	"github.com/spf13/cobra"

	"github.com/sukalov/lyricscraper/internal/scrape"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var headlessFlag bool
	var debugFlag bool

	ctx := &commandContext{configPath: &configFlag, headless: &headlessFlag, debug: &debugFlag}

	rootCmd := &cobra.Command{
		Use:           "lyricscraper",
		Short:         "Search a song, scrape its lyrics and store them",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx.initDebug()
			initChannelLogging()
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var recorder scrape.Recorder
			if manager := ctx.openRecorder(); manager != nil {
				defer manager.Close()
				recorder = manager
			}
			runner := ctx.newRunner(cmd.InOrStdin(), cmd.OutOrStdout(), recorder)
			return runner.Run(cmd.Context())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "config.ini", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&headlessFlag, "headless", false, "Run the browser without a window")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Print debug log lines (also LYRICS_DEBUG=1)")

	rootCmd.AddCommand(newExtractCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))

	return rootCmd
}

// configFreeCommands only talk to redis and work without config.ini.
var configFreeCommands = map[string]bool{
	"stats": true,
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	return configFreeCommands[cmd.Name()]
}
