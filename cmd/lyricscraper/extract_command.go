package main

import (
	"github.com/spf13/cobra"

	"github.com/sukalov/lyricscraper/internal/scrape"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:     "extract <url>",
		Short:   "Scrape lyrics from a known page, skipping the search",
		Example: "  lyricscraper extract --query \"bohemian rhapsody\" https://genius.com/Queen-bohemian-rhapsody-lyrics",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var recorder scrape.Recorder
			if manager := ctx.openRecorder(); manager != nil {
				defer manager.Close()
				recorder = manager
			}
			runner := ctx.newRunner(cmd.InOrStdin(), cmd.OutOrStdout(), recorder)
			return runner.RunURL(cmd.Context(), query, args[0])
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Song title the lyrics are stored under")
	_ = cmd.MarkFlagRequired("query")
	return cmd
}
