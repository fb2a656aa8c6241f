package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/sukalov/lyricscraper/internal/db"
)

const previewWidth = 60

func newListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show stored songs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := db.OpenConfig(cmd.Context(), ctx.config)
			if err != nil {
				return err
			}
			defer store.Close()

			songs, err := store.ListSongs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(songs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No songs stored yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderSongs(songs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum rows to show (0 for all)")
	return cmd
}

func renderSongs(songs []db.Song) string {
	tw := newTable(table.Row{"#", "Song", "Lines", "Lyrics"}, 1, 3)
	for i, song := range songs {
		tw.AppendRow(table.Row{i + 1, song.Name, len(strings.Split(song.Lyrics, "\n")), preview(song.Lyrics)})
	}
	return tw.Render()
}

func preview(text string) string {
	line := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
	runes := []rune(line)
	if len(runes) > previewWidth {
		return string(runes[:previewWidth-1]) + "…"
	}
	return line
}
