package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show recently saved songs and their sources (needs REDIS_URL)",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := ctx.openRecorder()
			if manager == nil {
				return errors.New("REDIS_URL is not set")
			}
			defer manager.Close()

			titles, err := manager.RecentSongs(cmd.Context(), recent)
			if err != nil {
				return fmt.Errorf("failed to read recent songs: %w", err)
			}
			counts, err := manager.SourceCounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to read source counts: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Recent songs")
			fmt.Fprintln(out, renderRecent(titles))
			fmt.Fprintln(out, "Sources")
			fmt.Fprintln(out, renderSources(counts))
			return nil
		},
	}

	cmd.Flags().IntVarP(&recent, "recent", "n", 10, "How many recent titles to show")
	return cmd
}

func renderRecent(titles []string) string {
	tw := newTable(table.Row{"#", "Song"}, 1)
	for i, title := range titles {
		tw.AppendRow(table.Row{i + 1, title})
	}
	return tw.Render()
}

func renderSources(counts map[string]int) string {
	hosts := make([]string, 0, len(counts))
	for host := range counts {
		hosts = append(hosts, host)
	}
	sort.Slice(hosts, func(i, j int) bool {
		if counts[hosts[i]] != counts[hosts[j]] {
			return counts[hosts[i]] > counts[hosts[j]]
		}
		return hosts[i] < hosts[j]
	})

	tw := newTable(table.Row{"Source", "Songs"}, 2)
	for _, host := range hosts {
		tw.AppendRow(table.Row{host, counts[host]})
	}
	return tw.Render()
}
