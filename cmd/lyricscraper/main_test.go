package main

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sukalov/lyricscraper/internal/config"
	"github.com/sukalov/lyricscraper/internal/db"
)

func TestRenderSongs(t *testing.T) {
	out := renderSongs([]db.Song{
		{Name: "Bohemian rhapsody", Lyrics: "[Verse 1]\nIs this the real life?"},
		{Name: "Imagine", Lyrics: ""},
	})
	require.Contains(t, out, "Bohemian rhapsody")
	require.Contains(t, out, "[Verse 1]")
	require.Contains(t, out, "Imagine")
	require.Contains(t, out, "╭")
}

func TestPreview(t *testing.T) {
	require.Equal(t, "first", preview("first\nsecond"))
	long := strings.Repeat("a", 100)
	got := preview(long)
	require.Equal(t, previewWidth, len([]rune(got)))
	require.True(t, strings.HasSuffix(got, "…"))
}

func TestRenderSourcesOrder(t *testing.T) {
	out := renderSources(map[string]int{"azlyrics.com": 1, "genius.com": 3, "lyrics.com": 1})
	g := strings.Index(out, "genius.com")
	a := strings.Index(out, "azlyrics.com")
	require.True(t, g >= 0 && a >= 0, out)
	require.Less(t, g, a, out)
}

func TestRootCommandWiring(t *testing.T) {
	cmd := newRootCommand()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	require.True(t, names["extract"])
	require.True(t, names["list"])
	require.True(t, names["stats"])
	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("headless"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("debug"))
}

func TestStatsRunsWithoutConfigFile(t *testing.T) {
	t.Setenv("REDIS_URL", "")
	t.Setenv("LYRICS_DEBUG", "")

	cmd := newRootCommand()
	cmd.SetArgs([]string{"stats", "--config", filepath.Join(t.TempDir(), "absent.ini")})
	cmd.SetOut(io.Discard)

	err := cmd.Execute()
	// past config loading, stopped only by the missing redis address
	require.EqualError(t, err, "REDIS_URL is not set")
	require.NotErrorIs(t, err, config.ErrMissingConfig)
}

func TestListStillNeedsConfigFile(t *testing.T) {
	cmd := newRootCommand()
	cmd.SetArgs([]string{"list", "--config", filepath.Join(t.TempDir(), "absent.ini")})
	cmd.SetOut(io.Discard)

	require.ErrorIs(t, cmd.Execute(), config.ErrMissingConfig)
}

func TestRenderRecent(t *testing.T) {
	out := renderRecent([]string{"Imagine", "Hey jude"})
	require.Less(t, strings.Index(out, "Imagine"), strings.Index(out, "Hey jude"))
	require.Contains(t, out, "╭")
}
