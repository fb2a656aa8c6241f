package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sukalov/lyricscraper/internal/config"
)

func openTestDB(t *testing.T) (*DB, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "songs.db")
	d, err := Open(context.Background(), config.DriverSQLite, path)
	require.NoError(t, err)
	return d, path
}

func TestInsertAndList(t *testing.T) {
	d, _ := openTestDB(t)
	defer d.Close()
	ctx := context.Background()

	require.NoError(t, d.InsertSong(ctx, Song{Name: "Bohemian rhapsody", Lyrics: "[Verse 1]\nIs this the real life?"}))
	require.NoError(t, d.InsertSong(ctx, Song{Name: "Bohemian rhapsody", Lyrics: ""}))

	songs, err := d.ListSongs(ctx, 0)
	require.NoError(t, err)
	require.Equal(t, []Song{
		{Name: "Bohemian rhapsody", Lyrics: "[Verse 1]\nIs this the real life?"},
		{Name: "Bohemian rhapsody", Lyrics: ""},
	}, songs)

	songs, err = d.ListSongs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, songs, 1)
}

func TestOpenKeepsExistingRows(t *testing.T) {
	d, path := openTestDB(t)
	require.NoError(t, d.InsertSong(context.Background(), Song{Name: "Imagine", Lyrics: "x"}))
	require.NoError(t, d.Close())

	d, err := Open(context.Background(), config.DriverSQLite, path)
	require.NoError(t, err)
	defer d.Close()

	songs, err := d.ListSongs(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, songs, 1)
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "whatever")
	require.ErrorContains(t, err, "unsupported storage driver")
}

func TestRebind(t *testing.T) {
	pg := &DB{postgres: true}
	require.Equal(t, "INSERT INTO songs (song_name, lyrics) VALUES ($1, $2)", pg.rebind("INSERT INTO songs (song_name, lyrics) VALUES (?, ?)"))

	lite := &DB{}
	require.Equal(t, "SELECT 1 LIMIT ?", lite.rebind("SELECT 1 LIMIT ?"))
}
