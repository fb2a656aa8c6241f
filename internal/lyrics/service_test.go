package lyrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestServiceExtractLyrics(t *testing.T) {
	fixed := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	s := &Service{now: func() time.Time { return fixed }}

	res, err := s.ExtractLyrics("bohemian rhapsody lyrics", "https://genius.com/x", ContainerMarker, geniusPage)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Equal(t, "Bohemian rhapsody", res.Title)
	require.Equal(t, ContainerMarker, res.Strategy)
	require.Equal(t, fixed, res.FetchedAt)
	require.Equal(t, "[Verse 1]\nIs this the real life?\nIs this just fantasy?\n\nCaught in a landslide\n[Chorus]\nMama, just killed a man", res.Text)
}

func TestServiceRawGatesNotCleaned(t *testing.T) {
	s := NewService()

	res, err := s.ExtractLyrics("song", "https://example.com", ParagraphFallback, `<p>text without any marker</p>`)
	require.NoError(t, err)
	require.True(t, res.Found())
	require.Empty(t, res.Text)

	res, err = s.ExtractLyrics("song", "https://example.com", ParagraphFallback, `<div>nothing</div>`)
	require.NoError(t, err)
	require.False(t, res.Found())
}
