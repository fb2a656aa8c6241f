package browser

import (
	"testing"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/require"
)

func TestAllocatorOptions(t *testing.T) {
	base := len(allocatorOptions(Options{}))

	require.Len(t, allocatorOptions(Options{ChromePath: "/usr/bin/chromium"}), base+1)
	require.Len(t, allocatorOptions(Options{Headless: true}), base+1)
	require.Len(t, allocatorOptions(Options{Headless: true, ChromePath: "/x"}), base+2)
}

func TestSearchTasksBoundOnlyTheSearchBox(t *testing.T) {
	load, bounded := searchTasks(Options{SearchURL: "https://www.google.com"}, "imagine lyrics")

	require.IsType(t, chromedp.NavigateAction(nil), load)
	require.Len(t, bounded, 3)
	for _, action := range bounded {
		_, isNavigate := action.(chromedp.NavigateAction)
		require.False(t, isNavigate)
	}
}
