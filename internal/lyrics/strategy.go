package lyrics

import "strings"

// Strategy selects how lyrics are pulled out of a rendered page.
type Strategy int

const (
	// ParagraphFallback joins every non-empty <p> on the page.
	ParagraphFallback Strategy = iota
	// ContainerMarker joins the elements flagged as lyrics containers.
	ContainerMarker
	// LongestTextBlock takes the first <div> holding more than MinBlockWords words.
	LongestTextBlock
)

const (
	GeniusDomain   = "genius.com"
	AZLyricsDomain = "azlyrics.com"

	// ContainerSelector matches the lyrics containers on genius.com pages.
	ContainerSelector = `div[data-lyrics-container='true']`

	MinBlockWords = 20
)

func (s Strategy) String() string {
	switch s {
	case ContainerMarker:
		return "container-marker"
	case LongestTextBlock:
		return "longest-text-block"
	default:
		return "paragraph-fallback"
	}
}

// SelectStrategy picks the strategy from the page address alone.
func SelectStrategy(address string) Strategy {
	lower := strings.ToLower(address)
	switch {
	case strings.Contains(lower, GeniusDomain):
		return ContainerMarker
	case strings.Contains(lower, AZLyricsDomain):
		return LongestTextBlock
	default:
		return ParagraphFallback
	}
}

// WaitSelector is the selector that must be present before a snapshot is
// taken, or "" when the strategy reads the page as-is.
func (s Strategy) WaitSelector() string {
	if s == ContainerMarker {
		return ContainerSelector
	}
	return ""
}

// DetectedMessage is the console notice printed once a strategy is chosen.
func (s Strategy) DetectedMessage() string {
	switch s {
	case ContainerMarker:
		return "Detected Genius lyrics page..."
	case LongestTextBlock:
		return "Detected AZLyrics page..."
	default:
		return "Unknown site, using generic fallback..."
	}
}
