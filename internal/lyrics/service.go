package lyrics

import (
	"fmt"
	"strings"
	"time"

	"github.com/sukalov/lyricscraper/internal/logger"
)

// LyricsResult represents the result of lyrics extraction
type LyricsResult struct {
	URL       string    `json:"url"`
	Strategy  Strategy  `json:"strategy"`
	Raw       string    `json:"raw"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Found reports whether any text came off the page. The decision is made on
// the raw text, not on the cleaned one.
func (r *LyricsResult) Found() bool {
	return strings.TrimSpace(r.Raw) != ""
}

// Service turns a rendered page into a LyricsResult.
type Service struct {
	now func() time.Time
}

// NewService creates a new lyrics service
func NewService() *Service {
	return &Service{now: time.Now}
}

// ExtractLyrics runs strategy over pageHTML and normalizes title and text.
func (s *Service) ExtractLyrics(query, url string, strategy Strategy, pageHTML string) (*LyricsResult, error) {
	logger.Debug(fmt.Sprintf("ExtractLyrics called with URL: %s\nStrategy: %s\nHTML length: %d chars", url, strategy, len(pageHTML)))

	raw, err := Extract(strategy, pageHTML)
	if err != nil {
		logger.Error(fmt.Sprintf("Extract failed for URL: %s\nError: %v", url, err))
		return nil, err
	}

	result := &LyricsResult{
		URL:       url,
		Strategy:  strategy,
		Raw:       raw,
		Title:     Title(query),
		Text:      strings.TrimSpace(Clean(raw)),
		FetchedAt: s.now(),
	}

	logger.Debug(fmt.Sprintf("ExtractLyrics finished for URL: %s\nRaw length: %d chars\nCleaned length: %d chars",
		url, len(result.Raw), len(result.Text)))

	return result, nil
}
