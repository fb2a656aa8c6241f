// Package scrape runs the search, extract and save pipeline once.
package scrape

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sukalov/lyricscraper/internal/db"
	"github.com/sukalov/lyricscraper/internal/logger"
	"github.com/sukalov/lyricscraper/internal/lyrics"
	"github.com/sukalov/lyricscraper/internal/utils/e"
)

const (
	Prompt        = "Enter song name or lyrics to search: "
	SavedBanner   = "✅ Lyrics saved to database successfully!"
	NothingBanner = "❌ No lyrics extracted, nothing saved."
	FailedText    = "❌ Could not extract lyrics."
)

// Browser is the subset of a browser session the pipeline drives.
type Browser interface {
	Search(query string) (string, error)
	Open(href string) (string, error)
	Snapshot(strategy lyrics.Strategy) (string, error)
	Close() error
}

// Store persists song records.
type Store interface {
	InsertSong(ctx context.Context, song db.Song) error
	Close() error
}

// Recorder keeps an optional history of saved songs.
type Recorder interface {
	RecordSong(ctx context.Context, title, address string) error
}

type Runner struct {
	OpenStore     func(ctx context.Context) (Store, error)
	LaunchBrowser func(ctx context.Context) (Browser, error)
	Recorder      Recorder
	Lyrics        *lyrics.Service

	In  io.Reader
	Out io.Writer
}

// Run prompts for a query, searches it and saves what the first result holds.
func (r *Runner) Run(ctx context.Context) (err error) {
	store, err := r.OpenStore(ctx)
	if err != nil {
		return e.Wrap("open store", err)
	}
	defer closeInto(&err, "close store", store)

	query, err := r.readQuery(ctx)
	if err != nil {
		return e.Wrap("read query", err)
	}

	browser, err := r.LaunchBrowser(ctx)
	if err != nil {
		return e.Wrap("launch browser", err)
	}
	defer closeInto(&err, "close browser", browser)

	logger.Info(fmt.Sprintf("Searching for: %s", query))
	href, err := browser.Search(query)
	if err != nil {
		return logger.LogWithErr("search failed", err)
	}
	fmt.Fprintf(r.Out, "Opening first result: %s\n", href)

	_, err = r.process(ctx, store, browser, query, href)
	return err
}

// RunURL skips the search and scrapes href directly, titling the song from query.
func (r *Runner) RunURL(ctx context.Context, query, href string) (err error) {
	store, err := r.OpenStore(ctx)
	if err != nil {
		return e.Wrap("open store", err)
	}
	defer closeInto(&err, "close store", store)

	browser, err := r.LaunchBrowser(ctx)
	if err != nil {
		return e.Wrap("launch browser", err)
	}
	defer closeInto(&err, "close browser", browser)

	fmt.Fprintf(r.Out, "Opening result: %s\n", href)
	_, err = r.process(ctx, store, browser, query, href)
	return err
}

func (r *Runner) process(ctx context.Context, store Store, browser Browser, query, href string) (*lyrics.LyricsResult, error) {
	current, err := browser.Open(href)
	if err != nil {
		return nil, logger.LogWithErr("open result failed", err)
	}

	strategy := lyrics.SelectStrategy(current)
	fmt.Fprintln(r.Out, strategy.DetectedMessage())

	pageHTML, err := browser.Snapshot(strategy)
	if err != nil {
		return nil, logger.LogWithErr(fmt.Sprintf("snapshot failed for %s", current), err)
	}

	service := r.Lyrics
	if service == nil {
		service = lyrics.NewService()
	}
	result, err := service.ExtractLyrics(query, current, strategy, pageHTML)
	if err != nil {
		return nil, e.Wrap("extract lyrics", err)
	}

	if result.Found() {
		if err := store.InsertSong(ctx, db.Song{Name: result.Title, Lyrics: result.Text}); err != nil {
			return nil, logger.LogWithErr("save song failed", err)
		}
		fmt.Fprintln(r.Out, SavedBanner)
		logger.Success(fmt.Sprintf("Saved %q from %s (%d chars)", result.Title, current, len(result.Text)))
		r.record(ctx, result)
	} else {
		fmt.Fprintln(r.Out, NothingBanner)
	}

	r.printResult(result)
	return result, nil
}

func (r *Runner) record(ctx context.Context, result *lyrics.LyricsResult) {
	if r.Recorder == nil {
		return
	}
	if err := r.Recorder.RecordSong(ctx, result.Title, result.URL); err != nil {
		logger.Error(fmt.Sprintf("failed to record history\nError: %v", err))
	}
}

func (r *Runner) printResult(result *lyrics.LyricsResult) {
	rule := strings.Repeat("=", 40)
	fmt.Fprintf(r.Out, "\n%s\n🎵 Extracted Lyrics:\n%s\n\n", rule, rule)
	if result.Found() {
		fmt.Fprintln(r.Out, strings.TrimSpace(result.Raw))
	} else {
		fmt.Fprintln(r.Out, FailedText)
	}
	fmt.Fprintf(r.Out, "\n%s\n", rule)
}

// readQuery reads one line from In. Cancelling ctx abandons the read, since
// a blocked stdin read cannot be interrupted.
func (r *Runner) readQuery(ctx context.Context) (string, error) {
	fmt.Fprint(r.Out, Prompt)

	type line struct {
		text string
		err  error
	}
	done := make(chan line, 1)
	go func() {
		scanner := bufio.NewScanner(r.In)
		if scanner.Scan() {
			done <- line{text: scanner.Text()}
			return
		}
		done <- line{err: scanner.Err()}
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(r.Out)
		return "", ctx.Err()
	case l := <-done:
		return l.text, l.err
	}
}

func closeInto(err *error, msg string, c io.Closer) {
	if cerr := c.Close(); cerr != nil {
		*err = errors.Join(*err, e.Wrap(msg, cerr))
	}
}
