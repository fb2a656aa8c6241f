// Package browser drives a Chrome session over the DevTools protocol.
package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/chromedp/chromedp/kb"

	"github.com/sukalov/lyricscraper/internal/logger"
	"github.com/sukalov/lyricscraper/internal/lyrics"
)

var (
	// ErrNoResult means no organic result rendered before the timeout.
	ErrNoResult = errors.New("no search result found")
	// ErrNoContainers means the lyrics containers never rendered.
	ErrNoContainers = errors.New("lyrics containers not found")
)

const (
	searchBoxSelector   = `[name="q"]`
	firstResultSelector = `div#search a > h3`

	resolveFirstResultJS = `(function() {
        const h3 = document.querySelector('div#search a > h3');
        if (!h3) return '';
        const link = h3.closest('a');
        return link ? (link.href || link.getAttribute('href') || '') : '';
    })()`
)

type Options struct {
	Headless         bool
	ChromePath       string
	SearchURL        string
	SearchTimeout    time.Duration
	ResultTimeout    time.Duration
	ContainerTimeout time.Duration
}

// Session owns one browser process and its tab.
type Session struct {
	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
	opts        Options
}

func allocatorOptions(opts Options) []chromedp.ExecAllocatorOption {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("exclude-switches", "enable-automation"),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("start-maximized", true),
	)
	if opts.Headless {
		allocOpts = append(allocOpts, chromedp.WindowSize(1920, 1080))
	}
	if opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(opts.ChromePath))
	}
	return allocOpts
}

// Launch starts the browser. The session lives until Close or until parent
// is cancelled.
func Launch(parent context.Context, opts Options) (*Session, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, allocatorOptions(opts)...)
	ctx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	if err := chromedp.Run(ctx); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	logger.Debug("Browser session started")
	return &Session{ctx: ctx, cancel: cancel, allocCancel: allocCancel, opts: opts}, nil
}

// searchTasks splits a search into the page load, which runs unbounded, and
// the steps bounded by SearchTimeout.
func searchTasks(opts Options, query string) (chromedp.Action, chromedp.Tasks) {
	load := chromedp.Navigate(opts.SearchURL)
	bounded := chromedp.Tasks{
		chromedp.WaitReady(searchBoxSelector, chromedp.ByQuery),
		chromedp.SendKeys(searchBoxSelector, query, chromedp.ByQuery),
		chromedp.SendKeys(searchBoxSelector, kb.Enter, chromedp.ByQuery),
	}
	return load, bounded
}

// Search submits query and returns the href of the first organic result.
func (s *Session) Search(query string) (string, error) {
	load, bounded := searchTasks(s.opts, query)
	if err := chromedp.Run(s.ctx, load); err != nil {
		return "", fmt.Errorf("failed to open %s: %w", s.opts.SearchURL, err)
	}

	boxCtx, cancel := context.WithTimeout(s.ctx, s.opts.SearchTimeout)
	defer cancel()

	if err := chromedp.Run(boxCtx, bounded); err != nil {
		return "", fmt.Errorf("failed to submit search: %w", err)
	}

	resultCtx, cancelResult := context.WithTimeout(s.ctx, s.opts.ResultTimeout)
	defer cancelResult()

	var href string
	if err := chromedp.Run(resultCtx,
		chromedp.WaitReady(firstResultSelector, chromedp.ByQuery),
		chromedp.Evaluate(resolveFirstResultJS, &href),
	); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w within %s", ErrNoResult, s.opts.ResultTimeout)
		}
		return "", fmt.Errorf("failed to read first result: %w", err)
	}
	if href == "" {
		return "", ErrNoResult
	}
	return href, nil
}

// Open navigates to href and returns the address the tab ends up on.
func (s *Session) Open(href string) (string, error) {
	var current string
	if err := chromedp.Run(s.ctx,
		chromedp.Navigate(href),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Location(&current),
	); err != nil {
		return "", fmt.Errorf("failed to open %s: %w", href, err)
	}
	return current, nil
}

// Snapshot returns the rendered HTML of the current page, first waiting for
// whatever the strategy needs to be present.
func (s *Session) Snapshot(strategy lyrics.Strategy) (string, error) {
	if sel := strategy.WaitSelector(); sel != "" {
		waitCtx, cancel := context.WithTimeout(s.ctx, s.opts.ContainerTimeout)
		defer cancel()
		if err := chromedp.Run(waitCtx, chromedp.WaitReady(sel, chromedp.ByQuery)); err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return "", fmt.Errorf("%w within %s", ErrNoContainers, s.opts.ContainerTimeout)
			}
			return "", fmt.Errorf("failed waiting for %s: %w", sel, err)
		}
	}

	var pageHTML string
	if err := chromedp.Run(s.ctx, chromedp.OuterHTML("html", &pageHTML, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("failed to read page html: %w", err)
	}
	return pageHTML, nil
}

// Close shuts the tab and the browser process.
func (s *Session) Close() error {
	s.cancel()
	s.allocCancel()
	logger.Debug("Browser session closed")
	return nil
}
