package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/sukalov/lyricscraper/internal/browser"
	"github.com/sukalov/lyricscraper/internal/config"
	"github.com/sukalov/lyricscraper/internal/db"
	"github.com/sukalov/lyricscraper/internal/logger"
	"github.com/sukalov/lyricscraper/internal/lyrics"
	"github.com/sukalov/lyricscraper/internal/redis"
	"github.com/sukalov/lyricscraper/internal/scrape"
	"github.com/sukalov/lyricscraper/internal/utils"
)

// commandContext carries flag values and the loaded config between commands.
type commandContext struct {
	configPath *string
	headless   *bool
	debug      *bool
	config     *config.Config
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	cfg, err := config.Load(*c.configPath)
	if err != nil {
		return nil, err
	}
	if *c.headless {
		cfg.Browser.Headless = true
	}
	c.config = cfg
	return cfg, nil
}

func (c *commandContext) initDebug() {
	enabled := *c.debug
	if raw := utils.OptionalEnv("LYRICS_DEBUG"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			enabled = enabled || v
		}
	}
	logger.SetDebug(enabled)
}

// initChannelLogging attaches the Telegram log sink when a bot token is set.
func initChannelLogging() {
	token := utils.OptionalEnv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return
	}
	client, err := logger.NewTelegramClient(token)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start Telegram log sink\nError: %v", err))
		return
	}
	if err := logger.Init(client); err != nil {
		logger.Error(fmt.Sprintf("failed to init Telegram log sink\nError: %v", err))
	}
}

// redisSettings prefers the loaded config and falls back to the environment
// for commands that run without one.
func (c *commandContext) redisSettings() config.Redis {
	if c.config != nil {
		return c.config.Redis
	}
	return config.RedisFromEnv()
}

func (c *commandContext) openRecorder() *redis.DBManager {
	settings := c.redisSettings()
	if settings.URL == "" {
		return nil
	}
	manager, err := redis.NewDBManager(settings.URL, settings.Password)
	if err != nil {
		logger.Error(fmt.Sprintf("redis history disabled\nError: %v", err))
		return nil
	}
	return manager
}

func (c *commandContext) newRunner(in io.Reader, out io.Writer, recorder scrape.Recorder) *scrape.Runner {
	cfg := c.config
	return &scrape.Runner{
		OpenStore: func(ctx context.Context) (scrape.Store, error) {
			return db.OpenConfig(ctx, cfg)
		},
		LaunchBrowser: func(ctx context.Context) (scrape.Browser, error) {
			fmt.Fprintln(out, "Launching browser...")
			return browser.Launch(ctx, browser.Options{
				Headless:         cfg.Browser.Headless,
				ChromePath:       cfg.Browser.ChromePath,
				SearchURL:        cfg.Browser.SearchURL,
				SearchTimeout:    cfg.Browser.SearchTimeout,
				ResultTimeout:    cfg.Browser.ResultTimeout,
				ContainerTimeout: cfg.Browser.ContainerTimeout,
			})
		},
		Recorder: recorder,
		Lyrics:   lyrics.NewService(),
		In:       in,
		Out:      out,
	}
}
