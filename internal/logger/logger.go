package logger

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/sukalov/lyricscraper/internal/utils"
	"github.com/sukalov/lyricscraper/internal/utils/e"
)

var (
	ChannelID int64
	once      sync.Once
	botClient BotClient
	pending   sync.WaitGroup

	mu      sync.Mutex
	console io.Writer = os.Stderr
	debug   bool
)

type BotClient interface {
	SendMessage(chatID int64, text string) error
}

// Init attaches a channel sink. LOG_CHANNEL_ID must be set.
func Init(client BotClient) error {
	var initErr error
	once.Do(func() {
		env, err := utils.LoadEnv([]string{"LOG_CHANNEL_ID"})
		if err != nil {
			initErr = fmt.Errorf("failed to load LOG_CHANNEL_ID: %w", err)
			return
		}

		ChannelID, err = strconv.ParseInt(env["LOG_CHANNEL_ID"], 10, 64)
		if err != nil {
			initErr = fmt.Errorf("failed to parse LOG_CHANNEL_ID: %w", err)
			return
		}

		botClient = client
	})

	return initErr
}

// SetOutput redirects console lines. A nil writer silences the console.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	console = w
}

// SetDebug turns Debug lines on or off. They are off by default.
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
}

func debugEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return debug
}

func Info(message string) {
	sendLog("ℹ️ INFO", message)
}

func Error(message string) {
	sendLog("❌ ERROR", message)
}

func Debug(message string) {
	if !debugEnabled() {
		return
	}
	sendLog("🔍 DEBUG", message)
}

func Success(message string) {
	sendLog("✅ SUCCESS", message)
}

// Flush blocks until queued channel deliveries finish.
func Flush() {
	pending.Wait()
}

func sendLog(prefix, message string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	logMessage := fmt.Sprintf("[%s] %s\n%s", timestamp, prefix, message)

	mu.Lock()
	if console != nil {
		fmt.Fprintln(console, logMessage)
	}
	mu.Unlock()

	if botClient == nil {
		return
	}

	pending.Add(1)
	go func() {
		defer pending.Done()
		if err := botClient.SendMessage(ChannelID, logMessage); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to send log to channel: %v\nLog was: %s\n", err, logMessage)
		}
	}()
}

// LogWithErr logs message at info level, or at error level with err
// attached, and returns err wrapped with message.
func LogWithErr(message string, err error) error {
	if err == nil {
		Info(message)
		return nil
	}

	msg := fmt.Sprintf("%s\nError: %v", message, err)
	Error(msg)

	return e.Wrap(message, err)
}
