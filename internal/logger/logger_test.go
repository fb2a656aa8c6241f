package logger

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	mu       sync.Mutex
	messages []string
	chatIDs  []int64
}

func (f *fakeBot) SendMessage(chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatIDs = append(f.chatIDs, chatID)
	f.messages = append(f.messages, text)
	return nil
}

func TestLoggerConsoleAndChannel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	t.Setenv("LOG_CHANNEL_ID", "-100123")
	bot := &fakeBot{}
	require.NoError(t, Init(bot))
	t.Cleanup(func() { botClient = nil })

	Info("opening browser")
	Success("saved")
	Flush()

	out := buf.String()
	require.Contains(t, out, "ℹ️ INFO\nopening browser")
	require.Contains(t, out, "✅ SUCCESS\nsaved")

	bot.mu.Lock()
	defer bot.mu.Unlock()
	require.Len(t, bot.messages, 2)
	require.Equal(t, []int64{-100123, -100123}, bot.chatIDs)
}

func TestLogWithErr(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nil) })

	require.NoError(t, LogWithErr("all good", nil))
	require.Contains(t, buf.String(), "INFO\nall good")

	base := errors.New("timeout")
	err := LogWithErr("search failed", base)
	require.ErrorIs(t, err, base)
	require.EqualError(t, err, "search failed: timeout")
	require.Contains(t, buf.String(), "ERROR\nsearch failed\nError: timeout")
}

func TestDebugIsGated(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(nil)
		SetDebug(false)
	})

	Debug("hidden details")
	require.Empty(t, buf.String())

	SetDebug(true)
	Debug("shown details")
	require.Contains(t, buf.String(), "🔍 DEBUG\nshown details")
	require.NotContains(t, buf.String(), "hidden details")
}
