package logging

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warn"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("warning"))
	assert.Equal(t, logrus.InfoLevel, GetLevel("info"))
	assert.Equal(t, logrus.TraceLevel, GetLevel(""))
	assert.Equal(t, logrus.TraceLevel, GetLevel("loud"))
}

func TestSetup_LogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "service")
	logger := logrus.New()

	setup(logger, LoggerSetupParams{
		LogFileName:   logFile,
		LogLevel:      "info",
		LogFormatJSON: true,
	})

	logger.Debug("not written")
	logger.WithField("user", "serj").Info("session started")

	content, err := os.ReadFile(logFile + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"session started"`)
	assert.Contains(t, string(content), `"user":"serj"`)
	assert.NotContains(t, string(content), "not written")
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestSentryHook(t *testing.T) {
	var (
		mutex    sync.Mutex
		captured []*sentry.Event
	)
	client, err := sentry.NewClient(sentry.ClientOptions{
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			mutex.Lock()
			defer mutex.Unlock()
			captured = append(captured, event)
			// nothing leaves the test
			return nil
		},
	})
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(NewSentryHookWithHub(sentry.NewHub(client, sentry.NewScope()), SentryLevels))

	logger.Warn("rejected by backend")
	logger.WithField("user", "serj").
		WithError(errors.New("connection refused")).
		Error("backend unavailable")

	mutex.Lock()
	defer mutex.Unlock()
	require.Len(t, captured, 1)
	event := captured[0]
	assert.Equal(t, "backend unavailable", event.Message)
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "serj", event.Extra["user"])
	require.Len(t, event.Exception, 1)
	assert.Equal(t, "connection refused", event.Exception[0].Value)
}
