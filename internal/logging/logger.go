package logging

import (
	"os"
	"strings"

	"github.com/2beens/ironlog/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// SentryLevels are forwarded to sentry when it is enabled.
var SentryLevels = []logrus.Level{
	logrus.PanicLevel,
	logrus.FatalLevel,
	logrus.ErrorLevel,
}

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

func Setup(params LoggerSetupParams) {
	setup(logrus.StandardLogger(), params)
}

func setup(logger *logrus.Logger, params LoggerSetupParams) {
	if params.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 0.2,
			ServerName:       params.SentryServerName,
		})
		if err != nil {
			logger.Errorf("sentry.Init: %s", err)
		} else {
			logger.AddHook(NewSentryHook(SentryLevels))
			logger.Infoln("sentry set up successfully")
		}
	}

	logger.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logger.SetOutput(os.Stdout)
		logger.Println("writing logs only to STDOUT")
		return
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    50, // megabytes
		MaxBackups: 20,
		LocalTime:  false, // false -> use UTC
		Compress:   true,
	}

	if params.LogToStdout {
		logger.SetOutput(pkg.NewFanOutWriter(os.Stdout, lumberJackLogger))
		logger.Println("writing logs to file and STDOUT")
	} else {
		logger.SetOutput(lumberJackLogger)
	}
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.TraceLevel
	}
}
