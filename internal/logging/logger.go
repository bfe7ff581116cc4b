package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/blogsandposts/pkg"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStderr      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
	// Console receives the logs when there is no log file, or when LogToStderr is set.
	// Defaults to os.Stderr; stdout belongs to the interactive menu.
	Console io.Writer
}

// Setup configures the global logrus logger. The returned func flushes
// sentry and closes the log file, call it before the process exits.
func Setup(params LoggerSetupParams) func() {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	console := params.Console
	if console == nil {
		console = os.Stderr
	}

	var closers []func()
	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment: params.Environment,
			Dsn:         params.SentryDSN,
			ServerName:  params.SentryServerName,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			closers = append(closers, func() {
				sentry.Flush(2 * time.Second)
			})
			logrus.Infoln("sentry set up successfully")
		}
	}

	logrus.SetLevel(GetLevel(params.LogLevel))

	if params.LogFileName == "" {
		logrus.SetOutput(console)
		return closeAll(closers)
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:  params.LogFileName,
		MaxSize:   10,    // megabytes
		LocalTime: false, // false -> use UTC
		Compress:  true,  // disabled by default
		MaxAge:    90,    // days
	}
	closers = append(closers, func() {
		_ = lumberJackLogger.Close()
	})

	if params.LogToStderr {
		logrus.SetOutput(pkg.NewCombinedWriter(console, lumberJackLogger))
	} else {
		logrus.SetOutput(lumberJackLogger)
	}

	return closeAll(closers)
}

func closeAll(closers []func()) func() {
	return func() {
		for _, c := range closers {
			c()
		}
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
	case "warn":
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}
