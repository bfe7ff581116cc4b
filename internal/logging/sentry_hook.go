package logging

import (
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// SentryHook forwards logrus entries of the given levels to sentry as events.
type SentryHook struct {
	levels  []logrus.Level
	capture func(event *sentry.Event) *sentry.EventID
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return &SentryHook{
		levels:  levels,
		capture: sentry.CaptureEvent,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	event := sentry.NewEvent()
	event.Level = sentryLevel(entry.Level)
	event.Message = entry.Message
	event.Timestamp = entry.Time
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			event.Extra[k] = err.Error()
			continue
		}
		event.Extra[k] = v
	}

	h.capture(event)
	return nil
}

func sentryLevel(level logrus.Level) sentry.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.InfoLevel:
		return sentry.LevelInfo
	default:
		return sentry.LevelDebug
	}
}
