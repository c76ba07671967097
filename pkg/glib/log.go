package glib

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/gtkbridge/internal/ffi"
)

var (
	logMu  sync.RWMutex
	logger = zerolog.Nop()

	// glibLogger receives g_log output once InstallLogHandler has run.
	glibLogger     zerolog.Logger
	glibLoggerOnce sync.Once
)

// SetLogger sets the logger used for ownership and signal tracing. The default
// discards everything.
func SetLogger(l zerolog.Logger) {
	logMu.Lock()
	logger = l.With().Str("component", "glib").Logger()
	logMu.Unlock()
}

func log() *zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	l := logger
	return &l
}

// InstallLogHandler routes GLib, GObject, GDK and GTK log messages to l. Only the
// first call has an effect.
func InstallLogHandler(l zerolog.Logger) {
	glibLoggerOnce.Do(func() {
		glibLogger = l
		ffi.LogSetDefaultHandler()
		log().Debug().Msg("glib log handler installed")
	})
}

// glibLogHandler maps GLib log levels to zerolog levels.
func glibLogHandler(domain string, level ffi.LogLevel, message string) {
	var event *zerolog.Event

	switch {
	case level&ffi.LogLevelError != 0:
		event = glibLogger.Error()
	case level&ffi.LogLevelCritical != 0:
		event = glibLogger.Error().Bool("critical", true)
	case level&ffi.LogLevelWarning != 0:
		event = glibLogger.Warn()
	case level&(ffi.LogLevelMessage|ffi.LogLevelInfo) != 0:
		event = glibLogger.Info()
	default:
		event = glibLogger.Debug()
	}

	if domain != "" {
		event = event.Str("glib_domain", domain)
	}

	event.Msg(message)
}

// Log writes message through g_log in the given domain.
func Log(domain string, level LogLevel, message string) {
	msg := CString(message)
	defer msg.Free()
	if domain == "" {
		ffi.LogMessage(nil, level, msg.Native())
		return
	}
	d := CString(domain)
	defer d.Free()
	ffi.LogMessage(d.Native(), level, msg.Native())
}

// LogLevel mirrors GLogLevelFlags.
type LogLevel = ffi.LogLevel

const (
	LogLevelError    = ffi.LogLevelError
	LogLevelCritical = ffi.LogLevelCritical
	LogLevelWarning  = ffi.LogLevelWarning
	LogLevelMessage  = ffi.LogLevelMessage
	LogLevelInfo     = ffi.LogLevelInfo
	LogLevelDebug    = ffi.LogLevelDebug
)
