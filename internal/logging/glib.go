package logging

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/gtkbridge/pkg/glib"
)

// InstallGLibLogHandler routes GLib, GDK and GTK log messages to logger and traces
// the object bridge itself at the logger's level. Call it before gtk.Init.
func InstallGLibLogHandler(ctx context.Context, logger zerolog.Logger) {
	log := FromContext(ctx)

	glib.InstallLogHandler(logger.With().Str("component", "gtk").Logger())
	glib.SetLogger(logger)

	log.Debug().Str("level", logger.GetLevel().String()).Msg("GLib log handler installed")
}
