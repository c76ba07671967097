//go:build !gtk_cgo

package scenario_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gtkbridge/internal/config"
	"github.com/bnema/gtkbridge/internal/ffi"
	"github.com/bnema/gtkbridge/internal/logging"
	"github.com/bnema/gtkbridge/internal/scenario"
	"github.com/bnema/gtkbridge/pkg/glib"
	"github.com/bnema/gtkbridge/pkg/gtk"
)

func TestMain(m *testing.M) {
	if err := gtk.Init(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func drain() {
	for gtk.EventsPending() {
		gtk.MainIterationDo(false)
	}
}

// start builds a scenario and checks, once the test is done, that closing the session
// released everything it created.
func start(t *testing.T, ctx context.Context, name string, cfg *config.Config, opts ...scenario.Option) *scenario.Session {
	t.Helper()
	before := ffi.HeadlessStats()
	handles := glib.LiveHandles()
	s, err := scenario.New(ctx, name, cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(func() {
		s.Close()
		drain()
		after := ffi.HeadlessStats()
		assert.Equal(t, before.Objects, after.Objects, "live objects")
		assert.Equal(t, before.Handlers, after.Handlers, "connected handlers")
		assert.Equal(t, handles, glib.LiveHandles(), "Go closures")
	})
	return s
}

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"first", "checkbox", "dialog", "filechooser"}, scenario.Names())

	d, err := scenario.Lookup("dialog")
	require.NoError(t, err)
	assert.NotEmpty(t, d.Description)

	_, err = scenario.Lookup("nope")
	assert.ErrorIs(t, err, scenario.ErrUnknownScenario)
	_, err = scenario.New(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, scenario.ErrUnknownScenario)
}

func TestNew_WindowFromConfig(t *testing.T) {
	// Arrange
	cfg := config.DefaultConfig()
	cfg.Window.Title = "Configured"
	cfg.Window.Width = 640
	cfg.Window.BorderWidth = 4

	// Act
	s := start(t, context.Background(), "first", cfg)

	// Assert
	assert.Equal(t, "Configured", s.Window.Title())
	assert.Equal(t, uint(4), s.Window.BorderWidth())
	width, height := s.Window.DefaultSize()
	assert.Equal(t, 640, width)
	assert.Equal(t, 70, height)
	child := s.Window.Child()
	require.NotNil(t, child)
	defer child.ToWidget().Unref()
	button, ok := glib.TryAs[*gtk.Button](child)
	require.True(t, ok)
	assert.Equal(t, "Click me!", button.Label())
}

func TestRun_Autopilot(t *testing.T) {
	tests := []struct {
		name string
		want scenario.Result
	}{
		{"first", scenario.Result{Scenario: "first", Clicks: 1, Deletes: 1}},
		{"checkbox", scenario.Result{Scenario: "checkbox", Clicks: 3}},
		{"dialog", scenario.Result{
			Scenario:  "dialog",
			Clicks:    2,
			Responses: []gtk.ResponseType{gtk.ResponseCancel, gtk.ResponseOk},
		}},
		{"filechooser", scenario.Result{
			Scenario:  "filechooser",
			Clicks:    2,
			Responses: []gtk.ResponseType{gtk.ResponseCancel, gtk.ResponseAccept},
			Files:     []string{"/tmp/gtkbridge-demo.txt"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			s := start(t, context.Background(), tt.name, nil, scenario.WithAutopilot())

			// Act
			res, err := s.Run(context.Background())

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
			assert.Zero(t, gtk.MainLevel())
			assert.True(t, s.Window.Visible())
		})
	}
}

func TestRun_FileChooserLogsRejectedShortcut(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))
	cfg := config.DefaultConfig()
	cfg.Widgets.ShortcutFolders = []string{"/tmp", "/tmp"}
	s := start(t, ctx, "filechooser", cfg, scenario.WithAutopilot())

	// Act
	res, err := s.Run(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Len(t, res.Files, 1)
	out := buf.String()
	assert.Contains(t, out, "Shortcut /tmp already exists")
	assert.Contains(t, out, `"domain":"gtk-file-chooser-error-quark"`)
	assert.Contains(t, out, `"code":2`)
	assert.Contains(t, out, `"scenario":"filechooser"`)
}

func TestRun_DialogShowsInfoMessage(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(), zerolog.New(&buf))
	s := start(t, ctx, "dialog", nil, scenario.WithAutopilot())

	// Act
	_, err := s.Run(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(buf.String(), `"message_type":"info"`))
}

func TestApplyConfig_UpdatesTitleOnMainLoop(t *testing.T) {
	// Arrange
	s := start(t, context.Background(), "checkbox", nil)
	cfg := config.DefaultConfig()
	cfg.Window.Title = "Reloaded"

	// Act
	done := make(chan struct{})
	go func() {
		s.ApplyConfig(cfg)
		close(done)
	}()
	<-done
	drain()

	// Assert
	assert.Equal(t, "Reloaded", s.Window.Title())
}

func TestClose_Twice(t *testing.T) {
	s := start(t, context.Background(), "dialog", nil)

	s.Close()

	assert.NotPanics(t, s.Close)
	_, err := s.Run(context.Background())
	assert.Error(t, err)
}
