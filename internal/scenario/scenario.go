// Package scenario holds the demo programs run by gtkbridge-demo. Each one builds a
// small widget tree from the demo configuration and runs the GTK main loop until the
// user (or the autopilot) ends it.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/bnema/gtkbridge/internal/config"
	"github.com/bnema/gtkbridge/internal/logging"
	"github.com/bnema/gtkbridge/pkg/gdk"
	"github.com/bnema/gtkbridge/pkg/glib"
	"github.com/bnema/gtkbridge/pkg/gtk"
)

// ErrUnknownScenario is returned by Lookup and New for a name that is not registered.
var ErrUnknownScenario = errors.New("unknown scenario")

// Step is one scripted user action. Steps run from idle callbacks on the main loop.
type Step func(s *Session)

// Definition describes a runnable scenario.
type Definition struct {
	Name        string
	Description string

	build     func(s *Session)
	autopilot []Step
}

var definitions = []Definition{
	firstDefinition,
	checkboxDefinition,
	dialogDefinition,
	fileChooserDefinition,
}

// All returns every scenario in menu order.
func All() []Definition { return slices.Clone(definitions) }

// Names returns the scenario names in menu order.
func Names() []string {
	names := make([]string, len(definitions))
	for i, d := range definitions {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a scenario by name.
func Lookup(name string) (Definition, error) {
	for _, d := range definitions {
		if d.Name == name {
			return d, nil
		}
	}
	return Definition{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
}

// Result summarises a finished session.
type Result struct {
	Scenario  string
	Clicks    int
	Deletes   int
	Responses []gtk.ResponseType
	Files     []string
}

// Session is a built scenario: its toplevel window and the widgets it created. All
// methods except ApplyConfig must be called on the GTK thread.
type Session struct {
	Name   string
	Window *gtk.Window

	cfg       config.Config
	log       zerolog.Logger
	def       Definition
	autopilot bool
	owned     []glib.IObject
	button    *gtk.Button
	check     *gtk.CheckButton
	dialog    *gtk.Dialog
	chooser   *gtk.FileChooserDialog
	result    Result
	closed    bool
}

// Option configures New.
type Option func(*Session)

// WithAutopilot makes Run play the scenario's scripted user actions.
func WithAutopilot() Option {
	return func(s *Session) { s.autopilot = true }
}

// New builds the named scenario. gtk.Init must have been called.
func New(ctx context.Context, name string, cfg *config.Config, opts ...Option) (*Session, error) {
	def, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	ctx = logging.WithScenario(ctx, name)
	s := &Session{
		Name:   name,
		cfg:    *cfg,
		log:    *logging.FromContext(ctx),
		def:    def,
		result: Result{Scenario: name},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Window = gtk.NewWindow(gtk.WindowToplevel)
	s.Window.SetTitle(cfg.Window.Title)
	s.Window.SetBorderWidth(uint(cfg.Window.BorderWidth))
	s.Window.SetPosition(gtk.WinPosCenter)
	s.Window.SetDefaultSize(cfg.Window.Width, cfg.Window.Height)

	def.build(s)
	s.log.Debug().Str("window", s.Window.String()).Msg("scenario built")
	return s, nil
}

// keep records envelopes released by Close.
func (s *Session) keep(objs ...glib.IObject) {
	s.owned = append(s.owned, objs...)
}

// quitOnDelete ends the main loop when the window is closed and keeps the window.
func (s *Session) quitOnDelete() {
	s.Window.MustConnect(gtk.DeleteEvent(func(*gtk.Window, *gdk.Event) bool {
		s.result.Deletes++
		s.log.Info().Msg("delete-event, leaving main loop")
		gtk.MainQuit()
		return true
	}))
}

// Run shows the window and runs the main loop until the scenario quits or ctx is
// cancelled.
func (s *Session) Run(ctx context.Context) (Result, error) {
	if s.closed {
		return Result{}, errors.New("scenario: Run after Close")
	}
	if s.autopilot && len(s.def.autopilot) > 0 {
		s.play(s.def.autopilot)
	}
	stop := context.AfterFunc(ctx, func() {
		glib.IdleAdd(func() bool {
			gtk.MainQuit()
			return false
		})
	})
	defer stop()

	s.Window.ShowAll()
	s.log.Info().Bool("autopilot", s.autopilot).Msg("running")
	gtk.Main()

	res := s.result
	res.Responses = slices.Clone(res.Responses)
	res.Files = slices.Clone(res.Files)
	s.log.Info().Int("clicks", res.Clicks).Int("responses", len(res.Responses)).Msg("main loop returned")
	return res, ctx.Err()
}

// play queues steps one idle callback at a time. Each step queues its successor
// before running, so a step that enters a nested loop (Dialog.Run) still finds the
// next one pending.
func (s *Session) play(steps []Step) {
	var next func(i int)
	next = func(i int) {
		glib.IdleAdd(func() bool {
			if i+1 < len(steps) {
				next(i + 1)
			}
			if !s.closed {
				steps[i](s)
			}
			return false
		})
	}
	next(0)
}

// ApplyConfig updates the live window from cfg. It may be called from any goroutine.
func (s *Session) ApplyConfig(cfg *config.Config) {
	title := cfg.Window.Title
	glib.RunOnMainThread(func() {
		if s.closed {
			return
		}
		s.Window.SetTitle(title)
		s.log.Info().Str("title", title).Msg("config reloaded")
	})
}

// Close destroys the window and releases every envelope the session holds. Safe to
// call twice.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.Window.Destroy()
	for i := len(s.owned) - 1; i >= 0; i-- {
		glib.BaseObject(s.owned[i]).Unref()
	}
	s.owned = nil
	s.Window.Unref()
}
