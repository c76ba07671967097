package scenario

import "github.com/bnema/gtkbridge/pkg/gtk"

// first is the classic first program: a window holding one button. Closing the
// window quits.
var firstDefinition = Definition{
	Name:        "first",
	Description: "window with a button, closing it quits",
	build:       buildFirst,
	autopilot:   []Step{clickButton, closeWindow},
}

func buildFirst(s *Session) {
	s.quitOnDelete()

	s.button = gtk.NewButtonWithLabel(s.cfg.Widgets.ButtonLabel)
	s.keep(s.button)
	s.button.MustConnect(gtk.Clicked(func(b *gtk.Button) {
		s.result.Clicks++
		s.log.Info().Str("label", b.Label()).Msg("clicked")
	}))
	s.Window.Add(s.button)
}
