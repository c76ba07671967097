package scenario

import "github.com/bnema/gtkbridge/pkg/gtk"

const boxSpacing = 10

var checkboxDefinition = Definition{
	Name:        "checkbox",
	Description: "the button quits only while the check box is ticked",
	build:       buildCheckbox,
	autopilot:   []Step{clickButton, toggleCheck, toggleCheck, clickButton, toggleCheck, clickButton},
}

func buildCheckbox(s *Session) {
	s.quitOnDelete()

	box := gtk.NewBox(gtk.OrientationVertical, boxSpacing)
	s.check = gtk.NewCheckButtonWithLabel(s.cfg.Widgets.CheckLabel)
	s.button = gtk.NewButtonWithLabel(s.cfg.Widgets.ButtonLabel)
	s.keep(box, s.check, s.button)

	box.Add(s.check)
	box.Add(s.button)
	s.Window.Add(box)

	s.check.MustConnect(gtk.Toggled(func(c *gtk.CheckButton) {
		s.log.Debug().Bool("active", c.Active()).Msg("toggled")
	}))
	s.button.MustConnect(gtk.Clicked(func(*gtk.Button) {
		s.result.Clicks++
		if !s.check.Active() {
			s.log.Info().Msg("clicked, check box not ticked")
			return
		}
		s.log.Info().Msg("clicked with check box ticked, leaving main loop")
		gtk.MainQuit()
	}))
}
