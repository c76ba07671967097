package scenario

import "github.com/bnema/gtkbridge/pkg/gtk"

// dialog opens a modal message dialog from the button. OK quits, anything else
// returns to the window.
var dialogDefinition = Definition{
	Name:        "dialog",
	Description: "modal OK/Cancel message dialog, OK quits",
	build:       buildDialog,
	autopilot: []Step{
		clickButton, respond(gtk.ResponseCancel),
		clickButton, respond(gtk.ResponseOk),
	},
}

func buildDialog(s *Session) {
	s.quitOnDelete()

	s.button = gtk.NewButtonWithLabel(s.cfg.Widgets.ButtonLabel)
	s.keep(s.button)
	s.Window.Add(s.button)

	s.button.MustConnect(gtk.Clicked(func(*gtk.Button) {
		s.result.Clicks++
		if s.runMessageDialog() == gtk.ResponseOk {
			gtk.MainQuit()
		}
	}))
}

func (s *Session) runMessageDialog() gtk.ResponseType {
	d := gtk.NewMessageDialog(s.Window, gtk.DialogModal|gtk.DialogDestroyWithParent,
		gtk.MessageInfo, gtk.ButtonsOkCancel, s.cfg.Widgets.DialogText)
	defer d.Unref()
	s.log.Debug().Stringer("message_type", d.MessageType()).Msg("message dialog opened")
	d.FormatSecondaryText("Clicks so far: %d", s.result.Clicks)
	d.SetDefaultResponse(gtk.ResponseCancel)

	s.dialog = &d.Dialog
	resp := d.Run()
	s.dialog = nil
	d.Destroy()

	s.result.Responses = append(s.result.Responses, resp)
	s.log.Info().Stringer("response", resp).Msg("message dialog answered")
	return resp
}
