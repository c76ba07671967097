package scenario

import (
	"github.com/bnema/gtkbridge/pkg/glib"
	"github.com/bnema/gtkbridge/pkg/gtk"
)

// closeWindow asks the window manager to close the toplevel.
func closeWindow(s *Session) { s.Window.Close() }

func clickButton(s *Session) { s.button.Clicked() }

func toggleCheck(s *Session) { s.check.SetActive(!s.check.Active()) }

// respond clicks the action widget of the dialog currently open, the way a user
// would, so that sensitivity and the response signal are honoured.
func respond(id gtk.ResponseType) Step {
	return func(s *Session) {
		if s.dialog == nil {
			s.log.Warn().Stringer("response", id).Msg("no dialog open")
			return
		}
		w := s.dialog.WidgetForResponse(id)
		if w == nil {
			s.dialog.Response(id)
			return
		}
		defer w.ToWidget().Unref()
		if b, ok := glib.TryAs[gtk.IButton](w); ok {
			b.ToButton().Clicked()
			return
		}
		s.dialog.Response(id)
	}
}
