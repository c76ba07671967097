package scenario

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/bnema/gtkbridge/pkg/glib"
	"github.com/bnema/gtkbridge/pkg/gtk"
)

// autopilotFile is what the scripted run selects inside the first shortcut folder.
const autopilotFile = "gtkbridge-demo.txt"

var fileChooserDefinition = Definition{
	Name:        "filechooser",
	Description: "open-file dialog with configured shortcut folders",
	build:       buildFileChooser,
	autopilot: []Step{
		clickButton, respond(gtk.ResponseCancel),
		clickButton, selectAutopilotFile, respond(gtk.ResponseAccept),
	},
}

func buildFileChooser(s *Session) {
	s.quitOnDelete()

	s.button = gtk.NewButtonWithLabel(s.cfg.Widgets.ButtonLabel)
	s.keep(s.button)
	s.Window.Add(s.button)

	s.button.MustConnect(gtk.Clicked(func(*gtk.Button) {
		s.result.Clicks++
		files := s.runFileChooser()
		if len(files) > 0 {
			s.result.Files = append(s.result.Files, files...)
			gtk.MainQuit()
		}
	}))
}

func (s *Session) runFileChooser() []string {
	d := gtk.NewFileChooserDialog("Open File", s.Window, gtk.FileChooserActionOpen,
		gtk.DialogButton{Text: "_Cancel", Response: gtk.ResponseCancel},
		gtk.DialogButton{Text: "_Open", Response: gtk.ResponseAccept},
	)
	defer d.Unref()
	d.SetDefaultResponse(gtk.ResponseAccept)

	for _, folder := range s.cfg.Widgets.ShortcutFolders {
		if err := d.AddShortcutFolder(folder); err != nil {
			var gerr *glib.Error
			if errors.As(err, &gerr) {
				s.log.Warn().Str("domain", gerr.DomainName()).Int("code", gerr.Code).
					Str("folder", folder).Msg(gerr.Message)
				continue
			}
			s.log.Warn().Err(err).Str("folder", folder).Msg("adding shortcut folder")
		}
	}

	s.dialog, s.chooser = &d.Dialog, d
	resp := d.Run()
	var files []string
	if resp == gtk.ResponseAccept {
		files = d.Filenames()
	}
	s.dialog, s.chooser = nil, nil
	d.Destroy()

	s.result.Responses = append(s.result.Responses, resp)
	s.log.Info().Stringer("response", resp).Strs("files", files).Msg("file chooser answered")
	return files
}

func selectAutopilotFile(s *Session) {
	if s.chooser == nil {
		return
	}
	dir := os.TempDir()
	if len(s.cfg.Widgets.ShortcutFolders) > 0 {
		dir = s.cfg.Widgets.ShortcutFolders[0]
	}
	s.chooser.SetFilename(filepath.Join(dir, autopilotFile))
}
