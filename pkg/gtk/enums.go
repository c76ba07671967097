package gtk

import (
	"math"
	"strconv"
)

type WindowType int

const (
	WindowToplevel WindowType = iota
	WindowPopup
)

type WindowPosition int

const (
	WinPosNone WindowPosition = iota
	WinPosCenter
	WinPosMouse
	WinPosCenterAlways
	WinPosCenterOnParent
)

type Orientation int

const (
	OrientationHorizontal Orientation = iota
	OrientationVertical
)

type MessageType int

const (
	MessageInfo MessageType = iota
	MessageWarning
	MessageQuestion
	MessageError
	MessageOther
)

func (t MessageType) String() string {
	switch t {
	case MessageInfo:
		return "info"
	case MessageWarning:
		return "warning"
	case MessageQuestion:
		return "question"
	case MessageError:
		return "error"
	case MessageOther:
		return "other"
	}
	return "unknown(" + strconv.Itoa(int(t)) + ")"
}

// ButtonsType selects a predefined set of dialog buttons.
type ButtonsType int

const (
	ButtonsNone ButtonsType = iota
	ButtonsOk
	ButtonsClose
	ButtonsCancel
	ButtonsYesNo
	ButtonsOkCancel
)

// DialogFlags combine with |.
type DialogFlags int

const (
	DialogModal             DialogFlags = 1 << 0
	DialogDestroyWithParent DialogFlags = 1 << 1
	DialogUseHeaderBar      DialogFlags = 1 << 2
)

type FileChooserAction int

const (
	FileChooserActionOpen FileChooserAction = iota
	FileChooserActionSave
	FileChooserActionSelectFolder
	FileChooserActionCreateFolder
)

// ResponseType is a dialog response. Predefined responses are negative; values
// from ResponseUser are application defined.
type ResponseType int

const (
	ResponseNone        ResponseType = -1
	ResponseReject      ResponseType = -2
	ResponseAccept      ResponseType = -3
	ResponseDeleteEvent ResponseType = -4
	ResponseOk          ResponseType = -5
	ResponseCancel      ResponseType = -6
	ResponseClose       ResponseType = -7
	ResponseYes         ResponseType = -8
	ResponseNo          ResponseType = -9
	ResponseApply       ResponseType = -10
	ResponseHelp        ResponseType = -11
)

// ResponseUser returns the application-defined response n.
func ResponseUser(n uint16) ResponseType { return ResponseType(n) }

// IsUser reports whether r is in the range ResponseUser produces.
func (r ResponseType) IsUser() bool { return r >= 0 && r <= math.MaxUint16 }

func (r ResponseType) String() string {
	switch r {
	case ResponseNone:
		return "none"
	case ResponseReject:
		return "reject"
	case ResponseAccept:
		return "accept"
	case ResponseDeleteEvent:
		return "delete-event"
	case ResponseOk:
		return "ok"
	case ResponseCancel:
		return "cancel"
	case ResponseClose:
		return "close"
	case ResponseYes:
		return "yes"
	case ResponseNo:
		return "no"
	case ResponseApply:
		return "apply"
	case ResponseHelp:
		return "help"
	}
	if r.IsUser() {
		return "user(" + strconv.Itoa(int(r)) + ")"
	}
	return "unknown(" + strconv.Itoa(int(r)) + ")"
}
