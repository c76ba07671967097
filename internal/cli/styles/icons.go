package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconDoctor  = "\uf0f1" // stethoscope
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconPackage = "\uf187" // archive/package
	IconConfig  = "\ue615" // config
	IconTree    = "\uf1bb" // tree
	IconPlay    = "\uf04b" // play
	IconCursor  = "\uf054" // chevron-right
	IconSession = "\uf2d2" // window
)
