package glib

// SetThreadIDFunc replaces the thread identity source and returns a restore func.
func SetThreadIDFunc(fn func() (int, bool)) (restore func()) {
	old := threadID
	threadID = fn
	return func() { threadID = old }
}
