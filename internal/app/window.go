package app

// Canceller is a window event whose default action can be suppressed.
type Canceller interface {
	Cancel()
}

// HideOnClose returns a close-request handler that keeps w alive: the
// close is cancelled and the window is hidden instead.
func HideOnClose(w Window) func(Canceller) {
	return func(e Canceller) {
		e.Cancel()
		w.Hide()
	}
}
