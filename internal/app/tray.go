package app

import (
	"errors"
	"log/slog"
)

// Tray menu item keys and the main window name.
const (
	MenuShow   = "show"
	MenuQuit   = "quit"
	MainWindow = "main"
)

// MouseButton identifies the button of a tray icon click.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// Window is the part of a window the tray and close guard drive.
type Window interface {
	Show()
	Hide()
	Focus()
}

// WindowLookup finds windows by name through the host application.
type WindowLookup interface {
	Window(name string) (Window, bool)
}

// Quitter terminates the application.
type Quitter interface {
	Quit()
}

// QuitFunc adapts a function to Quitter.
type QuitFunc func()

// Quit calls f.
func (f QuitFunc) Quit() { f() }

// TrayController routes tray input to window visibility or exit.
type TrayController struct {
	windows WindowLookup
	quitter Quitter
}

// NewTrayController returns a controller acting on windows and quitter.
func NewTrayController(windows WindowLookup, quitter Quitter) (*TrayController, error) {
	if windows == nil || quitter == nil {
		return nil, errors.New("tray controller needs a window lookup and a quitter")
	}
	return &TrayController{windows: windows, quitter: quitter}, nil
}

// HandleMenu handles selection of the menu item with key id. Unknown
// keys are ignored.
func (t *TrayController) HandleMenu(id string) {
	switch id {
	case MenuQuit:
		slog.Info("quit from tray")
		t.quitter.Quit()
	case MenuShow:
		t.showMain()
	}
}

// HandleClick handles a click on the tray icon itself. Only the primary
// button reveals the window.
func (t *TrayController) HandleClick(button MouseButton) {
	if button == ButtonLeft {
		t.showMain()
	}
}

func (t *TrayController) showMain() {
	w, ok := t.windows.Window(MainWindow)
	if !ok {
		return
	}
	w.Show()
	w.Focus()
}
