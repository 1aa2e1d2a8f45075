package app

import (
	"errors"

	"github.com/tutu/codeark/locale"
	"github.com/wailsapp/wails/v3/pkg/application"
	"github.com/wailsapp/wails/v3/pkg/events"
)

// wailsWindows looks windows up in the Wails window manager.
type wailsWindows struct {
	app *application.App
}

// NewWindowLookup returns a WindowLookup backed by app.
func NewWindowLookup(app *application.App) WindowLookup {
	return wailsWindows{app: app}
}

func (w wailsWindows) Window(name string) (Window, bool) {
	win, ok := w.app.Window.GetByName(name)
	if !ok || win == nil {
		return nil, false
	}
	return wailsWindow{win: win}, true
}

type wailsWindow struct {
	win application.Window
}

func (w wailsWindow) Show()  { w.win.Show() }
func (w wailsWindow) Hide()  { w.win.Hide() }
func (w wailsWindow) Focus() { w.win.Focus() }

// GuardClose makes closing window hide it instead of destroying it.
func GuardClose(window *application.WebviewWindow) {
	onClose := HideOnClose(wailsWindow{win: window})
	window.RegisterHook(events.Common.WindowClosing, func(e *application.WindowEvent) {
		onClose(e)
	})
}

// SetupTray builds the tray icon with its show and quit items.
func SetupTray(app *application.App, ctl *TrayController, labels locale.Labels, icon []byte) error {
	if len(icon) == 0 {
		return errors.New("tray icon is empty")
	}

	tray := app.SystemTray.New()
	tray.SetIcon(icon)
	tray.SetTooltip(labels.Tooltip)

	menu := app.NewMenu()
	menu.Add(labels.Show).OnClick(func(*application.Context) {
		ctl.HandleMenu(MenuShow)
	})
	menu.AddSeparator()
	menu.Add(labels.Quit).
		SetAccelerator("CmdOrCtrl+Q").
		OnClick(func(*application.Context) {
			ctl.HandleMenu(MenuQuit)
		})
	tray.SetMenu(menu)

	// Right click keeps the platform default of opening the menu.
	tray.OnClick(func() {
		ctl.HandleClick(ButtonLeft)
	})
	return nil
}
