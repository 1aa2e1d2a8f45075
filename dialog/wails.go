package dialog

import (
	"log/slog"

	"github.com/tutu/codeark/internal/handoff"
	"github.com/wailsapp/wails/v3/pkg/application"
)

// WailsPicker shows the native folder dialog through a Wails application.
type WailsPicker struct {
	app *application.App
}

// NewWailsPicker returns a Picker backed by app's dialog manager.
func NewWailsPicker(app *application.App) *WailsPicker {
	return &WailsPicker{app: app}
}

// PickFolder implements Picker. The dialog runs on its own goroutine so
// the caller's goroutine and the event loop are never held.
func (p *WailsPicker) PickFolder(title string, reply *handoff.Sender[Selection]) {
	go func() {
		// Runs last: a dialog failure or panic leaves reply unsent and
		// the waiting caller sees a dropped sender.
		defer reply.Close()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("folder dialog panicked", "panic", r)
			}
		}()

		path, err := p.app.Dialog.OpenFile().
			CanChooseDirectories(true).
			CanChooseFiles(false).
			CanCreateDirectories(true).
			SetTitle(title).
			PromptForSingleSelection()
		if err != nil {
			slog.Error("folder dialog", "error", err)
			return
		}

		reply.Send(Selection{Path: path, Picked: path != ""})
	}()
}
