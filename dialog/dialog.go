// Package dialog turns the callback-driven native folder picker into a
// blocking call.
package dialog

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tutu/codeark/internal/handoff"
)

// Selection is the outcome of one folder dialog.
type Selection struct {
	Path   string
	Picked bool // false when the user cancelled
}

// Picker shows a folder dialog without blocking the caller.
//
// The implementation must complete reply exactly once: Send when the
// dialog closes, or Close if it fails before producing a result. reply
// may be completed from any goroutine.
type Picker interface {
	PickFolder(title string, reply *handoff.Sender[Selection])
}

// SelectFolder shows a folder dialog and waits for it to close.
// A nil path with a nil error means the user cancelled.
//
// Each call carries a request id that appears in its log lines and in
// the returned error.
//
// The wait has no timeout. It must not be called from the goroutine
// that drives the GUI event loop.
func SelectFolder(p Picker, title string) (*string, error) {
	id := uuid.NewString()
	tx, rx := handoff.New[Selection]()

	slog.Debug("folder dialog requested", "request", id, "title", title)
	p.PickFolder(title, tx)

	sel, err := rx.Recv()
	if err != nil {
		slog.Warn("folder dialog dropped", "request", id, "error", err)
		return nil, fmt.Errorf("receive folder path (request %s): %w", id, err)
	}
	if !sel.Picked {
		slog.Debug("folder dialog cancelled", "request", id)
		return nil, nil
	}

	slog.Debug("folder dialog completed", "request", id, "path", sel.Path)
	path := sel.Path
	return &path, nil
}
