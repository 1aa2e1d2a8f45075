// Package opener hands URLs to the operating system's default handler.
package opener

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// Command returns the launcher and its arguments for goos. The URL is
// always the last argument and is passed through unchanged.
func Command(goos, url string) (name string, args []string) {
	switch goos {
	case "windows":
		// start treats the first quoted argument as a window title.
		return "cmd", []string{"/C", "start", "", url}
	case "darwin":
		return "open", []string{url}
	default:
		return "xdg-open", []string{url}
	}
}

// Launcher spawns the platform launcher without waiting for it.
type Launcher struct {
	goos  string
	start func(*exec.Cmd) error
}

// New returns a Launcher for the running OS.
func New() *Launcher {
	return &Launcher{goos: runtime.GOOS, start: startDetached}
}

// Open spawns the launcher for url. It returns once the process has
// started; the launcher's own exit status is never observed by the caller.
func (l *Launcher) Open(url string) error {
	name, args := Command(l.goos, url)
	cmd := exec.Command(name, args...)
	if err := l.start(cmd); err != nil {
		return fmt.Errorf("open URL: %w", err)
	}
	slog.Debug("launcher started", "command", name, "url", url)
	return nil
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap in the background so the child never lingers as a zombie.
	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Debug("launcher exited", "command", cmd.Path, "error", err)
		}
	}()
	return nil
}
