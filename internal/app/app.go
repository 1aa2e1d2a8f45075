// Package app provides the core application service for Wails bindings.
package app

import (
	"log/slog"
	"sync"

	"github.com/tutu/codeark/config"
	"github.com/tutu/codeark/dialog"
	"github.com/tutu/codeark/history"
	"github.com/tutu/codeark/internal/types"
	"github.com/tutu/codeark/locale"
	"github.com/tutu/codeark/opener"

	"github.com/wailsapp/wails/v3/pkg/application"
)

// Launcher opens a URL with the OS default handler.
type Launcher interface {
	Open(url string) error
}

// History stores recently picked folders.
type History interface {
	Record(path string) error
	Forget(path string) error
	List(limit int) ([]types.RecentFolder, error)
	Close() error
}

// Service provides the commands the frontend can invoke.
// Wails binds every exported method, so lifecycle hooks stay unexported
// and are reached through Setup, Shutdown and TrayLabels.
// Every exported method is safe to call concurrently.
type Service struct {
	mu  sync.Mutex // guards cfg
	cfg *config.Config

	launcher Launcher
	picker   dialog.Picker
	history  History // nil when the store could not be opened

	// UI reference - set via Setup
	app *application.App

	version string
}

// New creates a new Service. Call Setup after Wails app is created.
func New(version string) *Service {
	return &Service{version: version}
}

// GetVersion returns the application version.
func (s *Service) GetVersion() string {
	return s.version
}

// Setup wires s to the Wails application and loads settings.
// Must be called after Wails application is created.
func Setup(s *Service, app *application.App) {
	s.setup(app)
}

// Shutdown releases the resources held by s.
func Shutdown(s *Service) {
	s.shutdown()
}

// TrayLabels returns the localized strings for native surfaces.
func TrayLabels(s *Service) locale.Labels {
	return s.labels()
}

func (s *Service) setup(app *application.App) {
	s.app = app

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		cfg = config.Default()
	}
	s.cfg = cfg

	s.launcher = opener.New()
	s.picker = dialog.NewWailsPicker(app)

	s.setupHistory()
}

func (s *Service) shutdown() {
	if s.history != nil {
		if err := s.history.Close(); err != nil {
			slog.Error("close history", "error", err)
		}
	}
}

func (s *Service) setupHistory() {
	dir, err := config.HistoryDir()
	if err != nil {
		slog.Error("get history dir", "error", err)
		return
	}

	h, err := history.Open(dir)
	if err != nil {
		slog.Error("init history", "error", err)
		return
	}
	s.history = h
	slog.Info("history initialized", "path", dir)
}

// emit is a safe wrapper around app.Event.Emit
func (s *Service) emit(name string, data any) {
	if s.app != nil {
		s.app.Event.Emit(name, data)
	}
}

func (s *Service) labels() locale.Labels {
	s.mu.Lock()
	defer s.mu.Unlock()
	return locale.For(s.cfg.ResolvedLanguage())
}

// ─────────────────────────────────────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────────────────────────────────────

// OpenExternal opens url with the system default handler. It returns as
// soon as the launcher has been spawned.
func (s *Service) OpenExternal(url string) error {
	return s.launcher.Open(url)
}

// SelectFolder shows the native folder picker and waits for the user.
// A nil path with a nil error means the dialog was cancelled.
func (s *Service) SelectFolder() (*string, error) {
	path, err := dialog.SelectFolder(s.picker, s.labels().FolderTitle)
	if err != nil || path == nil {
		return path, err
	}

	s.remember(*path)
	return path, nil
}

// remember records a picked folder. Failures never reach the caller.
func (s *Service) remember(path string) {
	if s.history == nil {
		return
	}
	if err := s.history.Record(path); err != nil {
		slog.Warn("record recent folder", "path", path, "error", err)
		return
	}
	s.emit(EventRecentFolders, path)
}

// RecentFolders returns recently picked folders, newest first.
func (s *Service) RecentFolders() ([]types.RecentFolder, error) {
	if s.history == nil {
		return []types.RecentFolder{}, nil
	}

	s.mu.Lock()
	limit := s.cfg.RecentLimit
	s.mu.Unlock()

	folders, err := s.history.List(limit)
	if err != nil {
		return nil, err
	}
	if folders == nil {
		folders = []types.RecentFolder{}
	}
	return folders, nil
}

// ForgetFolder removes path from the recent folders.
func (s *Service) ForgetFolder(path string) error {
	if s.history == nil {
		return nil
	}
	if err := s.history.Forget(path); err != nil {
		return err
	}
	s.emit(EventRecentFolders, path)
	return nil
}

// GetSettings returns the current settings.
func (s *Service) GetSettings() types.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return types.Settings{
		Language:         s.cfg.Language,
		ResolvedLanguage: s.cfg.ResolvedLanguage(),
		RecentLimit:      s.cfg.RecentLimit,
	}
}

// SetLanguage changes the UI language. Dialog titles follow immediately;
// the tray menu picks it up on next launch.
func (s *Service) SetLanguage(lang string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.SetLanguage(lang)
}
