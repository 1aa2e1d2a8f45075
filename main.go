package main

import (
	"embed"
	"log/slog"
	"os"

	"github.com/tutu/codeark/internal/app"
	"github.com/tutu/codeark/internal/logging"
	"github.com/wailsapp/wails/v3/pkg/application"
)

//go:embed all:frontend/dist
var assets embed.FS

//go:embed build/appicon.png
var trayIcon []byte

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	logger := logging.New()
	slog.SetDefault(logger)
	slog.Info("starting app", "version", version, "commit", commit, "date", date, "debug", logging.Debug)

	appService := app.New(version)

	wailsApp := application.New(application.Options{
		Name:        "Code Ark",
		Description: "TuTu's Code Ark",
		Logger:      logger,
		LogLevel:    logging.Level(),
		Services: []application.Service{
			application.NewService(appService),
		},
		Assets: application.AssetOptions{
			Handler: application.BundledAssetFileServer(assets),
		},
		Mac: application.MacOptions{
			// Don't quit when all windows are closed (we have a system tray)
			ApplicationShouldTerminateAfterLastWindowClosed: false,
		},
	})

	mainWindow := wailsApp.Window.NewWithOptions(application.WebviewWindowOptions{
		Name:   app.MainWindow,
		Title:  "TuTu's Code Ark",
		Width:  1200,
		Height: 800,
		URL:    "/",
		Mac: application.MacWindow{
			TitleBar:                application.MacTitleBarHiddenInsetUnified,
			InvisibleTitleBarHeight: 38,
		},
		DevToolsEnabled: logging.Debug,
	})

	// Closing hides the window so the tray can bring it back
	app.GuardClose(mainWindow)

	app.Setup(appService, wailsApp)

	tray, err := app.NewTrayController(
		app.NewWindowLookup(wailsApp),
		app.QuitFunc(func() {
			app.Shutdown(appService)
			wailsApp.Quit()
		}),
	)
	if err != nil {
		slog.Error("create tray controller", "error", err)
		os.Exit(1)
	}
	if err := app.SetupTray(wailsApp, tray, app.TrayLabels(appService), trayIcon); err != nil {
		slog.Error("setup tray", "error", err)
		os.Exit(1)
	}

	if err := wailsApp.Run(); err != nil {
		slog.Error("run app", "error", err)
		os.Exit(1)
	}
}
