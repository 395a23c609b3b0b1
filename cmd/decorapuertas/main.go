// DecoraPuertas: Door Decal Configurator
//
// A cross-platform desktop application for pricing custom vinyl door
// decals: enter the door size, pick or upload a design, place it on the
// door preview and export the quote.
//
// Build:
//   go build -o decorapuertas ./cmd/decorapuertas
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o decorapuertas.exe ./cmd/decorapuertas
//   GOOS=darwin  GOARCH=amd64 go build -o decorapuertas-darwin ./cmd/decorapuertas
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64
//
// Set DECORAPUERTAS_DEBUG=1 to log drag and history events.

package main

import (
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/DecoraPuertas/internal/model"
	"github.com/piwi3910/DecoraPuertas/internal/project"
	"github.com/piwi3910/DecoraPuertas/internal/ui"
)

func main() {
	level := slog.LevelInfo
	if os.Getenv("DECORAPUERTAS_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfgPath := project.DefaultConfigPath()
	cfg, err := project.LoadAppConfig(cfgPath)
	if err != nil {
		logger.Warn("using default settings", "path", cfgPath, "err", err)
		cfg = model.DefaultAppConfig()
	}

	application := app.NewWithID("com.piwi3910.decorapuertas")
	window := application.NewWindow("DecoraPuertas: vinil adhesivo a la medida")

	appUI := ui.NewApp(application, window, cfg, logger)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1280, 860))
	window.CenterOnScreen()

	logger.Info("starting", "session", appUI.Session().ID, "rate", cfg.RatePerSqFt)
	window.ShowAndRun()
}
