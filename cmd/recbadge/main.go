package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/recbadge/recbadge/internal/config"
	"github.com/recbadge/recbadge/internal/logging"
	"github.com/recbadge/recbadge/internal/recording"
	"github.com/recbadge/recbadge/internal/ui"
)

var (
	sigChan    = make(chan os.Signal, 1)
	verbose    bool
	configPath string
)

func main() {
	// Disable Fyne telemetry
	os.Setenv("FYNE_TELEMETRY", "0")

	// Parse command-line flags
	flag.BoolVar(&verbose, "v", false, "enable verbose logging")
	flag.BoolVar(&verbose, "verbose", false, "enable verbose logging")
	flag.StringVar(&configPath, "config", "", "path to recbadge.toml")
	flag.Parse()

	logging.SetVerbose(verbose)

	if configPath == "" {
		configPath = config.FindConfigFile()
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.ErrorLogger.Fatalf("Error loading configuration: %v", err)
	}

	if err := logging.Init(cfg.LogDir); err != nil {
		fmt.Printf("Failed to initialize logging: %v\n", err)
	}
	defer logging.Close()

	// Keep a config file around so users have something to edit
	if err := config.ExtractDefaultConfig(filepath.Join(config.GetInstallDir(), "recbadge.toml")); err != nil {
		logging.WarningLogger.Printf("Could not create default config: %v", err)
	}

	initial := recording.StateNone
	if cfg.StartRecording {
		initial = recording.StateRecording
	}
	session := recording.NewSession(initial, engineNotifier{})

	myApp := app.New()

	badge := ui.New(session, cfg)
	window := ui.NewBadgeWindow(myApp, badge)

	window.SetCloseIntercept(func() {
		confirmExit(session, window, func() {
			badge.Close()
			myApp.Quit()
		})
	})

	// System tray entry so the floating badge can be recovered or dismissed
	if desk, ok := myApp.(desktop.App); ok {
		desk.SetSystemTrayMenu(fyne.NewMenu("RecBadge",
			fyne.NewMenuItem("Show Widget", func() {
				window.Show()
			}),
			fyne.NewMenuItem("About", func() {
				dialog.ShowInformation("About",
					fmt.Sprintf("RecBadge\nVersion %s", config.GetProgramVersion()), window)
			}),
			fyne.NewMenuItem("Quit", func() {
				confirmExit(session, window, func() {
					badge.Close()
					myApp.Quit()
				})
			}),
		))
	}

	badge.Start()
	window.Show()

	// Initialize signal handling
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logging.InfoLogger.Println("Interrupt signal received. Shutting down...")
		badge.Close()
		myApp.Quit()
	}()

	myApp.Run()
}

// confirmExit asks before quitting while a recording is live; a stopped or
// idle badge exits immediately.
func confirmExit(session *recording.Session, window fyne.Window, quit func()) {
	if !session.State().Active() {
		quit()
		return
	}
	confirmDialog := dialog.NewConfirm(
		"Confirm Exit",
		"A recording is in progress. Closing the widget will stop it. Are you sure you want to exit?",
		func(confirm bool) {
			if confirm {
				logging.InfoLogger.Println("Closing recording widget")
				session.Stop()
				quit()
			}
		},
		window,
	)
	confirmDialog.SetConfirmText("Stop and Exit")
	confirmDialog.SetDismissText("Keep Recording")
	confirmDialog.Show()
}
