package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/musicplayer/internal/audio"
	"github.com/ytget/musicplayer/internal/config"
	"github.com/ytget/musicplayer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.musicplayer"
	AppName = "Music Player"
)

type options struct {
	debug       bool
	autoAdvance bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "musicplayer [files or folders...]",
		Short:   "Play local audio files",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			autoAdvanceSet := cmd.Flags().Changed("auto-advance")
			return run(opts, autoAdvanceSet, args)
		},
	}

	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable development logging")
	cmd.Flags().BoolVar(&opts.autoAdvance, "auto-advance", false, "play the next song when one finishes (overrides the saved preference)")
	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(opts *options, autoAdvanceSet bool, paths []string) error {
	logger, err := newLogger(opts.debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("starting", zap.String("app", AppName), zap.String("version", version), zap.Bool("audio", audio.AudioAvailable))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewPlayerTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	settings := config.NewSettings(myApp)
	if autoAdvanceSet {
		settings.SetAutoAdvance(opts.autoAdvance)
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	backend := audio.NewSpeakerBackend(logger.Named("audio"))
	root := ui.NewRootUI(myWindow, settings, backend, logger)

	if err := root.OpenPaths(paths); err != nil {
		logger.Error("open command line paths", zap.Strings("paths", paths), zap.Error(err))
		dialog.ShowError(err, myWindow)
	}

	myWindow.ShowAndRun()
	logger.Info("exiting")
	return nil
}
