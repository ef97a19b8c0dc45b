package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/akyairhashvil/restbreak/internal/config"
	"github.com/akyairhashvil/restbreak/internal/database"
	"github.com/akyairhashvil/restbreak/internal/exercises"
	"github.com/akyairhashvil/restbreak/internal/prefs"
	"github.com/akyairhashvil/restbreak/internal/sequencer"
	"github.com/akyairhashvil/restbreak/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
)

// rotation is shared by every exercises session started by this process.
var rotation = sequencer.NewRotation()

// app holds what every subcommand needs.
type app struct {
	settings config.Settings
	db       *database.Database
	prefs    *prefs.Preferences
	registry exercises.Registry
	logFile  io.Closer
}

func openApp(ctx context.Context, v *viper.Viper) (*app, error) {
	settings, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	if err := util.EnsureDir(settings.DataDir); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	a := &app{settings: settings}

	a.registry, err = loadRegistry(settings)
	if err != nil {
		return nil, err
	}
	a.db, err = database.Open(ctx, settings.DBPath())
	if err != nil {
		return nil, err
	}
	a.prefs = prefs.New(a.db)
	return a, nil
}

func loadRegistry(s config.Settings) (exercises.Registry, error) {
	if s.ExercisesFile != "" {
		return exercises.LoadFile(s.ExercisesFile)
	}
	return exercises.Default(filepath.Join(s.DataDir, "exercises"))
}

// soundDir holds the event WAV files.
func (a *app) soundDir() string {
	return filepath.Join(a.settings.DataDir, "sounds")
}

// startTUILogging keeps log output off the screen while a TUI runs.
func (a *app) startTUILogging() {
	if !a.settings.Debug {
		util.DiscardLogs()
		return
	}
	f, err := tea.LogToFile(a.settings.LogPath(), config.AppName)
	if err != nil {
		util.DiscardLogs()
		return
	}
	a.logFile = f
}

func (a *app) Close() error {
	if a.logFile != nil {
		util.LogError("close log file", a.logFile.Close())
		log.SetOutput(os.Stderr)
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
