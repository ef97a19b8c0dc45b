package config

import "time"

// Heartbeat drives the exercises panel.
const Heartbeat = time.Second

// Default timer settings, in seconds.
const (
	MicroBreakLimit     = 3 * 60
	MicroBreakAutoReset = 30
	RestBreakLimit      = 45 * 60
	RestBreakAutoReset  = 10 * 60
	DailyLimitSeconds   = 4 * 60 * 60
	DefaultSnooze       = 3 * 60
	DefaultMaxPreludes  = 3
	DefaultExercises    = 3
	TimerBoxCycleTime   = 10
)

// SpeakVolumes are the spoken-exercise volume steps, loudest first.
var SpeakVolumes = []int{1000, 750, 500, 250, 0}

// DefaultSpeakVolume is used until the user picks a level.
const DefaultSpeakVolume = 1000

// Application settings.
const (
	AppName     = "restbreak"
	DBFileName  = "restbreak.db"
	EnvPrefix   = "RESTBREAK"
	LogFileName = "debug.log"
)
