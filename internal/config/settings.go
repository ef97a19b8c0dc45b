package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Policy names accepted for the last exercise of a session.
const (
	PolicyAuto     = "auto"
	PolicyAnnounce = "announce"
	PolicySilent   = "silent"
)

// Settings are the runtime options of a single invocation.
type Settings struct {
	DataDir       string
	ExercisesFile string
	ExerciseCount int
	Policy        string
	Audio         bool
	Theme         string
	Debug         bool
}

// DBPath is where the preferences database lives.
func (s Settings) DBPath() string {
	return filepath.Join(s.DataDir, DBFileName)
}

// LogPath is where debug logging goes while the TUI owns the terminal.
func (s Settings) LogPath() string {
	return filepath.Join(s.DataDir, LogFileName)
}

// SetDefaults registers defaults and environment binding on v.
func SetDefaults(v *viper.Viper, dataDir string) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", dataDir)
	v.SetDefault("exercises", "")
	v.SetDefault("count", -1)
	v.SetDefault("policy", PolicyAuto)
	v.SetDefault("audio", false)
	v.SetDefault("theme", "default")
	v.SetDefault("debug", false)
}

// Load reads Settings from v. A negative count means "use the stored preference".
func Load(v *viper.Viper) (Settings, error) {
	s := Settings{
		DataDir:       strings.TrimSpace(v.GetString("data_dir")),
		ExercisesFile: strings.TrimSpace(v.GetString("exercises")),
		ExerciseCount: v.GetInt("count"),
		Policy:        strings.ToLower(strings.TrimSpace(v.GetString("policy"))),
		Audio:         v.GetBool("audio"),
		Theme:         strings.TrimSpace(v.GetString("theme")),
		Debug:         v.GetBool("debug"),
	}
	if s.DataDir == "" {
		return s, fmt.Errorf("data_dir must not be empty")
	}
	switch s.Policy {
	case PolicyAuto, PolicyAnnounce, PolicySilent:
	default:
		return s, fmt.Errorf("unknown policy %q (want %s, %s or %s)", s.Policy, PolicyAuto, PolicyAnnounce, PolicySilent)
	}
	return s, nil
}
