package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/akyairhashvil/restbreak/internal/config"
	"github.com/akyairhashvil/restbreak/internal/imaging"
	"github.com/akyairhashvil/restbreak/internal/markup"
	"github.com/akyairhashvil/restbreak/internal/prefs"
	"github.com/akyairhashvil/restbreak/internal/sequencer"
	"github.com/akyairhashvil/restbreak/internal/sheet"
	"github.com/akyairhashvil/restbreak/internal/sound"
	"github.com/akyairhashvil/restbreak/internal/tui"
	"github.com/akyairhashvil/restbreak/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var ErrNotATerminal = errors.New("not a terminal")

// isTerminal is swapped out by tests.
var isTerminal = func(f *os.File) bool { return term.IsTerminal(int(f.Fd())) }

// runProgram runs a TUI to completion. Swapped out by tests.
var runProgram = func(m tea.Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string
	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "Guided exercises for your breaks",
		Version:       tui.VersionLabel(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				return nil
			}
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("read config %s: %w", cfgFile, err)
			}
			return nil
		},
	}
	config.SetDefaults(v, util.DataDir(config.AppName))

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (YAML)")
	flags.String("data-dir", "", "directory for preferences, sounds and logs")
	flags.String("exercises", "", "exercise list to use instead of the built-in one")
	flags.Int("count", -1, "exercises per session, 0 for no limit (default: rest break preference)")
	flags.String("policy", config.PolicyAuto, "end of exercise: auto, announce or silent")
	flags.Bool("audio", false, "narrate exercises that have audio")
	flags.String("theme", "default", "colour theme")
	flags.Bool("debug", false, "log to debug.log in the data directory")
	for key, flag := range map[string]string{
		"data_dir":  "data-dir",
		"exercises": "exercises",
		"count":     "count",
		"policy":    "policy",
		"audio":     "audio",
		"theme":     "theme",
		"debug":     "debug",
	} {
		util.MustSucceed("bind flag "+flag, v.BindPFlag(key, flags.Lookup(flag)))
	}

	exercisesCmd := &cobra.Command{
		Use:   "exercises",
		Short: "Play the exercises panel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, v, runExercises)
		},
	}
	root.RunE = exercisesCmd.RunE
	root.AddCommand(
		exercisesCmd,
		&cobra.Command{
			Use:   "prefs",
			Short: "Edit timer, sound and status window preferences",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, v, runPrefs)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Print the exercise list",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(cmd, v, runList)
			},
		},
		newSheetCmd(v),
	)
	return root
}

func newSheetCmd(v *viper.Viper) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Write a printable PDF of the exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, v, func(ctx context.Context, cmd *cobra.Command, a *app) error {
				path := out
				if path == "" {
					path = sheet.DefaultPath()
				}
				if err := sheet.WriteFile(path, a.registry); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exercise sheet written: %s\n", path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: "+sheet.DefaultFileName+" in your documents folder)")
	return cmd
}

type appFunc func(ctx context.Context, cmd *cobra.Command, a *app) error

func withApp(cmd *cobra.Command, v *viper.Viper, fn appFunc) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := openApp(ctx, v)
	if err != nil {
		return err
	}
	defer func() { util.LogError("close app", a.Close()) }()
	return fn(ctx, cmd, a)
}

func requireTerminal() error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("the interactive panels need a terminal: %w", ErrNotATerminal)
	}
	return nil
}

func runExercises(ctx context.Context, cmd *cobra.Command, a *app) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	opts, err := exercisesOptions(ctx, a)
	if err != nil {
		return err
	}
	model, err := tui.NewExercisesModel(opts)
	if err != nil {
		return err
	}
	a.startTUILogging()
	return runProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
}

// exercisesOptions assembles the panel from settings and stored preferences.
func exercisesOptions(ctx context.Context, a *app) (tui.ExercisesOptions, error) {
	s := a.settings
	if !tui.SetTheme(s.Theme) {
		util.LogError("theme", fmt.Errorf("unknown theme %q", s.Theme))
	}
	policy, err := sequencer.ParsePolicy(s.Policy)
	if err != nil {
		return tui.ExercisesOptions{}, err
	}
	count := s.ExerciseCount
	if count < 0 {
		if count, err = a.prefs.ExercisesCount(ctx); err != nil {
			return tui.ExercisesOptions{}, err
		}
	}
	mode, err := a.prefs.SoundMode(ctx)
	if err != nil {
		return tui.ExercisesOptions{}, err
	}
	opts := tui.ExercisesOptions{
		Registry:   a.registry,
		Rotation:   rotation,
		Sounds:     sound.NewPlayer(mode, a.soundDir(), os.Stdout),
		Policy:     policy,
		Count:      count,
		Images:     imaging.NewCache(imaging.FileLoader{Width: config.PictureWidth, Height: config.PictureHeight}),
		Standalone: true,
	}
	if s.Audio {
		vol, err := a.prefs.SpokenVolume(ctx)
		if err != nil {
			return tui.ExercisesOptions{}, err
		}
		opts.Audio = sound.NewSpokenAudio(sound.Mpg123)
		opts.Volume = vol
		opts.OnVolume = func(v int) {
			util.LogError("save spoken volume", a.prefs.SetSpokenVolume(ctx, v))
		}
	}
	return opts, nil
}

func runPrefs(ctx context.Context, cmd *cobra.Command, a *app) error {
	if err := requireTerminal(); err != nil {
		return err
	}
	tui.SetTheme(a.settings.Theme)
	core, err := prefs.LoadCore(ctx, a.prefs)
	if err != nil {
		return err
	}
	guard := prefs.NewQuietGuard(core)
	model, err := tui.NewPreferencesModel(ctx, a.prefs, guard, true)
	if err != nil {
		return err
	}
	// The program can end without a close or blur, e.g. on a signal.
	defer guard.Blur(context.WithoutCancel(ctx))
	a.startTUILogging()
	return runProgram(model, tea.WithReportFocus(), tea.WithContext(ctx))
}

func runList(ctx context.Context, cmd *cobra.Command, a *app) error {
	return writeList(cmd.OutOrStdout(), a)
}

func writeList(w io.Writer, a *app) error {
	for i, ex := range a.registry.Exercises {
		if _, err := fmt.Fprintf(w, "%2d. %s (%s, %d pictures)\n", i+1, ex.Title, util.FormatSeconds(ex.Duration), len(ex.Sequence)); err != nil {
			return err
		}
		if desc := strings.TrimSpace(markup.Plain(ex.Description)); desc != "" {
			fmt.Fprintf(w, "    %s\n", strings.ReplaceAll(desc, "\n", "\n    "))
		}
	}
	_, err := fmt.Fprintf(w, "\nTotal: %s\n", util.FormatSeconds(a.registry.TotalDuration()))
	return err
}
