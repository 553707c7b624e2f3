// tadpole is a terminal runner: steer a tadpole down a lane, collect coins
// and power-ups, and jump or dodge everything else.
//
// Usage:
//
//	tadpole list              - List game variants
//	tadpole play [variant]    - Play a variant (default: tadpole)
//	tadpole menu              - Pick a variant interactively
//	tadpole serve             - Start SSH server for remote play
//	tadpole scores [variant]  - Show best runs
//	tadpole settings          - Show or change saved preferences
//	tadpole config            - Print the default game config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.arcade/tadpole.db)
//	--log <path>    - Write a debug log to path
//	--mute          - Disable sound for this session
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tadpole-arcade/internal/core"
	"github.com/vovakirdan/tadpole-arcade/internal/games/tadpole"
	"github.com/vovakirdan/tadpole-arcade/internal/settings"
	"github.com/vovakirdan/tadpole-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagMute    bool
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tadpole",
	Short: "Tadpole Runner - an endless lane runner in your terminal",
	Long: `Tadpole Runner puts a tadpole in an endless lane. Collect coins to
climb through stages, grab power-ups for a few seconds of invulnerability,
and jump over logs while steering around hidden volcanoes.

Available commands:
  list      - Show game variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  serve     - Start SSH server for remote play
  scores    - View best runs
  settings  - Show or change saved preferences
  config    - Print the default game config

Examples:
  tadpole play
  tadpole play tadpole_classic --difficulty hard
  tadpole menu
  tadpole serve --ssh :2222
  tadpole scores`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogger()
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/tadpole.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogger points the shared logger at --log. The TUI owns the
// terminal, so without a file nothing is logged.
func setupLogger() error {
	if flagLogPath == "" {
		return nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "tadpole",
	})
	tadpole.SetLogger(logger)
	return nil
}

// openStore opens the runs database. A failure is reported and the
// session continues without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		logger.Warn("runs database unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func openSettings() *settings.Manager {
	m, err := settings.Open(settings.AppName, logger)
	if err != nil {
		logger.Warn("settings are memory-only", "err", err)
	}
	return m
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// playerName prefers the saved name and falls back to the OS user.
func playerName(s settings.Settings) string {
	if s.Player != "" {
		return s.Player
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
