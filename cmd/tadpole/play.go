package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tadpole-arcade/internal/audio"
	"github.com/vovakirdan/tadpole-arcade/internal/core"
	"github.com/vovakirdan/tadpole-arcade/internal/games/tadpole"
	"github.com/vovakirdan/tadpole-arcade/internal/platform/tui"
	"github.com/vovakirdan/tadpole-arcade/internal/registry"
	"github.com/vovakirdan/tadpole-arcade/internal/settings"
	"github.com/vovakirdan/tadpole-arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRealTime   bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game variant",
	Long: `Start a run of the given variant (tadpole if omitted).

Controls:
  A/D, Left/Right     - Steer
  Space/W/Up/J        - Jump (double jump while airborne)
  P                   - Pause
  H                   - Toggle debug readout
  R                   - Restart (after game over)
  Ctrl+S              - Save a screenshot
  Esc/B               - Back to menu
  Q/Ctrl+C            - Quit

Difficulty options:
  easy   - Slower lane and longer buffs
  normal - Values from the config file
  hard   - Faster lane and shorter buffs
  fixed  - No stage speed-up

Examples:
  tadpole play
  tadpole play tadpole_classic
  tadpole play --difficulty hard
  tadpole play --config ./my-tadpole.yaml --seed 42
  tadpole play --realtime`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagRealTime, "realtime", false, "Time buffs by the wall clock instead of by ticks")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "tadpole"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tadpole list' to see available variants.")
		os.Exit(1)
	}

	prefs := openSettings()
	store := openStore()

	_, runErr := playGame(gameID, runtimeConfig(), store, prefs.Get())

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playGame runs one game session with sound and run history wired in.
// It reports whether the player went back to the menu.
func playGame(gameID string, cfg core.RuntimeConfig, store *storage.Store, prefs settings.Settings) (bool, error) {
	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = prefs.Difficulty
	}
	tadpole.SetConfigPath(flagConfig)
	tadpole.SetDifficultyPreset(difficulty)
	tadpole.SetRealTimeClock(flagRealTime)

	game, err := registry.Create(gameID)
	if err != nil {
		return false, fmt.Errorf("cannot create game: %w", err)
	}

	opts := tui.Options{
		Store:  store,
		Player: playerName(prefs),
		Logger: logger,
	}

	if !flagMute && prefs.SoundEnabled {
		player := audio.NewPlayer(logger)
		if initErr := player.Initialize(); initErr != nil {
			logger.Warn("sound disabled", "err", initErr)
		} else {
			player.SetVolume(prefs.Volume)
			opts.Cues = player
			defer player.Close()
		}
	}

	logger.Info("starting game", "game", gameID, "difficulty", difficulty, "fps", cfg.TickRate)
	return tui.Run(game, cfg, opts)
}
