package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tadpole-arcade/internal/platform/tui"
	"github.com/vovakirdan/tadpole-arcade/internal/settings"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a variant picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Esc or B inside a run returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Best runs
  Q            - Quit

Examples:
  tadpole menu
  tadpole menu --fps 30
  tadpole menu --db ./tadpole.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().BoolVar(&flagRealTime, "realtime", false, "Time buffs by the wall clock instead of by ticks")
}

func runMenu(_ *cobra.Command, _ []string) {
	prefs := openSettings()
	store := openStore()
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg, prefs.Get().LastGame)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		prefs.Update(func(s *settings.Settings) { s.LastGame = gameID })
		if saveErr := prefs.Save(); saveErr != nil {
			logger.Warn("cannot save settings", "err", saveErr)
		}

		backToMenu, runErr := playGame(gameID, cfg, store, prefs.Get())
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			continue
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
