package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tadpole-arcade/internal/settings"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [key value]",
	Short: "Show or change saved preferences",
	Long: `Without arguments, prints the saved preferences as YAML.
With a key and a value, changes that preference and saves it.

Keys:
  sound_enabled  true/false
  volume         0.0 - 1.0
  player         name stored with every run
  difficulty     easy, normal, hard, fixed (empty for config values)
  last_game      variant the menu starts on

Examples:
  tadpole settings
  tadpole settings volume 0.5
  tadpole settings player ada`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected no arguments or a key and a value, got %d", len(args))
		}
		return nil
	},
	RunE: runSettings,
}

func runSettings(_ *cobra.Command, args []string) error {
	prefs := openSettings()

	if len(args) == 2 {
		if err := prefs.Set(args[0], args[1]); err != nil {
			return err
		}
		if !prefs.Persistent() {
			fmt.Fprintln(os.Stderr, "Warning: settings storage unavailable, change not saved")
		} else if err := prefs.Save(); err != nil {
			return err
		}
	}

	out, err := yaml.Marshal(prefs.Get())
	if err != nil {
		return fmt.Errorf("cannot encode settings: %w", err)
	}
	fmt.Print(string(out))
	if len(args) == 0 {
		fmt.Printf("\nKeys: %v\n", settings.Keys())
	}
	return nil
}
