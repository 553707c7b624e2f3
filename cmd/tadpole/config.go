package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tadpole-arcade/internal/config"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Prints the built-in tadpole.yaml. Edit a copy and pass it with
'tadpole play --config', or use --write to place it at
~/.arcade/configs/tadpole.yaml, which is picked up automatically.

Examples:
  tadpole config > my-tadpole.yaml
  tadpole config --write`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write the defaults to the user config path if no file exists there")
}

func runConfig(_ *cobra.Command, _ []string) error {
	data := config.GetDefaultYAML("tadpole")
	if !flagConfigWrite {
		fmt.Print(string(data))
		return nil
	}

	path := config.UserConfigPath("tadpole.yaml")
	if path == "" {
		return errors.New("cannot resolve home directory")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot check %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	logger.Info("default config written", "path", path)
	fmt.Printf("Wrote %s\n", path)
	return nil
}
