// Package settings persists player preferences between sessions using
// gdata's per-user application storage. Without a backing store the
// manager keeps settings in memory only.
package settings

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tadpole-arcade/internal/config"
	"github.com/vovakirdan/tadpole-arcade/internal/core"
)

// AppName is the gdata application directory name.
const AppName = "tadpole_arcade"

const (
	settingsObject   = "settings"
	settingsProperty = "player"
)

// Settings are the user preferences that survive restarts.
type Settings struct {
	SoundEnabled bool    `yaml:"sound_enabled"`
	Volume       float64 `yaml:"volume"`     // 0.0 ~ 1.0
	Player       string  `yaml:"player"`     // name stored with runs
	Difficulty   string  `yaml:"difficulty"` // preset applied when the CLI gives none
	LastGame     string  `yaml:"last_game"`  // menu cursor starts here
}

// Defaults returns the settings used before anything was saved.
func Defaults() Settings {
	return Settings{
		SoundEnabled: true,
		Volume:       0.8,
	}
}

// Manager loads, holds and saves Settings.
type Manager struct {
	mu       sync.Mutex
	store    *gdata.Manager // nil means memory-only
	settings Settings
	logger   *log.Logger
}

// Open creates a manager backed by gdata storage for appName. If the
// storage cannot be opened the returned manager works in memory-only
// mode and the error says why.
func Open(appName string, logger *log.Logger) (*Manager, error) {
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewManager(nil, logger), fmt.Errorf("settings: cannot open storage: %w", err)
	}
	return NewManager(store, logger), nil
}

// NewManager creates a manager over store, which may be nil, and loads
// any saved settings. Load failures fall back to defaults.
func NewManager(store *gdata.Manager, logger *log.Logger) *Manager {
	m := &Manager{store: store, settings: Defaults(), logger: logger}
	if err := m.Load(); err != nil && logger != nil {
		logger.Warn("using default settings", "err", err)
	}
	return m
}

// Persistent reports whether Save writes to disk.
func (m *Manager) Persistent() bool {
	return m.store != nil
}

// Load reads saved settings, keeping defaults when nothing was saved.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = Defaults()
	if m.store == nil || !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("settings: cannot load: %w", err)
	}

	loaded := Defaults()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("settings: cannot parse: %w", err)
	}
	loaded.normalize()
	m.settings = loaded
	return nil
}

// Save writes the current settings. A memory-only manager does nothing.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("settings: cannot encode: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("settings: cannot save: %w", err)
	}
	if m.logger != nil {
		m.logger.Debug("settings saved")
	}
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.settings
}

// Update applies fn to the settings in memory. Call Save to persist.
func (m *Manager) Update(fn func(*Settings)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.settings)
	m.settings.normalize()
}

// Set changes one setting by its yaml key, parsing value as the CLI gives it.
func (m *Manager) Set(key, value string) error {
	var err error
	m.Update(func(s *Settings) {
		switch key {
		case "sound_enabled":
			switch strings.ToLower(value) {
			case "true", "on", "yes", "1":
				s.SoundEnabled = true
			case "false", "off", "no", "0":
				s.SoundEnabled = false
			default:
				err = fmt.Errorf("settings: %q is not a boolean", value)
			}
		case "volume":
			var v float64
			if _, scanErr := fmt.Sscanf(value, "%g", &v); scanErr != nil {
				err = fmt.Errorf("settings: %q is not a number", value)
				return
			}
			s.Volume = v
		case "player":
			s.Player = value
		case "difficulty":
			if value != "" && config.ParsePreset(value) == "" {
				err = fmt.Errorf("settings: unknown difficulty %q", value)
				return
			}
			s.Difficulty = value
		case "last_game":
			s.LastGame = value
		default:
			err = fmt.Errorf("settings: unknown key %q", key)
		}
	})
	return err
}

// Keys lists the settable keys in display order.
func Keys() []string {
	return []string{"sound_enabled", "volume", "player", "difficulty", "last_game"}
}

func (s *Settings) normalize() {
	s.Volume = core.ClampF(s.Volume, 0, 1)
	s.Player = strings.TrimSpace(s.Player)
}
