package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStore opens a throwaway gdata store, or returns nil when the
// environment has no usable data directory.
func openTestStore(t *testing.T, suffix string) *gdata.Manager {
	t.Helper()
	appName := "tadpole_arcade_test_" + suffix
	store, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	t.Cleanup(func() {
		if home, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(home, ".local", "share", appName))
		}
	})
	return store
}

func TestMemoryOnlyManager(t *testing.T) {
	m := NewManager(nil, nil)

	if m.Persistent() {
		t.Error("nil store should not be persistent")
	}
	if m.Get() != Defaults() {
		t.Errorf("Get() = %+v, want defaults", m.Get())
	}

	m.Update(func(s *Settings) { s.Player = "  frog " })
	if err := m.Save(); err != nil {
		t.Errorf("Save() in memory mode = %v, want nil", err)
	}
	if got := m.Get().Player; got != "frog" {
		t.Errorf("Player = %q, want trimmed name", got)
	}
}

func TestSetParsesValues(t *testing.T) {
	m := NewManager(nil, nil)

	tests := []struct {
		key, value string
		wantErr    bool
	}{
		{"sound_enabled", "off", false},
		{"sound_enabled", "maybe", true},
		{"volume", "0.25", false},
		{"volume", "loud", true},
		{"player", "tad", false},
		{"difficulty", "hard", false},
		{"difficulty", "brutal", true},
		{"last_game", "tadpole_classic", false},
		{"colour", "red", true},
	}

	for _, tt := range tests {
		err := m.Set(tt.key, tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("Set(%q, %q) error = %v, wantErr %v", tt.key, tt.value, err, tt.wantErr)
		}
	}

	s := m.Get()
	if s.SoundEnabled || s.Volume != 0.25 || s.Player != "tad" || s.Difficulty != "hard" || s.LastGame != "tadpole_classic" {
		t.Errorf("unexpected settings %+v", s)
	}
}

func TestVolumeClamped(t *testing.T) {
	m := NewManager(nil, nil)
	m.Set("volume", "3")
	if m.Get().Volume != 1 {
		t.Errorf("Volume = %v, want 1", m.Get().Volume)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	store := openTestStore(t, "roundtrip")
	if store == nil {
		t.Skip("no gdata storage available")
	}

	m := NewManager(store, nil)
	m.Update(func(s *Settings) {
		s.SoundEnabled = false
		s.Volume = 0.4
		s.Player = "polliwog"
	})
	if err := m.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reloaded := NewManager(store, nil)
	if reloaded.Get() != m.Get() {
		t.Errorf("reloaded %+v, want %+v", reloaded.Get(), m.Get())
	}
}
