package audio

import (
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings is the tiny persisted-per-user state: currently only the
// mute flag. Read failures fall back to defaults; write failures are
// logged and ignored.
type Settings struct {
	Muted bool `toml:"muted"`

	path string
}

// settingsPath resolves the per-user settings file location
func settingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "quizdeck", "settings.toml"), nil
}

// LoadSettings reads persisted settings, or defaults when absent
func LoadSettings() *Settings {
	path, err := settingsPath()
	if err != nil {
		return &Settings{}
	}
	return loadSettingsFrom(path)
}

func loadSettingsFrom(path string) *Settings {
	s := &Settings{path: path}
	if _, err := toml.DecodeFile(path, s); err != nil {
		// Absent or unreadable file just means defaults
		return s
	}
	return s
}

// Save writes settings back to the per-user file
func (s *Settings) Save() {
	if s.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		log.Printf("audio: settings dir: %v", err)
		return
	}

	f, err := os.Create(s.path)
	if err != nil {
		log.Printf("audio: settings write: %v", err)
		return
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		log.Printf("audio: settings encode: %v", err)
	}
}
