package poller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SoundState persists the sound-enabled toggle in a small local file,
// independent of the server-side notification preferences.
type SoundState struct {
	path    string
	Enabled bool `json:"soundEnabled"`
}

// LoadSoundState reads the state file at path. A missing file yields
// the default state (sound on) without error.
func LoadSoundState(path string) (*SoundState, error) {
	s := &SoundState{path: path, Enabled: true}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sound state: %w", err)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse sound state %s: %w", path, err)
	}
	return s, nil
}

// SetEnabled flips the toggle and writes it through to disk.
func (s *SoundState) SetEnabled(enabled bool) error {
	s.Enabled = enabled
	return s.save()
}

func (s *SoundState) save() error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode sound state: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write sound state: %w", err)
	}
	return nil
}
