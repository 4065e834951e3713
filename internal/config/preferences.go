package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// Preference keys stored in the preferences file
const (
	PrefPath    = "path"
	PrefCookies = "cookies"
	PrefFFmpeg  = "ffmpeg"
)

// PreferencesFileName is the default name of the preferences file
const PreferencesFileName = "location.json"

const (
	prefsIndent    = "    "
	prefsFilePerms = 0644
	prefsDirPerms  = 0755
)

// Preferences is the flat record of remembered file paths.
// A missing key means the value is unset.
type Preferences map[string]string

// Get returns the value of key and whether it is set to a non-empty path
func (p Preferences) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok && v != ""
}

// PreferenceStore persists Preferences as a JSON object in a single file
type PreferenceStore struct {
	path string
	mu   sync.Mutex
}

// NewPreferenceStore creates a store backed by the file at path
func NewPreferenceStore(path string) *PreferenceStore {
	return &PreferenceStore{path: path}
}

// Path returns the backing file path
func (s *PreferenceStore) Path() string {
	return s.path
}

// Load returns the stored preferences. A missing or unreadable file yields an
// empty record and is rewritten as "{}".
func (s *PreferenceStore) Load() Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.read()
	if err == nil {
		return prefs
	}

	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("op", "config/prefs").Str("file", s.path).Msg("Preferences file missing, creating empty one")
	} else {
		log.Warn().Str("op", "config/prefs").Str("file", s.path).Err(err).Msg("Preferences file corrupt, resetting")
	}

	if werr := s.write(Preferences{}); werr != nil {
		log.Warn().Str("op", "config/prefs").Str("file", s.path).Err(werr).Msg("Failed to reset preferences file")
	}
	return Preferences{}
}

// Save merges partial over the stored record and rewrites the whole file.
// Keys absent from partial keep their stored value.
func (s *PreferenceStore) Save(partial Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		current = Preferences{}
	}
	for k, v := range partial {
		current[k] = v
	}

	if err := s.write(current); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// read decodes the backing file; anything but a JSON object of strings is an error
func (s *PreferenceStore) read() (Preferences, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	if prefs == nil {
		return nil, fmt.Errorf("failed to parse preferences: not an object")
	}
	return prefs, nil
}

func (s *PreferenceStore) write(prefs Preferences) error {
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, prefsDirPerms); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(prefs, "", prefsIndent)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, prefsFilePerms)
}
