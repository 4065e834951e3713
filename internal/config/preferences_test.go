package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return strings.TrimSpace(string(data))
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", PreferencesFileName)
	store := NewPreferenceStore(path)

	prefs := store.Load()
	if len(prefs) != 0 {
		t.Errorf("Expected empty preferences, got %v", prefs)
	}

	if content := readFile(t, path); content != "{}" {
		t.Errorf("Expected file content {}, got %q", content)
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "not json at all"},
		{"truncated", `{"path": "/d"`},
		{"empty", ""},
		{"array", `["a", "b"]`},
		{"null", "null"},
		{"non-string value", `{"path": 42}`},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), PreferencesFileName)
			if err := os.WriteFile(path, []byte(test.content), 0644); err != nil {
				t.Fatalf("Failed to write file: %v", err)
			}

			prefs := NewPreferenceStore(path).Load()
			if len(prefs) != 0 {
				t.Errorf("Expected empty preferences, got %v", prefs)
			}
			if content := readFile(t, path); content != "{}" {
				t.Errorf("Expected file to be reset to {}, got %q", content)
			}
		})
	}
}

func TestSave_MergesKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), PreferencesFileName)
	store := NewPreferenceStore(path)

	if err := store.Save(Preferences{PrefPath: "/downloads"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(Preferences{PrefCookies: "/cookies.txt"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save(Preferences{PrefFFmpeg: "/usr/bin/ffmpeg", PrefPath: "/videos"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	prefs := store.Load()
	expected := Preferences{
		PrefPath:    "/videos",
		PrefCookies: "/cookies.txt",
		PrefFFmpeg:  "/usr/bin/ffmpeg",
	}
	if len(prefs) != len(expected) {
		t.Fatalf("Expected %d keys, got %v", len(expected), prefs)
	}
	for k, v := range expected {
		if prefs[k] != v {
			t.Errorf("Key %s: expected %q, got %q", k, v, prefs[k])
		}
	}
}

func TestSave_OverCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), PreferencesFileName)
	if err := os.WriteFile(path, []byte("{{{"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	store := NewPreferenceStore(path)
	if err := store.Save(Preferences{PrefPath: "/d"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	prefs := store.Load()
	if len(prefs) != 1 || prefs[PrefPath] != "/d" {
		t.Errorf("Expected only path=/d, got %v", prefs)
	}
}

func TestSave_UnwritableLocation(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	store := NewPreferenceStore(filepath.Join(blocker, PreferencesFileName))
	if err := store.Save(Preferences{PrefPath: "/d"}); err == nil {
		t.Error("Expected error when the parent path is a regular file")
	}
}

func TestPreferences_Get(t *testing.T) {
	prefs := Preferences{PrefPath: "/d", PrefCookies: ""}

	if v, ok := prefs.Get(PrefPath); !ok || v != "/d" {
		t.Errorf("Get(path) = %q, %v", v, ok)
	}
	if _, ok := prefs.Get(PrefCookies); ok {
		t.Error("Expected empty cookies value to count as unset")
	}
	if _, ok := prefs.Get(PrefFFmpeg); ok {
		t.Error("Expected missing ffmpeg key to count as unset")
	}
}
