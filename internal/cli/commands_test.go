package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ytget/tubedl/internal/config"
	"github.com/ytget/tubedl/internal/history"
	"github.com/ytget/tubedl/internal/model"
)

func writeTestConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "preferences_file: " + filepath.Join(dir, "location.json") + "\n" +
		"history_db: " + filepath.Join(dir, "history.db") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path, dir
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&app{}, "test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPrefsSetAndShow(t *testing.T) {
	configPath, dir := writeTestConfig(t)
	videos := filepath.Join(dir, "videos")
	if err := os.Mkdir(videos, 0755); err != nil {
		t.Fatalf("Failed to create folder: %v", err)
	}

	if _, err := execute(t, "--config", configPath, "prefs", "set", "destination", videos); err != nil {
		t.Fatalf("prefs set failed: %v", err)
	}

	stored := config.NewPreferenceStore(filepath.Join(dir, "location.json")).Load()
	if stored[config.PrefPath] != videos {
		t.Errorf("Expected path %s to be stored, got %v", videos, stored)
	}

	out, err := execute(t, "--config", configPath, "prefs", "show")
	if err != nil {
		t.Fatalf("prefs show failed: %v", err)
	}
	if !strings.Contains(out, videos) || !strings.Contains(out, "(unset)") {
		t.Errorf("Unexpected prefs output: %q", out)
	}
}

func TestPrefsSet_UnknownKey(t *testing.T) {
	configPath, _ := writeTestConfig(t)
	if _, err := execute(t, "--config", configPath, "prefs", "set", "proxy", "/x"); err == nil {
		t.Error("Expected error for unknown preference")
	}
}

func TestNormalizePrefKey(t *testing.T) {
	tests := map[string]string{
		"path":        config.PrefPath,
		"Destination": config.PrefPath,
		"cookie":      config.PrefCookies,
		"ffmpeg":      config.PrefFFmpeg,
		"helper-tool": config.PrefFFmpeg,
	}
	for input, expected := range tests {
		got, err := normalizePrefKey(input)
		if err != nil || got != expected {
			t.Errorf("normalizePrefKey(%q) = %q, %v; expected %q", input, got, err, expected)
		}
	}
}

func TestMenuCommand_Quit(t *testing.T) {
	configPath, _ := writeTestConfig(t)
	var out bytes.Buffer
	cmd := newRootCmd(&app{}, "test")
	cmd.SetOut(&out)
	cmd.SetIn(strings.NewReader("3\n"))
	cmd.SetArgs([]string{"--config", configPath})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("menu failed: %v", err)
	}
	if !strings.Contains(out.String(), "Closing the program...") {
		t.Errorf("Expected closing message, got %q", out.String())
	}
}

func TestHistoryCommand(t *testing.T) {
	configPath, dir := writeTestConfig(t)

	store, err := history.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	task := &model.DownloadTask{
		Request:    model.DownloadRequest{ID: "dl-1", URL: "https://youtu.be/x", Kind: model.KindSingle},
		State:      model.RunStateFailed,
		LastError:  "HTTP Error 403",
		StartedAt:  time.Now().Add(-time.Minute),
		FinishedAt: time.Now(),
	}
	if err := store.Record(t.Context(), task); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	store.Close()

	out, err := execute(t, "--config", configPath, "history", "--limit", "5")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "https://youtu.be/x") || !strings.Contains(out, "HTTP Error 403") {
		t.Errorf("Unexpected history output: %q", out)
	}
}

func TestPrintHistory_Empty(t *testing.T) {
	var out bytes.Buffer
	printHistory(&out, nil, time.Now())
	if !strings.Contains(out.String(), "No downloads yet") {
		t.Errorf("Unexpected output: %q", out.String())
	}
}

func TestPrintCollection(t *testing.T) {
	c := &model.Collection{ID: "PL1"}
	c.AddEntry(&model.CollectionEntry{ID: "a", Title: "First", URL: "https://youtu.be/a"})
	c.AddEntry(&model.CollectionEntry{ID: "b", Title: "Second", URL: "https://youtu.be/b"})

	var out bytes.Buffer
	printCollection(&out, c)

	text := out.String()
	for _, want := range []string{"PL1 (2 items)", "1. First", "2. Second", "https://youtu.be/b"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected %q in %q", want, text)
		}
	}
}

func TestResolveDestination(t *testing.T) {
	prefs := config.Preferences{config.PrefPath: "/saved"}
	if got := resolveDestination("/flag", prefs); got != "/flag" {
		t.Errorf("Expected flag value, got %s", got)
	}
	if got := resolveDestination("", prefs); got != "/saved" {
		t.Errorf("Expected saved folder, got %s", got)
	}
	if got := resolveDestination("", config.Preferences{}); got != workingDir() {
		t.Errorf("Expected working directory, got %s", got)
	}
}
