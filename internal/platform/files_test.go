package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir", "nested")

	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestCreateDirectoryIfNotExists_FileInTheWay(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	if err := CreateDirectoryIfNotExists(filepath.Join(file, "sub")); err == nil {
		t.Error("Expected error when a parent is a regular file")
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestOpenFolder_Missing(t *testing.T) {
	err := OpenFolder(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("Expected error for a missing folder")
	}
}

func TestOpenFolder_File(t *testing.T) {
	file := filepath.Join(t.TempDir(), "video.mp4")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	if err := OpenFolder(file); err == nil {
		t.Error("Expected error when opening a regular file")
	}
}

func TestFreeSpace(t *testing.T) {
	free, err := FreeSpace(t.TempDir())
	if err != nil {
		t.Fatalf("FreeSpace failed: %v", err)
	}
	if free == 0 {
		t.Error("Expected some free space in the temp directory")
	}
}

func TestShortenPath(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"/short", 25, "/short"},
		{"/home/user/Videos/YouTube/Music", 25, "/home/user/...uTube/Music"},
		{"abcdefghij", 7, "ab...ij"},
		{"abcdefghij", 2, "ij"},
		{"abcdefghij", 0, "abcdefghij"},
		{"/дом/видео/плейлисты", 10, "/до...сты"},
		{"abcdefghijkl", 10, "abc...jkl"},
	}

	for _, test := range tests {
		got := ShortenPath(test.input, test.maxLen)
		if got != test.expected {
			t.Errorf("ShortenPath(%q, %d) = %q, expected %q", test.input, test.maxLen, got, test.expected)
		}
		if test.maxLen > 0 && len([]rune(got)) > test.maxLen {
			t.Errorf("ShortenPath(%q, %d) is too long: %q", test.input, test.maxLen, got)
		}
	}
}
