package platform

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestNewCollectionLister(t *testing.T) {
	lister := NewCollectionLister()
	if lister.timeout != DefaultListTimeout {
		t.Errorf("Expected timeout %v, got %v", DefaultListTimeout, lister.timeout)
	}

	lister.SetTimeout(5 * time.Second)
	if lister.timeout != 5*time.Second {
		t.Errorf("Expected timeout 5s, got %v", lister.timeout)
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
		wantErr  bool
	}{
		{
			name:     "playlist page",
			url:      "https://www.youtube.com/playlist?list=PLrAXtmRdnEQy6nuLMHjMZOz59Oq8B9b7H",
			expected: "PLrAXtmRdnEQy6nuLMHjMZOz59Oq8B9b7H",
		},
		{
			name:     "watch with list and index",
			url:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123&index=2",
			expected: "PL123",
		},
		{
			name:     "surrounding whitespace",
			url:      "  https://youtube.com/playlist?list=PLabc  ",
			expected: "PLabc",
		},
		{
			name:    "no list parameter",
			url:     "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			wantErr: true,
		},
		{
			name:    "empty list parameter",
			url:     "https://www.youtube.com/playlist?list=",
			wantErr: true,
		},
		{
			name:    "malformed",
			url:     "://bad url",
			wantErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			id, err := ExtractPlaylistID(test.url)
			if (err != nil) != test.wantErr {
				t.Fatalf("Expected error=%v, got %v", test.wantErr, err)
			}
			if id != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, id)
			}
		})
	}
}

func TestList_InvalidURL(t *testing.T) {
	_, err := NewCollectionLister().List(context.Background(), "https://www.youtube.com/watch?v=x")
	if err == nil {
		t.Error("Expected error for a URL without a playlist")
	}
}

func TestList_Integration(t *testing.T) {
	if testing.Short() || os.Getenv("TUBEDL_NETWORK_TESTS") == "" {
		t.Skip("Skipping network test; set TUBEDL_NETWORK_TESTS=1 to run")
	}

	lister := NewCollectionLister()
	lister.SetTimeout(30 * time.Second)

	collection, err := lister.List(context.Background(), "https://www.youtube.com/playlist?list=PLrAXtmRdnEQy6nuLMHjMZOz59Oq8B9b7H")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for i, entry := range collection.Entries {
		if entry.Index != i+1 {
			t.Errorf("Entry %d has index %d", i, entry.Index)
		}
		if entry.ID == "" || entry.URL == "" {
			t.Errorf("Entry %d is incomplete: %+v", i, entry)
		}
	}
}
