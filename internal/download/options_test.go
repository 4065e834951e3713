package download

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/tubedl/internal/model"
)

func TestBuildOptions(t *testing.T) {
	tests := []struct {
		name           string
		kind           model.Kind
		mergeFormat    string
		wantTemplate   string
		wantCollection bool
		wantMerge      string
	}{
		{
			name:         "single",
			kind:         model.KindSingle,
			wantTemplate: filepath.Join("/d", "%(title)s.%(ext)s"),
			wantMerge:    "mp4",
		},
		{
			name:           "collection",
			kind:           model.KindCollection,
			wantTemplate:   filepath.Join("/d", "%(playlist_title)s", "%(playlist_index)s - %(title)s.%(ext)s"),
			wantCollection: true,
			wantMerge:      "mp4",
		},
		{
			name:         "custom merge format",
			kind:         model.KindSingle,
			mergeFormat:  "mkv",
			wantTemplate: filepath.Join("/d", "%(title)s.%(ext)s"),
			wantMerge:    "mkv",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := model.DownloadRequest{
				URL:         "U",
				Kind:        test.kind,
				Destination: "/d",
				CookieFile:  "/c.txt",
				HelperTool:  "/ffmpeg",
			}
			opts := BuildOptions(req, test.mergeFormat)

			if opts.OutputTemplate != test.wantTemplate {
				t.Errorf("Expected template %q, got %q", test.wantTemplate, opts.OutputTemplate)
			}
			if opts.Collection != test.wantCollection {
				t.Errorf("Expected collection %v, got %v", test.wantCollection, opts.Collection)
			}
			if opts.MergeFormat != test.wantMerge {
				t.Errorf("Expected merge format %q, got %q", test.wantMerge, opts.MergeFormat)
			}
			if opts.Format != FormatSelection {
				t.Errorf("Expected format %q, got %q", FormatSelection, opts.Format)
			}
			if opts.URL != "U" || opts.CookieFile != "/c.txt" || opts.FFmpegLocation != "/ffmpeg" {
				t.Errorf("Request fields not carried over: %+v", opts)
			}
			if !strings.HasPrefix(opts.OutputTemplate, "/d") {
				t.Errorf("Expected template rooted at /d, got %q", opts.OutputTemplate)
			}
		})
	}
}

func TestBuildOptions_SingleHasNoCollectionFields(t *testing.T) {
	opts := BuildOptions(model.DownloadRequest{Kind: model.KindSingle, Destination: "/d"}, "")
	if strings.Contains(opts.OutputTemplate, "playlist") {
		t.Errorf("Single template should not reference the collection: %q", opts.OutputTemplate)
	}
}
