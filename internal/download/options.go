package download

import (
	"path/filepath"

	"github.com/ytget/tubedl/internal/model"
)

// FormatSelection prefers the best pre-muxed stream, then the best
// video+audio pair, then the best stream of either kind.
const FormatSelection = "best/bestvideo+bestaudio/best*"

// DefaultMergeFormat is the container used when none is configured
const DefaultMergeFormat = "mp4"

// Output template parts
const (
	singleTemplate     = "%(title)s.%(ext)s"
	collectionDir      = "%(playlist_title)s"
	collectionTemplate = "%(playlist_index)s - %(title)s.%(ext)s"
)

// Options is the configuration handed to the Engine for one request
type Options struct {
	URL            string
	OutputTemplate string
	Collection     bool // expand playlists
	Format         string
	MergeFormat    string
	CookieFile     string
	FFmpegLocation string
}

// BuildOptions derives the downloader options for req. An empty mergeFormat
// selects DefaultMergeFormat.
func BuildOptions(req model.DownloadRequest, mergeFormat string) Options {
	if mergeFormat == "" {
		mergeFormat = DefaultMergeFormat
	}

	opts := Options{
		URL:            req.URL,
		Format:         FormatSelection,
		MergeFormat:    mergeFormat,
		CookieFile:     req.CookieFile,
		FFmpegLocation: req.HelperTool,
	}

	switch req.Kind {
	case model.KindCollection:
		opts.OutputTemplate = filepath.Join(req.Destination, collectionDir, collectionTemplate)
		opts.Collection = true
	default:
		opts.OutputTemplate = filepath.Join(req.Destination, singleTemplate)
	}
	return opts
}
