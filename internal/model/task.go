package model

import (
	"fmt"
	"strings"
	"time"
)

// Kind selects whether a URL is fetched as a single item or as a collection
type Kind string

const (
	KindSingle     Kind = "single"
	KindCollection Kind = "collection"
)

// ParseKind maps user input ("video", "playlist", "1", "2", ...) to a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "video", "1", "":
		return KindSingle, nil
	case "collection", "playlist", "2":
		return KindCollection, nil
	default:
		return "", fmt.Errorf("unknown download kind: %q", s)
	}
}

// Label returns the human readable name of the kind
func (k Kind) Label() string {
	if k == KindCollection {
		return "Playlist"
	}
	return "Video"
}

// DownloadRequest is the transient input of one download action
type DownloadRequest struct {
	ID          string
	URL         string
	Kind        Kind
	Destination string // download folder
	CookieFile  string // Netscape cookie file
	HelperTool  string // ffmpeg executable
}

// DownloadTask records one run of the orchestration loop
type DownloadTask struct {
	Request    DownloadRequest
	State      RunState
	Progress   float64 // 0.0 to 1.0
	Failure    FailureKind
	LastError  string    // last error message if any
	StartedAt  time.Time // when the action was accepted
	FinishedAt time.Time // when the run finished
}

// ID returns the request ID of the task
func (dt *DownloadTask) ID() string {
	return dt.Request.ID
}

// Duration returns how long the run took, or zero while it is active
func (dt *DownloadTask) Duration() time.Duration {
	if dt.FinishedAt.IsZero() || dt.StartedAt.IsZero() {
		return 0
	}
	return dt.FinishedAt.Sub(dt.StartedAt)
}

// GetDisplayTitle returns the URL without control characters, for status lines
func (dt *DownloadTask) GetDisplayTitle() string {
	url := strings.ReplaceAll(dt.Request.URL, "\n", "")
	url = strings.ReplaceAll(url, "\r", "")
	url = strings.ReplaceAll(url, "\t", " ")
	return strings.TrimSpace(url)
}
