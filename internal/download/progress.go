package download

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// Progress statuses reported by yt-dlp
const (
	ProgressDownloading = "downloading"
	ProgressFinished    = "finished"
)

// ProgressEvent is one progress report of the downloader. Counters are nil
// when yt-dlp did not report them.
type ProgressEvent struct {
	Status             string   `json:"status"`
	DownloadedBytes    *float64 `json:"downloaded_bytes"`
	TotalBytes         *float64 `json:"total_bytes"`
	TotalBytesEstimate *float64 `json:"total_bytes_estimate"`
	Filename           string   `json:"filename"`
}

// Total returns the exact size when known, otherwise the estimate
func (e ProgressEvent) Total() (float64, bool) {
	if e.TotalBytes != nil && *e.TotalBytes > 0 {
		return *e.TotalBytes, true
	}
	if e.TotalBytesEstimate != nil && *e.TotalBytesEstimate > 0 {
		return *e.TotalBytesEstimate, true
	}
	return 0, false
}

// Fraction normalizes the event into [0,1]. The second result is false when
// the event carries no usable progress and the displayed value should stay.
func (e ProgressEvent) Fraction() (float64, bool) {
	switch e.Status {
	case ProgressFinished:
		return 1.0, true
	case ProgressDownloading:
		total, ok := e.Total()
		if !ok {
			return 0, false
		}
		var downloaded float64
		if e.DownloadedBytes != nil {
			downloaded = *e.DownloadedBytes
		}
		return clamp(downloaded / total), true
	default:
		return 0, false
	}
}

// StatusLine renders the byte counters of a downloading event, e.g.
// "12 MB / 50 MB". It returns "" when there is nothing to show.
func (e ProgressEvent) StatusLine() string {
	if e.Status != ProgressDownloading || e.DownloadedBytes == nil {
		return ""
	}
	downloaded := humanize.Bytes(toBytes(*e.DownloadedBytes))
	if e.TotalBytes != nil && *e.TotalBytes > 0 {
		return fmt.Sprintf("%s / %s", downloaded, humanize.Bytes(toBytes(*e.TotalBytes)))
	}
	if e.TotalBytesEstimate != nil && *e.TotalBytesEstimate > 0 {
		return fmt.Sprintf("%s / ~%s", downloaded, humanize.Bytes(toBytes(*e.TotalBytesEstimate)))
	}
	return downloaded
}

func clamp(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toBytes(v float64) uint64 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return uint64(v)
}
