// Package download implements the download pipeline built on top of yt-dlp.
// It turns a request into downloader options, normalizes progress events,
// validates inputs and drives one run at a time while keeping the display
// in a consistent state.
package download
