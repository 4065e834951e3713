// Package ytdlp runs the yt-dlp executable as the download engine.
package ytdlp

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	goytdlp "github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog/log"
	"github.com/ytget/tubedl/internal/download"
)

// ProgressInterval is how often yt-dlp progress is forwarded
const ProgressInterval = 250 * time.Millisecond

const errorPrefix = "ERROR:"

// Engine downloads by running yt-dlp through go-ytdlp
type Engine struct {
	binary string

	mu       sync.Mutex
	progress func(download.ProgressEvent)
}

// New creates an engine that runs the yt-dlp executable at binary
func New(binary string) *Engine {
	return &Engine{binary: binary}
}

// OnProgress registers the callback receiving progress events
func (e *Engine) OnProgress(fn func(download.ProgressEvent)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.progress = fn
}

// Fetch runs yt-dlp for opts and blocks until it exits. A non-zero exit is
// returned as *download.EngineError carrying the reported ERROR lines.
func (e *Engine) Fetch(ctx context.Context, opts download.Options) error {
	dl := e.command(opts)
	dl.ProgressFunc(ProgressInterval, e.forwardProgress())

	log.Debug().Str("op", "ytdlp/fetch").Str("url", opts.URL).Str("output", opts.OutputTemplate).Msg("Running yt-dlp")

	result, err := dl.Run(ctx, opts.URL)
	if err != nil {
		if result != nil && result.ExitCode > 0 {
			log.Error().Str("op", "ytdlp/fetch").Int("exit_code", result.ExitCode).Msg("yt-dlp failed")
			return &download.EngineError{Message: failureMessage(result.Stderr, result.ExitCode)}
		}
		log.Error().Str("op", "ytdlp/fetch").Err(err).Msg("Error running yt-dlp")
		return fmt.Errorf("error running yt-dlp: %w", err)
	}

	log.Info().Str("op", "ytdlp/fetch").Msgf("yt-dlp download completed for %s", opts.URL)
	return nil
}

// forwardProgress returns a go-ytdlp progress callback delivering converted
// events to the callback registered when it was created
func (e *Engine) forwardProgress() func(goytdlp.ProgressUpdate) {
	e.mu.Lock()
	onProgress := e.progress
	e.mu.Unlock()

	return func(update goytdlp.ProgressUpdate) {
		if onProgress != nil {
			onProgress(convertProgress(update))
		}
	}
}

// command converts options to a go-ytdlp command
func (e *Engine) command(opts download.Options) *goytdlp.Command {
	dl := goytdlp.New().
		Output(opts.OutputTemplate).
		Format(opts.Format)
	if e.binary != "" {
		dl.SetExecutable(e.binary)
	}
	if opts.MergeFormat != "" {
		dl.MergeOutputFormat(opts.MergeFormat)
	}
	if opts.CookieFile != "" {
		dl.Cookies(opts.CookieFile)
	}
	if opts.FFmpegLocation != "" {
		dl.FfmpegLocation(opts.FFmpegLocation)
	}
	if opts.Collection {
		dl.YesPlaylist()
	} else {
		dl.NoPlaylist()
	}
	return dl
}

// convertProgress maps a go-ytdlp update to the adapter's event. go-ytdlp
// already falls back to the size estimate, so a zero total means unknown.
func convertProgress(update goytdlp.ProgressUpdate) download.ProgressEvent {
	ev := download.ProgressEvent{
		Status:   string(update.Status),
		Filename: update.Filename,
	}
	downloaded := float64(update.DownloadedBytes)
	ev.DownloadedBytes = &downloaded
	if update.TotalBytes > 0 {
		total := float64(update.TotalBytes)
		ev.TotalBytes = &total
	}
	return ev
}

// failureMessage joins the ERROR lines of stderr, or names the exit code
// when there are none
func failureMessage(stderr string, exitCode int) string {
	var lines []string
	for _, line := range strings.Split(stderr, "\n") {
		if msg, ok := errorLine(strings.TrimSpace(line)); ok {
			lines = append(lines, msg)
		}
	}
	if len(lines) == 0 {
		return fmt.Sprintf("yt-dlp exited with status %d", exitCode)
	}
	return strings.Join(lines, "\n")
}

func errorLine(line string) (string, bool) {
	if !strings.HasPrefix(line, errorPrefix) {
		return "", false
	}
	return line, true
}
