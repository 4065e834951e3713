package download

import (
	"context"

	"github.com/ytget/tubedl/internal/model"
)

// Engine is the external downloader. Fetch blocks until the download
// finishes. Progress events are delivered to the callback registered
// with OnProgress while Fetch runs.
type Engine interface {
	Fetch(ctx context.Context, opts Options) error
	OnProgress(fn func(ProgressEvent))
}

// Display is the user-facing surface driven by the Service. Methods may be
// called from a background goroutine. Warn receives ErrBusy or a
// *ValidationError; WarningText gives its default English text.
type Display interface {
	SetControlsEnabled(enabled bool)
	SetProgress(fraction float64)
	SetStatus(text string)
	Warn(err error)
	NotifySuccess(kind model.Kind)
	NotifyFailure(kind model.FailureKind, err error)
}

// Recorder stores finished runs
type Recorder interface {
	Record(ctx context.Context, task *model.DownloadTask) error
}
