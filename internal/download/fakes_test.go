package download

import (
	"context"
	"sync"

	"github.com/ytget/tubedl/internal/model"
)

type fakeEngine struct {
	mu       sync.Mutex
	progress func(ProgressEvent)
	events   []ProgressEvent
	err      error
	panicVal any
	calls    []Options
	block    chan struct{}
}

func (e *fakeEngine) OnProgress(fn func(ProgressEvent)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.progress = fn
}

func (e *fakeEngine) Fetch(ctx context.Context, opts Options) error {
	e.mu.Lock()
	e.calls = append(e.calls, opts)
	fn := e.progress
	e.mu.Unlock()

	if e.block != nil {
		<-e.block
	}
	for _, ev := range e.events {
		if fn != nil {
			fn(ev)
		}
	}
	if e.panicVal != nil {
		panic(e.panicVal)
	}
	return e.err
}

func (e *fakeEngine) callCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

type recordingDisplay struct {
	mu        sync.Mutex
	enabled   []bool
	progress  []float64
	statuses  []string
	warnings  []string
	successes []model.Kind
	failures  []model.FailureKind
	errs      []error
}

func (d *recordingDisplay) SetControlsEnabled(enabled bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.enabled = append(d.enabled, enabled)
}

func (d *recordingDisplay) SetProgress(fraction float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.progress = append(d.progress, fraction)
}

func (d *recordingDisplay) SetStatus(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.statuses = append(d.statuses, text)
}

func (d *recordingDisplay) Warn(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.warnings = append(d.warnings, WarningText(err))
}

func (d *recordingDisplay) NotifySuccess(kind model.Kind) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.successes = append(d.successes, kind)
}

func (d *recordingDisplay) NotifyFailure(kind model.FailureKind, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.failures = append(d.failures, kind)
	d.errs = append(d.errs, err)
}

func (d *recordingDisplay) lastEnabled() (bool, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.enabled) == 0 {
		return false, false
	}
	return d.enabled[len(d.enabled)-1], true
}

func (d *recordingDisplay) lastProgress() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.progress) == 0 {
		return -1
	}
	return d.progress[len(d.progress)-1]
}

type recordingRecorder struct {
	mu    sync.Mutex
	tasks []model.DownloadTask
	err   error
}

func (r *recordingRecorder) Record(ctx context.Context, task *model.DownloadTask) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, *task)
	return r.err
}

func f64(v float64) *float64 {
	return &v
}

func validRequest() model.DownloadRequest {
	return model.DownloadRequest{
		ID:          "dl-test",
		URL:         "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Kind:        model.KindSingle,
		Destination: "/d",
		CookieFile:  "/c/cookies.txt",
		HelperTool:  "/usr/bin/ffmpeg",
	}
}
