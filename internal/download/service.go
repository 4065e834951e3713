package download

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/ytget/tubedl/internal/model"
)

// Status texts shown while a download runs
const (
	StatusInProgress = "Download in progress..."
	MsgBusy          = "A download is already in progress. Please wait for it to finish."
)

// ServiceConfig holds the collaborators and policy of a Service
type ServiceConfig struct {
	MergeFormat string
	Policy      Policy
	Recorder    Recorder // optional
}

// Service runs one download at a time and keeps the display in sync
type Service struct {
	engine      Engine
	display     Display
	recorder    Recorder
	validators  []Validator
	mergeFormat string

	inFlight atomic.Bool
	wg       sync.WaitGroup

	taskMutex sync.RWMutex
	current   *model.DownloadTask
}

// NewService creates a new download service
func NewService(engine Engine, display Display, cfg ServiceConfig) *Service {
	return &Service{
		engine:      engine,
		display:     display,
		recorder:    cfg.Recorder,
		validators:  Validators(cfg.Policy),
		mergeFormat: cfg.MergeFormat,
	}
}

// Busy reports whether a download is in flight
func (s *Service) Busy() bool {
	return s.inFlight.Load()
}

// Current returns a copy of the last accepted task
func (s *Service) Current() (model.DownloadTask, bool) {
	s.taskMutex.RLock()
	defer s.taskMutex.RUnlock()
	if s.current == nil {
		return model.DownloadTask{}, false
	}
	return *s.current, true
}

// State returns the run state of the current download, or RunStateIdle when
// none is active
func (s *Service) State() model.RunState {
	s.taskMutex.RLock()
	defer s.taskMutex.RUnlock()
	if s.current == nil || !s.current.State.IsActive() {
		return model.RunStateIdle
	}
	return s.current.State
}

// Start validates req and runs the download on a background goroutine.
// It returns ErrBusy or a *ValidationError without starting anything.
func (s *Service) Start(req model.DownloadRequest) error {
	task, err := s.accept(req)
	if err != nil {
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.inFlight.Store(false)
		_ = s.execute(context.Background(), task)
	}()
	return nil
}

// Run validates req and runs the download on the calling goroutine
func (s *Service) Run(ctx context.Context, req model.DownloadRequest) error {
	task, err := s.accept(req)
	if err != nil {
		return err
	}
	defer s.inFlight.Store(false)
	return s.execute(ctx, task)
}

// Wait blocks until downloads started with Start have finished
func (s *Service) Wait() {
	s.wg.Wait()
}

// accept takes the in-flight guard and validates req. The guard is held on
// success and released otherwise.
func (s *Service) accept(req model.DownloadRequest) (*model.DownloadTask, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		log.Warn().Str("op", "download/accept").Str("url", req.URL).Msg("Rejected request, download in flight")
		s.display.Warn(ErrBusy)
		return nil, ErrBusy
	}

	task := &model.DownloadTask{
		Request:   req,
		State:     model.RunStateValidating,
		StartedAt: time.Now(),
	}

	if err := Validate(req, s.validators); err != nil {
		s.inFlight.Store(false)
		var ve *ValidationError
		if errors.As(err, &ve) {
			s.display.Warn(ve)
		}
		log.Debug().Str("op", "download/accept").Err(err).Msg("Request failed validation")
		return nil, err
	}

	s.taskMutex.Lock()
	s.current = task
	s.taskMutex.Unlock()
	return task, nil
}

// execute runs an accepted task. The display is restored whatever happens,
// including a panic inside the engine.
func (s *Service) execute(ctx context.Context, task *model.DownloadTask) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("downloader panic: %v", r)
			log.Error().Str("op", "download/execute").Str("id", task.ID()).Interface("panic", r).Msg("Downloader panicked")
			s.fail(task, model.FailureDownload, err)
		}

		s.display.SetControlsEnabled(true)
		s.display.SetProgress(0)
		s.display.SetStatus("")
		s.record(task)
	}()

	s.setState(task, model.RunStateRunning)
	s.display.SetControlsEnabled(false)
	s.display.SetStatus(StatusInProgress)

	opts := BuildOptions(task.Request, s.mergeFormat)
	s.engine.OnProgress(func(ev ProgressEvent) {
		s.handleProgress(task, ev)
	})

	log.Info().Str("op", "download/execute").Str("id", task.ID()).Str("kind", string(task.Request.Kind)).Str("url", task.GetDisplayTitle()).Msg("Download started")

	if fetchErr := s.engine.Fetch(ctx, opts); fetchErr != nil {
		kind, classified := Classify(fetchErr)
		log.Error().Str("op", "download/execute").Str("id", task.ID()).Str("failure", string(kind)).Err(fetchErr).Msg("Download failed")
		s.fail(task, kind, classified)
		return classified
	}

	s.taskMutex.Lock()
	task.State = model.RunStateSucceeded
	task.FinishedAt = time.Now()
	s.taskMutex.Unlock()

	log.Info().Str("op", "download/execute").Str("id", task.ID()).Dur("took", task.Duration()).Msg("Download completed")
	s.display.NotifySuccess(task.Request.Kind)
	return nil
}

func (s *Service) handleProgress(task *model.DownloadTask, ev ProgressEvent) {
	if fraction, ok := ev.Fraction(); ok {
		s.taskMutex.Lock()
		task.Progress = fraction
		s.taskMutex.Unlock()
		s.display.SetProgress(fraction)
	}
	if line := ev.StatusLine(); line != "" {
		s.display.SetStatus(StatusInProgress + " " + line)
	}
}

func (s *Service) fail(task *model.DownloadTask, kind model.FailureKind, err error) {
	s.taskMutex.Lock()
	task.State = model.RunStateFailed
	task.Failure = kind
	task.LastError = err.Error()
	task.Progress = 0
	task.FinishedAt = time.Now()
	s.taskMutex.Unlock()

	s.display.SetProgress(0)
	s.display.NotifyFailure(kind, err)
}

func (s *Service) setState(task *model.DownloadTask, state model.RunState) {
	s.taskMutex.Lock()
	task.State = state
	s.taskMutex.Unlock()
}

func (s *Service) record(task *model.DownloadTask) {
	if s.recorder == nil {
		return
	}
	s.taskMutex.RLock()
	snapshot := *task
	s.taskMutex.RUnlock()

	if err := s.recorder.Record(context.Background(), &snapshot); err != nil {
		log.Warn().Str("op", "download/record").Str("id", snapshot.ID()).Err(err).Msg("Failed to record download history")
	}
}
