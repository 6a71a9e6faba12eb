// Package watch keeps the post index current while posts are being edited.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"

	"git.home.luguber.info/inful/postindex/internal/config"
	ierrors "git.home.luguber.info/inful/postindex/internal/errors"
	"git.home.luguber.info/inful/postindex/internal/index"
	"git.home.luguber.info/inful/postindex/internal/logfields"
	"git.home.luguber.info/inful/postindex/internal/metrics"
)

// DefaultDebounce is the quiet period after the last file event before regenerating.
const DefaultDebounce = config.DefaultDebounce

// Watcher regenerates the index when source documents change and once a day
// at 00:00 UTC, so posts without a date follow the calendar.
type Watcher struct {
	gen          *index.Generator
	clock        clockwork.Clock
	recorder     metrics.Recorder
	logger       *slog.Logger
	debounce     time.Duration
	dailyRefresh bool
	onResult     func(*index.Result)

	mu              sync.Mutex
	lastFingerprint string
	lastDay         string

	jobMu sync.Mutex
	job   gocron.Job

	triggerChan chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the debounce window; non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithDailyRefresh enables or disables the midnight refresh job.
func WithDailyRefresh(enabled bool) Option { return func(w *Watcher) { w.dailyRefresh = enabled } }

// WithResultHandler registers fn to be called after every successful write.
func WithResultHandler(fn func(*index.Result)) Option { return func(w *Watcher) { w.onResult = fn } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(w *Watcher) { w.logger = l } }

// New creates a Watcher around gen. The generator's clock and recorder are shared.
func New(gen *index.Generator, opts ...Option) *Watcher {
	w := &Watcher{
		gen:          gen,
		clock:        gen.Clock(),
		recorder:     gen.Recorder(),
		logger:       slog.Default(),
		debounce:     DefaultDebounce,
		dailyRefresh: true,
		triggerChan:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run generates once, then watches until ctx is canceled. Generation errors
// are logged and do not stop the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return ierrors.Wrap(err, ierrors.CategoryRuntime, ierrors.SeverityFatal, "failed to create file watcher")
	}
	defer func() {
		if cerr := fsw.Close(); cerr != nil {
			w.logger.Error("Error closing file watcher", logfields.Error(cerr))
		}
	}()

	if err := fsw.Add(w.gen.SourceDir()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ierrors.SourceDirNotFound(w.gen.SourceDir())
		}
		return ierrors.ListFailed(w.gen.SourceDir(), err)
	}

	w.logger.Info("Starting watcher",
		logfields.Path(w.gen.SourceDir()),
		slog.Duration("debounce", w.debounce),
		slog.Bool("daily_refresh", w.dailyRefresh))

	w.regenerate(ctx, "startup", true)

	if w.dailyRefresh {
		s, err := w.startScheduler(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if serr := s.Shutdown(); serr != nil {
				w.logger.Error("Error stopping scheduler", logfields.Error(serr))
			}
		}()
	}

	go w.eventLoop(ctx, fsw)
	return w.regenerateLoop(ctx)
}

func (w *Watcher) startScheduler(ctx context.Context) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler(
		gocron.WithClock(w.clock),
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		return nil, ierrors.Wrap(err, ierrors.CategoryRuntime, ierrors.SeverityFatal, "failed to create scheduler")
	}

	job, err := s.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(func() { w.Refresh(ctx) }),
		gocron.WithName("daily-refresh"),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, ierrors.Wrap(err, ierrors.CategoryRuntime, ierrors.SeverityFatal, "failed to schedule daily refresh")
	}

	w.jobMu.Lock()
	w.job = job
	w.jobMu.Unlock()

	s.Start()
	return s, nil
}

// NextRefresh returns when the daily refresh runs next. It reports false
// until the scheduler is running or when the refresh is disabled.
func (w *Watcher) NextRefresh() (time.Time, bool) {
	w.jobMu.Lock()
	job := w.job
	w.jobMu.Unlock()
	if job == nil {
		return time.Time{}, false
	}
	next, err := job.NextRun()
	if err != nil || next.IsZero() {
		return time.Time{}, false
	}
	return next, true
}

func (w *Watcher) eventLoop(ctx context.Context, fsw *fsnotify.Watcher) {
	exts := w.gen.Extensions()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !relevant(event, exts) {
				continue
			}
			w.logger.Debug("Source change detected", logfields.File(filepath.Base(event.Name)), slog.String("op", event.Op.String()))
			w.trigger()
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", logfields.Error(err))
		}
	}
}

func relevant(event fsnotify.Event, exts []string) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	_, ok := index.MatchExtension(filepath.Base(event.Name), exts)
	return ok
}

func (w *Watcher) trigger() {
	select {
	case w.triggerChan <- struct{}{}:
	default:
	}
}

// regenerateLoop debounces triggers until ctx is done.
func (w *Watcher) regenerateLoop(ctx context.Context) error {
	var timer *time.Timer
	fire := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			w.logger.Info("Stopping watcher")
			return nil
		case <-w.triggerChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case <-fire:
			w.regenerate(ctx, "change", false)
		}
	}
}

// Refresh regenerates even when the input is unchanged.
func (w *Watcher) Refresh(ctx context.Context) {
	w.regenerate(ctx, "daily-refresh", true)
}

// regenerate runs one pass. Unless forced, it is skipped when the documents
// and the UTC day match the last successful pass.
func (w *Watcher) regenerate(ctx context.Context, reason string, force bool) (*index.Result, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	log := w.logger.With(slog.String("reason", reason))

	snap, err := w.gen.Collect(ctx)
	if err != nil {
		w.recorder.IncGenerateOutcome(metrics.OutcomeFailed)
		log.Error("Index generation failed", logfields.Error(err))
		return nil, false
	}

	day := index.FormatDate(w.clock.Now())
	if !force && snap.Fingerprint == w.lastFingerprint && day == w.lastDay {
		w.recorder.IncGenerateOutcome(metrics.OutcomeSkipped)
		log.Debug("Input unchanged, skipping regeneration", logfields.RunID(snap.RunID), logfields.Outcome(string(metrics.OutcomeSkipped)))
		return nil, true
	}

	res, err := w.gen.Write(ctx, snap)
	if err != nil {
		log.Error("Index generation failed", logfields.RunID(snap.RunID), logfields.Error(err))
		return nil, false
	}
	w.lastFingerprint = res.Fingerprint
	w.lastDay = day
	if w.onResult != nil {
		w.onResult(res)
	}
	return res, false
}
