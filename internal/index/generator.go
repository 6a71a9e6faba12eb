package index

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"git.home.luguber.info/inful/postindex/internal/config"
	ierrors "git.home.luguber.info/inful/postindex/internal/errors"
	"git.home.luguber.info/inful/postindex/internal/frontmatter"
	"git.home.luguber.info/inful/postindex/internal/logfields"
	"git.home.luguber.info/inful/postindex/internal/metrics"
)

// Generator reads a source directory and writes the post index.
type Generator struct {
	sourceDir      string
	outputPath     string
	prefix         string
	extensions     []string
	parser         frontmatter.Parser
	skipUnreadable bool

	clock    clockwork.Clock
	recorder metrics.Recorder
	logger   *slog.Logger
	readFile func(string) ([]byte, error)
	stat     func(string) (fs.FileInfo, error)
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the clock used for the fallback date and durations.
func WithClock(c clockwork.Clock) Option { return func(g *Generator) { g.clock = c } }

// WithRecorder sets the metrics recorder.
func WithRecorder(r metrics.Recorder) Option { return func(g *Generator) { g.recorder = r } }

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option { return func(g *Generator) { g.logger = l } }

// WithParser replaces the lenient frontmatter parser.
func WithParser(p frontmatter.Parser) Option { return func(g *Generator) { g.parser = p } }

// WithPermalinkPrefix sets the prefix prepended to slugs.
func WithPermalinkPrefix(prefix string) Option { return func(g *Generator) { g.prefix = prefix } }

// WithExtensions sets the indexed file extensions. An empty list keeps the defaults.
func WithExtensions(exts ...string) Option {
	return func(g *Generator) {
		if len(exts) > 0 {
			g.extensions = append([]string{}, exts...)
		}
	}
}

// WithSkipUnreadable makes per-file read errors warnings instead of fatal errors.
func WithSkipUnreadable(skip bool) Option { return func(g *Generator) { g.skipUnreadable = skip } }

func withReadFile(fn func(string) ([]byte, error)) Option {
	return func(g *Generator) { g.readFile = fn }
}

func withStat(fn func(string) (fs.FileInfo, error)) Option {
	return func(g *Generator) { g.stat = fn }
}

// NewGenerator creates a Generator for sourceDir and outputPath.
func NewGenerator(sourceDir, outputPath string, opts ...Option) *Generator {
	g := &Generator{
		sourceDir:  sourceDir,
		outputPath: outputPath,
		prefix:     DefaultPermalinkPrefix,
		extensions: DefaultExtensions,
		parser:     frontmatter.LenientParser{},
		clock:      clockwork.NewRealClock(),
		recorder:   metrics.NoopRecorder{},
		readFile:   os.ReadFile,
		stat:       os.Stat,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// FromConfig creates a Generator from a loaded configuration. Extra options
// are applied after the configured ones.
func FromConfig(cfg *config.Config, opts ...Option) (*Generator, error) {
	logger := slog.Default()
	mode := string(cfg.Frontmatter.Mode)
	parser, err := frontmatter.ParserFor(mode, func(err error) {
		logger.Warn("Front matter is not valid YAML, parsing it line by line", logfields.Mode(mode), logfields.Error(err))
	})
	if err != nil {
		return nil, ierrors.ValidationFailed("frontmatter.mode", err.Error())
	}
	logger.Debug("Configured generator",
		logfields.Mode(mode),
		logfields.Path(cfg.Source.Directory),
		slog.String("output", cfg.Output.Path),
		slog.String("read_errors", string(cfg.Policy.ReadErrors)))

	base := []Option{
		WithParser(parser),
		WithPermalinkPrefix(cfg.Permalink.Prefix),
		WithExtensions(cfg.Source.Extensions...),
		WithSkipUnreadable(cfg.Policy.ReadErrors == config.ReadErrorsSkip),
	}
	return NewGenerator(cfg.Source.Directory, cfg.Output.Path, append(base, opts...)...), nil
}

// SourceDir returns the directory the generator reads.
func (g *Generator) SourceDir() string { return g.sourceDir }

// OutputPath returns the artifact path.
func (g *Generator) OutputPath() string { return g.outputPath }

// Extensions returns the indexed file extensions.
func (g *Generator) Extensions() []string { return append([]string{}, g.extensions...) }

// Clock returns the generator's clock.
func (g *Generator) Clock() clockwork.Clock { return g.clock }

// Recorder returns the generator's metrics recorder.
func (g *Generator) Recorder() metrics.Recorder { return g.recorder }

// Snapshot is the input of one run: every readable document plus the files
// that were skipped under the skip policy.
type Snapshot struct {
	RunID       string
	Documents   []Document
	Skipped     []string
	Fingerprint string

	started time.Time
}

// Result describes a completed run.
type Result struct {
	RunID       string
	Count       int
	OutputPath  string
	Entries     []Entry
	Skipped     []string
	Untitled    int
	Fingerprint string
	Duration    time.Duration
}

// Generate runs one full pass: collect, build, write.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	snap, err := g.Collect(ctx)
	if err != nil {
		g.recorder.IncGenerateOutcome(metrics.OutcomeFailed)
		return nil, err
	}
	return g.Write(ctx, snap)
}

// Collect lists the source directory and reads every indexed document.
// Nothing is written.
func (g *Generator) Collect(ctx context.Context) (*Snapshot, error) {
	snap := &Snapshot{RunID: uuid.NewString(), started: g.clock.Now()}
	log := g.logger.With(logfields.RunID(snap.RunID))

	info, err := g.stat(g.sourceDir)
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return nil, ierrors.SourceDirNotFound(g.sourceDir)
	case err != nil:
		return nil, ierrors.ListFailed(g.sourceDir, err)
	case !info.IsDir():
		return nil, ierrors.SourceDirNotFound(g.sourceDir)
	}

	dirents, err := os.ReadDir(g.sourceDir)
	if err != nil {
		return nil, ierrors.ListFailed(g.sourceDir, err)
	}

	for _, de := range dirents {
		if err := ctx.Err(); err != nil {
			return nil, ierrors.Wrap(err, ierrors.CategoryRuntime, ierrors.SeverityFatal, "generation canceled")
		}
		name := de.Name()
		if _, ok := MatchExtension(name, g.extensions); !ok {
			continue
		}
		full := filepath.Join(g.sourceDir, name)
		if isDir(de, full) {
			continue
		}

		content, err := g.readFile(full)
		if err != nil {
			if !g.skipUnreadable {
				return nil, ierrors.ReadFailed(full, err)
			}
			log.Warn("Skipping unreadable document", logfields.File(name), logfields.Error(err))
			snap.Skipped = append(snap.Skipped, name)
			continue
		}
		snap.Documents = append(snap.Documents, Document{Name: name, Content: content})
	}

	snap.Fingerprint = Fingerprint(snap.Documents)
	log.Debug("Collected documents",
		logfields.Stage("collect"),
		logfields.Path(g.sourceDir),
		logfields.Count(len(snap.Documents)),
		logfields.Skipped(len(snap.Skipped)))
	return snap, nil
}

func isDir(de fs.DirEntry, full string) bool {
	if de.IsDir() {
		return true
	}
	if de.Type()&fs.ModeSymlink != 0 {
		if info, err := os.Stat(full); err == nil {
			return info.IsDir()
		}
	}
	return false
}

// Write builds entries from snap and atomically replaces the artifact.
func (g *Generator) Write(ctx context.Context, snap *Snapshot) (*Result, error) {
	if snap.started.IsZero() {
		snap.started = g.clock.Now()
	}
	log := g.logger.With(logfields.RunID(snap.RunID))

	entries := ParseDocuments(snap.Documents, Options{
		Today:           FormatDate(g.clock.Now()),
		PermalinkPrefix: g.prefix,
		Extensions:      g.extensions,
		Parser:          g.parser,
	})
	untitled := len(snap.Documents) - len(entries)
	if untitled > 0 {
		log.Debug("Documents without a title were left out", logfields.Count(untitled))
	}

	if err := ctx.Err(); err != nil {
		g.recorder.IncGenerateOutcome(metrics.OutcomeFailed)
		return nil, ierrors.Wrap(err, ierrors.CategoryRuntime, ierrors.SeverityFatal, "generation canceled")
	}

	data, err := Encode(entries)
	if err != nil {
		g.recorder.IncGenerateOutcome(metrics.OutcomeFailed)
		return nil, ierrors.InternalError("failed to encode index", err)
	}
	if err := writeAtomic(g.outputPath, data); err != nil {
		g.recorder.IncGenerateOutcome(metrics.OutcomeFailed)
		log.Error("Index write failed", logfields.Path(g.outputPath), logfields.Error(err))
		return nil, ierrors.WriteFailed(g.outputPath, err)
	}

	res := &Result{
		RunID:       snap.RunID,
		Count:       len(entries),
		OutputPath:  g.outputPath,
		Entries:     entries,
		Skipped:     snap.Skipped,
		Untitled:    untitled,
		Fingerprint: snap.Fingerprint,
		Duration:    g.clock.Since(snap.started),
	}

	g.recorder.ObserveGenerateDuration(res.Duration)
	g.recorder.IncGenerateOutcome(metrics.OutcomeSuccess)
	g.recorder.IncDocumentResult(metrics.DocumentIndexed, res.Count)
	g.recorder.IncDocumentResult(metrics.DocumentUntitled, res.Untitled)
	g.recorder.IncDocumentResult(metrics.DocumentUnreadable, len(res.Skipped))
	g.recorder.SetIndexedPosts(res.Count)

	log.Info("Index generated",
		logfields.Path(g.outputPath),
		logfields.Count(res.Count),
		logfields.Skipped(len(res.Skipped)),
		logfields.DurationMS(float64(res.Duration)/float64(time.Millisecond)))
	return res, nil
}

// writeAtomic writes data to a uniquely named temp file next to path and
// renames it into place, so concurrent writers never share a temp file.
func writeAtomic(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(0o644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// GenerateIndex indexes sourceDir into outputPath with default settings and
// returns the number of posts written.
func GenerateIndex(ctx context.Context, sourceDir, outputPath string) (int, error) {
	res, err := NewGenerator(sourceDir, outputPath).Generate(ctx)
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}
