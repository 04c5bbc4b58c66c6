package rename

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/handiism/tagrename/internal/config"
	"github.com/handiism/tagrename/internal/format"
	"github.com/handiism/tagrename/internal/ioutils"
	"github.com/handiism/tagrename/internal/metadata"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a planning or apply progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Plan is one input file together with its computed destination.
type Plan struct {
	// Path is the original file path as supplied.
	Path string

	// NewPath is the destination: the rendered template plus the
	// original extension, in the original directory.
	NewPath string
}

// Planner coordinates renames: template compilation, per-file metadata
// reads, name rendering, and the eventual on-disk renames.
type Planner struct {
	settings *config.Settings
	source   metadata.Source

	totalFiles   int32
	scannedFiles int32
	appliedFiles int32

	onProgress func(ProgressEvent)
}

// NewPlanner creates a Planner. A nil source defaults to the ID3
// reader; a nil onProgress discards progress events.
func NewPlanner(settings *config.Settings, source metadata.Source, onProgress func(ProgressEvent)) *Planner {
	if source == nil {
		source = metadata.NewID3Source()
	}
	if onProgress == nil {
		onProgress = func(ProgressEvent) {}
	}
	return &Planner{
		settings:   settings,
		source:     source,
		onProgress: onProgress,
	}
}

// PlanAll computes a rename plan for every path.
//
// The template is compiled once; a bad template fails before any file
// is touched. Metadata reads run concurrently, bounded by
// MaxConcurrentReads, and the returned plans keep the input order.
// The first error cancels the remaining reads and fails the whole
// batch; no partial plan list is returned.
func (p *Planner) PlanAll(ctx context.Context, template string, paths []string) ([]Plan, error) {
	f, err := format.Compile(template)
	if err != nil {
		return nil, err
	}

	atomic.StoreInt32(&p.totalFiles, int32(len(paths)))
	atomic.StoreInt32(&p.scannedFiles, 0)

	plans := make([]Plan, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	limit := p.settings.MaxConcurrentReads
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			plan, err := p.planOne(f, path)
			if err != nil {
				p.progress(ProgressEvent{Message: err.Error(), Level: LevelError})
				return err
			}

			plans[i] = plan
			atomic.AddInt32(&p.scannedFiles, 1)
			p.progress(ProgressEvent{
				Message: fmt.Sprintf("%s -> %s", plan.Path, plan.NewPath),
				Level:   LevelVerbose,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

// planOne reads one file's metadata and renders its new path. The
// rendered name is sanitized if configured, the original extension is
// re-appended, and the directory part of the input path is preserved.
func (p *Planner) planOne(f *format.Format, path string) (Plan, error) {
	rec, err := p.source.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}

	name, err := f.Render(rec)
	if err != nil {
		return Plan{}, err
	}

	if p.settings.SanitizeFileNames {
		name = ioutils.SanitizeFileName(name)
	}
	if ext := filepath.Ext(path); ext != "" {
		name += ext
	}

	return Plan{
		Path:    path,
		NewPath: filepath.Join(filepath.Dir(path), name),
	}, nil
}

// Apply performs the renames, sequentially and in plan order.
//
// No-op plans (destination equals source) are skipped. When a
// destination already exists the OnExisting policy decides between
// skipping that file and failing the batch; Apply never overwrites.
func (p *Planner) Apply(ctx context.Context, plans []Plan) error {
	atomic.StoreInt32(&p.appliedFiles, 0)

	for _, plan := range plans {
		if err := ctx.Err(); err != nil {
			return err
		}

		if plan.NewPath == plan.Path {
			p.progress(ProgressEvent{
				Message: fmt.Sprintf("%s already has the target name", plan.Path),
				Level:   LevelVerbose,
			})
			atomic.AddInt32(&p.appliedFiles, 1)
			continue
		}

		if ioutils.FileExists(plan.NewPath) {
			if p.settings.OnExisting == config.OnExistingSkip {
				p.progress(ProgressEvent{
					Message: fmt.Sprintf("skipping %s: destination exists", plan.Path),
					Level:   LevelWarning,
				})
				continue
			}
			return fmt.Errorf("destination already exists: %s", plan.NewPath)
		}

		if err := os.Rename(plan.Path, plan.NewPath); err != nil {
			return err
		}

		atomic.AddInt32(&p.appliedFiles, 1)
		p.progress(ProgressEvent{
			Message: fmt.Sprintf("renamed %s -> %s", plan.Path, plan.NewPath),
			Level:   LevelSuccess,
		})
	}

	return nil
}

// GetProgress returns current counters: files scanned during planning,
// files renamed during apply, and the batch total.
func (p *Planner) GetProgress() (scanned, applied, total int32) {
	return atomic.LoadInt32(&p.scannedFiles),
		atomic.LoadInt32(&p.appliedFiles),
		atomic.LoadInt32(&p.totalFiles)
}

func (p *Planner) progress(event ProgressEvent) {
	p.onProgress(event)
}
