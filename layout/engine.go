// Package layout distributes flat stream of headings, paragraphs and images
// into sequence of fixed size pages with positioned elements.
package layout

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"folio/common"
)

// Progress is reported to checkpoint callback.
type Progress struct {
	Units     int // units processed so far, retries included
	Pages     int // pages emitted so far
	Remaining int // units waiting in the queue
}

// Checkpoint is invoked periodically during pagination giving host a chance
// to yield, report progress or stop processing by returning error. It never
// affects produced pages.
type Checkpoint func(ctx context.Context, p Progress) error

type Option func(*Engine)

func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

func WithCheckpoint(fn Checkpoint) Option {
	return func(e *Engine) {
		e.checkpoint = fn
	}
}

// WithIDScheme selects id generator created for every run.
func WithIDScheme(scheme common.IDScheme) Option {
	return func(e *Engine) {
		e.scheme = scheme
	}
}

// WithIDGenerator makes all runs share single generator, caller is
// responsible for serializing runs if generator is not safe for concurrent
// use.
func WithIDGenerator(ids IDGenerator) Option {
	return func(e *Engine) {
		e.ids = ids
	}
}

// WithFirstPage sets number of the first emitted page.
func WithFirstPage(n int) Option {
	return func(e *Engine) {
		e.firstPage = max(n, 1)
	}
}

func WithPlacement(p common.ImagePlacement) Option {
	return func(e *Engine) {
		e.placement = p
	}
}

// Engine keeps validated configuration, engine itself holds no per run state
// and could be reused.
type Engine struct {
	cfg        Config
	log        *zap.Logger
	checkpoint Checkpoint
	scheme     common.IDScheme
	ids        IDGenerator
	firstPage  int
	placement  common.ImagePlacement
	boundary   boundaryFinder
}

// New validates configuration and prepares engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// do not share slices with caller
	cfg.HeadingHeights = append([]float64(nil), cfg.HeadingHeights...)
	cfg.Style.HeadingFontSizes = append([]float64(nil), cfg.Style.HeadingFontSizes...)

	e := &Engine{
		cfg:       cfg,
		log:       zap.NewNop(),
		firstPage: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.boundary = newBoundaryFinder(&e.cfg, e.log)
	return e, nil
}

// Config returns copy of engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// CoverPage builds page with a single locked element holding title and
// optional subtitle. Pass the same generator to the following Layout run
// (WithIDGenerator) to keep element ids unique.
func (e *Engine) CoverPage(ids IDGenerator, number int, title, subtitle string) Page {
	f := &factory{cfg: &e.cfg, ids: ids}
	return f.page(max(number, 1), []Element{f.cover(title, subtitle)})
}

// Segment splits text into units according to engine image placement.
func (e *Engine) Segment(text string, images []string) []Unit {
	return Segment(text, images, SegmentOptions{Placement: e.placement})
}

// Paginate segments text and lays resulting units out into pages.
func (e *Engine) Paginate(ctx context.Context, text string, images []string) ([]Page, error) {
	return e.Layout(ctx, e.Segment(text, images))
}

// Layout places units into pages. The only errors returned are those coming
// from context or checkpoint callback.
func (e *Engine) Layout(ctx context.Context, units []Unit) ([]Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids := e.ids
	if ids == nil {
		ids = NewIDGenerator(e.scheme)
	}

	a := newAllocator(&e.cfg, &factory{cfg: &e.cfg, ids: ids}, e.boundary, e.firstPage, e.log)
	a.queue.reset(units)

	pages, err := a.run(ctx, e.checkpoint)
	if err != nil {
		return nil, fmt.Errorf("pagination interrupted after %d units: %w", a.processed, err)
	}
	e.log.Debug("Pagination completed", zap.Int("units", len(units)), zap.Int("processed", a.processed), zap.Int("pages", len(pages)))
	return pages, nil
}
