package layout

import (
	"context"
	"math"
	"strings"

	"go.uber.org/zap"
)

// queue of units waiting for placement, units which were not fully placed
// are put back in front.
type queue struct {
	items []Unit
	head  int
}

func (q *queue) reset(units []Unit) {
	q.items = make([]Unit, 0, len(units))
	for _, u := range units {
		if u, ok := normalize(u); ok {
			q.items = append(q.items, u)
		}
	}
	q.head = 0
}

// normalize brings units built by callers to the form segmenter produces:
// trimmed text, heading level within 1..MaxHeadingLevel. Units left empty
// are dropped.
func normalize(u Unit) (Unit, bool) {
	switch u.Kind {
	case KindImage:
		u.Ref = strings.TrimSpace(u.Ref)
		return u, len(u.Ref) > 0
	case KindHeading:
		u.Level = min(max(u.Level, 1), MaxHeadingLevel)
	}
	u.Text = strings.TrimSpace(u.Text)
	return u, len(u.Text) > 0
}

func (q *queue) len() int {
	return len(q.items) - q.head
}

func (q *queue) popFront() Unit {
	u := q.items[q.head]
	q.items[q.head] = Unit{}
	q.head++
	return u
}

func (q *queue) pushFront(u Unit) {
	if q.head > 0 {
		q.head--
		q.items[q.head] = u
		return
	}
	q.items = append([]Unit{u}, q.items[q.head:]...)
	q.head = 0
}

// cursor is allocator working state for the page being filled.
type cursor struct {
	elements []Element
	y        float64
	page     int
}

type allocator struct {
	cfg      *Config
	factory  *factory
	boundary boundaryFinder
	log      *zap.Logger

	queue     queue
	cur       cursor
	pages     []Page
	processed int

	// page was emitted since last checkpoint
	flushed bool
}

func newAllocator(cfg *Config, f *factory, b boundaryFinder, firstPage int, log *zap.Logger) *allocator {
	return &allocator{
		cfg:      cfg,
		factory:  f,
		boundary: b,
		log:      log,
		cur:      cursor{y: cfg.MarginTop, page: firstPage},
	}
}

func (a *allocator) run(ctx context.Context, checkpoint Checkpoint) ([]Page, error) {
	for a.queue.len() > 0 {
		u := a.queue.popFront()
		switch u.Kind {
		case KindHeading:
			a.placeHeading(u)
		case KindImage:
			a.placeImage(u)
		default:
			a.placeParagraph(u)
		}
		a.processed++

		every := a.cfg.CheckpointEvery
		if a.flushed || (every > 0 && a.processed%every == 0) {
			if err := a.checkpoint(ctx, checkpoint); err != nil {
				return nil, err
			}
		}
	}
	a.flush()
	if a.flushed {
		if err := a.checkpoint(ctx, checkpoint); err != nil {
			return nil, err
		}
	}
	return a.pages, nil
}

func (a *allocator) checkpoint(ctx context.Context, fn Checkpoint) error {
	a.flushed = false
	if err := ctx.Err(); err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	return fn(ctx, Progress{Units: a.processed, Pages: len(a.pages), Remaining: a.queue.len()})
}

func (a *allocator) empty() bool {
	return len(a.cur.elements) == 0
}

func (a *allocator) remaining() float64 {
	return a.cfg.PageBottom() - a.cur.y
}

func (a *allocator) fits(height float64) bool {
	return a.cur.y+height <= a.cfg.PageBottom()
}

// flush finalizes current page and resets cursor. Nothing is emitted for
// empty accumulator.
func (a *allocator) flush() {
	if a.empty() {
		a.cur.y = a.cfg.MarginTop
		return
	}
	a.pages = append(a.pages, a.factory.page(a.cur.page, a.cur.elements))
	a.log.Debug("Page flushed", zap.Int("page", a.cur.page), zap.Int("elements", len(a.cur.elements)), zap.Float64("bottom", a.cur.y))

	a.cur = cursor{y: a.cfg.MarginTop, page: a.cur.page + 1}
	a.flushed = true
}

func (a *allocator) placeHeading(u Unit) {
	height := Estimate(u, a.cfg)

	switch {
	case u.Level == 1 && a.cur.y > a.cfg.MarginTop:
		// top level headings always start new page
		a.flush()
	case u.Level == 2 && a.remaining() < a.cfg.Level2Threshold:
		// keep second level heading together with following content
		a.flush()
	case !a.fits(height):
		a.flush()
	}

	a.cur.elements = append(a.cur.elements, a.factory.heading(u, a.cur.y, height))
	a.cur.y += height + a.cfg.HeadingGap
}

func (a *allocator) placeImage(u Unit) {
	if !a.fits(a.cfg.ImageHeight) {
		a.flush()
	}
	a.cur.elements = append(a.cur.elements, a.factory.image(u, a.cur.y))
	a.cur.y += a.cfg.ImageHeight + a.cfg.ImageGap
}

func (a *allocator) placeParagraph(u Unit) {
	height := Estimate(u, a.cfg)
	if a.fits(height) {
		a.cur.elements = append(a.cur.elements, a.factory.paragraph(u, a.cur.y, height))
		a.cur.y += height + a.cfg.ParagraphGap
		return
	}

	lineHeight := a.cfg.LineHeight()
	remaining := a.remaining()
	linesFit := int(math.Floor((remaining - a.cfg.ParagraphPadding) / lineHeight))

	if remaining < a.cfg.MinSplitHeight || linesFit <= 0 {
		if !a.empty() {
			// retry on fresh page
			a.flush()
			a.queue.pushFront(u)
			return
		}
		// Even empty page cannot take a single line, place one anyway or
		// we would never finish.
		linesFit = max(linesFit, 1)
	}

	first, rest := splitText(u.Text, linesFit*a.cfg.CharsPerLine, a.boundary)
	if len(rest) == 0 {
		if !a.empty() {
			a.flush()
			a.queue.pushFront(u)
			return
		}
		// forced placement of the whole unit on empty page
		a.cur.elements = append(a.cur.elements, a.factory.paragraph(u, a.cur.y, height))
		a.cur.y += height + a.cfg.ParagraphGap
		a.flush()
		return
	}

	a.log.Debug("Paragraph split",
		zap.Int("page", a.cur.page), zap.Int("lines", linesFit), zap.Int("first", len(first)), zap.Int("rest", len(rest)))

	part := u
	part.Text = first
	a.cur.elements = append(a.cur.elements, a.factory.paragraph(part, a.cur.y, a.cfg.linesHeight(linesFit)))
	a.flush()

	a.queue.pushFront(Unit{Kind: KindParagraph, Text: rest, Continued: true})
}
