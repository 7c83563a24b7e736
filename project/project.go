// Package project wraps pagination results into editor projects: title,
// optional cover page, assets. It also re-paginates existing projects.
package project

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"folio/common"
	"folio/layout"
)

// Asset is an image referenced by project pages.
type Asset struct {
	ID  string `json:"id" yaml:"id"`
	Ref string `json:"ref" yaml:"ref"`
}

// Project is a paginated document.
type Project struct {
	ID         string        `json:"id" yaml:"id"`
	Name       string        `json:"name" yaml:"name"`
	Slug       string        `json:"slug" yaml:"slug"`
	Source     string        `json:"source,omitempty" yaml:"source,omitempty"`
	PageWidth  float64       `json:"pageWidth" yaml:"page_width"`
	PageHeight float64       `json:"pageHeight" yaml:"page_height"`
	Pages      []layout.Page `json:"pages" yaml:"pages"`
	Assets     []Asset       `json:"assets,omitempty" yaml:"assets,omitempty"`
}

// Options control project assembly.
type Options struct {
	// TitleFromFirstLine takes project name from the first line of text when
	// it is shorter than TitleMaxLength runes, that line is not paginated then.
	TitleFromFirstLine bool
	TitleMaxLength     int
	Cover              bool
	Subtitle           string
	IDScheme           common.IDScheme
}

// EngineFactory returns layout engine configured by the program,
// additional options are applied last.
type EngineFactory func(opts ...layout.Option) (*layout.Engine, error)

// Source is text with optional images to be paginated.
type Source struct {
	Name   string
	Text   string
	Images []string
}

// Builder assembles projects.
type Builder struct {
	newEngine EngineFactory
	opts      Options
	log       *zap.Logger
}

func NewBuilder(newEngine EngineFactory, opts Options, log *zap.Logger) *Builder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Builder{newEngine: newEngine, opts: opts, log: log}
}

// FromText builds new project paginating source text and images.
func (b *Builder) FromText(ctx context.Context, src Source) (*Project, error) {
	title, text := b.title(src)

	ids := layout.NewIDGenerator(b.opts.IDScheme)
	first := 1
	if b.opts.Cover {
		first = 2
	}
	eng, err := b.newEngine(layout.WithIDGenerator(ids), layout.WithFirstPage(first))
	if err != nil {
		return nil, fmt.Errorf("unable to prepare layout engine: %w", err)
	}

	var pages []layout.Page
	if b.opts.Cover {
		// cover ids must go first
		pages = append(pages, eng.CoverPage(ids, 1, title, b.opts.Subtitle))
	}
	content, err := eng.Paginate(ctx, text, src.Images)
	if err != nil {
		return nil, err
	}
	pages = append(pages, content...)

	p := newProject(title, src.Name, eng.Config(), pages)
	b.log.Debug("Project assembled", zap.String("name", p.Name), zap.Int("pages", len(p.Pages)), zap.Int("assets", len(p.Assets)))
	return p, nil
}

func newProject(title, source string, cfg layout.Config, pages []layout.Page) *Project {
	p := &Project{
		ID:         newProjectID(),
		Name:       title,
		Slug:       makeSlug(title, source),
		Source:     source,
		PageWidth:  cfg.PageWidth,
		PageHeight: cfg.PageHeight,
		Pages:      pages,
	}
	p.Assets = collectAssets(pages)
	return p
}

func newProjectID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}

func makeSlug(title, source string) string {
	for _, s := range []string{title, strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))} {
		if s := slug.Make(s); len(s) > 0 {
			return s
		}
	}
	return "project"
}

// title decides project name and returns text left for pagination.
func (b *Builder) title(src Source) (string, string) {
	fallback := strings.TrimSuffix(filepath.Base(src.Name), filepath.Ext(src.Name))
	if !b.opts.TitleFromFirstLine {
		return fallback, src.Text
	}

	text := strings.TrimLeft(src.Text, "\n")
	line, rest, _ := strings.Cut(text, "\n")
	line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
	if len(line) == 0 || utf8.RuneCountInString(line) >= b.opts.TitleMaxLength {
		return fallback, src.Text
	}
	return line, rest
}

// collectAssets lists distinct image references in order of appearance.
func collectAssets(pages []layout.Page) []Asset {
	var assets []Asset
	seen := make(map[string]bool)
	for _, p := range pages {
		for _, el := range p.Elements {
			if el.Type != layout.ElementImage || seen[el.Content] {
				continue
			}
			seen[el.Content] = true
			assets = append(assets, Asset{ID: fmt.Sprintf("asset-%d", len(assets)+1), Ref: el.Content})
		}
	}
	return assets
}
