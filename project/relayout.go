package project

import (
	"cmp"
	"context"
	"fmt"
	"html"
	"slices"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	lexer "github.com/tdewolff/parse/v2/html"
	"go.uber.org/zap"

	"folio/layout"
)

var headingTags = map[string]int{"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6}

var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "ul": true, "ol": true,
	"blockquote": true, "section": true, "article": true, "pre": true,
}

// unitsFromMarkup strips element markup to plain text. Every block produces
// separate unit, heading tags become headings.
func unitsFromMarkup(markup string) []layout.Unit {
	var (
		units []layout.Unit
		text  strings.Builder
		level int
	)
	flush := func() {
		s := strings.Join(strings.Fields(html.UnescapeString(text.String())), " ")
		text.Reset()
		if len(s) > 0 {
			if level > 0 {
				units = append(units, layout.Heading(level, s))
			} else {
				units = append(units, layout.Paragraph(s))
			}
		}
		level = 0
	}

	l := lexer.NewLexer(parse.NewInputString(markup))
	for {
		tt, data := l.Next()
		switch tt {
		case lexer.ErrorToken:
			// io.EOF or malformed tail, either way take what we have
			flush()
			return units
		case lexer.TextToken:
			text.Write(data)
		case lexer.StartTagToken:
			name := strings.ToLower(string(l.Text()))
			if lvl, ok := headingTags[name]; ok {
				flush()
				level = lvl
			} else if blockTags[name] {
				flush()
			} else if name == "br" {
				text.WriteByte(' ')
			}
		case lexer.EndTagToken:
			name := strings.ToLower(string(l.Text()))
			if _, ok := headingTags[name]; ok || blockTags[name] {
				flush()
			}
		}
	}
}

// isCover reports pages made entirely of locked elements.
func isCover(p *layout.Page) bool {
	if len(p.Elements) == 0 {
		return false
	}
	for _, el := range p.Elements {
		if !el.Locked {
			return false
		}
	}
	return true
}

// Units turns pages back into content stream. Elements of every page are
// taken in reading order (by y, then x), continued paragraph parts are merged
// with their beginning.
func Units(pages []layout.Page) []layout.Unit {
	var units []layout.Unit
	for _, p := range pages {
		elements := slices.Clone(p.Elements)
		slices.SortStableFunc(elements, func(a, b layout.Element) int {
			return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
		})

		for _, el := range elements {
			if el.Type == layout.ElementImage {
				if len(el.Content) > 0 {
					u := layout.Image(el.Content)
					u.Alt = el.AltText
					units = append(units, u)
				}
				continue
			}

			parts := unitsFromMarkup(el.Content)
			if len(parts) == 0 && len(strings.TrimSpace(el.Text)) > 0 {
				parts = []layout.Unit{layout.Paragraph(strings.TrimSpace(el.Text))}
			}
			if len(parts) == 0 {
				continue
			}
			if n := len(units); el.Continued && n > 0 && units[n-1].Kind == layout.KindParagraph && parts[0].Kind == layout.KindParagraph {
				units[n-1].Text += " " + parts[0].Text
				parts = parts[1:]
			}
			units = append(units, parts...)
		}
	}
	return units
}

// Relayout re-paginates project content with current configuration. Leading
// cover pages (those holding only locked elements) are kept as is.
func (b *Builder) Relayout(ctx context.Context, src *Project) (*Project, error) {
	covers := 0
	for covers < len(src.Pages) && isCover(&src.Pages[covers]) {
		covers++
	}

	eng, err := b.newEngine(layout.WithIDGenerator(layout.NewIDGenerator(b.opts.IDScheme)), layout.WithFirstPage(covers+1))
	if err != nil {
		return nil, fmt.Errorf("unable to prepare layout engine: %w", err)
	}

	units := Units(src.Pages[covers:])
	content, err := eng.Layout(ctx, units)
	if err != nil {
		return nil, err
	}

	pages := append(slices.Clone(src.Pages[:covers]), content...)
	cfg := eng.Config()

	p := *src
	if len(p.ID) == 0 {
		p.ID = newProjectID()
	}
	if len(p.Slug) == 0 {
		p.Slug = makeSlug(p.Name, p.Source)
	}
	p.PageWidth, p.PageHeight = cfg.PageWidth, cfg.PageHeight
	p.Pages = pages
	p.Assets = collectAssets(pages)

	b.log.Debug("Project re-paginated",
		zap.String("name", p.Name),
		zap.Int("units", len(units)),
		zap.Int("pages before", len(src.Pages)),
		zap.Int("pages after", len(p.Pages)))
	return &p, nil
}
