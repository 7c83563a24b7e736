package source

import (
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"rsc.io/pdf"
)

const (
	// glyphs closer than this part of font size belong to the same line
	lineTolerance = 0.3
	// horizontal gap (part of font size) treated as word break
	wordGap = 0.2
	// vertical distance between baselines (in font sizes) starting new
	// paragraph
	paragraphGap = 1.5
)

type textLine struct {
	y, size float64
	runs    []pdf.Text
}

func (l *textLine) String() string {
	slices.SortStableFunc(l.runs, func(a, b pdf.Text) int {
		return cmp.Compare(a.X, b.X)
	})

	var b strings.Builder
	end := math.Inf(-1)
	for _, t := range l.runs {
		if t.X-end > l.size*wordGap && b.Len() > 0 && !strings.HasSuffix(b.String(), " ") {
			b.WriteByte(' ')
		}
		b.WriteString(t.S)
		end = t.X + t.W
	}
	return strings.TrimSpace(b.String())
}

// groupLines assembles glyphs into lines top to bottom.
func groupLines(texts []pdf.Text) []*textLine {
	sorted := slices.Clone(texts)
	slices.SortStableFunc(sorted, func(a, b pdf.Text) int {
		return cmp.Compare(b.Y, a.Y)
	})

	var lines []*textLine
	for _, t := range sorted {
		if n := len(lines); n > 0 {
			last := lines[n-1]
			if math.Abs(last.y-t.Y) <= max(last.size, t.FontSize)*lineTolerance {
				last.runs = append(last.runs, t)
				last.size = max(last.size, t.FontSize)
				continue
			}
		}
		lines = append(lines, &textLine{y: t.Y, size: max(t.FontSize, 1), runs: []pdf.Text{t}})
	}
	return lines
}

func writePage(b *strings.Builder, lines []*textLine) {
	var prev *textLine
	for _, l := range lines {
		s := l.String()
		if len(s) == 0 {
			continue
		}
		switch {
		case prev == nil:
		case prev.y-l.y > l.size*paragraphGap:
			b.WriteString("\n\n")
		default:
			b.WriteByte(' ')
		}
		b.WriteString(s)
		prev = l
	}
	if prev != nil {
		b.WriteString("\n\n")
	}
}

// ReadPDF extracts text of all pages. Glyphs are assembled into lines by
// baseline, lines are joined into paragraphs separated by blank lines when
// vertical gap between them is big enough. Every page ends a paragraph.
func ReadPDF(r io.ReaderAt, size int64) (text string, err error) {
	defer func() {
		// rsc.io/pdf panics on malformed content
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("unable to parse pdf: %v", r)
		}
	}()

	doc, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("unable to open pdf: %w", err)
	}

	var b strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		p := doc.Page(i)
		if p.V.IsNull() {
			continue
		}
		writePage(&b, groupLines(p.Content().Text))
	}
	return strings.TrimSpace(normalize(b.String())), nil
}
