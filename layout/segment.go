package layout

import (
	"fmt"
	"regexp"
	"strings"

	"folio/common"
)

var (
	blankLines  = regexp.MustCompile(`\n\s*\n`)
	inlineImage = regexp.MustCompile(`^!\[([^\]\n]*)\]\(([^)\s]+)\)$`)
)

// SegmentOptions controls classification of text chunks.
type SegmentOptions struct {
	Placement common.ImagePlacement
}

// Segment splits text into ordered sequence of content units. Text is
// expected to have "\n" line endings. Chunks are separated by blank lines
// when text has any, otherwise every line is a chunk of its own. Images are
// appended after all text units.
func Segment(text string, images []string, opts SegmentOptions) []Unit {
	var chunks []string
	if blankLines.MatchString(text) {
		chunks = blankLines.Split(text, -1)
	} else {
		chunks = strings.Split(text, "\n")
	}

	units := make([]Unit, 0, len(chunks)+len(images))
	for _, chunk := range chunks {
		if u, ok := classify(strings.TrimSpace(chunk), opts); ok {
			units = append(units, u)
		}
	}
	for _, ref := range images {
		if len(ref) == 0 {
			continue
		}
		units = append(units, Image(ref))
	}
	return units
}

func classify(chunk string, opts SegmentOptions) (Unit, bool) {
	if len(chunk) == 0 {
		return Unit{}, false
	}

	if strings.HasPrefix(chunk, "#") {
		level := len(chunk) - len(strings.TrimLeft(chunk, "#"))
		text := strings.TrimSpace(chunk[level:])
		if len(text) == 0 {
			return Unit{}, false
		}
		return Heading(level, text), true
	}

	if opts.Placement == common.ImagePlacementInline {
		if m := inlineImage.FindStringSubmatch(chunk); m != nil {
			return Unit{Kind: KindImage, Alt: m[1], Ref: m[2]}, true
		}
	}
	return Paragraph(chunk), true
}

// Reassemble renders units back into text Segment understands. Every unit is
// terminated by blank line, so result is always segmented on blank lines.
// Image units are rendered as markdown images and come back as images only
// with inline placement.
func Reassemble(units []Unit) string {
	var b strings.Builder
	for _, u := range units {
		switch u.Kind {
		case KindHeading:
			b.WriteString(strings.Repeat("#", u.Level))
			b.WriteByte(' ')
			b.WriteString(u.Text)
		case KindImage:
			fmt.Fprintf(&b, "![%s](%s)", u.Alt, u.Ref)
		default:
			b.WriteString(u.Text)
		}
		b.WriteString("\n\n")
	}
	return b.String()
}
