package layout

import "unicode/utf8"

// Estimate returns vertical space unit will occupy on the page without
// rendering it.
//
// Headings have fixed per level height, long headings are assumed to wrap
// inside their box. Paragraph height is derived from character count using
// configured characters per line, glyph widths are never measured. Images
// always take fixed height plus gap regardless of their intrinsic size.
func Estimate(u Unit, cfg *Config) float64 {
	switch u.Kind {
	case KindHeading:
		return cfg.headingHeight(u.Level)
	case KindImage:
		return cfg.ImageHeight + cfg.ImageGap
	default:
		return cfg.linesHeight(cfg.estimateLines(utf8.RuneCountInString(u.Text)))
	}
}

func (c *Config) estimateLines(chars int) int {
	return (chars + c.CharsPerLine - 1) / c.CharsPerLine
}

func (c *Config) linesHeight(lines int) float64 {
	return float64(lines)*c.LineHeight() + c.ParagraphPadding
}
