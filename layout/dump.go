package layout

import (
	"folio/utils/debug"
)

// Dump returns readable tree of pages. It exists solely for manual
// inspection and debug reports.
func Dump(pages []Page) string {
	tw := debug.NewTreeWriter()
	tw.TextLimit = 60

	tw.Line(0, "Pages: %d", len(pages))
	for _, p := range pages {
		tw.Line(1, "Page[%s] master[%s] elements[%d]", p.ID, p.MasterPageID, len(p.Elements))
		for _, el := range p.Elements {
			tw.Line(2, "%s[%s] x=%.1f y=%.1f w=%.1f h=%.1f bottom=%.1f", el.Type, el.ID, el.X, el.Y, el.Width, el.Height, el.Bottom())
			switch el.Type {
			case ElementImage:
				tw.TextBlock(3, "ref", el.Content)
			default:
				if el.Continued {
					tw.Line(3, "continued")
				}
				tw.TextBlock(3, "markup", el.Content)
			}
		}
	}
	return tw.String()
}
