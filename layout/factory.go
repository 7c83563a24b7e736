package layout

import (
	"fmt"
	"html"

	"github.com/beevik/etree"
)

// factory builds output records for placed units.
type factory struct {
	cfg *Config
	ids IDGenerator
}

func (f *factory) element(typ ElementType, prefix string, y, height float64, style Style) Element {
	return Element{
		ID:     f.ids.NextID(prefix),
		Type:   typ,
		Style:  style,
		X:      f.cfg.MarginLeft,
		Y:      y,
		Width:  f.cfg.ContentWidth,
		Height: height,
	}
}

func (f *factory) heading(u Unit, y, height float64) Element {
	level := min(max(u.Level, 1), MaxHeadingLevel)
	el := f.element(ElementText, "head", y, height, f.cfg.Style.heading(level))
	el.Content = markup(fmt.Sprintf("h%d", level), u.Text)
	el.Text = u.Text
	return el
}

func (f *factory) paragraph(u Unit, y, height float64) Element {
	el := f.element(ElementText, "text", y, height, f.cfg.Style.body())
	el.Content = markup("p", u.Text)
	el.Text = u.Text
	el.Continued = u.Continued
	return el
}

func (f *factory) image(u Unit, y float64) Element {
	el := f.element(ElementImage, "img", y, f.cfg.ImageHeight, f.cfg.Style.image())
	el.Content = u.Ref
	el.AltText = u.Alt
	return el
}

// cover spans the whole content area and is locked so relayout keeps it.
func (f *factory) cover(title, subtitle string) Element {
	el := f.element(ElementText, "cover", f.cfg.MarginTop, f.cfg.UsableHeight(), f.cfg.Style.heading(1))
	el.Content = markup("h1", title)
	el.Text = title
	if len(subtitle) > 0 {
		el.Content += markup("p", subtitle)
		el.Text += "\n" + subtitle
	}
	el.Style.TextAlign = "center"
	el.Locked = true
	return el
}

func (f *factory) page(number int, elements []Element) Page {
	return Page{
		ID:           fmt.Sprintf("page-%d", number),
		MasterPageID: f.cfg.MasterPage,
		Elements:     elements,
	}
}

// markup wraps text into a single element with proper escaping.
func markup(tag, text string) string {
	doc := etree.NewDocument()
	doc.WriteSettings.CanonicalText = true
	doc.CreateElement(tag).SetText(text)
	out, err := doc.WriteToString()
	if err != nil {
		// writing into memory does not fail
		return "<" + tag + ">" + html.EscapeString(text) + "</" + tag + ">"
	}
	return out
}
