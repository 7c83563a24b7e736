package layout

import "fmt"

// MaxHeadingLevel is the deepest heading level recognized by segmenter.
const MaxHeadingLevel = 6

// Kind classifies content unit.
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindHeading:
		return "heading"
	case KindImage:
		return "image"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Unit is a classified piece of input content prior to page placement.
type Unit struct {
	Kind  Kind
	Level int    // headings only, 1..MaxHeadingLevel
	Text  string // heading or paragraph text
	Ref   string // images only, opaque reference
	Alt   string // images recognized in text only

	// Continued is set on the remainder of a paragraph which was split at
	// the end of previous page.
	Continued bool
}

func Heading(level int, text string) Unit {
	return Unit{Kind: KindHeading, Level: min(max(level, 1), MaxHeadingLevel), Text: text}
}

func Paragraph(text string) Unit {
	return Unit{Kind: KindParagraph, Text: text}
}

func Image(ref string) Unit {
	return Unit{Kind: KindImage, Ref: ref}
}

func (u Unit) String() string {
	switch u.Kind {
	case KindHeading:
		return fmt.Sprintf("h%d %q", u.Level, u.Text)
	case KindImage:
		return fmt.Sprintf("image %q", u.Ref)
	}
	return fmt.Sprintf("p %q", u.Text)
}

// ElementType follows naming used by the editor which consumes pages.
type ElementType string

const (
	ElementText  ElementType = "TEXT"
	ElementImage ElementType = "IMAGE"
)

// Element is a positioned output unit. Elements are values, engine never
// keeps references to emitted ones.
type Element struct {
	ID      string      `json:"id" yaml:"id"`
	Type    ElementType `json:"type" yaml:"type"`
	Content string      `json:"content" yaml:"content"`               // markup for text, reference for images
	Text    string      `json:"text,omitempty" yaml:"text,omitempty"` // plain text of text elements
	Style   Style       `json:"style" yaml:"style"`

	X        float64 `json:"x" yaml:"x"`
	Y        float64 `json:"y" yaml:"y"`
	Width    float64 `json:"width" yaml:"width"`
	Height   float64 `json:"height" yaml:"height"`
	Rotation float64 `json:"rotation" yaml:"rotation"`
	Locked   bool    `json:"locked" yaml:"locked"`

	Continued bool   `json:"continued,omitempty" yaml:"continued,omitempty"`
	AltText   string `json:"altText,omitempty" yaml:"alt_text,omitempty"`
}

// Bottom returns vertical extent of the element.
func (e *Element) Bottom() float64 {
	return e.Y + e.Height
}

// Page is an ordered list of elements associated with master page.
type Page struct {
	ID           string    `json:"id" yaml:"id"`
	MasterPageID string    `json:"masterPageId" yaml:"master_page_id"`
	Elements     []Element `json:"elements" yaml:"elements"`
}
