package layout

import (
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	cfg := DefaultConfig()
	f := &factory{cfg: &cfg, ids: NewCounter()}

	part := f.paragraph(Unit{Kind: KindParagraph, Text: strings.Repeat("x", 100), Continued: true}, 50, 38)
	img := f.image(Image("pic.png"), 98)
	out := Dump([]Page{f.page(1, []Element{part, img})})

	for _, want := range []string{
		"Pages: 1\n",
		"  Page[page-1] master[master-a] elements[2]\n",
		"    TEXT[el-text-1] x=50.0 y=50.0 w=495.0 h=38.0 bottom=88.0\n",
		"      continued\n",
		"more)\n",
		"    IMAGE[el-img-2] x=50.0 y=98.0 w=495.0 h=280.0 bottom=378.0\n",
		"      ref: \"pic.png\"\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump does not contain %q:\n%s", want, out)
		}
	}
}
