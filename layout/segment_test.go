package layout

import (
	"reflect"
	"testing"

	"folio/common"
)

func TestSegment(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		images []string
		opts   SegmentOptions
		want   []Unit
	}{
		{
			name: "blank line separated",
			text: "# Title\n\nFirst paragraph\nstill first.\n  \n\nSecond paragraph.",
			want: []Unit{
				Heading(1, "Title"),
				Paragraph("First paragraph\nstill first."),
				Paragraph("Second paragraph."),
			},
		},
		{
			name: "single spaced falls back to lines",
			text: "## Chapter\nLine one.\nLine two.",
			want: []Unit{
				Heading(2, "Chapter"),
				Paragraph("Line one."),
				Paragraph("Line two."),
			},
		},
		{
			name: "heading levels are capped and prefix stripped",
			text: "###   Third\n\n####### Deep\n\n#NoSpace",
			want: []Unit{
				Heading(3, "Third"),
				Heading(6, "Deep"),
				Heading(1, "NoSpace"),
			},
		},
		{
			name: "empty units dropped silently",
			text: "\n\n   \n\n#\n\n### \n\nKept",
			want: []Unit{Paragraph("Kept")},
		},
		{
			name:   "images trail text",
			text:   "Text before.\n\n![cover](cover.png)\n\nText after.",
			images: []string{"a.png", "", "b.jpg"},
			want: []Unit{
				Paragraph("Text before."),
				Paragraph("![cover](cover.png)"),
				Paragraph("Text after."),
				Image("a.png"),
				Image("b.jpg"),
			},
		},
		{
			name:   "inline images in place",
			text:   "Text before.\n\n![cover](cover.png)\n\nText after.",
			images: []string{"a.png"},
			opts:   SegmentOptions{Placement: common.ImagePlacementInline},
			want: []Unit{
				Paragraph("Text before."),
				{Kind: KindImage, Ref: "cover.png", Alt: "cover"},
				Paragraph("Text after."),
				Image("a.png"),
			},
		},
		{
			name:   "only images",
			text:   "   ",
			images: []string{"1.png", "2.png"},
			want:   []Unit{Image("1.png"), Image("2.png")},
		},
		{
			name: "nothing",
			text: "",
			want: []Unit{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.text, tt.images, tt.opts)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment() =\n%v\nwant\n%v", got, tt.want)
			}
		})
	}
}

func TestSegment_ReassembleIsStable(t *testing.T) {
	inputs := []string{
		"# Title\n\nShort paragraph.",
		"Single\nspaced\n# heading\ntext",
		"A paragraph\nwith inner line break",
		"## # odd heading\n\n####### too deep\n\nplain",
		"Text\n\n![alt](img.png)\n\nmore",
	}

	for _, in := range inputs {
		for _, placement := range common.ImagePlacementValues() {
			opts := SegmentOptions{Placement: placement}
			first := Segment(in, nil, opts)
			second := Segment(Reassemble(first), nil, opts)
			if !reflect.DeepEqual(first, second) {
				t.Errorf("[%s] %q: resegmented units differ\nfirst:  %v\nsecond: %v", placement, in, first, second)
			}
		}
	}
}
