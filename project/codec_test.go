package project

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"

	"folio/common"
	"folio/layout"
)

func TestWriteRead(t *testing.T) {
	b := newTestBuilder(t, layout.DefaultConfig(), defaultOptions())
	p, err := b.FromText(context.Background(), Source{Name: "book.txt", Text: "Title\n\n# Tom & Jerry\n\nBody <text>.", Images: []string{"pic.png"}})
	if err != nil {
		t.Fatalf("FromText() error = %v", err)
	}

	for _, format := range []common.OutputFmt{common.OutputFmtJson, common.OutputFmtYaml} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, p, format); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if !strings.Contains(buf.String(), "<h1>Tom &amp; Jerry</h1>") {
				t.Errorf("markup is not kept verbatim:\n%s", buf.String())
			}

			got, err := Read(&buf, format)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, p) {
				t.Errorf("Read() = %+v, want %+v", got, p)
			}
		})
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format common.OutputFmt
		input  string
	}{
		{"json unknown field", common.OutputFmtJson, `{"id": "x", "bogus": 1}`},
		{"json malformed", common.OutputFmtJson, `{"id": `},
		{"yaml unknown field", common.OutputFmtYaml, "id: x\nbogus: 1\n"},
		{"unsupported format", common.OutputFmt(42), `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Read(strings.NewReader(tt.input), tt.format); err == nil {
				t.Error("Read() expected error")
			}
		})
	}
}

func TestFormatFromName(t *testing.T) {
	tests := map[string]common.OutputFmt{
		"book.json":      common.OutputFmtJson,
		"book.yaml":      common.OutputFmtYaml,
		"dir/book.YML":   common.OutputFmtYaml,
		"book":           common.OutputFmtJson,
		"book.yaml.json": common.OutputFmtJson,
	}
	for name, want := range tests {
		if got := FormatFromName(name); got != want {
			t.Errorf("FormatFromName(%q) = %v, want %v", name, got, want)
		}
	}
}
