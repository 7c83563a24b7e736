package paginate

import (
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"folio/common"
	"folio/config"
	"folio/layout"
	"folio/project"
	"folio/state"
)

func setupTestEnvForOutputPath(t *testing.T, noDirs bool, transliterate bool, template string) *state.LocalEnv {
	t.Helper()

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.Document.FileNameTransliterate = transliterate
	cfg.Document.OutputNameTemplate = template

	return &state.LocalEnv{
		Log:    zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1))),
		Cfg:    cfg,
		NoDirs: noDirs,
	}
}

func testProject() *project.Project {
	return &project.Project{
		ID:    "0190a1b2-c3d4-7e5f-8a9b-0c1d2e3f4a5b",
		Name:  "Test Book",
		Slug:  "test-book",
		Pages: make([]layout.Page, 3),
	}
}

func TestBuildOutputPath(t *testing.T) {
	tests := []struct {
		name          string
		noDirs        bool
		transliterate bool
		template      string
		format        common.OutputFmt
		want          string
	}{
		{"no dirs", true, false, "", common.OutputFmtJson, filepath.Join("/output", "book.json")},
		{"with dirs", false, false, "", common.OutputFmtJson, filepath.Join("/output", "books", "author", "book.json")},
		{"yaml", true, false, "", common.OutputFmtYaml, filepath.Join("/output", "book.yaml")},
		{"template", true, false, "{{ .Slug }}-{{ .Pages }}", common.OutputFmtJson, filepath.Join("/output", "test-book-3.json")},
		{"template with dirs", false, false, "{{ .Format }}/{{ .Title }}", common.OutputFmtYaml, filepath.Join("/output", "books", "author", "yaml", "Test Book.yaml")},
		{"template transliterated", true, true, "{{ .Title }}", common.OutputFmtJson, filepath.Join("/output", "test-book.json")},
		{"broken template falls back", true, false, "{{ .Missing", common.OutputFmtJson, filepath.Join("/output", "book.json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, tt.noDirs, tt.transliterate, tt.template)
			if got := buildOutputPath(testProject(), filepath.Join("books", "author", "book.txt"), "/output", tt.format, env); got != tt.want {
				t.Errorf("buildOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildDefaultFileName(t *testing.T) {
	tests := []struct {
		name          string
		src           string
		transliterate bool
		format        common.OutputFmt
		want          string
	}{
		{"simple", "book.txt", false, common.OutputFmtJson, "book.json"},
		{"with path", "path/to/book.md", false, common.OutputFmtJson, "book.json"},
		{"yaml", "book.pdf", false, common.OutputFmtYaml, "book.yaml"},
		{"transliterate", "Книга.txt", true, common.OutputFmtJson, "kniga.json"},
		{"hidden", ".txt", false, common.OutputFmtJson, "_bad_file_name_.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, "")
			if got := buildDefaultFileName(tt.src, tt.format, env); got != tt.want {
				t.Errorf("buildDefaultFileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitAndCleanPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []string
	}{
		{"simple path", filepath.Join("author", "book"), []string{"author", "book"}},
		{"single segment", "book", []string{"book"}},
		{"with trailing separator", filepath.Join("author", "book") + string(filepath.Separator), []string{"author", "book"}},
		{"three levels", filepath.Join("genre", "author", "book"), []string{"genre", "author", "book"}},
		{"empty path", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAndCleanPath(tt.path)
			if len(got) != len(tt.want) {
				t.Fatalf("splitAndCleanPath() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitAndCleanPath()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAssemblePathWithSubdirs(t *testing.T) {
	tests := []struct {
		name          string
		expanded      string
		transliterate bool
		format        common.OutputFmt
		want          string
	}{
		{"simple", filepath.Join("author", "book"), false, common.OutputFmtJson, filepath.Join("/output", "author", "book.json")},
		{"single level", "book", false, common.OutputFmtYaml, filepath.Join("/output", "book.yaml")},
		{"transliterate", filepath.Join("Автор", "Книга"), true, common.OutputFmtJson, filepath.Join("/output", "avtor", "kniga.json")},
		{"empty", "", false, common.OutputFmtJson, "/output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnvForOutputPath(t, true, tt.transliterate, "")
			if got := assemblePathWithSubdirs("/output", tt.expanded, tt.format, env); got != tt.want {
				t.Errorf("assemblePathWithSubdirs() = %q, want %q", got, tt.want)
			}
		})
	}
}
