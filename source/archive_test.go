package source

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeZip(t *testing.T, path string, files map[string][]byte) {
	t.Helper()

	zf, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zf.Close()

	w := zip.NewWriter(zf)
	for name, content := range files {
		fw, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create file %s in zip: %v", name, err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("Failed to write content for %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
}

func TestWalkArchive(t *testing.T) {
	zipPath := filepath.Join(t.TempDir(), "test.zip")
	writeZip(t, zipPath, map[string][]byte{
		"docs/readme.txt": []byte("readme content"),
		"docs/guide.md":   []byte("guide content"),
		"img/1.png":       []byte("png"),
		"config.yml":      []byte("config content"),
	})

	tests := []struct {
		name   string
		prefix string
		want   int
	}{
		{"docs prefix", "docs/", 2},
		{"windows separators", `docs\`, 2},
		{"no match", "nonexistent/", 0},
		{"empty prefix", "", 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var visited []string
			err := WalkArchive(zipPath, tt.prefix, func(archive string, file *zip.File) error {
				if archive != zipPath {
					t.Errorf("archive = %s, want %s", archive, zipPath)
				}
				visited = append(visited, file.Name)
				return nil
			})
			if err != nil {
				t.Fatalf("WalkArchive() error = %v", err)
			}
			if len(visited) != tt.want {
				t.Errorf("visited %d files (%v), want %d", len(visited), visited, tt.want)
			}
		})
	}

	t.Run("walkFn returns error", func(t *testing.T) {
		stop := errors.New("stop")
		var visited int
		err := WalkArchive(zipPath, "", func(string, *zip.File) error {
			visited++
			return stop
		})
		if !errors.Is(err, stop) {
			t.Errorf("WalkArchive() error = %v, want %v", err, stop)
		}
		if visited != 1 {
			t.Errorf("visited %d files, want 1", visited)
		}
	})
}

func TestWalkArchive_Invalid(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		if err := WalkArchive("/nonexistent/file.zip", "", nil); err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		invalid := filepath.Join(t.TempDir(), "invalid.zip")
		if err := os.WriteFile(invalid, []byte("not a zip file"), 0644); err != nil {
			t.Fatalf("Failed to create invalid zip: %v", err)
		}
		if err := WalkArchive(invalid, "", nil); err == nil {
			t.Error("Expected error for invalid zip file")
		}
	})

	t.Run("path traversal", func(t *testing.T) {
		zipPath := filepath.Join(t.TempDir(), "evil.zip")
		writeZip(t, zipPath, map[string][]byte{"../evil.txt": []byte("x")})

		called := false
		err := WalkArchive(zipPath, "", func(string, *zip.File) error {
			called = true
			return nil
		})
		if err == nil {
			t.Error("Expected error for unsafe entry")
		}
		if called {
			t.Error("walkFn must not be called for unsafe entry")
		}
	})
}

func TestIsSafePath(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"book.txt", true},
		{"dir/book.txt", true},
		{"dir/..book.txt", true},
		{"/etc/passwd", false},
		{`\windows\system32`, false},
		{"../book.txt", false},
		{"dir/../../book.txt", false},
		{`dir\..\book.txt`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSafePath(tt.name); got != tt.want {
				t.Errorf("isSafePath(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestArchivedReference(t *testing.T) {
	f := &zip.File{FileHeader: zip.FileHeader{Name: "img/cover.png"}}
	if got := ArchivedReference(filepath.Join("some", "dir", "books.zip"), f); got != "books.zip/img/cover.png" {
		t.Errorf("ArchivedReference() = %q", got)
	}
}
