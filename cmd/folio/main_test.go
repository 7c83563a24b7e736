package main

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"folio/misc"
)

func TestNewApp_Commands(t *testing.T) {
	app := newApp()

	var names []string
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	want := []string{"paginate", "relayout", "dumpconfig"}
	if !slices.Equal(names, want) {
		t.Fatalf("commands = %v, want %v", names, want)
	}

	flags := map[string][]string{
		"paginate":   {"to", "images", "nodirs", "overwrite", "codepage"},
		"relayout":   {"to", "overwrite"},
		"dumpconfig": {"default"},
	}
	for _, c := range app.Commands {
		var got []string
		for _, f := range c.Flags {
			got = append(got, f.Names()[0])
		}
		if !slices.Equal(got, flags[c.Name]) {
			t.Errorf("%s flags = %v, want %v", c.Name, got, flags[c.Name])
		}
		if c.Action == nil {
			t.Errorf("%s has no action", c.Name)
		}
	}
}

func TestRemoveEmptyPanicLog(t *testing.T) {
	dir := t.TempDir()
	destination := filepath.Join(dir, "folio.log")
	panicLog := filepath.Join(dir, misc.GetAppName()+"-panic.log")

	t.Run("no destination", func(t *testing.T) {
		if err := removeEmptyPanicLog(""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty file removed", func(t *testing.T) {
		if err := os.WriteFile(panicLog, nil, 0644); err != nil {
			t.Fatal(err)
		}
		if err := removeEmptyPanicLog(destination); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(panicLog); !os.IsNotExist(err) {
			t.Errorf("empty panic log still exists: %v", err)
		}
	})

	t.Run("non empty file kept", func(t *testing.T) {
		if err := os.WriteFile(panicLog, []byte("goroutine 1 [running]"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := removeEmptyPanicLog(destination); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(panicLog); err != nil {
			t.Errorf("panic log removed: %v", err)
		}
	})
}
