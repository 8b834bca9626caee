package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestWalker_Walk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "doc1.txt"), "a")
	writeFile(t, filepath.Join(root, "nested", "doc2.txt"), "b")
	writeFile(t, filepath.Join(root, "nested", "notes.md"), "c")
	writeFile(t, filepath.Join(root, "drafts", "doc3.txt"), "d")

	w := NewWalker([]string{"**/*.txt"}, []string{"drafts/**"})
	files, err := w.Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{
		filepath.Join(root, "doc1.txt"),
		filepath.Join(root, "nested", "doc2.txt"),
	}
	if len(files) != len(expected) {
		t.Fatalf("expected %d files, got %d: %+v", len(expected), len(files), files)
	}
	for i, f := range files {
		if f != expected[i] {
			t.Errorf("file %d: expected %s, got %s", i, expected[i], f)
		}
	}
}

func TestWalker_Expand(t *testing.T) {
	root := t.TempDir()
	single := filepath.Join(root, "single.md")
	writeFile(t, single, "x")
	writeFile(t, filepath.Join(root, "dir", "a.txt"), "y")

	w := NewWalker(nil, nil)
	paths, err := w.Expand([]string{single, filepath.Join(root, "dir")})
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 || paths[0] != single {
		t.Errorf("unexpected paths: %v", paths)
	}

	if _, err := w.Expand([]string{filepath.Join(root, "missing")}); err == nil {
		t.Error("expected error for missing path")
	}
}

func TestFileSource_ReadFile(t *testing.T) {
	base := t.TempDir()
	writeFile(t, filepath.Join(base, "docs", "doc1.txt"), "the cat sat")

	src := NewFileSource(base)
	text, err := src.ReadFile(context.Background(), "./docs/doc1.txt")
	if err != nil {
		t.Fatal(err)
	}
	if text != "the cat sat" {
		t.Errorf("unexpected content %q", text)
	}

	abs := filepath.Join(base, "docs", "doc1.txt")
	if got := src.Resolve(abs); got != abs {
		t.Errorf("absolute path changed: %s", got)
	}

	if _, err := src.ReadFile(context.Background(), "missing.txt"); err == nil {
		t.Error("expected error for missing document")
	}
}
