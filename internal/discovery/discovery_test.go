package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates the given files (with trivial contents) under dir,
// making parent directories as needed.
func writeTree(t *testing.T, dir string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(dir, filepath.FromSlash(p))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestFindMatching(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"docs/overview.md",
		"docs/sub/details.md",
		"docs/.hidden.md",
		"docs/#autosave.md",
		"docs/~backup.md",
		"docs/notes.txt",
		"models/orders.sql",
	)

	matches, err := FindMatching(root, []string{"docs"}, "[!.#~]*.md")
	if err != nil {
		t.Fatalf("FindMatching() error = %v", err)
	}

	want := []string{"overview.md", filepath.Join("sub", "details.md")}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %+v", len(matches), len(want), matches)
	}
	for i, m := range matches {
		if m.RelativePath != want[i] {
			t.Errorf("matches[%d].RelativePath = %q, want %q", i, m.RelativePath, want[i])
		}
		if m.SearchedPath != "docs" {
			t.Errorf("matches[%d].SearchedPath = %q, want %q", i, m.SearchedPath, "docs")
		}
		if !filepath.IsAbs(m.AbsolutePath) {
			t.Errorf("matches[%d].AbsolutePath = %q, want absolute", i, m.AbsolutePath)
		}
		wantAbs := filepath.Join(root, "docs", want[i])
		if m.AbsolutePath != wantAbs {
			t.Errorf("matches[%d].AbsolutePath = %q, want %q", i, m.AbsolutePath, wantAbs)
		}
	}
}

func TestFindMatching_MultipleSearchDirs(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"docs/a.md",
		"models/b.md",
	)

	matches, err := FindMatching(root, []string{"docs", "models"}, "[!.#~]*.md")
	if err != nil {
		t.Fatalf("FindMatching() error = %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].SearchedPath != "docs" || matches[1].SearchedPath != "models" {
		t.Errorf("searched paths = %q, %q; want docs, models",
			matches[0].SearchedPath, matches[1].SearchedPath)
	}
}

func TestFindMatching_MissingDirSkipped(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "docs/a.md")

	matches, err := FindMatching(root, []string{"no-such-dir", "docs"}, "[!.#~]*.md")
	if err != nil {
		t.Fatalf("FindMatching() error = %v", err)
	}
	if len(matches) != 1 || matches[0].RelativePath != "a.md" {
		t.Errorf("matches = %+v, want just docs/a.md", matches)
	}
}

func TestFindMatching_SearchPathIsFile(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "docs")

	matches, err := FindMatching(root, []string{"docs"}, "[!.#~]*.md")
	if err != nil {
		t.Fatalf("FindMatching() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches from a non-directory search path, want 0", len(matches))
	}
}

func TestFindMatching_NoMatches(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "docs/readme.txt")

	matches, err := FindMatching(root, []string{"docs"}, "[!.#~]*.md")
	if err != nil {
		t.Fatalf("FindMatching() error = %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("got %d matches, want 0", len(matches))
	}
}

func TestFindMatching_BadPattern(t *testing.T) {
	if _, err := FindMatching(t.TempDir(), []string{"docs"}, "["); err == nil {
		t.Fatal("FindMatching() with malformed pattern succeeded, want error")
	}
}
