package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.txt")
	text := "#1:\n   Title: Movie Title\n   Released: 2023\n   Type: MOVIE\n   Link: https://example.com/movie\n"

	if err := Write(text, path, false); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != text {
		t.Errorf("Written content differs:\ngot:  %q\nwant: %q", string(data), text)
	}
}

func TestWriteFile_OverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.txt")
	if err := os.WriteFile(path, []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Write("new content", path, false); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new content" {
		t.Errorf("Expected file to be replaced, got %q", string(data))
	}
}

func TestWriteFile_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "watchlist.txt")

	if err := Write("content", path, false); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "watchlist.txt" {
		t.Errorf("Expected only the output file in %s, got %v", dir, entries)
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "watchlist.txt")

	if err := Write("content", path, false); err == nil {
		t.Error("Expected an error when the destination directory does not exist")
	}
}
