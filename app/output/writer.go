// Package output writes the rendered digest to its destination. Both
// destinations receive byte-identical content from the generator.
package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Write emits the digest either to stdout or to a file. File writes go
// through a temp file in the destination directory followed by a rename, so
// a failed write never leaves a partial file behind.
func Write(text string, path string, toStdout bool) error {
	if toStdout {
		if _, err := io.WriteString(os.Stdout, text); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	return writeFile(text, path)
}

func writeFile(text string, path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write output: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
