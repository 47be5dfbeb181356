package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteTo writes the generated text to w.
func (o *Output) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, o.Text)
	if err != nil {
		return int64(n), fmt.Errorf("writing output: %w", err)
	}

	return int64(n), nil
}

// WriteFile writes the generated text to path.
// It creates the parent directory if it doesn't exist.
func WriteFile(o *Output, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(o.Text), filePerm); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
