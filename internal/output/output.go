package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Target describes where group lines are written.
type Target struct {
	// Path is the destination file. Empty means stdout only.
	Path string
	// Print echoes file output to stdout as well. Ignored when Path is empty
	// (stdout is already the destination).
	Print bool
}

// Validate checks the target before any processing starts. The returned
// warning is non-empty when the destination file already exists and will be
// overwritten; that is informational only.
func (t Target) Validate() (warning string, err error) {
	if t.Path == "" {
		return "", nil
	}
	dir := filepath.Dir(t.Path)
	info, statErr := os.Stat(dir)
	if statErr != nil || !info.IsDir() {
		return "", fmt.Errorf("output directory %q does not exist, cannot write %q", dir, filepath.Base(t.Path))
	}
	if info, statErr := os.Stat(t.Path); statErr == nil && info.Mode().IsRegular() {
		warning = fmt.Sprintf("will overwrite %s", t.Path)
	}
	return warning, nil
}

// Write delivers content. With a file target the file is written first and
// fully flushed; the same in-memory content is then echoed to stdout when
// Print is set.
func (t Target) Write(stdout io.Writer, content []byte) error {
	if t.Path == "" {
		_, err := stdout.Write(content)
		return err
	}
	if err := os.WriteFile(t.Path, content, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", t.Path, err)
	}
	if t.Print {
		if _, err := stdout.Write(content); err != nil {
			return err
		}
	}
	return nil
}
