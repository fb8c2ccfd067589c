package workflow

import (
	"errors"
	"io/fs"
	"os"
)

// placeholderContent is what gets uploaded when the configured input is
// missing and placeholder synthesis is enabled. Demo convenience only.
const placeholderContent = "This is a simple text file representing a diagram.\n"

// EnsureInputFile verifies that path exists. When it is absent and
// allowPlaceholder is set, a small plain-text file is written there so the
// rest of the workflow has something to upload. Reports whether a placeholder
// was created. An existing file is never touched.
func EnsureInputFile(path string, allowPlaceholder bool) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, &FilesystemError{Op: "stat", Path: path, Err: err}
	}
	if !allowPlaceholder {
		return false, &FilesystemError{Op: "stat", Path: path, Err: err}
	}
	if err := os.WriteFile(path, []byte(placeholderContent), 0o644); err != nil {
		return false, &FilesystemError{Op: "write placeholder", Path: path, Err: err}
	}
	return true, nil
}
