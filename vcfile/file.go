// Package vcfile reads and writes vCard text on disk. It exists so the
// parsing and serialization core never touches the filesystem itself;
// failures here are resource errors, kept distinct from content errors.
package vcfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Errors returned by Read and Write.
var (
	// ErrNotExist is returned by Read when there is no file at the given
	// path. Other read failures are reported as-is.
	ErrNotExist = errors.New("vCard file does not exist")

	// ErrExists is returned by Write when the target already exists and
	// overwriting was not requested.
	ErrExists = errors.New("vCard file already exists")
)

// Read returns the text of the vCard file at the given path. A missing file
// is reported with ErrNotExist, distinctly from any other read failure.
func Read(path string) (string, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%q: %w", path, ErrNotExist)
	}
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return string(b), nil
}

// Write persists the given text at the given path and returns the number of
// bytes written. When overwrite is false and a file already exists at the
// path, it fails with ErrExists and leaves the existing file untouched.
func Write(path, text string, overwrite bool) (int, error) {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return 0, fmt.Errorf("%q: %w", path, ErrExists)
	}
	if err != nil {
		return 0, fmt.Errorf("writing %q: %w", path, err)
	}

	n, err := f.WriteString(text)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("writing %q: %w", path, err)
	}

	return n, nil
}
