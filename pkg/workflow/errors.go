package workflow

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"

	"google.golang.org/api/googleapi"
)

// The workflow distinguishes four failure classes. Filesystem problems happen
// before any remote resource exists and are fatal; provider and transport
// problems are logged and fall through to cleanup. Configuration problems are
// surfaced by pkg/config before the workflow starts.

// FilesystemError wraps local file failures (placeholder write, input read).
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// ProviderError wraps a failure reported by the provider API.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider: %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// TransportError wraps a network failure that happened before the provider
// could answer.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Classify buckets a step failure. API-reported errors beat network errors:
// a googleapi.Error means the provider answered, whatever the transport did.
// Anything unrecognized is treated as a provider failure, matching the broad
// top-level handling the workflow applies either way.
func Classify(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return &ProviderError{Op: op, Err: err}
	}
	var perr *os.PathError
	if errors.As(err, &perr) {
		return &FilesystemError{Op: op, Path: perr.Path, Err: err}
	}
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return &TransportError{Op: op, Err: err}
	}
	var nerr net.Error
	if errors.As(err, &nerr) {
		return &TransportError{Op: op, Err: err}
	}
	return &ProviderError{Op: op, Err: err}
}
