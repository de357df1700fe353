package service

import (
	"os"

	apperrors "pdf-master-pro/pkg/errors"
)

// scratchDir creates an ephemeral per-request working directory for
// operations that go through disk. The returned cleanup func removes
// the directory and everything in it; callers defer it immediately so
// the scratch area is released on every exit path.
func scratchDir() (string, func(), error) {
	dir, err := os.MkdirTemp("", "pdf-master-")
	if err != nil {
		return "", nil, apperrors.NewInternalError("could not create scratch directory", err)
	}
	return dir, func() { _ = os.RemoveAll(dir) }, nil
}
