//go:build !cgo

package ocr

import "github.com/docsift/docsift-cli/internal/core/domain"

// newPrimaryEngine reports the native engine as unavailable.
// This is a stub for builds without CGO; recognition falls back to
// the tesseract CLI.
func newPrimaryEngine() (engine, error) {
	return nil, domain.ErrNotImplemented
}
