// Package ocr converts image pixels into text.
//
// Recognition is two-tier: a native in-process engine is preferred,
// with an external tesseract binary as fallback. The native engine's
// availability is probed exactly once per process and cached, since
// its setup cost is high and availability cannot change at runtime.
package ocr

import (
	"context"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/logger"
)

// Ensure Recogniser implements the interface.
var _ driven.Recogniser = (*Recogniser)(nil)

// CommandRunner executes an external command and returns its combined
// output. Abstracted for testing.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// engine is an in-process recognition backend.
type engine interface {
	recognise(ctx context.Context, png []byte) (string, error)
	close() error
}

// Recogniser is a two-tier OCR front end: native engine first, then
// the tesseract CLI, then an empty string. It never returns an error
// to callers.
type Recogniser struct {
	mu           sync.Mutex
	availability driven.Availability
	primary      engine
	runner       CommandRunner
}

// Option configures the recogniser.
type Option func(*Recogniser)

// WithRunner overrides the command runner used for the CLI fallback.
func WithRunner(r CommandRunner) Option {
	return func(rec *Recogniser) { rec.runner = r }
}

// New creates a recogniser. The native engine is not probed until the
// first Recognise call.
func New(opts ...Option) *Recogniser {
	r := &Recogniser{runner: execRunner{}}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recognise runs OCR over PNG bytes. Engine failures are absorbed:
// the fallback chain ends with an empty string, never an error.
func (r *Recogniser) Recognise(ctx context.Context, png []byte) string {
	if text, ok := r.recognisePrimary(ctx, png); ok {
		return text
	}

	text, err := r.recogniseCLI(ctx, png)
	if err != nil {
		logger.Warn("OCR fallback failed: %v", err)
		return ""
	}
	return text
}

// Close releases the native engine if one was initialised.
func (r *Recogniser) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.primary != nil {
		err := r.primary.close()
		r.primary = nil
		r.availability = driven.AvailabilityUnavailable
		return err
	}
	return nil
}

// recognisePrimary probes the native engine on first use and runs it
// when available.
func (r *Recogniser) recognisePrimary(ctx context.Context, png []byte) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.availability == driven.AvailabilityUnknown {
		eng, err := newPrimaryEngine()
		if err != nil {
			logger.Info("Native OCR unavailable: %v (using tesseract CLI)", err)
			r.availability = driven.AvailabilityUnavailable
		} else {
			r.availability = driven.AvailabilityReady
			r.primary = eng
		}
	}

	if r.availability != driven.AvailabilityReady {
		return "", false
	}

	text, err := r.primary.recognise(ctx, png)
	if err != nil {
		logger.Warn("Native OCR failed: %v", err)
		return "", false
	}
	return strings.TrimSpace(text), true
}

// recogniseCLI shells out to the tesseract binary. The temp file is
// removed on all paths.
func (r *Recogniser) recogniseCLI(ctx context.Context, png []byte) (string, error) {
	tmp, err := os.CreateTemp("", "docsift-ocr-*.png")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(png); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	out, err := r.runner.Run(ctx, "tesseract", tmp.Name(), "stdout")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
