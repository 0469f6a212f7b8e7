//go:build cgo

package ocr

import (
	"context"

	"github.com/otiai10/gosseract/v2"
)

// gosseractEngine wraps the libtesseract bindings. One client is kept
// for the process lifetime and reused across calls.
type gosseractEngine struct {
	client *gosseract.Client
}

// newPrimaryEngine initialises the native engine and verifies it can
// actually recognise by running it once over a probe image. The result
// is cached by the caller; this runs at most once per process.
func newPrimaryEngine() (engine, error) {
	client := gosseract.NewClient()
	if err := client.SetImageFromBytes(probePNG); err != nil {
		client.Close()
		return nil, err
	}
	if _, err := client.Text(); err != nil {
		client.Close()
		return nil, err
	}
	return &gosseractEngine{client: client}, nil
}

func (e *gosseractEngine) recognise(_ context.Context, png []byte) (string, error) {
	if err := e.client.SetImageFromBytes(png); err != nil {
		return "", err
	}
	return e.client.Text()
}

func (e *gosseractEngine) close() error {
	return e.client.Close()
}
