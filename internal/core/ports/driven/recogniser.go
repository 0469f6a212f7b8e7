package driven

import "context"

// Availability is a cached capability probe result for an OCR engine.
// The probe runs once per process; engine availability does not change
// at runtime.
type Availability int

const (
	// AvailabilityUnknown means the probe has not run yet.
	AvailabilityUnknown Availability = iota

	// AvailabilityReady means the engine initialised successfully.
	AvailabilityReady

	// AvailabilityUnavailable means initialisation failed and the
	// engine will not be retried.
	AvailabilityUnavailable
)

// Recogniser converts image pixels into text.
//
// Recognise never fails from the caller's perspective: implementations
// absorb engine errors and return an empty string when no text can be
// recovered.
type Recogniser interface {
	// Recognise runs OCR over PNG-encoded image bytes.
	Recognise(ctx context.Context, png []byte) string
}
