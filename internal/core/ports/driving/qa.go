package driving

import (
	"context"

	"github.com/docsift/docsift-cli/internal/core/domain"
)

// QAService is the interactive surface of the pipeline: load one
// document, then answer questions against it.
type QAService interface {
	// LoadDocument ingests a PDF end to end (extract, OCR, chunk,
	// embed, index) and replaces any previously loaded session.
	// A corrupt or empty document is a valid (if useless) state, not
	// an error; the returned status reports zero items.
	LoadDocument(ctx context.Context, path string) (domain.LoadStatus, error)

	// Ask answers a question against the loaded document. Generation
	// failures are embedded in Answer.Text as marked error strings;
	// an error is returned only when the question cannot be processed
	// at all (no document loaded, query embedding failed).
	Ask(ctx context.Context, question string) (domain.Answer, error)
}
