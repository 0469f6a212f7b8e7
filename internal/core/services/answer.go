package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/docsift/docsift-cli/internal/core/domain"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/logger"
)

// maxContextChars bounds the length of any single context item included
// in the prompt.
const maxContextChars = 2000

// answerSystem is the system role for answer generation.
const answerSystem = "You answer questions about a document using only the excerpts provided by the user."

// answerPromptFormat wraps the assembled context and the question.
const answerPromptFormat = `Answer the question using ONLY the context below.
If the context does not contain the answer, say so explicitly.
Cite page numbers inline, e.g. (Page 3).

Context:
%s

Question: %s`

// Answerer produces displayable answer text from retrieved context.
//
// Generation never fails from the caller's perspective: upstream
// errors become marked strings inside the answer. A primary model is
// tried first; when the upstream error indicates the model itself is
// unavailable or decommissioned, the fallback model is tried once.
type Answerer struct {
	llm         driven.LLMService
	primary     string
	fallback    string
	temperature float64
}

// NewAnswerer creates an answer generator over the given LLM service.
func NewAnswerer(llm driven.LLMService, primary, fallback string, temperature float64) *Answerer {
	return &Answerer{
		llm:         llm,
		primary:     primary,
		fallback:    fallback,
		temperature: temperature,
	}
}

// Answer generates an answer for the question over the context items.
// The returned string is always displayable; it is never empty and
// never accompanied by an error.
func (a *Answerer) Answer(ctx context.Context, question string, contexts []domain.ContextItem) string {
	prompt := fmt.Sprintf(answerPromptFormat, assembleContext(contexts), question)

	text, err := a.llm.Complete(ctx, a.primary, answerSystem, prompt, a.temperature)
	if err == nil {
		return text
	}

	if !modelUnavailable(err) {
		logger.Warn("Generation failed: %v", err)
		return fmt.Sprintf("[LLM error] %v", err)
	}

	logger.Info("Model %s unavailable, retrying with %s", a.primary, a.fallback)
	text, fberr := a.llm.Complete(ctx, a.fallback, answerSystem, prompt, a.temperature)
	if fberr != nil {
		logger.Warn("Fallback generation failed: %v", fberr)
		return fmt.Sprintf("[LLM error] primary %s and fallback %s both failed: %v", a.primary, a.fallback, fberr)
	}
	return text
}

// assembleContext renders context items as "[Page N] text" lines,
// truncating each item to bound the prompt size.
func assembleContext(contexts []domain.ContextItem) string {
	lines := make([]string, 0, len(contexts))
	for _, c := range contexts {
		text := c.Text
		if len(text) > maxContextChars {
			text = text[:maxContextChars]
		}
		lines = append(lines, fmt.Sprintf("[Page %d] %s", c.Page, text))
	}
	return strings.Join(lines, "\n")
}

// modelUnavailable reports whether an upstream error indicates the
// requested model itself cannot serve, as opposed to a transient or
// request-level failure.
func modelUnavailable(err error) bool {
	var upstream *driven.UpstreamError
	if !errors.As(err, &upstream) {
		return false
	}
	msg := strings.ToLower(upstream.Message)
	return strings.Contains(msg, "decommissioned") || strings.Contains(msg, "model")
}
