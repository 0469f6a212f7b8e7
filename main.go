// docsift is a command-line tool that answers questions about a PDF
// document. It decomposes the PDF into text, table and image items,
// indexes them in memory and generates answers with page citations.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	configfile "github.com/docsift/docsift-cli/internal/adapters/driven/config/file"
	"github.com/docsift/docsift-cli/internal/adapters/driven/embedding/openai"
	"github.com/docsift/docsift-cli/internal/adapters/driven/index/flat"
	"github.com/docsift/docsift-cli/internal/adapters/driven/llm/groq"
	"github.com/docsift/docsift-cli/internal/adapters/driven/storage/memory"
	"github.com/docsift/docsift-cli/internal/adapters/driving/cli"
	"github.com/docsift/docsift-cli/internal/core/ports/driven"
	"github.com/docsift/docsift-cli/internal/core/services"
	"github.com/docsift/docsift-cli/internal/normalisers/pdf"
	"github.com/docsift/docsift-cli/internal/ocr"
	"github.com/docsift/docsift-cli/internal/postprocessors/chunker"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// Environment variables may come from a local .env file.
	_ = godotenv.Load()

	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	qa, cleanup, err := buildQAService(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	cli.SetVersion(version)
	if qa != nil {
		cli.SetQAService(qa)
	}

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildQAService wires the pipeline. A missing API key leaves the
// service unset so that commands which need it fail with a clear
// message instead of at startup of unrelated commands.
func buildQAService(cfg driven.ConfigStore) (*services.QAService, func(), error) {
	cleanup := func() {}

	openaiKey := os.Getenv("OPENAI_API_KEY")
	groqKey := os.Getenv("GROQ_API_KEY")
	if openaiKey == "" || groqKey == "" {
		return nil, cleanup, nil
	}

	embedder, err := openai.NewEmbeddingService(openai.Config{
		APIKey:  openaiKey,
		BaseURL: cfg.GetString(configfile.KeyEmbeddingBaseURL),
		Model:   cfg.GetString(configfile.KeyEmbeddingModel),
	})
	if err != nil {
		return nil, cleanup, err
	}

	llm, err := groq.NewLLMService(groq.Config{
		APIKey:  groqKey,
		BaseURL: cfg.GetString(configfile.KeyLLMBaseURL),
	})
	if err != nil {
		return nil, cleanup, err
	}

	answerer := services.NewAnswerer(
		llm,
		configfile.StringOr(cfg, configfile.KeyLLMModel, configfile.DefaultLLMModel),
		configfile.StringOr(cfg, configfile.KeyLLMFallbackModel, configfile.DefaultLLMFallbackModel),
		configfile.FloatOr(cfg, configfile.KeyLLMTemperature, configfile.DefaultLLMTemperature),
	)

	recogniser := ocr.New()
	cleanup = func() {
		_ = recogniser.Close()
		_ = embedder.Close()
		_ = llm.Close()
	}

	qa := services.NewQAService(
		pdf.New(),
		chunker.New(chunker.WithTargetWords(
			configfile.IntOr(cfg, configfile.KeyChunkWords, configfile.DefaultChunkWords))),
		embedder,
		memory.NewChunkStore(),
		func(dim int) driven.VectorIndex { return flat.New(dim) },
		answerer,
		services.WithRecogniser(recogniser),
		services.WithTopK(configfile.IntOr(cfg, configfile.KeyTopK, configfile.DefaultTopK)),
	)
	return qa, cleanup, nil
}
