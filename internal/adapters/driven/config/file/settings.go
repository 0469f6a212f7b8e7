package file

import "github.com/docsift/docsift-cli/internal/core/ports/driven"

// Well-known configuration keys.
const (
	KeyEmbeddingModel   = "embedding.model"
	KeyEmbeddingBaseURL = "embedding.base_url"
	KeyLLMModel         = "llm.model"
	KeyLLMFallbackModel = "llm.fallback_model"
	KeyLLMBaseURL       = "llm.base_url"
	KeyLLMTemperature   = "llm.temperature"
	KeyChunkWords       = "ingest.chunk_words"
	KeyTopK             = "retrieval.top_k"
)

// Defaults applied when a key is absent from the config file.
const (
	DefaultLLMModel         = "llama-3.3-70b-versatile"
	DefaultLLMFallbackModel = "llama-3.1-8b-instant"
	DefaultLLMTemperature   = 0.2
	DefaultChunkWords       = 240
	DefaultTopK             = 5
)

// StringOr returns the configured string for key, or fallback when the
// key is unset or empty.
func StringOr(cfg driven.ConfigStore, key, fallback string) string {
	if v := cfg.GetString(key); v != "" {
		return v
	}
	return fallback
}

// IntOr returns the configured integer for key, or fallback when the
// key is unset or not positive.
func IntOr(cfg driven.ConfigStore, key string, fallback int) int {
	if v := cfg.GetInt(key); v > 0 {
		return v
	}
	return fallback
}

// FloatOr returns the configured float for key, or fallback when the
// key is unset or not positive.
func FloatOr(cfg driven.ConfigStore, key string, fallback float64) float64 {
	if v := cfg.GetFloat(key); v > 0 {
		return v
	}
	return fallback
}
