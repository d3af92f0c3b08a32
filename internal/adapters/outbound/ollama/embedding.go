package ollama

import (
	"strings"
)

// EmbeddingGenerator defines the interface for shaping embedding prompts for
// catalog utterances and mood queries.
type EmbeddingGenerator interface {
	// GenerateIndexingPrompt creates the prompt used for embedding a catalog utterance.
	GenerateIndexingPrompt(utterance string) string
	// GenerateSearchPrompt creates the prompt used for embedding a mood query.
	GenerateSearchPrompt(mood string) string
}

// EmbeddingFactory provides a method to get an EmbeddingGenerator based on the model name.
type EmbeddingFactory interface {
	// Get returns an EmbeddingGenerator for the specified model name.
	Get(model string) EmbeddingGenerator
}

// embeddingFactory is the default implementation of EmbeddingFactory.
type embeddingFactory struct {
}

func (f embeddingFactory) Get(model string) EmbeddingGenerator {
	if strings.Contains(model, "nomic-embed") {
		return nomicEmbedding{}
	}
	return defaultEmbeddingGenerator{}
}

// nomicEmbedding implements EmbeddingGenerator for nomic-embed models,
// which expect task-specific prefixes on both sides of the comparison.
type nomicEmbedding struct{}

func (a nomicEmbedding) GenerateIndexingPrompt(utterance string) string {
	return "search_document: " + utterance
}

func (a nomicEmbedding) GenerateSearchPrompt(mood string) string {
	return "search_query: " + mood
}

// defaultEmbeddingGenerator is a fallback implementation of EmbeddingGenerator
// that passes text through without model-specific formatting.
type defaultEmbeddingGenerator struct{}

func (a defaultEmbeddingGenerator) GenerateIndexingPrompt(utterance string) string {
	return utterance
}

func (a defaultEmbeddingGenerator) GenerateSearchPrompt(mood string) string {
	return mood
}
