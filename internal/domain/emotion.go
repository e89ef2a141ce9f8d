package domain

import (
	"context"
	"strings"
)

// EmotionLabel is a Korean emotion name taken from the seed corpus vocabulary.
type EmotionLabel string

// NeutralEmotionLabel is the fallback label used when no evidence is available.
const NeutralEmotionLabel EmotionLabel = "중립"

const (
	// MinIntensity is the lowest intensity a seed example may carry.
	MinIntensity = 1
	// MaxIntensity is the highest intensity a seed example may carry.
	MaxIntensity = 5
)

// Embedding is a dense semantic vector.
type Embedding []float64

// SeedExample is a labeled example sentence of the emotion corpus.
type SeedExample struct {
	Text      string
	Emotion   EmotionLabel
	Intensity int
}

// Validate checks the example invariants.
func (s SeedExample) Validate() error {
	if strings.TrimSpace(s.Text) == "" {
		return NewValidationErr("text must not be empty")
	}
	if strings.TrimSpace(string(s.Emotion)) == "" {
		return NewValidationErr("emotion must not be empty")
	}
	if s.Intensity < MinIntensity || s.Intensity > MaxIntensity {
		return NewValidationErr("intensity must be between 1 and 5")
	}
	return nil
}

// DedupeKey identifies an example within the index.
func (s SeedExample) DedupeKey() string {
	return strings.TrimSpace(s.Text) + "\x00" + string(s.Emotion)
}

// IndexedExample is a seed example stored with its embedding and row id.
type IndexedExample struct {
	SeedExample
	Embedding Embedding
	RowID     int
}

// ScoredExample is an indexed example returned by a similarity search.
type ScoredExample struct {
	IndexedExample
	Similarity float64
}

// SimilarContext is a retrieved example as reported to callers.
type SimilarContext struct {
	Text       string
	Emotion    EmotionLabel
	Intensity  int
	Similarity float64
}

// AnalysisResult holds the emotion distribution computed for one input.
type AnalysisResult struct {
	Input             string
	Emotions          map[EmotionLabel]int
	PrimaryEmotion    EmotionLabel
	PrimaryPercentage int
	PrimaryIntensity  int
	SimilarContexts   []SimilarContext
}

// NeutralAnalysisResult returns the fallback result used when the index yields no evidence.
func NeutralAnalysisResult(input string, contexts []SimilarContext) AnalysisResult {
	if contexts == nil {
		contexts = []SimilarContext{}
	}
	return AnalysisResult{
		Input:             input,
		Emotions:          map[EmotionLabel]int{NeutralEmotionLabel: 100},
		PrimaryEmotion:    NeutralEmotionLabel,
		PrimaryPercentage: 100,
		PrimaryIntensity:  100,
		SimilarContexts:   contexts,
	}
}

// Embedder turns text into embeddings.
type Embedder interface {
	// Embed returns the embedding of a single non-empty text.
	Embed(ctx context.Context, text string) (Embedding, error)
	// EmbedBatch returns the embeddings of texts in input order.
	EmbedBatch(ctx context.Context, texts []string) ([]Embedding, error)
	// Dimension returns the established vector dimension, or 0 before the first successful embed.
	Dimension() int
}

// EmotionIndex stores indexed examples and answers similarity queries.
type EmotionIndex interface {
	// Add appends examples, assigning row ids from the current count.
	Add(ctx context.Context, examples []SeedExample, embeddings []Embedding) error
	// Reset removes every example.
	Reset(ctx context.Context) error
	// Replace swaps the contents of the index for the given examples in one step.
	Replace(ctx context.Context, examples []SeedExample, embeddings []Embedding) error
	// Count returns the number of stored examples.
	Count(ctx context.Context) (int, error)
	// TopK returns at most k examples ordered by descending cosine similarity to query.
	TopK(ctx context.Context, query Embedding, k int) ([]ScoredExample, error)
}

// SeedCorpusLoader reads the labeled example corpus.
type SeedCorpusLoader interface {
	Load(ctx context.Context, path string) ([]SeedExample, error)
}

// BootstrapResult reports the outcome of an index bootstrap.
type BootstrapResult struct {
	Status        string
	Message       string
	DocumentCount int
}

// EngineHealth reports the readiness of the emotion engine.
type EngineHealth struct {
	Status           string
	VectorStoreCount int
	Ready            bool
}
