package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	outcomeSuccess  = "success"
	outcomeNeutral  = "neutral"
	outcomeRejected = "rejected"
	outcomeError    = "error"
)

var (
	meter = otel.Meter("usecases")

	EmotionAnalyses        metric.Int64Counter
	EmotionIndexBootstraps metric.Int64Counter
	EmotionIndexDocuments  metric.Int64Gauge
	LLMTokensUsed          metric.Int64Counter
)

func init() {
	var err error
	EmotionAnalyses, err = meter.Int64Counter(
		"emotion_analyses_total",
		metric.WithDescription("Emotion analyses by outcome"),
	)
	if err != nil {
		panic(err)
	}

	EmotionIndexBootstraps, err = meter.Int64Counter(
		"emotion_index_bootstraps_total",
		metric.WithDescription("Emotion index bootstraps by outcome"),
	)
	if err != nil {
		panic(err)
	}

	EmotionIndexDocuments, err = meter.Int64Gauge(
		"emotion_index_documents",
		metric.WithDescription("Documents loaded by the last emotion index bootstrap"),
	)
	if err != nil {
		panic(err)
	}

	// Tokens consumed by LLM (input + output)
	LLMTokensUsed, err = meter.Int64Counter(
		"llm_tokens_used_total",
		metric.WithDescription("Total LLM tokens consumed"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordEmotionAnalysis counts one analysis with its outcome.
func RecordEmotionAnalysis(ctx context.Context, outcome string) {
	EmotionAnalyses.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

// RecordBootstrap counts one bootstrap and records the resulting document count.
func RecordBootstrap(ctx context.Context, outcome string, documents int) {
	EmotionIndexBootstraps.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	EmotionIndexDocuments.Record(ctx, int64(documents))
}

// RecordLLMTokensUsed records the number of tokens used in an LLM chat operation.
func RecordLLMTokensUsed(ctx context.Context, promptTokens, completionTokens int) {
	LLMTokensUsed.Add(ctx, int64(promptTokens), metric.WithAttributes(
		attribute.String("token_type", "prompt"),
	))
	LLMTokensUsed.Add(ctx, int64(completionTokens), metric.WithAttributes(
		attribute.String("token_type", "completion"),
	))
}
