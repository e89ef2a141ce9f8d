package usecases

import (
	"context"
	"strings"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
)

// DefaultTopK is the number of neighbours retrieved per analysis.
const DefaultTopK = 5

// AnalyzeEmotion computes the emotion distribution of a text.
type AnalyzeEmotion interface {
	Execute(ctx context.Context, text string) (domain.AnalysisResult, error)
}

// AnalyzeEmotionImpl embeds the text, retrieves its nearest labeled examples
// and aggregates their emotions.
type AnalyzeEmotionImpl struct {
	embedder domain.Embedder
	index    domain.EmotionIndex
	topK     int
}

// NewAnalyzeEmotionImpl creates a new AnalyzeEmotionImpl. A topK below 1 falls back to DefaultTopK.
func NewAnalyzeEmotionImpl(e domain.Embedder, idx domain.EmotionIndex, topK int) AnalyzeEmotionImpl {
	if topK < 1 {
		topK = DefaultTopK
	}
	return AnalyzeEmotionImpl{
		embedder: e,
		index:    idx,
		topK:     topK,
	}
}

// Execute runs the analysis.
func (a AnalyzeEmotionImpl) Execute(ctx context.Context, text string) (domain.AnalysisResult, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	text = strings.TrimSpace(text)
	if text == "" {
		err := domain.NewAnalysisInputEmptyErr()
		telemetry.RecordErrorAndStatus(span, err)
		RecordEmotionAnalysis(spanCtx, outcomeRejected)
		return domain.AnalysisResult{}, err
	}

	query, err := a.embedder.Embed(spanCtx, text)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordEmotionAnalysis(spanCtx, outcomeError)
		return domain.AnalysisResult{}, domain.NewIndexUnavailableErr(err)
	}

	results, err := a.index.TopK(spanCtx, query, a.topK)
	if telemetry.RecordErrorAndStatus(span, err) {
		RecordEmotionAnalysis(spanCtx, outcomeError)
		return domain.AnalysisResult{}, domain.NewIndexUnavailableErr(err)
	}

	result := domain.BuildAnalysisResult(text, results)
	outcome := outcomeSuccess
	if result.PrimaryEmotion == domain.NeutralEmotionLabel {
		outcome = outcomeNeutral
	}
	RecordEmotionAnalysis(spanCtx, outcome)
	return result, nil
}

// InitAnalyzeEmotion initializes the AnalyzeEmotion use case.
type InitAnalyzeEmotion struct {
	Embedder domain.Embedder     `resolve:""`
	Index    domain.EmotionIndex `resolve:""`
	TopK     int                 `config:"VECTOR_TOP_K" default:"5"`
}

// Initialize registers the AnalyzeEmotion use case implementation.
func (i InitAnalyzeEmotion) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[AnalyzeEmotion](NewAnalyzeEmotionImpl(i.Embedder, i.Index, i.TopK))
	return ctx, nil
}
