package domain

import (
	"math"
	"sort"

	"github.com/cleitonmarx/bomi/internal/common"
)

const (
	// MaxReportedEmotions bounds the number of emotions in an analysis result.
	MaxReportedEmotions = 3
	// SimilarityDecimals is the precision of reported similarities.
	SimilarityDecimals = 4

	fractionEpsilon = 1e-9
)

// EmotionWeight is the accumulated evidence for one emotion.
type EmotionWeight struct {
	Emotion EmotionLabel
	Weight  float64
}

// AggregateEmotionWeights sums max(similarity, 0) * intensity per emotion.
// Entries that contribute nothing are skipped. The result is ordered by
// descending weight, ties keeping the order in which the emotion first
// appeared in results.
func AggregateEmotionWeights(results []ScoredExample) []EmotionWeight {
	var weights []EmotionWeight
	position := map[EmotionLabel]int{}
	for _, r := range results {
		w := math.Max(r.Similarity, 0) * float64(r.Intensity)
		if w <= 0 {
			continue
		}
		idx, found := position[r.Emotion]
		if !found {
			idx = len(weights)
			position[r.Emotion] = idx
			weights = append(weights, EmotionWeight{Emotion: r.Emotion})
		}
		weights[idx].Weight += w
	}

	sort.SliceStable(weights, func(i, j int) bool {
		return weights[i].Weight > weights[j].Weight
	})
	return weights
}

// NormalizePercentages converts ranked weights into integer percentages that
// sum to exactly 100 using the largest-remainder method. Leftover units go to
// the largest fractional parts, ties preferring the higher weight and then the
// better rank. The returned slice is aligned with weights.
func NormalizePercentages(weights []EmotionWeight) []int {
	if len(weights) == 0 {
		return nil
	}

	var total float64
	for _, w := range weights {
		total += w.Weight
	}

	percents := make([]int, len(weights))
	fractions := make([]float64, len(weights))
	assigned := 0
	for i, w := range weights {
		raw := 100 * w.Weight / total
		floor := math.Floor(raw)
		if nearest := math.Round(raw); math.Abs(raw-nearest) < fractionEpsilon {
			floor = nearest
		}
		percents[i] = int(floor)
		fractions[i] = math.Max(raw-floor, 0)
		assigned += percents[i]
	}

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if diff := fractions[ia] - fractions[ib]; math.Abs(diff) > fractionEpsilon {
			return diff > 0
		}
		if weights[ia].Weight != weights[ib].Weight {
			return weights[ia].Weight > weights[ib].Weight
		}
		return ia < ib
	})

	for i := 0; assigned < 100; i++ {
		percents[order[i%len(order)]]++
		assigned++
	}
	return percents
}

// ToSimilarContexts maps retrieved examples to their reported form, keeping
// retrieval order.
func ToSimilarContexts(results []ScoredExample) []SimilarContext {
	contexts := make([]SimilarContext, 0, len(results))
	for _, r := range results {
		contexts = append(contexts, SimilarContext{
			Text:       r.Text,
			Emotion:    r.Emotion,
			Intensity:  r.Intensity,
			Similarity: common.RoundTo(r.Similarity, SimilarityDecimals),
		})
	}
	return contexts
}

// BuildAnalysisResult aggregates retrieved examples into an analysis result.
func BuildAnalysisResult(input string, results []ScoredExample) AnalysisResult {
	if len(results) == 0 {
		return NeutralAnalysisResult(input, nil)
	}

	contexts := ToSimilarContexts(results)
	weights := AggregateEmotionWeights(results)
	if len(weights) == 0 {
		return NeutralAnalysisResult(input, contexts)
	}
	if len(weights) > MaxReportedEmotions {
		weights = weights[:MaxReportedEmotions]
	}

	percents := NormalizePercentages(weights)
	emotions := make(map[EmotionLabel]int, len(weights))
	primary := 0
	for i, w := range weights {
		emotions[w.Emotion] = percents[i]
		if percents[i] > percents[primary] {
			primary = i
		}
	}

	return AnalysisResult{
		Input:             input,
		Emotions:          emotions,
		PrimaryEmotion:    weights[primary].Emotion,
		PrimaryPercentage: percents[primary],
		PrimaryIntensity:  percents[primary],
		SimilarContexts:   contexts,
	}
}
