package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scored(rowID int, text string, emotion EmotionLabel, intensity int, sim float64) ScoredExample {
	return ScoredExample{
		IndexedExample: IndexedExample{
			SeedExample: SeedExample{Text: text, Emotion: emotion, Intensity: intensity},
			RowID:       rowID,
		},
		Similarity: sim,
	}
}

func sumPercents(m map[EmotionLabel]int) int {
	total := 0
	for _, v := range m {
		total += v
	}
	return total
}

func TestAggregateEmotionWeights(t *testing.T) {
	tests := map[string]struct {
		results []ScoredExample
		want    []EmotionWeight
	}{
		"sums-per-emotion": {
			results: []ScoredExample{
				scored(0, "a", "기쁨", 4, 0.5),
				scored(1, "b", "피곤", 2, 0.25),
				scored(2, "c", "기쁨", 2, 0.5),
			},
			want: []EmotionWeight{
				{Emotion: "기쁨", Weight: 3},
				{Emotion: "피곤", Weight: 0.5},
			},
		},
		"non-positive-similarity-skipped": {
			results: []ScoredExample{
				scored(0, "a", "불안", 5, 0),
				scored(1, "b", "슬픔", 3, -0.4),
				scored(2, "c", "기쁨", 1, 0.1),
			},
			want: []EmotionWeight{
				{Emotion: "기쁨", Weight: 0.1},
			},
		},
		"ties-keep-first-appearance": {
			results: []ScoredExample{
				scored(0, "a", "슬픔", 1, 0.5),
				scored(1, "b", "분노", 1, 0.5),
				scored(2, "c", "불안", 1, 0.5),
			},
			want: []EmotionWeight{
				{Emotion: "슬픔", Weight: 0.5},
				{Emotion: "분노", Weight: 0.5},
				{Emotion: "불안", Weight: 0.5},
			},
		},
		"empty": {
			results: nil,
			want:    nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := AggregateEmotionWeights(tt.results)
			require.Len(t, got, len(tt.want))
			for i := range tt.want {
				assert.Equal(t, tt.want[i].Emotion, got[i].Emotion)
				assert.InDelta(t, tt.want[i].Weight, got[i].Weight, 1e-12)
			}
		})
	}
}

func TestNormalizePercentages(t *testing.T) {
	tests := map[string]struct {
		weights []EmotionWeight
		want    []int
	}{
		"single-entry": {
			weights: []EmotionWeight{{Emotion: "기쁨", Weight: 0.7}},
			want:    []int{100},
		},
		"three-equal-weights-first-gets-residual": {
			weights: []EmotionWeight{
				{Emotion: "슬픔", Weight: 1},
				{Emotion: "분노", Weight: 1},
				{Emotion: "불안", Weight: 1},
			},
			want: []int{34, 33, 33},
		},
		"exact-split": {
			weights: []EmotionWeight{
				{Emotion: "기쁨", Weight: 3},
				{Emotion: "피곤", Weight: 1},
			},
			want: []int{75, 25},
		},
		"largest-fraction-wins": {
			// raw: 57.142857, 28.571428, 14.285714
			weights: []EmotionWeight{
				{Emotion: "a", Weight: 4},
				{Emotion: "b", Weight: 2},
				{Emotion: "c", Weight: 1},
			},
			want: []int{57, 29, 14},
		},
		"fraction-tie-goes-to-higher-weight": {
			// raw: 62.5, 37.5
			weights: []EmotionWeight{
				{Emotion: "a", Weight: 5},
				{Emotion: "b", Weight: 3},
			},
			want: []int{63, 37},
		},
		"empty": {
			weights: nil,
			want:    nil,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := NormalizePercentages(tt.weights)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePercentages_ScalingInvariance(t *testing.T) {
	base := []EmotionWeight{
		{Emotion: "a", Weight: 2.168},
		{Emotion: "b", Weight: 0.530},
		{Emotion: "c", Weight: 0.487},
	}
	want := NormalizePercentages(base)

	for _, factor := range []float64{0.001, 0.1, 3, 7.5, 1000} {
		scaled := make([]EmotionWeight, len(base))
		for i, w := range base {
			scaled[i] = EmotionWeight{Emotion: w.Emotion, Weight: w.Weight * factor}
		}
		assert.Equal(t, want, NormalizePercentages(scaled), "factor %v", factor)
	}

	equal := []EmotionWeight{{Emotion: "a", Weight: 1}, {Emotion: "b", Weight: 1}, {Emotion: "c", Weight: 1}}
	for _, factor := range []float64{0.1, 0.3, 7} {
		scaled := make([]EmotionWeight, len(equal))
		for i, w := range equal {
			scaled[i] = EmotionWeight{Emotion: w.Emotion, Weight: w.Weight * factor}
		}
		assert.Equal(t, []int{34, 33, 33}, NormalizePercentages(scaled), "factor %v", factor)
	}
}

func TestBuildAnalysisResult(t *testing.T) {
	tests := map[string]struct {
		results     []ScoredExample
		wantEmo     map[EmotionLabel]int
		wantPrimary EmotionLabel
		wantPct     int
		wantCtx     int
	}{
		"no-results-neutral": {
			results:     nil,
			wantEmo:     map[EmotionLabel]int{NeutralEmotionLabel: 100},
			wantPrimary: NeutralEmotionLabel,
			wantPct:     100,
			wantCtx:     0,
		},
		"all-non-positive-neutral-keeps-contexts": {
			results: []ScoredExample{
				scored(0, "a", "슬픔", 3, -0.2),
				scored(1, "b", "분노", 5, 0),
			},
			wantEmo:     map[EmotionLabel]int{NeutralEmotionLabel: 100},
			wantPrimary: NeutralEmotionLabel,
			wantPct:     100,
			wantCtx:     2,
		},
		"single-neighbour": {
			results:     []ScoredExample{scored(0, "a", "기쁨", 4, 0.8)},
			wantEmo:     map[EmotionLabel]int{"기쁨": 100},
			wantPrimary: "기쁨",
			wantPct:     100,
			wantCtx:     1,
		},
		"top-three-only": {
			results: []ScoredExample{
				scored(0, "a", "피곤", 5, 0.9),
				scored(1, "b", "불안", 4, 0.5),
				scored(2, "c", "외로움", 3, 0.4),
				scored(3, "d", "기쁨", 1, 0.1),
			},
			wantEmo:     map[EmotionLabel]int{"피곤": 58, "불안": 26, "외로움": 16},
			wantPrimary: "피곤",
			wantPct:     58,
			wantCtx:     4,
		},
		"equal-weights-primary-is-first-retrieved": {
			results: []ScoredExample{
				scored(0, "a", "슬픔", 1, 0.5),
				scored(1, "b", "분노", 1, 0.5),
				scored(2, "c", "불안", 1, 0.5),
			},
			wantEmo:     map[EmotionLabel]int{"슬픔": 34, "분노": 33, "불안": 33},
			wantPrimary: "슬픔",
			wantPct:     34,
			wantCtx:     3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := BuildAnalysisResult("input", tt.results)
			assert.Equal(t, "input", got.Input)
			assert.Equal(t, tt.wantEmo, got.Emotions)
			assert.Equal(t, 100, sumPercents(got.Emotions))
			assert.Equal(t, tt.wantPrimary, got.PrimaryEmotion)
			assert.Equal(t, tt.wantPct, got.PrimaryPercentage)
			assert.Equal(t, got.PrimaryPercentage, got.PrimaryIntensity)
			assert.Len(t, got.SimilarContexts, tt.wantCtx)
			assert.NotNil(t, got.SimilarContexts)
		})
	}
}

func TestToSimilarContexts_RoundsSimilarity(t *testing.T) {
	got := ToSimilarContexts([]ScoredExample{
		scored(0, "a", "기쁨", 4, 0.123456789),
		scored(1, "b", "피곤", 2, 0.99995),
	})
	require.Len(t, got, 2)
	assert.Equal(t, 0.1235, got[0].Similarity)
	assert.Equal(t, "a", got[0].Text)
	assert.Equal(t, EmotionLabel("기쁨"), got[0].Emotion)
	assert.Equal(t, 4, got[0].Intensity)
	assert.InDelta(t, 1.0, got[1].Similarity, 1e-12)
}

func TestSeedExample_Validate(t *testing.T) {
	tests := map[string]struct {
		example SeedExample
		wantErr bool
	}{
		"valid":              {example: SeedExample{Text: "행복해", Emotion: "기쁨", Intensity: 3}},
		"blank-text":         {example: SeedExample{Text: "  ", Emotion: "기쁨", Intensity: 3}, wantErr: true},
		"blank-emotion":      {example: SeedExample{Text: "행복해", Emotion: "", Intensity: 3}, wantErr: true},
		"intensity-too-low":  {example: SeedExample{Text: "행복해", Emotion: "기쁨", Intensity: 0}, wantErr: true},
		"intensity-too-high": {example: SeedExample{Text: "행복해", Emotion: "기쁨", Intensity: 6}, wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.example.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
