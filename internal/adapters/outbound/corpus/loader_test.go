package corpus

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedCorpusLoader_Load(t *testing.T) {
	tests := map[string]struct {
		path        string
		expected    []domain.SeedExample
		expectedErr string
	}{
		"valid-corpus": {
			path: filepath.Join("testdata", "seeds.json"),
			expected: []domain.SeedExample{
				{Text: "오늘 정말 기분이 좋아요", Emotion: "기쁨", Intensity: 4},
				{Text: "너무 피곤해요", Emotion: "피곤", Intensity: 5},
				{Text: "불안해서 잠을 못 잤어요", Emotion: "불안", Intensity: 4},
				{Text: "아무도 날 이해 못 해", Emotion: "외로움", Intensity: 3},
			},
		},
		"duplicates-keep-first-occurrence": {
			path: filepath.Join("testdata", "duplicates.json"),
			expected: []domain.SeedExample{
				{Text: "너무 피곤해요", Emotion: "피곤", Intensity: 5},
				{Text: "너무 피곤해요", Emotion: "슬픔", Intensity: 2},
				{Text: "오늘 정말 기분이 좋아요", Emotion: "기쁨", Intensity: 4},
			},
		},
		"truncated-json": {
			path:        filepath.Join("testdata", "truncated.json"),
			expectedErr: "corpus invalid: malformed JSON",
		},
		"missing-file": {
			path:        filepath.Join("testdata", "does-not-exist.json"),
			expectedErr: "corpus invalid: failed to read",
		},
		"empty-path": {
			path:        "  ",
			expectedErr: "corpus invalid: corpus path is empty",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := SeedCorpusLoader{}.Load(context.Background(), tt.path)
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.IsType(t, &domain.CorpusInvalidErr{}, err)
				assert.ErrorContains(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParse_Validation(t *testing.T) {
	tests := map[string]struct {
		input       string
		expectedErr string
	}{
		"root-object":        {input: `{"text":"a"}`, expectedErr: "root element must be a JSON array"},
		"empty-input":        {input: ``, expectedErr: "root element must be a JSON array"},
		"record-not-object":  {input: `[1]`, expectedErr: "record 0 is not an object"},
		"null-record":        {input: `[null]`, expectedErr: "record 0 is not an object"},
		"missing-text":       {input: `[{"emotion":"기쁨","intensity":3}]`, expectedErr: `record 0: missing field "text"`},
		"missing-intensity":  {input: `[{"text":"a","emotion":"기쁨","intensity":3},{"text":"b","emotion":"기쁨"}]`, expectedErr: `record 1: missing field "intensity"`},
		"text-not-string":    {input: `[{"text":5,"emotion":"기쁨","intensity":3}]`, expectedErr: "record 0: text must be a string"},
		"blank-text":         {input: `[{"text":"   ","emotion":"기쁨","intensity":3}]`, expectedErr: "record 0: text must not be blank"},
		"emotion-not-string": {input: `[{"text":"a","emotion":[],"intensity":3}]`, expectedErr: "record 0: emotion must be a string"},
		"blank-emotion":      {input: `[{"text":"a","emotion":"","intensity":3}]`, expectedErr: "record 0: emotion must not be blank"},
		"fractional":         {input: `[{"text":"a","emotion":"기쁨","intensity":2.5}]`, expectedErr: "record 0: intensity must be an integer"},
		"intensity-string":   {input: `[{"text":"a","emotion":"기쁨","intensity":"3"}]`, expectedErr: "record 0: intensity must be an integer"},
		"intensity-too-high": {input: `[{"text":"a","emotion":"기쁨","intensity":6}]`, expectedErr: "record 0: intensity must be between 1 and 5, got 6"},
		"intensity-too-low":  {input: `[{"text":"a","emotion":"기쁨","intensity":0}]`, expectedErr: "record 0: intensity must be between 1 and 5, got 0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.IsType(t, &domain.CorpusInvalidErr{}, err)
			assert.ErrorContains(t, err, tt.expectedErr)
		})
	}
}

func TestParse_EmptyArray(t *testing.T) {
	got, err := Parse([]byte(` [ ] `))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestInitSeedCorpusLoader_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitSeedCorpusLoader{}.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.SeedCorpusLoader]()
	assert.NoError(t, err)
}
