package embedding

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	embed func(texts []string) ([][]float64, error)
}

func (f fakeModel) Name() string { return "fake" }

func (f fakeModel) Embed(_ context.Context, texts []string) ([][]float64, error) {
	return f.embed(texts)
}

func fixedDimension(dim int) fakeModel {
	return fakeModel{embed: func(texts []string) ([][]float64, error) {
		out := make([][]float64, len(texts))
		for i := range texts {
			v := make([]float64, dim)
			v[0] = 1
			out[i] = v
		}
		return out, nil
	}}
}

func staticLoader(m Model) ModelLoader {
	return func(context.Context) (Model, error) { return m, nil }
}

func TestLazyEmbedder_Embed(t *testing.T) {
	tests := map[string]struct {
		loader      ModelLoader
		text        string
		expectedErr error
		expectedDim int
	}{
		"success": {
			loader:      staticLoader(fixedDimension(4)),
			text:        "행복해",
			expectedDim: 4,
		},
		"blank-text": {
			loader:      staticLoader(fixedDimension(4)),
			text:        "   ",
			expectedErr: &domain.EmbeddingInputInvalidErr{},
		},
		"load-failure": {
			loader: func(context.Context) (Model, error) {
				return nil, errors.New("connection refused")
			},
			text:        "행복해",
			expectedErr: &domain.ModelUnavailableErr{},
		},
		"model-error": {
			loader: staticLoader(fakeModel{embed: func([]string) ([][]float64, error) {
				return nil, errors.New("boom")
			}}),
			text:        "행복해",
			expectedErr: &domain.ModelUnavailableErr{},
		},
		"empty-vector": {
			loader: staticLoader(fakeModel{embed: func(texts []string) ([][]float64, error) {
				return [][]float64{{}}, nil
			}}),
			text:        "행복해",
			expectedErr: &domain.ModelUnavailableErr{},
		},
		"zero-vector": {
			loader: staticLoader(fakeModel{embed: func(texts []string) ([][]float64, error) {
				return [][]float64{{0, 0, 0, 0}}, nil
			}}),
			text:        "행복해",
			expectedErr: &domain.ModelUnavailableErr{},
		},
		"nan-vector": {
			loader: staticLoader(fakeModel{embed: func(texts []string) ([][]float64, error) {
				return [][]float64{{math.NaN(), 1, 0, 0}}, nil
			}}),
			text:        "행복해",
			expectedErr: &domain.ModelUnavailableErr{},
		},
		"count-mismatch": {
			loader: staticLoader(fakeModel{embed: func(texts []string) ([][]float64, error) {
				return nil, nil
			}}),
			text:        "행복해",
			expectedErr: &domain.ModelUnavailableErr{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := NewLazyEmbedder("fake", tt.loader)

			v, err := e.Embed(context.Background(), tt.text)
			if tt.expectedErr != nil {
				assert.IsType(t, tt.expectedErr, err)
				assert.Nil(t, v)
				assert.Equal(t, 0, e.Dimension())
				return
			}

			require.NoError(t, err)
			assert.Len(t, v, tt.expectedDim)
			assert.Equal(t, tt.expectedDim, e.Dimension())
		})
	}
}

func TestLazyEmbedder_EmbedBatch(t *testing.T) {
	e := NewLazyEmbedder("fake", staticLoader(fixedDimension(3)))

	out, err := e.EmbedBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 0, e.Dimension())

	_, err = e.EmbedBatch(context.Background(), []string{"a", " "})
	var invalid *domain.EmbeddingInputInvalidErr
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, err.Error(), "index 1")

	out, err = e.EmbedBatch(context.Background(), []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, 3, e.Dimension())
}

func TestLazyEmbedder_RejectsDimensionChange(t *testing.T) {
	var calls atomic.Int32
	model := fakeModel{embed: func(texts []string) ([][]float64, error) {
		dim := 3
		if calls.Add(1) > 1 {
			dim = 5
		}
		return [][]float64{make([]float64, dim)}, nil
	}}
	e := NewLazyEmbedder("fake", staticLoader(model))

	_, err := e.Embed(context.Background(), "first")
	require.NoError(t, err)
	assert.Equal(t, 3, e.Dimension())

	_, err = e.Embed(context.Background(), "second")
	var unavailable *domain.ModelUnavailableErr
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 3, e.Dimension())
}

func TestLazyEmbedder_FailedLoadIsRetriedOnNextCall(t *testing.T) {
	var loads atomic.Int32
	e := NewLazyEmbedder("fake", func(context.Context) (Model, error) {
		if loads.Add(1) == 1 {
			return nil, errors.New("not yet")
		}
		return fixedDimension(2), nil
	})

	_, err := e.Embed(context.Background(), "a")
	var unavailable *domain.ModelUnavailableErr
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, err.Error(), `"fake"`)

	_, err = e.Embed(context.Background(), "a")
	require.NoError(t, err)

	_, err = e.Embed(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, int32(2), loads.Load())
}

func TestLazyEmbedder_LoadsOnceUnderConcurrency(t *testing.T) {
	var loads atomic.Int32
	e := NewLazyEmbedder("fake", func(context.Context) (Model, error) {
		loads.Add(1)
		return fixedDimension(8), nil
	})

	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := e.Embed(context.Background(), "동시에")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), loads.Load())
	assert.Equal(t, 8, e.Dimension())
}
