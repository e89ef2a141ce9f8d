package usecases

import (
	"context"
	"testing"

	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetEngineHealthImpl_Query(t *testing.T) {
	tests := map[string]struct {
		count   int
		err     error
		want    domain.EngineHealth
		wantErr bool
	}{
		"ready":     {count: 42, want: domain.EngineHealth{Status: "ok", VectorStoreCount: 42, Ready: true}},
		"not-ready": {count: 0, want: domain.EngineHealth{Status: "not_ready", VectorStoreCount: 0, Ready: false}},
		"count-error": {
			err:     assert.AnError,
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			index := domain.NewMockEmotionIndex(t)
			index.EXPECT().Count(mock.Anything).Return(tt.count, tt.err)

			got, err := NewGetEngineHealthImpl(index).Query(context.Background())
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInitGetEngineHealth_Initialize(t *testing.T) {
	t.Cleanup(depend.ClearContainer)

	_, err := InitGetEngineHealth{}.Initialize(context.Background())
	assert.NoError(t, err)

	registered, err := depend.Resolve[GetEngineHealth]()
	assert.NoError(t, err)
	assert.NotNil(t, registered)
}
