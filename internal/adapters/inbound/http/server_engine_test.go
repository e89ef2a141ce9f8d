package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/bomi/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = log.New(io.Discard, "", 0)

func serializeJSON(t *testing.T, v any) []byte {
	t.Helper()

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return data
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func TestBomiServer_GetHealth(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*usecases.MockGetEngineHealth)
		expectedStatus int
		expectedBody   *gen.HealthResp
		expectedError  *gen.ErrorResp
	}{
		"ready": {
			setupMocks: func(m *usecases.MockGetEngineHealth) {
				m.EXPECT().Query(mock.Anything).Return(domain.EngineHealth{Status: "ok", VectorStoreCount: 4, Ready: true}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.HealthResp{Status: "ok", VectorStoreCount: 4, Ready: true},
		},
		"not-ready": {
			setupMocks: func(m *usecases.MockGetEngineHealth) {
				m.EXPECT().Query(mock.Anything).Return(domain.EngineHealth{Status: "not_ready"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   &gen.HealthResp{Status: "not_ready"},
		},
		"count-error": {
			setupMocks: func(m *usecases.MockGetEngineHealth) {
				m.EXPECT().Query(mock.Anything).Return(domain.EngineHealth{}, errors.New("disk gone"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  &gen.ErrorResp{Error: "internal error", Detail: "internal server error"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := usecases.NewMockGetEngineHealth(t)
			tt.setupMocks(m)

			server := BomiServer{Logger: discardLogger, GetEngineHealthUseCase: m}

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.HealthResp](t, w))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeJSON[gen.ErrorResp](t, w))
			}
		})
	}
}

func TestBomiServer_InitEmotionIndex(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*usecases.MockBootstrapEmotionIndex)
		expectedStatus int
		expectedBody   *gen.InitResp
		expectedError  *gen.ErrorResp
	}{
		"success": {
			setupMocks: func(m *usecases.MockBootstrapEmotionIndex) {
				m.EXPECT().Execute(mock.Anything).Return(domain.BootstrapResult{
					Status:        "success",
					Message:       "Vector store initialized with 4 documents",
					DocumentCount: 4,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &gen.InitResp{
				Status:        "success",
				Message:       "Vector store initialized with 4 documents",
				DocumentCount: 4,
			},
		},
		"bootstrap-failed": {
			setupMocks: func(m *usecases.MockBootstrapEmotionIndex) {
				m.EXPECT().Execute(mock.Anything).Return(domain.BootstrapResult{},
					domain.NewBootstrapFailedErr(domain.NewCorpusInvalidErr("record %d: text is required", 2)))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &gen.ErrorResp{
				Error:  "bootstrap failed",
				Detail: "bootstrap failed: corpus invalid: record 2: text is required",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := usecases.NewMockBootstrapEmotionIndex(t)
			tt.setupMocks(m)

			server := BomiServer{Logger: discardLogger, BootstrapIndexUseCase: m}

			req := httptest.NewRequest(http.MethodPost, "/api/init", nil)
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.InitResp](t, w))
			}
			if tt.expectedError != nil {
				assert.Equal(t, *tt.expectedError, decodeJSON[gen.ErrorResp](t, w))
			}
		})
	}
}

func TestBomiServer_AnalyzeEmotion(t *testing.T) {
	analysis := domain.AnalysisResult{
		Input:             "오늘 정말 기분이 좋아요!",
		Emotions:          map[domain.EmotionLabel]int{"기쁨": 89, "피곤": 11},
		PrimaryEmotion:    "기쁨",
		PrimaryPercentage: 89,
		PrimaryIntensity:  89,
		SimilarContexts: []domain.SimilarContext{
			{Text: "오늘 정말 기분이 좋아요", Emotion: "기쁨", Intensity: 4, Similarity: 0.9412},
		},
	}

	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*usecases.MockAnalyzeEmotion)
		expectedStatus int
		expectedBody   *gen.AnalysisResult
		expectedError  string
	}{
		"success": {
			requestBody: serializeJSON(t, gen.AnalyzeEmotionJSONRequestBody{Text: "오늘 정말 기분이 좋아요!"}),
			setupMocks: func(m *usecases.MockAnalyzeEmotion) {
				m.EXPECT().Execute(mock.Anything, "오늘 정말 기분이 좋아요!").Return(analysis, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: &gen.AnalysisResult{
				Input:             "오늘 정말 기분이 좋아요!",
				Emotions:          map[string]int{"기쁨": 89, "피곤": 11},
				PrimaryEmotion:    "기쁨",
				PrimaryPercentage: 89,
				PrimaryIntensity:  89,
				SimilarContexts: []gen.SimilarContext{
					{Text: "오늘 정말 기분이 좋아요", Emotion: "기쁨", Intensity: 4, Similarity: 0.9412},
				},
			},
		},
		"blank-text": {
			requestBody: serializeJSON(t, gen.AnalyzeEmotionJSONRequestBody{Text: "  "}),
			setupMocks: func(m *usecases.MockAnalyzeEmotion) {
				m.EXPECT().Execute(mock.Anything, "  ").Return(domain.AnalysisResult{}, domain.NewAnalysisInputEmptyErr())
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "input invalid",
		},
		"malformed-json": {
			requestBody:    []byte(`{"text": `),
			setupMocks:     func(m *usecases.MockAnalyzeEmotion) {},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "input invalid",
		},
		"model-unavailable": {
			requestBody: serializeJSON(t, gen.AnalyzeEmotionJSONRequestBody{Text: "안녕"}),
			setupMocks: func(m *usecases.MockAnalyzeEmotion) {
				m.EXPECT().Execute(mock.Anything, "안녕").Return(domain.AnalysisResult{},
					domain.NewIndexUnavailableErr(domain.NewModelUnavailableErr("ai/embeddinggemma", errors.New("connection refused"))))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedError:  "model unavailable",
		},
		"unexpected-error": {
			requestBody: serializeJSON(t, gen.AnalyzeEmotionJSONRequestBody{Text: "안녕"}),
			setupMocks: func(m *usecases.MockAnalyzeEmotion) {
				m.EXPECT().Execute(mock.Anything, "안녕").Return(domain.AnalysisResult{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal error",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m := usecases.NewMockAnalyzeEmotion(t)
			tt.setupMocks(m)

			server := BomiServer{Logger: discardLogger, AnalyzeEmotionUseCase: m}

			req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			server.Handler().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != nil {
				assert.Equal(t, *tt.expectedBody, decodeJSON[gen.AnalysisResult](t, w))
			}
			if tt.expectedError != "" {
				resp := decodeJSON[gen.ErrorResp](t, w)
				assert.Equal(t, tt.expectedError, resp.Error)
				assert.NotEmpty(t, resp.Detail)
			}
		})
	}
}

func TestToErrorResp(t *testing.T) {
	tests := map[string]struct {
		err            error
		expectedStatus int
		expectedError  string
	}{
		"validation":        {err: domain.NewValidationErr("user_id is required"), expectedStatus: http.StatusBadRequest, expectedError: "input invalid"},
		"input-empty":       {err: domain.NewAnalysisInputEmptyErr(), expectedStatus: http.StatusBadRequest, expectedError: "input invalid"},
		"not-found":         {err: domain.NewNotFoundErr("no weekly report generated yet"), expectedStatus: http.StatusNotFound, expectedError: "not found"},
		"model-unavailable": {err: domain.NewModelUnavailableErr("m", nil), expectedStatus: http.StatusServiceUnavailable, expectedError: "model unavailable"},
		"index-unavailable": {err: domain.NewIndexUnavailableErr(errors.New("x")), expectedStatus: http.StatusServiceUnavailable, expectedError: "model unavailable"},
		"bootstrap-wraps-model": {
			err:            domain.NewBootstrapFailedErr(domain.NewModelUnavailableErr("m", errors.New("x"))),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "bootstrap failed",
		},
		"corpus-invalid": {err: domain.NewCorpusInvalidErr("bad"), expectedStatus: http.StatusInternalServerError, expectedError: "internal error"},
		"wrapped-not-found": {
			err:            errors.Join(errors.New("lookup"), domain.NewNotFoundErr("missing")),
			expectedStatus: http.StatusNotFound,
			expectedError:  "not found",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			status, resp := toErrorResp(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}
