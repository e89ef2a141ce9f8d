package http

import (
	"net/http"

	"github.com/cleitonmarx/bomi/internal/adapters/inbound/http/gen"
)

func (api BomiServer) GetHealth(w http.ResponseWriter, r *http.Request) {
	health, err := api.GetEngineHealthUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error reading engine health: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, gen.HealthResp{
		Status:           health.Status,
		VectorStoreCount: health.VectorStoreCount,
		Ready:            health.Ready,
	})
}

func (api BomiServer) InitEmotionIndex(w http.ResponseWriter, r *http.Request) {
	result, err := api.BootstrapIndexUseCase.Execute(r.Context())
	if err != nil {
		api.Logger.Printf("Error bootstrapping emotion index: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, gen.InitResp{
		Status:        result.Status,
		Message:       result.Message,
		DocumentCount: result.DocumentCount,
	})
}

func (api BomiServer) AnalyzeEmotion(w http.ResponseWriter, r *http.Request) {
	var req gen.AnalyzeEmotionJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := api.AnalyzeEmotionUseCase.Execute(r.Context(), req.Text)
	if err != nil {
		api.Logger.Printf("Error analyzing emotion: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toAnalysisResult(result))
}
