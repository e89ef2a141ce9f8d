package http

import (
	"net/http"

	"github.com/cleitonmarx/bomi/internal/adapters/inbound/http/gen"
	"github.com/google/uuid"
)

func (api BomiServer) ListMoodImages(w http.ResponseWriter, r *http.Request) {
	cards, err := api.ListMoodCardsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing mood images: %v", err)
		respondError(w, err)
		return
	}

	resp := gen.MoodImagesResp{Images: []gen.MoodImage{}}
	for _, c := range cards {
		resp.Images = append(resp.Images, toMoodImage(c))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api BomiServer) SelectMoodImage(w http.ResponseWriter, r *http.Request) {
	var req gen.SelectMoodImageJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}

	result, err := api.SelectDailyMoodUseCase.Execute(r.Context(), uuid.UUID(req.UserId), req.ImageId)
	if err != nil {
		api.Logger.Printf("Error selecting mood image: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, gen.SelectMoodImageResp{
		Success:       true,
		SelectedImage: toMoodImage(result.Card),
		EmotionResult: toAnalysisResult(result.Analysis),
		Message:       result.Message,
		IsUpdate:      result.IsUpdate,
	})
}

func (api BomiServer) GetDailyMoodStatus(w http.ResponseWriter, r *http.Request, params gen.GetDailyMoodStatusParams) {
	status, err := api.GetDailyMoodStatusUseCase.Query(r.Context(), uuid.UUID(params.UserId))
	if err != nil {
		api.Logger.Printf("Error reading daily mood status: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toDailyMoodStatus(status))
}
