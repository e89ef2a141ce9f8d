package http

import (
	"net/http"

	"github.com/cleitonmarx/bomi/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/bomi/internal/usecases"
	"github.com/google/uuid"
)

func (api BomiServer) GetEmotionHistory(w http.ResponseWriter, r *http.Request, params gen.GetEmotionHistoryParams) {
	days := usecases.DefaultHistoryDays
	if params.Days != nil {
		days = *params.Days
	}

	selections, err := api.ListEmotionHistoryUseCase.Query(r.Context(), uuid.UUID(params.UserId), days)
	if err != nil {
		api.Logger.Printf("Error listing emotion history: %v", err)
		respondError(w, err)
		return
	}

	resp := gen.EmotionHistoryResp{Data: []gen.EmotionHistoryEntry{}}
	for _, s := range selections {
		resp.Data = append(resp.Data, toHistoryEntry(s))
	}
	respondJSON(w, http.StatusOK, resp)
}

func (api BomiServer) GetWeeklyMoodReport(w http.ResponseWriter, r *http.Request, params gen.GetWeeklyMoodReportParams) {
	var weekStart string
	if params.WeekStart != nil {
		weekStart = *params.WeekStart
	}

	report, err := api.GetWeeklyMoodReportUseCase.Query(r.Context(), uuid.UUID(params.UserId), weekStart)
	if err != nil {
		api.Logger.Printf("Error building weekly mood report: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toWeeklyMoodReport(report))
}

func (api BomiServer) GetLatestWeeklyReport(w http.ResponseWriter, r *http.Request, params gen.GetLatestWeeklyReportParams) {
	snapshot, err := api.GetLatestReportUseCase.Query(r.Context(), uuid.UUID(params.UserId))
	if err != nil {
		api.Logger.Printf("Error reading latest weekly report: %v", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toWeeklyReportSnapshot(snapshot))
}
