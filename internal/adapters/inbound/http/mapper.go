package http

import (
	"errors"
	"net/http"

	"github.com/cleitonmarx/bomi/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/bomi/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	errInputInvalid     = "input invalid"
	errNotFound         = "not found"
	errModelUnavailable = "model unavailable"
	errBootstrapFailed  = "bootstrap failed"
	errInternal         = "internal error"
)

func toErrorResp(err error) (int, gen.ErrorResp) {
	var (
		inputEmpty *domain.AnalysisInputEmptyErr
		validation *domain.ValidationErr
		notFound   *domain.NotFoundErr
		model      *domain.ModelUnavailableErr
		index      *domain.IndexUnavailableErr
		bootstrap  *domain.BootstrapFailedErr
	)
	switch {
	case errors.As(err, &bootstrap):
		return http.StatusInternalServerError, gen.ErrorResp{Error: errBootstrapFailed, Detail: bootstrap.Error()}
	case errors.As(err, &inputEmpty):
		return http.StatusBadRequest, gen.ErrorResp{Error: errInputInvalid, Detail: inputEmpty.Error()}
	case errors.As(err, &validation):
		return http.StatusBadRequest, gen.ErrorResp{Error: errInputInvalid, Detail: validation.Error()}
	case errors.As(err, &notFound):
		return http.StatusNotFound, gen.ErrorResp{Error: errNotFound, Detail: notFound.Error()}
	case errors.As(err, &index):
		return http.StatusServiceUnavailable, gen.ErrorResp{Error: errModelUnavailable, Detail: index.Error()}
	case errors.As(err, &model):
		return http.StatusServiceUnavailable, gen.ErrorResp{Error: errModelUnavailable, Detail: model.Error()}
	default:
		return http.StatusInternalServerError, gen.ErrorResp{Error: errInternal, Detail: "internal server error"}
	}
}

func toEmotionMap(emotions map[domain.EmotionLabel]int) map[string]int {
	out := make(map[string]int, len(emotions))
	for k, v := range emotions {
		out[string(k)] = v
	}
	return out
}

func toAnalysisResult(r domain.AnalysisResult) gen.AnalysisResult {
	resp := gen.AnalysisResult{
		Input:             r.Input,
		Emotions:          toEmotionMap(r.Emotions),
		PrimaryEmotion:    string(r.PrimaryEmotion),
		PrimaryPercentage: r.PrimaryPercentage,
		PrimaryIntensity:  r.PrimaryIntensity,
		SimilarContexts:   []gen.SimilarContext{},
	}
	for _, c := range r.SimilarContexts {
		resp.SimilarContexts = append(resp.SimilarContexts, gen.SimilarContext{
			Text:       c.Text,
			Emotion:    string(c.Emotion),
			Intensity:  c.Intensity,
			Similarity: c.Similarity,
		})
	}
	return resp
}

func toMoodImage(c domain.MoodCard) gen.MoodImage {
	return gen.MoodImage{
		Id:          c.ID,
		Sentiment:   gen.MoodSentiment(c.Sentiment),
		Description: c.Description,
	}
}

func toDailyMoodStatus(s domain.DailyMoodStatus) gen.DailyMoodStatus {
	resp := gen.DailyMoodStatus{
		UserId:          openapi_types.UUID(s.UserID),
		Completed:       s.Completed,
		SelectedImageId: s.SelectedImageID,
	}
	if s.LastCheckDate != nil {
		resp.LastCheckDate = &openapi_types.Date{Time: *s.LastCheckDate}
	}
	return resp
}

func toHistoryEntry(s domain.DailyMoodSelection) gen.EmotionHistoryEntry {
	return gen.EmotionHistoryEntry{
		Id:               openapi_types.UUID(s.ID),
		SelectedDate:     openapi_types.Date{Time: s.SelectedDate},
		ImageId:          s.ImageID,
		SentimentOverall: gen.MoodSentiment(s.Sentiment),
		PrimaryEmotion:   string(s.PrimaryEmotion),
		Emotions:         toEmotionMap(s.Emotions),
		Description:      s.Description,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

func toRanking(r domain.WeeklyEmotionRanking) gen.WeeklyEmotionRanking {
	return gen.WeeklyEmotionRanking{
		Rank:          r.Rank,
		Code:          r.Code,
		Label:         r.Label,
		Percent:       r.Percent,
		Count:         r.Count,
		CharacterCode: r.CharacterCode,
	}
}

func toWeeklyMoodReport(r domain.WeeklyMoodReport) gen.WeeklyMoodReport {
	resp := gen.WeeklyMoodReport{
		WeekLabel:           r.WeekLabel,
		WeekStart:           openapi_types.Date{Time: r.WeekStart},
		WeekEnd:             openapi_types.Date{Time: r.WeekEnd},
		OverallScorePercent: r.OverallScorePercent,
		DominantEmotion:     toRanking(r.DominantEmotion),
		DailyCharacters:     []gen.DailyMoodSticker{},
		EmotionRankings:     []gen.WeeklyEmotionRanking{},
		AnalysisText:        r.AnalysisText,
		SentimentTimeline:   []gen.WeeklySentimentPoint{},
	}
	for _, s := range r.DailyCharacters {
		resp.DailyCharacters = append(resp.DailyCharacters, gen.DailyMoodSticker{
			Date:          openapi_types.Date{Time: s.Date},
			Weekday:       s.Weekday,
			EmotionCode:   s.EmotionCode,
			EmotionLabel:  s.EmotionLabel,
			CharacterCode: s.CharacterCode,
			HasRecord:     s.HasRecord,
		})
	}
	for _, rk := range r.EmotionRankings {
		resp.EmotionRankings = append(resp.EmotionRankings, toRanking(rk))
	}
	for _, p := range r.SentimentTimeline {
		resp.SentimentTimeline = append(resp.SentimentTimeline, gen.WeeklySentimentPoint{
			Timestamp:           p.Timestamp,
			SentimentScore:      p.SentimentScore,
			SentimentOverall:    gen.MoodSentiment(p.SentimentOverall),
			PrimaryEmotionCode:  p.PrimaryEmotionCode,
			PrimaryEmotionLabel: p.PrimaryEmotionLabel,
			CharacterCode:       p.CharacterCode,
		})
	}
	return resp
}

func toWeeklyReportSnapshot(s domain.WeeklyReportSnapshot) gen.WeeklyReportSnapshot {
	return gen.WeeklyReportSnapshot{
		Id:          openapi_types.UUID(s.ID),
		UserId:      openapi_types.UUID(s.UserID),
		WeekStart:   openapi_types.Date{Time: s.WeekStart},
		Report:      toWeeklyMoodReport(s.Report),
		Narrative:   s.Narrative,
		Model:       s.Model,
		GeneratedAt: s.GeneratedAt,
	}
}
