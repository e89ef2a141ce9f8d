// Package gen provides primitives to interact with the openapi HTTP API.
//
// The file is maintained by hand to match the std-http output of
// oapi-codegen v2.5.1 for openapi.yaml. Running go generate on the http
// package replaces it with the generated equivalent; api_contract_test.go
// keeps the two in step until then.
package gen

import (
	"fmt"
	"net/http"
	"time"

	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for MoodSentiment.
const (
	Negative MoodSentiment = "negative"
	Neutral  MoodSentiment = "neutral"
	Positive MoodSentiment = "positive"
)

// AnalysisResult defines model for AnalysisResult.
type AnalysisResult struct {
	Emotions       map[string]int `json:"emotions"`
	Input          string         `json:"input"`
	PrimaryEmotion string         `json:"primary_emotion"`
	// Deprecated: this property has been marked as deprecated upstream, but no `x-deprecated-reason` was set
	PrimaryIntensity  int              `json:"primary_intensity"`
	PrimaryPercentage int              `json:"primary_percentage"`
	SimilarContexts   []SimilarContext `json:"similar_contexts"`
}

// AnalyzeReq defines model for AnalyzeReq.
type AnalyzeReq struct {
	Text string `json:"text"`
}

// DailyMoodSticker defines model for DailyMoodSticker.
type DailyMoodSticker struct {
	CharacterCode *string            `json:"character_code"`
	Date          openapi_types.Date `json:"date"`
	EmotionCode   *string            `json:"emotion_code"`
	EmotionLabel  *string            `json:"emotion_label"`
	HasRecord     bool               `json:"has_record"`
	Weekday       string             `json:"weekday"`
}

// DailyMoodStatus defines model for DailyMoodStatus.
type DailyMoodStatus struct {
	Completed       bool                `json:"completed"`
	LastCheckDate   *openapi_types.Date `json:"last_check_date"`
	SelectedImageId *int                `json:"selected_image_id"`
	UserId          openapi_types.UUID  `json:"user_id"`
}

// EmotionHistoryEntry defines model for EmotionHistoryEntry.
type EmotionHistoryEntry struct {
	CreatedAt        time.Time          `json:"created_at"`
	Description      string             `json:"description"`
	Emotions         map[string]int     `json:"emotions"`
	Id               openapi_types.UUID `json:"id"`
	ImageId          int                `json:"image_id"`
	PrimaryEmotion   string             `json:"primary_emotion"`
	SelectedDate     openapi_types.Date `json:"selected_date"`
	SentimentOverall MoodSentiment      `json:"sentiment_overall"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// EmotionHistoryResp defines model for EmotionHistoryResp.
type EmotionHistoryResp struct {
	Data []EmotionHistoryEntry `json:"data"`
}

// ErrorResp defines model for ErrorResp.
type ErrorResp struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// HealthResp defines model for HealthResp.
type HealthResp struct {
	Ready            bool   `json:"ready"`
	Status           string `json:"status"`
	VectorStoreCount int    `json:"vector_store_count"`
}

// InitResp defines model for InitResp.
type InitResp struct {
	DocumentCount int    `json:"document_count"`
	Message       string `json:"message"`
	Status        string `json:"status"`
}

// MoodImage defines model for MoodImage.
type MoodImage struct {
	Description string        `json:"description"`
	Id          int           `json:"id"`
	Sentiment   MoodSentiment `json:"sentiment"`
}

// MoodImagesResp defines model for MoodImagesResp.
type MoodImagesResp struct {
	Images []MoodImage `json:"images"`
}

// MoodSentiment defines model for MoodSentiment.
type MoodSentiment string

// SelectMoodImageReq defines model for SelectMoodImageReq.
type SelectMoodImageReq struct {
	ImageId int                `json:"image_id"`
	UserId  openapi_types.UUID `json:"user_id"`
}

// SelectMoodImageResp defines model for SelectMoodImageResp.
type SelectMoodImageResp struct {
	EmotionResult AnalysisResult `json:"emotion_result"`
	IsUpdate      bool           `json:"is_update"`
	Message       string         `json:"message"`
	SelectedImage MoodImage      `json:"selected_image"`
	Success       bool           `json:"success"`
}

// SimilarContext defines model for SimilarContext.
type SimilarContext struct {
	Emotion    string  `json:"emotion"`
	Intensity  int     `json:"intensity"`
	Similarity float64 `json:"similarity"`
	Text       string  `json:"text"`
}

// WeeklyEmotionRanking defines model for WeeklyEmotionRanking.
type WeeklyEmotionRanking struct {
	CharacterCode string  `json:"character_code"`
	Code          string  `json:"code"`
	Count         int     `json:"count"`
	Label         string  `json:"label"`
	Percent       float64 `json:"percent"`
	Rank          int     `json:"rank"`
}

// WeeklyMoodReport defines model for WeeklyMoodReport.
type WeeklyMoodReport struct {
	AnalysisText        string                 `json:"analysis_text"`
	DailyCharacters     []DailyMoodSticker     `json:"daily_characters"`
	DominantEmotion     WeeklyEmotionRanking   `json:"dominant_emotion"`
	EmotionRankings     []WeeklyEmotionRanking `json:"emotion_rankings"`
	OverallScorePercent int                    `json:"overall_score_percent"`
	SentimentTimeline   []WeeklySentimentPoint `json:"sentiment_timeline"`
	WeekEnd             openapi_types.Date     `json:"week_end"`
	WeekLabel           string                 `json:"week_label"`
	WeekStart           openapi_types.Date     `json:"week_start"`
}

// WeeklyReportSnapshot defines model for WeeklyReportSnapshot.
type WeeklyReportSnapshot struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Id          openapi_types.UUID `json:"id"`
	Model       string             `json:"model"`
	Narrative   string             `json:"narrative"`
	Report      WeeklyMoodReport   `json:"report"`
	UserId      openapi_types.UUID `json:"user_id"`
	WeekStart   openapi_types.Date `json:"week_start"`
}

// WeeklySentimentPoint defines model for WeeklySentimentPoint.
type WeeklySentimentPoint struct {
	CharacterCode       string        `json:"character_code"`
	PrimaryEmotionCode  string        `json:"primary_emotion_code"`
	PrimaryEmotionLabel string        `json:"primary_emotion_label"`
	SentimentOverall    MoodSentiment `json:"sentiment_overall"`
	SentimentScore      float64       `json:"sentiment_score"`
	Timestamp           time.Time     `json:"timestamp"`
}

// UserID defines model for UserID.
type UserID = openapi_types.UUID

// Error defines model for Error.
type Error = ErrorResp

// GetDailyMoodStatusParams defines parameters for GetDailyMoodStatus.
type GetDailyMoodStatusParams struct {
	UserId UserID `form:"user_id" json:"user_id"`
}

// GetEmotionHistoryParams defines parameters for GetEmotionHistory.
type GetEmotionHistoryParams struct {
	UserId UserID `form:"user_id" json:"user_id"`
	Days   *int   `form:"days,omitempty" json:"days,omitempty"`
}

// GetWeeklyMoodReportParams defines parameters for GetWeeklyMoodReport.
type GetWeeklyMoodReportParams struct {
	UserId UserID `form:"user_id" json:"user_id"`

	// WeekStart Any date of the week, or "last week". Defaults to the current week.
	WeekStart *string `form:"week_start,omitempty" json:"week_start,omitempty"`
}

// GetLatestWeeklyReportParams defines parameters for GetLatestWeeklyReport.
type GetLatestWeeklyReportParams struct {
	UserId UserID `form:"user_id" json:"user_id"`
}

// AnalyzeEmotionJSONRequestBody defines body for AnalyzeEmotion for application/json ContentType.
type AnalyzeEmotionJSONRequestBody = AnalyzeReq

// SelectMoodImageJSONRequestBody defines body for SelectMoodImage for application/json ContentType.
type SelectMoodImageJSONRequestBody = SelectMoodImageReq

// ServerInterface represents all server handlers.
type ServerInterface interface {

	// (POST /api/analyze)
	AnalyzeEmotion(w http.ResponseWriter, r *http.Request)

	// (GET /api/daily-mood-check/images)
	ListMoodImages(w http.ResponseWriter, r *http.Request)

	// (POST /api/daily-mood-check/select)
	SelectMoodImage(w http.ResponseWriter, r *http.Request)

	// (GET /api/daily-mood-check/status)
	GetDailyMoodStatus(w http.ResponseWriter, r *http.Request, params GetDailyMoodStatusParams)

	// (GET /api/dashboard/emotion-history)
	GetEmotionHistory(w http.ResponseWriter, r *http.Request, params GetEmotionHistoryParams)

	// (GET /api/dashboard/weekly-report)
	GetWeeklyMoodReport(w http.ResponseWriter, r *http.Request, params GetWeeklyMoodReportParams)

	// (GET /api/health)
	GetHealth(w http.ResponseWriter, r *http.Request)

	// (POST /api/init)
	InitEmotionIndex(w http.ResponseWriter, r *http.Request)

	// (GET /api/reports/weekly/latest)
	GetLatestWeeklyReport(w http.ResponseWriter, r *http.Request, params GetLatestWeeklyReportParams)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandlerFunc   func(w http.ResponseWriter, r *http.Request, err error)
}

type MiddlewareFunc func(http.Handler) http.Handler

// AnalyzeEmotion operation middleware
func (siw *ServerInterfaceWrapper) AnalyzeEmotion(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.AnalyzeEmotion(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// ListMoodImages operation middleware
func (siw *ServerInterfaceWrapper) ListMoodImages(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.ListMoodImages(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// SelectMoodImage operation middleware
func (siw *ServerInterfaceWrapper) SelectMoodImage(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.SelectMoodImage(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetDailyMoodStatus operation middleware
func (siw *ServerInterfaceWrapper) GetDailyMoodStatus(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetDailyMoodStatusParams

	// ------------- Required query parameter "user_id" -------------

	if paramValue := r.URL.Query().Get("user_id"); paramValue != "" {

	} else {
		siw.ErrorHandlerFunc(w, r, &RequiredParamError{ParamName: "user_id"})
		return
	}

	err = runtime.BindQueryParameter("form", true, true, "user_id", r.URL.Query(), &params.UserId)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "user_id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetDailyMoodStatus(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetEmotionHistory operation middleware
func (siw *ServerInterfaceWrapper) GetEmotionHistory(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetEmotionHistoryParams

	// ------------- Required query parameter "user_id" -------------

	if paramValue := r.URL.Query().Get("user_id"); paramValue != "" {

	} else {
		siw.ErrorHandlerFunc(w, r, &RequiredParamError{ParamName: "user_id"})
		return
	}

	err = runtime.BindQueryParameter("form", true, true, "user_id", r.URL.Query(), &params.UserId)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "user_id", Err: err})
		return
	}

	// ------------- Optional query parameter "days" -------------

	err = runtime.BindQueryParameter("form", true, false, "days", r.URL.Query(), &params.Days)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "days", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetEmotionHistory(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetWeeklyMoodReport operation middleware
func (siw *ServerInterfaceWrapper) GetWeeklyMoodReport(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetWeeklyMoodReportParams

	// ------------- Required query parameter "user_id" -------------

	if paramValue := r.URL.Query().Get("user_id"); paramValue != "" {

	} else {
		siw.ErrorHandlerFunc(w, r, &RequiredParamError{ParamName: "user_id"})
		return
	}

	err = runtime.BindQueryParameter("form", true, true, "user_id", r.URL.Query(), &params.UserId)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "user_id", Err: err})
		return
	}

	// ------------- Optional query parameter "week_start" -------------

	err = runtime.BindQueryParameter("form", true, false, "week_start", r.URL.Query(), &params.WeekStart)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "week_start", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetWeeklyMoodReport(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetHealth(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// InitEmotionIndex operation middleware
func (siw *ServerInterfaceWrapper) InitEmotionIndex(w http.ResponseWriter, r *http.Request) {

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.InitEmotionIndex(w, r)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

// GetLatestWeeklyReport operation middleware
func (siw *ServerInterfaceWrapper) GetLatestWeeklyReport(w http.ResponseWriter, r *http.Request) {

	var err error

	// Parameter object where we will unmarshal all parameters from the context
	var params GetLatestWeeklyReportParams

	// ------------- Required query parameter "user_id" -------------

	if paramValue := r.URL.Query().Get("user_id"); paramValue != "" {

	} else {
		siw.ErrorHandlerFunc(w, r, &RequiredParamError{ParamName: "user_id"})
		return
	}

	err = runtime.BindQueryParameter("form", true, true, "user_id", r.URL.Query(), &params.UserId)
	if err != nil {
		siw.ErrorHandlerFunc(w, r, &InvalidParamFormatError{ParamName: "user_id", Err: err})
		return
	}

	handler := http.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		siw.Handler.GetLatestWeeklyReport(w, r, params)
	}))

	for _, middleware := range siw.HandlerMiddlewares {
		handler = middleware(handler)
	}

	handler.ServeHTTP(w, r)
}

type UnescapedCookieParamError struct {
	ParamName string
	Err       error
}

func (e *UnescapedCookieParamError) Error() string {
	return fmt.Sprintf("error unescaping cookie parameter '%s'", e.ParamName)
}

func (e *UnescapedCookieParamError) Unwrap() error {
	return e.Err
}

type UnmarshalingParamError struct {
	ParamName string
	Err       error
}

func (e *UnmarshalingParamError) Error() string {
	return fmt.Sprintf("Error unmarshaling parameter %s as JSON: %s", e.ParamName, e.Err.Error())
}

func (e *UnmarshalingParamError) Unwrap() error {
	return e.Err
}

type RequiredParamError struct {
	ParamName string
}

func (e *RequiredParamError) Error() string {
	return fmt.Sprintf("Query argument %s is required, but not found", e.ParamName)
}

type RequiredHeaderError struct {
	ParamName string
	Err       error
}

func (e *RequiredHeaderError) Error() string {
	return fmt.Sprintf("Header parameter %s is required, but not found", e.ParamName)
}

func (e *RequiredHeaderError) Unwrap() error {
	return e.Err
}

type InvalidParamFormatError struct {
	ParamName string
	Err       error
}

func (e *InvalidParamFormatError) Error() string {
	return fmt.Sprintf("Invalid format for parameter %s: %s", e.ParamName, e.Err.Error())
}

func (e *InvalidParamFormatError) Unwrap() error {
	return e.Err
}

type TooManyValuesForParamError struct {
	ParamName string
	Count     int
}

func (e *TooManyValuesForParamError) Error() string {
	return fmt.Sprintf("Expected one value for %s, got %d", e.ParamName, e.Count)
}

// Handler creates http.Handler with routing matching OpenAPI spec.
func Handler(si ServerInterface) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{})
}

// ServeMux is an abstraction of http.ServeMux.
type ServeMux interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
	ServeHTTP(w http.ResponseWriter, r *http.Request)
}

type StdHTTPServerOptions struct {
	BaseURL          string
	BaseRouter       ServeMux
	Middlewares      []MiddlewareFunc
	ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request, err error)
}

// HandlerFromMux creates http.Handler with routing matching OpenAPI spec based on the provided mux.
func HandlerFromMux(si ServerInterface, m ServeMux) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseRouter: m,
	})
}

func HandlerFromMuxWithBaseURL(si ServerInterface, m ServeMux, baseURL string) http.Handler {
	return HandlerWithOptions(si, StdHTTPServerOptions{
		BaseURL:    baseURL,
		BaseRouter: m,
	})
}

// HandlerWithOptions creates http.Handler with additional options
func HandlerWithOptions(si ServerInterface, options StdHTTPServerOptions) http.Handler {
	m := options.BaseRouter

	if m == nil {
		m = http.NewServeMux()
	}
	if options.ErrorHandlerFunc == nil {
		options.ErrorHandlerFunc = func(w http.ResponseWriter, r *http.Request, err error) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandlerFunc:   options.ErrorHandlerFunc,
	}

	m.HandleFunc("POST "+options.BaseURL+"/api/analyze", wrapper.AnalyzeEmotion)
	m.HandleFunc("GET "+options.BaseURL+"/api/daily-mood-check/images", wrapper.ListMoodImages)
	m.HandleFunc("POST "+options.BaseURL+"/api/daily-mood-check/select", wrapper.SelectMoodImage)
	m.HandleFunc("GET "+options.BaseURL+"/api/daily-mood-check/status", wrapper.GetDailyMoodStatus)
	m.HandleFunc("GET "+options.BaseURL+"/api/dashboard/emotion-history", wrapper.GetEmotionHistory)
	m.HandleFunc("GET "+options.BaseURL+"/api/dashboard/weekly-report", wrapper.GetWeeklyMoodReport)
	m.HandleFunc("GET "+options.BaseURL+"/api/health", wrapper.GetHealth)
	m.HandleFunc("POST "+options.BaseURL+"/api/init", wrapper.InitEmotionIndex)
	m.HandleFunc("GET "+options.BaseURL+"/api/reports/weekly/latest", wrapper.GetLatestWeeklyReport)

	return m
}
