package http

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/bomi/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/bomi/internal/usecases"
	"github.com/rs/cors"
)

//go:generate go tool oapi-codegen -config gen/config.yaml gen/openapi.yaml

var _ gen.ServerInterface = (*BomiServer)(nil)

// BomiServer is the REST API HTTP server of the emotion engine, the daily
// mood check and the dashboard.
type BomiServer struct {
	Port                       int                            `config:"HTTP_PORT" default:"8080"`
	Logger                     *log.Logger                    `resolve:""`
	GetEngineHealthUseCase     usecases.GetEngineHealth       `resolve:""`
	BootstrapIndexUseCase      usecases.BootstrapEmotionIndex `resolve:""`
	AnalyzeEmotionUseCase      usecases.AnalyzeEmotion        `resolve:""`
	ListMoodCardsUseCase       usecases.ListMoodCards         `resolve:""`
	SelectDailyMoodUseCase     usecases.SelectDailyMood       `resolve:""`
	GetDailyMoodStatusUseCase  usecases.GetDailyMoodStatus    `resolve:""`
	ListEmotionHistoryUseCase  usecases.ListEmotionHistory    `resolve:""`
	GetWeeklyMoodReportUseCase usecases.GetWeeklyMoodReport   `resolve:""`
	GetLatestReportUseCase     usecases.GetLatestWeeklyReport `resolve:""`
}

// Handler builds the routed, instrumented and CORS enabled handler.
func (api BomiServer) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/introspect", IntrospectHandler(api.GetEngineHealthUseCase))

	h := gen.HandlerWithOptions(api, gen.StdHTTPServerOptions{
		BaseRouter: mux,
		Middlewares: []gen.MiddlewareFunc{
			telemetry.Middleware("bomi-api"),
		},
		ErrorHandlerFunc: func(w http.ResponseWriter, _ *http.Request, err error) {
			respondJSON(w, http.StatusBadRequest, gen.ErrorResp{Error: errInputInvalid, Detail: err.Error()})
		},
	})

	// Apply CORS at the top-level so preflight requests hit it, too.
	return cors.AllowAll().Handler(h)
}

// Run starts the HTTP server and stops it when ctx is cancelled.
func (api BomiServer) Run(ctx context.Context) error {
	s := &http.Server{
		Handler:           api.Handler(),
		Addr:              fmt.Sprintf(":%d", api.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.Logger.Printf("BomiServer: Listening on port %d", api.Port)
		errCh <- s.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := s.Shutdown(shutdownCtx)
		if err != nil {
			api.Logger.Printf("BomiServer: error during shutdown: %v", err)
		} else {
			api.Logger.Println("BomiServer: stopped")
		}
		return err
	case err := <-errCh:
		return err
	}
}

// IsReady polls the health endpoint.
func (api BomiServer) IsReady(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("http://:%d/api/health", api.Port), nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}
