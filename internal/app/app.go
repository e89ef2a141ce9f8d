package app

import (
	"github.com/cleitonmarx/bomi/internal/adapters/inbound/http"
	"github.com/cleitonmarx/bomi/internal/adapters/inbound/workers"
	"github.com/cleitonmarx/bomi/internal/adapters/outbound/config"
	"github.com/cleitonmarx/bomi/internal/adapters/outbound/corpus"
	"github.com/cleitonmarx/bomi/internal/adapters/outbound/embedding"
	"github.com/cleitonmarx/bomi/internal/adapters/outbound/log"
	"github.com/cleitonmarx/bomi/internal/adapters/outbound/modelrunner"
	"github.com/cleitonmarx/bomi/internal/adapters/outbound/moodcards"
	"github.com/cleitonmarx/bomi/internal/adapters/outbound/postgres"
	"github.com/cleitonmarx/bomi/internal/adapters/outbound/pubsub"
	"github.com/cleitonmarx/bomi/internal/adapters/outbound/time"
	"github.com/cleitonmarx/bomi/internal/adapters/outbound/vectorstore"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/bomi/internal/usecases"
	"github.com/cleitonmarx/symbiont"
)

// NewBomiApp creates the Bomi application: the emotion engine, the daily
// mood check and the weekly report pipeline.
func NewBomiApp(initializers ...symbiont.Initializer) *symbiont.App {
	return symbiont.NewApp().
		Initialize(initializers...).
		Initialize(
			&log.InitLogger{},
			&telemetry.InitOpenTelemetry{},
			&telemetry.InitHttpClient{},
			&config.InitVaultProvider{},
			&postgres.InitDB{},
			&postgres.InitUnitOfWork{},
			&postgres.InitOutboxRepository{},
			&postgres.InitMoodSelectionRepository{},
			&postgres.InitWeeklyReportRepository{},
			&postgres.InitEmotionIndexRepository{},
			&vectorstore.InitEmotionIndex{},
			&time.InitCurrentTimeProvider{},
			&pubsub.InitClient{},
			&pubsub.InitPublisher{},
			&embedding.InitEmbedder{},
			&corpus.InitSeedCorpusLoader{},
			&moodcards.InitMoodCards{},
			&modelrunner.InitLLMClient{},

			&usecases.InitAnalyzeEmotion{},
			&usecases.InitBootstrapEmotionIndex{},
			&usecases.InitGetEngineHealth{},
			&usecases.InitListMoodCards{},
			&usecases.InitSelectDailyMood{},
			&usecases.InitGetDailyMoodStatus{},
			&usecases.InitListEmotionHistory{},
			&usecases.InitGetWeeklyMoodReport{},
			&usecases.InitGenerateWeeklyReport{},
			&usecases.InitGetLatestWeeklyReport{},
			&usecases.InitRelayOutbox{},
		).
		Host(
			&http.BomiServer{},
			&workers.IndexBootstrapper{},
			&workers.MessageRelay{},
			&workers.WeeklyReportGenerator{},
		).
		Introspect(&MermaidGraphIntrospector{})
}
