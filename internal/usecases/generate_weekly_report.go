package usecases

import (
	"context"
	"embed"
	"fmt"
	"log"
	"strings"

	"github.com/cleitonmarx/bomi/internal/common"
	"github.com/cleitonmarx/bomi/internal/domain"
	"github.com/cleitonmarx/bomi/internal/telemetry"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/toon-format/toon-go"
	"go.yaml.in/yaml/v3"
)

// CompletedReportChannel receives every stored weekly report snapshot.
// It is used in tests to wait for the report worker.
type CompletedReportChannel chan domain.WeeklyReportSnapshot

// GenerateWeeklyReport builds and stores the current week's report of a user.
type GenerateWeeklyReport interface {
	Execute(ctx context.Context, userID uuid.UUID) (domain.WeeklyReportSnapshot, error)
}

// GenerateWeeklyReportImpl is the implementation of the GenerateWeeklyReport use case.
type GenerateWeeklyReportImpl struct {
	selections   domain.MoodSelectionRepository
	reports      domain.WeeklyReportRepository
	characters   domain.EmotionCharacterResolver
	timeProvider domain.CurrentTimeProvider
	llmClient    domain.LLMClient
	model        string
	logger       *log.Logger
	completedCh  CompletedReportChannel
}

// NewGenerateWeeklyReportImpl creates a new GenerateWeeklyReportImpl.
// An empty model or "-" disables the LLM narrative.
func NewGenerateWeeklyReportImpl(
	s domain.MoodSelectionRepository,
	r domain.WeeklyReportRepository,
	c domain.EmotionCharacterResolver,
	tp domain.CurrentTimeProvider,
	llm domain.LLMClient,
	model string,
	logger *log.Logger,
	q CompletedReportChannel,
) GenerateWeeklyReportImpl {
	if model == "-" {
		model = ""
	}
	return GenerateWeeklyReportImpl{
		selections:   s,
		reports:      r,
		characters:   c,
		timeProvider: tp,
		llmClient:    llm,
		model:        model,
		logger:       logger,
		completedCh:  q,
	}
}

// Execute generates the snapshot and upserts it for (user, week start).
func (g GenerateWeeklyReportImpl) Execute(ctx context.Context, userID uuid.UUID) (domain.WeeklyReportSnapshot, error) {
	spanCtx, span := telemetry.Start(ctx, telemetry.WithUserID(userID))
	defer span.End()

	if userID == uuid.Nil {
		err := domain.NewValidationErr("user_id is required")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.WeeklyReportSnapshot{}, err
	}

	now := g.timeProvider.Now()
	weekStart := domain.WeekStart(now)

	report, err := buildWeeklyReport(spanCtx, g.selections, g.characters, userID, weekStart)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.WeeklyReportSnapshot{}, err
	}

	snapshot := domain.WeeklyReportSnapshot{
		ID:          uuid.New(),
		UserID:      userID,
		WeekStart:   weekStart,
		Report:      report,
		Narrative:   report.AnalysisText,
		GeneratedAt: now,
	}
	if g.model != "" {
		narrative, err := g.writeNarrative(spanCtx, report)
		if err != nil {
			g.logger.Printf("GenerateWeeklyReport: narrative fallback for user %s: %v", userID, err)
		} else {
			snapshot.Narrative = narrative
			snapshot.Model = g.model
		}
	}

	err = g.reports.StoreReport(spanCtx, snapshot)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.WeeklyReportSnapshot{}, err
	}

	if g.completedCh != nil {
		g.completedCh <- snapshot
	}
	return snapshot, nil
}

// writeNarrative asks the LLM for a short weekly letter based on the report facts.
func (g GenerateWeeklyReportImpl) writeNarrative(ctx context.Context, report domain.WeeklyMoodReport) (string, error) {
	messages, err := buildReportPromptMessages(report)
	if err != nil {
		return "", fmt.Errorf("failed to build prompt: %w", err)
	}

	resp, err := g.llmClient.Chat(ctx, domain.LLMChatRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: common.Ptr(0.7),
		MaxTokens:   common.Ptr(400),
	})
	if err != nil {
		return "", err
	}
	RecordLLMTokensUsed(ctx, resp.Usage.PromptTokens, resp.Usage.CompletionTokens)

	narrative := strings.TrimSpace(resp.Content)
	if narrative == "" {
		return "", fmt.Errorf("llm returned an empty narrative")
	}
	return narrative, nil
}

type reportRankingFact struct {
	Rank    int     `toon:"rank"`
	Emotion string  `toon:"emotion"`
	Count   int     `toon:"count"`
	Percent float64 `toon:"percent"`
}

type reportDayFact struct {
	Weekday string `toon:"weekday"`
	Emotion string `toon:"emotion"`
}

type reportFacts struct {
	Week         string              `toon:"week"`
	ScorePercent int                 `toon:"score_percent"`
	Dominant     string              `toon:"dominant"`
	Rankings     []reportRankingFact `toon:"rankings"`
	Days         []reportDayFact     `toon:"days"`
}

func newReportFacts(report domain.WeeklyMoodReport) reportFacts {
	facts := reportFacts{
		Week:         report.WeekLabel,
		ScorePercent: report.OverallScorePercent,
		Dominant:     report.DominantEmotion.Label,
		Rankings:     make([]reportRankingFact, 0, len(report.EmotionRankings)),
		Days:         make([]reportDayFact, 0, len(report.DailyCharacters)),
	}
	for _, r := range report.EmotionRankings {
		facts.Rankings = append(facts.Rankings, reportRankingFact{
			Rank:    r.Rank,
			Emotion: r.Label,
			Count:   r.Count,
			Percent: r.Percent,
		})
	}
	for _, d := range report.DailyCharacters {
		emotion := "none"
		if d.HasRecord && d.EmotionLabel != nil {
			emotion = *d.EmotionLabel
		}
		facts.Days = append(facts.Days, reportDayFact{Weekday: d.Weekday, Emotion: emotion})
	}
	return facts
}

//go:embed prompts/weekly_report.yml
var weeklyReportPrompt embed.FS

// buildReportPromptMessages decodes the embedded prompt and fills the user
// messages with the TOON-encoded facts and the template summary.
func buildReportPromptMessages(report domain.WeeklyMoodReport) ([]domain.LLMChatMessage, error) {
	factsTOON, err := toon.MarshalString(newReportFacts(report), toon.WithLengthMarkers(true))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report facts: %w", err)
	}

	file, err := weeklyReportPrompt.Open("prompts/weekly_report.yml")
	if err != nil {
		return nil, fmt.Errorf("failed to open weekly report prompt: %w", err)
	}
	defer file.Close() //nolint:errcheck

	messages := []domain.LLMChatMessage{}
	if err := yaml.NewDecoder(file).Decode(&messages); err != nil {
		return nil, fmt.Errorf("failed to decode weekly report prompt: %w", err)
	}

	for i, msg := range messages {
		if msg.Role != domain.ChatRole_User {
			continue
		}
		msg.Content = fmt.Sprintf(msg.Content, factsTOON, report.AnalysisText)
		messages[i] = msg
	}
	return messages, nil
}

// InitGenerateWeeklyReport initializes the GenerateWeeklyReport use case.
type InitGenerateWeeklyReport struct {
	Selections   domain.MoodSelectionRepository  `resolve:""`
	Reports      domain.WeeklyReportRepository   `resolve:""`
	Characters   domain.EmotionCharacterResolver `resolve:""`
	TimeProvider domain.CurrentTimeProvider      `resolve:""`
	LLMClient    domain.LLMClient                `resolve:""`
	Logger       *log.Logger                     `resolve:""`
	Model        string                          `config:"LLM_REPORT_MODEL" default:"-"`
}

// Initialize registers the GenerateWeeklyReport use case implementation.
func (i InitGenerateWeeklyReport) Initialize(ctx context.Context) (context.Context, error) {
	queue, _ := depend.Resolve[CompletedReportChannel]()
	depend.Register[GenerateWeeklyReport](NewGenerateWeeklyReportImpl(
		i.Selections, i.Reports, i.Characters, i.TimeProvider, i.LLMClient, i.Model, i.Logger, queue,
	))
	return ctx, nil
}
