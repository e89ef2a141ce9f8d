package domain

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/cleitonmarx/bomi/internal/common"
	"github.com/google/uuid"
)

const (
	// DefaultCharacterCode is used for emotions without a dedicated character.
	DefaultCharacterCode = "DEFAULT"

	maxWeeklyRankings = 5
	stableScoreCutoff = 60
)

// EmotionCharacter maps an emotion onto the character shown by the UI.
type EmotionCharacter struct {
	Code      string
	Label     string
	Character string
}

// EmotionCharacterResolver looks up the character of an emotion label.
type EmotionCharacterResolver interface {
	Resolve(label EmotionLabel) (EmotionCharacter, bool)
}

// WeeklyEmotionRanking is one row of the weekly emotion ranking.
type WeeklyEmotionRanking struct {
	Rank          int
	Code          string
	Label         string
	Percent       float64
	Count         int
	CharacterCode string
}

// DailyMoodSticker is the character shown for one weekday.
type DailyMoodSticker struct {
	Date          time.Time
	Weekday       string
	EmotionCode   *string
	EmotionLabel  *string
	CharacterCode *string
	HasRecord     bool
}

// WeeklySentimentPoint is one entry of the sentiment timeline.
type WeeklySentimentPoint struct {
	Timestamp           time.Time
	SentimentScore      float64
	SentimentOverall    Sentiment
	PrimaryEmotionCode  string
	PrimaryEmotionLabel string
	CharacterCode       string
}

// WeeklyMoodReport summarizes one week of mood selections.
type WeeklyMoodReport struct {
	UserID              uuid.UUID
	WeekLabel           string
	WeekStart           time.Time
	WeekEnd             time.Time
	OverallScorePercent int
	DominantEmotion     WeeklyEmotionRanking
	DailyCharacters     []DailyMoodSticker
	EmotionRankings     []WeeklyEmotionRanking
	AnalysisText        string
	SentimentTimeline   []WeeklySentimentPoint
}

// WeeklyReportSnapshot is a generated weekly report stored for later retrieval.
type WeeklyReportSnapshot struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WeekStart   time.Time
	Report      WeeklyMoodReport
	Narrative   string
	Model       string
	GeneratedAt time.Time
}

// WeeklyReportRepository persists weekly report snapshots.
type WeeklyReportRepository interface {
	// StoreReport upserts the snapshot keyed by (user, week start).
	StoreReport(ctx context.Context, snapshot WeeklyReportSnapshot) error
	// GetLatestReport returns the most recent snapshot of a user.
	GetLatestReport(ctx context.Context, userID uuid.UUID) (WeeklyReportSnapshot, bool, error)
}

// BuildWeekLabel renders the Korean week label, e.g. "2026년 10월 2주차".
func BuildWeekLabel(weekStart time.Time) string {
	week := ((weekStart.Day() - 1) / 7) + 1
	return fmt.Sprintf("%d년 %d월 %d주차", weekStart.Year(), int(weekStart.Month()), week)
}

// OverallScorePercent maps sentiment scores in [-1, 1] onto 0..100.
// An empty slice averages to 0.
func OverallScorePercent(scores []float64) int {
	var avg float64
	if len(scores) > 0 {
		var sum float64
		for _, s := range scores {
			sum += s
		}
		avg = sum / float64(len(scores))
	}
	scaled := int(math.RoundToEven((avg + 1) / 2 * 100))
	return max(0, min(100, scaled))
}

type emotionDisplay struct {
	code      string
	label     string
	character string
}

func normalizeEmotionKey(label EmotionLabel) string {
	return strings.ToLower(strings.TrimSpace(string(label)))
}

func resolveDisplay(label EmotionLabel, characters EmotionCharacterResolver) emotionDisplay {
	if characters != nil {
		if c, ok := characters.Resolve(label); ok {
			return emotionDisplay{code: c.Code, label: c.Label, character: c.Character}
		}
	}
	key := normalizeEmotionKey(label)
	return emotionDisplay{code: strings.ToUpper(key), label: string(label), character: DefaultCharacterCode}
}

// BuildWeeklyMoodReport aggregates the selections of the week starting at
// weekStart. Selections outside the week are ignored.
func BuildWeeklyMoodReport(
	userID uuid.UUID,
	weekStart time.Time,
	selections []DailyMoodSelection,
	characters EmotionCharacterResolver,
) WeeklyMoodReport {
	weekStart = DateOnly(weekStart)
	weekEnd := weekStart.AddDate(0, 0, 6)
	nextWeek := weekStart.AddDate(0, 0, 7)

	entries := make([]DailyMoodSelection, 0, len(selections))
	for _, s := range selections {
		day := CalendarDate(s.SelectedDate, weekStart.Location())
		if day.Before(weekStart) || !day.Before(nextWeek) {
			continue
		}
		entries = append(entries, s)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].UpdatedAt.Before(entries[j].UpdatedAt)
	})

	var (
		keys      []string
		counts    = map[string]int{}
		displays  = map[string]emotionDisplay{}
		byDate    = map[string][]string{}
		scores    []float64
		timeline  = []WeeklySentimentPoint{}
		dateKeyOf = func(t time.Time) string { return t.Format(time.DateOnly) }
	)
	for _, e := range entries {
		key := normalizeEmotionKey(e.PrimaryEmotion)
		display := resolveDisplay(e.PrimaryEmotion, characters)
		if _, seen := counts[key]; !seen {
			keys = append(keys, key)
		}
		counts[key]++
		displays[key] = display

		dateKey := dateKeyOf(e.SelectedDate)
		byDate[dateKey] = append(byDate[dateKey], key)

		score := e.Sentiment.Score()
		scores = append(scores, score)
		timeline = append(timeline, WeeklySentimentPoint{
			Timestamp:           e.UpdatedAt,
			SentimentScore:      score,
			SentimentOverall:    e.Sentiment,
			PrimaryEmotionCode:  display.code,
			PrimaryEmotionLabel: display.label,
			CharacterCode:       display.character,
		})
	}

	rankings := buildWeeklyRankings(keys, counts, displays)
	overall := OverallScorePercent(scores)
	label := BuildWeekLabel(weekStart)

	stickers := make([]DailyMoodSticker, 0, len(Weekdays))
	for i, weekday := range Weekdays {
		day := weekStart.AddDate(0, 0, i)
		dayKeys := byDate[dateKeyOf(day)]
		if len(dayKeys) == 0 {
			stickers = append(stickers, DailyMoodSticker{Date: day, Weekday: weekday})
			continue
		}
		top := mostCommon(dayKeys)
		d := displays[top]
		stickers = append(stickers, DailyMoodSticker{
			Date:          day,
			Weekday:       weekday,
			EmotionCode:   common.Ptr(d.code),
			EmotionLabel:  common.Ptr(d.label),
			CharacterCode: common.Ptr(d.character),
			HasRecord:     true,
		})
	}

	return WeeklyMoodReport{
		UserID:              userID,
		WeekLabel:           label,
		WeekStart:           weekStart,
		WeekEnd:             weekEnd,
		OverallScorePercent: overall,
		DominantEmotion:     rankings[0],
		DailyCharacters:     stickers,
		EmotionRankings:     rankings,
		AnalysisText:        BuildWeeklyAnalysisText(label, overall, rankings),
		SentimentTimeline:   timeline,
	}
}

// buildWeeklyRankings orders emotions by count, ties keeping first-seen order.
func buildWeeklyRankings(keys []string, counts map[string]int, displays map[string]emotionDisplay) []WeeklyEmotionRanking {
	ordered := append([]string(nil), keys...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return counts[ordered[i]] > counts[ordered[j]]
	})
	if len(ordered) > maxWeeklyRankings {
		ordered = ordered[:maxWeeklyRankings]
	}

	total := 0
	for _, c := range counts {
		total += c
	}

	rankings := make([]WeeklyEmotionRanking, 0, len(ordered))
	for i, key := range ordered {
		d := displays[key]
		var percent float64
		if total > 0 {
			percent = float64(counts[key]) / float64(total) * 100
		}
		rankings = append(rankings, WeeklyEmotionRanking{
			Rank:          i + 1,
			Code:          d.code,
			Label:         d.label,
			Percent:       common.RoundTo(percent, 2),
			Count:         counts[key],
			CharacterCode: d.character,
		})
	}

	if len(rankings) == 0 {
		rankings = append(rankings, WeeklyEmotionRanking{
			Rank:          1,
			Code:          "N/A",
			Label:         "데이터 없음",
			CharacterCode: DefaultCharacterCode,
		})
	}
	return rankings
}

func mostCommon(keys []string) string {
	counts := map[string]int{}
	var order []string
	for _, k := range keys {
		if counts[k] == 0 {
			order = append(order, k)
		}
		counts[k]++
	}
	best := order[0]
	for _, k := range order[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return best
}

// BuildWeeklyAnalysisText renders the Korean summary paragraph of a weekly report.
func BuildWeeklyAnalysisText(weekLabel string, overallScore int, rankings []WeeklyEmotionRanking) string {
	if len(rankings) == 0 || rankings[0].Count == 0 {
		return fmt.Sprintf("%s에는 아직 감정 기록이 없어요. 일기를 남기면 더 나은 리포트를 만들어드릴게요.", weekLabel)
	}

	top := rankings[0]
	var secondary []string
	for _, r := range rankings[1:min(3, len(rankings))] {
		secondary = append(secondary, fmt.Sprintf("%s %.0f%%", r.Label, r.Percent))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s 동안 %s 감정을 가장 많이 느끼셨어요 (%.0f%%).", weekLabel, top.Label, top.Percent)
	if len(secondary) > 0 {
		fmt.Fprintf(&b, " 다음으로는 %s 순으로 나타났어요.", strings.Join(secondary, ", "))
	}
	comment := "조금 더 마음을 돌봐주세요."
	if overallScore >= stableScoreCutoff {
		comment = "전체 정서가 안정적이에요."
	}
	fmt.Fprintf(&b, " 주간 감정 점수는 %d%%입니다. %s", overallScore, comment)
	return b.String()
}
