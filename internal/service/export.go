package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/serenity/pkg/entity"
)

const (
	TrendImproving        = "improving"
	TrendDeclining        = "declining"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"

	guestID    = "guest"
	guestName  = "Guest User"
	guestEmail = "guest@example.com"
)

type ReportInput struct {
	User                *entity.User
	OnboardingCompleted bool
	Moods               []entity.MoodEntry
	Messages            []entity.AIMessage
	Assessment          *entity.PsychometricResults
	GeneratedAt         time.Time
	AppVersion          string
}

type Report struct {
	ExportInfo       ExportInfo                  `json:"export_info"`
	UserProfile      UserProfile                 `json:"user_profile"`
	MoodData         MoodData                    `json:"mood_data"`
	Analytics        Analytics                   `json:"analytics"`
	ConversationData ConversationData            `json:"conversation_data"`
	Assessment       *entity.PsychometricResults `json:"assessment,omitempty"`
	Insights         []string                    `json:"insights"`
	Recommendations  []string                    `json:"recommendations"`
}

type ExportInfo struct {
	GeneratedAt time.Time `json:"generated_at"`
	AppVersion  string    `json:"app_version"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
}

type UserProfile struct {
	Email               string `json:"email"`
	Name                string `json:"name"`
	IsGuest             bool   `json:"is_guest"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

type DateRange struct {
	First *time.Time `json:"first"`
	Last  *time.Time `json:"last"`
}

type ReportMoodEntry struct {
	Date      time.Time       `json:"date"`
	Mood      entity.MoodType `json:"mood"`
	Intensity int             `json:"intensity"`
	Notes     string          `json:"notes"`
	Tags      []string        `json:"tags"`
}

type MoodData struct {
	TotalEntries int               `json:"total_entries"`
	DateRange    DateRange         `json:"date_range"`
	Entries      []ReportMoodEntry `json:"entries"`
}

type StreakData struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

type Analytics struct {
	AverageIntensity float64        `json:"average_intensity"`
	MoodDistribution map[string]int `json:"mood_distribution"`
	StreakData       StreakData     `json:"streak_data"`
	WeeklyAverage    float64        `json:"weekly_average"`
	TotalDays        int            `json:"total_days"`
	ImprovementTrend string         `json:"improvement_trend"`
}

type ReportMessage struct {
	Timestamp time.Time `json:"timestamp"`
	IsUser    bool      `json:"is_user"`
	Content   string    `json:"content"`
	Emotion   *string   `json:"emotion"`
}

type ConversationData struct {
	TotalMessages int             `json:"total_messages"`
	UserMessages  int             `json:"user_messages"`
	AIResponses   int             `json:"ai_responses"`
	Conversations []ReportMessage `json:"conversations"`
}

// BuildReport joins workspace data into an export report. It doesn't modify its input.
// Calendar days are taken in GeneratedAt's location.
func BuildReport(in ReportInput) *Report {
	report := &Report{
		ExportInfo: ExportInfo{
			GeneratedAt: in.GeneratedAt,
			AppVersion:  in.AppVersion,
			UserID:      guestID,
			UserName:    guestName,
		},
		UserProfile: UserProfile{
			Email:               guestEmail,
			Name:                guestName,
			IsGuest:             true,
			OnboardingCompleted: in.OnboardingCompleted,
		},
		MoodData:         buildMoodData(in.Moods),
		Analytics:        buildAnalytics(in.Moods, in.GeneratedAt),
		ConversationData: buildConversationData(in.Messages),
		Assessment:       in.Assessment,
	}
	if u := in.User; u != nil {
		report.ExportInfo.UserID = orDefault(u.ID, guestID)
		report.ExportInfo.UserName = orDefault(u.Name, guestName)
		report.UserProfile.Email = orDefault(u.Email, guestEmail)
		report.UserProfile.Name = orDefault(u.Name, guestName)
		report.UserProfile.IsGuest = u.IsGuest
	}
	report.Insights = buildInsights(report.Analytics)
	report.Recommendations = buildRecommendations(report.Analytics)
	return report
}

// RenderReport encodes the report as indented JSON.
func RenderReport(r *Report) ([]byte, error) {
	if r == nil {
		return nil, errors.New("report is nil")
	}
	return sonic.ConfigStd.MarshalIndent(r, "", "  ")
}

// ReportFilename names the export artifact after its generation date.
func ReportFilename(generatedAt time.Time) string {
	return fmt.Sprintf("wellness-report-%s.json", generatedAt.Format(time.DateOnly))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func buildMoodData(moods []entity.MoodEntry) MoodData {
	data := MoodData{
		TotalEntries: len(moods),
		Entries:      make([]ReportMoodEntry, 0, len(moods)),
	}
	for _, m := range moods {
		tags := m.Tags
		if tags == nil {
			tags = []string{}
		}
		data.Entries = append(data.Entries, ReportMoodEntry{
			Date:      m.Timestamp,
			Mood:      m.Mood,
			Intensity: m.Intensity,
			Notes:     m.Notes,
			Tags:      tags,
		})
		ts := m.Timestamp
		if data.DateRange.First == nil || ts.Before(*data.DateRange.First) {
			data.DateRange.First = &ts
		}
		if data.DateRange.Last == nil || ts.After(*data.DateRange.Last) {
			data.DateRange.Last = &ts
		}
	}
	return data
}

func buildAnalytics(moods []entity.MoodEntry, now time.Time) Analytics {
	analytics := Analytics{
		MoodDistribution: map[string]int{},
		TotalDays:        len(moods),
		ImprovementTrend: TrendInsufficientData,
	}
	if len(moods) == 0 {
		return analytics
	}
	sum := 0
	weekAgo := now.AddDate(0, 0, -weekDays)
	weekSum, weekCount := 0, 0
	for _, m := range moods {
		sum += m.Intensity
		analytics.MoodDistribution[string(m.Mood)]++
		if !m.Timestamp.Before(weekAgo) {
			weekSum += m.Intensity
			weekCount++
		}
	}
	analytics.AverageIntensity = roundTo(float64(sum)/float64(len(moods)), 2)
	if weekCount > 0 {
		analytics.WeeklyAverage = roundTo(float64(weekSum)/float64(weekCount), 2)
	}
	timestamps := entryTimestamps(moods)
	analytics.StreakData = StreakData{
		Current: CurrentStreak(timestamps, now),
		Longest: LongestStreak(timestamps, now.Location()),
	}
	analytics.ImprovementTrend = improvementTrend(moods)
	return analytics
}

// improvementTrend compares mean intensity of the older and newer halves of the history.
func improvementTrend(moods []entity.MoodEntry) string {
	if len(moods) < 2 {
		return TrendInsufficientData
	}
	sorted := make([]entity.MoodEntry, len(moods))
	copy(sorted, moods)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Timestamp.Before(sorted[j].Timestamp) })
	half := len(sorted) / 2
	diff := meanIntensity(sorted[half:]) - meanIntensity(sorted[:half])
	switch {
	case diff > 0.5:
		return TrendImproving
	case diff < -0.5:
		return TrendDeclining
	}
	return TrendStable
}

func meanIntensity(moods []entity.MoodEntry) float64 {
	sum := 0
	for _, m := range moods {
		sum += m.Intensity
	}
	return float64(sum) / float64(len(moods))
}

func buildConversationData(messages []entity.AIMessage) ConversationData {
	data := ConversationData{
		TotalMessages: len(messages),
		Conversations: make([]ReportMessage, 0, len(messages)),
	}
	for _, msg := range messages {
		if msg.IsUser {
			data.UserMessages++
		} else {
			data.AIResponses++
		}
		var emotion *string
		if msg.Emotion != "" {
			e := msg.Emotion
			emotion = &e
		}
		data.Conversations = append(data.Conversations, ReportMessage{
			Timestamp: msg.Timestamp,
			IsUser:    msg.IsUser,
			Content:   msg.Content,
			Emotion:   emotion,
		})
	}
	return data
}

func buildInsights(a Analytics) []string {
	insights := make([]string, 0)
	switch {
	case a.AverageIntensity > 7:
		insights = append(insights, "Your overall mood intensity is quite positive. Keep up the great work!")
	case a.AverageIntensity < 4:
		insights = append(insights, "Your mood data shows some challenging periods. Consider reaching out for professional support.")
	}
	if a.StreakData.Longest > 7 {
		insights = append(insights, fmt.Sprintf("Impressive! Your longest streak of consistent mood tracking was %d days.", a.StreakData.Longest))
	}
	switch a.ImprovementTrend {
	case TrendImproving:
		insights = append(insights, "Your mood trends show positive improvement over time. Your wellness journey is progressing well.")
	case TrendDeclining:
		insights = append(insights, "Recent trends show some challenges. Consider implementing additional self-care strategies.")
	}
	return insights
}

func buildRecommendations(a Analytics) []string {
	recommendations := make([]string, 0, 6)
	if a.AverageIntensity < 5 {
		recommendations = append(recommendations,
			"Consider establishing a daily mindfulness practice",
			"Schedule regular check-ins with a mental health professional",
		)
	}
	if a.StreakData.Current < 3 {
		recommendations = append(recommendations,
			"Try setting daily reminders for mood tracking",
			"Establish a consistent morning or evening routine for check-ins",
		)
	}
	return append(recommendations,
		"Continue your wellness journey with daily mood tracking",
		"Explore the guided meditation library for additional support",
	)
}
