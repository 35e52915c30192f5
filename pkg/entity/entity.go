package entity

import (
	"time"
)

type MoodType string

const (
	MoodTerrible  MoodType = "terrible"
	MoodLow       MoodType = "low"
	MoodOkay      MoodType = "okay"
	MoodGood      MoodType = "good"
	MoodExcellent MoodType = "excellent"
)

// MoodTypes lists mood levels in ascending order.
var MoodTypes = []MoodType{MoodTerrible, MoodLow, MoodOkay, MoodGood, MoodExcellent}

// Rank returns the position of the mood in the ascending scale, or -1 for an unknown value.
func (m MoodType) Rank() int {
	for i, mt := range MoodTypes {
		if mt == m {
			return i
		}
	}
	return -1
}

func (m MoodType) Valid() bool {
	return m.Rank() >= 0
}

type VoiceTone string

const (
	ToneCalm     VoiceTone = "calm"
	ToneStressed VoiceTone = "stressed"
	ToneHappy    VoiceTone = "happy"
	ToneSad      VoiceTone = "sad"
	ToneAnxious  VoiceTone = "anxious"
)

type VoiceAnalysis struct {
	Tone    VoiceTone `json:"tone" validate:"required,voice_tone"`
	Energy  int       `json:"energy" validate:"min=1,max=10"`
	Clarity int       `json:"clarity" validate:"min=1,max=10"`
}

type MoodEntry struct {
	ID            string         `json:"id"`
	Timestamp     time.Time      `json:"timestamp"`
	Mood          MoodType       `json:"mood"`
	Intensity     int            `json:"intensity"`
	Notes         string         `json:"notes,omitempty"`
	Tags          []string       `json:"tags,omitempty"`
	VoiceAnalysis *VoiceAnalysis `json:"voice_analysis,omitempty"`
}

// MoodAnalysis is what a text classifier derives from free-form notes.
type MoodAnalysis struct {
	Mood      MoodType `json:"mood"`
	Intensity int      `json:"intensity"`
	Tags      []string `json:"tags"`
}

type MoodSummary struct {
	CurrentStreak          int     `json:"current_streak"`
	EntriesToday           int     `json:"entries_today"`
	WeeklyEntries          int     `json:"weekly_entries"`
	WeeklyAverageIntensity float64 `json:"weekly_average_intensity"`
}

type AIMessage struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	IsUser    bool      `json:"is_user"`
	Emotion   string    `json:"emotion,omitempty"`
}

type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsGuest bool   `json:"is_guest"`
}

// Account is a registered user as stored in the accounts namespace.
type Account struct {
	User
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type Settings struct {
	OnboardingCompleted  bool `json:"onboarding_completed"`
	NotificationsEnabled bool `json:"notifications_enabled"`
}

type CrisisResource struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Kind     string `json:"kind"`
	URL      string `json:"url"`
}
