package entity

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
)

type QuestionType string

const (
	QuestionNumberSlider QuestionType = "NUMBER_SLIDER"
	QuestionMCQ          QuestionType = "MCQ"
)

type SliderRange struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step,omitempty"`
}

type QuestionOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
}

type PsychometricQuestion struct {
	ID      string           `json:"id"`
	Text    string           `json:"question_text"`
	Type    QuestionType     `json:"question_type"`
	Hint    string           `json:"hint,omitempty"`
	Slider  *SliderRange     `json:"slider_range,omitempty"`
	Options []QuestionOption `json:"options,omitempty"`
}

// AnswerValue is either a number (slider answers) or a string code (MCQ answers).
// It travels as a bare JSON number or string.
type AnswerValue struct {
	num  *float64
	text *string
}

func NumberAnswer(v float64) AnswerValue {
	return AnswerValue{num: &v}
}

func TextAnswer(v string) AnswerValue {
	return AnswerValue{text: &v}
}

func (v AnswerValue) Number() (float64, bool) {
	if v.num == nil {
		return 0, false
	}
	return *v.num, true
}

func (v AnswerValue) Text() (string, bool) {
	if v.text == nil {
		return "", false
	}
	return *v.text, true
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.text != nil:
		return sonic.Marshal(*v.text)
	case v.num != nil:
		return sonic.Marshal(*v.num)
	}
	return []byte("null"), nil
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var raw any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch val := raw.(type) {
	case nil:
		*v = AnswerValue{}
	case float64:
		*v = NumberAnswer(val)
	case string:
		*v = TextAnswer(val)
	default:
		return errors.New("answer value must be a number or a string")
	}
	return nil
}

type PsychometricResponse struct {
	QuestionID string      `json:"question_id"`
	Value      AnswerValue `json:"value"`
	Timestamp  time.Time   `json:"timestamp"`
}

const (
	LevelLow       = "low"
	LevelModerate  = "moderate"
	LevelHigh      = "high"
	LevelPoor      = "poor"
	LevelFair      = "fair"
	LevelGood      = "good"
	LevelExcellent = "excellent"
	LevelPositive  = "positive"
	LevelNeutral   = "neutral"
	LevelNegative  = "negative"
	LevelStrong    = "strong"
	LevelWeak      = "weak"
)

type AnalysisProfile struct {
	SocialConnectivity string `json:"social_connectivity"`
	StressLevel        string `json:"stress_level"`
	WellnessHabits     string `json:"wellness_habits"`
	EmotionalState     string `json:"emotional_state"`
	SupportSystem      string `json:"support_system"`
}

type PsychometricResults struct {
	UserID          string                 `json:"user_id"`
	Responses       []PsychometricResponse `json:"responses"`
	CompletedAt     time.Time              `json:"completed_at"`
	AnalysisProfile AnalysisProfile        `json:"analysis_profile"`
}

type AssessmentStatus string

const (
	AssessmentNotStarted AssessmentStatus = "not_started"
	AssessmentInProgress AssessmentStatus = "in_progress"
	AssessmentCompleted  AssessmentStatus = "completed"
)

type AssessmentState struct {
	Status          AssessmentStatus       `json:"status"`
	CurrentIndex    int                    `json:"current_index"`
	CurrentQuestion PsychometricQuestion   `json:"current_question"`
	Answered        int                    `json:"answered"`
	Total           int                    `json:"total"`
	Missing         []string               `json:"missing"`
	Responses       []PsychometricResponse `json:"responses"`
}
