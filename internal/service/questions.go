package service

import (
	"math"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/pkg/entity"
)

const (
	QuestionAge                   = "q1_age"
	QuestionFriends               = "q2_friends"
	QuestionInteraction           = "q3_interaction"
	QuestionParentalCommunication = "q4_parental_communication"
	QuestionParentalSharing       = "q5_parental_sharing"
	QuestionStressLevel           = "q6_stress_level"
	QuestionSleepQuality          = "q7_sleep_quality"
	QuestionSelfCare              = "q8_self_care"
	QuestionDailyMood             = "q9_daily_mood"
	QuestionFutureOutlook         = "q10_future_outlook"
)

var questions = []entity.PsychometricQuestion{
	{
		ID:     QuestionAge,
		Text:   "What is your current age?",
		Type:   entity.QuestionNumberSlider,
		Hint:   "Please be accurate for the best results.",
		Slider: &entity.SliderRange{Min: 13, Max: 99},
	},
	{
		ID:     QuestionFriends,
		Text:   "How many close friends would you say you have?",
		Type:   entity.QuestionNumberSlider,
		Hint:   "These are people you can truly confide in.",
		Slider: &entity.SliderRange{Min: 0, Max: 20},
	},
	{
		ID:     QuestionInteraction,
		Text:   "On an average day, how many people do you interact with (in person or online)?",
		Type:   entity.QuestionNumberSlider,
		Hint:   "Consider colleagues, classmates, service workers, etc.",
		Slider: &entity.SliderRange{Min: 0, Max: 50, Step: 1},
	},
	{
		ID:   QuestionParentalCommunication,
		Text: "How often do you communicate with your parents or guardians?",
		Type: entity.QuestionMCQ,
		Options: []entity.QuestionOption{
			{Value: "daily", Text: "Daily"},
			{Value: "several_times_a_week", Text: "Several times a week"},
			{Value: "weekly", Text: "Weekly"},
			{Value: "monthly", Text: "Monthly"},
			{Value: "less_than_monthly", Text: "Less than monthly"},
		},
	},
	{
		ID:   QuestionParentalSharing,
		Text: "Do you feel comfortable sharing your thoughts and feelings with your parents or guardians?",
		Type: entity.QuestionMCQ,
		Options: []entity.QuestionOption{
			{Value: "always", Text: "Always"},
			{Value: "sometimes", Text: "Sometimes"},
			{Value: "rarely", Text: "Rarely"},
			{Value: "never", Text: "Never"},
		},
	},
	{
		ID:     QuestionStressLevel,
		Text:   "On a scale of 1-10, what is your current stress level?",
		Type:   entity.QuestionNumberSlider,
		Hint:   "1 = No stress, 10 = Maximum stress",
		Slider: &entity.SliderRange{Min: 1, Max: 10, Step: 1},
	},
	{
		ID:   QuestionSleepQuality,
		Text: "How would you rate your sleep quality over the last week?",
		Type: entity.QuestionMCQ,
		Options: []entity.QuestionOption{
			{Value: "excellent", Text: "Excellent"},
			{Value: "good", Text: "Good"},
			{Value: "fair", Text: "Fair"},
			{Value: "poor", Text: "Poor"},
		},
	},
	{
		ID:     QuestionSelfCare,
		Text:   "How many days in the last week did you make time for a self-care activity?",
		Type:   entity.QuestionNumberSlider,
		Hint:   "This includes hobbies, exercise, or relaxation.",
		Slider: &entity.SliderRange{Min: 0, Max: 7, Step: 1},
	},
	{
		ID:   QuestionDailyMood,
		Text: "How would you describe your overall mood on an average day?",
		Type: entity.QuestionMCQ,
		Options: []entity.QuestionOption{
			{Value: "mostly_positive", Text: "Mostly positive"},
			{Value: "neutral_or_fluctuating", Text: "Neutral or fluctuating"},
			{Value: "mostly_negative", Text: "Mostly negative"},
		},
	},
	{
		ID:   QuestionFutureOutlook,
		Text: "How do you feel about your future?",
		Type: entity.QuestionMCQ,
		Options: []entity.QuestionOption{
			{Value: "optimistic", Text: "Optimistic and hopeful"},
			{Value: "cautiously_optimistic", Text: "Cautiously optimistic"},
			{Value: "uncertain", Text: "Uncertain"},
			{Value: "pessimistic", Text: "Pessimistic and worried"},
		},
	},
}

// Questions returns a copy of the assessment catalog in presentation order.
func Questions() []entity.PsychometricQuestion {
	out := make([]entity.PsychometricQuestion, len(questions))
	copy(out, questions)
	return out
}

func findQuestion(id string) (entity.PsychometricQuestion, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return entity.PsychometricQuestion{}, false
}

// checkAnswer verifies that value fits question q. Sliders without an explicit step take whole numbers.
func checkAnswer(q entity.PsychometricQuestion, value entity.AnswerValue) error {
	switch q.Type {
	case entity.QuestionNumberSlider:
		n, ok := value.Number()
		if !ok || q.Slider == nil || n < q.Slider.Min || n > q.Slider.Max {
			return errorvalues.ErrInvalidAnswer
		}
		step := q.Slider.Step
		if step == 0 {
			step = 1
		}
		steps := (n - q.Slider.Min) / step
		if math.Abs(steps-math.Round(steps)) > 1e-9 {
			return errorvalues.ErrInvalidAnswer
		}
		return nil
	case entity.QuestionMCQ:
		s, ok := value.Text()
		if !ok {
			return errorvalues.ErrInvalidAnswer
		}
		for _, opt := range q.Options {
			if opt.Value == s {
				return nil
			}
		}
	}
	return errorvalues.ErrInvalidAnswer
}
