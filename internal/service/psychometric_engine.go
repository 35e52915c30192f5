package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strconv"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/pkg/entity"
)

const (
	PsychometricCompletedKey = "psychometric_completed"
	PsychometricResponsesKey = "psychometric_responses"
	PsychometricResultsKey   = "psychometric_results"
	PsychometricIndexKey     = "psychometric_index"
)

// PsychometricEngine administers the fixed questionnaire of one workspace.
type PsychometricEngine struct {
	kv     repository.KVStoreI
	uid    string
	now    Clock
	logger *slog.Logger

	responses []entity.PsychometricResponse
	index     int
	completed bool
}

func NewPsychometricEngine(kv repository.KVStoreI, uid string, now Clock, logger *slog.Logger) *PsychometricEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &PsychometricEngine{
		kv:        kv,
		uid:       uid,
		now:       now,
		logger:    logger.With(slog.String("component", "psychometric_engine")),
		responses: []entity.PsychometricResponse{},
	}
}

func (pe *PsychometricEngine) Load(ctx context.Context) {
	completed, err := repository.LoadBool(ctx, pe.kv, PsychometricCompletedKey)
	if err != nil {
		pe.logger.Error("loading completion flag failed", slog.String("error", err.Error()))
	}
	pe.completed = completed

	var responses []entity.PsychometricResponse
	found, err := repository.LoadJSON(ctx, pe.kv, PsychometricResponsesKey, &responses)
	if err != nil {
		pe.logger.Error("loading responses failed", slog.String("error", err.Error()))
	}
	if !found || responses == nil {
		responses = []entity.PsychometricResponse{}
	}
	pe.responses = responses

	pe.index = 0
	raw, err := pe.kv.Get(ctx, PsychometricIndexKey)
	switch {
	case err == nil:
		if idx, convErr := strconv.Atoi(raw); convErr == nil {
			pe.index = clampIndex(idx)
		} else {
			pe.logger.Error("malformed question index", slog.String("value", raw))
		}
	case !errors.Is(err, errorvalues.ErrKeyNotFound):
		pe.logger.Error("loading question index failed", slog.String("error", err.Error()))
	}
}

// Answer upserts the response for questionID.
func (pe *PsychometricEngine) Answer(ctx context.Context, questionID string, value entity.AnswerValue) error {
	q, ok := findQuestion(questionID)
	if !ok {
		return errorvalues.ErrUnknownQuestion
	}
	if pe.completed {
		return errorvalues.ErrAssessmentCompleted
	}
	if err := checkAnswer(q, value); err != nil {
		return err
	}
	response := entity.PsychometricResponse{
		QuestionID: questionID,
		Value:      value,
		Timestamp:  pe.now(),
	}
	updated := make([]entity.PsychometricResponse, 0, len(pe.responses)+1)
	for _, r := range pe.responses {
		if r.QuestionID != questionID {
			updated = append(updated, r)
		}
	}
	pe.responses = append(updated, response)
	if err := repository.SaveJSON(ctx, pe.kv, PsychometricResponsesKey, pe.responses); err != nil {
		pe.logger.Error("saving responses failed", slog.String("error", err.Error()))
	}
	return nil
}

func (pe *PsychometricEngine) Advance(ctx context.Context) int {
	return pe.moveTo(ctx, pe.index+1)
}

func (pe *PsychometricEngine) Retreat(ctx context.Context) int {
	return pe.moveTo(ctx, pe.index-1)
}

func (pe *PsychometricEngine) moveTo(ctx context.Context, idx int) int {
	idx = clampIndex(idx)
	if idx == pe.index {
		return idx
	}
	pe.index = idx
	if err := pe.kv.Set(ctx, PsychometricIndexKey, strconv.Itoa(idx)); err != nil {
		pe.logger.Error("saving question index failed", slog.String("error", err.Error()))
	}
	return idx
}

// Missing lists unanswered question ids in catalog order.
func (pe *PsychometricEngine) Missing() []string {
	missing := make([]string, 0)
	for _, q := range questions {
		if !slices.ContainsFunc(pe.responses, func(r entity.PsychometricResponse) bool {
			return r.QuestionID == q.ID
		}) {
			missing = append(missing, q.ID)
		}
	}
	return missing
}

// Submit scores current responses and stores the snapshot. Unanswered questions take defaults.
// A repeated submit overwrites the previous snapshot.
func (pe *PsychometricEngine) Submit(ctx context.Context) (*entity.PsychometricResults, error) {
	responses := slices.Clone(pe.responses)
	results := &entity.PsychometricResults{
		UserID:          pe.uid,
		Responses:       responses,
		CompletedAt:     pe.now(),
		AnalysisProfile: Analyze(responses),
	}
	rawResults, err := repository.EncodeJSON(results)
	if err != nil {
		return nil, errors.New("encoding results error: " + err.Error())
	}
	rawResponses, err := repository.EncodeJSON(responses)
	if err != nil {
		return nil, errors.New("encoding responses error: " + err.Error())
	}
	err = pe.kv.SetMany(ctx, map[string]string{
		PsychometricResultsKey:   rawResults,
		PsychometricCompletedKey: repository.FormatBool(true),
		PsychometricResponsesKey: rawResponses,
	})
	if err != nil {
		return nil, errors.New("saving results error: " + err.Error())
	}
	pe.completed = true
	return results, nil
}

// Reset returns the engine to NotStarted. In-memory state is cleared even if some keys fail to delete.
func (pe *PsychometricEngine) Reset(ctx context.Context) error {
	pe.reset()
	var errs error
	for _, key := range []string{PsychometricResultsKey, PsychometricCompletedKey, PsychometricResponsesKey, PsychometricIndexKey} {
		if err := pe.kv.Remove(ctx, key); err != nil {
			errs = errors.Join(errs, errors.New("removing "+key+" error: "+err.Error()))
		}
	}
	return errs
}

func (pe *PsychometricEngine) reset() {
	pe.responses = []entity.PsychometricResponse{}
	pe.index = 0
	pe.completed = false
}

func (pe *PsychometricEngine) Results(ctx context.Context) (*entity.PsychometricResults, error) {
	var results entity.PsychometricResults
	found, err := repository.LoadJSON(ctx, pe.kv, PsychometricResultsKey, &results)
	if err != nil {
		pe.logger.Error("loading results failed", slog.String("error", err.Error()))
	}
	if !found {
		return nil, errorvalues.ErrResultsNotFound
	}
	return &results, nil
}

func (pe *PsychometricEngine) Status() entity.AssessmentStatus {
	switch {
	case pe.completed:
		return entity.AssessmentCompleted
	case len(pe.responses) > 0 || pe.index > 0:
		return entity.AssessmentInProgress
	}
	return entity.AssessmentNotStarted
}

func (pe *PsychometricEngine) State() entity.AssessmentState {
	return entity.AssessmentState{
		Status:          pe.Status(),
		CurrentIndex:    pe.index,
		CurrentQuestion: questions[pe.index],
		Answered:        len(pe.responses),
		Total:           len(questions),
		Missing:         pe.Missing(),
		Responses:       slices.Clone(pe.responses),
	}
}

func clampIndex(idx int) int {
	return max(0, min(idx, len(questions)-1))
}

// Analyze classifies responses along the five profile axes.
func Analyze(responses []entity.PsychometricResponse) entity.AnalysisProfile {
	answers := make(map[string]entity.AnswerValue, len(responses))
	for _, r := range responses {
		answers[r.QuestionID] = r.Value
	}
	number := func(id string, def float64) float64 {
		if v, ok := answers[id].Number(); ok {
			return v
		}
		return def
	}
	text := func(id, def string) string {
		if v, ok := answers[id].Text(); ok && v != "" {
			return v
		}
		return def
	}

	friends := number(QuestionFriends, 0)
	interaction := number(QuestionInteraction, 0)
	stress := number(QuestionStressLevel, 5)
	sleep := text(QuestionSleepQuality, "fair")
	selfCare := number(QuestionSelfCare, 0)
	dailyMood := text(QuestionDailyMood, "neutral_or_fluctuating")
	outlook := text(QuestionFutureOutlook, "uncertain")
	communication := text(QuestionParentalCommunication, "less_than_monthly")
	sharing := text(QuestionParentalSharing, "never")

	var profile entity.AnalysisProfile

	switch {
	case friends >= 5 && interaction >= 10:
		profile.SocialConnectivity = entity.LevelHigh
	case friends >= 2 && interaction >= 5:
		profile.SocialConnectivity = entity.LevelModerate
	default:
		profile.SocialConnectivity = entity.LevelLow
	}

	switch {
	case stress <= 3:
		profile.StressLevel = entity.LevelLow
	case stress <= 7:
		profile.StressLevel = entity.LevelModerate
	default:
		profile.StressLevel = entity.LevelHigh
	}

	switch {
	case sleep == "excellent" && selfCare >= 5:
		profile.WellnessHabits = entity.LevelExcellent
	case sleep == "good" && selfCare >= 3:
		profile.WellnessHabits = entity.LevelGood
	case sleep == "fair" || selfCare >= 1:
		profile.WellnessHabits = entity.LevelFair
	default:
		profile.WellnessHabits = entity.LevelPoor
	}

	switch {
	case dailyMood == "mostly_positive" && (outlook == "optimistic" || outlook == "cautiously_optimistic"):
		profile.EmotionalState = entity.LevelPositive
	case dailyMood == "mostly_negative" || outlook == "pessimistic":
		profile.EmotionalState = entity.LevelNegative
	default:
		profile.EmotionalState = entity.LevelNeutral
	}

	closeParents := communication == "daily" || communication == "several_times_a_week"
	switch {
	case closeParents && (sharing == "always" || sharing == "sometimes") && friends >= 3:
		profile.SupportSystem = entity.LevelStrong
	case friends >= 1 && (sharing == "sometimes" || sharing == "rarely"):
		profile.SupportSystem = entity.LevelModerate
	default:
		profile.SupportSystem = entity.LevelWeak
	}

	return profile
}
