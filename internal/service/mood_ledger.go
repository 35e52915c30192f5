package service

import (
	"context"
	"iter"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/pkg/entity"
)

const (
	MoodsKey = "moods"

	classifierFallbackTag = "Thank you for sharing your thoughts"
	weekDays              = 7
)

// MoodLedger owns mood entries of one workspace and derives streak statistics from them on read.
// Entries are kept newest first. Every mutation swaps in a new slice, so views handed out
// earlier stay stable.
type MoodLedger struct {
	kv         repository.KVStoreI
	classifier MoodClassifier
	now        Clock
	logger     *slog.Logger

	entries []entity.MoodEntry
}

func NewMoodLedger(kv repository.KVStoreI, classifier MoodClassifier, now Clock, logger *slog.Logger) *MoodLedger {
	if logger == nil {
		logger = slog.Default()
	}
	return &MoodLedger{
		kv:         kv,
		classifier: classifier,
		now:        now,
		logger:     logger.With(slog.String("component", "mood_ledger")),
		entries:    []entity.MoodEntry{},
	}
}

// Load replaces in-memory entries with the persisted ones. Missing or unreadable data leaves the ledger empty.
func (ml *MoodLedger) Load(ctx context.Context) {
	var stored []entity.MoodEntry
	found, err := repository.LoadJSON(ctx, ml.kv, MoodsKey, &stored)
	if err != nil {
		ml.logger.Error("loading moods failed, starting empty", slog.String("error", err.Error()))
	}
	if !found || stored == nil {
		stored = []entity.MoodEntry{}
	}
	ml.entries = stored
}

func (ml *MoodLedger) Add(ctx context.Context, req *AddMoodRequest) (entity.MoodEntry, error) {
	if err := validateStruct(req); err != nil {
		return entity.MoodEntry{}, err
	}
	var tags []string
	if strings.TrimSpace(req.Notes) != "" {
		tags = ml.classify(ctx, req.Notes)
	}
	entry := entity.MoodEntry{
		ID:            uuid.Must(uuid.NewV7()).String(),
		Timestamp:     ml.now(),
		Mood:          req.Mood,
		Intensity:     req.Intensity,
		Notes:         req.Notes,
		Tags:          tags,
		VoiceAnalysis: req.VoiceAnalysis,
	}
	updated := make([]entity.MoodEntry, 0, len(ml.entries)+1)
	updated = append(updated, entry)
	updated = append(updated, ml.entries...)
	ml.entries = updated
	ml.persist(ctx)
	return entry, nil
}

func (ml *MoodLedger) classify(ctx context.Context, notes string) []string {
	if ml.classifier == nil {
		return []string{classifierFallbackTag}
	}
	analysis, err := ml.classifier.Classify(ctx, notes)
	if err != nil {
		ml.logger.Warn("mood classification failed", slog.String("error", err.Error()))
		return []string{classifierFallbackTag}
	}
	return analysis.Tags
}

// Delete removes entry by id and reports whether it existed.
func (ml *MoodLedger) Delete(ctx context.Context, id string) bool {
	updated := make([]entity.MoodEntry, 0, len(ml.entries))
	for _, e := range ml.entries {
		if e.ID != id {
			updated = append(updated, e)
		}
	}
	removed := len(updated) != len(ml.entries)
	ml.entries = updated
	if removed {
		ml.persist(ctx)
	}
	return removed
}

// History yields entries created within the last days days, cutoff inclusive.
// The sequence can be ranged over any number of times.
func (ml *MoodLedger) History(days int) iter.Seq[entity.MoodEntry] {
	entries := ml.entries
	cutoff := ml.now().AddDate(0, 0, -days)
	return func(yield func(entity.MoodEntry) bool) {
		for _, e := range entries {
			if e.Timestamp.Before(cutoff) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

func (ml *MoodLedger) Entries() []entity.MoodEntry {
	out := make([]entity.MoodEntry, len(ml.entries))
	copy(out, ml.entries)
	return out
}

// Streak counts consecutive days with entries ending today, as of the clock at call time.
func (ml *MoodLedger) Streak() int {
	return CurrentStreak(entryTimestamps(ml.entries), ml.now())
}

// WeeklyAverageIntensity is the mean intensity over the trailing 7 days, 0 without entries.
func (ml *MoodLedger) WeeklyAverageIntensity() float64 {
	sum, count := 0, 0
	for e := range ml.History(weekDays) {
		sum += e.Intensity
		count++
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

func (ml *MoodLedger) Summary() entity.MoodSummary {
	now := ml.now()
	today := dayOf(now, now.Location())
	summary := entity.MoodSummary{
		CurrentStreak:          CurrentStreak(entryTimestamps(ml.entries), now),
		WeeklyAverageIntensity: roundTo(ml.WeeklyAverageIntensity(), 1),
	}
	for e := range ml.History(weekDays) {
		summary.WeeklyEntries++
		if dayOf(e.Timestamp, now.Location()).Equal(today) {
			summary.EntriesToday++
		}
	}
	return summary
}

// Reset drops in-memory entries without touching storage.
func (ml *MoodLedger) Reset() {
	ml.entries = []entity.MoodEntry{}
}

func (ml *MoodLedger) persist(ctx context.Context) {
	if err := repository.SaveJSON(ctx, ml.kv, MoodsKey, ml.entries); err != nil {
		ml.logger.Error("saving moods failed", slog.String("error", err.Error()))
	}
}

func entryTimestamps(entries []entity.MoodEntry) []time.Time {
	out := make([]time.Time, len(entries))
	for i, e := range entries {
		out[i] = e.Timestamp
	}
	return out
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
