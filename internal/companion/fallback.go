package companion

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/entity"
)

var cannedResponses = []string{
	"I understand how you're feeling. Would you like to talk more about what's on your mind?",
	"Thank you for sharing that with me. Your feelings are completely valid.",
	"It sounds like you're going through a challenging time. Remember, it's okay to take things one step at a time.",
	"I hear you. Sometimes just expressing our thoughts can help us process them better.",
	"That's a great insight. How do you think you might approach this situation?",
	"Your strength in reaching out shows real courage. What support do you feel you need right now?",
}

// CannedResponder answers with a random pre-written reply. Used when no LLM is configured.
type CannedResponder struct{}

func (CannedResponder) Reply(context.Context, string, []string) (string, error) {
	return cannedResponses[rand.IntN(len(cannedResponses))], nil
}

var (
	positiveWords = []string{"happy", "great", "awesome", "good", "wonderful", "amazing"}
	negativeWords = []string{"sad", "terrible", "awful", "bad", "horrible", "depressed"}
	anxietyWords  = []string{"worried", "anxious", "stressed", "nervous", "overwhelmed"}
)

// KeywordClassifier scores text by counting mood words. It never fails.
type KeywordClassifier struct{}

func (KeywordClassifier) Classify(_ context.Context, text string) (entity.MoodAnalysis, error) {
	var positive, negative, anxiety int
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()")
		switch {
		case slices.Contains(positiveWords, word):
			positive++
		case slices.Contains(negativeWords, word):
			negative++
		case slices.Contains(anxietyWords, word):
			anxiety++
		}
	}
	score := positive - negative - anxiety

	tags := make([]string, 0, 3)
	if anxiety > 0 {
		tags = append(tags, "anxiety")
	}
	if negative > positive {
		tags = append(tags, "support-needed")
	}
	if positive > 0 {
		tags = append(tags, "positive")
	}

	analysis := entity.MoodAnalysis{Tags: tags}
	switch {
	case score >= 2:
		analysis.Mood, analysis.Intensity = entity.MoodExcellent, min(10, 7+score)
	case score >= 1:
		analysis.Mood, analysis.Intensity = entity.MoodGood, 6+score
	case score >= -1:
		analysis.Mood, analysis.Intensity = entity.MoodOkay, 5
	case score >= -2:
		analysis.Mood, analysis.Intensity = entity.MoodLow, 4+score
	default:
		analysis.Mood, analysis.Intensity = entity.MoodTerrible, max(1, 3+score)
	}
	return analysis, nil
}

// FallbackClassifier asks Primary first and falls back to Secondary on error.
type FallbackClassifier struct {
	Primary   service.MoodClassifier
	Secondary service.MoodClassifier
}

func (fc FallbackClassifier) Classify(ctx context.Context, text string) (entity.MoodAnalysis, error) {
	analysis, err := fc.Primary.Classify(ctx, text)
	if err == nil {
		return analysis, nil
	}
	return fc.Secondary.Classify(ctx, text)
}

// LogNotifier records crisis detections in the log.
type LogNotifier struct {
	Logger *slog.Logger
}

func (ln LogNotifier) CrisisDetected(_ context.Context, uid, keyword, _ string) {
	logger := ln.Logger
	if logger == nil {
		logger = slog.Default()
	}
	// message text stays out of logs
	logger.Warn("crisis signal", slog.String("uid", uid), slog.String("keyword", keyword))
}
