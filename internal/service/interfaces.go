package service

import (
	"context"
	"time"

	"github.com/limbo/serenity/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/limbo/serenity/internal/service Responder,MoodClassifier,CrisisNotifier

// Clock returns current wall-clock time. Its location defines calendar days.
type Clock func() time.Time

// Responder produces a companion reply to prompt, given up to 3 prior user messages.
type Responder interface {
	Reply(ctx context.Context, prompt string, history []string) (string, error)
}

// MoodClassifier derives mood, intensity and supportive tags from free text.
type MoodClassifier interface {
	Classify(ctx context.Context, text string) (entity.MoodAnalysis, error)
}

// CrisisNotifier receives crisis keyword detections. Must not block for long.
type CrisisNotifier interface {
	CrisisDetected(ctx context.Context, uid, keyword, text string)
}

type SignUpRequest struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=6,max=72"`
	Name     string `validate:"required,display_name,max=100"`
}

type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type AddMoodRequest struct {
	Mood          entity.MoodType       `validate:"required,mood_type"`
	Intensity     int                   `validate:"min=1,max=10"`
	Notes         string                `validate:"max=2000"`
	VoiceAnalysis *entity.VoiceAnalysis `validate:"omitempty"`
}

type UserServiceI interface {
	// Validates request, stores new account. Returns user without credentials
	SignUp(ctx context.Context, req *SignUpRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data
	Login(ctx context.Context, req *LoginRequest) (*entity.User, error)
	// Creates fresh guest identity, nothing is persisted
	Guest() *entity.User
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// Checks password, then removes the account record
	DeleteAccount(ctx context.Context, id, password string) error
}
