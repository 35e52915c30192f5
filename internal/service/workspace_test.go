package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/internal/service/mocks"
	"github.com/limbo/serenity/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspacesIsolation(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKV()
	clock := newFakeClock()
	wss := service.NewWorkspaces(service.WorkspaceDeps{Store: store, Clock: clock.Now})

	a := wss.Get(ctx, "a")
	assert.Same(t, a, wss.Get(ctx, "a"))
	b := wss.Get(ctx, "b")

	_, err := a.Ledger.Add(ctx, &service.AddMoodRequest{Mood: entity.MoodGood, Intensity: 7})
	require.NoError(t, err)
	assert.Len(t, a.Ledger.Entries(), 1)
	assert.Empty(t, b.Ledger.Entries())

	keys, err := store.Keys(ctx, "ws:a:")
	require.NoError(t, err)
	assert.Equal(t, []string{"ws:a:moods"}, keys)

	reopened := service.NewWorkspaces(service.WorkspaceDeps{Store: store, Clock: clock.Now}).Get(ctx, "a")
	assert.NotSame(t, a, reopened)
	assert.Len(t, reopened.Ledger.Entries(), 1)
}

func TestWorkspaceReadsDontWrite(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKV()
	wss := service.NewWorkspaces(service.WorkspaceDeps{Store: store, Clock: newFakeClock().Now})
	ws := wss.Get(ctx, "unknown")

	report := ws.Report(ctx, &entity.User{ID: "unknown"}, "1.0.0")
	assert.Equal(t, 1, report.ConversationData.TotalMessages)
	ws.Ledger.Summary()
	ws.Engine.State()

	keys, err := store.Keys(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestWorkspaceStreakFollowsClock(t *testing.T) {
	ctx := context.Background()
	clock := newFakeClock()
	wss := service.NewWorkspaces(service.WorkspaceDeps{Store: repository.NewMemoryKV(), Clock: clock.Now})
	ws := wss.Get(ctx, "u1")
	_, err := ws.Ledger.Add(ctx, &service.AddMoodRequest{Mood: entity.MoodGood, Intensity: 7})
	require.NoError(t, err)

	clock.t = clock.t.AddDate(0, 0, 3)
	ws = wss.Get(ctx, "u1")
	assert.Equal(t, 0, ws.Ledger.Streak())
	assert.Equal(t, 0, ws.Ledger.Summary().CurrentStreak)
	report := ws.Report(ctx, &entity.User{ID: "u1"}, "1.0.0")
	assert.Equal(t, 0, report.Analytics.StreakData.Current)
	assert.Equal(t, 1, report.Analytics.StreakData.Longest)
}

func TestWorkspaceUser(t *testing.T) {
	ctx := context.Background()
	wss := service.NewWorkspaces(service.WorkspaceDeps{Store: repository.NewMemoryKV()})
	ws := wss.Get(ctx, "u1")
	guest := &entity.User{ID: "guest_1", IsGuest: true}

	assert.Same(t, guest, ws.CurrentUser(ctx, guest))
	ws.SetUser(ctx, &entity.User{ID: "u1", Email: "a@b.c", Name: "A"})
	assert.Equal(t, "A", ws.CurrentUser(ctx, guest).Name)
	ws.RemoveUser(ctx)
	assert.Same(t, guest, ws.CurrentUser(ctx, guest))
}

func TestClearAllData(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKV()
	wss := service.NewWorkspaces(service.WorkspaceDeps{Store: store, Clock: newFakeClock().Now})
	ws := wss.Get(ctx, "u1")
	other := wss.Get(ctx, "u2")

	_, err := ws.Ledger.Add(ctx, &service.AddMoodRequest{Mood: entity.MoodGood, Intensity: 7})
	require.NoError(t, err)
	_, err = other.Ledger.Add(ctx, &service.AddMoodRequest{Mood: entity.MoodGood, Intensity: 7})
	require.NoError(t, err)
	require.NoError(t, ws.Engine.Answer(ctx, service.QuestionAge, entity.NumberAnswer(20)))
	require.NoError(t, ws.Settings.Update(ctx, entity.Settings{OnboardingCompleted: true, NotificationsEnabled: true}))
	ws.SetUser(ctx, &entity.User{ID: "u1"})

	assert.ErrorIs(t, ws.ClearAllData(ctx, false), errorvalues.ErrConfirmationRequired)
	assert.Len(t, ws.Ledger.Entries(), 1)

	require.NoError(t, ws.ClearAllData(ctx, true))
	keys, err := store.Keys(ctx, "ws:u1:")
	require.NoError(t, err)
	assert.Empty(t, keys)
	assert.Empty(t, ws.Ledger.Entries())
	assert.Equal(t, entity.AssessmentNotStarted, ws.Engine.Status())
	assert.Len(t, ws.Conversation.Messages(), 1)
	assert.Equal(t, entity.Settings{}, ws.Settings.Get(ctx))

	assert.Len(t, other.Ledger.Entries(), 1)
	keys, err = store.Keys(ctx, "ws:u2:")
	require.NoError(t, err)
	assert.NotEmpty(t, keys)
}

func TestWorkspaceDoSerializes(t *testing.T) {
	ctx := context.Background()
	wss := service.NewWorkspaces(service.WorkspaceDeps{Store: repository.NewMemoryKV(), Clock: newFakeClock().Now})
	ws := wss.Get(ctx, "u1")
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ws.Do(func() error {
				_, err := ws.Ledger.Add(ctx, &service.AddMoodRequest{Mood: entity.MoodOkay, Intensity: 5})
				return err
			})
		}()
	}
	wg.Wait()
	assert.Len(t, ws.Ledger.Entries(), 20)

	sentinel := errors.New("boom")
	assert.ErrorIs(t, ws.Do(func() error { return sentinel }), sentinel)
}

func TestWorkspaceReport(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	responder := mocks.NewMockResponder(ctrl)
	responder.EXPECT().Reply(gomock.Any(), "hello", gomock.Any()).Return("hi", nil)
	wss := service.NewWorkspaces(service.WorkspaceDeps{
		Store:     repository.NewMemoryKV(),
		Responder: responder,
		Clock:     newFakeClock().Now,
	})
	ws := wss.Get(ctx, "u1")
	_, err := ws.Conversation.Send(ctx, "hello")
	require.NoError(t, err)
	_, err = ws.Ledger.Add(ctx, &service.AddMoodRequest{Mood: entity.MoodGood, Intensity: 8})
	require.NoError(t, err)
	_, err = ws.Engine.Submit(ctx)
	require.NoError(t, err)

	report := ws.Report(ctx, &entity.User{ID: "u1", Name: "Jane", Email: "j@example.com"}, "1.0.0")
	assert.Equal(t, "Jane", report.UserProfile.Name)
	assert.Equal(t, 1, report.MoodData.TotalEntries)
	assert.Equal(t, 3, report.ConversationData.TotalMessages)
	require.NotNil(t, report.Assessment)
	assert.Equal(t, "u1", report.Assessment.UserID)
	assert.Equal(t, 1, report.Analytics.StreakData.Current)
}
