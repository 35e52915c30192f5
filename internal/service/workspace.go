package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/pkg/entity"
)

const (
	UserKey = "user"

	workspaceNamespacePrefix = "ws:"
)

// Workspace bundles the services of one identity over its own key namespace.
type Workspace struct {
	mu sync.Mutex

	UID          string
	Ledger       *MoodLedger
	Engine       *PsychometricEngine
	Conversation *Conversation
	Settings     *SettingsService

	kv     repository.KVStoreI
	now    Clock
	logger *slog.Logger
}

// Do runs fn with the workspace locked. Operations of one identity never interleave.
func (ws *Workspace) Do(fn func() error) error {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return fn()
}

// CurrentUser returns the stored identity, or fallback when none is stored or it can't be read.
func (ws *Workspace) CurrentUser(ctx context.Context, fallback *entity.User) *entity.User {
	var user entity.User
	found, err := repository.LoadJSON(ctx, ws.kv, UserKey, &user)
	if err != nil {
		ws.logger.Error("loading user failed, using fallback", slog.String("error", err.Error()))
	}
	if !found || user.ID == "" {
		return fallback
	}
	return &user
}

func (ws *Workspace) SetUser(ctx context.Context, user *entity.User) {
	if err := repository.SaveJSON(ctx, ws.kv, UserKey, user); err != nil {
		ws.logger.Error("saving user failed", slog.String("error", err.Error()))
	}
}

func (ws *Workspace) RemoveUser(ctx context.Context) {
	if err := ws.kv.Remove(ctx, UserKey); err != nil {
		ws.logger.Error("removing user failed", slog.String("error", err.Error()))
	}
}

// ClearAllData wipes every key of the workspace and resets in-memory state.
// Deletion is best effort: keys that failed are reported together, the rest stay deleted.
func (ws *Workspace) ClearAllData(ctx context.Context, confirm bool) error {
	if !confirm {
		return errorvalues.ErrConfirmationRequired
	}
	keys, err := ws.kv.Keys(ctx, "")
	if err != nil {
		return errors.New("listing workspace keys error: " + err.Error())
	}
	var errs error
	for _, key := range keys {
		if err = ws.kv.Remove(ctx, key); err != nil {
			errs = errors.Join(errs, errors.New("removing "+key+" error: "+err.Error()))
		}
	}
	ws.Ledger.Reset()
	ws.Conversation.Reset()
	ws.Engine.reset()
	return errs
}

// Report builds the export report from current workspace state.
func (ws *Workspace) Report(ctx context.Context, fallback *entity.User, appVersion string) *Report {
	var assessment *entity.PsychometricResults
	if results, err := ws.Engine.Results(ctx); err == nil {
		assessment = results
	}
	return BuildReport(ReportInput{
		User:                ws.CurrentUser(ctx, fallback),
		OnboardingCompleted: ws.Settings.Get(ctx).OnboardingCompleted,
		Moods:               ws.Ledger.Entries(),
		Messages:            ws.Conversation.Messages(),
		Assessment:          assessment,
		GeneratedAt:         ws.now(),
		AppVersion:          appVersion,
	})
}

type WorkspaceDeps struct {
	Store      repository.KVStoreI
	Responder  Responder
	Classifier MoodClassifier
	Notifier   CrisisNotifier
	Clock      Clock
	Logger     *slog.Logger
}

// Workspaces lazily opens and caches one Workspace per identity.
// Entries are never evicted: every caller of one uid gets the same Workspace and the same lock.
type Workspaces struct {
	mu    sync.Mutex
	deps  WorkspaceDeps
	cache map[string]*Workspace
}

func NewWorkspaces(deps WorkspaceDeps) *Workspaces {
	if deps.Store == nil {
		panic("workspaces: nil store")
	}
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Workspaces{
		deps:  deps,
		cache: make(map[string]*Workspace),
	}
}

// Get returns the workspace of uid, loading its persisted state on first use.
func (w *Workspaces) Get(ctx context.Context, uid string) *Workspace {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ws, ok := w.cache[uid]; ok {
		return ws
	}
	kv := repository.NewNamespaced(w.deps.Store, workspaceNamespacePrefix+uid)
	logger := w.deps.Logger.With(slog.String("uid", uid))
	ws := &Workspace{
		UID:          uid,
		Ledger:       NewMoodLedger(kv, w.deps.Classifier, w.deps.Clock, logger),
		Engine:       NewPsychometricEngine(kv, uid, w.deps.Clock, logger),
		Conversation: NewConversation(kv, uid, w.deps.Responder, w.deps.Notifier, w.deps.Clock, logger),
		Settings:     NewSettingsService(kv, logger),
		kv:           kv,
		now:          w.deps.Clock,
		logger:       logger,
	}
	ws.Ledger.Load(ctx)
	ws.Engine.Load(ctx)
	ws.Conversation.Load(ctx)
	w.cache[uid] = ws
	return ws
}

