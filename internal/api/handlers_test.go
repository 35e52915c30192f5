package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/limbo/serenity/internal/api"
	"github.com/limbo/serenity/internal/repository"
	repomocks "github.com/limbo/serenity/internal/repository/mocks"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/internal/service/mocks"
	"github.com/limbo/serenity/pkg/entity"
	jwtservice "github.com/limbo/serenity/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

var (
	email    = "alex@example.com"
	password = "test_password"
	username = "Alex"
	testNow  = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
)

type testEnv struct {
	serv        *api.Server
	store       *repository.MemoryKV
	userService *service.UserService
	workspaces  *service.Workspaces
	jwt         *jwtservice.JWTService
}

func newTestEnv(t *testing.T, responder service.Responder) *testEnv {
	t.Helper()
	store := repository.NewMemoryKV()
	clock := func() time.Time { return testNow }
	userService := service.NewUserService(repository.NewAccountsRepo(store), clock)
	jwt := jwtservice.New("secret", time.Hour)
	workspaces := service.NewWorkspaces(service.WorkspaceDeps{
		Store:     store,
		Responder: responder,
		Clock:     clock,
	})
	serv := api.New(&api.ServicesList{
		UserService: userService,
		Workspaces:  workspaces,
		JwtService:  jwt,
		Store:      store,
		AppVersion: "1.0.0",
	})
	return &testEnv{
		serv:        serv,
		store:       store,
		userService: userService,
		workspaces:  workspaces,
		jwt:         jwt,
	}
}

// do sends body as JSON unless it is a string, which goes as is.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := sonic.ConfigDefault.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	e.serv.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func (e *testEnv) guestToken(t *testing.T) string {
	t.Helper()
	rr := e.do(t, http.MethodPost, "/auth/guest", "", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	resp := decode[api.AuthResponse](t, rr)
	require.True(t, resp.User.IsGuest)
	return resp.Token
}

func TestAuthHandlers(t *testing.T) {
	env := newTestEnv(t, nil)
	signUp := api.SignUpRequest{Email: email, Password: password, Name: username}
	var token string

	t.Run("signed up", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/auth/signup", "", signUp)
		require.Equal(t, http.StatusCreated, rr.Code)
		resp := decode[api.AuthResponse](t, rr)
		assert.Equal(t, email, resp.User.Email)
		assert.False(t, resp.User.IsGuest)
		assert.NotEmpty(t, resp.Token)
	})

	testCases := []struct {
		Desc         string
		Path         string
		Body         any
		ExpectedCode int
	}{
		{Desc: "sign up: existed user", Path: "/auth/signup", Body: signUp, ExpectedCode: http.StatusConflict},
		{Desc: "sign up: invalid email", Path: "/auth/signup", Body: api.SignUpRequest{Email: "nope", Password: password, Name: username}, ExpectedCode: http.StatusUnprocessableEntity},
		{Desc: "sign up: short password", Path: "/auth/signup", Body: api.SignUpRequest{Email: "b@example.com", Password: "123", Name: username}, ExpectedCode: http.StatusUnprocessableEntity},
		{Desc: "sign up: invalid body", Path: "/auth/signup", Body: "corrupted", ExpectedCode: http.StatusBadRequest},
		{Desc: "login: wrong password", Path: "/auth/login", Body: api.LoginRequest{Email: email, Password: password + "1"}, ExpectedCode: http.StatusForbidden},
		{Desc: "login: unknown email", Path: "/auth/login", Body: api.LoginRequest{Email: "who@example.com", Password: password}, ExpectedCode: http.StatusForbidden},
		{Desc: "login: missing password", Path: "/auth/login", Body: api.LoginRequest{Email: email}, ExpectedCode: http.StatusUnprocessableEntity},
		{Desc: "login: invalid body", Path: "/auth/login", Body: nil, ExpectedCode: http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			rr := env.do(t, http.MethodPost, tc.Path, "", tc.Body)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}

	t.Run("logged in with differently cased email", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{Email: "ALEX@example.com", Password: password})
		require.Equal(t, http.StatusOK, rr.Code)
		token = decode[api.AuthResponse](t, rr).Token
		require.NotEmpty(t, token)
	})
	t.Run("me", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/me", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		user := decode[entity.User](t, rr)
		assert.Equal(t, email, user.Email)
		assert.Equal(t, username, user.Name)
	})
	t.Run("logout gives guest", func(t *testing.T) {
		claims, err := env.jwt.ParseToken(token)
		require.NoError(t, err)
		before := env.workspaces.Get(context.Background(), claims.UserID)

		rr := env.do(t, http.MethodPost, "/auth/logout", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[api.AuthResponse](t, rr)
		assert.True(t, resp.User.IsGuest)
		assert.True(t, service.IsGuestID(resp.User.ID))

		rr = env.do(t, http.MethodGet, "/me", resp.Token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, decode[entity.User](t, rr).IsGuest)

		// requests with the old token keep using the same workspace and lock
		assert.Same(t, before, env.workspaces.Get(context.Background(), claims.UserID))
		rr = env.do(t, http.MethodPost, "/moods", token, api.AddMoodRequest{Mood: entity.MoodGood, Intensity: 6})
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Len(t, before.Ledger.Entries(), 1)
	})
	t.Run("delete account", func(t *testing.T) {
		rr := env.do(t, http.MethodDelete, "/me", token, api.DeleteAccountRequest{Password: "wrong_password"})
		assert.Equal(t, http.StatusForbidden, rr.Code)

		rr = env.do(t, http.MethodDelete, "/me", token, api.DeleteAccountRequest{Password: password})
		assert.Equal(t, http.StatusNoContent, rr.Code)

		rr = env.do(t, http.MethodGet, "/me", token, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("guest can't delete account", func(t *testing.T) {
		rr := env.do(t, http.MethodDelete, "/me", env.guestToken(t), api.DeleteAccountRequest{Password: password})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func testHandler(w http.ResponseWriter, r *http.Request) {
	uid, err := api.GetUIDFromContext(r)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"uid": "` + uid + `"}`))
}

func TestAuthMiddleware(t *testing.T) {
	env := newTestEnv(t, nil)
	handler := env.serv.AuthMiddleware(http.HandlerFunc(testHandler))
	user, err := env.userService.SignUp(context.Background(), &service.SignUpRequest{
		Email:    email,
		Password: password,
		Name:     username,
	})
	require.NoError(t, err)
	userToken, err := env.jwt.GenerateToken(user)
	require.NoError(t, err)
	ghostToken, err := env.jwt.GenerateToken(&entity.User{ID: "0190a0c4-7a1c-7cc2-8d8e-6f5d7b0b1f11", Name: "ghost"})
	require.NoError(t, err)
	fakeGuestToken, err := env.jwt.GenerateToken(&entity.User{ID: user.ID, IsGuest: true})
	require.NoError(t, err)
	guestToken, err := env.jwt.GenerateToken(env.userService.Guest())
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		Header       string
		ExpectedCode int
	}{
		{Desc: "registered user", Header: "Bearer " + userToken, ExpectedCode: http.StatusOK},
		{Desc: "guest", Header: "Bearer " + guestToken, ExpectedCode: http.StatusOK},
		{Desc: "no header", Header: "", ExpectedCode: http.StatusUnauthorized},
		{Desc: "wrong scheme", Header: "Basic " + userToken, ExpectedCode: http.StatusUnauthorized},
		{Desc: "garbage token", Header: "Bearer abc.def.ghi", ExpectedCode: http.StatusUnauthorized},
		{Desc: "unexist user", Header: "Bearer " + ghostToken, ExpectedCode: http.StatusNotFound},
		{Desc: "guest claim for registered id", Header: "Bearer " + fakeGuestToken, ExpectedCode: http.StatusUnauthorized},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/endpoint", nil)
			if tc.Header != "" {
				req.Header.Set("Authorization", tc.Header)
			}
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestMoodHandlers(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.guestToken(t)
	var entryID string

	t.Run("logged", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/moods", token, api.AddMoodRequest{
			Mood:      entity.MoodGood,
			Intensity: 7,
			Notes:     "Long walk in the park",
			VoiceAnalysis: &entity.VoiceAnalysis{
				Tone:    entity.ToneCalm,
				Energy:  6,
				Clarity: 8,
			},
		})
		require.Equal(t, http.StatusCreated, rr.Code)
		entry := decode[entity.MoodEntry](t, rr)
		assert.Equal(t, entity.MoodGood, entry.Mood)
		assert.Equal(t, []string{"Thank you for sharing your thoughts"}, entry.Tags)
		entryID = entry.ID
	})

	testCases := []struct {
		Desc         string
		Body         any
		ExpectedCode int
	}{
		{Desc: "intensity out of range", Body: api.AddMoodRequest{Mood: entity.MoodLow, Intensity: 11}, ExpectedCode: http.StatusUnprocessableEntity},
		{Desc: "unknown mood", Body: api.AddMoodRequest{Mood: "meh", Intensity: 5}, ExpectedCode: http.StatusUnprocessableEntity},
		{Desc: "bad voice tone", Body: api.AddMoodRequest{Mood: entity.MoodLow, Intensity: 5, VoiceAnalysis: &entity.VoiceAnalysis{Tone: "bored", Energy: 5, Clarity: 5}}, ExpectedCode: http.StatusUnprocessableEntity},
		{Desc: "corrupted body", Body: "corrupted", ExpectedCode: http.StatusBadRequest},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			rr := env.do(t, http.MethodPost, "/moods", token, tc.Body)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}

	t.Run("listed", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/moods?days=7", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[api.GetMoodsResponse](t, rr)
		assert.Len(t, resp.Entries, 1)
		assert.Equal(t, 1, resp.Streak)
		assert.Equal(t, 7, resp.Days)
	})
	t.Run("invalid days", func(t *testing.T) {
		for _, days := range []string{"abc", "0", "-3"} {
			rr := env.do(t, http.MethodGet, "/moods?days="+days, token, nil)
			assert.Equal(t, http.StatusBadRequest, rr.Code, days)
		}
	})
	t.Run("summary", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/moods/summary", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		summary := decode[entity.MoodSummary](t, rr)
		assert.Equal(t, entity.MoodSummary{
			CurrentStreak:          1,
			EntriesToday:           1,
			WeeklyEntries:          1,
			WeeklyAverageIntensity: 7,
		}, summary)
	})
	t.Run("deleted", func(t *testing.T) {
		rr := env.do(t, http.MethodDelete, "/moods/unknown", token, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)

		rr = env.do(t, http.MethodDelete, "/moods/"+entryID, token, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)

		rr = env.do(t, http.MethodGet, "/moods", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, decode[api.GetMoodsResponse](t, rr).Entries)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/moods", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func validAnswers() map[string]any {
	return map[string]any{
		service.QuestionAge:                   21,
		service.QuestionFriends:               1,
		service.QuestionInteraction:           2,
		service.QuestionParentalCommunication: "monthly",
		service.QuestionParentalSharing:       "never",
		service.QuestionStressLevel:           8,
		service.QuestionSleepQuality:          "poor",
		service.QuestionSelfCare:              1,
		service.QuestionDailyMood:             "mostly_negative",
		service.QuestionFutureOutlook:         "pessimistic",
	}
}

func TestAssessmentHandlers(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.guestToken(t)
	answer := func(t *testing.T, id string, value any) *httptest.ResponseRecorder {
		return env.do(t, http.MethodPut, "/assessment/answers/"+id, token, map[string]any{"value": value})
	}

	t.Run("catalog", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/assessment", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[api.AssessmentResponse](t, rr)
		assert.Len(t, resp.Questions, 10)
		assert.Equal(t, entity.AssessmentNotStarted, resp.State.Status)
	})

	testCases := []struct {
		Desc         string
		QuestionID   string
		Value        any
		ExpectedCode int
	}{
		{Desc: "unknown question", QuestionID: "q99", Value: 1, ExpectedCode: http.StatusNotFound},
		{Desc: "slider out of range", QuestionID: service.QuestionStressLevel, Value: 11, ExpectedCode: http.StatusUnprocessableEntity},
		{Desc: "unknown option", QuestionID: service.QuestionSleepQuality, Value: "awful", ExpectedCode: http.StatusUnprocessableEntity},
		{Desc: "text for slider", QuestionID: service.QuestionAge, Value: "twenty", ExpectedCode: http.StatusUnprocessableEntity},
		{Desc: "answered", QuestionID: service.QuestionStressLevel, Value: 8, ExpectedCode: http.StatusOK},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			rr := answer(t, tc.QuestionID, tc.Value)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}

	t.Run("navigation clamps", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/assessment/previous", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 0, decode[entity.AssessmentState](t, rr).CurrentIndex)

		rr = env.do(t, http.MethodPost, "/assessment/next", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		state := decode[entity.AssessmentState](t, rr)
		assert.Equal(t, 1, state.CurrentIndex)
		assert.Equal(t, entity.AssessmentInProgress, state.Status)
	})
	t.Run("incomplete submit rejected", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/assessment/submit", token, nil)
		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
		assert.Contains(t, rr.Body.String(), service.QuestionAge)
	})
	t.Run("submitted", func(t *testing.T) {
		for id, value := range validAnswers() {
			require.Equal(t, http.StatusOK, answer(t, id, value).Code, id)
		}
		rr := env.do(t, http.MethodPost, "/assessment/submit", token, nil)
		require.Equal(t, http.StatusCreated, rr.Code)
		results := decode[entity.PsychometricResults](t, rr)
		assert.Len(t, results.Responses, 10)
		assert.Equal(t, testNow, results.CompletedAt.UTC())

		rr = env.do(t, http.MethodPost, "/assessment/submit", token, nil)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Equal(t, http.StatusConflict, answer(t, service.QuestionAge, 30).Code)

		rr = env.do(t, http.MethodGet, "/assessment/results", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, results.AnalysisProfile, decode[entity.PsychometricResults](t, rr).AnalysisProfile)
	})
	t.Run("reset", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/assessment/reset", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, entity.AssessmentNotStarted, decode[entity.AssessmentState](t, rr).Status)

		rr = env.do(t, http.MethodGet, "/assessment/results", token, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestSendMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	responder := mocks.NewMockResponder(ctrl)
	env := newTestEnv(t, responder)
	token := env.guestToken(t)

	testCases := []struct {
		Desc          string
		Body          any
		MockPrepFunc  func()
		ExpectedCode  int
		ExpectedReply string
		Crisis        bool
	}{
		{
			Desc: "replied",
			Body: api.SendMessageRequest{Message: "I had a rough day"},
			MockPrepFunc: func() {
				responder.EXPECT().Reply(gomock.Any(), "I had a rough day", []string{}).Return("I'm here for you.", nil)
			},
			ExpectedCode:  http.StatusCreated,
			ExpectedReply: "I'm here for you.",
		},
		{
			Desc: "responder failed",
			Body: api.SendMessageRequest{Message: "Still rough"},
			MockPrepFunc: func() {
				responder.EXPECT().Reply(gomock.Any(), "Still rough", []string{"I had a rough day"}).Return("", errors.New("timeout"))
			},
			ExpectedCode:  http.StatusCreated,
			ExpectedReply: service.FallbackMessage,
		},
		{
			Desc: "crisis",
			Body: api.SendMessageRequest{Message: "Sometimes I want to die"},
			MockPrepFunc: func() {
				responder.EXPECT().Reply(gomock.Any(), "Sometimes I want to die", gomock.Len(2)).Return("Please reach out.", nil)
			},
			ExpectedCode:  http.StatusCreated,
			ExpectedReply: "Please reach out.",
			Crisis:        true,
		},
		{
			Desc:         "blank",
			Body:         api.SendMessageRequest{Message: "   "},
			MockPrepFunc: func() {},
			ExpectedCode: http.StatusNoContent,
		},
		{
			Desc:         "too long",
			Body:         api.SendMessageRequest{Message: strings.Repeat("a", 4001)},
			MockPrepFunc: func() {},
			ExpectedCode: http.StatusUnprocessableEntity,
		},
		{
			Desc:         "corrupted body",
			Body:         "corrupted",
			MockPrepFunc: func() {},
			ExpectedCode: http.StatusBadRequest,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := env.do(t, http.MethodPost, "/companion/messages", token, tc.Body)
			require.Equal(t, tc.ExpectedCode, rr.Code)
			if tc.ExpectedCode != http.StatusCreated {
				return
			}
			resp := decode[map[string]any](t, rr)
			reply, ok := resp["reply"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tc.ExpectedReply, reply["content"])
			assert.Equal(t, tc.Crisis, resp["crisis_detected"])
			_, hasResources := resp["crisis_resources"]
			assert.Equal(t, tc.Crisis, hasResources)
		})
	}

	t.Run("listed and cleared", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/companion/messages", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[[]entity.AIMessage](t, rr), 7)

		rr = env.do(t, http.MethodDelete, "/companion/messages", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		msgs := decode[[]entity.AIMessage](t, rr)
		require.Len(t, msgs, 1)
		assert.Equal(t, service.WelcomeMessage, msgs[0].Content)
	})
}

func TestSettingsHandlers(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.guestToken(t)

	rr := env.do(t, http.MethodGet, "/settings", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, entity.Settings{}, decode[entity.Settings](t, rr))

	rr = env.do(t, http.MethodPut, "/settings", token, entity.Settings{OnboardingCompleted: true})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = env.do(t, http.MethodGet, "/settings", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, entity.Settings{OnboardingCompleted: true}, decode[entity.Settings](t, rr))

	rr = env.do(t, http.MethodPut, "/settings", token, "corrupted")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestExportAndClearData(t *testing.T) {
	env := newTestEnv(t, nil)
	token := env.guestToken(t)
	rr := env.do(t, http.MethodPost, "/moods", token, api.AddMoodRequest{Mood: entity.MoodOkay, Intensity: 5})
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("exported", func(t *testing.T) {
		rr := env.do(t, http.MethodGet, "/export", token, nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "attachment; filename=wellness-report-2025-06-15.json", rr.Header().Get("Content-Disposition"))
		report := decode[service.Report](t, rr)
		assert.Equal(t, 1, report.MoodData.TotalEntries)
		assert.Equal(t, "1.0.0", report.ExportInfo.AppVersion)
		assert.True(t, report.UserProfile.IsGuest)
		assert.Equal(t, service.TrendInsufficientData, report.Analytics.ImprovementTrend)
	})
	t.Run("clear requires confirmation", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/data/clear", token, api.ClearDataRequest{})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		rr = env.do(t, http.MethodGet, "/moods", token, nil)
		assert.Len(t, decode[api.GetMoodsResponse](t, rr).Entries, 1)
	})
	t.Run("cleared", func(t *testing.T) {
		rr := env.do(t, http.MethodPost, "/data/clear", token, api.ClearDataRequest{Confirm: true})
		require.Equal(t, http.StatusOK, rr.Code)

		rr = env.do(t, http.MethodGet, "/moods", token, nil)
		assert.Empty(t, decode[api.GetMoodsResponse](t, rr).Entries)
		rr = env.do(t, http.MethodGet, "/companion/messages", token, nil)
		assert.Len(t, decode[[]entity.AIMessage](t, rr), 1)
	})
}

func TestPublicHandlers(t *testing.T) {
	t.Run("crisis resources", func(t *testing.T) {
		env := newTestEnv(t, nil)
		rr := env.do(t, http.MethodGet, "/crisis-resources", "", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Len(t, decode[[]entity.CrisisResource](t, rr), 4)
	})

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := repomocks.NewMockKVStoreI(ctrl)
	serv := api.New(&api.ServicesList{
		Store:      store,
		AppVersion: "1.0.0",
	})
	testCases := []struct {
		Desc         string
		MockPrepFunc func()
		ExpectedCode int
	}{
		{
			Desc: "healthy",
			MockPrepFunc: func() {
				store.EXPECT().Ping(gomock.Any()).Return(nil)
			},
			ExpectedCode: http.StatusOK,
		},
		{
			Desc: "storage down",
			MockPrepFunc: func() {
				store.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
			},
			ExpectedCode: http.StatusServiceUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}
