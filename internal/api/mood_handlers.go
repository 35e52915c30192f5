package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"time"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/entity"
	"github.com/limbo/serenity/pkg/httputil"
)

const maxHistoryDays = 3650

type AddMoodRequest struct {
	Mood          entity.MoodType       `json:"mood"`
	Intensity     int                   `json:"intensity"`
	Notes         string                `json:"notes"`
	VoiceAnalysis *entity.VoiceAnalysis `json:"voice_analysis"`
}

type GetMoodsResponse struct {
	Days    int                `json:"days,omitempty"`
	Streak  int                `json:"streak"`
	Entries []entity.MoodEntry `json:"entries"`
}

// GetMoods lists entries newest first. Optional days query narrows it to the trailing window.
func (s *Server) GetMoods(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, _, ok := s.userWorkspace(w, r, "get moods")
	if !ok {
		return
	}
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		var err error
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 || days > maxHistoryDays {
			logger.Error("get moods error: invalid days", slog.String("days", raw))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "days must be a positive number", nil)
			return
		}
	}
	resp := GetMoodsResponse{Days: days}
	ws.Do(func() error {
		if days > 0 {
			resp.Entries = slices.Collect(ws.Ledger.History(days))
		} else {
			resp.Entries = ws.Ledger.Entries()
		}
		resp.Streak = ws.Ledger.Streak()
		return nil
	})
	if resp.Entries == nil {
		resp.Entries = []entity.MoodEntry{}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) AddMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, _, ok := s.userWorkspace(w, r, "add mood")
	if !ok {
		return
	}
	var req AddMoodRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("add mood error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*30)
	defer cancel()
	var entry entity.MoodEntry
	err := ws.Do(func() error {
		var err error
		entry, err = ws.Ledger.Add(ctx, &service.AddMoodRequest{
			Mood:          req.Mood,
			Intensity:     req.Intensity,
			Notes:         req.Notes,
			VoiceAnalysis: req.VoiceAnalysis,
		})
		return err
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrValidation) {
			logger.Error("add mood error: validation", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "invalid mood entry", err)
			return
		}
		logger.Error("add mood error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while adding mood", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, entry)
	logger.Info("mood logged")
}

func (s *Server) DeleteMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, _, ok := s.userWorkspace(w, r, "mood deletion")
	if !ok {
		return
	}
	id := r.PathValue("id")
	var deleted bool
	ws.Do(func() error {
		deleted = ws.Ledger.Delete(r.Context(), id)
		return nil
	})
	if !deleted {
		logger.Error("mood deletion error: unexist entry", slog.String("id", id))
		httputil.WriteErrorResponse(w, http.StatusNotFound, errorvalues.ErrEntryNotFound.Error(), nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) GetMoodSummary(w http.ResponseWriter, r *http.Request) {
	ws, _, ok := s.userWorkspace(w, r, "mood summary")
	if !ok {
		return
	}
	var summary entity.MoodSummary
	ws.Do(func() error {
		summary = ws.Ledger.Summary()
		return nil
	})
	httputil.WriteJSONResponse(w, http.StatusOK, summary)
}
