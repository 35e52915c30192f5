package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/entity"
	"github.com/limbo/serenity/pkg/httputil"
)

type AnswerRequest struct {
	Value entity.AnswerValue `json:"value"`
}

type AssessmentResponse struct {
	State     entity.AssessmentState        `json:"state"`
	Questions []entity.PsychometricQuestion `json:"questions"`
}

func (s *Server) GetAssessment(w http.ResponseWriter, r *http.Request) {
	ws, _, ok := s.userWorkspace(w, r, "get assessment")
	if !ok {
		return
	}
	var state entity.AssessmentState
	ws.Do(func() error {
		state = ws.Engine.State()
		return nil
	})
	httputil.WriteJSONResponse(w, http.StatusOK, AssessmentResponse{
		State:     state,
		Questions: service.Questions(),
	})
}

func (s *Server) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, _, ok := s.userWorkspace(w, r, "answer")
	if !ok {
		return
	}
	questionID := r.PathValue("questionID")
	var req AnswerRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("answer error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	var state entity.AssessmentState
	err := ws.Do(func() error {
		if err := ws.Engine.Answer(r.Context(), questionID, req.Value); err != nil {
			return err
		}
		state = ws.Engine.State()
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUnknownQuestion):
			logger.Error("answer error: unknown question", slog.String("question_id", questionID))
			httputil.WriteErrorResponse(w, http.StatusNotFound, "question doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrInvalidAnswer):
			logger.Error("answer error: invalid value", slog.String("question_id", questionID))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "answer doesn't fit the question", nil)
		case errors.Is(err, errorvalues.ErrAssessmentCompleted):
			logger.Error("answer error: assessment completed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "assessment already completed, reset it first", nil)
		default:
			logger.Error("answer error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while answering", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
}

func (s *Server) NextQuestion(w http.ResponseWriter, r *http.Request) {
	s.moveQuestion(w, r, (*service.PsychometricEngine).Advance)
}

func (s *Server) PreviousQuestion(w http.ResponseWriter, r *http.Request) {
	s.moveQuestion(w, r, (*service.PsychometricEngine).Retreat)
}

func (s *Server) moveQuestion(w http.ResponseWriter, r *http.Request, move func(*service.PsychometricEngine, context.Context) int) {
	ws, _, ok := s.userWorkspace(w, r, "move question")
	if !ok {
		return
	}
	var state entity.AssessmentState
	ws.Do(func() error {
		move(ws.Engine, r.Context())
		state = ws.Engine.State()
		return nil
	})
	httputil.WriteJSONResponse(w, http.StatusOK, state)
}

// SubmitAssessment accepts only fully answered questionnaire.
func (s *Server) SubmitAssessment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, _, ok := s.userWorkspace(w, r, "submit assessment")
	if !ok {
		return
	}
	var results *entity.PsychometricResults
	err := ws.Do(func() error {
		if ws.Engine.Status() == entity.AssessmentCompleted {
			return errorvalues.ErrAssessmentCompleted
		}
		if missing := ws.Engine.Missing(); len(missing) > 0 {
			return fmt.Errorf("%w: %s", errorvalues.ErrAssessmentIncomplete, strings.Join(missing, ", "))
		}
		var err error
		results, err = ws.Engine.Submit(r.Context())
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAssessmentCompleted):
			logger.Error("submit error: assessment completed")
			httputil.WriteErrorResponse(w, http.StatusConflict, "assessment already completed", nil)
		case errors.Is(err, errorvalues.ErrAssessmentIncomplete):
			logger.Error("submit error: unanswered questions", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "please answer all questions", err)
		default:
			logger.Error("submit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving results", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, results)
	logger.Info("assessment submitted")
}

func (s *Server) ResetAssessment(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, _, ok := s.userWorkspace(w, r, "reset assessment")
	if !ok {
		return
	}
	var state entity.AssessmentState
	err := ws.Do(func() error {
		err := ws.Engine.Reset(r.Context())
		state = ws.Engine.State()
		return err
	})
	if err != nil {
		logger.Error("reset assessment error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "assessment reset, but stored answers weren't fully removed", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
}

func (s *Server) GetAssessmentResults(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, _, ok := s.userWorkspace(w, r, "assessment results")
	if !ok {
		return
	}
	var results *entity.PsychometricResults
	err := ws.Do(func() error {
		var err error
		results, err = ws.Engine.Results(r.Context())
		return err
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrResultsNotFound) {
			logger.Error("assessment results error: not found")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "assessment results don't exist", nil)
			return
		}
		logger.Error("assessment results error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while loading results", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, results)
}
