package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/entity"
	"github.com/limbo/serenity/pkg/httputil"
)

const maxMessageLength = 4000

type SendMessageRequest struct {
	Message string `json:"message"`
}

type SendMessageResponse struct {
	*service.SendResult
	CrisisResources []entity.CrisisResource `json:"crisis_resources,omitempty"`
}

func (s *Server) GetMessages(w http.ResponseWriter, r *http.Request) {
	ws, _, ok := s.userWorkspace(w, r, "get messages")
	if !ok {
		return
	}
	var messages []entity.AIMessage
	ws.Do(func() error {
		messages = ws.Conversation.Messages()
		return nil
	})
	httputil.WriteJSONResponse(w, http.StatusOK, messages)
}

// SendMessage posts a user message and answers with it and the companion reply.
// Blank message changes nothing and gets 204.
func (s *Server) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, _, ok := s.userWorkspace(w, r, "send message")
	if !ok {
		return
	}
	var req SendMessageRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("send message error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if utf8.RuneCountInString(req.Message) > maxMessageLength {
		logger.Error("send message error: message too long")
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, "message is too long", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Minute)
	defer cancel()
	var result *service.SendResult
	err := ws.Do(func() error {
		var err error
		result, err = ws.Conversation.Send(ctx, req.Message)
		return err
	})
	if err != nil {
		logger.Error("send message error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while sending message", nil)
		return
	}
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	resp := SendMessageResponse{SendResult: result}
	if result.CrisisDetected {
		resp.CrisisResources = service.CrisisResources()
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, resp)
}

func (s *Server) ClearMessages(w http.ResponseWriter, r *http.Request) {
	ws, _, ok := s.userWorkspace(w, r, "clear messages")
	if !ok {
		return
	}
	var messages []entity.AIMessage
	ws.Do(func() error {
		ws.Conversation.Clear(r.Context())
		messages = ws.Conversation.Messages()
		return nil
	})
	httputil.WriteJSONResponse(w, http.StatusOK, messages)
	GetLoggerFromCtx(r.Context()).Info("conversation cleared")
}
