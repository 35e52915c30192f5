package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/service"
	"github.com/limbo/serenity/pkg/entity"
	"github.com/limbo/serenity/pkg/httputil"
)

type ClearDataRequest struct {
	Confirm bool `json:"confirm"`
}

func (s *Server) GetSettings(w http.ResponseWriter, r *http.Request) {
	ws, _, ok := s.userWorkspace(w, r, "get settings")
	if !ok {
		return
	}
	var settings entity.Settings
	ws.Do(func() error {
		settings = ws.Settings.Get(r.Context())
		return nil
	})
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
}

func (s *Server) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, _, ok := s.userWorkspace(w, r, "update settings")
	if !ok {
		return
	}
	var settings entity.Settings
	if err := decodeBody(r, &settings); err != nil {
		logger.Error("update settings error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	err := ws.Do(func() error {
		return ws.Settings.Update(r.Context(), settings)
	})
	if err != nil {
		logger.Error("update settings error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving settings", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, settings)
}

// ClearData wipes the whole workspace. Keys that failed to delete are listed in error details.
func (s *Server) ClearData(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, _, ok := s.userWorkspace(w, r, "clear data")
	if !ok {
		return
	}
	var req ClearDataRequest
	if err := decodeBody(r, &req); err != nil {
		logger.Error("clear data error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	err := ws.Do(func() error {
		return ws.ClearAllData(r.Context(), req.Confirm)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrConfirmationRequired) {
			logger.Error("clear data error: not confirmed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "clearing data requires confirmation", nil)
			return
		}
		logger.Error("clear data error: partial failure", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "some data couldn't be removed", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"cleared": true})
	logger.Info("workspace data cleared")
}

// Export sends the wellness report as a JSON file download.
func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ws, uid, ok := s.userWorkspace(w, r, "export")
	if !ok {
		return
	}
	var report *service.Report
	ws.Do(func() error {
		report = ws.Report(r.Context(), tokenIdentity(r, uid), s.appVersion)
		return nil
	})
	data, err := service.RenderReport(report)
	if err != nil {
		logger.Error("export error: rendering report", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building report", nil)
		return
	}
	httputil.WriteAttachment(w, service.ReportFilename(report.ExportInfo.GeneratedAt), data)
	logger.Info("report exported")
}
