package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bbuckner99/ai-sales-report-generator/internal/report"
	"github.com/bbuckner99/ai-sales-report-generator/pkg/logger"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// ChatResponse is the reply to POST /api/chat. Command is null until both
// report dates have been collected.
type ChatResponse struct {
	Response   string  `json:"response"`
	Command    *string `json:"command"`
	IsComplete bool    `json:"is_complete"`
}

// MessageResponse is one stored message in a history response.
type MessageResponse struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryResponse is the reply to GET /api/chat/history/{session_id}.
type HistoryResponse struct {
	Messages []MessageResponse `json:"messages"`
}

// GenerateCommandRequest is the body of POST /api/generate-command.
type GenerateCommandRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// GenerateCommandResponse is the reply to POST /api/generate-command.
type GenerateCommandResponse struct {
	Command string `json:"command"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) rootHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"message": "AI Sales Report Generator API",
	})
}

func (s *Server) chatHandler(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	if req.SessionID == "" || req.Message == "" {
		s.writeError(w, http.StatusBadRequest, "session_id and message are required")
		return
	}

	reply, err := s.chat.HandleMessage(r.Context(), req.SessionID, req.Message)
	if err != nil {
		logger.GetLoggerFromContext(r.Context(), s.log).Error("chat turn failed",
			logger.ErrorField(err),
			logger.SessionIDField(req.SessionID))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.writeJSON(w, http.StatusOK, ChatResponse{
		Response:   reply.Response,
		Command:    reply.Command,
		IsComplete: reply.IsComplete,
	})
}

func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		s.writeError(w, http.StatusBadRequest, "session_id is required")
		return
	}

	history, err := s.chat.History(r.Context(), sessionID)
	if err != nil {
		logger.GetLoggerFromContext(r.Context(), s.log).Error("history lookup failed",
			logger.ErrorField(err),
			logger.SessionIDField(sessionID))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	messages := make([]MessageResponse, 0, len(history))
	for _, msg := range history {
		messages = append(messages, MessageResponse{
			ID:        msg.ID.String(),
			SessionID: msg.SessionID,
			Role:      string(msg.Role),
			Content:   msg.Content,
			Timestamp: msg.CreatedAt,
		})
	}

	s.writeJSON(w, http.StatusOK, HistoryResponse{Messages: messages})
}

func (s *Server) generateCommandHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateCommandRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	if req.StartDate == "" || req.EndDate == "" {
		s.writeError(w, http.StatusBadRequest, "start_date and end_date are required")
		return
	}

	s.writeJSON(w, http.StatusOK, GenerateCommandResponse{
		Command: report.ComposeCommand(req.StartDate, req.EndDate),
	})
}

// decodeJSON reads a size-limited JSON body into dst and writes a 400 on
// failure. Returns false when the handler should stop.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Security.MaxRequestSize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	return true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", logger.ErrorField(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
