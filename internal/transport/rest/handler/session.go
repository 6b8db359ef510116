package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"careercompass/internal/engine"
	"careercompass/internal/model"
	"careercompass/internal/service"
	"careercompass/internal/transport/rest/middleware"
)

// SessionHandler handles assessment session endpoints
type SessionHandler struct {
	sessionSvc *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionSvc *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionSvc: sessionSvc}
}

// SubmitAnswerRequest is the request body for answer submission
type SubmitAnswerRequest struct {
	Text       string   `json:"text,omitempty"`
	Selections []string `json:"selections,omitempty"`
}

// ConfirmRepeatRequest is the request body for the repeat-group control
type ConfirmRepeatRequest struct {
	Again bool `json:"again"`
}

// Start handles POST /v1/sessions
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	view, err := h.sessionSvc.Start(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, view)
}

// Get handles GET /v1/sessions/{id}
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	sessionID := mux.Vars(r)["id"]

	view, err := h.sessionSvc.Get(r.Context(), userID, sessionID)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// SubmitAnswer handles POST /v1/sessions/{id}/answers
func (h *SessionHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	sessionID := mux.Vars(r)["id"]

	var req SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.sessionSvc.Submit(r.Context(), userID, sessionID, model.AnswerInput{
		Text:       req.Text,
		Selections: req.Selections,
	})
	if err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// ConfirmRepeat handles POST /v1/sessions/{id}/repeat
func (h *SessionHandler) ConfirmRepeat(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	sessionID := mux.Vars(r)["id"]

	var req ConfirmRepeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	view, err := h.sessionSvc.ConfirmRepeat(r.Context(), userID, sessionID, req.Again)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// Finalize handles POST /v1/sessions/{id}/finalize
func (h *SessionHandler) Finalize(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	sessionID := mux.Vars(r)["id"]

	view, err := h.sessionSvc.Finalize(r.Context(), userID, sessionID)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// writeSessionError maps engine and service errors onto HTTP statuses. A
// validation failure is recoverable: the client re-prompts with the message.
func writeSessionError(w http.ResponseWriter, err error) {
	var vErr *model.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":       vErr.Message,
			"recoverable": true,
		})
	case errors.Is(err, service.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotSessionOwner):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, engine.ErrComplete),
		errors.Is(err, engine.ErrAwaitingRepeat),
		errors.Is(err, engine.ErrNotAwaitingRepeat),
		errors.Is(err, service.ErrNotComplete):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
