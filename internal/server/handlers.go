package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sashabaranov/go-openai"

	"github.com/advisorly/advisor-session/internal"
	"github.com/advisorly/advisor-session/internal/export"
	"github.com/advisorly/advisor-session/internal/llm"
)

// Handler carries the collaborators the API routes need
type Handler struct {
	store *internal.Store
	llm   llm.Client
}

// NewHandler creates an API handler over the store and advisor model
func NewHandler(store *internal.Store, client llm.Client) *Handler {
	return &Handler{store: store, llm: client}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// HealthHandler reports service liveness
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetMessagesHandler returns a session's messages ascending by timestamp
func (h *Handler) GetMessagesHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	messages, err := h.store.GetMessagesBySession(sessionID)
	if err != nil {
		internal.LogError("Failed to fetch messages for session %s: %v", sessionID, err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch messages")
		return
	}
	if messages == nil {
		messages = []internal.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// PostMessageRequest is the body for POST /api/messages
type PostMessageRequest struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	SessionID string `json:"sessionId"`
}

// PostMessageHandler persists a user message, asks the advisor model for
// a reply with the full conversation as context, persists the reply with
// its citations, and returns the user message. On an upstream failure
// the user message stays persisted and unanswered so the send can simply
// be retried.
func (h *Handler) PostMessageHandler(w http.ResponseWriter, r *http.Request) {
	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Role != internal.RoleUser {
		writeError(w, http.StatusBadRequest, "Only user messages can be sent through this endpoint")
		return
	}
	if req.Content == "" || req.SessionID == "" {
		writeError(w, http.StatusBadRequest, "Message content and sessionId are required")
		return
	}

	session, err := h.store.GetSession(req.SessionID)
	if err != nil {
		internal.LogError("Failed to look up session %s: %v", req.SessionID, err)
		writeError(w, http.StatusInternalServerError, "Failed to process message")
		return
	}
	if session == nil {
		if _, err := h.store.CreateSession(req.SessionID); err != nil {
			internal.LogError("Failed to create session %s: %v", req.SessionID, err)
			writeError(w, http.StatusInternalServerError, "Failed to process message")
			return
		}
	}

	history, err := h.store.GetMessagesBySession(req.SessionID)
	if err != nil {
		internal.LogError("Failed to load history for session %s: %v", req.SessionID, err)
		writeError(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	userMessage := internal.Message{
		Role:      internal.RoleUser,
		Content:   req.Content,
		SessionID: req.SessionID,
	}
	if err := h.store.CreateMessage(&userMessage); err != nil {
		internal.LogError("Failed to save user message in session %s: %v", req.SessionID, err)
		writeError(w, http.StatusInternalServerError, "Failed to process message")
		return
	}

	wire := llm.BuildHistory(history)
	wire = append(wire, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Content,
	})

	completion, err := h.llm.Complete(r.Context(), wire)
	if err != nil {
		internal.LogError("Advisor model call failed for session %s: %v", req.SessionID, err)
		writeError(w, http.StatusBadGateway, "The advisor is unavailable right now. Please try again.")
		return
	}

	assistant := internal.Message{
		Role:      internal.RoleAssistant,
		Content:   completion.Content,
		Citations: completion.Citations,
		SessionID: req.SessionID,
	}
	if err := h.store.CreateMessage(&assistant); err != nil {
		internal.LogError("Failed to save advisor reply in session %s: %v", req.SessionID, err)
		writeError(w, http.StatusInternalServerError, "Failed to save the advisor's reply")
		return
	}

	writeJSON(w, http.StatusOK, userMessage)
}

var exportContentTypes = map[string]string{
	"txt":   "text/plain; charset=utf-8",
	"json":  "application/json",
	"md":    "text/markdown; charset=utf-8",
	"yaml":  "application/yaml",
	"jsonl": "application/jsonl",
	"pdf":   "application/pdf",
	"docx":  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ExportHandler streams a transcript download in the requested format
func (h *Handler) ExportHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "txt"
	}

	exporter, err := export.NewExporter(format)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.store.LoadSession(sessionID)
	if err != nil {
		internal.LogError("Failed to load session %s for export: %v", sessionID, err)
		writeError(w, http.StatusInternalServerError, "Failed to export session")
		return
	}
	if session == nil || len(session.Messages) == 0 {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	serveExport(w, exporter, session)
}

// serveExport renders the transcript in memory before any byte reaches
// the client, so a packaging failure surfaces as an error response
// instead of a truncated download
func serveExport(w http.ResponseWriter, exporter export.Exporter, session *internal.Session) {
	var buf bytes.Buffer
	if err := exporter.Export(session, &buf); err != nil {
		internal.LogError("Failed to export session %s as %s: %v", session.ID, exporter.Extension(), err)
		writeError(w, http.StatusInternalServerError, "Failed to export session")
		return
	}

	w.Header().Set("Content-Type", exportContentTypes[exporter.Extension()])
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(exporter.Extension())+`"`)
	_, _ = w.Write(buf.Bytes())
}
