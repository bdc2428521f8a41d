package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/vetcare/chat-service/internal/api"
	"github.com/vetcare/chat-service/internal/config"
	"github.com/vetcare/chat-service/internal/model"
	"github.com/vetcare/chat-service/internal/service"
)

type Handler struct {
	chatService      ChatService
	centrifugeClient CetrifugeClient
	validator        Validator
	jwtGenerator     JWTGenerator
}

func New(
	chatService ChatService,
	centrifugeClient CetrifugeClient,
	validator Validator,
	jwtGenerator JWTGenerator,
) *Handler {
	return &Handler{
		chatService:      chatService,
		centrifugeClient: centrifugeClient,
		validator:        validator,
		jwtGenerator:     jwtGenerator,
	}
}

func (h *Handler) RequestChat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("RequestChat")

	var req api.RequestChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	callerID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	if err := h.validator.ValidateRequestChat(&req); err != nil {
		logger.Error(fmt.Sprintf("chat request validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("chat request validation failed: %v", err), http.StatusBadRequest)
		return
	}

	threadID, err := h.chatService.RequestChat(r.Context(), callerID, uuid.MustParse(req.VetId))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to request chat: %v", err))
		h.writeServiceError(w, "failed to request chat", err)
		return
	}

	logger.Info(fmt.Sprintf("user %s requested chat %s", callerID, threadID))

	h.writeJSON(w, api.RequestChatResponse{ThreadId: threadID.String()}, http.StatusOK)
}

func (h *Handler) AcceptRequest(w http.ResponseWriter, r *http.Request, threadId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AcceptRequest")

	callerID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	threadID, ok := h.pathID(w, logger, "thread_id", threadId)
	if !ok {
		return
	}

	res, err := h.chatService.AcceptRequest(r.Context(), callerID, threadID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to accept request: %v", err))
		h.writeServiceError(w, "failed to accept request", err)
		return
	}

	var response api.AcceptRequestResponse
	if res.Window != nil {
		response.WindowFrom = formatTime(&res.Window.From)
		response.WindowTo = formatTime(&res.Window.To)
	}
	if res.Message != nil {
		h.publish(r.Context(), logger, *res.Message)
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) DeclineRequest(w http.ResponseWriter, r *http.Request, threadId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("DeclineRequest")

	callerID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	threadID, ok := h.pathID(w, logger, "thread_id", threadId)
	if !ok {
		return
	}

	if err := h.chatService.DeclineRequest(r.Context(), callerID, threadID); err != nil {
		logger.Error(fmt.Sprintf("failed to decline request: %v", err))
		h.writeServiceError(w, "failed to decline request", err)
		return
	}

	h.writeJSON(w, api.DeclineRequestResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) StartChat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("StartChat")

	var req api.StartChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	callerID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	if err := h.validator.ValidateStartChat(&req); err != nil {
		logger.Error(fmt.Sprintf("start chat validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("start chat validation failed: %v", err), http.StatusBadRequest)
		return
	}

	text := ""
	if req.Text != nil {
		text = *req.Text
	}

	res, err := h.chatService.StartAsVet(r.Context(), callerID, uuid.MustParse(req.OwnerId), text)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start chat: %v", err))
		h.writeServiceError(w, "failed to start chat", err)
		return
	}

	if res.Message != nil {
		h.publish(r.Context(), logger, *res.Message)
	}

	h.writeJSON(w, api.StartChatResponse{ThreadId: res.ThreadID.String()}, http.StatusOK)
}

func (h *Handler) GetThreads(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetThreads")

	callerID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	views, err := h.chatService.ListThreads(r.Context(), callerID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get threads: %v", err))
		h.writeServiceError(w, "failed to get threads", err)
		return
	}

	threads := make([]api.Thread, len(views))
	for i, view := range views {
		threads[i] = api.Thread{
			Id:              view.ID.String(),
			VetId:           view.VetID.String(),
			OwnerId:         view.OwnerID.String(),
			InitiatedBy:     string(view.InitiatedBy),
			CounterpartName: view.CounterpartName,
			Status:          string(view.Status),
			CanSend:         view.CanSend,
			WindowTo:        formatTime(view.WindowTo),
			LastMessageAt:   formatTime(view.LastMessageAt),
			UpdatedAt:       view.UpdatedAt.Format(time.RFC3339),
		}
	}

	h.writeJSON(w, api.GetThreadsResponse{Threads: threads}, http.StatusOK)
}

func (h *Handler) GetThreadMessages(w http.ResponseWriter, r *http.Request, threadId string, params api.GetThreadMessagesParams) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetThreadMessages")

	callerID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	threadID, ok := h.pathID(w, logger, "thread_id", threadId)
	if !ok {
		return
	}

	limit := service.DefaultMessagesLimit
	if params.Limit != nil {
		limit = *params.Limit
	}

	var before *time.Time
	if params.Before != nil && *params.Before != "" {
		parsed, err := time.Parse(time.RFC3339Nano, *params.Before)
		if err != nil {
			logger.Error(fmt.Sprintf("invalid before parameter: %v", err))
			h.writeError(w, "before must be an RFC 3339 timestamp", http.StatusBadRequest)
			return
		}
		before = &parsed
	}

	messages, err := h.chatService.GetMessages(r.Context(), callerID, threadID, limit, before)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeServiceError(w, "failed to fetch messages", err)
		return
	}

	apiMessages := make([]api.Message, len(messages))
	for i, msg := range messages {
		apiMessages[i] = toAPIMessage(msg)
	}

	h.writeJSON(w, api.GetThreadMessagesResponse{Messages: apiMessages}, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, threadId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	var req api.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	threadID, ok := h.pathID(w, logger, "thread_id", threadId)
	if !ok {
		return
	}

	if err := h.validator.ValidateSendMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	message, err := h.chatService.SendMessage(r.Context(), senderID, threadID, req.Text)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to send message: %v", err))
		h.writeServiceError(w, "failed to send message", err)
		return
	}

	h.publish(r.Context(), logger, *message)

	h.writeJSON(w, api.SendMessageResponse{Message: toAPIMessage(*message)}, http.StatusOK)
}

func (h *Handler) GetConnectAccessToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConnectAccessToken")

	userUUID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateConnectToken(userUUID.String())
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate access token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated access token for user %s", userUUID))

	h.writeJSON(w, api.GetConnectAccessTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, http.StatusOK)
}

func (h *Handler) GetThreadSubscribeToken(w http.ResponseWriter, r *http.Request, threadId string) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetThreadSubscribeToken")

	userUUID, ok := h.callerID(w, r, logger)
	if !ok {
		return
	}

	threadID, ok := h.pathID(w, logger, "thread_id", threadId)
	if !ok {
		return
	}

	if _, err := h.chatService.IsParty(r.Context(), userUUID, threadID); err != nil {
		logger.Error(fmt.Sprintf("failed to check thread membership: %v", err))
		h.writeServiceError(w, "failed to check thread membership", err)
		return
	}

	token, expiresAt, err := h.jwtGenerator.GenerateSubscribeToken(userUUID.String(), threadId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate subscribe token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to generate subscribe token: %v", err), http.StatusInternalServerError)
		return
	}

	logger.Info(fmt.Sprintf("generated subscribe token for user %s, thread %s", userUUID, threadId))

	h.writeJSON(w, api.GetThreadSubscribeTokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Channel:   model.ThreadChannel(threadId),
	}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func (h *Handler) callerID(w http.ResponseWriter, r *http.Request, logger logger_lib.LoggerInterface) (uuid.UUID, bool) {
	raw, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Error(fmt.Sprintf("malformed caller ID: %v", err))
		h.writeError(w, "malformed caller ID", http.StatusBadRequest)
		return uuid.Nil, false
	}

	return id, true
}

func (h *Handler) pathID(w http.ResponseWriter, logger logger_lib.LoggerInterface, name, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Error(fmt.Sprintf("malformed %s: %v", name, err))
		h.writeError(w, fmt.Sprintf("%s must be a valid uuid", name), http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// publish delivers msg to realtime subscribers; failures only get logged since the message is already stored.
func (h *Handler) publish(ctx context.Context, logger logger_lib.LoggerInterface, msg model.Message) {
	if h.centrifugeClient == nil {
		return
	}

	err := h.centrifugeClient.Publish(ctx, model.ThreadChannel(msg.ThreadID.String()), msg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to publish message to thread: %v", err))
	}
}

func toAPIMessage(msg model.Message) api.Message {
	var authorUserID *string
	if msg.AuthorUserID != nil {
		id := msg.AuthorUserID.String()
		authorUserID = &id
	}

	return api.Message{
		Id:           msg.ID.String(),
		ThreadId:     msg.ThreadID.String(),
		AuthorRole:   string(msg.AuthorRole),
		AuthorUserId: authorUserID,
		Text:         msg.Text,
		Kind:         msg.Kind,
		SentAt:       msg.SentAt.Format(time.RFC3339Nano),
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339Nano)
	return &s
}

func (h *Handler) writeServiceError(w http.ResponseWriter, prefix string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		h.writeError(w, fmt.Sprintf("%s: %v", prefix, err), http.StatusBadRequest)
	case errors.Is(err, service.ErrForbidden):
		h.writeError(w, fmt.Sprintf("%s: %v", prefix, err), http.StatusForbidden)
	case errors.Is(err, service.ErrNotFound):
		h.writeError(w, fmt.Sprintf("%s: %v", prefix, err), http.StatusNotFound)
	default:
		h.writeError(w, prefix, http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
