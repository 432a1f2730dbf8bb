package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/chat-tree-service/internal/config"
	"github.com/s21platform/chat-tree-service/internal/model"
)

type Handler struct {
	batchService BatchService
	collector    FactsCollector
	validator    Validator
}

func New(batchService BatchService, collector FactsCollector, validator Validator) *Handler {
	return &Handler{
		batchService: batchService,
		collector:    collector,
		validator:    validator,
	}
}

func (h *Handler) Register(router chi.Router) {
	router.Post("/api/chat/streams/{stream_id}/messages/batch", h.ApplyMessageBatch)
	router.Post("/api/chat/facts", h.GetChatFacts)
}

func (h *Handler) ApplyMessageBatch(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("ApplyMessageBatch")

	streamID := chi.URLParam(r, "stream_id")

	var req model.MessageBatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateBatch(streamID, &req); err != nil {
		logger.Error(fmt.Sprintf("batch validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("batch validation failed: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.batchService.ApplyBatch(r.Context(), streamID, senderID, req)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to apply message batch: %v", err))
		h.writeError(w, fmt.Sprintf("failed to apply message batch: %v", err), statusFor(err))
		return
	}

	logger.Info(fmt.Sprintf("applied batch to stream %s: %d created, %d re-parented",
		streamID, len(result.Summary.Create), len(result.Summary.Update)))

	h.writeJSON(w, result, http.StatusOK)
}

func (h *Handler) GetChatFacts(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetChatFacts")

	var req model.FactsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateFactsRequest(&req); err != nil {
		logger.Error(fmt.Sprintf("facts request validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("facts request validation failed: %v", err), http.StatusBadRequest)
		return
	}

	facts, err := h.collector.Collect(r.Context(), req.StreamIDs, req.MessageIDs)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to collect chat facts: %v", err))
		h.writeError(w, fmt.Sprintf("failed to collect chat facts: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, facts, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func statusFor(err error) int {
	var coded interface{ StatusCode() int }
	switch {
	case errors.As(err, &coded):
		return coded.StatusCode()
	case errors.Is(err, model.ErrStreamNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
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
	_ = json.NewEncoder(w).Encode(model.ErrorResponse{Error: message})
}
