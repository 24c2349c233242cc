package api

import (
	"log/slog"
	"net/http"

	"github.com/wordtrail/wordtrail-api/internal/api/shared"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/redact"
	"github.com/wordtrail/wordtrail-api/internal/service"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// WordHandler handles word inventory HTTP requests
type WordHandler struct {
	inventoryService service.InventoryService
	defaultPageSize  int
	logger           *slog.Logger
}

// NewWordHandler creates a new WordHandler
func NewWordHandler(
	inventoryService service.InventoryService,
	defaultPageSize int,
	logger *slog.Logger,
) *WordHandler {
	if inventoryService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("inventoryService cannot be nil for WordHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for WordHandler")
	}

	return &WordHandler{
		inventoryService: inventoryService,
		defaultPageSize:  defaultPageSize,
		logger:           logger.With(slog.String("component", "word_handler")),
	}
}

// CreateWord handles POST /words requests
func (h *WordHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	word, err := h.inventoryService.CreateWord(
		r.Context(),
		req.NativeText,
		req.Transliteration,
		req.Translation,
		req.Attributes,
	)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create word")
		return
	}

	log.Debug("word created", slog.String("word_id", word.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, wordToResponse(word, domain.WordStats{}))
}

// ListWords handles GET /words requests
func (h *WordHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	req, err := getPageRequest(r, h.defaultPageSize)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.inventoryService.ListWords(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list words")
		return
	}

	response := newListResponse(page, func(item store.WordWithStats) WordResponse {
		return wordToResponse(&item.Word, item.Stats)
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetWord handles GET /words/{id} requests
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	word, stats, err := h.inventoryService.GetWord(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get word")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word, stats))
}

// UpdateWord handles PATCH /words/{id} requests
// Only the attribute tags may change; the text fields are immutable.
func (h *WordHandler) UpdateWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.String("word_id", id.String()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	if _, err := h.inventoryService.UpdateWordAttributes(r.Context(), id, req.Attributes); err != nil {
		HandleAPIError(w, r, err, "Failed to update word")
		return
	}

	word, stats, err := h.inventoryService.GetWord(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get word")
		return
	}

	log.Debug("word attributes updated", slog.String("word_id", id.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word, stats))
}
