package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/wordtrail/wordtrail-api/internal/api/shared"
	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/platform/logger"
	"github.com/wordtrail/wordtrail-api/internal/redact"
	"github.com/wordtrail/wordtrail-api/internal/service"
	"github.com/wordtrail/wordtrail-api/internal/store"
)

// GroupPageSizes holds the default page sizes of the group endpoints.
type GroupPageSizes struct {
	Groups   int
	Words    int
	Sessions int
}

// GroupHandler handles group HTTP requests, including the words-in-group and
// sessions-for-group listings.
type GroupHandler struct {
	inventoryService service.InventoryService
	studyService     service.StudyService
	pageSizes        GroupPageSizes
	logger           *slog.Logger
}

// NewGroupHandler creates a new GroupHandler
func NewGroupHandler(
	inventoryService service.InventoryService,
	studyService service.StudyService,
	pageSizes GroupPageSizes,
	logger *slog.Logger,
) *GroupHandler {
	if inventoryService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("inventoryService cannot be nil for GroupHandler")
	}
	if studyService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("studyService cannot be nil for GroupHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for GroupHandler")
	}

	return &GroupHandler{
		inventoryService: inventoryService,
		studyService:     studyService,
		pageSizes:        pageSizes,
		logger:           logger.With(slog.String("component", "group_handler")),
	}
}

// CreateGroup handles POST /groups requests
func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateGroupRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	group, err := h.inventoryService.CreateGroup(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create group")
		return
	}

	log.Debug("group created", slog.String("group_id", group.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, groupToResponse(group))
}

// ListGroups handles GET /groups requests
func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	req, err := getPageRequest(r, h.pageSizes.Groups)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.inventoryService.ListGroups(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list groups")
		return
	}

	response := newListResponse(page, func(group domain.Group) GroupResponse {
		return groupToResponse(&group)
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetGroup handles GET /groups/{id} requests
func (h *GroupHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	group, err := h.inventoryService.GetGroup(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get group")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, groupToResponse(group))
}

// ListGroupWords handles GET /groups/{id}/words requests
func (h *GroupHandler) ListGroupWords(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, err := getPageRequest(r, h.pageSizes.Words)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.inventoryService.ListGroupWords(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list group words")
		return
	}

	response := newListResponse(page, func(item store.WordWithStats) WordResponse {
		return wordToResponse(&item.Word, item.Stats)
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// AddWords handles POST /groups/{id}/words requests
// Re-adding an existing member is a no-op; the response carries the group
// with its updated word count either way.
func (h *GroupHandler) AddWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req AddWordsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.String("group_id", id.String()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	wordIDs := make([]uuid.UUID, 0, len(req.WordIDs))
	for _, raw := range req.WordIDs {
		// Format already validated by the uuid tag
		wordID, _ := uuid.Parse(raw)
		wordIDs = append(wordIDs, wordID)
	}

	group, err := h.inventoryService.AddWordsToGroup(r.Context(), id, wordIDs)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add words to group")
		return
	}

	log.Debug("words added to group",
		slog.String("group_id", id.String()),
		slog.Int("count", len(wordIDs)))
	shared.RespondWithJSON(w, r, http.StatusOK, groupToResponse(group))
}

// ListGroupSessions handles GET /groups/{id}/study_sessions requests
func (h *GroupHandler) ListGroupSessions(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, err := getPageRequest(r, h.pageSizes.Sessions)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	// The group must exist; an unknown ID is NotFound, not an empty list.
	if _, err := h.inventoryService.GetGroup(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to get group")
		return
	}

	page, err := h.studyService.ListSessions(r.Context(), req, store.SessionFilter{GroupID: &id})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list group sessions")
		return
	}

	response := newListResponse(page, func(view domain.StudySessionView) SessionResponse {
		return sessionToResponse(&view)
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
