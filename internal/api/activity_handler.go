package api

import (
	"log/slog"
	"net/http"

	"github.com/wordtrail/wordtrail-api/internal/domain"
	"github.com/wordtrail/wordtrail-api/internal/service"
	"github.com/wordtrail/wordtrail-api/internal/store"

	"github.com/wordtrail/wordtrail-api/internal/api/shared"
)

// ActivityPageSizes holds the default page sizes of the activity endpoints.
type ActivityPageSizes struct {
	Activities int
	Sessions   int
}

// ActivityHandler handles study-activity catalog HTTP requests.
type ActivityHandler struct {
	catalogService service.CatalogService
	studyService   service.StudyService
	pageSizes      ActivityPageSizes
	logger         *slog.Logger
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(
	catalogService service.CatalogService,
	studyService service.StudyService,
	pageSizes ActivityPageSizes,
	logger *slog.Logger,
) *ActivityHandler {
	if catalogService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("catalogService cannot be nil for ActivityHandler")
	}
	if studyService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("studyService cannot be nil for ActivityHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ActivityHandler")
	}

	return &ActivityHandler{
		catalogService: catalogService,
		studyService:   studyService,
		pageSizes:      pageSizes,
		logger:         logger.With(slog.String("component", "activity_handler")),
	}
}

// ListActivities handles GET /study_activities requests
func (h *ActivityHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	req, err := getPageRequest(r, h.pageSizes.Activities)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.catalogService.ListActivities(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list study activities")
		return
	}

	response := newListResponse(page, func(activity domain.StudyActivity) ActivityResponse {
		return activityToResponse(&activity)
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetActivity handles GET /study_activities/{id} requests
func (h *ActivityHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	activity, err := h.catalogService.GetActivity(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get study activity")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, activityToResponse(activity))
}

// ListActivitySessions handles GET /study_activities/{id}/study_sessions requests
func (h *ActivityHandler) ListActivitySessions(w http.ResponseWriter, r *http.Request) {
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

	// The activity must exist; an unknown ID is NotFound, not an empty list.
	if _, err := h.catalogService.GetActivity(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to get study activity")
		return
	}

	page, err := h.studyService.ListSessions(r.Context(), req, store.SessionFilter{StudyActivityID: &id})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list activity sessions")
		return
	}

	response := newListResponse(page, func(view domain.StudySessionView) SessionResponse {
		return sessionToResponse(&view)
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
