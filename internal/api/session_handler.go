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

// SessionPageSizes holds the default page sizes of the session endpoints.
type SessionPageSizes struct {
	Sessions int
	Reviews  int
}

// SessionHandler handles study session and review submission HTTP requests.
type SessionHandler struct {
	studyService service.StudyService
	pageSizes    SessionPageSizes
	logger       *slog.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(
	studyService service.StudyService,
	pageSizes SessionPageSizes,
	logger *slog.Logger,
) *SessionHandler {
	if studyService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("studyService cannot be nil for SessionHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SessionHandler")
	}

	return &SessionHandler{
		studyService: studyService,
		pageSizes:    pageSizes,
		logger:       logger.With(slog.String("component", "session_handler")),
	}
}

// StartSession handles POST /study_sessions requests
func (h *SessionHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req StartSessionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	// Format already validated by the uuid tags
	groupID, _ := uuid.Parse(req.GroupID)
	activityID, _ := uuid.Parse(req.StudyActivityID)

	view, err := h.studyService.StartSession(r.Context(), groupID, activityID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to start study session")
		return
	}

	log.Info("study session started",
		slog.String("session_id", view.ID.String()),
		slog.String("group_id", req.GroupID),
		slog.String("activity_id", req.StudyActivityID))
	shared.RespondWithJSON(w, r, http.StatusCreated, sessionToResponse(view))
}

// ListSessions handles GET /study_sessions requests
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	req, err := getPageRequest(r, h.pageSizes.Sessions)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.studyService.ListSessions(r.Context(), req, store.SessionFilter{})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list study sessions")
		return
	}

	response := newListResponse(page, func(view domain.StudySessionView) SessionResponse {
		return sessionToResponse(&view)
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// GetSession handles GET /study_sessions/{id} requests
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	view, err := h.studyService.GetSession(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get study session")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(view))
}

// ListSessionReviews handles GET /study_sessions/{id}/words requests
// Returns the session's review items in recording order.
func (h *SessionHandler) ListSessionReviews(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	req, err := getPageRequest(r, h.pageSizes.Reviews)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.studyService.ListSessionReviews(r.Context(), id, req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list session reviews")
		return
	}

	response := newListResponse(page, func(item domain.WordReviewItem) ReviewItemResponse {
		return reviewToResponse(&item)
	})
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// SubmitReview handles POST /study_sessions/{id}/words/{word_id}/review requests
// Recording is create-once: a duplicate submission responds 200 with the
// originally stored fact, so network retries never double count.
func (h *SessionHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	sessionID, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	wordID, err := getPathUUID(r, "word_id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req SubmitReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.String("session_id", sessionID.String()),
			slog.String("word_id", wordID.String()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	item, created, err := h.studyService.RecordReview(r.Context(), sessionID, wordID, *req.Correct)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to record review")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	log.Debug("review submission handled",
		slog.String("session_id", sessionID.String()),
		slog.String("word_id", wordID.String()),
		slog.Bool("created", created))
	shared.RespondWithJSON(w, r, status, SubmitReviewResponse{
		Success:        true,
		WordID:         item.WordID.String(),
		StudySessionID: item.StudySessionID.String(),
		Correct:        item.Correct,
		CreatedAt:      item.CreatedAt,
	})
}
