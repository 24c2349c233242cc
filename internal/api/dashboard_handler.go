package api

import (
	"log/slog"
	"net/http"

	"github.com/wordtrail/wordtrail-api/internal/api/shared"
	"github.com/wordtrail/wordtrail-api/internal/service"
)

// DashboardHandler handles the aggregate statistics HTTP requests.
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *slog.Logger
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService service.DashboardService, logger *slog.Logger) *DashboardHandler {
	if dashboardService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("dashboardService cannot be nil for DashboardHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DashboardHandler")
	}

	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger.With(slog.String("component", "dashboard_handler")),
	}
}

// QuickStats handles GET /dashboard/quick-stats requests
func (h *DashboardHandler) QuickStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.QuickStats(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute quick stats")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}

// StudyProgress handles GET /dashboard/study_progress requests
func (h *DashboardHandler) StudyProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.dashboardService.StudyProgress(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to compute study progress")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progress)
}

// LastStudySession handles GET /dashboard/last_study_session requests
// Responds with a JSON null when no sessions have been recorded yet; an
// empty history is not an error.
func (h *DashboardHandler) LastStudySession(w http.ResponseWriter, r *http.Request) {
	view, err := h.dashboardService.LastSession(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get last study session")
		return
	}

	if view == nil {
		shared.RespondWithJSON(w, r, http.StatusOK, nil)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, sessionToResponse(view))
}
