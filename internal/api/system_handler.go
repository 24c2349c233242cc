package api

import (
	"log/slog"
	"net/http"

	"github.com/wordtrail/wordtrail-api/internal/api/shared"
	"github.com/wordtrail/wordtrail-api/internal/service"
)

// ResetResponse confirms a completed reset operation.
type ResetResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SystemHandler handles the destructive maintenance HTTP requests.
type SystemHandler struct {
	resetService service.ResetService
	logger       *slog.Logger
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(resetService service.ResetService, logger *slog.Logger) *SystemHandler {
	if resetService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("resetService cannot be nil for SystemHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for SystemHandler")
	}

	return &SystemHandler{
		resetService: resetService,
		logger:       logger.With(slog.String("component", "system_handler")),
	}
}

// ResetHistory handles POST /reset_history requests
// Deletes every review and session; the inventory and catalog survive.
func (h *SystemHandler) ResetHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.resetService.ResetHistory(r.Context()); err != nil {
		HandleAPIError(w, r, err, "Failed to reset study history")
		return
	}

	h.logger.Info("study history reset via API")
	shared.RespondWithJSON(w, r, http.StatusOK, ResetResponse{
		Success: true,
		Message: "Study history has been reset",
	})
}

// FullReset handles POST /full_reset requests
// Deletes everything and restores the seed data set.
func (h *SystemHandler) FullReset(w http.ResponseWriter, r *http.Request) {
	if err := h.resetService.FullReset(r.Context()); err != nil {
		HandleAPIError(w, r, err, "Failed to perform full reset")
		return
	}

	h.logger.Info("full reset performed via API")
	shared.RespondWithJSON(w, r, http.StatusOK, ResetResponse{
		Success: true,
		Message: "System has been fully reset",
	})
}
