package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/wordtrail/wordtrail-api/internal/api"
	apimiddleware "github.com/wordtrail/wordtrail-api/internal/api/middleware"
)

// setupRouter builds the chi router: standard middleware, a health probe,
// and the /api route tree backed by the application's services.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	pages := app.config.Pagination

	wordHandler := api.NewWordHandler(app.inventoryService, pages.WordsPageSize, app.logger)
	groupHandler := api.NewGroupHandler(app.inventoryService, app.studyService, api.GroupPageSizes{
		Groups:   pages.GroupsPageSize,
		Words:    pages.WordsPageSize,
		Sessions: pages.SessionsPageSize,
	}, app.logger)
	activityHandler := api.NewActivityHandler(app.catalogService, app.studyService, api.ActivityPageSizes{
		Activities: pages.ActivitiesPageSize,
		Sessions:   pages.SessionsPageSize,
	}, app.logger)
	sessionHandler := api.NewSessionHandler(app.studyService, api.SessionPageSizes{
		Sessions: pages.SessionsPageSize,
		Reviews:  pages.ReviewsPageSize,
	}, app.logger)
	dashboardHandler := api.NewDashboardHandler(app.dashboardService, app.logger)
	systemHandler := api.NewSystemHandler(app.resetService, app.logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/words", func(r chi.Router) {
			r.Post("/", wordHandler.CreateWord)
			r.Get("/", wordHandler.ListWords)
			r.Get("/{id}", wordHandler.GetWord)
			r.Patch("/{id}", wordHandler.UpdateWord)
		})

		r.Route("/groups", func(r chi.Router) {
			r.Post("/", groupHandler.CreateGroup)
			r.Get("/", groupHandler.ListGroups)
			r.Get("/{id}", groupHandler.GetGroup)
			r.Get("/{id}/words", groupHandler.ListGroupWords)
			r.Post("/{id}/words", groupHandler.AddWords)
			r.Get("/{id}/study_sessions", groupHandler.ListGroupSessions)
		})

		r.Route("/study_activities", func(r chi.Router) {
			r.Get("/", activityHandler.ListActivities)
			r.Get("/{id}", activityHandler.GetActivity)
			r.Get("/{id}/study_sessions", activityHandler.ListActivitySessions)
		})

		r.Route("/study_sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.StartSession)
			r.Get("/", sessionHandler.ListSessions)
			r.Get("/{id}", sessionHandler.GetSession)
			r.Get("/{id}/words", sessionHandler.ListSessionReviews)
			r.Post("/{id}/words/{word_id}/review", sessionHandler.SubmitReview)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/quick-stats", dashboardHandler.QuickStats)
			r.Get("/study_progress", dashboardHandler.StudyProgress)
			r.Get("/last_study_session", dashboardHandler.LastStudySession)
		})

		r.Post("/reset_history", systemHandler.ResetHistory)
		r.Post("/full_reset", systemHandler.FullReset)
	})

	return r
}
