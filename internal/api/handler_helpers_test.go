package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/wordtrail/wordtrail-api/internal/mocks"
	"github.com/wordtrail/wordtrail-api/internal/service"
)

// apiFixture wires the handlers onto a chi router backed by real services
// and mock stores, so requests flow through routing, validation, and error
// mapping exactly as in production.
type apiFixture struct {
	router http.Handler

	wordStore        *mocks.MockWordStore
	groupStore       *mocks.MockGroupStore
	activityStore    *mocks.MockActivityStore
	sessionStore     *mocks.MockSessionStore
	reviewStore      *mocks.MockReviewStore
	statsStore       *mocks.MockStatsStore
	maintenanceStore *mocks.MockMaintenanceStore

	sqlMock sqlmock.Sqlmock
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	f := &apiFixture{
		wordStore:        mocks.NewMockWordStore(),
		groupStore:       mocks.NewMockGroupStore(),
		activityStore:    mocks.NewMockActivityStore(),
		sessionStore:     mocks.NewMockSessionStore(),
		reviewStore:      mocks.NewMockReviewStore(),
		statsStore:       mocks.NewMockStatsStore(),
		maintenanceStore: mocks.NewMockMaintenanceStore(),
		sqlMock:          sqlMock,
	}

	inventoryService, err := service.NewInventoryService(db, f.wordStore, f.groupStore, nil)
	require.NoError(t, err)

	catalogService, err := service.NewCatalogService(f.activityStore, nil)
	require.NoError(t, err)

	studyService, err := service.NewStudyService(f.sessionStore, f.reviewStore, nil)
	require.NoError(t, err)

	dashboardService, err := service.NewDashboardService(f.statsStore, "UTC", nil)
	require.NoError(t, err)

	resetService, err := service.NewResetService(
		db, f.maintenanceStore, f.wordStore, f.groupStore, f.activityStore, nil)
	require.NoError(t, err)

	logger := newTestLogger()

	wordHandler := NewWordHandler(inventoryService, 100, logger)
	groupHandler := NewGroupHandler(inventoryService, studyService, GroupPageSizes{
		Groups: 100, Words: 100, Sessions: 20,
	}, logger)
	activityHandler := NewActivityHandler(catalogService, studyService, ActivityPageSizes{
		Activities: 100, Sessions: 20,
	}, logger)
	sessionHandler := NewSessionHandler(studyService, SessionPageSizes{
		Sessions: 20, Reviews: 100,
	}, logger)
	dashboardHandler := NewDashboardHandler(dashboardService, logger)
	systemHandler := NewSystemHandler(resetService, logger)

	r := chi.NewRouter()
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

	f.router = r
	return f
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// do runs a request through the fixture router. A nil body sends no payload;
// anything else is JSON-encoded.
func (f *apiFixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorded JSON response into target.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), target))
}
