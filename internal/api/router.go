package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover, mw.Cors)

	mux.Post("/webhooks/calendly", h.CalendlyWebhook)

	mux.Route("/api", func(r chi.Router) {
		r.HandleFunc("/health", h.HealthHandler)

		r.Post("/onboarding", h.SubmitOnboarding)

		r.Route("/dashboard/{accessToken}", func(r chi.Router) {
			r.Get("/", h.Dashboard)
			r.Get("/reports", h.DashboardReports)
			r.Patch("/bookings/{id}", h.UpdateDashboardBooking)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(mw.APIKeyAuth)

			r.Get("/channels", h.ListChannels)

			r.Route("/connections", func(r chi.Router) {
				r.Post("/setup", h.SetupClient)
				r.Post("/validate", h.ValidateToken)
				r.Get("/", h.Connections)
				r.Get("/{id}", h.Connection)
				r.Patch("/{id}", h.UpdateConnection)
				r.Post("/{id}/active", h.SetConnectionActive)
				r.Delete("/{id}", h.DeleteConnection)
			})

			r.Get("/bookings", h.Bookings)

			r.Post("/stats/sync", h.SyncStats)

			r.Route("/kanban", func(r chi.Router) {
				r.Route("/workspaces", func(r chi.Router) {
					r.Post("/", h.CreateWorkspace)
					r.Get("/", h.Workspaces)
					r.Patch("/{workspaceID}", h.UpdateWorkspace)
					r.Delete("/{workspaceID}", h.DeleteWorkspace)
					r.Post("/{workspaceID}/verify-password", h.VerifyWorkspacePassword)
					r.Post("/{workspaceID}/boards", h.CreateBoard)
					r.Get("/{workspaceID}/boards", h.Boards)
				})

				r.Route("/boards", func(r chi.Router) {
					r.Delete("/{boardID}", h.DeleteBoard)
					r.Post("/{boardID}/verify-password", h.VerifyBoardPassword)
					r.Post("/{boardID}/columns", h.CreateColumn)
					r.Get("/{boardID}/columns", h.Columns)
				})

				r.Route("/columns", func(r chi.Router) {
					r.Patch("/{columnID}", h.UpdateColumn)
					r.Delete("/{columnID}", h.DeleteColumn)
					r.Post("/{columnID}/cards", h.CreateCard)
					r.Get("/{columnID}/cards", h.Cards)
				})

				r.Route("/cards", func(r chi.Router) {
					r.Patch("/{cardID}", h.UpdateCard)
					r.Delete("/{cardID}", h.DeleteCard)
					r.Post("/{cardID}/move", h.MoveCard)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/", h.UploadReport)
				r.Get("/", h.Reports)
				r.Delete("/{id}", h.DeleteReport)
			})

			r.Route("/onboarding", func(r chi.Router) {
				r.Get("/", h.OnboardingSubmissions)
				r.Get("/{id}", h.OnboardingSubmission)
			})
		})
	})

	return mux
}
