package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"wallet-dashboard/internal/domain"
	"wallet-dashboard/internal/handler"
)

func SetupRoutes(h *handler.Handler, allowedOrigins []string, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/session", h.HandleLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireSession)

			r.Get("/session", h.HandleSession)
			r.Delete("/session", h.HandleLogout)

			r.Get("/wallets", h.HandleWallets)
			r.Post("/wallets/activate", h.HandleActivateWallet)

			r.Get("/transactions", h.HandleTransactions)
			r.Get("/transactions/export", h.HandleExport)

			r.Get("/conversion", h.HandleConversionState)
			r.Put("/conversion", h.HandleConversionInput)

			r.Get("/panel", h.HandlePanel)
			r.Put("/panel", h.HandleSelectPanel)

			r.Post("/transfers", h.HandleTransfer)
			r.Post("/deposit-requests", h.HandleDepositRequest)
			r.Post("/withdrawal-requests", h.HandleWithdrawalRequest)

			// Approval desk
			r.Group(func(r chi.Router) {
				r.Use(h.RequireRole(domain.RoleAgent, domain.RoleManager, domain.RoleAdmin))
				r.Get("/withdrawal-requests", h.HandlePendingWithdrawals)
				r.Post("/withdrawal-requests/{id}/respond", h.HandleRespondWithdrawal)
			})

			r.Route("/manager", func(r chi.Router) {
				r.Use(h.RequireRole(domain.RoleManager, domain.RoleAdmin))
				r.Get("/dashboard-metrics", h.HandleDashboardMetrics)
				r.Get("/commission-stats", h.HandleCommissionStats)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.RequireRole(domain.RoleAdmin))
				r.Get("/users", h.HandleUsers)
			})
		})
	})

	return r
}

// LoggerMiddleware logs HTTP requests
func LoggerMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("remote_addr", r.RemoteAddr))
		})
	}
}
