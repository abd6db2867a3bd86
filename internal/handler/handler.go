// Package handler exposes the dashboard core to a presentation layer over
// HTTP. One Handler serves one user session at a time.
package handler

import (
	"context"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"wallet-dashboard/internal/domain"
	"wallet-dashboard/internal/gateway"
	"wallet-dashboard/internal/session"
	"wallet-dashboard/internal/usecase"
)

// Deps are the components a Handler is wired from.
type Deps struct {
	Sessions   *session.Manager
	Wallets    *usecase.WalletAggregator
	Loader     *usecase.TransactionLoader
	Aggregator *usecase.TransactionAggregator
	Desk       *usecase.WithdrawalDesk
	Reports    usecase.ReportGateway
	Exporter   *gateway.DelimitedExporter
	// NewEstimator builds a fresh estimator for each login.
	NewEstimator func() *usecase.ConversionEstimator
	PerPage      int
	Logger       *zap.Logger
}

type Handler struct {
	sessions     *session.Manager
	wallets      *usecase.WalletAggregator
	loader       *usecase.TransactionLoader
	aggregator   *usecase.TransactionAggregator
	desk         *usecase.WithdrawalDesk
	reports      usecase.ReportGateway
	exporter     *gateway.DelimitedExporter
	newEstimator func() *usecase.ConversionEstimator
	perPage      int
	logger       *zap.Logger

	mu             sync.Mutex
	estimator      *usecase.ConversionEstimator
	estimatorEpoch uint64
	panels         *usecase.PanelRouter
	panelsEpoch    uint64
}

// New creates a Handler from its dependencies.
func New(d Deps) *Handler {
	perPage := d.PerPage
	if perPage < 1 {
		perPage = 20
	}
	return &Handler{
		sessions:     d.Sessions,
		wallets:      d.Wallets,
		loader:       d.Loader,
		aggregator:   d.Aggregator,
		desk:         d.Desk,
		reports:      d.Reports,
		exporter:     d.Exporter,
		newEstimator: d.NewEstimator,
		perPage:      perPage,
		logger:       d.Logger,
	}
}

// Close releases the session-scoped estimator.
func (h *Handler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.resetLocked()
}

func (h *Handler) resetLocked() {
	if h.estimator != nil {
		h.estimator.Close()
	}
	h.estimator = nil
	h.panels = nil
}

type sessionKey struct{}

// RequireSession rejects requests without a live session and passes the
// session down in the request context.
func (h *Handler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessions.Current(r.Context())
		if err != nil {
			h.fail(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

// RequireRole allows only the given roles through. It must run after
// RequireSession.
func (h *Handler) RequireRole(roles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := sessionFrom(r.Context())
			for _, role := range roles {
				if sess != nil && sess.User.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			Error(w, http.StatusForbidden, "This view is not available for your role.")
		})
	}
}

func sessionFrom(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(sessionKey{}).(*session.Session)
	return sess
}

// estimatorFor returns the estimator bound to sess, replacing one left
// over from an earlier login.
func (h *Handler) estimatorFor(sess *session.Session) *usecase.ConversionEstimator {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.estimator == nil || h.estimatorEpoch != sess.Epoch {
		if h.estimator != nil {
			h.estimator.Close()
		}
		h.estimator = h.newEstimator()
		h.estimatorEpoch = sess.Epoch
	}
	return h.estimator
}

func (h *Handler) panelsFor(ctx context.Context, sess *session.Session) (*usecase.PanelRouter, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.panels == nil || h.panelsEpoch != sess.Epoch {
		panels, err := usecase.NewPanelRouter(ctx, h.sessions.Store(), sess.User.Role, h.logger)
		if err != nil {
			return nil, err
		}
		h.panels = panels
		h.panelsEpoch = sess.Epoch
	}
	return h.panels, nil
}

type loginRequest struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type sessionResponse struct {
	User             domain.User       `json:"user"`
	ExpiresInSeconds int64             `json:"expiresInSeconds"`
	Panels           []domain.PanelKey `json:"panels"`
}

// HandleLogin starts a session from a token obtained by the presentation
// layer's sign-in flow.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(r, &body); err != nil {
		h.fail(w, r, err)
		return
	}

	h.mu.Lock()
	h.resetLocked()
	h.mu.Unlock()

	sess, err := h.sessions.Login(r.Context(), body.Token, body.User)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusCreated, h.describe(r.Context(), sess))
}

func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.describe(r.Context(), sessionFrom(r.Context())))
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	h.resetLocked()
	h.mu.Unlock()

	if err := h.sessions.Logout(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *Handler) describe(ctx context.Context, sess *session.Session) sessionResponse {
	return sessionResponse{
		User:             sess.User,
		ExpiresInSeconds: int64(h.sessions.ExpiresIn(ctx) / time.Second),
		Panels:           sess.User.Role.Panels(),
	}
}
