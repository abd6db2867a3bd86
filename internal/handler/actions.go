package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"wallet-dashboard/internal/domain"
	"wallet-dashboard/internal/usecase"
)

type conversionResponse struct {
	usecase.ConversionState
	Pending bool   `json:"pending"`
	Error   string `json:"error,omitempty"`
}

func newConversionResponse(s usecase.ConversionState) conversionResponse {
	resp := conversionResponse{ConversionState: s, Pending: s.Phase.Pending()}
	if s.Err != nil {
		resp.Error = userMessage(s.Err)
	}
	return resp
}

// HandleConversionInput feeds the latest amount and currencies to the
// estimator. The quote arrives later; poll HandleConversionState.
func (h *Handler) HandleConversionInput(w http.ResponseWriter, r *http.Request) {
	var body usecase.ConversionInput
	if err := decodeJSON(r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	est := h.estimatorFor(sessionFrom(r.Context()))
	est.Update(body.Amount, body.From, body.To)
	JSON(w, http.StatusAccepted, newConversionResponse(est.State()))
}

func (h *Handler) HandleConversionState(w http.ResponseWriter, r *http.Request) {
	est := h.estimatorFor(sessionFrom(r.Context()))
	JSON(w, http.StatusOK, newConversionResponse(est.State()))
}

type panelResponse struct {
	Role     domain.Role       `json:"role"`
	Active   domain.PanelKey   `json:"active"`
	Panels   []domain.PanelKey `json:"panels"`
	Selected *bool             `json:"selected,omitempty"`
}

func (h *Handler) HandlePanel(w http.ResponseWriter, r *http.Request) {
	panels, err := h.panelsFor(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	role, active := panels.Active()
	JSON(w, http.StatusOK, panelResponse{Role: role, Active: active, Panels: role.Panels()})
}

// HandleSelectPanel activates a panel. Keys outside the role's allow-list
// leave the active panel unchanged and report selected=false.
func (h *Handler) HandleSelectPanel(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key domain.PanelKey `json:"key"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	panels, err := h.panelsFor(r.Context(), sessionFrom(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	selected, err := panels.Select(r.Context(), body.Key)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	role, active := panels.Active()
	JSON(w, http.StatusOK, panelResponse{Role: role, Active: active, Panels: role.Panels(), Selected: &selected})
}

func (h *Handler) HandleActivateWallet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		WalletType domain.WalletType `json:"walletType"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondAck(w, r)(h.desk.ActivateWallet(r.Context(), body.WalletType))
}

func (h *Handler) HandleTransfer(w http.ResponseWriter, r *http.Request) {
	var body domain.TransferRequest
	if err := decodeJSON(r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondAck(w, r)(h.desk.Transfer(r.Context(), body))
}

func (h *Handler) HandleDepositRequest(w http.ResponseWriter, r *http.Request) {
	var body domain.DepositRequest
	if err := decodeJSON(r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondAck(w, r)(h.desk.Deposit(r.Context(), body))
}

func (h *Handler) HandleWithdrawalRequest(w http.ResponseWriter, r *http.Request) {
	var body domain.WithdrawalSubmission
	if err := decodeJSON(r, &body); err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondAck(w, r)(h.desk.Withdraw(r.Context(), body))
}

func (h *Handler) HandlePendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.desk.Pending(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if reqs == nil {
		reqs = []domain.WithdrawalRequest{}
	}
	JSON(w, http.StatusOK, reqs)
}

// HandleRespondWithdrawal approves or rejects one request. Requests that
// are no longer pending are refused without contacting the service.
func (h *Handler) HandleRespondWithdrawal(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Action domain.WithdrawalAction `json:"action"`
	}
	if err := decodeJSON(r, &body); err != nil {
		h.fail(w, r, err)
		return
	}

	req, err := h.desk.Lookup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	ack, err := h.desk.Respond(r.Context(), req, body.Action)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusOK, map[string]interface{}{
		"message": ack.Message,
		"request": req,
	})
}

func (h *Handler) HandleDashboardMetrics(w http.ResponseWriter, r *http.Request) {
	metrics, err := h.reports.ManagerDashboardMetrics(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusOK, metrics)
}

func (h *Handler) HandleCommissionStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reports.ManagerCommissionStats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusOK, stats)
}

func (h *Handler) HandleUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.reports.AdminAllUsers(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if users == nil {
		users = []domain.UserSummary{}
	}
	JSON(w, http.StatusOK, users)
}

// respondAck adapts a command result to a response.
func (h *Handler) respondAck(w http.ResponseWriter, r *http.Request) func(*domain.Ack, error) {
	return func(ack *domain.Ack, err error) {
		if err != nil {
			h.fail(w, r, err)
			return
		}
		JSON(w, http.StatusOK, ack)
	}
}
