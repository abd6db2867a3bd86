package handler

import (
	"net/http"
	"strconv"
	"strings"

	"wallet-dashboard/internal/domain"
	"wallet-dashboard/internal/gateway"
	"wallet-dashboard/internal/session"
	"wallet-dashboard/internal/usecase"
)

// HandleWallets returns the wallet summary. A failed last-transaction
// lookup only degrades its wallet; a failed wallet list is an error.
func (h *Handler) HandleWallets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	reveal, _ := strconv.ParseBool(q.Get("reveal"))
	opts := usecase.WalletOptions{
		Filter: domain.WalletFilter{OwnerID: q.Get("owner_id"), WalletID: q.Get("wallet_id")},
		Reveal: reveal,
	}

	summary, err := h.wallets.LoadWallets(r.Context(), opts)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	JSON(w, http.StatusOK, summary)
}

type transactionsResponse struct {
	Rows              []domain.Transaction     `json:"rows"`
	Statistics        domain.Statistics        `json:"statistics"`
	Page              int                      `json:"page"`
	PerPage           int                      `json:"perPage"`
	TotalPages        int                      `json:"totalPages"`
	TotalItems        int                      `json:"totalItems"`
	Sources           int                      `json:"sources"`
	DuplicatesDropped int                      `json:"duplicatesDropped"`
	TruncatedSources  []string                 `json:"truncatedSources,omitempty"`
	Filter            domain.TransactionFilter `json:"filter"`
	Sort              domain.SortState         `json:"sort"`
}

// HandleTransactions merges the session's transaction streams and returns
// one page of the filtered, sorted view.
func (h *Handler) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	view, err := h.buildView(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	q := r.URL.Query()
	page := positiveInt(q.Get("page"), 1)
	perPage := positiveInt(q.Get("per_page"), h.perPage)
	rows := view.Page(page, perPage)
	if rows == nil {
		rows = []domain.Transaction{}
	}

	JSON(w, http.StatusOK, transactionsResponse{
		Rows:              rows,
		Statistics:        view.Statistics,
		Page:              page,
		PerPage:           perPage,
		TotalPages:        view.TotalPages(perPage),
		TotalItems:        len(view.Rows),
		Sources:           view.Sources,
		DuplicatesDropped: view.DuplicatesDropped,
		TruncatedSources:  view.TruncatedSources,
		Filter:            view.Filter,
		Sort:              view.Sort,
	})
}

// HandleExport downloads the full filtered view as delimited text.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	view, err := h.buildView(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if len(view.Rows) == 0 {
		Error(w, http.StatusNotFound, "No transactions to export.")
		return
	}

	var text string
	if cols := splitList(r.URL.Query().Get("columns")); len(cols) > 0 {
		text = h.exporter.ToDelimitedText(gateway.TransactionRecords(view.Rows), cols)
	} else {
		text = h.exporter.ExportTransactions(view.Rows)
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func (h *Handler) buildView(r *http.Request) (domain.TransactionView, error) {
	sess := sessionFrom(r.Context())
	sources, err := h.loader.Load(r.Context(), transactionQueries(sess, r)...)
	if err != nil {
		return domain.TransactionView{}, err
	}

	q := r.URL.Query()
	filter := domain.TransactionFilter{
		Search:    q.Get("search"),
		Type:      q.Get("type"),
		Status:    q.Get("status"),
		DateRange: domain.DateRange(q.Get("range")),
	}
	sortState := domain.SortState{Key: q.Get("sort"), Direction: domain.SortDesc}
	if strings.EqualFold(q.Get("dir"), string(domain.SortAsc)) {
		sortState.Direction = domain.SortAsc
	}
	opts := usecase.ViewOptions{StatsScope: domain.StatsOverFiltered}
	if q.Get("scope") == "all" {
		opts.StatsScope = domain.StatsOverAll
	}
	return h.aggregator.BuildView(sources, filter, sortState, opts), nil
}

// transactionQueries selects the streams for the session: the user's own
// wallet, plus the ones agents and managers processed for others.
func transactionQueries(sess *session.Session, r *http.Request) []usecase.NamedQuery {
	q := r.URL.Query()
	mine := domain.TransactionQuery{
		AccountID:  q.Get("account_id"),
		WalletType: domain.WalletType(q.Get("wallet_type")),
	}
	if mine.AccountID == "" {
		mine.AccountID = sess.User.AccountID
	}
	queries := []usecase.NamedQuery{{Name: "my-wallet", Query: mine}}

	switch sess.User.Role {
	case domain.RoleAgent, domain.RoleManager:
		queries = append(queries, usecase.NamedQuery{
			Name:  "processed-for-others",
			Query: domain.TransactionQuery{DoneBy: sess.User.ID},
		})
	}
	return queries
}

func positiveInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
