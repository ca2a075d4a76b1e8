package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/middleware"
	"github.com/mverdier/coinsplit/internal/service"
	"github.com/mverdier/coinsplit/internal/storage"
)

// createExpenseRequest carries money as integer cents; floats never touch
// amounts. A null participants field means "everyone in the group",
// an explicit list means exactly those users.
type createExpenseRequest struct {
	PayerID      string    `json:"payer_id"`
	Participants []string  `json:"participants"`
	TotalCents   int64     `json:"total_cents"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type createExpenseResponse struct {
	ExpenseID string `json:"expense_id"`
}

type expenseResponse struct {
	ID           string                `json:"id"`
	Payer        userSummaryResponse   `json:"payer"`
	Participants []userSummaryResponse `json:"participants"`
	TotalCents   int64                 `json:"total_cents"`
	OccurredAt   string                `json:"occurred_at"`
}

type expensesPageResponse struct {
	Expenses   []expenseResponse `json:"expenses"`
	TotalItems int               `json:"total_items"`
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeErrorCode(w, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
		return
	}

	groupID, err := groupIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	payerID, err := domain.ParseUserID(req.PayerID)
	if err != nil {
		writeError(w, err)
		return
	}

	selection := service.AllParticipants()
	if req.Participants != nil {
		ids := make([]domain.UserID, 0, len(req.Participants))
		for _, raw := range req.Participants {
			id, err := domain.ParseUserID(raw)
			if err != nil {
				writeError(w, err)
				return
			}
			ids = append(ids, id)
		}
		selection = service.ParticipantList(ids)
	}

	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	cmd := service.CreateExpenseCommand{
		GroupID:      groupID,
		PayerID:      payerID,
		AuthorID:     authorID,
		Participants: selection,
		Total:        domain.MoneyFromCents(req.TotalCents),
		OccurredAt:   occurredAt,
	}
	var expenseID domain.ExpenseID
	err = s.store.InTx(r.Context(), func(tx storage.Tx) error {
		var err error
		expenseID, err = cmd.Handle(r.Context(), tx)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createExpenseResponse{ExpenseID: expenseID.String()})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeErrorCode(w, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
		return
	}

	groupID, err := groupIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	pagination, err := parsePagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := service.GetExpensesForGroupQuery{
		GroupID:     groupID,
		CurrentUser: userID,
		Pagination:  pagination,
	}
	var page service.ExpensesPage
	err = s.store.InTx(r.Context(), func(tx storage.Tx) error {
		var err error
		page, err = q.Handle(r.Context(), tx)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := expensesPageResponse{
		Expenses:   make([]expenseResponse, 0, len(page.Expenses)),
		TotalItems: page.TotalItems,
	}
	for _, e := range page.Expenses {
		participants := make([]userSummaryResponse, 0, len(e.Participants))
		for _, p := range e.Participants {
			participants = append(participants, userSummaryResponse{
				ID:   p.ID.String(),
				Name: p.Name.Value(),
			})
		}
		resp.Expenses = append(resp.Expenses, expenseResponse{
			ID:           e.ID.String(),
			Payer:        userSummaryResponse{ID: e.Payer.ID.String(), Name: e.Payer.Name.Value()},
			Participants: participants,
			TotalCents:   e.Total.Cents(),
			OccurredAt:   e.OccurredAt.Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}
