package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

var ErrForbidden = errors.New("forbidden")

// GroupExpense is the denormalized projection of one active expense: the
// logical expense id plus payer and participant display identities.
type GroupExpense struct {
	ID           domain.ExpenseID
	Payer        UserSummary
	Participants []UserSummary
	Total        domain.Money
	OccurredAt   time.Time
}

// ExpensesPage is one page of active expenses plus the unpaginated total.
type ExpensesPage struct {
	Expenses   []GroupExpense
	TotalItems int
}

// GetExpensesForGroupQuery lists the Active expense entries of a group the
// caller belongs to.
type GetExpensesForGroupQuery struct {
	GroupID     domain.GroupID
	CurrentUser domain.UserID
	Pagination  Pagination
}

// Handle fails with ErrGroupNotFound when the group does not exist and
// ErrForbidden when the caller is neither owner nor member. Display names
// for payers and participants are resolved with one batch lookup rather
// than one per row.
func (q GetExpensesForGroupQuery) Handle(ctx context.Context, tx storage.Tx) (ExpensesPage, error) {
	group, err := tx.GroupByID(ctx, q.GroupID)
	if err != nil {
		return ExpensesPage{}, err
	}
	if group == nil {
		return ExpensesPage{}, ErrGroupNotFound
	}
	if !group.Contains(q.CurrentUser) {
		return ExpensesPage{}, ErrForbidden
	}

	entries, err := tx.ActiveExpenseEntriesForGroup(ctx, q.GroupID, q.Pagination.ToPage())
	if err != nil {
		return ExpensesPage{}, err
	}

	total, err := tx.CountActiveExpenseEntriesForGroup(ctx, q.GroupID)
	if err != nil {
		return ExpensesPage{}, err
	}

	users, err := tx.UsersByIDs(ctx, collectUserIDs(entries))
	if err != nil {
		return ExpensesPage{}, err
	}

	expenses := make([]GroupExpense, 0, len(entries))
	for _, entry := range entries {
		expense, err := buildGroupExpense(entry, users)
		if err != nil {
			return ExpensesPage{}, err
		}
		expenses = append(expenses, expense)
	}

	return ExpensesPage{Expenses: expenses, TotalItems: total}, nil
}

func collectUserIDs(entries []domain.ExpenseEntry) []domain.UserID {
	seen := make(map[domain.UserID]struct{})
	var ids []domain.UserID
	add := func(id domain.UserID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, entry := range entries {
		add(entry.PayerID)
		for _, p := range entry.Participants {
			add(p)
		}
	}
	return ids
}

func buildGroupExpense(entry domain.ExpenseEntry, users map[domain.UserID]domain.User) (GroupExpense, error) {
	payer, ok := users[entry.PayerID]
	if !ok {
		return GroupExpense{}, fmt.Errorf("%w: missing payer %s for entry %s",
			storage.ErrCorruptedData, entry.PayerID, entry.ID)
	}

	participants := make([]UserSummary, 0, len(entry.Participants))
	for _, id := range entry.Participants {
		user, ok := users[id]
		if !ok {
			return GroupExpense{}, fmt.Errorf("%w: missing participant %s for entry %s",
				storage.ErrCorruptedData, id, entry.ID)
		}
		participants = append(participants, UserSummary{ID: user.ID, Name: user.Name})
	}

	return GroupExpense{
		ID:           entry.ExpenseID,
		Payer:        UserSummary{ID: payer.ID, Name: payer.Name},
		Participants: participants,
		Total:        entry.Total,
		OccurredAt:   entry.OccurredAt,
	}, nil
}
