package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

var (
	ErrNegativeTotal       = errors.New("cannot create an expense with a negative total")
	ErrPayerNotInGroup     = errors.New("payer must be a group member to pay for an expense")
	ErrAuthorNotInGroup    = errors.New("author must be a group member to record an expense")
	ErrParticipantNotFound = errors.New("at least one participant is not found in group")
)

// ParticipantSelection chooses who shares an expense: every current group
// member, or an explicit list.
type ParticipantSelection struct {
	all  bool
	list []domain.UserID
}

// AllParticipants selects {owner} ∪ members as they are at creation time; a
// snapshot, not a live view.
func AllParticipants() ParticipantSelection {
	return ParticipantSelection{all: true}
}

// ParticipantList selects an explicit set of users; each must belong to the
// group.
func ParticipantList(ids []domain.UserID) ParticipantSelection {
	return ParticipantSelection{list: ids}
}

// CreateExpenseCommand records a new expense in a group. The payer is
// removed from the participant set whatever the selection mode; a payer
// does not owe themselves.
type CreateExpenseCommand struct {
	GroupID      domain.GroupID
	PayerID      domain.UserID
	AuthorID     domain.UserID
	Participants ParticipantSelection
	Total        domain.Money
	OccurredAt   time.Time
}

// Handle validates in order: total not negative (ErrNegativeTotal), group
// exists (ErrGroupNotFound), payer belongs to the group
// (ErrPayerNotInGroup), author belongs to the group (ErrAuthorNotInGroup),
// every explicitly listed participant belongs to the group
// (ErrParticipantNotFound). It persists a new Active entry under a fresh
// expense id and returns that logical id.
func (c CreateExpenseCommand) Handle(ctx context.Context, tx storage.Tx) (domain.ExpenseID, error) {
	if c.Total.IsNegative() {
		return domain.ExpenseID{}, ErrNegativeTotal
	}

	group, err := tx.GroupByID(ctx, c.GroupID)
	if err != nil {
		return domain.ExpenseID{}, err
	}
	if group == nil {
		return domain.ExpenseID{}, ErrGroupNotFound
	}

	if !group.Contains(c.PayerID) {
		return domain.ExpenseID{}, ErrPayerNotInGroup
	}
	if !group.Contains(c.AuthorID) {
		return domain.ExpenseID{}, ErrAuthorNotInGroup
	}

	participants, err := c.Participants.resolve(group)
	if err != nil {
		return domain.ExpenseID{}, err
	}

	entry, err := domain.NewExpenseEntry(
		domain.NewRandomExpenseEntryID(),
		domain.NewRandomExpenseID(),
		c.GroupID,
		c.PayerID,
		participants,
		domain.ActiveStatus(),
		c.Total,
		c.AuthorID,
		c.OccurredAt,
		time.Now().UTC(),
	)
	if err != nil {
		// total was checked above; nothing else can fail
		return domain.ExpenseID{}, err
	}

	if err := tx.CreateExpenseEntry(ctx, entry); err != nil {
		return domain.ExpenseID{}, err
	}

	slog.Info("expense created",
		"expense_id", entry.ExpenseID,
		"group_id", c.GroupID,
		"payer_id", c.PayerID,
		"total_cents", c.Total.Cents(),
	)
	return entry.ExpenseID, nil
}

func (s ParticipantSelection) resolve(group *domain.Group) ([]domain.UserID, error) {
	if s.all {
		participants := make([]domain.UserID, 0, len(group.Members)+1)
		participants = append(participants, group.OwnerID)
		participants = append(participants, group.Members...)
		return participants, nil
	}

	for _, id := range s.list {
		if !group.Contains(id) {
			return nil, ErrParticipantNotFound
		}
	}
	return s.list, nil
}
