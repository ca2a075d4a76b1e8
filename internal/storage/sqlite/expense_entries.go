package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/storage"
)

// An Active entry stores NULL in overwritten_by; an Inactive entry stores
// the id of its successor. The domain sum type is rebuilt on read.
type entryRow struct {
	id            string
	expenseID     string
	groupID       string
	payerID       string
	overwrittenBy sql.NullString
	total         int64
	authorID      string
	occurredAt    string
	createdAt     string
}

const entryColumns = "id, expense_id, group_id, payer_id, overwritten_by, total, author_id, occurred_at, created_at"

func scanEntryRow(scan func(...any) error) (entryRow, error) {
	var r entryRow
	err := scan(
		&r.id, &r.expenseID, &r.groupID, &r.payerID,
		&r.overwrittenBy, &r.total, &r.authorID, &r.occurredAt, &r.createdAt,
	)
	return r, err
}

func (t *tx) buildEntry(ctx context.Context, r entryRow) (domain.ExpenseEntry, error) {
	rawID, err := decodeUUID(r.id)
	if err != nil {
		return domain.ExpenseEntry{}, err
	}
	id, err := domain.NewExpenseEntryID(rawID)
	if err != nil {
		return domain.ExpenseEntry{}, corrupted("bad expense entry id", err)
	}

	rawExpenseID, err := decodeUUID(r.expenseID)
	if err != nil {
		return domain.ExpenseEntry{}, err
	}
	expenseID, err := domain.NewExpenseID(rawExpenseID)
	if err != nil {
		return domain.ExpenseEntry{}, corrupted("bad expense id", err)
	}

	rawGroupID, err := decodeUUID(r.groupID)
	if err != nil {
		return domain.ExpenseEntry{}, err
	}
	groupID, err := domain.NewGroupID(rawGroupID)
	if err != nil {
		return domain.ExpenseEntry{}, corrupted("bad group id", err)
	}

	payerID, err := decodeUserID(r.payerID)
	if err != nil {
		return domain.ExpenseEntry{}, err
	}
	authorID, err := decodeUserID(r.authorID)
	if err != nil {
		return domain.ExpenseEntry{}, err
	}

	status := domain.ActiveStatus()
	if r.overwrittenBy.Valid {
		rawSuccessor, err := decodeUUID(r.overwrittenBy.String)
		if err != nil {
			return domain.ExpenseEntry{}, err
		}
		successor, err := domain.NewExpenseEntryID(rawSuccessor)
		if err != nil {
			return domain.ExpenseEntry{}, corrupted("bad successor entry id", err)
		}
		status = domain.InactiveStatus(successor)
	}

	occurredAt, err := decodeTime(r.occurredAt)
	if err != nil {
		return domain.ExpenseEntry{}, err
	}
	createdAt, err := decodeTime(r.createdAt)
	if err != nil {
		return domain.ExpenseEntry{}, err
	}

	participants, err := t.entryParticipants(ctx, id)
	if err != nil {
		return domain.ExpenseEntry{}, err
	}

	entry, err := domain.NewExpenseEntry(
		id, expenseID, groupID, payerID, participants,
		status, domain.MoneyFromCents(r.total), authorID, occurredAt, createdAt,
	)
	if err != nil {
		return domain.ExpenseEntry{}, corrupted("bad expense entry", err)
	}
	return entry, nil
}

func (t *tx) entryParticipants(ctx context.Context, id domain.ExpenseEntryID) ([]domain.UserID, error) {
	rows, err := t.tx.QueryContext(ctx,
		"SELECT participant_id FROM expense_entry_participants WHERE entry_id = ? ORDER BY participant_id",
		id.String(),
	)
	if err != nil {
		return nil, dbErr("failed to get entry participants", err)
	}
	defer rows.Close()

	var participants []domain.UserID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, dbErr("failed to scan participant", err)
		}
		participant, err := decodeUserID(raw)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("failed to iterate participants", err)
	}
	return participants, nil
}

// CreateExpenseEntry inserts an entry and its participant rows.
func (t *tx) CreateExpenseEntry(ctx context.Context, entry domain.ExpenseEntry) error {
	var overwrittenBy any
	if successor, ok := entry.Status.OverwrittenBy(); ok {
		overwrittenBy = successor.String()
	}

	_, err := t.tx.ExecContext(ctx,
		"INSERT INTO expense_entries ("+entryColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		entry.ID.String(),
		entry.ExpenseID.String(),
		entry.GroupID.String(),
		entry.PayerID.String(),
		overwrittenBy,
		entry.Total.Cents(),
		entry.AuthorID.String(),
		encodeTime(entry.OccurredAt),
		encodeTime(entry.CreatedAt),
	)
	if err != nil {
		return dbErr("failed to create expense entry", err)
	}

	for _, participant := range entry.Participants {
		_, err := t.tx.ExecContext(ctx,
			"INSERT INTO expense_entry_participants (entry_id, participant_id) VALUES (?, ?)",
			entry.ID.String(), participant.String(),
		)
		if err != nil {
			return dbErr("failed to insert entry participant", err)
		}
	}
	return nil
}

// ExpenseEntryByID retrieves one entry, returning nil when absent.
func (t *tx) ExpenseEntryByID(ctx context.Context, id domain.ExpenseEntryID) (*domain.ExpenseEntry, error) {
	row := t.tx.QueryRowContext(ctx,
		"SELECT "+entryColumns+" FROM expense_entries WHERE id = ?", id.String(),
	)
	r, err := scanEntryRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, dbErr("failed to get expense entry", err)
	}

	entry, err := t.buildEntry(ctx, r)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ExpenseEntriesByExpenseID lists every version of a logical expense,
// oldest first.
func (t *tx) ExpenseEntriesByExpenseID(ctx context.Context, id domain.ExpenseID) ([]domain.ExpenseEntry, error) {
	return t.listEntries(ctx,
		"SELECT "+entryColumns+" FROM expense_entries WHERE expense_id = ? ORDER BY created_at, id",
		id.String(),
	)
}

// ActiveExpenseEntriesForGroup lists Active entries for the group, newest
// occurrence first with the id as tie-break.
func (t *tx) ActiveExpenseEntriesForGroup(ctx context.Context, groupID domain.GroupID, page storage.Page) ([]domain.ExpenseEntry, error) {
	return t.listEntries(ctx,
		`SELECT `+entryColumns+`
		FROM expense_entries
		WHERE group_id = ? AND overwritten_by IS NULL
		ORDER BY occurred_at DESC, id DESC
		LIMIT ? OFFSET ?`,
		groupID.String(), page.Limit, page.Offset,
	)
}

func (t *tx) listEntries(ctx context.Context, query string, args ...any) ([]domain.ExpenseEntry, error) {
	rows, err := t.tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbErr("failed to list expense entries", err)
	}
	defer rows.Close()

	var raw []entryRow
	for rows.Next() {
		r, err := scanEntryRow(rows.Scan)
		if err != nil {
			return nil, dbErr("failed to scan expense entry", err)
		}
		raw = append(raw, r)
	}
	if err := rows.Err(); err != nil {
		return nil, dbErr("failed to iterate expense entries", err)
	}

	entries := make([]domain.ExpenseEntry, 0, len(raw))
	for _, r := range raw {
		entry, err := t.buildEntry(ctx, r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CountActiveExpenseEntriesForGroup counts Active entries without pagination.
func (t *tx) CountActiveExpenseEntriesForGroup(ctx context.Context, groupID domain.GroupID) (int, error) {
	var count int
	err := t.tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM expense_entries WHERE group_id = ? AND overwritten_by IS NULL",
		groupID.String(),
	).Scan(&count)
	if err != nil {
		return 0, dbErr("failed to count active expense entries", err)
	}
	return count, nil
}
