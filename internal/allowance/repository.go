package allowance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	allowancedb "household-hub/internal/allowance/db"
)

// Entry is one credit or debit on a kid's allowance ledger.
type Entry struct {
	ID          int64     `json:"id"`
	MemberID    int64     `json:"member_id"`
	AmountCents int64     `json:"amount_cents"`
	Memo        string    `json:"memo"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository handles persistence of allowance ledgers.
type Repository struct {
	queries *allowancedb.Queries
	db      *sql.DB
}

// NewRepository creates a new allowance repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: allowancedb.New(d),
		db:      d,
	}
}

// AddEntry appends a ledger entry. The amount must be non-zero; negative
// amounts are spends.
func (r *Repository) AddEntry(ctx context.Context, memberID, amountCents int64, memo string) (int64, error) {
	if amountCents == 0 {
		return 0, fmt.Errorf("allowance amount must be non-zero")
	}
	id, err := r.queries.InsertAllowanceEntry(ctx, allowancedb.InsertAllowanceEntryParams{
		MemberID:    memberID,
		AmountCents: amountCents,
		Memo:        memo,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert allowance entry: %w", err)
	}
	return id, nil
}

// Balance returns the member's ledger sum in cents.
func (r *Repository) Balance(ctx context.Context, memberID int64) (int64, error) {
	balance, err := r.queries.GetAllowanceBalance(ctx, memberID)
	if err != nil {
		return 0, fmt.Errorf("failed to get allowance balance: %w", err)
	}
	return balance, nil
}

// ListEntries returns the member's ledger, newest first.
func (r *Repository) ListEntries(ctx context.Context, memberID int64) ([]Entry, error) {
	dbEntries, err := r.queries.ListAllowanceEntriesByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowance entries: %w", err)
	}
	entries := make([]Entry, 0, len(dbEntries))
	for _, e := range dbEntries {
		entries = append(entries, Entry{
			ID:          e.ID,
			MemberID:    e.MemberID,
			AmountCents: e.AmountCents,
			Memo:        e.Memo,
			CreatedAt:   e.CreatedAt,
		})
	}
	return entries, nil
}
