package calendar

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/oauth2"

	calendardb "household-hub/internal/calendar/calendar_db"
)

// TokenRepository persists OAuth tokens for members who connected their
// Google Calendar.
type TokenRepository struct {
	queries *calendardb.Queries
}

func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{queries: calendardb.New(db)}
}

// Save stores or replaces the member's OAuth token.
func (r *TokenRepository) Save(ctx context.Context, memberID int64, token *oauth2.Token) error {
	raw, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	err = r.queries.UpsertCalendarToken(ctx, calendardb.UpsertCalendarTokenParams{
		MemberID:  memberID,
		TokenJson: string(raw),
	})
	if err != nil {
		return fmt.Errorf("failed to save calendar token: %w", err)
	}
	return nil
}

// Get returns the member's stored token, or nil when none exists.
func (r *TokenRepository) Get(ctx context.Context, memberID int64) (*oauth2.Token, error) {
	row, err := r.queries.GetCalendarToken(ctx, memberID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar token: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal([]byte(row.TokenJson), &token); err != nil {
		return nil, fmt.Errorf("failed to decode token: %w", err)
	}
	return &token, nil
}

// Delete removes the member's stored token.
func (r *TokenRepository) Delete(ctx context.Context, memberID int64) error {
	if err := r.queries.DeleteCalendarToken(ctx, memberID); err != nil {
		return fmt.Errorf("failed to delete calendar token: %w", err)
	}
	return nil
}
