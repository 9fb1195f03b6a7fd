package household

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	householddb "household-hub/internal/household/db"
)

// Repository is a database-backed repository for households and members.
type Repository struct {
	queries *householddb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: householddb.New(d),
		db:      d,
	}
}

// CreateWithOwner creates a household and its first adult member in one
// transaction. Returns the new household and member ids.
func (r *Repository) CreateWithOwner(ctx context.Context, householdName string, owner Member) (int64, int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)
	householdID, err := qtx.InsertHousehold(ctx, householdName)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to insert household: %w", err)
	}

	memberID, err := qtx.InsertMember(ctx, householddb.InsertMemberParams{
		HouseholdID:  householdID,
		Name:         owner.Name,
		Email:        strings.ToLower(owner.Email),
		PasswordHash: owner.PasswordHash,
		Role:         string(RoleAdult),
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to insert owner member: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("failed to commit household: %w", err)
	}
	return householdID, memberID, nil
}

// Get retrieves a household by id, or nil when absent.
func (r *Repository) Get(ctx context.Context, id int64) (*Household, error) {
	dbH, err := r.queries.GetHouseholdByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get household %d: %w", id, err)
	}
	h := Household{ID: dbH.ID, Name: dbH.Name, CreatedAt: dbH.CreatedAt}
	if dbH.TelegramChatID.Valid {
		v := dbH.TelegramChatID.Int64
		h.TelegramChatID = &v
	}
	return &h, nil
}

// SetTelegramChat links (or with 0, unlinks) the household's Telegram chat.
func (r *Repository) SetTelegramChat(ctx context.Context, householdID, chatID int64) error {
	var v sql.NullInt64
	if chatID != 0 {
		v = sql.NullInt64{Int64: chatID, Valid: true}
	}
	return r.queries.SetHouseholdTelegramChat(ctx, householddb.SetHouseholdTelegramChatParams{
		TelegramChatID: v,
		ID:             householdID,
	})
}

// AddMember inserts a member into a household.
func (r *Repository) AddMember(ctx context.Context, m Member) (int64, error) {
	id, err := r.queries.InsertMember(ctx, householddb.InsertMemberParams{
		HouseholdID:          m.HouseholdID,
		Name:                 m.Name,
		Email:                strings.ToLower(m.Email),
		PasswordHash:         m.PasswordHash,
		Role:                 string(m.Role),
		WeeklyAllowanceCents: m.WeeklyAllowanceCents,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert member: %w", err)
	}
	return id, nil
}

// GetMemberByEmail retrieves a member by email, or nil when absent.
func (r *Repository) GetMemberByEmail(ctx context.Context, email string) (*Member, error) {
	dbM, err := r.queries.GetMemberByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member by email: %w", err)
	}
	m := memberFromDB(dbM)
	return &m, nil
}

// GetMember retrieves a member by id, or nil when absent.
func (r *Repository) GetMember(ctx context.Context, id int64) (*Member, error) {
	dbM, err := r.queries.GetMemberByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member %d: %w", id, err)
	}
	m := memberFromDB(dbM)
	return &m, nil
}

// ListMembers retrieves all members of a household.
func (r *Repository) ListMembers(ctx context.Context, householdID int64) ([]Member, error) {
	dbMembers, err := r.queries.ListMembersByHousehold(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	members := make([]Member, 0, len(dbMembers))
	for _, m := range dbMembers {
		members = append(members, memberFromDB(m))
	}
	return members, nil
}

func memberFromDB(m householddb.Member) Member {
	return Member{
		ID:                   m.ID,
		HouseholdID:          m.HouseholdID,
		Name:                 m.Name,
		Email:                m.Email,
		PasswordHash:         m.PasswordHash,
		Role:                 Role(m.Role),
		WeeklyAllowanceCents: m.WeeklyAllowanceCents,
		CreatedAt:            m.CreatedAt,
	}
}
