package household

import "time"

// Role of a member within a household.
type Role string

const (
	RoleAdult Role = "adult"
	RoleKid   Role = "kid"
)

// Household is the tenant: every row in the system is scoped to one.
type Household struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	TelegramChatID *int64    `json:"telegram_chat_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Member is a person in a household. Kids carry a weekly allowance amount.
type Member struct {
	ID                   int64     `json:"id"`
	HouseholdID          int64     `json:"household_id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	PasswordHash         string    `json:"-"`
	Role                 Role      `json:"role"`
	WeeklyAllowanceCents int64     `json:"weekly_allowance_cents"`
	CreatedAt            time.Time `json:"created_at"`
}
