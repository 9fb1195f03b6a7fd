package calendar

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"household-hub/internal/config"
	"household-hub/internal/mealplan"
)

// Syncer mirrors planned meals into a member's Google Calendar. All sync
// operations are best effort; callers log failures and keep going.
type Syncer struct {
	oauth  *oauth2.Config
	tokens *TokenRepository
}

func NewSyncer(cfg *config.Config, tokens *TokenRepository) *Syncer {
	return &Syncer{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{gcal.CalendarEventsScope},
			Endpoint:     google.Endpoint,
		},
		tokens: tokens,
	}
}

// Enabled reports whether OAuth credentials were configured.
func (s *Syncer) Enabled() bool {
	return s.oauth.ClientID != "" && s.oauth.ClientSecret != ""
}

// AuthURL returns the Google consent page URL for the given state value.
func (s *Syncer) AuthURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Connect exchanges an authorization code and stores the resulting token
// for the member.
func (s *Syncer) Connect(ctx context.Context, memberID int64, code string) error {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return s.tokens.Save(ctx, memberID, token)
}

// Connected reports whether the member has a stored calendar token.
func (s *Syncer) Connected(ctx context.Context, memberID int64) (bool, error) {
	token, err := s.tokens.Get(ctx, memberID)
	if err != nil {
		return false, err
	}
	return token != nil, nil
}

// Disconnect forgets the member's stored token. Events already synced stay
// on the calendar.
func (s *Syncer) Disconnect(ctx context.Context, memberID int64) error {
	return s.tokens.Delete(ctx, memberID)
}

// SyncMeal creates or updates the calendar event for a meal and returns the
// event ID. Returns an empty ID without error when the member has no token.
func (s *Syncer) SyncMeal(ctx context.Context, memberID int64, plan mealplan.WeeklyPlan, meal mealplan.Meal, title string) (string, error) {
	svc, err := s.service(ctx, memberID)
	if err != nil || svc == nil {
		return "", err
	}

	date := mealplan.MealDate(plan, meal).Format("2006-01-02")
	event := &gcal.Event{
		Summary:     "Dinner: " + title,
		Description: "Planned with Household Hub",
		Start:       &gcal.EventDateTime{Date: date},
		End:         &gcal.EventDateTime{Date: date},
	}

	if meal.CalendarEventID != "" {
		updated, err := svc.Events.Update("primary", meal.CalendarEventID, event).Context(ctx).Do()
		if err != nil {
			return "", fmt.Errorf("failed to update calendar event: %w", err)
		}
		return updated.Id, nil
	}

	created, err := svc.Events.Insert("primary", event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, nil
}

// DeleteEvent removes a previously synced event. Missing tokens and missing
// events are not errors.
func (s *Syncer) DeleteEvent(ctx context.Context, memberID int64, eventID string) error {
	if eventID == "" {
		return nil
	}
	svc, err := s.service(ctx, memberID)
	if err != nil || svc == nil {
		return err
	}
	if err := svc.Events.Delete("primary", eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event: %w", err)
	}
	return nil
}

// service builds a calendar client from the member's stored token. Refreshed
// tokens are written back so the refresh only happens once.
func (s *Syncer) service(ctx context.Context, memberID int64) (*gcal.Service, error) {
	token, err := s.tokens.Get(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if token == nil {
		return nil, nil
	}

	source := s.oauth.TokenSource(ctx, token)
	fresh, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh calendar token: %w", err)
	}
	if fresh.AccessToken != token.AccessToken {
		if err := s.tokens.Save(ctx, memberID, fresh); err != nil {
			return nil, err
		}
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(oauth2.StaticTokenSource(fresh)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar client: %w", err)
	}
	return svc, nil
}
