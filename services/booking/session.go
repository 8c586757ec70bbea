package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"taskhive/config"
	"taskhive/models"
	"taskhive/services/catalog"
	"taskhive/services/matching"
	"taskhive/utils"
)

// SessionService carries the classify → followups → match flow across
// requests, cached in redis under a short-lived session id.
type SessionService interface {
	StartSession(ctx context.Context, customerID, query string, location *models.LatLng) (*models.BookingSession, []models.FollowupQuestion, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SubmitAnswers(ctx context.Context, sessionID string, answers map[string]string) (*models.BookingSession, error)
	SelectProvider(ctx context.Context, sessionID, providerID string) (*models.BookingSession, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultSessionService implements SessionService.
type DefaultSessionService struct {
	Catalog  *catalog.Catalog
	Matching matching.MatchingService
}

// StartSession classifies the query, ranks providers when a location is
// given, and stores the session under a fresh id.
func (s *DefaultSessionService) StartSession(ctx context.Context, customerID, query string, location *models.LatLng) (*models.BookingSession, []models.FollowupQuestion, error) {
	serviceID := s.Catalog.Classify(query)

	session := &models.BookingSession{
		SessionID:  uuid.New().String(),
		CustomerID: customerID,
		Query:      query,
		ServiceID:  serviceID,
		Location:   location,
	}

	if location != nil {
		ranked, err := s.Matching.Match(serviceID, *location, 0)
		if err != nil {
			return nil, nil, err
		}
		session.MatchedProviders = ranked
	}

	if err := s.save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, s.Catalog.Followups(serviceID), nil
}

func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := utils.GetSessionCacheClient().Get(ctx, sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("booking session not found or expired: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

// SubmitAnswers merges follow-up answers into the session.
func (s *DefaultSessionService) SubmitAnswers(ctx context.Context, sessionID string, answers map[string]string) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Answers == nil {
		session.Answers = make(map[string]string, len(answers))
	}
	for k, v := range answers {
		session.Answers[k] = v
	}
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectProvider pins one of the matched providers on the session.
func (s *DefaultSessionService) SelectProvider(ctx context.Context, sessionID, providerID string) (*models.BookingSession, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for _, rp := range session.MatchedProviders {
		if rp.Provider.ID == providerID {
			found = true
			break
		}
	}
	if !found {
		return nil, &ValidationError{Message: fmt.Sprintf("selected provider (%s) is not in the matched providers list", providerID)}
	}

	session.SelectedProvider = providerID
	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession deletes the session data from the cache.
func (s *DefaultSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := utils.GetSessionCacheClient().Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := utils.GetSessionCacheClient().Set(ctx, session.SessionID, data, config.SessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}
