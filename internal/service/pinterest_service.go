package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stylevault/internal/domain"
	"stylevault/internal/pinterest"
	"stylevault/internal/repository"
)

var (
	ErrPinterestNotConfigured = errors.New("pinterest app credentials are not configured")
	ErrPinterestNotConnected  = errors.New("pinterest is not connected")
	ErrInvalidOAuthState      = errors.New("invalid or expired oauth state")
)

// PinterestService drives the authorization-code flow and proxies the
// board/pin API for connected users.
type PinterestService interface {
	// AuthURL creates a state entry and returns the consent-screen URL.
	AuthURL(ctx context.Context, userID, redirectURI string) (authURL, state string, err error)
	// CompleteAuth resolves the state, exchanges the code and stores the
	// token. Returns the user the flow belongs to.
	CompleteAuth(ctx context.Context, code, state, redirectURI string) (string, error)
	Boards(ctx context.Context, userID string) ([]domain.PinterestBoard, error)
	Pins(ctx context.Context, userID, boardID string) ([]domain.PinterestPin, error)
	Disconnect(ctx context.Context, userID string) error
}

type pinterestService struct {
	client *pinterest.Client
	repo   repository.PinterestRepository
	now    func() time.Time
}

// NewPinterestService creates a new instance of PinterestService.
func NewPinterestService(client *pinterest.Client, repo repository.PinterestRepository) PinterestService {
	return &pinterestService{
		client: client,
		repo:   repo,
		now:    time.Now,
	}
}

func (s *pinterestService) AuthURL(ctx context.Context, userID, redirectURI string) (string, string, error) {
	if !s.client.Configured() {
		return "", "", ErrPinterestNotConfigured
	}

	now := s.now().UnixMilli()
	state := fmt.Sprintf("%s:%d", userID, now)
	if err := s.repo.SaveState(ctx, state, &domain.PinterestState{
		UserID:    userID,
		Timestamp: now,
	}); err != nil {
		return "", "", err
	}

	return s.client.AuthURL(state, redirectURI), state, nil
}

func (s *pinterestService) CompleteAuth(ctx context.Context, code, state, redirectURI string) (string, error) {
	if !s.client.Configured() {
		return "", ErrPinterestNotConfigured
	}

	record, err := s.repo.GetState(ctx, state)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidOAuthState
	}
	if err != nil {
		return "", err
	}

	token, err := s.client.Exchange(ctx, code, redirectURI)
	if err != nil {
		return "", err
	}

	if err := s.repo.SaveToken(ctx, record.UserID, token); err != nil {
		return "", err
	}
	// State is single-use.
	if err := s.repo.DeleteState(ctx, state); err != nil {
		return "", err
	}

	return record.UserID, nil
}

func (s *pinterestService) Boards(ctx context.Context, userID string) ([]domain.PinterestBoard, error) {
	token, err := s.token(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.client.Boards(ctx, token)
}

func (s *pinterestService) Pins(ctx context.Context, userID, boardID string) ([]domain.PinterestPin, error) {
	token, err := s.token(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.client.Pins(ctx, token, boardID)
}

func (s *pinterestService) Disconnect(ctx context.Context, userID string) error {
	return s.repo.DeleteToken(ctx, userID)
}

func (s *pinterestService) token(ctx context.Context, userID string) (*domain.PinterestToken, error) {
	token, err := s.repo.GetToken(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPinterestNotConnected
	}
	if err != nil {
		return nil, err
	}
	return token, nil
}
