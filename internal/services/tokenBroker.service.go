package services

import (
	"context"
	"time"

	"maestro/internal/models"
	"maestro/internal/repositories"
	"maestro/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

const SpotifyProvider = "spotify"

// TokenBrokerService resolves and stores per-user provider access tokens,
// keyed by (provider, user).
type TokenBrokerService struct {
	tokenRepo repositories.ProviderTokenRepository
	log       logger.Logger
}

func NewTokenBrokerService(tokenRepo repositories.ProviderTokenRepository) *TokenBrokerService {
	return &TokenBrokerService{
		tokenRepo: tokenRepo,
		log:       logger.New("TokenBrokerService"),
	}
}

// ResolveAccessToken returns the user's access token for the provider, or
// ErrNoAccessToken when none is stored or the stored one has expired.
func (s *TokenBrokerService) ResolveAccessToken(
	ctx context.Context,
	provider string,
	user *models.User,
) (string, error) {
	log := s.log.Function("ResolveAccessToken")

	token, err := s.tokenRepo.GetByProviderAndUser(ctx, provider, user.ID)
	if err != nil {
		return "", log.Err("failed to resolve provider token", err, "provider", provider, "userID", user.ID)
	}

	if token == nil {
		log.Info("no provider token on record", "provider", provider, "userID", user.ID)
		return "", types.ErrNoAccessToken
	}

	if token.IsExpired() {
		log.Info("provider token expired", "provider", provider, "userID", user.ID)
		return "", types.ErrNoAccessToken
	}

	return token.AccessToken, nil
}

// StoreAccessToken deposits or replaces the user's token for the provider.
func (s *TokenBrokerService) StoreAccessToken(
	ctx context.Context,
	provider string,
	user *models.User,
	accessToken string,
	expiresAt *time.Time,
) error {
	log := s.log.Function("StoreAccessToken")

	if accessToken == "" {
		return types.ErrInvalidInput
	}

	token := &models.ProviderToken{
		Provider:    provider,
		UserID:      user.ID,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}

	if err := s.tokenRepo.Upsert(ctx, token); err != nil {
		return log.Err("failed to store provider token", err, "provider", provider, "userID", user.ID)
	}

	log.Info("Stored provider token", "provider", provider, "userID", user.ID)
	return nil
}

// PruneExpired deletes expired tokens. Run by the scheduler.
func (s *TokenBrokerService) PruneExpired(ctx context.Context) (int64, error) {
	return s.tokenRepo.DeleteExpired(ctx, time.Now())
}
