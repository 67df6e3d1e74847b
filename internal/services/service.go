package services

import (
	"maestro/config"
	"maestro/internal/repositories"
)

type Service struct {
	OIDC        *OIDCService
	Spotify     *SpotifyService
	TokenBroker *TokenBrokerService
	Inference   *InferenceService
	Scheduler   *SchedulerService
}

func New(config config.Config, repos repositories.Repository) (Service, error) {
	oidcService, err := NewOIDCService(config)
	if err != nil {
		return Service{}, err
	}

	return Service{
		OIDC:        oidcService,
		Spotify:     NewSpotifyService(config),
		TokenBroker: NewTokenBrokerService(repos.ProviderToken),
		Inference:   NewInferenceService(),
		Scheduler:   NewSchedulerService(),
	}, nil
}
