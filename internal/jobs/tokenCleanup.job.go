package jobs

import (
	"context"

	"maestro/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

// TokenCleanupJob prunes expired provider tokens from the broker table.
type TokenCleanupJob struct {
	tokenBroker *services.TokenBrokerService
	log         logger.Logger
	schedule    services.Schedule
}

func NewTokenCleanupJob(
	tokenBroker *services.TokenBrokerService,
	schedule services.Schedule,
) *TokenCleanupJob {
	return &TokenCleanupJob{
		tokenBroker: tokenBroker,
		log:         logger.New("tokenCleanupJob"),
		schedule:    schedule,
	}
}

func (j *TokenCleanupJob) Name() string {
	return "ProviderTokenCleanup"
}

func (j *TokenCleanupJob) Execute(ctx context.Context) error {
	log := j.log.Function("Execute")

	deleted, err := j.tokenBroker.PruneExpired(ctx)
	if err != nil {
		return log.Err("failed to prune expired provider tokens", err)
	}

	if deleted > 0 {
		log.Info("Pruned expired provider tokens", "count", deleted)
	}
	return nil
}

func (j *TokenCleanupJob) Schedule() services.Schedule {
	return j.schedule
}
