package repositories

import (
	"context"
	"errors"
	"time"

	"maestro/internal/database"
	. "maestro/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProviderTokenRepository interface {
	GetByProviderAndUser(ctx context.Context, provider string, userID uuid.UUID) (*ProviderToken, error)
	Upsert(ctx context.Context, token *ProviderToken) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type providerTokenRepository struct {
	db  database.DB
	log logger.Logger
}

func NewProviderTokenRepository(db database.DB) ProviderTokenRepository {
	return &providerTokenRepository{
		db:  db,
		log: logger.New("providerTokenRepository"),
	}
}

func (r *providerTokenRepository) GetByProviderAndUser(
	ctx context.Context,
	provider string,
	userID uuid.UUID,
) (*ProviderToken, error) {
	log := r.log.Function("GetByProviderAndUser")

	var token ProviderToken
	err := r.db.SQLWithContext(ctx).
		First(&token, "provider = ? AND user_id = ?", provider, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get provider token", err, "provider", provider, "userID", userID)
	}

	return &token, nil
}

func (r *providerTokenRepository) Upsert(ctx context.Context, token *ProviderToken) error {
	log := r.log.Function("Upsert")

	err := r.db.SQLWithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "expires_at", "updated_at"}),
	}).Create(token).Error
	if err != nil {
		return log.Err("failed to upsert provider token", err, "provider", token.Provider, "userID", token.UserID)
	}

	return nil
}

func (r *providerTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := r.log.Function("DeleteExpired")

	result := r.db.SQLWithContext(ctx).
		Unscoped().
		Where("expires_at IS NOT NULL AND expires_at < ?", now).
		Delete(&ProviderToken{})
	if result.Error != nil {
		return 0, log.Err("failed to delete expired provider tokens", result.Error)
	}

	return result.RowsAffected, nil
}
