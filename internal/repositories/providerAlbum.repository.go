package repositories

import (
	"context"
	"errors"

	"maestro/internal/database"
	. "maestro/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProviderAlbumRepository interface {
	GetByID(ctx context.Context, id string) (*ProviderAlbum, error)
	Upsert(ctx context.Context, album *ProviderAlbum) error
}

type providerAlbumRepository struct {
	db  database.DB
	log logger.Logger
}

func NewProviderAlbumRepository(db database.DB) ProviderAlbumRepository {
	return &providerAlbumRepository{
		db:  db,
		log: logger.New("providerAlbumRepository"),
	}
}

func (r *providerAlbumRepository) GetByID(ctx context.Context, id string) (*ProviderAlbum, error) {
	log := r.log.Function("GetByID")

	var album ProviderAlbum
	if err := r.db.SQLWithContext(ctx).First(&album, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get provider album", err, "id", id)
	}

	return &album, nil
}

func (r *providerAlbumRepository) Upsert(ctx context.Context, album *ProviderAlbum) error {
	log := r.log.Function("Upsert")

	err := r.db.SQLWithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(album).Error
	if err != nil {
		return log.Err("failed to upsert provider album", err, "id", album.ID)
	}

	return nil
}
