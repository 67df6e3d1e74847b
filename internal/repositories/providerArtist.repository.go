package repositories

import (
	"context"

	"maestro/internal/database"
	. "maestro/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm/clause"
)

type ProviderArtistRepository interface {
	GetBatchByIDs(ctx context.Context, ids []string) (map[string]*ProviderArtist, error)
	Upsert(ctx context.Context, artist *ProviderArtist) error
}

type providerArtistRepository struct {
	db  database.DB
	log logger.Logger
}

func NewProviderArtistRepository(db database.DB) ProviderArtistRepository {
	return &providerArtistRepository{
		db:  db,
		log: logger.New("providerArtistRepository"),
	}
}

func (r *providerArtistRepository) GetBatchByIDs(
	ctx context.Context,
	ids []string,
) (map[string]*ProviderArtist, error) {
	log := r.log.Function("GetBatchByIDs")

	if len(ids) == 0 {
		return make(map[string]*ProviderArtist), nil
	}

	var artists []*ProviderArtist
	if err := r.db.SQLWithContext(ctx).Where("id IN ?", ids).Find(&artists).Error; err != nil {
		return nil, log.Err("failed to get provider artists by IDs", err, "count", len(ids))
	}

	result := make(map[string]*ProviderArtist, len(artists))
	for _, artist := range artists {
		result[artist.ID] = artist
	}

	return result, nil
}

func (r *providerArtistRepository) Upsert(ctx context.Context, artist *ProviderArtist) error {
	log := r.log.Function("Upsert")

	err := r.db.SQLWithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(artist).Error
	if err != nil {
		return log.Err("failed to upsert provider artist", err, "id", artist.ID)
	}

	return nil
}
