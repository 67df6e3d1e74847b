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

type ProviderTrackRepository interface {
	GetByID(ctx context.Context, id string) (*ProviderTrack, error)
	Upsert(ctx context.Context, track *ProviderTrack) error
	InsertTrackArtists(ctx context.Context, rows []TrackArtist) error
}

type providerTrackRepository struct {
	db  database.DB
	log logger.Logger
}

func NewProviderTrackRepository(db database.DB) ProviderTrackRepository {
	return &providerTrackRepository{
		db:  db,
		log: logger.New("providerTrackRepository"),
	}
}

func (r *providerTrackRepository) GetByID(ctx context.Context, id string) (*ProviderTrack, error) {
	log := r.log.Function("GetByID")

	var track ProviderTrack
	if err := r.db.SQLWithContext(ctx).First(&track, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get provider track", err, "id", id)
	}

	return &track, nil
}

func (r *providerTrackRepository) Upsert(ctx context.Context, track *ProviderTrack) error {
	log := r.log.Function("Upsert")

	// Associations are written separately through InsertTrackArtists; letting
	// GORM autosave them here would bypass the conflict-ignore semantics.
	err := r.db.SQLWithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(track).Error
	if err != nil {
		return log.Err("failed to upsert provider track", err, "id", track.ID)
	}

	return nil
}

func (r *providerTrackRepository) InsertTrackArtists(ctx context.Context, rows []TrackArtist) error {
	log := r.log.Function("InsertTrackArtists")

	if len(rows) == 0 {
		return nil
	}

	err := r.db.SQLWithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
	if err != nil {
		return log.Err("failed to insert track artists", err, "count", len(rows))
	}

	return nil
}
