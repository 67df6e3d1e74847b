package repositories

import (
	"context"

	"maestro/internal/database"
	. "maestro/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm/clause"
)

type TrackMovementRepository interface {
	GetByTrackID(ctx context.Context, trackID string) ([]TrackMovement, error)
	Insert(ctx context.Context, link *TrackMovement) error
	DeleteByTrackID(ctx context.Context, trackID string) (int64, error)
}

type trackMovementRepository struct {
	db  database.DB
	log logger.Logger
}

func NewTrackMovementRepository(db database.DB) TrackMovementRepository {
	return &trackMovementRepository{
		db:  db,
		log: logger.New("trackMovementRepository"),
	}
}

func (r *trackMovementRepository) GetByTrackID(
	ctx context.Context,
	trackID string,
) ([]TrackMovement, error) {
	log := r.log.Function("GetByTrackID")

	var links []TrackMovement
	if err := r.db.SQLWithContext(ctx).Where("track_id = ?", trackID).Find(&links).Error; err != nil {
		return nil, log.Err("failed to get track movements", err, "trackID", trackID)
	}

	return links, nil
}

func (r *trackMovementRepository) Insert(ctx context.Context, link *TrackMovement) error {
	log := r.log.Function("Insert")

	err := r.db.SQLWithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(link).Error
	if err != nil {
		return log.Err("failed to insert track movement", err,
			"trackID", link.TrackID, "movementID", link.MovementID)
	}

	return nil
}

// DeleteByTrackID removes the link rows only. Work and Movement rows stay put
// even when nothing references them anymore.
func (r *trackMovementRepository) DeleteByTrackID(
	ctx context.Context,
	trackID string,
) (int64, error) {
	log := r.log.Function("DeleteByTrackID")

	result := r.db.SQLWithContext(ctx).Where("track_id = ?", trackID).Delete(&TrackMovement{})
	if result.Error != nil {
		return 0, log.Err("failed to delete track movements", result.Error, "trackID", trackID)
	}

	return result.RowsAffected, nil
}
