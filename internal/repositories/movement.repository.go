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

type MovementRepository interface {
	GetByID(ctx context.Context, id string) (*Movement, error)
	GetBatchByIDs(ctx context.Context, ids []string) ([]Movement, error)
	Upsert(ctx context.Context, movement *Movement) error
}

type movementRepository struct {
	db  database.DB
	log logger.Logger
}

func NewMovementRepository(db database.DB) MovementRepository {
	return &movementRepository{
		db:  db,
		log: logger.New("movementRepository"),
	}
}

func (r *movementRepository) GetByID(ctx context.Context, id string) (*Movement, error) {
	log := r.log.Function("GetByID")

	var movement Movement
	if err := r.db.SQLWithContext(ctx).First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get movement", err, "id", id)
	}

	return &movement, nil
}

func (r *movementRepository) GetBatchByIDs(ctx context.Context, ids []string) ([]Movement, error) {
	log := r.log.Function("GetBatchByIDs")

	if len(ids) == 0 {
		return []Movement{}, nil
	}

	var movements []Movement
	if err := r.db.SQLWithContext(ctx).Where("id IN ?", ids).Find(&movements).Error; err != nil {
		return nil, log.Err("failed to get movements by IDs", err, "count", len(ids))
	}

	return movements, nil
}

func (r *movementRepository) Upsert(ctx context.Context, movement *Movement) error {
	log := r.log.Function("Upsert")

	err := r.db.SQLWithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(movement).Error
	if err != nil {
		return log.Err("failed to upsert movement", err, "id", movement.ID)
	}

	return nil
}
