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

type WorkRepository interface {
	GetByID(ctx context.Context, id string) (*Work, error)
	GetBatchByIDs(ctx context.Context, ids []string) ([]Work, error)
	Upsert(ctx context.Context, work *Work) error
}

type workRepository struct {
	db  database.DB
	log logger.Logger
}

func NewWorkRepository(db database.DB) WorkRepository {
	return &workRepository{
		db:  db,
		log: logger.New("workRepository"),
	}
}

func (r *workRepository) GetByID(ctx context.Context, id string) (*Work, error) {
	log := r.log.Function("GetByID")

	var work Work
	if err := r.db.SQLWithContext(ctx).First(&work, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get work", err, "id", id)
	}

	return &work, nil
}

func (r *workRepository) GetBatchByIDs(ctx context.Context, ids []string) ([]Work, error) {
	log := r.log.Function("GetBatchByIDs")

	if len(ids) == 0 {
		return []Work{}, nil
	}

	var works []Work
	if err := r.db.SQLWithContext(ctx).Where("id IN ?", ids).Find(&works).Error; err != nil {
		return nil, log.Err("failed to get works by IDs", err, "count", len(ids))
	}

	return works, nil
}

func (r *workRepository) Upsert(ctx context.Context, work *Work) error {
	log := r.log.Function("Upsert")

	err := r.db.SQLWithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(work).Error
	if err != nil {
		return log.Err("failed to upsert work", err, "id", work.ID)
	}

	return nil
}
