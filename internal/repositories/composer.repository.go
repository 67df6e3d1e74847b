package repositories

import (
	"context"
	"errors"

	"maestro/internal/database"
	. "maestro/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type ComposerRepository interface {
	GetByID(ctx context.Context, id string) (*Composer, error)
	GetBatchByIDs(ctx context.Context, ids []string) ([]Composer, error)
	GetBatchByProviderArtistIDs(ctx context.Context, artistIDs []string) (map[string]*Composer, error)
	Create(ctx context.Context, composer *Composer) error
}

type composerRepository struct {
	db  database.DB
	log logger.Logger
}

func NewComposerRepository(db database.DB) ComposerRepository {
	return &composerRepository{
		db:  db,
		log: logger.New("composerRepository"),
	}
}

func (r *composerRepository) GetByID(ctx context.Context, id string) (*Composer, error) {
	log := r.log.Function("GetByID")

	var composer Composer
	if err := r.db.SQLWithContext(ctx).First(&composer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, log.Err("failed to get composer", err, "id", id)
	}

	return &composer, nil
}

func (r *composerRepository) GetBatchByIDs(ctx context.Context, ids []string) ([]Composer, error) {
	log := r.log.Function("GetBatchByIDs")

	if len(ids) == 0 {
		return []Composer{}, nil
	}

	var composers []Composer
	if err := r.db.SQLWithContext(ctx).Where("id IN ?", ids).Find(&composers).Error; err != nil {
		return nil, log.Err("failed to get composers by IDs", err, "count", len(ids))
	}

	return composers, nil
}

func (r *composerRepository) GetBatchByProviderArtistIDs(
	ctx context.Context,
	artistIDs []string,
) (map[string]*Composer, error) {
	log := r.log.Function("GetBatchByProviderArtistIDs")

	if len(artistIDs) == 0 {
		return make(map[string]*Composer), nil
	}

	var composers []*Composer
	err := r.db.SQLWithContext(ctx).
		Where("provider_artist_id IN ?", artistIDs).
		Find(&composers).Error
	if err != nil {
		return nil, log.Err("failed to get composers by provider artist IDs", err, "count", len(artistIDs))
	}

	result := make(map[string]*Composer, len(composers))
	for _, composer := range composers {
		result[composer.ProviderArtistID] = composer
	}

	return result, nil
}

// Create is a plain insert on purpose. A second composer for the same name or
// the same provider artist must fail on the key rather than silently rebind.
func (r *composerRepository) Create(ctx context.Context, composer *Composer) error {
	log := r.log.Function("Create")

	if err := r.db.SQLWithContext(ctx).Create(composer).Error; err != nil {
		return log.Err("failed to create composer", err, "id", composer.ID)
	}

	log.Info("Created composer", "id", composer.ID, "name", composer.Name)
	return nil
}
