package repositories

import (
	"maestro/internal/database"
)

type Repository struct {
	User           UserRepository
	ProviderToken  ProviderTokenRepository
	ProviderTrack  ProviderTrackRepository
	ProviderAlbum  ProviderAlbumRepository
	ProviderArtist ProviderArtistRepository
	Composer       ComposerRepository
	Work           WorkRepository
	Movement       MovementRepository
	TrackMovement  TrackMovementRepository
}

func New(db database.DB) Repository {
	return Repository{
		User:           NewUserRepository(db),
		ProviderToken:  NewProviderTokenRepository(db),
		ProviderTrack:  NewProviderTrackRepository(db),
		ProviderAlbum:  NewProviderAlbumRepository(db),
		ProviderArtist: NewProviderArtistRepository(db),
		Composer:       NewComposerRepository(db),
		Work:           NewWorkRepository(db),
		Movement:       NewMovementRepository(db),
		TrackMovement:  NewTrackMovementRepository(db),
	}
}
