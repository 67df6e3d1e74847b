package seed

import (
	"maestro/config"
	. "maestro/internal/models"
	"maestro/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

// Seed loads a starter set of composers for development. Provider artist IDs
// are Spotify's canonical artist IDs for each composer.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding development data")

	composers := []struct {
		name             string
		providerArtistID string
	}{
		{"Ludwig van Beethoven", "2wOqMjp9TyABvtHdOSOTUS"},
		{"Johann Sebastian Bach", "5aIqB5nVVvmFsvSdExz408"},
		{"Wolfgang Amadeus Mozart", "4NJhFmfw43RLBLjQvxDuRS"},
		{"Franz Schubert", "2p0UyoPfYfI76PCStuXfOP"},
		{"Frédéric Chopin", "7y97mc3bZRFXzT2szRM4L4"},
	}

	for _, entry := range composers {
		composer := Composer{
			ID:               utils.Slugify(entry.name),
			Name:             entry.name,
			ProviderArtistID: entry.providerArtistID,
		}

		var existing Composer
		if err := db.First(&existing, "id = ?", composer.ID).Error; err == nil {
			log.Info("Composer already exists", "composerID", composer.ID)
			continue
		}

		// The composer row references the provider artist, so mirror a
		// minimal artist record first.
		artist := ProviderArtist{
			BaseProviderModel: BaseProviderModel{ID: entry.providerArtistID},
			Name:              entry.name,
		}
		if err := db.FirstOrCreate(&artist, "id = ?", artist.ID).Error; err != nil {
			log.Er("failed to create provider artist", err, "artistID", artist.ID)
			continue
		}

		log.Info("Seeding composer", "composerID", composer.ID)
		if err := db.Create(&composer).Error; err != nil {
			log.Er("failed to create composer", err, "composerID", composer.ID)
		}
	}

	return nil
}
