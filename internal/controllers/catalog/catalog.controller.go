package catalogController

import (
	"context"
	"encoding/json"

	"maestro/config"
	. "maestro/internal/models"
	"maestro/internal/repositories"
	"maestro/internal/services"
	"maestro/internal/types"
	"maestro/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/datatypes"
)

// CatalogController hosts the write operations. Every operation re-checks the
// access gate independently and runs as its own unit of work; there is no
// transaction spanning operations. All but UpsertComposer are idempotent, so
// a failed multi-step save is recovered by simply re-invoking.
type CatalogController struct {
	spotify     *services.SpotifyService
	tokenBroker *services.TokenBrokerService
	repos       repositories.Repository
	config      config.Config
	log         logger.Logger
}

type CatalogControllerInterface interface {
	UpsertAlbum(ctx context.Context, user *User, input AlbumInput) (*ProviderAlbum, error)
	UpsertArtists(ctx context.Context, user *User, artistIDs []string) ([]ProviderArtist, error)
	UpsertTrack(ctx context.Context, user *User, input TrackInput) (*ProviderTrack, error)
	UpsertComposer(ctx context.Context, user *User, providerArtistID, name string) (*Composer, error)
	CheckWorkAndMovement(ctx context.Context, user *User, input WorkMovementQuery) (*WorkMovementStatus, error)
	LinkWorkMovementTrack(ctx context.Context, user *User, input LinkInput) (*TrackMovement, error)
	UnlinkTrack(ctx context.Context, user *User, trackID string) (int64, error)
}

type AlbumInput struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	ReleaseDate string         `json:"releaseDate"`
	Popularity  int            `json:"popularity"`
	Images      []ImageVariant `json:"images"`
}

type TrackInput struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	URI         string   `json:"uri"`
	DurationMS  int      `json:"durationMs"`
	DiscNumber  int      `json:"discNumber"`
	TrackNumber int      `json:"trackNumber"`
	Popularity  int      `json:"popularity"`
	AlbumID     string   `json:"albumId"`
	ArtistIDs   []string `json:"artistIds"`
}

type WorkMovementQuery struct {
	ComposerID     string `json:"composerId"`
	CatalogSystem  string `json:"catalogSystem"`
	CatalogNumber  string `json:"catalogNumber"`
	MovementNumber int    `json:"movementNumber"`
}

type WorkMovementStatus struct {
	WorkID         string `json:"workId"`
	MovementID     string `json:"movementId"`
	WorkExists     bool   `json:"workExists"`
	MovementExists bool   `json:"movementExists"`
}

type LinkInput struct {
	TrackID        string  `json:"trackId"`
	ComposerID     string  `json:"composerId"`
	CatalogSystem  string  `json:"catalogSystem"`
	CatalogNumber  string  `json:"catalogNumber"`
	WorkTitle      string  `json:"workTitle"`
	Nickname       *string `json:"nickname,omitempty"`
	YearComposed   *int    `json:"yearComposed,omitempty"`
	Form           *string `json:"form,omitempty"`
	MovementNumber int     `json:"movementNumber"`
	MovementTitle  *string `json:"movementTitle,omitempty"`
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
) CatalogControllerInterface {
	return &CatalogController{
		spotify:     services.Spotify,
		tokenBroker: services.TokenBroker,
		repos:       repos,
		config:      config,
		log:         logger.New("catalogController"),
	}
}

// UpsertAlbum mirrors a provider album row. The release year is the leading
// YYYY of the release-date string; an unparseable date stores a null year and
// never fails the save.
func (cc *CatalogController) UpsertAlbum(
	ctx context.Context,
	user *User,
	input AlbumInput,
) (*ProviderAlbum, error) {
	log := cc.log.TraceFromContext(ctx).Function("UpsertAlbum")

	if err := cc.requireOperator(user); err != nil {
		return nil, err
	}
	if input.ID == "" {
		return nil, types.ErrInvalidInput
	}

	album := &ProviderAlbum{
		BaseProviderModel: BaseProviderModel{ID: input.ID},
		Title:             input.Title,
		ReleaseDate:       input.ReleaseDate,
		ReleaseYear:       utils.YearFromReleaseDate(input.ReleaseDate),
		Popularity:        input.Popularity,
		Images:            marshalImages(input.Images),
	}

	if err := cc.repos.ProviderAlbum.Upsert(ctx, album); err != nil {
		log.Er("album upsert failed", err, "albumID", input.ID)
		return nil, types.NewWriteFailed("upsertAlbum", err)
	}

	return album, nil
}

// UpsertArtists refreshes each artist from the provider and mirrors it.
// Sequential by design: an admin tool saving a handful of artists per track
// has no need for fan-out, and a partial failure is recovered by re-invoking
// (already-written artists are simply re-upserted).
func (cc *CatalogController) UpsertArtists(
	ctx context.Context,
	user *User,
	artistIDs []string,
) ([]ProviderArtist, error) {
	log := cc.log.TraceFromContext(ctx).Function("UpsertArtists")

	if err := cc.requireOperator(user); err != nil {
		return nil, err
	}
	if len(artistIDs) == 0 {
		return nil, types.ErrInvalidInput
	}

	token, err := cc.tokenBroker.ResolveAccessToken(ctx, services.SpotifyProvider, user)
	if err != nil {
		return nil, err
	}

	saved := make([]ProviderArtist, 0, len(artistIDs))
	for _, artistID := range artistIDs {
		fresh, err := cc.spotify.GetArtist(ctx, token, artistID)
		if err != nil {
			log.Er("artist fetch failed", err, "artistID", artistID)
			return nil, types.NewWriteFailed("upsertArtists", err)
		}

		artist := &ProviderArtist{
			BaseProviderModel: BaseProviderModel{ID: fresh.ID},
			Name:              fresh.Name,
			Popularity:        fresh.Popularity,
			Images:            marshalSpotifyImages(fresh.Images),
		}
		if err := cc.repos.ProviderArtist.Upsert(ctx, artist); err != nil {
			log.Er("artist upsert failed", err, "artistID", artistID)
			return nil, types.NewWriteFailed("upsertArtists", err)
		}
		saved = append(saved, *artist)
	}

	log.Info("Upserted artists", "count", len(saved))
	return saved, nil
}

func (cc *CatalogController) UpsertTrack(
	ctx context.Context,
	user *User,
	input TrackInput,
) (*ProviderTrack, error) {
	log := cc.log.TraceFromContext(ctx).Function("UpsertTrack")

	if err := cc.requireOperator(user); err != nil {
		return nil, err
	}
	if input.ID == "" || input.AlbumID == "" {
		return nil, types.ErrInvalidInput
	}

	track := &ProviderTrack{
		BaseProviderModel: BaseProviderModel{ID: input.ID},
		Name:              input.Name,
		URI:               input.URI,
		DurationMS:        input.DurationMS,
		DiscNumber:        input.DiscNumber,
		TrackNumber:       input.TrackNumber,
		Popularity:        input.Popularity,
		AlbumID:           input.AlbumID,
	}

	if err := cc.repos.ProviderTrack.Upsert(ctx, track); err != nil {
		log.Er("track upsert failed", err, "trackID", input.ID)
		return nil, types.NewWriteFailed("upsertTrack", err)
	}

	joins := make([]TrackArtist, len(input.ArtistIDs))
	for i, artistID := range input.ArtistIDs {
		joins[i] = TrackArtist{TrackID: input.ID, ArtistID: artistID}
	}
	if err := cc.repos.ProviderTrack.InsertTrackArtists(ctx, joins); err != nil {
		log.Er("track artist insert failed", err, "trackID", input.ID)
		return nil, types.NewWriteFailed("upsertTrack", err)
	}

	return track, nil
}

// UpsertComposer is, despite the name, a plain insert: the slug is derived
// from the name once and a duplicate fails hard instead of rebinding the
// composer to a different provider artist.
func (cc *CatalogController) UpsertComposer(
	ctx context.Context,
	user *User,
	providerArtistID, name string,
) (*Composer, error) {
	log := cc.log.TraceFromContext(ctx).Function("UpsertComposer")

	if err := cc.requireOperator(user); err != nil {
		return nil, err
	}
	if providerArtistID == "" || name == "" {
		return nil, types.ErrInvalidInput
	}

	composer := &Composer{
		ID:               utils.Slugify(name),
		Name:             name,
		ProviderArtistID: providerArtistID,
	}

	if err := cc.repos.Composer.Create(ctx, composer); err != nil {
		log.Er("composer create failed", err, "composerID", composer.ID)
		return nil, types.NewWriteFailed("upsertComposer", err)
	}

	return composer, nil
}

func (cc *CatalogController) CheckWorkAndMovement(
	ctx context.Context,
	user *User,
	input WorkMovementQuery,
) (*WorkMovementStatus, error) {
	if err := cc.requireOperator(user); err != nil {
		return nil, err
	}
	if input.ComposerID == "" || input.CatalogSystem == "" || input.CatalogNumber == "" {
		return nil, types.ErrInvalidInput
	}

	workID := utils.WorkID(input.ComposerID, input.CatalogSystem, input.CatalogNumber)
	movementID := utils.MovementID(workID, input.MovementNumber)

	work, err := cc.repos.Work.GetByID(ctx, workID)
	if err != nil {
		return nil, err
	}

	movement, err := cc.repos.Movement.GetByID(ctx, movementID)
	if err != nil {
		return nil, err
	}

	return &WorkMovementStatus{
		WorkID:         workID,
		MovementID:     movementID,
		WorkExists:     work != nil,
		MovementExists: movement != nil,
	}, nil
}

// LinkWorkMovementTrack upserts the Work and Movement rows derived from the
// input, then inserts the TrackMovement link with null offsets, ignoring an
// already-existing link.
func (cc *CatalogController) LinkWorkMovementTrack(
	ctx context.Context,
	user *User,
	input LinkInput,
) (*TrackMovement, error) {
	log := cc.log.TraceFromContext(ctx).Function("LinkWorkMovementTrack")

	if err := cc.requireOperator(user); err != nil {
		return nil, err
	}
	if input.TrackID == "" || input.ComposerID == "" ||
		input.CatalogSystem == "" || input.CatalogNumber == "" || input.MovementNumber < 1 {
		return nil, types.ErrInvalidInput
	}

	workID := utils.WorkID(input.ComposerID, input.CatalogSystem, input.CatalogNumber)
	work := &Work{
		ID:            workID,
		ComposerID:    input.ComposerID,
		Title:         input.WorkTitle,
		Nickname:      input.Nickname,
		CatalogSystem: input.CatalogSystem,
		CatalogNumber: input.CatalogNumber,
		YearComposed:  input.YearComposed,
		Form:          input.Form,
	}
	if err := cc.repos.Work.Upsert(ctx, work); err != nil {
		log.Er("work upsert failed", err, "workID", workID)
		return nil, types.NewWriteFailed("linkWorkMovementTrack", err)
	}

	movementID := utils.MovementID(workID, input.MovementNumber)
	movement := &Movement{
		ID:     movementID,
		WorkID: workID,
		Number: input.MovementNumber,
		Title:  input.MovementTitle,
	}
	if err := cc.repos.Movement.Upsert(ctx, movement); err != nil {
		log.Er("movement upsert failed", err, "movementID", movementID)
		return nil, types.NewWriteFailed("linkWorkMovementTrack", err)
	}

	link := &TrackMovement{
		TrackID:    input.TrackID,
		MovementID: movementID,
	}
	if err := cc.repos.TrackMovement.Insert(ctx, link); err != nil {
		log.Er("track movement insert failed", err, "trackID", input.TrackID)
		return nil, types.NewWriteFailed("linkWorkMovementTrack", err)
	}

	log.Info("Linked track to movement", "trackID", input.TrackID, "movementID", movementID)
	return link, nil
}

// UnlinkTrack removes the track's TrackMovement rows and nothing else: Work
// and Movement rows survive even when now unreferenced, since they may be
// shared catalog entries.
func (cc *CatalogController) UnlinkTrack(
	ctx context.Context,
	user *User,
	trackID string,
) (int64, error) {
	log := cc.log.TraceFromContext(ctx).Function("UnlinkTrack")

	if err := cc.requireOperator(user); err != nil {
		return 0, err
	}
	if trackID == "" {
		return 0, types.ErrInvalidInput
	}

	deleted, err := cc.repos.TrackMovement.DeleteByTrackID(ctx, trackID)
	if err != nil {
		log.Er("unlink failed", err, "trackID", trackID)
		return 0, types.NewWriteFailed("unlinkTrack", err)
	}

	log.Info("Unlinked track", "trackID", trackID, "deleted", deleted)
	return deleted, nil
}

func (cc *CatalogController) requireOperator(user *User) error {
	if user == nil {
		return types.ErrUnauthorized
	}
	if user.DisplayName != cc.config.OperatorName {
		return types.ErrAccessDenied
	}
	return nil
}

func marshalImages(images []ImageVariant) datatypes.JSON {
	if len(images) == 0 {
		return nil
	}
	bytes, err := json.Marshal(images)
	if err != nil {
		return nil
	}
	return datatypes.JSON(bytes)
}

func marshalSpotifyImages(images []services.SpotifyImage) datatypes.JSON {
	variants := make([]ImageVariant, len(images))
	for i, image := range images {
		variants[i] = ImageVariant{URL: image.URL, Height: image.Height, Width: image.Width}
	}
	return marshalImages(variants)
}
