package reconciliationController

import (
	"context"

	"maestro/config"
	. "maestro/internal/models"
	"maestro/internal/repositories"
	"maestro/internal/services"
	"maestro/internal/types"
	"maestro/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
)

type ReconciliationController struct {
	spotify     *services.SpotifyService
	tokenBroker *services.TokenBrokerService
	repos       repositories.Repository
	config      config.Config
	log         logger.Logger
}

type ReconciliationControllerInterface interface {
	ResolveTracks(ctx context.Context, user *User, refs []string) ([]types.AnnotatedTrack, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
) ReconciliationControllerInterface {
	return &ReconciliationController{
		spotify:     services.Spotify,
		tokenBroker: services.TokenBroker,
		repos:       repos,
		config:      config,
		log:         logger.New("reconciliationController"),
	}
}

// ResolveTracks resolves every reference to live provider metadata annotated
// with what the catalog store already holds. Read-only: safe to call
// repeatedly and concurrently. A single invalid reference fails the whole
// batch; callers wanting partial success must pre-validate.
func (rc *ReconciliationController) ResolveTracks(
	ctx context.Context,
	user *User,
	refs []string,
) ([]types.AnnotatedTrack, error) {
	log := rc.log.TraceFromContext(ctx).Function("ResolveTracks")

	if err := requireOperator(user, rc.config.OperatorName); err != nil {
		return nil, err
	}

	if len(refs) == 0 {
		return nil, types.ErrInvalidInput
	}

	trackIDs := make([]string, len(refs))
	for i, ref := range refs {
		trackID, err := utils.ExtractTrackID(ref)
		if err != nil {
			log.Info("invalid track reference", "ref", ref)
			return nil, err
		}
		trackIDs[i] = trackID
	}

	token, err := rc.tokenBroker.ResolveAccessToken(ctx, services.SpotifyProvider, user)
	if err != nil {
		return nil, err
	}

	annotated := make([]types.AnnotatedTrack, 0, len(trackIDs))
	for _, trackID := range trackIDs {
		track, err := rc.resolveTrack(ctx, token, trackID)
		if err != nil {
			return nil, err
		}
		annotated = append(annotated, *track)
	}

	log.Info("Resolved tracks", "count", len(annotated), "userID", user.ID)
	return annotated, nil
}

func (rc *ReconciliationController) resolveTrack(
	ctx context.Context,
	token string,
	trackID string,
) (*types.AnnotatedTrack, error) {
	log := rc.log.Function("resolveTrack")

	track, err := rc.spotify.GetTrack(ctx, token, trackID)
	if err != nil {
		return nil, err
	}

	artistIDs := make([]string, len(track.Artists))
	for i, artist := range track.Artists {
		artistIDs[i] = artist.ID
	}

	// Track responses embed stripped-down artist objects; fetch full records
	// for popularity and images.
	fullArtists, err := rc.spotify.GetSeveralArtists(ctx, token, artistIDs)
	if err != nil {
		return nil, err
	}

	storedArtists, err := rc.repos.ProviderArtist.GetBatchByIDs(ctx, artistIDs)
	if err != nil {
		return nil, err
	}

	composersByArtist, err := rc.repos.Composer.GetBatchByProviderArtistIDs(ctx, artistIDs)
	if err != nil {
		return nil, err
	}

	storedAlbum, err := rc.repos.ProviderAlbum.GetByID(ctx, track.Album.ID)
	if err != nil {
		return nil, err
	}

	storedTrack, err := rc.repos.ProviderTrack.GetByID(ctx, trackID)
	if err != nil {
		return nil, err
	}

	dbData := types.DBData{
		TrackMovements: []TrackMovement{},
		Movements:      []Movement{},
		Works:          []Work{},
		Composers:      []Composer{},
	}
	if storedTrack != nil {
		chain, err := rc.walkAttributionChain(ctx, trackID)
		if err != nil {
			return nil, err
		}
		dbData = *chain
	}

	annotated := &types.AnnotatedTrack{
		ID:          track.ID,
		Name:        track.Name,
		URI:         track.URI,
		DurationMS:  track.DurationMS,
		DiscNumber:  track.DiscNumber,
		TrackNumber: track.TrackNumber,
		Popularity:  track.Popularity,
		Album: types.AnnotatedAlbum{
			ID:                    track.Album.ID,
			Title:                 track.Album.Name,
			ReleaseDate:           track.Album.ReleaseDate,
			Popularity:            track.Album.Popularity,
			Images:                toImageVariants(track.Album.Images),
			InProviderAlbumsTable: storedAlbum != nil,
		},
		Artists:               make([]types.AnnotatedArtist, 0, len(fullArtists)),
		InProviderTracksTable: storedTrack != nil,
		DBData:                dbData,
	}

	for _, artist := range fullArtists {
		annotatedArtist := types.AnnotatedArtist{
			ID:                     artist.ID,
			Name:                   artist.Name,
			Popularity:             artist.Popularity,
			Images:                 toImageVariants(artist.Images),
			InProviderArtistsTable: storedArtists[artist.ID] != nil,
		}
		if composer := composersByArtist[artist.ID]; composer != nil {
			annotatedArtist.InComposersTable = true
			composerID := composer.ID
			annotatedArtist.ComposerID = &composerID
		}
		annotated.Artists = append(annotated.Artists, annotatedArtist)
	}

	log.Debug("Assembled annotated track", "trackID", trackID,
		"cached", annotated.InProviderTracksTable, "links", len(dbData.TrackMovements))
	return annotated, nil
}

// walkAttributionChain follows TrackMovement -> Movement -> Work -> Composer.
// A missing intermediate truncates the chain to whatever was found so far
// rather than erroring; the UI renders absent hops as unknown.
func (rc *ReconciliationController) walkAttributionChain(
	ctx context.Context,
	trackID string,
) (*types.DBData, error) {
	chain := &types.DBData{
		TrackMovements: []TrackMovement{},
		Movements:      []Movement{},
		Works:          []Work{},
		Composers:      []Composer{},
	}

	links, err := rc.repos.TrackMovement.GetByTrackID(ctx, trackID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return chain, nil
	}
	chain.TrackMovements = links

	movementIDs := make([]string, len(links))
	for i, link := range links {
		movementIDs[i] = link.MovementID
	}

	movements, err := rc.repos.Movement.GetBatchByIDs(ctx, movementIDs)
	if err != nil {
		return nil, err
	}
	if len(movements) == 0 {
		return chain, nil
	}
	chain.Movements = movements

	workIDs := uniqueStrings(movements, func(m Movement) string { return m.WorkID })
	works, err := rc.repos.Work.GetBatchByIDs(ctx, workIDs)
	if err != nil {
		return nil, err
	}
	if len(works) == 0 {
		return chain, nil
	}
	chain.Works = works

	composerIDs := uniqueStrings(works, func(w Work) string { return w.ComposerID })
	composers, err := rc.repos.Composer.GetBatchByIDs(ctx, composerIDs)
	if err != nil {
		return nil, err
	}
	chain.Composers = composers

	return chain, nil
}

func toImageVariants(images []services.SpotifyImage) []ImageVariant {
	variants := make([]ImageVariant, len(images))
	for i, image := range images {
		variants[i] = ImageVariant{URL: image.URL, Height: image.Height, Width: image.Width}
	}
	return variants
}

func uniqueStrings[T any](items []T, key func(T) string) []string {
	seen := make(map[string]bool, len(items))
	result := make([]string, 0, len(items))
	for _, item := range items {
		k := key(item)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		result = append(result, k)
	}
	return result
}

func requireOperator(user *User, operatorName string) error {
	if user == nil {
		return types.ErrUnauthorized
	}
	if user.DisplayName != operatorName {
		return types.ErrAccessDenied
	}
	return nil
}
