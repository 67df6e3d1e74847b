package catalogController

import (
	"context"
	"encoding/json"
	"testing"

	"maestro/config"
	. "maestro/internal/models"
	"maestro/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testController() *CatalogController {
	return &CatalogController{
		config: config.Config{OperatorName: "Operator"},
		log:    logger.New("catalogController"),
	}
}

func TestOperatorGatePerOperation(t *testing.T) {
	cc := testController()
	stranger := &User{DisplayName: "Somebody Else"}
	ctx := context.Background()

	_, err := cc.UpsertAlbum(ctx, stranger, AlbumInput{ID: "album1"})
	assert.ErrorIs(t, err, types.ErrAccessDenied)

	_, err = cc.UpsertArtists(ctx, nil, []string{"artist1"})
	assert.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = cc.UpsertTrack(ctx, stranger, TrackInput{ID: "track1", AlbumID: "album1"})
	assert.ErrorIs(t, err, types.ErrAccessDenied)

	_, err = cc.UpsertComposer(ctx, stranger, "artist1", "Ludwig van Beethoven")
	assert.ErrorIs(t, err, types.ErrAccessDenied)

	_, err = cc.CheckWorkAndMovement(ctx, nil, WorkMovementQuery{})
	assert.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = cc.LinkWorkMovementTrack(ctx, stranger, LinkInput{})
	assert.ErrorIs(t, err, types.ErrAccessDenied)

	_, err = cc.UnlinkTrack(ctx, stranger, "track1")
	assert.ErrorIs(t, err, types.ErrAccessDenied)
}

func TestInputValidationBeforeAnyWrite(t *testing.T) {
	cc := testController()
	operator := &User{DisplayName: "Operator"}
	ctx := context.Background()

	// Repos are nil here, so reaching a store call would panic: these calls
	// must fail on validation alone.
	_, err := cc.UpsertAlbum(ctx, operator, AlbumInput{})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = cc.UpsertArtists(ctx, operator, nil)
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = cc.UpsertTrack(ctx, operator, TrackInput{ID: "track1"})
	assert.ErrorIs(t, err, types.ErrInvalidInput, "track without album is rejected")

	_, err = cc.UpsertComposer(ctx, operator, "", "Ludwig van Beethoven")
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = cc.CheckWorkAndMovement(ctx, operator, WorkMovementQuery{ComposerID: "beethoven"})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = cc.LinkWorkMovementTrack(ctx, operator, LinkInput{
		TrackID:        "track1",
		ComposerID:     "beethoven",
		CatalogSystem:  "Op",
		CatalogNumber:  "67",
		MovementNumber: 0,
	})
	assert.ErrorIs(t, err, types.ErrInvalidInput, "movement numbers are 1-based")

	_, err = cc.UnlinkTrack(ctx, operator, "")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestMarshalImages(t *testing.T) {
	variants := []ImageVariant{
		{URL: "https://img/640", Height: 640, Width: 640},
		{URL: "https://img/300", Height: 300, Width: 300},
	}

	data := marshalImages(variants)
	require.NotNil(t, data)

	var decoded []ImageVariant
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, variants, decoded)
}

func TestMarshalImagesEmpty(t *testing.T) {
	assert.Nil(t, marshalImages(nil))
	assert.Nil(t, marshalImages([]ImageVariant{}))
}
