package services

import (
	"testing"

	"maestro/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntryComposerPrefix(t *testing.T) {
	service := NewInferenceService()

	results := service.InferBatch([]types.InferenceEntry{
		{TrackName: "Beethoven: Symphony No. 5 in C Minor, Op. 67: I. Allegro con brio"},
	})

	require.Len(t, results, 1)
	meta := results[0]
	require.NotNil(t, meta)

	assert.Equal(t, "Beethoven", meta.ComposerName)
	assert.Equal(t, "Op", meta.CatalogSystem)
	assert.Equal(t, "67", meta.CatalogNumber)
	assert.Equal(t, "Symphony No. 5 in C Minor", meta.WorkTitle)
	assert.Equal(t, "C Minor", meta.Key)
	assert.Equal(t, "symphony", meta.Form)
	require.NotNil(t, meta.MovementNumber)
	assert.Equal(t, 1, *meta.MovementNumber)
	assert.Equal(t, "Allegro con brio", meta.MovementTitle)
}

func TestParseEntryNicknameAndCompoundOpus(t *testing.T) {
	service := NewInferenceService()

	results := service.InferBatch([]types.InferenceEntry{
		{
			TrackName:   `Piano Sonata No. 14 in C-Sharp Minor, Op. 27 No. 2 "Moonlight": III. Presto agitato`,
			ArtistNames: []string{"Daniel Barenboim", "Ludwig van Beethoven"},
		},
	})

	require.Len(t, results, 1)
	meta := results[0]
	require.NotNil(t, meta)

	assert.Equal(t, "Ludwig van Beethoven", meta.ComposerName)
	assert.Equal(t, "Op", meta.CatalogSystem)
	assert.Equal(t, "27/2", meta.CatalogNumber)
	assert.Equal(t, "Moonlight", meta.Nickname)
	assert.Equal(t, "C-Sharp Minor", meta.Key)
	require.NotNil(t, meta.MovementNumber)
	assert.Equal(t, 3, *meta.MovementNumber)
	assert.Equal(t, "Presto agitato", meta.MovementTitle)
}

func TestParseEntryParenthesisedNickname(t *testing.T) {
	service := NewInferenceService()

	results := service.InferBatch([]types.InferenceEntry{
		{TrackName: "Beethoven: Symphony No. 6 in F Major, Op. 68 (Pastoral): I. Allegro ma non troppo"},
	})

	require.Len(t, results, 1)
	meta := results[0]
	require.NotNil(t, meta)

	assert.Equal(t, "Pastoral", meta.Nickname)
	assert.Equal(t, "68", meta.CatalogNumber)
	assert.Equal(t, "Symphony No. 6 in F Major", meta.WorkTitle)
}

func TestParseEntryHobokenColon(t *testing.T) {
	service := NewInferenceService()

	results := service.InferBatch([]types.InferenceEntry{
		{TrackName: "Piano Sonata in E-Flat Major, Hob. XVI:52: I. Allegro"},
	})

	require.Len(t, results, 1)
	meta := results[0]
	require.NotNil(t, meta)

	// The colon inside "XVI:52" must not be mistaken for the movement separator.
	assert.Equal(t, "Hob", meta.CatalogSystem)
	assert.Equal(t, "XVI:52", meta.CatalogNumber)
	require.NotNil(t, meta.MovementNumber)
	assert.Equal(t, 1, *meta.MovementNumber)
	assert.Equal(t, "Allegro", meta.MovementTitle)
}

func TestParseEntryKoechelNormalization(t *testing.T) {
	service := NewInferenceService()

	results := service.InferBatch([]types.InferenceEntry{
		{TrackName: "Mozart: Requiem in D Minor, KV 626: Lacrimosa"},
	})

	require.Len(t, results, 1)
	meta := results[0]
	require.NotNil(t, meta)

	assert.Equal(t, "Mozart", meta.ComposerName)
	assert.Equal(t, "K", meta.CatalogSystem)
	assert.Equal(t, "626", meta.CatalogNumber)
	assert.Equal(t, "requiem", meta.Form)
	assert.Nil(t, meta.MovementNumber)
	assert.Equal(t, "Lacrimosa", meta.MovementTitle)
}

func TestParseEntryArabicMovement(t *testing.T) {
	service := NewInferenceService()

	results := service.InferBatch([]types.InferenceEntry{
		{TrackName: "Bach: Brandenburg Concerto No. 3 in G Major, BWV 1048: 2. Adagio"},
	})

	require.Len(t, results, 1)
	meta := results[0]
	require.NotNil(t, meta)

	assert.Equal(t, "BWV", meta.CatalogSystem)
	assert.Equal(t, "1048", meta.CatalogNumber)
	require.NotNil(t, meta.MovementNumber)
	assert.Equal(t, 2, *meta.MovementNumber)
	assert.Equal(t, "Adagio", meta.MovementTitle)
}

func TestInferBatchOrderAndNils(t *testing.T) {
	service := NewInferenceService()

	results := service.InferBatch([]types.InferenceEntry{
		{TrackName: "Beethoven: Symphony No. 5, Op. 67: I. Allegro con brio"},
		{TrackName: "   "},
		{TrackName: "Chopin: Nocturne in E-Flat Major, Op. 9 No. 2"},
	})

	require.Len(t, results, 3)
	require.NotNil(t, results[0])
	assert.Nil(t, results[1], "blank titles yield nil, preserving positions")
	require.NotNil(t, results[2])
	assert.Equal(t, "Beethoven", results[0].ComposerName)
	assert.Equal(t, "9/2", results[2].CatalogNumber)
}

func TestInferMovementNumbersByAlbumPosition(t *testing.T) {
	entries := []MovementGroupEntry{
		{TrackID: "t5", AlbumID: "a1", DiscNumber: 1, TrackNumber: 5, ComposerKey: "beethoven", CatalogSystem: "Op", CatalogNumber: "67"},
		{TrackID: "t3", AlbumID: "a1", DiscNumber: 1, TrackNumber: 3, ComposerKey: "beethoven", CatalogSystem: "Op", CatalogNumber: "67"},
		{TrackID: "t7", AlbumID: "a1", DiscNumber: 1, TrackNumber: 7, ComposerKey: "beethoven", CatalogSystem: "Op", CatalogNumber: "67"},
	}

	inferred := InferMovementNumbers(entries)

	assert.Equal(t, 1, inferred["t3"])
	assert.Equal(t, 2, inferred["t5"])
	assert.Equal(t, 3, inferred["t7"])
}

func TestInferMovementNumbersDiscOrdering(t *testing.T) {
	entries := []MovementGroupEntry{
		{TrackID: "d2t1", AlbumID: "a1", DiscNumber: 2, TrackNumber: 1, ComposerKey: "mahler", CatalogSystem: "Sym", CatalogNumber: "2"},
		{TrackID: "d1t9", AlbumID: "a1", DiscNumber: 1, TrackNumber: 9, ComposerKey: "mahler", CatalogSystem: "Sym", CatalogNumber: "2"},
	}

	inferred := InferMovementNumbers(entries)

	assert.Equal(t, 1, inferred["d1t9"], "disc 1 sorts before disc 2 regardless of track number")
	assert.Equal(t, 2, inferred["d2t1"])
}

func TestInferMovementNumbersGroupKeys(t *testing.T) {
	entries := []MovementGroupEntry{
		{TrackID: "solo", AlbumID: "a1", DiscNumber: 1, TrackNumber: 4, ComposerKey: "chopin", CatalogSystem: "Op", CatalogNumber: "9"},
		// Same catalog number, different album: its own group.
		{TrackID: "other-album", AlbumID: "a2", DiscNumber: 1, TrackNumber: 1, ComposerKey: "chopin", CatalogSystem: "Op", CatalogNumber: "9"},
		// Incomplete key: never grouped, never assigned.
		{TrackID: "no-composer", AlbumID: "a1", DiscNumber: 1, TrackNumber: 2, CatalogSystem: "Op", CatalogNumber: "9"},
	}

	inferred := InferMovementNumbers(entries)

	assert.Equal(t, 1, inferred["solo"], "single-member group infers movement 1")
	assert.Equal(t, 1, inferred["other-album"])
	_, assigned := inferred["no-composer"]
	assert.False(t, assigned)
}

func TestInferMovementNumbersCaseInsensitiveGrouping(t *testing.T) {
	entries := []MovementGroupEntry{
		{TrackID: "x1", AlbumID: "a1", DiscNumber: 1, TrackNumber: 1, ComposerKey: "Beethoven", CatalogSystem: "OP", CatalogNumber: "67"},
		{TrackID: "x2", AlbumID: "a1", DiscNumber: 1, TrackNumber: 2, ComposerKey: "beethoven", CatalogSystem: "op", CatalogNumber: "67"},
	}

	inferred := InferMovementNumbers(entries)

	assert.Equal(t, 1, inferred["x1"])
	assert.Equal(t, 2, inferred["x2"])
}
