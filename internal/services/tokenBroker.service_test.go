package services

import (
	"context"
	"testing"
	"time"

	"maestro/internal/models"
	"maestro/internal/types"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenRepo struct {
	tokens  map[string]*models.ProviderToken
	upserts int
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*models.ProviderToken)}
}

func (r *fakeTokenRepo) key(provider string, userID uuid.UUID) string {
	return provider + "/" + userID.String()
}

func (r *fakeTokenRepo) GetByProviderAndUser(
	_ context.Context,
	provider string,
	userID uuid.UUID,
) (*models.ProviderToken, error) {
	return r.tokens[r.key(provider, userID)], nil
}

func (r *fakeTokenRepo) Upsert(_ context.Context, token *models.ProviderToken) error {
	r.upserts++
	r.tokens[r.key(token.Provider, token.UserID)] = token
	return nil
}

func (r *fakeTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var deleted int64
	for key, token := range r.tokens {
		if token.ExpiresAt != nil && token.ExpiresAt.Before(now) {
			delete(r.tokens, key)
			deleted++
		}
	}
	return deleted, nil
}

func testUser() *models.User {
	return &models.User{
		BaseUUIDModel: models.BaseUUIDModel{ID: uuid.New()},
		DisplayName:   "Operator",
	}
}

func TestResolveAccessToken(t *testing.T) {
	repo := newFakeTokenRepo()
	broker := NewTokenBrokerService(repo)
	user := testUser()

	err := broker.StoreAccessToken(context.Background(), SpotifyProvider, user, "token-abc", nil)
	require.NoError(t, err)

	token, err := broker.ResolveAccessToken(context.Background(), SpotifyProvider, user)
	require.NoError(t, err)
	assert.Equal(t, "token-abc", token)
}

func TestResolveAccessTokenMissing(t *testing.T) {
	broker := NewTokenBrokerService(newFakeTokenRepo())

	_, err := broker.ResolveAccessToken(context.Background(), SpotifyProvider, testUser())

	assert.ErrorIs(t, err, types.ErrNoAccessToken)
}

func TestResolveAccessTokenExpired(t *testing.T) {
	repo := newFakeTokenRepo()
	broker := NewTokenBrokerService(repo)
	user := testUser()

	expired := time.Now().Add(-time.Minute)
	err := broker.StoreAccessToken(context.Background(), SpotifyProvider, user, "stale", &expired)
	require.NoError(t, err)

	_, err = broker.ResolveAccessToken(context.Background(), SpotifyProvider, user)

	assert.ErrorIs(t, err, types.ErrNoAccessToken, "expired tokens resolve the same as missing ones")
}

func TestStoreAccessTokenReplaces(t *testing.T) {
	repo := newFakeTokenRepo()
	broker := NewTokenBrokerService(repo)
	user := testUser()

	require.NoError(
		t,
		broker.StoreAccessToken(context.Background(), SpotifyProvider, user, "first", nil),
	)
	require.NoError(
		t,
		broker.StoreAccessToken(context.Background(), SpotifyProvider, user, "second", nil),
	)

	token, err := broker.ResolveAccessToken(context.Background(), SpotifyProvider, user)
	require.NoError(t, err)
	assert.Equal(t, "second", token)
	assert.Equal(t, 2, repo.upserts)
}

func TestStoreAccessTokenRejectsEmpty(t *testing.T) {
	broker := NewTokenBrokerService(newFakeTokenRepo())

	err := broker.StoreAccessToken(context.Background(), SpotifyProvider, testUser(), "", nil)

	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestPruneExpired(t *testing.T) {
	repo := newFakeTokenRepo()
	broker := NewTokenBrokerService(repo)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	userA, userB := testUser(), testUser()

	require.NoError(
		t,
		broker.StoreAccessToken(context.Background(), SpotifyProvider, userA, "old", &past),
	)
	require.NoError(
		t,
		broker.StoreAccessToken(context.Background(), SpotifyProvider, userB, "fresh", &future),
	)

	deleted, err := broker.PruneExpired(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), deleted)

	_, err = broker.ResolveAccessToken(context.Background(), SpotifyProvider, userB)
	assert.NoError(t, err, "unexpired tokens survive the prune")
}
