package application

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devsenior/property-service/internal/domain/entity"
)

func newCachedPropertyService(t *testing.T, repo *memPropertyRepo) (*PropertyService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewPropertyService(repo, rdb, testLogger(), nil, "", nil, nil, ""), mr
}

func TestPropertyService_FindByCityServedFromCache(t *testing.T) {
	repo := newMemPropertyRepo()
	svc, mr := newCachedPropertyService(t, repo)
	ctx := context.Background()

	created, err := svc.Save(ctx, madridInput())
	require.NoError(t, err)

	list, err := svc.FindByCity(ctx, "Madrid")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.True(t, mr.Exists("properties:city:Madrid"))

	// Drop the row behind the service's back: the next read must come
	// from the still-live cache entry.
	delete(repo.items, created.ID)

	list, err = svc.FindByCity(ctx, "Madrid")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPropertyService_DeleteInvalidatesCityCache(t *testing.T) {
	svc, mr := newCachedPropertyService(t, newMemPropertyRepo())
	ctx := context.Background()

	created, err := svc.Save(ctx, madridInput())
	require.NoError(t, err)

	list, err := svc.FindByCity(ctx, "Madrid")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, mr.Exists("properties:city:Madrid"))

	require.NoError(t, svc.DeleteByID(ctx, created.ID))

	// Both the full list and the deleted listing's city entry must be gone;
	// a read right after the delete never serves the removed record.
	assert.False(t, mr.Exists("properties:all"))
	assert.False(t, mr.Exists("properties:city:Madrid"))

	list, err = svc.FindByCity(ctx, "Madrid")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPropertyService_UpdateInvalidatesCityCache(t *testing.T) {
	svc, mr := newCachedPropertyService(t, newMemPropertyRepo())
	ctx := context.Background()

	created, err := svc.Save(ctx, madridInput())
	require.NoError(t, err)

	_, err = svc.FindByCity(ctx, "Madrid")
	require.NoError(t, err)
	require.True(t, mr.Exists("properties:city:Madrid"))

	upd := UpdatePropertyInput{Address: "Gran Via 45", City: "Madrid", Price: 260000.0, Bedrooms: 4, Bathrooms: 3}
	_, err = svc.Update(ctx, created.ID, upd)
	require.NoError(t, err)

	assert.False(t, mr.Exists("properties:city:Madrid"))

	list, err := svc.FindByCity(ctx, "Madrid")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Gran Via 45", list[0].Address)
}

func TestPropertyService_FindAllCacheRoundTrip(t *testing.T) {
	repo := newMemPropertyRepo()
	svc, mr := newCachedPropertyService(t, repo)
	ctx := context.Background()

	_, err := svc.Save(ctx, madridInput())
	require.NoError(t, err)

	list, err := svc.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.True(t, mr.Exists("properties:all"))

	// Cached read survives a direct store wipe.
	repo.items = map[int64]entity.Property{}

	list, err = svc.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	// The next save drops the list cache.
	_, err = svc.Save(ctx, madridInput())
	require.NoError(t, err)
	assert.False(t, mr.Exists("properties:all"))
}
