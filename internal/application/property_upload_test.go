package application

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/devsenior/property-service/internal/domain/repository"
)

// newFakeGCS points a storage client at a stub server that accepts any
// upload, so the image flow can run without real credentials or buckets.
func newFakeGCS(t *testing.T) *storage.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"name":"obj","bucket":"listings"}`)
	}))
	t.Cleanup(srv.Close)

	client, err := storage.NewClient(context.Background(),
		option.WithEndpoint(srv.URL), option.WithoutAuthentication())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newUploadService(t *testing.T, repo *memPropertyRepo) *PropertyService {
	t.Helper()
	return NewPropertyService(repo, nil, testLogger(), nil, "", nil, newFakeGCS(t), "listings")
}

func TestPropertyService_UploadImage(t *testing.T) {
	repo := newMemPropertyRepo()
	svc := newUploadService(t, repo)
	ctx := context.Background()

	created, err := svc.Save(ctx, madridInput())
	require.NoError(t, err)

	dto, err := svc.UploadImage(ctx, created.ID, bytes.NewReader([]byte("jpeg bytes")), "house.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Contains(t, dto.ImageURL, "/listings/properties/1/")
	assert.Contains(t, dto.ImageURL, ".jpg")

	stored := repo.items[created.ID]
	assert.Equal(t, dto.ImageURL, stored.ImageURL)
}

func TestPropertyService_UploadImage_ListingDeletedMidUpload(t *testing.T) {
	repo := newMemPropertyRepo()
	svc := newUploadService(t, repo)
	ctx := context.Background()

	created, err := svc.Save(ctx, madridInput())
	require.NoError(t, err)

	// The row exists for the pre-upload read but the write-back loses it,
	// as when a delete lands while the upload is in flight.
	repo.failUpdateWith = repository.ErrNotFound

	_, err = svc.UploadImage(ctx, created.ID, bytes.NewReader([]byte("jpeg bytes")), "house.jpg", "image/jpeg")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}
