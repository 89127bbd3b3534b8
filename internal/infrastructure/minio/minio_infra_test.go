package minio

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/doodle-alley/go-backend/internal/cfg"
	"github.com/doodle-alley/go-backend/internal/domain"
	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeImageRepo struct {
	mu        sync.Mutex
	uploaded  []string
	deleted   []string
	uploadErr error
	deleteErr error
}

func (f *fakeImageRepo) Upload(_ context.Context, image *domain.Image) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	f.uploaded = append(f.uploaded, image.ObjectKey)
	return image.ObjectKey, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, key)
	return nil
}

func testMinIOCfg() *cfg.MinIOCfg {
	return &cfg.MinIOCfg{
		PublicURL:         "http://localhost:9000",
		BucketName:        "product-images",
		UploadImagesLimit: 4,
	}
}

func newTestInfra(t *testing.T, repo *fakeImageRepo) *MinioInfrastructure {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	return NewMinioInfrastructure(repo, testMinIOCfg(), logger.NewSlogLogger(), ctx)
}

func jpeg(name string) usecase.ProductImage {
	return *usecase.NewProductImage([]byte{0xFF, 0xD8}, "image/jpeg", 2, name)
}

func TestUploadImagesBuildsPublicURLs(t *testing.T) {
	repo := &fakeImageRepo{}
	infra := newTestInfra(t, repo)

	res, err := infra.UploadImages(context.Background(), usecase.NewUploadImagesReq(
		"Crochet Bunny",
		[]usecase.ProductImage{jpeg("front.jpg"), jpeg("back.jpg")},
	))
	require.NoError(t, err)
	require.Len(t, res.ImageURLs, 2)

	for _, url := range res.ImageURLs {
		assert.True(t, strings.HasPrefix(url, "http://localhost:9000/product-images/Crochet_Bunny/"), url)
		assert.True(t, strings.HasSuffix(url, ".jpg"), url)
	}
	assert.Len(t, repo.uploaded, 2)
}

func TestUploadImagesUnsupportedMIME(t *testing.T) {
	repo := &fakeImageRepo{}
	infra := newTestInfra(t, repo)

	bad := *usecase.NewProductImage([]byte("GIF89a"), "image/gif", 6, "anim.gif")
	_, err := infra.UploadImages(context.Background(), usecase.NewUploadImagesReq("Bunny", []usecase.ProductImage{bad}))

	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
}

func TestUploadImagesCleansUpOnFailure(t *testing.T) {
	repo := &fakeImageRepo{uploadErr: errors.New("bucket unavailable")}
	infra := newTestInfra(t, repo)

	_, err := infra.UploadImages(context.Background(), usecase.NewUploadImagesReq(
		"Bunny", []usecase.ProductImage{jpeg("front.jpg")},
	))
	require.Error(t, err)

	require.NoError(t, infra.WaitForCleanup(context.Background()))
	assert.Empty(t, repo.uploaded)
}

func TestRemoveImagesSkipsForeignURLs(t *testing.T) {
	repo := &fakeImageRepo{}
	infra := newTestInfra(t, repo)

	err := infra.RemoveImages(context.Background(), []string{
		"http://localhost:9000/product-images/bunny/front-abc.jpg",
		"https://cdn.example.com/hosted-elsewhere.jpg",
		"http://localhost:9000/product-images/bunny/back-def.jpg",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"bunny/front-abc.jpg", "bunny/back-def.jpg"}, repo.deleted)
}

func TestRemoveImagesStopsOnFirstError(t *testing.T) {
	repo := &fakeImageRepo{deleteErr: errors.New("access denied")}
	infra := newTestInfra(t, repo)

	err := infra.RemoveImages(context.Background(), []string{
		"http://localhost:9000/product-images/bunny/front-abc.jpg",
	})
	assert.Error(t, err)
	assert.Empty(t, repo.deleted)
}

func TestCleanupImagesDeletesKeys(t *testing.T) {
	repo := &fakeImageRepo{}
	infra := newTestInfra(t, repo)

	infra.CleanupImages([]string{"bunny/front-abc.jpg", "bunny/back-def.jpg"})

	require.NoError(t, infra.WaitForCleanup(context.Background()))
	assert.ElementsMatch(t, []string{"bunny/front-abc.jpg", "bunny/back-def.jpg"}, repo.deleted)
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Crochet_Bunny", sanitizeName("Crochet Bunny"))
	assert.Equal(t, "a-b", sanitizeName("a/b"))
	assert.Equal(t, "image", sanitizeName("   "))
}
