package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/doodle-alley/go-backend/internal/cfg"
	"github.com/doodle-alley/go-backend/internal/domain"
	"github.com/doodle-alley/go-backend/pkg/clients"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/logger"
	r "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRedisClient(t *testing.T) (*clients.RedisClient, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &clients.RedisClient{
		Client: r.NewClient(&r.Options{Addr: mr.Addr()}),
	}
	t.Cleanup(func() { _ = client.Client.Close() })

	return client, mr
}

func testProductRepo(t *testing.T) (*ProductRepo, *miniredis.Miniredis) {
	t.Helper()

	client, mr := testRedisClient(t)
	repoCfg := &cfg.RedisCfg{DeleteMarkTTL: 5 * time.Minute}

	return NewProductRepo(client, repoCfg, logger.NewSlogLogger()), mr
}

func TestProductCreateAndGet(t *testing.T) {
	repo, _ := testProductRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.NewProduct(
		"Crochet Bunny", "Soft amigurumi bunny", "toys", 24.99,
		[]string{"http://minio/product-images/bunny.jpg"}, true,
	))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Crochet Bunny", got.Name)
	assert.Equal(t, 24.99, got.Price)
	assert.Equal(t, []string{"http://minio/product-images/bunny.jpg"}, got.Images)
	assert.True(t, got.IsActive)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestProductGetMissing(t *testing.T) {
	repo, _ := testProductRepo(t)

	_, err := repo.GetByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestProductUpdatePreservesIdentity(t *testing.T) {
	repo, _ := testProductRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.NewProduct("Bunny", "", "toys", 10, nil, true))
	require.NoError(t, err)

	newPrice := 15.0
	updated, err := repo.Update(ctx, created.ID, &domain.ProductPatch{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Bunny", updated.Name)
	assert.Equal(t, 15.0, updated.Price)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestProductUpdateMissing(t *testing.T) {
	repo, _ := testProductRepo(t)

	name := "Bunny"
	_, err := repo.Update(context.Background(), "ghost", &domain.ProductPatch{Name: &name})
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestProductDelete(t *testing.T) {
	repo, _ := testProductRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, domain.NewProduct("Bunny", "", "toys", 10, nil, true))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), e.ErrProductNotFound)
}

func TestProductListAll(t *testing.T) {
	repo, _ := testProductRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Bunny", "Bear", "Scarf"} {
		_, err := repo.Create(ctx, domain.NewProduct(name, "", "toys", 10, nil, true))
		require.NoError(t, err)
	}

	products, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestProductListSkipsMalformed(t *testing.T) {
	repo, mr := testProductRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, domain.NewProduct("Bunny", "", "toys", 10, nil, true))
	require.NoError(t, err)

	require.NoError(t, mr.Set("product:broken", "{not json"))

	products, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Bunny", products[0].Name)
}

func TestDeletionMarkExpires(t *testing.T) {
	repo, mr := testProductRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.MarkForDeletion(ctx, "p1"))
	assert.True(t, mr.Exists("product_delete:p1"))

	mr.FastForward(6 * time.Minute)
	assert.False(t, mr.Exists("product_delete:p1"))
}

func TestClearDeletionMark(t *testing.T) {
	repo, mr := testProductRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.MarkForDeletion(ctx, "p1"))
	require.NoError(t, repo.ClearDeletionMark(ctx, "p1"))

	assert.False(t, mr.Exists("product_delete:p1"))
}
