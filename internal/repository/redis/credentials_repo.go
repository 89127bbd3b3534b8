package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/doodle-alley/go-backend/internal/domain"
	"github.com/doodle-alley/go-backend/pkg/clients"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const credentialsKey = "admin:credentials"

// CredentialsRepo хранит единственную запись учётных данных администратора.
type CredentialsRepo struct {
	client *clients.RedisClient
}

func NewCredentialsRepo(client *clients.RedisClient) *CredentialsRepo {
	return &CredentialsRepo{client: client}
}

// Get возвращает запись admin:credentials или nil, если её ещё нет.
func (c *CredentialsRepo) Get(ctx context.Context) (*domain.AdminCredentials, error) {
	data, err := c.client.Client.Get(ctx, credentialsKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model credentialsModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return domain.NewAdminCredentials(model.Username, model.Password), nil
}

// Seed атомарно (SETNX) записывает пару по умолчанию, если записи ещё нет.
// Возвращает true, если запись создана этим вызовом.
func (c *CredentialsRepo) Seed(ctx context.Context, creds *domain.AdminCredentials) (bool, error) {
	data, err := json.Marshal(credentialsModel{
		Username: creds.Username,
		Password: creds.Password,
	})
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	created, err := c.client.Client.SetNX(ctx, credentialsKey, data, 0).Result()
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return created, nil
}
