package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/doodle-alley/go-backend/internal/cfg"
	"github.com/doodle-alley/go-backend/internal/domain"
	"github.com/doodle-alley/go-backend/pkg/clients"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	productKeyPrefix        = "product:"
	productDeleteMarkPrefix = "product_delete:"
)

// ProductRepo реализует репозиторий товаров поверх key-value хранилища.
// Записи лежат под ключами product:<id> в JSON.
type ProductRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewProductRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *ProductRepo {
	return &ProductRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// ListAll возвращает все товары. Порядок не гарантируется.
func (p *ProductRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	values, err := scanValuesByPrefix(ctx, p.client, productKeyPrefix)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make([]domain.Product, 0, len(values))
	for _, data := range values {
		var model productModel
		if err := json.Unmarshal(data, &model); err != nil {
			// Битая запись не должна ронять весь список.
			p.logger.Warnf("skipping malformed product record: %v", err)
			continue
		}

		result = append(result, *model.toDomain())
	}

	return result, nil
}

// GetByID возвращает товар или e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	data, err := p.client.Client.Get(ctx, productKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model productModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return model.toDomain(), nil
}

// Create присваивает товару uuid и штампует createdAt == updatedAt.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	now := time.Now().UTC()

	product.ID = uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := p.persist(ctx, product); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

// Update накладывает патч на существующую запись. ID и createdAt
// принудительно сохраняются, updatedAt обновляется.
func (p *ProductRepo) Update(ctx context.Context, id string, patch *domain.ProductPatch) (*domain.Product, error) {
	product, err := p.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(product)
	product.ID = id
	product.UpdatedAt = time.Now().UTC()

	if err := p.persist(ctx, product); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return product, nil
}

// Delete удаляет запись товара. Отсутствующий id — e.ErrProductNotFound.
func (p *ProductRepo) Delete(ctx context.Context, id string) error {
	n, err := p.client.Client.Del(ctx, productKeyPrefix+id).Result()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}
	if n == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

// MarkForDeletion ставит метку начатого удаления. Метка живёт ограниченное
// время, чтобы прерванная операция не блокировала товар навсегда.
func (p *ProductRepo) MarkForDeletion(ctx context.Context, id string) error {
	if err := p.client.Client.Set(ctx, productDeleteMarkPrefix+id, "1", p.cfg.DeleteMarkTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// ClearDeletionMark снимает метку после успешного удаления записи.
func (p *ProductRepo) ClearDeletionMark(ctx context.Context, id string) error {
	if err := p.client.Client.Del(ctx, productDeleteMarkPrefix+id).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (p *ProductRepo) persist(ctx context.Context, product *domain.Product) error {
	data, err := json.Marshal(toProductModel(product))
	if err != nil {
		return err
	}

	return p.client.Client.Set(ctx, productKeyPrefix+product.ID, data, 0).Err()
}
