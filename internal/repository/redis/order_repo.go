package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/doodle-alley/go-backend/internal/domain"
	"github.com/doodle-alley/go-backend/pkg/clients"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/doodle-alley/go-backend/pkg/logger"
	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
)

const orderKeyPrefix = "order:"

// OrderRepo хранит заказы под ключами order:<id>. Только создание
// и листинг: заказы никогда не обновляются и не удаляются.
type OrderRepo struct {
	client *clients.RedisClient
	logger logger.Logger
}

func NewOrderRepo(client *clients.RedisClient, logger logger.Logger) *OrderRepo {
	return &OrderRepo{
		client: client,
		logger: logger,
	}
}

// Create присваивает заказу uuid, штампует createdAt и сохраняет запись как есть.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	order.ID = uuid.NewString()
	order.CreatedAt = time.Now().UTC()

	data, err := json.Marshal(toOrderModel(order))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := o.client.Client.Set(ctx, orderKeyPrefix+order.ID, data, 0).Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return order, nil
}

// ListAll возвращает все заказы. Порядок не гарантируется,
// сортировка — обязанность вызывающего слоя.
func (o *OrderRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	values, err := scanValuesByPrefix(ctx, o.client, orderKeyPrefix)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make([]domain.Order, 0, len(values))
	for _, data := range values {
		var model orderModel
		if err := json.Unmarshal(data, &model); err != nil {
			o.logger.Warnf("skipping malformed order record: %v", err)
			continue
		}

		result = append(result, *model.toDomain())
	}

	return result, nil
}
