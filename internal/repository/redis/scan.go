package redis

import (
	"context"
	"fmt"

	"github.com/doodle-alley/go-backend/pkg/clients"
	"github.com/doodle-alley/go-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

const scanBatchSize = 100

// scanValuesByPrefix собирает значения всех ключей с данным префиксом:
// SCAN по шаблону prefix*, затем MGET пачками. Ключи, исчезнувшие между
// SCAN и MGET, пропускаются.
func scanValuesByPrefix(ctx context.Context, client *clients.RedisClient, prefix string) ([][]byte, error) {
	var (
		cursor uint64
		keys   []string
	)

	for {
		batch, next, err := client.Client.Scan(ctx, cursor, prefix+"*", scanBatchSize).Result()
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keys) == 0 {
		return nil, nil
	}

	values, err := client.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make([][]byte, 0, len(values))
	for i, val := range values {
		data, err := redisValueToBytes(val, keys[i])
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		if data == nil {
			continue // ключ удалён между SCAN и MGET
		}

		result = append(result, data)
	}

	return result, nil
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val interface{}, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
