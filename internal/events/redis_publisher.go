package events

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// redisStreamer es el subconjunto del cliente de redis que usa el publisher;
// permite mockearlo en tests sin un servidor.
type redisStreamer interface {
	XAdd(ctx context.Context, args *redis.XAddArgs) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

// RedisPublisher publica los resultados de matching en un stream de redis. Los
// comandos XADD se envian de inmediato, asi que Flush se limita a verificar
// conectividad para cumplir el contrato de un flush por corrida.
type RedisPublisher struct {
	client redisStreamer
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, topic string, event MatchingCompleted) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: topic,
		Values: map[string]interface{}{
			"event_id": uuid.NewString(),
			"payload":  payload,
		},
	}).Err()
}

func (p *RedisPublisher) Flush(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
