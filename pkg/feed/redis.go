package feed

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"forestwatch.app/sos-dashboard-service/pkg/common"
)

type RedisConfig struct {
	Addr    string
	Channel string
}

// StartRedis subscribes to the configured pub/sub channel and forwards
// decoded row-change events onto out in delivery order.
func StartRedis(ctx context.Context, client *redis.Client, cfg RedisConfig, out chan<- Event) {
	logger := common.GetLoggerWith(common.LoggerNameFeed)

	pubsub := client.Subscribe(ctx, cfg.Channel)

	logger.Info("redis feed source started",
		zap.String("addr", cfg.Addr),
		zap.String("channel", cfg.Channel))

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-ch:
				if !ok {
					return
				}
				ev, err := Decode([]byte(m.Payload))
				if err != nil {
					logger.Warn("redis envelope decode error", zap.Error(err))
					continue
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}

type RedisPublisher struct {
	client  *redis.Client
	channel string
}

func NewRedisPublisher(client *redis.Client, cfg RedisConfig) *RedisPublisher {
	return &RedisPublisher{client: client, channel: cfg.Channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, ev Event) error {
	data, err := Encode(ev)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, p.channel, data).Err()
}
