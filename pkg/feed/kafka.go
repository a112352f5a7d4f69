package feed

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"forestwatch.app/sos-dashboard-service/pkg/common"
)

type KafkaConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

// StartKafka consumes row-change envelopes from the configured topic and
// forwards them, in delivery order, onto out. Read errors are logged and the
// reader keeps going; reconnection is the reader's own concern.
func StartKafka(ctx context.Context, cfg KafkaConfig, out chan<- Event) {
	logger := common.GetLoggerWith(common.LoggerNameFeed)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1e3,
		MaxBytes: 10e6,
	})

	logger.Info("kafka feed source started",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.Topic),
		zap.String("group_id", cfg.GroupID))

	go func() {
		defer reader.Close()
		for {
			m, err := reader.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Warn("kafka read error", zap.Error(err))
				continue
			}
			ev, err := Decode(m.Value)
			if err != nil {
				logger.Warn("kafka envelope decode error", zap.Error(err))
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(cfg KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(cfg.Brokers...),
			Topic:    cfg.Topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev Event) error {
	data, err := Encode(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.AlertID()),
		Value: data,
	})
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
