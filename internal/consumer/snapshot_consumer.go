package consumer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Shuang777/lending-club/internal/domain/order"
	v1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
	"github.com/Shuang777/lending-club/pkg/config"
	"github.com/Shuang777/lending-club/pkg/logger"
	"github.com/segmentio/kafka-go"
)

// SnapshotBatch is the payload of one scrape published to the snapshot
// topic. Timestamp is when the scrape ran, zero means now.
type SnapshotBatch struct {
	Timestamp float64              `json:"timestamp"`
	Loans     []v1.ListingSnapshot `json:"loans"`
}

// SnapshotConsumer consumes scraped listing snapshot batches and feeds them
// into the order reconciliation usecase.
type SnapshotConsumer struct {
	kafkaReader *kafka.Reader
	logger      logger.Interface

	orderUsecase order.Usecase
	msgChan      chan kafka.Message
}

// NewSnapshotConsumer creates a new SnapshotConsumer.
func NewSnapshotConsumer(config config.SnapshotKafkaConfig, logger logger.Interface, orderUsecase order.Usecase) *SnapshotConsumer {
	kafkaReader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		GroupID:     config.ConsumerGroup,
		MinBytes:    1,
		MaxBytes:    10e6,
		StartOffset: kafka.LastOffset,
	})
	return &SnapshotConsumer{
		kafkaReader:  kafkaReader,
		logger:       logger,
		orderUsecase: orderUsecase,
		msgChan:      make(chan kafka.Message),
	}
}

// Start starts the SnapshotConsumer.
func (c *SnapshotConsumer) Start(ctx context.Context) {
	c.logger.InfoContext(ctx, "starting snapshot consumer", logger.Field{
		Key:   "action",
		Value: "snapshot_consumer_start",
	})

	for {
		select {
		case <-ctx.Done():
			c.logger.InfoContext(ctx, "context done", logger.Field{
				Key:   "action",
				Value: "snapshot_consumer_stop",
			})
			return
		default:
			msg, err := c.kafkaReader.ReadMessage(ctx)
			if err != nil {
				c.logger.ErrorContext(ctx, err, logger.Field{
					Key:   "action",
					Value: "read_message",
				})
				continue
			}

			c.msgChan <- msg
		}
	}
}

// Stop stops the SnapshotConsumer.
func (c *SnapshotConsumer) Stop() error {
	c.logger.InfoContext(context.Background(), "stopping snapshot consumer", logger.Field{
		Key:   "action",
		Value: "snapshot_consumer_stop",
	})
	return c.kafkaReader.Close()
}

// Subscribe subscribes to the SnapshotConsumer.
func (c *SnapshotConsumer) Subscribe(ctx context.Context) {
	c.logger.InfoContext(ctx, "subscribing to snapshot consumer", logger.Field{
		Key:   "action",
		Value: "snapshot_consumer_subscribe",
	})

	for msg := range c.msgChan {
		if err := c.handleBatch(ctx, msg.Value); err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "handle_batch",
			})
		}

		if err := c.kafkaReader.CommitMessages(ctx, msg); err != nil {
			c.logger.ErrorContext(ctx, err, logger.Field{
				Key:   "action",
				Value: "commit_message",
			})
		}
	}
}

func (c *SnapshotConsumer) handleBatch(ctx context.Context, payload []byte) error {
	var batch SnapshotBatch
	if err := json.Unmarshal(payload, &batch); err != nil {
		return err
	}

	now := batch.Timestamp
	if now == 0 {
		now = float64(time.Now().Unix())
	}

	batchCtx := logger.WithBatchID(ctx, logger.NewBatchID())

	result, err := c.orderUsecase.UpdateOrders(batchCtx, batch.Loans, now)
	if err != nil {
		return err
	}

	c.logger.InfoContext(batchCtx, "snapshot batch processed", logger.Field{
		Key:   "updated",
		Value: result.Updated,
	}, logger.Field{
		Key:   "errors",
		Value: result.Errors,
	}, logger.Field{
		Key:   "skipped",
		Value: result.Skipped,
	})

	return nil
}
