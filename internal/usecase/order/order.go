package order

import (
	"context"
	"fmt"

	"github.com/Shuang777/lending-club/internal/alert"
	v1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
	"github.com/Shuang777/lending-club/internal/infrastructure/postgresql/order"
	"github.com/Shuang777/lending-club/pkg/config"
	"github.com/Shuang777/lending-club/pkg/errors"
	"github.com/Shuang777/lending-club/pkg/logger"
)

type usecase struct {
	orderRepository order.OrderRepository
	alertSender     alert.Sender
	cfg             config.BatchConfig
	logger          logger.Interface
}

// NewUsecase creates a new order usecase.
func NewUsecase(orderRepository order.OrderRepository, alertSender alert.Sender, cfg config.BatchConfig, logger logger.Interface) *usecase {
	return &usecase{
		orderRepository: orderRepository,
		alertSender:     alertSender,
		cfg:             cfg,
		logger:          logger,
	}
}

// UpdateOrders reconciles a scrape batch against the stored order records.
// Malformed snapshots and constant field conflicts are counted and skipped
// without touching the store, a store failure aborts the batch. When the
// number of skipped records exceeds the configured threshold an alert is
// raised after the batch completes.
func (u *usecase) UpdateOrders(ctx context.Context, snapshots []v1.ListingSnapshot, now float64) (v1.BatchResult, error) {
	result := v1.BatchResult{}

	for _, snapshot := range snapshots {
		existing, err := u.orderRepository.FindByTriple(ctx, snapshot.Key())
		if err != nil {
			return result, err
		}

		record, err := v1.Reconcile(snapshot, existing, now)
		if err != nil {
			result.Errors++
			result.Skipped++
			u.logSkipped(ctx, snapshot, err)
			continue
		}

		if err := u.orderRepository.Save(ctx, record); err != nil {
			return result, err
		}
		result.Updated++
	}

	if result.Errors > u.cfg.ErrorThreshold {
		u.raiseThresholdAlert(ctx, result, len(snapshots))
	}

	return result, nil
}

func (u *usecase) logSkipped(ctx context.Context, snapshot v1.ListingSnapshot, err error) {
	code := errors.OrderMalformedSnapshot
	if _, ok := err.(*v1.ConstantFieldError); ok {
		code = errors.OrderConstantFieldChanged
	}

	u.logger.WarnContext(ctx, "Skipping listing snapshot", logger.Field{
		Key:   "order",
		Value: snapshot.Key().String(),
	}, logger.Field{
		Key:   "code",
		Value: string(code),
	}, logger.Field{
		Key:   "reason",
		Value: err.Error(),
	})
}

func (u *usecase) raiseThresholdAlert(ctx context.Context, result v1.BatchResult, total int) {
	err := errors.TracerFromError(errors.NewErrorDetails(
		fmt.Sprintf("batch accumulated %d errors, threshold is %d", result.Errors, u.cfg.ErrorThreshold),
		string(errors.OrderBatchThresholdExceeded),
		"errors",
	))
	u.logger.ErrorContext(ctx, err, logger.Field{
		Key:   "errors",
		Value: result.Errors,
	}, logger.Field{
		Key:   "threshold",
		Value: u.cfg.ErrorThreshold,
	})

	subject := "Order batch error threshold exceeded"
	body := fmt.Sprintf(
		"Batch of %d snapshots finished with %d errors (threshold %d).\nUpdated: %d\nSkipped: %d\nBatch: %s\n",
		total, result.Errors, u.cfg.ErrorThreshold, result.Updated, result.Skipped, logger.GetBatchID(ctx),
	)
	if sendErr := u.alertSender.Send(ctx, subject, body); sendErr != nil {
		u.logger.ErrorContext(ctx, sendErr, logger.Field{
			Key:   "subject",
			Value: subject,
		})
	}
}

// PurgeOrders drops every stored order record.
func (u *usecase) PurgeOrders(ctx context.Context) error {
	if err := u.orderRepository.RemoveAll(ctx); err != nil {
		return err
	}

	u.logger.WarnContext(ctx, "Purged all order records")
	return nil
}

// GetMarketVolumes counts appearances and departures per interval, starting
// at start, over the requested number of consecutive buckets.
func (u *usecase) GetMarketVolumes(ctx context.Context, start float64, interval float64, buckets int) ([]v1.VolumeBucket, error) {
	volumes := make([]v1.VolumeBucket, 0, buckets)

	for i := 0; i < buckets; i++ {
		bucketStart := start + float64(i)*interval
		bucketEnd := bucketStart + interval

		appeared, err := u.orderRepository.CountFirstSeenIn(ctx, bucketStart, bucketEnd)
		if err != nil {
			return nil, err
		}

		departed, err := u.orderRepository.CountLastSeenIn(ctx, bucketStart, bucketEnd)
		if err != nil {
			return nil, err
		}

		volumes = append(volumes, v1.VolumeBucket{
			Start:    bucketStart,
			End:      bucketEnd,
			Appeared: appeared,
			Departed: departed,
		})
	}

	return volumes, nil
}
