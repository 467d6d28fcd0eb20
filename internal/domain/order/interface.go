package order

import (
	"context"

	v1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
)

// Usecase is the interface for the order usecase.
//
//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock
type Usecase interface {
	UpdateOrders(ctx context.Context, snapshots []v1.ListingSnapshot, now float64) (v1.BatchResult, error)
	GetMarketVolumes(ctx context.Context, start float64, interval float64, buckets int) ([]v1.VolumeBucket, error)
	PurgeOrders(ctx context.Context) error
}
