package order

import (
	"context"

	v1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// OrderRepository is the repository for persisted order records.
type OrderRepository interface {
	FindByTriple(ctx context.Context, triple v1.Triple) (*v1.OrderRecord, error)
	Save(ctx context.Context, record *v1.OrderRecord) error
	List(ctx context.Context, filter Filter) ([]*v1.OrderRecord, error)
	RemoveAll(ctx context.Context) error
	CountFirstSeenIn(ctx context.Context, start, end float64) (int, error)
	CountLastSeenIn(ctx context.Context, start, end float64) (int, error)
}
