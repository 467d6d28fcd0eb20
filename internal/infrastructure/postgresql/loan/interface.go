package loan

import (
	"context"

	v1 "github.com/Shuang777/lending-club/internal/domain/loan/v1"
)

//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock

// LoanRepository is the repository for historical loan data.
type LoanRepository interface {
	ReplaceAll(ctx context.Context, loans []*v1.HistoricalLoan) error
	GetByID(ctx context.Context, loanGUID int64) (*v1.HistoricalLoan, error)
	Count(ctx context.Context) (int, error)
}
