package loan

import (
	"context"
	"io"

	v1 "github.com/Shuang777/lending-club/internal/domain/loan/v1"
)

// Usecase is the interface for the historical loan usecase.
//
//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock
type Usecase interface {
	ReplaceLoans(ctx context.Context, statsFile io.Reader) (int, error)
	GetLoan(ctx context.Context, loanGUID int64) (*v1.HistoricalLoan, error)
}
