package loan

import (
	"context"
	"io"

	v1 "github.com/Shuang777/lending-club/internal/domain/loan/v1"
	"github.com/Shuang777/lending-club/internal/infrastructure/postgresql/loan"
	"github.com/Shuang777/lending-club/pkg/logger"
)

type usecase struct {
	loanRepository loan.LoanRepository
	logger         logger.Interface
}

// NewUsecase creates a new loan usecase.
func NewUsecase(loanRepository loan.LoanRepository, logger logger.Interface) *usecase {
	return &usecase{
		loanRepository: loanRepository,
		logger:         logger,
	}
}

// ReplaceLoans parses a historical loan stats export and replaces the stored
// loan set with its contents. Returns the number of loans stored.
func (u *usecase) ReplaceLoans(ctx context.Context, statsFile io.Reader) (int, error) {
	loans, err := v1.ParseLoanStats(statsFile, u.logger)
	if err != nil {
		return 0, err
	}

	if err := u.loanRepository.ReplaceAll(ctx, loans); err != nil {
		return 0, err
	}

	stored, err := u.loanRepository.Count(ctx)
	if err != nil {
		return 0, err
	}

	u.logger.InfoContext(ctx, "Historical loans replaced", logger.Field{
		Key:   "parsed",
		Value: len(loans),
	}, logger.Field{
		Key:   "stored",
		Value: stored,
	})

	return stored, nil
}

// GetLoan fetches one historical loan by its numeric id.
func (u *usecase) GetLoan(ctx context.Context, loanGUID int64) (*v1.HistoricalLoan, error) {
	return u.loanRepository.GetByID(ctx, loanGUID)
}
