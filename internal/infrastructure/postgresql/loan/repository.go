package loan

import (
	"context"

	v1 "github.com/Shuang777/lending-club/internal/domain/loan/v1"
	"github.com/Shuang777/lending-club/pkg/errors"
	"github.com/Shuang777/lending-club/pkg/logger"
	"github.com/Shuang777/lending-club/pkg/postgresql"
	"github.com/jackc/pgx/v5"
)

const loanColumns = `loan_guid, member_id, loan_amnt, funded_amnt, term, int_rate, installment, grade, sub_grade, emp_length, home_ownership, annual_inc, is_inc_v, pymnt_plan, purpose, addr_state, dti, issue_d, earliest_cr_line, last_pymnt_d, revol_bal, revol_util, out_prncp, total_pymnt, last_pymnt_amnt, loan_status`

// Repository is the repository for historical loan data.
type repository struct {
	db     postgresql.PostgreSQLClient
	logger logger.Interface
}

// NewRepository creates a new repository.
func NewRepository(db postgresql.PostgreSQLClient, logger logger.Interface) *repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// ReplaceAll drops every stored loan and bulk-inserts the given set. The
// historical export is a full snapshot, so no reconciliation applies.
func (r *repository) ReplaceAll(ctx context.Context, loans []*v1.HistoricalLoan) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM loans`); err != nil {
		return errors.TracerFromError(err)
	}

	copyCount, err := r.db.CopyFrom(ctx, pgx.Identifier{"loans"}, []string{
		"loan_guid",
		"member_id",
		"loan_amnt",
		"funded_amnt",
		"term",
		"int_rate",
		"installment",
		"grade",
		"sub_grade",
		"emp_length",
		"home_ownership",
		"annual_inc",
		"is_inc_v",
		"pymnt_plan",
		"purpose",
		"addr_state",
		"dti",
		"issue_d",
		"earliest_cr_line",
		"last_pymnt_d",
		"revol_bal",
		"revol_util",
		"out_prncp",
		"total_pymnt",
		"last_pymnt_amnt",
		"loan_status",
	}, pgx.CopyFromSlice(len(loans), func(i int) ([]any, error) {
		loan := loans[i]
		return []any{
			loan.LoanGUID,
			loan.MemberID,
			loan.LoanAmount,
			loan.FundedAmount,
			loan.Term,
			loan.InterestRate,
			loan.Installment,
			loan.Grade,
			loan.SubGrade,
			loan.EmpLength,
			loan.HomeOwnership,
			loan.AnnualIncome,
			loan.VerifiedIncome,
			loan.PaymentPlan,
			loan.Purpose,
			loan.State,
			loan.DTI,
			loan.IssueDate,
			loan.EarliestCreditLine,
			loan.LastPaymentDate,
			loan.RevolvingBalance,
			loan.RevolvingUtilization,
			loan.OutstandingPrincipal,
			loan.TotalPayment,
			loan.LastPaymentAmount,
			loan.LoanStatus,
		}, nil
	}))
	if err != nil {
		return errors.TracerFromError(err)
	}

	r.logger.Info("Replaced historical loans", logger.Field{
		Key:   "copyCount",
		Value: copyCount,
	})

	return nil
}

// GetByID fetches one historical loan by its numeric id. Returns nil
// without error when the loan is not stored.
func (r *repository) GetByID(ctx context.Context, loanGUID int64) (*v1.HistoricalLoan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_guid = $1`

	loan := &v1.HistoricalLoan{}
	err := r.db.QueryRow(ctx, query, loanGUID).Scan(
		&loan.LoanGUID,
		&loan.MemberID,
		&loan.LoanAmount,
		&loan.FundedAmount,
		&loan.Term,
		&loan.InterestRate,
		&loan.Installment,
		&loan.Grade,
		&loan.SubGrade,
		&loan.EmpLength,
		&loan.HomeOwnership,
		&loan.AnnualIncome,
		&loan.VerifiedIncome,
		&loan.PaymentPlan,
		&loan.Purpose,
		&loan.State,
		&loan.DTI,
		&loan.IssueDate,
		&loan.EarliestCreditLine,
		&loan.LastPaymentDate,
		&loan.RevolvingBalance,
		&loan.RevolvingUtilization,
		&loan.OutstandingPrincipal,
		&loan.TotalPayment,
		&loan.LastPaymentAmount,
		&loan.LoanStatus,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	return loan, nil
}

// Count returns the number of stored historical loans.
func (r *repository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM loans`).Scan(&count); err != nil {
		return 0, errors.TracerFromError(err)
	}

	return count, nil
}
