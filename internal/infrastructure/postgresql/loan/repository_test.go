package loan

import (
	"context"
	"errors"
	"testing"

	v1 "github.com/Shuang777/lending-club/internal/domain/loan/v1"
	"github.com/Shuang777/lending-club/pkg/logger"
	mockLogger "github.com/Shuang777/lending-club/pkg/logger/mock"
	mockPg "github.com/Shuang777/lending-club/pkg/postgresql/mock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testLoans() []*v1.HistoricalLoan {
	return []*v1.HistoricalLoan{
		{
			LoanGUID:     100,
			MemberID:     200,
			LoanAmount:   5000,
			Term:         36,
			InterestRate: 13.5,
			Grade:        "C",
			LoanStatus:   "current",
		},
		{
			LoanGUID:     101,
			MemberID:     201,
			LoanAmount:   2500,
			Term:         60,
			InterestRate: 18.2,
			Grade:        "E",
			LoanStatus:   "charged off",
		},
	}
}

func TestLoan_ReplaceAll(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface) {
				mockpg.EXPECT().
					Exec(ctx, `DELETE FROM loans`).
					Return(pgconn.CommandTag{}, nil)

				mockpg.EXPECT().
					CopyFrom(ctx, pgx.Identifier{"loans"}, gomock.Any(), gomock.Any()).
					Return(int64(2), nil)

				mockLogger.EXPECT().
					Info("Replaced historical loans", logger.Field{
						Key:   "copyCount",
						Value: int64(2),
					})
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "delete fails",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface) {
				mockpg.EXPECT().
					Exec(ctx, `DELETE FROM loans`).
					Return(pgconn.CommandTag{}, errors.New("error"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
		{
			name: "copy fails",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface) {
				mockpg.EXPECT().
					Exec(ctx, `DELETE FROM loans`).
					Return(pgconn.CommandTag{}, nil)

				mockpg.EXPECT().
					CopyFrom(ctx, pgx.Identifier{"loans"}, gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("error"))
			},
			assertFn: func(t *testing.T, err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, log)

			err := repo.ReplaceAll(ctx, testLoans())
			tc.assertFn(t, err)
		})
	}
}

func TestLoan_GetByID(t *testing.T) {
	ctx := context.Background()
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_guid = $1`

	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockRow *mockPg.MockRowInterface)
		assertFn func(t *testing.T, loan *v1.HistoricalLoan, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRow *mockPg.MockRowInterface) {
				mockpg.EXPECT().
					QueryRow(ctx, query, int64(100)).
					Return(mockRow)

				mockRow.EXPECT().
					Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*int64) = 100
					*dest[4].(*int) = 36
					*dest[25].(*string) = "current"
					return nil
				})
			},
			assertFn: func(t *testing.T, loan *v1.HistoricalLoan, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(100), loan.LoanGUID)
				assert.Equal(t, 36, loan.Term)
				assert.Equal(t, "current", loan.LoanStatus)
			},
		},
		{
			name: "no rows returns nil",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRow *mockPg.MockRowInterface) {
				mockpg.EXPECT().
					QueryRow(ctx, query, int64(100)).
					Return(mockRow)

				mockRow.EXPECT().
					Scan(gomock.Any()).Return(pgx.ErrNoRows)
			},
			assertFn: func(t *testing.T, loan *v1.HistoricalLoan, err error) {
				assert.NoError(t, err)
				assert.Nil(t, loan)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			row := mockPg.NewMockRowInterface(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, row)

			loan, err := repo.GetByID(ctx, 100)
			tc.assertFn(t, loan, err)
		})
	}
}
