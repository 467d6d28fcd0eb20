package order

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	v1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
	mockLogger "github.com/Shuang777/lending-club/pkg/logger/mock"
	mockPg "github.com/Shuang777/lending-club/pkg/postgresql/mock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testRecord() *v1.OrderRecord {
	return &v1.OrderRecord{
		ListingSnapshot: v1.ListingSnapshot{
			LoanGUID:             596513,
			NoteID:               2703872,
			OrderID:              11430858,
			AskingPrice:          10,
			MarkupDiscount:       -2.5,
			YTM:                  8.3,
			OutstandingPrincipal: 22.15,
			AccruedInterest:      0.11,
			DaysSincePayment:     12,
			RemainingPayments:    30,
			CreditScoreTrend:     "UP",
			LoanGrade:            "C3",
			LoanRate:             13.5,
			LoanClass:            "personal",
		},
		FirstSeen:    100,
		LastSeen:     200,
		LastUpdated:  200,
		PriceHistory: []v1.PricePoint{{Price: 10, Timestamp: 100}, {Price: 10, Timestamp: 200}},
	}
}

func TestOrder_FindByTriple(t *testing.T) {
	ctx := context.Background()
	query := `SELECT ` + orderColumns + ` FROM orders WHERE loan_guid = $1 AND note_id = $2 AND order_id = $3`
	triple := v1.Triple{LoanGUID: 596513, NoteID: 2703872, OrderID: 11430858}

	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockRow *mockPg.MockRowInterface)
		assertFn func(t *testing.T, record *v1.OrderRecord, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRow *mockPg.MockRowInterface) {
				mockpg.EXPECT().
					QueryRow(ctx, query, triple.LoanGUID, triple.NoteID, triple.OrderID).
					Return(mockRow)

				mockRow.EXPECT().
					Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					expected := testRecord()
					*dest[0].(*int64) = expected.LoanGUID
					*dest[1].(*int64) = expected.NoteID
					*dest[2].(*int64) = expected.OrderID
					*dest[3].(*float64) = expected.AskingPrice
					*dest[4].(*float64) = expected.MarkupDiscount
					*dest[5].(*float64) = expected.YTM
					*dest[6].(*float64) = expected.OutstandingPrincipal
					*dest[7].(*float64) = expected.AccruedInterest
					*dest[8].(*int) = expected.DaysSincePayment
					*dest[9].(*int) = expected.RemainingPayments
					*dest[10].(*string) = expected.CreditScoreTrend
					*dest[11].(*string) = expected.LoanGrade
					*dest[12].(*float64) = expected.LoanRate
					*dest[13].(*string) = expected.LoanClass
					*dest[14].(*float64) = expected.FirstSeen
					*dest[15].(*float64) = expected.LastSeen
					*dest[16].(*float64) = expected.LastUpdated
					*dest[17].(*[]byte) = []byte(`[[10,100],[10,200]]`)
					return nil
				})
			},
			assertFn: func(t *testing.T, record *v1.OrderRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, testRecord(), record)
			},
		},
		{
			name: "no rows returns nil",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRow *mockPg.MockRowInterface) {
				mockpg.EXPECT().
					QueryRow(ctx, query, triple.LoanGUID, triple.NoteID, triple.OrderID).
					Return(mockRow)

				mockRow.EXPECT().
					Scan(gomock.Any()).Return(pgx.ErrNoRows)
			},
			assertFn: func(t *testing.T, record *v1.OrderRecord, err error) {
				assert.NoError(t, err)
				assert.Nil(t, record)
			},
		},
		{
			name: "query fails",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRow *mockPg.MockRowInterface) {
				mockpg.EXPECT().
					QueryRow(ctx, query, triple.LoanGUID, triple.NoteID, triple.OrderID).
					Return(mockRow)

				mockRow.EXPECT().
					Scan(gomock.Any()).Return(errors.New("error"))
			},
			assertFn: func(t *testing.T, record *v1.OrderRecord, err error) {
				assert.Error(t, err)
				assert.Nil(t, record)
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

			record, err := repo.FindByTriple(ctx, triple)
			tc.assertFn(t, record, err)
		})
	}
}

func TestOrder_Save(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, record *v1.OrderRecord)
		assertFn func(t *testing.T, err error)
	}{
		{
			name: "success",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, record *v1.OrderRecord) {
				history, _ := json.Marshal(record.PriceHistory)

				mockpg.EXPECT().
					Exec(ctx, gomock.Any(),
						record.LoanGUID,
						record.NoteID,
						record.OrderID,
						record.AskingPrice,
						record.MarkupDiscount,
						record.YTM,
						record.OutstandingPrincipal,
						record.AccruedInterest,
						record.DaysSincePayment,
						record.RemainingPayments,
						record.CreditScoreTrend,
						record.LoanGrade,
						record.LoanRate,
						record.LoanClass,
						record.FirstSeen,
						record.LastSeen,
						record.LastUpdated,
						history,
					).Return(pgconn.CommandTag{}, nil)

				mockLogger.EXPECT().
					Debug("Saved order record", gomock.Any())
			},
			assertFn: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "error",
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockLogger *mockLogger.MockInterface, record *v1.OrderRecord) {
				mockpg.EXPECT().
					Exec(ctx, gomock.Any(),
						gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
						gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
						gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
						gomock.Any(), gomock.Any(), gomock.Any(),
					).Return(pgconn.CommandTag{}, errors.New("error"))
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

			record := testRecord()
			tc.mockFn(pg, log, record)

			err := repo.Save(ctx, record)
			tc.assertFn(t, err)
		})
	}
}

func TestOrder_List(t *testing.T) {
	ctx := context.Background()
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`

	testCases := []struct {
		name     string
		filter   Filter
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface, tc Filter)
		assertFn func(t *testing.T, records []*v1.OrderRecord, err error)
	}{
		{
			name: "success with filters",
			filter: Filter{
				LoanGUID:  596513,
				LoanGrade: "C3",
				Limit:     20,
				Offset:    10,
			},
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface, tc Filter) {
				mockpg.EXPECT().
					Query(
						ctx,
						query+" AND loan_guid = $1 AND loan_grade = $2 ORDER BY first_seen ASC LIMIT $3 OFFSET $4",
						tc.LoanGUID,
						tc.LoanGrade,
						tc.Limit,
						tc.Offset,
					).Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().
					Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					expected := testRecord()
					*dest[0].(*int64) = expected.LoanGUID
					*dest[1].(*int64) = expected.NoteID
					*dest[2].(*int64) = expected.OrderID
					*dest[17].(*[]byte) = []byte(`[[10,100]]`)
					return nil
				})
				mockRows.EXPECT().Next().Return(false)
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, records []*v1.OrderRecord, err error) {
				assert.NoError(t, err)
				assert.Len(t, records, 1)
				assert.Equal(t, []v1.PricePoint{{Price: 10, Timestamp: 100}}, records[0].PriceHistory)
			},
		},
		{
			name:   "failed to query",
			filter: Filter{LoanGUID: 596513},
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface, tc Filter) {
				mockpg.EXPECT().
					Query(
						ctx,
						query+" AND loan_guid = $1 ORDER BY first_seen ASC",
						tc.LoanGUID,
					).Return(mockRows, errors.New("error"))
			},
			assertFn: func(t *testing.T, records []*v1.OrderRecord, err error) {
				assert.Error(t, err)
				assert.Nil(t, records)
			},
		},
		{
			name:   "failed to scan",
			filter: Filter{},
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRows *mockPg.MockRowsInterface, tc Filter) {
				mockpg.EXPECT().
					Query(ctx, query+" ORDER BY first_seen ASC").
					Return(mockRows, nil)

				mockRows.EXPECT().Next().Return(true)
				mockRows.EXPECT().
					Scan(gomock.Any()).Return(errors.New("error"))
				mockRows.EXPECT().Close()
			},
			assertFn: func(t *testing.T, records []*v1.OrderRecord, err error) {
				assert.Error(t, err)
				assert.Nil(t, records)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pg := mockPg.NewMockPostgreSQLClient(ctrl)
			rows := mockPg.NewMockRowsInterface(ctrl)
			log := mockLogger.NewMockInterface(ctrl)

			repo := NewRepository(pg, log)

			tc.mockFn(pg, rows, tc.filter)

			records, err := repo.List(ctx, tc.filter)
			tc.assertFn(t, records, err)
		})
	}
}

func TestOrder_RemoveAll(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pg := mockPg.NewMockPostgreSQLClient(ctrl)
	log := mockLogger.NewMockInterface(ctrl)

	pg.EXPECT().
		Exec(ctx, `DELETE FROM orders`).
		Return(pgconn.CommandTag{}, nil)

	repo := NewRepository(pg, log)
	assert.NoError(t, repo.RemoveAll(ctx))
}

func TestOrder_CountInRange(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		column   string
		countFn  func(repo OrderRepository) (int, error)
		mockFn   func(mockpg *mockPg.MockPostgreSQLClient, mockRow *mockPg.MockRowInterface, query string)
		assertFn func(t *testing.T, count int, err error)
	}{
		{
			name:   "first seen success",
			column: "first_seen",
			countFn: func(repo OrderRepository) (int, error) {
				return repo.CountFirstSeenIn(ctx, 0, 3600)
			},
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRow *mockPg.MockRowInterface, query string) {
				mockpg.EXPECT().
					QueryRow(ctx, query, float64(0), float64(3600)).
					Return(mockRow)

				mockRow.EXPECT().
					Scan(gomock.Any()).DoAndReturn(func(dest ...any) error {
					*dest[0].(*int) = 42
					return nil
				})
			},
			assertFn: func(t *testing.T, count int, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 42, count)
			},
		},
		{
			name:   "last seen error",
			column: "last_seen",
			countFn: func(repo OrderRepository) (int, error) {
				return repo.CountLastSeenIn(ctx, 0, 3600)
			},
			mockFn: func(mockpg *mockPg.MockPostgreSQLClient, mockRow *mockPg.MockRowInterface, query string) {
				mockpg.EXPECT().
					QueryRow(ctx, query, float64(0), float64(3600)).
					Return(mockRow)

				mockRow.EXPECT().
					Scan(gomock.Any()).Return(errors.New("error"))
			},
			assertFn: func(t *testing.T, count int, err error) {
				assert.Error(t, err)
				assert.Equal(t, 0, count)
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

			query := `SELECT COUNT(*) FROM orders WHERE ` + tc.column + ` >= $1 AND ` + tc.column + ` < $2`
			tc.mockFn(pg, row, query)

			repo := NewRepository(pg, log)
			count, err := tc.countFn(repo)
			tc.assertFn(t, count, err)
		})
	}
}
