package order

import (
	"context"
	"errors"
	"testing"

	mockAlert "github.com/Shuang777/lending-club/internal/alert/mock"
	v1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
	mockRepo "github.com/Shuang777/lending-club/internal/infrastructure/postgresql/order/mock"
	"github.com/Shuang777/lending-club/pkg/config"
	mockLogger "github.com/Shuang777/lending-club/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func testSnapshot(price float64) v1.ListingSnapshot {
	return v1.ListingSnapshot{
		LoanGUID:    596513,
		NoteID:      2703872,
		OrderID:     11430858,
		AskingPrice: price,
		LoanGrade:   "C",
		LoanRate:    13.5,
		LoanClass:   "note",
	}
}

type mocks struct {
	repo   *mockRepo.MockOrderRepository
	sender *mockAlert.MockSender
	log    *mockLogger.MockInterface
}

func TestOrder_UpdateOrders(t *testing.T) {
	ctx := context.Background()
	cfg := config.BatchConfig{ErrorThreshold: 1}

	testCases := []struct {
		name      string
		snapshots []v1.ListingSnapshot
		now       float64
		mockFn    func(m mocks)
		assertFn  func(t *testing.T, result v1.BatchResult, err error)
	}{
		{
			name:      "first sighting creates a record",
			snapshots: []v1.ListingSnapshot{testSnapshot(10)},
			now:       1000,
			mockFn: func(m mocks) {
				m.repo.EXPECT().
					FindByTriple(ctx, v1.Triple{LoanGUID: 596513, NoteID: 2703872, OrderID: 11430858}).
					Return(nil, nil)

				m.repo.EXPECT().
					Save(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, record *v1.OrderRecord) error {
						assert.Equal(t, float64(1000), record.FirstSeen)
						assert.Equal(t, float64(1000), record.LastSeen)
						assert.Equal(t, []v1.PricePoint{{Price: 10, Timestamp: 1000}}, record.PriceHistory)
						return nil
					})
			},
			assertFn: func(t *testing.T, result v1.BatchResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, v1.BatchResult{Updated: 1}, result)
			},
		},
		{
			name:      "repeat sighting extends the history",
			snapshots: []v1.ListingSnapshot{testSnapshot(8)},
			now:       90000,
			mockFn: func(m mocks) {
				existing := &v1.OrderRecord{
					ListingSnapshot: testSnapshot(10),
					FirstSeen:       0,
					LastSeen:        3600,
					LastUpdated:     3600,
					PriceHistory: []v1.PricePoint{
						{Price: 10, Timestamp: 0},
						{Price: 10, Timestamp: 3600},
					},
				}

				m.repo.EXPECT().
					FindByTriple(ctx, gomock.Any()).
					Return(existing, nil)

				m.repo.EXPECT().
					Save(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, record *v1.OrderRecord) error {
						assert.Equal(t, float64(0), record.FirstSeen)
						assert.Equal(t, float64(90000), record.LastSeen)
						assert.Equal(t, []v1.PricePoint{
							{Price: 10, Timestamp: 0},
							{Price: 10, Timestamp: 3600},
							{Price: 8, Timestamp: 90000},
						}, record.PriceHistory)
						return nil
					})
			},
			assertFn: func(t *testing.T, result v1.BatchResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, v1.BatchResult{Updated: 1}, result)
			},
		},
		{
			name: "constant field conflict is skipped",
			snapshots: func() []v1.ListingSnapshot {
				changed := testSnapshot(10)
				changed.LoanGrade = "D"
				return []v1.ListingSnapshot{changed}
			}(),
			now: 1000,
			mockFn: func(m mocks) {
				m.repo.EXPECT().
					FindByTriple(ctx, gomock.Any()).
					Return(&v1.OrderRecord{ListingSnapshot: testSnapshot(10)}, nil)

				m.log.EXPECT().
					WarnContext(ctx, "Skipping listing snapshot", gomock.Any(), gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, result v1.BatchResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, v1.BatchResult{Errors: 1, Skipped: 1}, result)
			},
		},
		{
			name: "malformed snapshot is skipped",
			snapshots: func() []v1.ListingSnapshot {
				bad := testSnapshot(0)
				return []v1.ListingSnapshot{bad}
			}(),
			now: 1000,
			mockFn: func(m mocks) {
				m.repo.EXPECT().
					FindByTriple(ctx, gomock.Any()).
					Return(nil, nil)

				m.log.EXPECT().
					WarnContext(ctx, "Skipping listing snapshot", gomock.Any(), gomock.Any(), gomock.Any())
			},
			assertFn: func(t *testing.T, result v1.BatchResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, v1.BatchResult{Errors: 1, Skipped: 1}, result)
			},
		},
		{
			name:      "store failure aborts the batch",
			snapshots: []v1.ListingSnapshot{testSnapshot(10), testSnapshot(11)},
			now:       1000,
			mockFn: func(m mocks) {
				m.repo.EXPECT().
					FindByTriple(ctx, gomock.Any()).
					Return(nil, errors.New("error"))
			},
			assertFn: func(t *testing.T, result v1.BatchResult, err error) {
				assert.Error(t, err)
				assert.Equal(t, v1.BatchResult{}, result)
			},
		},
		{
			name: "threshold breach raises an alert",
			snapshots: []v1.ListingSnapshot{
				testSnapshot(0),
				testSnapshot(0),
				testSnapshot(10),
			},
			now: 1000,
			mockFn: func(m mocks) {
				m.repo.EXPECT().
					FindByTriple(ctx, gomock.Any()).
					Return(nil, nil).
					Times(3)

				m.log.EXPECT().
					WarnContext(ctx, "Skipping listing snapshot", gomock.Any(), gomock.Any(), gomock.Any()).
					Times(2)

				m.repo.EXPECT().
					Save(ctx, gomock.Any()).
					Return(nil)

				m.log.EXPECT().
					ErrorContext(ctx, gomock.Any(), gomock.Any(), gomock.Any())

				m.sender.EXPECT().
					Send(ctx, "Order batch error threshold exceeded", gomock.Any()).
					Return(nil)
			},
			assertFn: func(t *testing.T, result v1.BatchResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, v1.BatchResult{Updated: 1, Errors: 2, Skipped: 2}, result)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{
				repo:   mockRepo.NewMockOrderRepository(ctrl),
				sender: mockAlert.NewMockSender(ctrl),
				log:    mockLogger.NewMockInterface(ctrl),
			}

			uc := NewUsecase(m.repo, m.sender, cfg, m.log)

			tc.mockFn(m)

			result, err := uc.UpdateOrders(ctx, tc.snapshots, tc.now)
			tc.assertFn(t, result, err)
		})
	}
}

func TestOrder_UpdateOrders_ConsolidatesAcrossBatches(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockRepo.NewMockOrderRepository(ctrl)
	sender := mockAlert.NewMockSender(ctrl)
	log := mockLogger.NewMockInterface(ctrl)

	uc := NewUsecase(repo, sender, config.BatchConfig{ErrorThreshold: 10}, log)

	var stored *v1.OrderRecord
	repo.EXPECT().
		FindByTriple(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ v1.Triple) (*v1.OrderRecord, error) {
			return stored, nil
		}).
		Times(3)
	repo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, record *v1.OrderRecord) error {
			stored = record
			return nil
		}).
		Times(3)

	steps := []struct {
		price float64
		now   float64
	}{
		{price: 10, now: 0},
		{price: 10, now: 3600},
		{price: 8, now: 90000},
	}
	for _, step := range steps {
		result, err := uc.UpdateOrders(ctx, []v1.ListingSnapshot{testSnapshot(step.price)}, step.now)
		assert.NoError(t, err)
		assert.Equal(t, v1.BatchResult{Updated: 1}, result)
	}

	assert.Equal(t, float64(0), stored.FirstSeen)
	assert.Equal(t, float64(90000), stored.LastSeen)
	assert.Equal(t, []v1.PricePoint{
		{Price: 10, Timestamp: 0},
		{Price: 10, Timestamp: 3600},
		{Price: 8, Timestamp: 90000},
	}, stored.PriceHistory)
}

func TestOrder_PurgeOrders(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mockRepo.NewMockOrderRepository(ctrl)
	sender := mockAlert.NewMockSender(ctrl)
	log := mockLogger.NewMockInterface(ctrl)

	uc := NewUsecase(repo, sender, config.BatchConfig{ErrorThreshold: 10}, log)

	repo.EXPECT().RemoveAll(ctx).Return(nil)
	log.EXPECT().WarnContext(ctx, "Purged all order records")

	assert.NoError(t, uc.PurgeOrders(ctx))

	repo.EXPECT().RemoveAll(ctx).Return(errors.New("error"))
	assert.Error(t, uc.PurgeOrders(ctx))
}

func TestOrder_GetMarketVolumes(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name     string
		mockFn   func(m mocks)
		assertFn func(t *testing.T, volumes []v1.VolumeBucket, err error)
	}{
		{
			name: "success",
			mockFn: func(m mocks) {
				m.repo.EXPECT().CountFirstSeenIn(ctx, float64(0), float64(3600)).Return(5, nil)
				m.repo.EXPECT().CountLastSeenIn(ctx, float64(0), float64(3600)).Return(2, nil)
				m.repo.EXPECT().CountFirstSeenIn(ctx, float64(3600), float64(7200)).Return(1, nil)
				m.repo.EXPECT().CountLastSeenIn(ctx, float64(3600), float64(7200)).Return(4, nil)
			},
			assertFn: func(t *testing.T, volumes []v1.VolumeBucket, err error) {
				assert.NoError(t, err)
				assert.Equal(t, []v1.VolumeBucket{
					{Start: 0, End: 3600, Appeared: 5, Departed: 2},
					{Start: 3600, End: 7200, Appeared: 1, Departed: 4},
				}, volumes)
			},
		},
		{
			name: "count failure",
			mockFn: func(m mocks) {
				m.repo.EXPECT().CountFirstSeenIn(ctx, float64(0), float64(3600)).Return(0, errors.New("error"))
			},
			assertFn: func(t *testing.T, volumes []v1.VolumeBucket, err error) {
				assert.Error(t, err)
				assert.Nil(t, volumes)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mocks{
				repo:   mockRepo.NewMockOrderRepository(ctrl),
				sender: mockAlert.NewMockSender(ctrl),
				log:    mockLogger.NewMockInterface(ctrl),
			}

			uc := NewUsecase(m.repo, m.sender, config.BatchConfig{ErrorThreshold: 10}, m.log)

			tc.mockFn(m)

			volumes, err := uc.GetMarketVolumes(ctx, 0, 3600, 2)
			tc.assertFn(t, volumes, err)
		})
	}
}
