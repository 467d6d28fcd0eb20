package dataset

import (
	"context"
	"io"

	v1 "github.com/Shuang777/lending-club/internal/domain/dataset/v1"
	"github.com/Shuang777/lending-club/internal/infrastructure/postgresql/order"
	"github.com/Shuang777/lending-club/pkg/errors"
	"github.com/Shuang777/lending-club/pkg/logger"
)

type usecase struct {
	orderRepository order.OrderRepository
	logger          logger.Interface
}

// NewUsecase creates a new dataset usecase.
func NewUsecase(orderRepository order.OrderRepository, logger logger.Interface) *usecase {
	return &usecase{
		orderRepository: orderRepository,
		logger:          logger,
	}
}

// BuildDataset loads every stored order record and flattens it into labeled
// rows, one per consolidated price history point.
func (u *usecase) BuildDataset(ctx context.Context, includeNotBoughtYet bool) ([]v1.Row, error) {
	records, err := u.orderRepository.List(ctx, order.Filter{})
	if err != nil {
		return nil, err
	}

	rows := v1.Convert(records, includeNotBoughtYet)

	u.logger.InfoContext(ctx, "Dataset built", logger.Field{
		Key:   "records",
		Value: len(records),
	}, logger.Field{
		Key:   "rows",
		Value: len(rows),
	})

	return rows, nil
}

// Export builds the dataset and writes it to w in the requested format.
func (u *usecase) Export(ctx context.Context, w io.Writer, format v1.Format, includeNotBoughtYet bool) error {
	rows, err := u.BuildDataset(ctx, includeNotBoughtYet)
	if err != nil {
		return err
	}

	switch format {
	case v1.FormatJSON:
		err = writeJSON(w, rows)
	case v1.FormatCSV:
		err = writeCSV(w, rows)
	case v1.FormatARFF:
		err = writeARFF(w, rows)
	case v1.FormatXLSX:
		err = writeXLSX(w, rows)
	default:
		err = errors.NewTracer("unknown dataset format: " + string(format))
	}
	if err != nil {
		return errors.TracerFromError(errors.NewErrorDetails(
			err.Error(),
			string(errors.DatasetExportError),
			"format",
		))
	}

	return nil
}
