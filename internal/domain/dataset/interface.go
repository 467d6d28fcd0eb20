package dataset

import (
	"context"
	"io"

	v1 "github.com/Shuang777/lending-club/internal/domain/dataset/v1"
)

// Usecase is the interface for the dataset usecase.
//
//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock
type Usecase interface {
	BuildDataset(ctx context.Context, includeNotBoughtYet bool) ([]v1.Row, error)
	Export(ctx context.Context, w io.Writer, format v1.Format, includeNotBoughtYet bool) error
}
