package order

import (
	"context"
	"fmt"

	v1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
	"github.com/Shuang777/lending-club/pkg/errors"
	"github.com/Shuang777/lending-club/pkg/logger"
	"github.com/Shuang777/lending-club/pkg/postgresql"
	"github.com/jackc/pgx/v5"
)

// Repository is the repository for persisted order records.
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

// FindByTriple fetches the record for one (loan, note, order) triple.
// Returns nil without error when the triple has never been seen.
func (r *repository) FindByTriple(ctx context.Context, triple v1.Triple) (*v1.OrderRecord, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE loan_guid = $1 AND note_id = $2 AND order_id = $3`

	record := &v1.OrderRecord{}
	var raw []byte
	err := r.db.QueryRow(ctx, query, triple.LoanGUID, triple.NoteID, triple.OrderID).Scan(scanDest(record, &raw)...)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	if err := decodeHistory(record, raw); err != nil {
		return nil, errors.TracerFromError(err)
	}

	return record, nil
}

// Save upserts a record keyed by its triple.
func (r *repository) Save(ctx context.Context, record *v1.OrderRecord) error {
	query := `INSERT INTO orders (` + orderColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		ON CONFLICT (loan_guid, note_id, order_id) DO UPDATE SET
		asking_price = EXCLUDED.asking_price,
		markup_discount = EXCLUDED.markup_discount,
		ytm = EXCLUDED.ytm,
		outstanding_principal = EXCLUDED.outstanding_principal,
		accrued_interest = EXCLUDED.accrued_interest,
		days_since_payment = EXCLUDED.days_since_payment,
		remaining_pay = EXCLUDED.remaining_pay,
		credit_score_trend = EXCLUDED.credit_score_trend,
		first_seen = EXCLUDED.first_seen,
		last_seen = EXCLUDED.last_seen,
		last_updated = EXCLUDED.last_updated,
		price_history = EXCLUDED.price_history`

	history, err := encodeHistory(record)
	if err != nil {
		return errors.TracerFromError(err)
	}

	cmd, err := r.db.Exec(ctx, query,
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
	)
	if err != nil {
		return errors.TracerFromError(err)
	}

	r.logger.Debug("Saved order record", logger.Field{
		Key:   "commandTag",
		Value: cmd.String(),
	})

	return nil
}

// List lists order records.
func (r *repository) List(ctx context.Context, filter Filter) ([]*v1.OrderRecord, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	args := []any{}
	argIndex := 1

	if filter.LoanGUID != 0 {
		query += fmt.Sprintf(" AND loan_guid = $%d", argIndex)
		args = append(args, filter.LoanGUID)
		argIndex++
	}

	if filter.LoanGrade != "" {
		query += fmt.Sprintf(" AND loan_grade = $%d", argIndex)
		args = append(args, filter.LoanGrade)
		argIndex++
	}

	if filter.FirstSeenFrom != nil {
		query += fmt.Sprintf(" AND first_seen >= $%d", argIndex)
		args = append(args, *filter.FirstSeenFrom)
		argIndex++
	}

	if filter.LastSeenTo != nil {
		query += fmt.Sprintf(" AND last_seen < $%d", argIndex)
		args = append(args, *filter.LastSeenTo)
		argIndex++
	}

	query += " ORDER BY first_seen ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
		argIndex++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, filter.Offset)
		argIndex++
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	defer rows.Close()

	records := []*v1.OrderRecord{}
	for rows.Next() {
		record := &v1.OrderRecord{}
		var raw []byte
		if err := rows.Scan(scanDest(record, &raw)...); err != nil {
			return nil, errors.TracerFromError(err)
		}
		if err := decodeHistory(record, raw); err != nil {
			return nil, errors.TracerFromError(err)
		}
		records = append(records, record)
	}

	return records, nil
}

// RemoveAll deletes every order record.
func (r *repository) RemoveAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM orders`)
	if err != nil {
		return errors.TracerFromError(err)
	}

	return nil
}

// CountFirstSeenIn counts records whose first_seen falls in [start, end).
func (r *repository) CountFirstSeenIn(ctx context.Context, start, end float64) (int, error) {
	return r.countInRange(ctx, "first_seen", start, end)
}

// CountLastSeenIn counts records whose last_seen falls in [start, end).
func (r *repository) CountLastSeenIn(ctx context.Context, start, end float64) (int, error) {
	return r.countInRange(ctx, "last_seen", start, end)
}

func (r *repository) countInRange(ctx context.Context, column string, start, end float64) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM orders WHERE %s >= $1 AND %s < $2`, column, column)

	var count int
	if err := r.db.QueryRow(ctx, query, start, end).Scan(&count); err != nil {
		return 0, errors.TracerFromError(err)
	}

	return count, nil
}
