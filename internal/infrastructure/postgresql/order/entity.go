package order

import (
	"encoding/json"

	v1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
)

// orderColumns is the column list shared by every SELECT in this package.
const orderColumns = `loan_guid, note_id, order_id, asking_price, markup_discount, ytm, outstanding_principal, accrued_interest, days_since_payment, remaining_pay, credit_score_trend, loan_grade, loan_rate, loan_class, first_seen, last_seen, last_updated, price_history`

// Filter represents the filter criteria for listing order records.
type Filter struct {
	LoanGUID      int64    `json:"loanGUID"`
	LoanGrade     string   `json:"loanGrade"`
	FirstSeenFrom *float64 `json:"firstSeenFrom"`
	LastSeenTo    *float64 `json:"lastSeenTo"`
	Limit         int      `json:"limit"`
	Offset        int      `json:"offset"`
}

// scanDest returns scan destinations matching orderColumns, with the price
// history going through raw so it can be decoded from JSONB afterwards.
func scanDest(record *v1.OrderRecord, raw *[]byte) []any {
	return []any{
		&record.LoanGUID,
		&record.NoteID,
		&record.OrderID,
		&record.AskingPrice,
		&record.MarkupDiscount,
		&record.YTM,
		&record.OutstandingPrincipal,
		&record.AccruedInterest,
		&record.DaysSincePayment,
		&record.RemainingPayments,
		&record.CreditScoreTrend,
		&record.LoanGrade,
		&record.LoanRate,
		&record.LoanClass,
		&record.FirstSeen,
		&record.LastSeen,
		&record.LastUpdated,
		raw,
	}
}

func decodeHistory(record *v1.OrderRecord, raw []byte) error {
	return json.Unmarshal(raw, &record.PriceHistory)
}

func encodeHistory(record *v1.OrderRecord) ([]byte, error) {
	return json.Marshal(record.PriceHistory)
}
