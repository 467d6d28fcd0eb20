package v1

import (
	orderv1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
)

// Convert expands each order's consolidated price history into one flat
// labeled row per history point. Rows keep input record order, then history
// order within a record. When includeNotBoughtYet is false, rows labeled
// NBY are omitted; nothing else is skipped.
func Convert(records []*orderv1.OrderRecord, includeNotBoughtYet bool) []Row {
	var rows []Row

	for _, record := range records {
		id := record.Key().String()
		timeOnMarket := record.TimeOnMarket()

		for i, point := range record.PriceHistory {
			sampleIsLast := i == len(record.PriceHistory)-1
			status := orderv1.DeriveStatus(record.FirstSeen, record.LastSeen, sampleIsLast)

			if status == orderv1.StatusNotBoughtYet && !includeNotBoughtYet {
				continue
			}

			rows = append(rows, Row{
				ID:                   id,
				Timestamp:            point.Timestamp,
				NotePrice:            point.Price,
				TimeOnMarket:         timeOnMarket / 3600,
				LoanRate:             record.LoanRate,
				OutstandingPrincipal: record.OutstandingPrincipal,
				DaysSincePayment:     record.DaysSincePayment,
				YTM:                  record.YTM,
				CreditScoreTrend:     record.CreditScoreTrend,
				MarkupDiscount:       record.MarkupDiscount,
				AskingPrice:          record.AskingPrice,
				AccruedInterest:      record.AccruedInterest,
				RemainingPayments:    record.RemainingPayments,
				LoanGrade:            record.LoanGrade,
				NoteStatus:           status,
			})
		}
	}

	return rows
}
