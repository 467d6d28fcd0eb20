package v1

import (
	"encoding/json"
	"fmt"
)

// Triple is the (loan, note, order) identity key for a marketplace order.
type Triple struct {
	LoanGUID int64 `json:"loanGUID"`
	NoteID   int64 `json:"noteId"`
	OrderID  int64 `json:"orderId"`
}

// String renders the triple as "loan-note-order".
func (t Triple) String() string {
	return fmt.Sprintf("%d-%d-%d", t.LoanGUID, t.NoteID, t.OrderID)
}

// PricePoint is one (price, timestamp) sample of an order's asking price.
// Timestamps are seconds since epoch.
type PricePoint struct {
	Price     float64
	Timestamp float64
}

// MarshalJSON encodes the point as a two-element [price, timestamp] array,
// matching the persisted price_history shape.
func (p PricePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.Price, p.Timestamp})
}

// UnmarshalJSON decodes a two-element [price, timestamp] array.
func (p *PricePoint) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	p.Price = pair[0]
	p.Timestamp = pair[1]
	return nil
}

// ListingSnapshot is one scrape-time observation of a marketplace note order.
type ListingSnapshot struct {
	LoanGUID int64 `json:"loanGUID"`
	NoteID   int64 `json:"noteId"`
	OrderID  int64 `json:"orderId"`

	AskingPrice          float64 `json:"asking_price"`
	MarkupDiscount       float64 `json:"markup_discount"`
	YTM                  float64 `json:"ytm"`
	OutstandingPrincipal float64 `json:"outstanding_principal"`
	AccruedInterest      float64 `json:"accrued_interest"`
	DaysSincePayment     int     `json:"days_since_payment"`
	RemainingPayments    int     `json:"remaining_pay"`
	CreditScoreTrend     string  `json:"credit_score_trend"`

	// Constant for the life of the order.
	LoanGrade string  `json:"loanGrade"`
	LoanRate  float64 `json:"loanRate"`
	LoanClass string  `json:"loanClass"`
}

// Key returns the snapshot's identity triple.
func (s ListingSnapshot) Key() Triple {
	return Triple{LoanGUID: s.LoanGUID, NoteID: s.NoteID, OrderID: s.OrderID}
}

// Validate checks that the snapshot carries the identity and price fields
// required for reconciliation.
func (s ListingSnapshot) Validate() error {
	if s.LoanGUID == 0 || s.NoteID == 0 || s.OrderID == 0 {
		return &MalformedSnapshotError{Snapshot: s, Reason: "missing identity field"}
	}
	if s.AskingPrice <= 0 {
		return &MalformedSnapshotError{Snapshot: s, Reason: "missing asking price"}
	}
	return nil
}

// OrderRecord is the durable, reconciled, history-bearing record for one triple.
type OrderRecord struct {
	ListingSnapshot

	FirstSeen    float64      `json:"first_seen"`
	LastSeen     float64      `json:"last_seen"`
	LastUpdated  float64      `json:"last_updated"`
	PriceHistory []PricePoint `json:"price_history"`
}

// TimeOnMarket returns how long the order has been listed, in seconds.
func (r OrderRecord) TimeOnMarket() float64 {
	return r.LastSeen - r.FirstSeen
}
