package v1

import (
	orderv1 "github.com/Shuang777/lending-club/internal/domain/order/v1"
)

// Row is one flat labeled sample: a single price-history point of one order,
// carrying the order's descriptive attributes and its derived disposition.
type Row struct {
	ID           string  `json:"id"`
	Timestamp    float64 `json:"timestamp"`
	NotePrice    float64 `json:"notePrice"`
	TimeOnMarket float64 `json:"timeOnMarket"`

	LoanRate             float64 `json:"loanRate"`
	OutstandingPrincipal float64 `json:"outstanding_principal"`
	DaysSincePayment     int     `json:"days_since_payment"`
	YTM                  float64 `json:"ytm"`
	CreditScoreTrend     string  `json:"credit_score_trend"`
	MarkupDiscount       float64 `json:"markup_discount"`
	AskingPrice          float64 `json:"asking_price"`
	AccruedInterest      float64 `json:"accrued_interest"`
	RemainingPayments    int     `json:"remaining_pay"`

	LoanGrade  string             `json:"loanGrade"`
	NoteStatus orderv1.NoteStatus `json:"noteStatus"`
}

// NumericAttributes are the Row fields exported as numeric columns, in
// output order.
var NumericAttributes = []string{
	"timestamp",
	"notePrice",
	"timeOnMarket",
	"loanRate",
	"outstanding_principal",
	"days_since_payment",
	"ytm",
	"markup_discount",
	"asking_price",
	"accrued_interest",
	"remaining_pay",
}

// NominalAttributes are the Row fields exported as nominal columns besides
// the class column, in output order.
var NominalAttributes = []string{
	"credit_score_trend",
	"loanGrade",
}

// ClassValues are the admissible values of the class column.
var ClassValues = []orderv1.NoteStatus{
	orderv1.StatusBought,
	orderv1.StatusCancelled,
	orderv1.StatusNotBoughtYet,
	orderv1.StatusNotBought,
}
