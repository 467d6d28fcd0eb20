package v1

// HistoricalLoan is one row of the marketplace's historical loan stats CSV,
// keyed by the numeric loan id. Bulk-replaced on each refresh, never
// reconciled.
type HistoricalLoan struct {
	LoanGUID int64 `json:"loanGUID"`
	MemberID int64 `json:"member_id"`

	LoanAmount     float64 `json:"loan_amnt"`
	FundedAmount   float64 `json:"funded_amnt"`
	Term           int     `json:"term"`
	InterestRate   float64 `json:"int_rate"`
	Installment    float64 `json:"installment"`
	Grade          string  `json:"grade"`
	SubGrade       string  `json:"sub_grade"`
	EmpLength      string  `json:"emp_length"`
	HomeOwnership  string  `json:"home_ownership"`
	AnnualIncome   float64 `json:"annual_inc"`
	VerifiedIncome bool    `json:"is_inc_v"`
	PaymentPlan    bool    `json:"pymnt_plan"`
	Purpose        string  `json:"purpose"`
	State          string  `json:"addr_state"`
	DTI            float64 `json:"dti"`

	IssueDate          float64 `json:"issue_d"`
	EarliestCreditLine float64 `json:"earliest_cr_line"`
	LastPaymentDate    float64 `json:"last_pymnt_d"`

	RevolvingBalance     float64 `json:"revol_bal"`
	RevolvingUtilization float64 `json:"revol_util"`
	OutstandingPrincipal float64 `json:"out_prncp"`
	TotalPayment         float64 `json:"total_pymnt"`
	LastPaymentAmount    float64 `json:"last_pymnt_amnt"`

	LoanStatus string `json:"loan_status"`
}
