package v1

import (
	"encoding/csv"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Shuang777/lending-club/pkg/errors"
	"github.com/Shuang777/lending-club/pkg/logger"
)

// KnownStatuses are the loan statuses the marketplace publishes in its
// historical stats export.
var KnownStatuses = []string{
	"issued",
	"current",
	"in grace period",
	"late (16-30 days)",
	"late (31-120 days)",
	"fully paid",
	"default",
	"charged off",
}

// StatusUnknown is assigned when a row carries a status outside KnownStatuses.
const StatusUnknown = "unknown status"

// Some entries are prefixed with a credit policy warning we do not care about.
var creditPolicyRe = regexp.MustCompile(`(?i)does not meet the (current )?credit policy.( )+status:`)

// ParseTerm parses " 36 months" into 36.
func ParseTerm(term string) (int, error) {
	fields := strings.Fields(strings.TrimSpace(term))
	if len(fields) == 0 {
		return 0, errors.NewTracer("empty term")
	}
	return strconv.Atoi(fields[0])
}

// ParsePercent parses "49.01%" into 49.01.
func ParsePercent(percentage string) (float64, error) {
	trimmed := strings.TrimSpace(percentage)
	trimmed = strings.TrimSuffix(trimmed, "%")
	return strconv.ParseFloat(trimmed, 64)
}

// ParseDate parses a "2012-07-15" style date, with an optional time part
// after a space, into seconds since epoch.
func ParseDate(date string) (float64, error) {
	datePart := strings.SplitN(strings.TrimSpace(date), " ", 2)[0]
	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return 0, err
	}
	return float64(t.Unix()), nil
}

// ParseStatus normalizes a loan status: strips the credit policy prefix,
// lowercases, and maps anything outside KnownStatuses to StatusUnknown.
func ParseStatus(status string) string {
	if status == "" {
		return ""
	}
	status = creditPolicyRe.ReplaceAllString(status, "")
	status = strings.ToLower(strings.TrimSpace(status))
	for _, known := range KnownStatuses {
		if status == known {
			return status
		}
	}
	return StatusUnknown
}

// ParseLoanStats reads the marketplace's historical loan stats CSV. The
// first line is a prospectus notice and is skipped; rows with a non-numeric
// id are dropped; rows with unparseable typed fields are dropped with a
// warning rather than failing the whole file.
func ParseLoanStats(r io.Reader, log logger.Interface) ([]*HistoricalLoan, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// skip the prospectus notice
	if _, err := reader.Read(); err != nil {
		return nil, errors.TracerFromError(err)
	}

	header, err := reader.Read()
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	var loans []*HistoricalLoan
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.TracerFromError(err)
		}

		loan, err := parseRow(row, columns)
		if err != nil {
			log.Warn("skipping loan stats row", logger.Field{Key: "error", Value: err.Error()})
			continue
		}
		loans = append(loans, loan)
	}

	return loans, nil
}

func parseRow(row []string, columns map[string]int) (*HistoricalLoan, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		value := strings.TrimSpace(row[idx])
		if value == "null" {
			return ""
		}
		return value
	}

	id, err := strconv.ParseInt(field("id"), 10, 64)
	if err != nil {
		return nil, errors.NewTracer("non-numeric loan id").Wrap(err)
	}

	loan := &HistoricalLoan{LoanGUID: id}

	// optional typed fields, empty values stay at their zero value
	parseInt := func(name string, dst *int64) {
		if v := field(name); v != "" {
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				*dst = parsed
			}
		}
	}
	parseFloat := func(name string, dst *float64) {
		if v := field(name); v != "" {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil {
				*dst = parsed
			}
		}
	}
	parsePercent := func(name string, dst *float64) {
		if v := field(name); v != "" {
			if parsed, err := ParsePercent(v); err == nil {
				*dst = parsed
			}
		}
	}
	parseDate := func(name string, dst *float64) {
		if v := field(name); v != "" {
			if parsed, err := ParseDate(v); err == nil {
				*dst = parsed
			}
		}
	}

	parseInt("member_id", &loan.MemberID)
	parseFloat("loan_amnt", &loan.LoanAmount)
	parseFloat("funded_amnt", &loan.FundedAmount)
	parseFloat("installment", &loan.Installment)
	parseFloat("annual_inc", &loan.AnnualIncome)
	parseFloat("dti", &loan.DTI)
	parseFloat("revol_bal", &loan.RevolvingBalance)
	parseFloat("out_prncp", &loan.OutstandingPrincipal)
	parseFloat("total_pymnt", &loan.TotalPayment)
	parseFloat("last_pymnt_amnt", &loan.LastPaymentAmount)
	parsePercent("int_rate", &loan.InterestRate)
	parsePercent("revol_util", &loan.RevolvingUtilization)
	parseDate("issue_d", &loan.IssueDate)
	parseDate("earliest_cr_line", &loan.EarliestCreditLine)
	parseDate("last_pymnt_d", &loan.LastPaymentDate)

	if v := field("term"); v != "" {
		term, err := ParseTerm(v)
		if err != nil {
			return nil, errors.NewTracer("bad term").Wrap(err)
		}
		loan.Term = term
	}

	loan.Grade = field("grade")
	loan.SubGrade = field("sub_grade")
	loan.EmpLength = field("emp_length")
	loan.HomeOwnership = field("home_ownership")
	loan.Purpose = field("purpose")
	loan.State = field("addr_state")
	loan.VerifiedIncome = field("is_inc_v") == "TRUE"
	loan.PaymentPlan = field("pymnt_plan") == "y"
	loan.LoanStatus = ParseStatus(field("loan_status"))

	return loan, nil
}
