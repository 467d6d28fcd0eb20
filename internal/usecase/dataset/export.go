package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	v1 "github.com/Shuang777/lending-club/internal/domain/dataset/v1"
	"github.com/xuri/excelize/v2"
)

// arffRelation is the relation name carried in generated ARFF headers.
const arffRelation = "downloader data"

func numericValue(row v1.Row, name string) float64 {
	switch name {
	case "timestamp":
		return row.Timestamp
	case "notePrice":
		return row.NotePrice
	case "timeOnMarket":
		return row.TimeOnMarket
	case "loanRate":
		return row.LoanRate
	case "outstanding_principal":
		return row.OutstandingPrincipal
	case "days_since_payment":
		return float64(row.DaysSincePayment)
	case "ytm":
		return row.YTM
	case "markup_discount":
		return row.MarkupDiscount
	case "asking_price":
		return row.AskingPrice
	case "accrued_interest":
		return row.AccruedInterest
	case "remaining_pay":
		return float64(row.RemainingPayments)
	}
	return 0
}

func nominalValue(row v1.Row, name string) string {
	switch name {
	case "credit_score_trend":
		return row.CreditScoreTrend
	case "loanGrade":
		return row.LoanGrade
	}
	return ""
}

// sanitize strips characters that break Weka tokenizing.
func sanitize(value string) string {
	return strings.NewReplacer("'", "", `"`, "", "%", "").Replace(value)
}

func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// observedValues collects the distinct sanitized values of one nominal
// attribute across the dataset, sorted for a stable header.
func observedValues(rows []v1.Row, name string) []string {
	seen := map[string]struct{}{}
	for _, row := range rows {
		value := sanitize(nominalValue(row, name))
		if value == "" {
			continue
		}
		seen[value] = struct{}{}
	}

	values := make([]string, 0, len(seen))
	for value := range seen {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

func writeJSON(w io.Writer, rows []v1.Row) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func writeCSV(w io.Writer, rows []v1.Row) error {
	writer := csv.NewWriter(w)

	header := append([]string{"id"}, v1.NumericAttributes...)
	header = append(header, v1.NominalAttributes...)
	header = append(header, "noteStatus")
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := make([]string, 0, len(header))
		record = append(record, row.ID)
		for _, name := range v1.NumericAttributes {
			record = append(record, formatNumber(numericValue(row, name)))
		}
		for _, name := range v1.NominalAttributes {
			record = append(record, sanitize(nominalValue(row, name)))
		}
		record = append(record, string(row.NoteStatus))
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func writeARFF(w io.Writer, rows []v1.Row) error {
	var b strings.Builder

	fmt.Fprintf(&b, "@RELATION %q\n\n", arffRelation)

	for _, name := range v1.NumericAttributes {
		fmt.Fprintf(&b, "@ATTRIBUTE %s REAL\n", name)
	}
	for _, name := range v1.NominalAttributes {
		fmt.Fprintf(&b, "@ATTRIBUTE %s {%s}\n", name, strings.Join(observedValues(rows, name), ","))
	}

	classValues := make([]string, 0, len(v1.ClassValues))
	for _, value := range v1.ClassValues {
		classValues = append(classValues, string(value))
	}
	fmt.Fprintf(&b, "@ATTRIBUTE noteStatus {%s}\n", strings.Join(classValues, ","))

	b.WriteString("\n@DATA\n")
	for _, row := range rows {
		fields := make([]string, 0, len(v1.NumericAttributes)+len(v1.NominalAttributes)+1)
		for _, name := range v1.NumericAttributes {
			fields = append(fields, formatNumber(numericValue(row, name)))
		}
		for _, name := range v1.NominalAttributes {
			value := sanitize(nominalValue(row, name))
			if value == "" {
				value = "?"
			}
			fields = append(fields, value)
		}
		fields = append(fields, string(row.NoteStatus))
		b.WriteString(strings.Join(fields, ","))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeXLSX(w io.Writer, rows []v1.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := append([]any{"id"}, toAnySlice(v1.NumericAttributes)...)
	header = append(header, toAnySlice(v1.NominalAttributes)...)
	header = append(header, "noteStatus")
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		record := []any{row.ID}
		for _, name := range v1.NumericAttributes {
			record = append(record, numericValue(row, name))
		}
		for _, name := range v1.NominalAttributes {
			record = append(record, nominalValue(row, name))
		}
		record = append(record, string(row.NoteStatus))
		if err := f.SetSheetRow(sheet, cell, &record); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func toAnySlice(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}
	return out
}
