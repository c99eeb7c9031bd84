package report

import (
	"encoding/csv"
	"fmt"
	"io"
)

var csvHeader = []string{"Date", "Category", "Amount"}

// DownloadCSV writes the CSV export of a report and returns its file name.
//
// Income and Expense reports contain one table. Combined reports contain
// the income table, a blank row and the expense table. An empty transaction
// list returns ErrNoTransactions without writing anything.
func DownloadCSV(w io.Writer, reportType ReportType, transactions []Transaction, l *Localizer) (string, error) {
	if len(transactions) == 0 {
		return "", ErrNoTransactions
	}

	var records [][]string
	switch reportType {
	case ReportIncome, ReportExpense:
		records = csvTable(l.T(reportType.Title()), transactions)
	case ReportCombined:
		var income, expense []Transaction
		for _, t := range transactions {
			if t.Amount.IsPositive() {
				income = append(income, t)
			} else if t.Amount.IsNegative() {
				expense = append(expense, t)
			}
		}

		records = csvTable(l.T(ReportIncome.Title()), income)
		records = append(records, []string{""})
		records = append(records, csvTable(l.T(ReportExpense.Title()), expense)...)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedReportType, reportType)
	}

	writer := csv.NewWriter(w)
	if err := writer.WriteAll(records); err != nil {
		return "", fmt.Errorf("writing csv: %w", err)
	}

	return l.T(reportType.Title()) + ".csv", nil
}

func csvTable(title string, transactions []Transaction) [][]string {
	records := make([][]string, 0, len(transactions)+2)
	records = append(records, []string{title}, csvHeader)

	for _, t := range transactions {
		records = append(records, []string{
			t.TransactedAt.Format("2006-01-02"),
			t.DisplayCategory,
			t.Amount.String(),
		})
	}

	return records
}
