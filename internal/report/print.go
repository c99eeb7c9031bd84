package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// PrintColor is the color of the total row.
type PrintColor string

const (
	PrintGreen PrintColor = "green"
	PrintRed   PrintColor = "red"
)

var printColors = map[PrintColor]string{
	PrintGreen: "#2E7D32",
	PrintRed:   "#C62828",
}

// PrintRow is one transaction of a print table.
type PrintRow struct {
	Date         string `json:"date"`
	Category     string `json:"category"`
	Amount       string `json:"amount"`
	RunningTotal string `json:"runningTotal"`
}

// PrintTable is the printable version of a report table.
type PrintTable struct {
	Title       string          `json:"title"`
	Rows        []PrintRow      `json:"rows"`
	Placeholder string          `json:"placeholder,omitempty"`
	Total       string          `json:"total"`
	RawTotal    decimal.Decimal `json:"rawTotal"`
	TotalColor  PrintColor      `json:"totalColor"`
}

// SumAmounts returns the sum of all transaction amounts.
func SumAmounts(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		total = total.Add(t.Amount)
	}
	return total
}

// NewPrintTable builds the print table for one table type. The total row is
// green for non-negative totals and red for negative totals.
func NewPrintTable(tableType TableType, transactions []Transaction, total decimal.Decimal, l *Localizer) PrintTable {
	table := PrintTable{
		Title:      l.T(string(tableType)),
		Rows:       make([]PrintRow, 0, len(transactions)),
		Total:      l.Amount(total),
		RawTotal:   total,
		TotalColor: PrintGreen,
	}

	if total.IsNegative() {
		table.TotalColor = PrintRed
	}

	if len(transactions) == 0 {
		table.Placeholder = l.T(fmt.Sprintf("No %s Transactions Found", tableType))
		return table
	}

	running := decimal.Zero
	for _, t := range transactions {
		running = running.Add(t.Amount)
		table.Rows = append(table.Rows, PrintRow{
			Date:         t.TransactedAt.Format("2006-01-02"),
			Category:     t.DisplayCategory,
			Amount:       l.Amount(t.Amount),
			RunningTotal: l.Amount(running),
		})
	}

	return table
}

// PrintSheet is the name of the worksheet written by WritePrintWorkbook.
const PrintSheet = "Staff Expense Report"

// WritePrintWorkbook writes the print tables into a single XLSX worksheet.
// Tables are stacked with one blank row between them.
func WritePrintWorkbook(w io.Writer, tables ...PrintTable) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", PrintSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	totalStyles := make(map[PrintColor]int, len(printColors))
	for color, hex := range printColors {
		style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: hex}})
		if err != nil {
			return err
		}
		totalStyles[color] = style
	}

	sheet := printSheet{file: f}
	for i, table := range tables {
		if i > 0 {
			sheet.row++
		}

		sheet.write(bold, table.Title)
		sheet.write(bold, "Date", "Category", "Amount")

		if len(table.Rows) == 0 {
			sheet.write(0, table.Placeholder)
		}

		for _, row := range table.Rows {
			sheet.write(0, row.Date, row.Category, row.Amount)
		}

		sheet.write(totalStyles[table.TotalColor], "Total", "", table.Total)
	}

	if sheet.err != nil {
		return fmt.Errorf("rendering print workbook: %w", sheet.err)
	}

	if err := f.SetColWidth(PrintSheet, "A", "C", 24); err != nil {
		return err
	}

	return f.Write(w)
}

// printSheet writes rows one after the other and keeps the first error.
type printSheet struct {
	file *excelize.File
	row  int
	err  error
}

func (s *printSheet) write(style int, values ...string) {
	if s.err != nil {
		return
	}

	s.row++
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, s.row)
		if err != nil {
			s.err = err
			return
		}

		if err := s.file.SetCellValue(PrintSheet, cell, value); err != nil {
			s.err = err
			return
		}

		if style != 0 {
			if err := s.file.SetCellStyle(PrintSheet, cell, cell, style); err != nil {
				s.err = err
				return
			}
		}
	}
}
