package export

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/MrJamesThe3rd/buxfer/internal/dates"
	"github.com/MrJamesThe3rd/buxfer/internal/expense"
)

const sheetName = "Expenses"

// numFmtFixed2 is the built-in "0.00" number format.
const numFmtFixed2 = 2

// WriteExpensesXLSX writes expenses as a single-sheet workbook with the same columns as the CSV export.
func WriteExpensesXLSX(w io.Writer, expenses []*expense.Expense) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := make([]any, len(csvHeader))
	for i, h := range csvHeader {
		header[i] = h
	}

	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		row := []any{
			dates.Format(e.Date),
			e.Description,
			e.Category,
			decimal.New(e.Amount, -2).InexactFloat64(),
		}

		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	style, err := f.NewStyle(&excelize.Style{NumFmt: numFmtFixed2})
	if err != nil {
		return fmt.Errorf("creating amount style: %w", err)
	}

	if len(expenses) > 0 {
		last := fmt.Sprintf("D%d", len(expenses)+1)
		if err := f.SetCellStyle(sheetName, "D2", last, style); err != nil {
			return fmt.Errorf("styling amounts: %w", err)
		}
	}

	if err := f.SetColWidth(sheetName, "B", "B", 40); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}
