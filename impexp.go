package sellerbook

import (
	"encoding/csv"
	"io"
	"strconv"
)

// This file contains the export format: spreadsheet-friendly CSV with a
// ';' separator, the dialect decimal-comma spreadsheets expect.

const csvSeparator = ';'

// ExportTransactions writes all transactions of the book as CSV, one row
// per transaction with the asset and period resolved to readable values.
func ExportTransactions(w io.Writer, b *Book) error {
	cw := csv.NewWriter(w)
	cw.Comma = csvSeparator

	if err := cw.Write([]string{"Id", "Month", "Asset", "Type", "Amount", "Unit price", "Total"}); err != nil {
		return err
	}
	for _, t := range b.Transactions() {
		asset, err := b.FindAsset(t.AssetID)
		if err != nil {
			return err
		}
		period, err := b.FindPeriod(t.PeriodID)
		if err != nil {
			return err
		}
		row := []string{
			t.ID.String(),
			period.Month.String(),
			asset.Name,
			asset.Type.String(),
			strconv.Itoa(t.Amount),
			t.UnitPrice.Plain(),
			t.Total().Plain(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportSummary writes a monthly summary as CSV: month, income, expense,
// goal and the signed distance to the goal.
func ExportSummary(w io.Writer, s *Summary) error {
	cw := csv.NewWriter(w)
	cw.Comma = csvSeparator

	if err := cw.Write([]string{"Month", "Income", "Expense", "Goal", "To goal"}); err != nil {
		return err
	}
	for _, row := range s.Rows {
		record := []string{
			row.Period.Month.String(),
			row.Income.Plain(),
			row.Expense.Plain(),
			row.Period.Goal.Plain(),
			row.ToGoal.Plain(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
