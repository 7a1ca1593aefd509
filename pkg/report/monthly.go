// Package report renders the two client-side documents: the monthly
// sales PDF and the order receipt. Both are one-shot transforms over
// in-memory figures: no state, no network.
package report

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthlyReport builds the monthly sales PDF: title, year, grand total,
// then a Month/Total grid. totals is the January-first series; missing
// trailing months count as zero. The document is written to path.
func MonthlyReport(totals []float64, year int, currency, path string) error {
	series := make([]float64, 12)
	copy(series, totals)

	grand := 0.0
	for _, v := range series {
		grand += v
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Monthly Sales Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Year: %d", year))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(fmt.Sprintf("Total Sales: %s%.2f", currency, grand)))
	pdf.Ln(10)

	// Table header
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(60, 90, 255)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(90, 8, "Month", "1", 0, "L", true, 0, "")
	pdf.CellFormat(90, 8, "Total Sales", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	for i, name := range months {
		pdf.CellFormat(90, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(90, 8, tr(fmt.Sprintf("%s%.2f", currency, series[i])), "1", 1, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return nil
}
