package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pharmadesk/pharmadesk/pkg/report"
)

func TestReceiptWrite(t *testing.T) {
	r := report.Receipt{
		Store:     "PharmaDesk",
		Customer:  "Bisi",
		CreatedAt: time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		Items: []report.ReceiptLine{
			{Name: "Aspirin 100mg", Quantity: 2, Price: 125, Total: 250},
			{Name: "Vitamin C", Quantity: 1, Price: 80, Total: 80},
		},
		Total:    330,
		Currency: "N",
	}

	var buf bytes.Buffer
	if err := r.Write(&buf); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"PharmaDesk",
		"Customer: Bisi",
		"10 Mar 2026 14:30",
		"Aspirin 100mg",
		"2 x N125.00",
		"N250.00",
		"N330.00",
		"Thank you for your patronage!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("receipt missing %q:\n%s", want, out)
		}
	}

	// TOTAL line is right-aligned within the 32-char slip.
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "TOTAL") {
			if len(line) != 32 {
				t.Errorf("TOTAL line is %d chars wide, want 32: %q", len(line), line)
			}
		}
	}
}

func TestMonthlyReportWritesPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monthly_sales_report.pdf")

	totals := []float64{100, 0, 250.5} // short series pads to December
	if err := report.MonthlyReport(totals, 2026, "N", path); err != nil {
		t.Fatalf("monthly report: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Error("output does not start with a PDF header")
	}
	if len(raw) < 500 {
		t.Errorf("suspiciously small PDF: %d bytes", len(raw))
	}
}
