package report

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const receiptWidth = 32

// ReceiptLine is one purchased item on the receipt.
type ReceiptLine struct {
	Name     string
	Quantity int
	Price    float64
	Total    float64
}

// Receipt is the printable slip produced right after an order is placed.
type Receipt struct {
	Store     string
	Customer  string
	CreatedAt time.Time
	Items     []ReceiptLine
	Total     float64
	Currency  string
}

// Write renders the receipt in the narrow monospace layout the till
// prints: centred store name, dashed rules, one line per item, grand
// total, thank-you footer.
func (r Receipt) Write(w io.Writer) error {
	rule := strings.Repeat("-", receiptWidth)

	var b strings.Builder
	b.WriteString(center(r.Store, receiptWidth) + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "Customer: %s\n", r.Customer)
	fmt.Fprintf(&b, "Date:     %s\n", r.CreatedAt.Format("02 Jan 2006 15:04"))
	b.WriteString(rule + "\n")

	for _, item := range r.Items {
		b.WriteString(truncate(item.Name, receiptWidth) + "\n")
		left := fmt.Sprintf("  %d x %s%.2f", item.Quantity, r.Currency, item.Price)
		right := fmt.Sprintf("%s%.2f", r.Currency, item.Total)
		b.WriteString(left + padLeft(right, receiptWidth-len(left)) + "\n")
	}

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "TOTAL%s\n", padLeft(fmt.Sprintf("%s%.2f", r.Currency, r.Total), receiptWidth-5))
	b.WriteString(rule + "\n")
	b.WriteString(center("Thank you for your patronage!", receiptWidth) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	return s[:width-1] + "…"
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return " " + s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
