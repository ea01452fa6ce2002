// Package receipt renders bills as the fixed-width text receipt handed to a table.
package receipt

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"encore.app/billing/model"
)

// Width is the printed width of a receipt, borders included.
const Width = 44

const inner = Width - 2

type Receipt struct {
	Restaurant string
	BillID     string
	BillDate   time.Time
	TaxLabel   string
	Lines      []model.BillLine
	TotalCents int64
	TaxCents   int64
	FinalCents int64
}

// FromBill builds the receipt for a computed or stored bill.
func FromBill(restaurant string, bill *model.Bill) Receipt {
	return Receipt{
		Restaurant: restaurant,
		BillID:     bill.ID,
		BillDate:   bill.BillDate,
		TaxLabel:   "including GST 10%",
		Lines:      bill.Lines,
		TotalCents: bill.TotalAmountCents,
		TaxCents:   bill.TaxAmountCents,
		FinalCents: bill.FinalAmountCents,
	}
}

// Render writes the receipt to w. It has no other side effects.
func Render(w io.Writer, r Receipt) error {
	_, err := io.WriteString(w, String(r))
	return err
}

func String(r Receipt) string {
	var b strings.Builder
	rule := strings.Repeat("-", Width)

	b.WriteString(rule + "\n")
	row(&b, center("Welcome to "+r.Restaurant))
	header(&b, r.BillDate.Format("2006-01-02"), "recpt: "+r.BillID)
	b.WriteString(rule + "\n")
	row(&b, fmt.Sprintf("%-4s %-20s %4s %10s", "SR.", "Menu", "qnt", "price"))
	for i, line := range r.Lines {
		row(&b, fmt.Sprintf("%-4d %-20s %4d %10s", i+1, clip(line.Name, 20), line.Quantity, Money(line.TotalCents())))
	}
	b.WriteString(rule + "\n")
	row(&b, fmt.Sprintf("%-17s = %12s", "Total amount", Money(r.TotalCents)))
	row(&b, fmt.Sprintf("%-17s = %12s", r.TaxLabel, Money(r.TaxCents)))
	row(&b, fmt.Sprintf("%-17s = %12s", "Final amount", Money(r.FinalCents)))
	b.WriteString(rule + "\n")

	return b.String()
}

// Money formats cents as a decimal amount with two places, e.g. 3850 -> "38.50".
func Money(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// header keeps date and receipt id on one row when they fit. Otherwise the id
// moves below the date and wraps, so it is never clipped.
func header(b *strings.Builder, date, id string) {
	if line := fmt.Sprintf("%-10s %30s", date, id); len([]rune(line)) <= inner {
		row(b, line)
		return
	}
	row(b, date)
	for _, part := range wrap(id, inner) {
		row(b, fmt.Sprintf("%*s", inner, part))
	}
}

func wrap(s string, max int) []string {
	r := []rune(s)
	var parts []string
	for len(r) > max {
		parts = append(parts, string(r[:max]))
		r = r[max:]
	}
	return append(parts, string(r))
}

func row(b *strings.Builder, content string) {
	b.WriteString("|")
	b.WriteString(clip(content, inner))
	if n := len([]rune(content)); n < inner {
		b.WriteString(strings.Repeat(" ", inner-n))
	}
	b.WriteString("|\n")
}

func center(s string) string {
	n := len([]rune(s))
	if n >= inner {
		return s
	}
	return strings.Repeat(" ", (inner-n)/2) + s
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
