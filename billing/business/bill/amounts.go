package bill

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"encore.app/billing/model"
)

// TaxRate is the flat GST rate applied to every bill.
var TaxRate = decimal.RequireFromString("0.10")

// Amounts is the money breakdown of a bill, in cents.
type Amounts struct {
	TotalCents int64
	TaxCents   int64
	FinalCents int64
}

// ComputeAmounts sums quantity x price over the lines and applies TaxRate,
// rounding the tax half away from zero to whole cents.
func ComputeAmounts(lines []model.BillLine) Amounts {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromInt(line.PriceCents).Mul(decimal.NewFromInt32(line.Quantity)))
	}
	tax := total.Mul(TaxRate).Round(0)

	return Amounts{
		TotalCents: total.IntPart(),
		TaxCents:   tax.IntPart(),
		FinalCents: total.Add(tax).IntPart(),
	}
}

// NewBillID derives the bill identifier from the table and the billing instant.
// Microsecond resolution matches what Postgres stores for bill_date.
func NewBillID(tableID int32, at time.Time) string {
	return fmt.Sprintf("Bill_%d_%d", tableID, at.UnixMicro())
}

// BillWindow returns the range of order timestamps a bill taken at now covers:
// midnight of now's day up to and including now.
func BillWindow(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), now
}
