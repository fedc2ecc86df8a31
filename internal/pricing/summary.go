package pricing

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// 列幅
const (
	colModel    = 14
	colVariant  = 12
	colQuantity = 5
	colPrice    = 10
	colTotal    = 11

	summaryWidth = colModel + colVariant + colQuantity + colPrice + colTotal + 4
	labelWidth   = 13
)

type SummaryFormat struct {
	Currency   string
	DateLayout string
	TimeLayout string
	// nilなら渡されたtime.Timeのロケーションのまま
	Location *time.Location
}

var DefaultSummaryFormat = SummaryFormat{
	Currency:   "$",
	DateLayout: "2006/01/02",
	TimeLayout: "15:04",
}

// 共有用の注文サマリー。時刻は呼び出し側が渡す（中で時計を読まない）。
func FormatOrderSummaryText(sellerName string, lines []Line, salespersonName string, at time.Time) string {
	return DefaultSummaryFormat.Format(sellerName, lines, salespersonName, at)
}

func (f SummaryFormat) Format(sellerName string, lines []Line, salespersonName string, at time.Time) string {
	if f.Location != nil {
		at = at.In(f.Location)
	}

	var b strings.Builder
	writeLine := func(s string) {
		b.WriteString(strings.TrimRight(s, " "))
		b.WriteByte('\n')
	}

	writeLine("ORDER SUMMARY")
	writeLine(PadEnd("Seller:", labelWidth) + sellerName)
	writeLine(PadEnd("Date:", labelWidth) + at.Format(f.DateLayout))
	writeLine(PadEnd("Time:", labelWidth) + at.Format(f.TimeLayout))
	writeLine(PadEnd("Salesperson:", labelWidth) + salespersonName)
	writeLine(strings.Repeat("=", summaryWidth))

	writeLine(row("Model", "Size/Color", "Qty", "Price", "Total"))
	writeLine(strings.Repeat("-", summaryWidth))

	for _, l := range lines {
		writeLine(row(
			l.DisplayName,
			l.Subtitle,
			strconv.FormatInt(l.Quantity, 10),
			f.money(l.UnitPrice),
			f.money(l.LineTotal),
		))
		if l.IsPack() {
			writeLine("  > " + Truncate(l.ProductName, summaryWidth-4))
		}
	}

	totals := ComputeSellerTotals(lines)
	writeLine(strings.Repeat("-", summaryWidth))
	writeLine(PadEnd("Total qty", labelWidth) + PadStart(strconv.FormatInt(totals.TotalQuantity, 10), summaryWidth-labelWidth))
	writeLine(PadEnd("TOTAL", labelWidth) + PadStart(f.money(totals.Subtotal), summaryWidth-labelWidth))

	return b.String()
}

func row(model, variant, qty, price, total string) string {
	return strings.Join([]string{
		PadEnd(model, colModel),
		PadEnd(variant, colVariant),
		PadStart(qty, colQuantity),
		PadStart(price, colPrice),
		PadStart(total, colTotal),
	}, " ")
}

func (f SummaryFormat) money(d decimal.Decimal) string {
	return f.Currency + d.StringFixed(2)
}
