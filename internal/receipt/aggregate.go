// Package receipt produces the printable documents: kitchen order tickets,
// single-order bills, and multi-order combined bills, plus the rollup math
// behind them.
package receipt

import (
	"github.com/shopspring/decimal"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

// AggregatedItem is one rollup row on a combined bill.
type AggregatedItem struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// AggregateItems groups order lines by the composite key (name, unit price)
// and sums quantity and line total per group. Grouping by item id would
// split historical lines whose item was since renamed or re-created, so the
// snapshot fields are the key. Output keeps insertion order of first
// occurrence.
func AggregateItems(orders []model.Order) []AggregatedItem {
	type key struct {
		name  string
		price string
	}
	index := make(map[key]int)
	out := []AggregatedItem{}

	for _, order := range orders {
		for _, line := range order.Items {
			k := key{name: line.Name, price: line.UnitPrice.String()}
			i, ok := index[k]
			if !ok {
				i = len(out)
				index[k] = i
				out = append(out, AggregatedItem{Name: line.Name, UnitPrice: line.UnitPrice})
			}
			out[i].Quantity += line.Quantity
			out[i].Total = out[i].Total.Add(line.LineTotal)
		}
	}
	return out
}

// CombinedTotal is the sum of order totals. It is surfaced alongside the sum
// of aggregated line totals without reconciliation — orders may carry
// adjustments not reflected in itemized lines, and both figures are shown.
func CombinedTotal(orders []model.Order) decimal.Decimal {
	total := decimal.Zero
	for _, order := range orders {
		total = total.Add(order.Total)
	}
	return total
}

// ItemsTotal sums the aggregated line totals.
func ItemsTotal(items []AggregatedItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Total)
	}
	return total
}

// BalanceSource labels which figure an account summary's balance came from.
type BalanceSource string

const (
	// SourceLedger — the server-supplied ledger balance, authoritative.
	SourceLedger BalanceSource = "ledger"
	// SourceDerived — recomputed client-side because the wire omitted it.
	SourceDerived BalanceSource = "derived"
)

// AccountSummary is the outstanding-balance view for a ledger screen.
type AccountSummary struct {
	OrdersTotal   decimal.Decimal `json:"orders_total"`
	PaymentsTotal decimal.Decimal `json:"payments_total"`
	Balance       decimal.Decimal `json:"balance"`
	Source        BalanceSource   `json:"balance_source"`
}

// SummarizeAccount prefers the server-reported balance; when absent it falls
// back to max(orders − payments, 0) and labels the result so the UI can say
// which source it is showing.
func SummarizeAccount(l model.Ledger) AccountSummary {
	summary := AccountSummary{
		OrdersTotal:   l.TotalOrdersAmount,
		PaymentsTotal: l.TotalPaymentsAmount,
	}
	if l.Balance != nil {
		summary.Balance = *l.Balance
		summary.Source = SourceLedger
		return summary
	}
	derived := l.TotalOrdersAmount.Sub(l.TotalPaymentsAmount)
	if derived.IsNegative() {
		derived = decimal.Zero
	}
	summary.Balance = derived
	summary.Source = SourceDerived
	return summary
}
