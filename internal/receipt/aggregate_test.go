package receipt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

func line(name string, qty int, unit int64) model.OrderItem {
	price := decimal.NewFromInt(unit)
	return model.OrderItem{
		MenuItemID: uuid.New(),
		Name:       name,
		Quantity:   qty,
		UnitPrice:  price,
		LineTotal:  price.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func order(total int64, items ...model.OrderItem) model.Order {
	return model.Order{
		ID:     uuid.New(),
		Items:  items,
		Total:  decimal.NewFromInt(total),
		Status: model.StatusCompleted,
	}
}

func TestAggregateItemsMergesSameNameAndPrice(t *testing.T) {
	orders := []model.Order{
		order(40, line("Tea", 2, 20)),
		order(40, line("Tea", 2, 20)),
	}

	got := AggregateItems(orders)
	require.Len(t, got, 1)
	assert.Equal(t, "Tea", got[0].Name)
	assert.Equal(t, 4, got[0].Quantity)
	assert.True(t, got[0].Total.Equal(decimal.NewFromInt(80)), "got %s", got[0].Total)
}

func TestAggregateItemsSplitsOnPriceChange(t *testing.T) {
	// Same name at a different unit price is a different rollup row: the
	// snapshot price, not the item id, is the identity.
	orders := []model.Order{
		order(20, line("Tea", 1, 20)),
		order(25, line("Tea", 1, 25)),
	}

	got := AggregateItems(orders)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Quantity)
	assert.Equal(t, 1, got[1].Quantity)
}

func TestAggregateItemsKeepsFirstOccurrenceOrder(t *testing.T) {
	orders := []model.Order{
		order(55, line("Dosa", 1, 35), line("Tea", 1, 20)),
		order(40, line("Tea", 1, 20), line("Coffee", 1, 20)),
	}

	got := AggregateItems(orders)
	require.Len(t, got, 3)
	assert.Equal(t, "Dosa", got[0].Name)
	assert.Equal(t, "Tea", got[1].Name)
	assert.Equal(t, "Coffee", got[2].Name)
	assert.Equal(t, 2, got[1].Quantity)
}

func TestCombinedTotalsMayDisagree(t *testing.T) {
	// The order total carries an adjustment the itemized lines don't; both
	// figures are surfaced without reconciliation.
	orders := []model.Order{
		order(50, line("Tea", 2, 20)), // items sum to 40, order says 50
	}

	items := AggregateItems(orders)
	assert.True(t, ItemsTotal(items).Equal(decimal.NewFromInt(40)))
	assert.True(t, CombinedTotal(orders).Equal(decimal.NewFromInt(50)))
}

func TestSummarizeAccountPrefersServerBalance(t *testing.T) {
	balance := decimal.NewFromInt(120)
	ledger := model.Ledger{
		TotalOrdersAmount:   decimal.NewFromInt(500),
		TotalPaymentsAmount: decimal.NewFromInt(300),
		Balance:             &balance,
	}

	got := SummarizeAccount(ledger)
	assert.Equal(t, SourceLedger, got.Source)
	// Server figure wins even though orders − payments says 200.
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(120)))
}

func TestSummarizeAccountDerivesWhenAbsent(t *testing.T) {
	ledger := model.Ledger{
		TotalOrdersAmount:   decimal.NewFromInt(500),
		TotalPaymentsAmount: decimal.NewFromInt(300),
	}

	got := SummarizeAccount(ledger)
	assert.Equal(t, SourceDerived, got.Source)
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(200)))
}

func TestSummarizeAccountClampsOverpayment(t *testing.T) {
	ledger := model.Ledger{
		TotalOrdersAmount:   decimal.NewFromInt(100),
		TotalPaymentsAmount: decimal.NewFromInt(150),
	}

	got := SummarizeAccount(ledger)
	assert.Equal(t, SourceDerived, got.Source)
	assert.True(t, got.Balance.IsZero(), "derived balance never goes negative, got %s", got.Balance)
}

func TestRenderKOTOmitsPrices(t *testing.T) {
	o := order(40, line("Tea", 2, 20))
	o.Number = "ORD-0042"
	o.CustomerName = "Asha"

	doc, err := RenderKOT("Cafe Tamarind", o)
	require.NoError(t, err)
	assert.Contains(t, doc, "Tea")
	assert.Contains(t, doc, "ORD-0042")
	assert.NotContains(t, doc, "20.00", "kitchen tickets carry no prices")
}

func TestRenderBillShowsTotals(t *testing.T) {
	o := order(40, line("Tea", 2, 20))
	o.Number = "ORD-0042"

	doc, err := RenderBill("Cafe Tamarind", o)
	require.NoError(t, err)
	assert.Contains(t, doc, "Cafe Tamarind")
	assert.Contains(t, doc, "40")
}

func TestRenderCombinedBillShowsBothTotals(t *testing.T) {
	orders := []model.Order{
		order(50, line("Tea", 2, 20)),
		order(35, line("Dosa", 1, 35)),
	}

	doc, err := RenderCombinedBill("Cafe Tamarind", "Asha", orders)
	require.NoError(t, err)
	assert.Contains(t, doc, "Asha")
	assert.Contains(t, doc, "75") // items total
	assert.Contains(t, doc, "85") // sum of order totals
}
