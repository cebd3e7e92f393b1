package receipt

// Self-contained HTML documents handed to the host's print facility. Each
// document carries its own minimal styling so it renders the same no matter
// which browsing context opens it.

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/ACK1998/cafe-tamarind-sub001/internal/model"
)

const docStyle = `<style>
body{font-family:monospace;margin:0;padding:12px;max-width:320px}
h1{font-size:15px;text-align:center;margin:0 0 2px}
.meta{font-size:11px;margin:6px 0;border-bottom:1px dashed #000;padding-bottom:6px}
table{width:100%;border-collapse:collapse;font-size:11px}
th{text-align:left;border-bottom:1px solid #000;padding:2px 0}
td{padding:2px 0}
.num{text-align:right}
.totals{border-top:1px dashed #000;margin-top:6px;padding-top:6px;font-size:12px}
.grand{font-weight:bold;font-size:13px}
.footer{text-align:center;font-size:10px;margin-top:10px}
</style>`

var kotTmpl = template.Must(template.New("kot").Parse(`<!DOCTYPE html>
<html><head><title>KOT {{.Number}}</title>` + docStyle + `</head><body>
<h1>{{.CafeName}} — KITCHEN</h1>
<div class="meta">
KOT for order {{.Number}}<br>
{{.MealTime}} · {{.PlacedAt}}{{if .ScheduledFor}}<br>Scheduled: {{.ScheduledFor}}{{end}}
</div>
<table>
<tr><th>Item</th><th class="num">Qty</th></tr>
{{range .Items}}<tr><td>{{.Name}}</td><td class="num">x{{.Quantity}}</td></tr>
{{end}}</table>
{{if .Instructions}}<div class="totals">Note: {{.Instructions}}</div>{{end}}
<div class="footer">-- end of ticket --</div>
</body></html>`))

var billTmpl = template.Must(template.New("bill").Parse(`<!DOCTYPE html>
<html><head><title>Bill {{.Number}}</title>` + docStyle + `</head><body>
<h1>{{.CafeName}}</h1>
<div class="meta">
Order {{.Number}} · {{.PlacedAt}}<br>
{{.CustomerName}}{{if .CustomerPhone}} · {{.CustomerPhone}}{{end}}{{if .InHouse}}<br>In-house pricing{{end}}
</div>
<table>
<tr><th>Item</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr>
{{range .Items}}<tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.LineTotal}}</td></tr>
{{end}}</table>
<div class="totals grand">TOTAL: {{.Total}}</div>
<div class="footer">Thank you for visiting!</div>
</body></html>`))

var combinedTmpl = template.Must(template.New("combined").Parse(`<!DOCTYPE html>
<html><head><title>Combined Bill</title>` + docStyle + `</head><body>
<h1>{{.CafeName}}</h1>
<div class="meta">
Combined bill · {{.PrintedAt}}<br>
{{.CustomerName}} · {{.OrderCount}} orders ({{.OrderNumbers}})
</div>
<table>
<tr><th>Item</th><th class="num">Qty</th><th class="num">Rate</th><th class="num">Amount</th></tr>
{{range .Items}}<tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.UnitPrice}}</td><td class="num">{{.Total}}</td></tr>
{{end}}</table>
<div class="totals">
Items total: {{.ItemsTotal}}<br>
<span class="grand">Orders total: {{.OrdersTotal}}</span>
</div>
<div class="footer">Totals may differ when orders carry adjustments.</div>
</body></html>`))

type docLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	LineTotal string
}

// RenderKOT produces the kitchen order ticket document — items and
// quantities only, no prices.
func RenderKOT(cafeName string, order model.Order) (string, error) {
	data := struct {
		CafeName     string
		Number       string
		MealTime     string
		PlacedAt     string
		ScheduledFor string
		Instructions string
		Items        []model.OrderItem
	}{
		CafeName:     cafeName,
		Number:       order.Number,
		MealTime:     string(order.MealTime),
		PlacedAt:     order.CreatedAt.Format("02 Jan 2006 15:04"),
		Instructions: order.Instructions,
		Items:        order.Items,
	}
	if order.ScheduledFor != nil {
		data.ScheduledFor = order.ScheduledFor.Format("02 Jan 2006 15:04")
	}
	var sb strings.Builder
	if err := kotTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render kot: %w", err)
	}
	return sb.String(), nil
}

// RenderBill produces the single-order bill document.
func RenderBill(cafeName string, order model.Order) (string, error) {
	lines := make([]docLine, 0, len(order.Items))
	for _, item := range order.Items {
		lines = append(lines, docLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			LineTotal: item.LineTotal.StringFixed(2),
		})
	}
	data := struct {
		CafeName      string
		Number        string
		PlacedAt      string
		CustomerName  string
		CustomerPhone string
		InHouse       bool
		Items         []docLine
		Total         string
	}{
		CafeName:      cafeName,
		Number:        order.Number,
		PlacedAt:      order.CreatedAt.Format("02 Jan 2006 15:04"),
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		InHouse:       order.Tier == model.TierInHouse,
		Items:         lines,
		Total:         order.Total.StringFixed(2),
	}
	var sb strings.Builder
	if err := billTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render bill: %w", err)
	}
	return sb.String(), nil
}

type combinedLine struct {
	Name      string
	Quantity  int
	UnitPrice string
	Total     string
}

// RenderCombinedBill aggregates several orders into one document. Both the
// items total and the orders total are shown — they may legitimately differ.
func RenderCombinedBill(cafeName, customerName string, orders []model.Order) (string, error) {
	agg := AggregateItems(orders)
	lines := make([]combinedLine, 0, len(agg))
	for _, item := range agg {
		lines = append(lines, combinedLine{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.StringFixed(2),
			Total:     item.Total.StringFixed(2),
		})
	}
	numbers := make([]string, 0, len(orders))
	for _, order := range orders {
		numbers = append(numbers, order.Number)
	}
	data := struct {
		CafeName     string
		CustomerName string
		PrintedAt    string
		OrderCount   int
		OrderNumbers string
		Items        []combinedLine
		ItemsTotal   string
		OrdersTotal  string
	}{
		CafeName:     cafeName,
		CustomerName: customerName,
		PrintedAt:    time.Now().Format("02 Jan 2006 15:04"),
		OrderCount:   len(orders),
		OrderNumbers: strings.Join(numbers, ", "),
		Items:        lines,
		ItemsTotal:   ItemsTotal(agg).StringFixed(2),
		OrdersTotal:  CombinedTotal(orders).StringFixed(2),
	}
	var sb strings.Builder
	if err := combinedTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render combined bill: %w", err)
	}
	return sb.String(), nil
}
