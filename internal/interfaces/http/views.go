package http

import (
	appblotter "main/internal/application/service/blotter"
	"main/internal/domain/fifo"

	"github.com/shopspring/decimal"
)

// ledgerView is the wire shape of a replayed blotter ledger. All monetary
// fields are rendered to two fractional digits (round half-up) here, at the
// presentation edge; the engine itself stays exact.
type ledgerView struct {
	Ticker  string          `json:"ticker"`
	Rows    []ledgerRowView `json:"rows"`
	Summary summaryView     `json:"summary"`
}

type ledgerRowView struct {
	TradeDate        string `json:"trade_date"`
	SequenceID       int64  `json:"sequence_id"`
	Side             string `json:"side"`
	Quantity         string `json:"quantity"`
	Price            string `json:"price"`
	TradeNotional    string `json:"trade_notional"`
	GrossNotional    string `json:"gross_notional"`
	RunningPosition  string `json:"running_position"`
	AvgCostBasis     string `json:"avg_cost_basis"`
	RealizedPnLTrade string `json:"realized_pnl_trade"`
	RealizedPnLTotal string `json:"realized_pnl_total"`
	UnrealizedPnL    string `json:"unrealized_pnl"`
	TotalPnL         string `json:"total_pnl"`
}

type summaryView struct {
	FinalPosition    string `json:"final_position"`
	RealizedPnLTotal string `json:"realized_pnl_total"`
	UnrealizedPnL    string `json:"unrealized_pnl"`
	TotalPnL         string `json:"total_pnl"`
	OpenLongLots     int    `json:"open_long_lots"`
	OpenShortLots    int    `json:"open_short_lots"`
}

func toLedgerView(ledger *appblotter.Ledger) ledgerView {
	rows := make([]ledgerRowView, 0, len(ledger.Rows))
	for _, row := range ledger.Rows {
		rows = append(rows, ledgerRowView{
			TradeDate:        row.Date.Format("2006-01-02"),
			SequenceID:       row.Sequence,
			Side:             string(row.Side),
			Quantity:         formatQuantity(row.Quantity),
			Price:            formatAmount(row.Price),
			TradeNotional:    formatAmount(row.TradeNotional),
			GrossNotional:    formatAmount(row.GrossNotional),
			RunningPosition:  formatQuantity(row.Position),
			AvgCostBasis:     formatAmount(avgCostBasis(row)),
			RealizedPnLTrade: formatAmount(row.RealizedPnL),
			RealizedPnLTotal: formatAmount(row.CumulativeRealizedPnL),
			UnrealizedPnL:    formatAmount(row.UnrealizedPnL),
			TotalPnL:         formatAmount(row.TotalPnL()),
		})
	}
	return ledgerView{
		Ticker: ledger.Ticker,
		Rows:   rows,
		Summary: summaryView{
			FinalPosition:    formatQuantity(ledger.Summary.FinalPosition),
			RealizedPnLTotal: formatAmount(ledger.Summary.RealizedPnL),
			UnrealizedPnL:    formatAmount(ledger.Summary.UnrealizedPnL),
			TotalPnL:         formatAmount(ledger.Summary.TotalPnL),
			OpenLongLots:     ledger.Summary.OpenLongLots,
			OpenShortLots:    ledger.Summary.OpenShortLots,
		},
	}
}

// avgCostBasis recomputes the average open cost over long lots from the row
// fields alone: unrealized = position*price - cost, so cost/position is
// price - unrealized/position. Flat or short rows report zero, matching the
// original blotter display.
func avgCostBasis(row fifo.Row) decimal.Decimal {
	if !row.Position.IsPositive() {
		return decimal.Zero
	}
	return row.Price.Sub(row.UnrealizedPnL.Div(row.Position))
}

// formatAmount renders a monetary amount with two fractional digits,
// rounding half up.
func formatAmount(value decimal.Decimal) string {
	return value.StringFixed(2)
}

// formatQuantity renders whole quantities without a fractional part and
// everything else with two digits, like the original blotter's smart
// formatter.
func formatQuantity(value decimal.Decimal) string {
	if value.IsInteger() {
		return value.StringFixed(0)
	}
	return value.StringFixed(2)
}
