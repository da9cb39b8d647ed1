package trading

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade models one executed trade from encoredb.trades, joined to its
// instrument for the ticker. Quantity is signed: positive buys, negative
// sells. TradeID is a monotonically assigned sequence and is the tie-breaker
// for trades on the same date.
type Trade struct {
	TradeID       int64           `json:"trade_id"`
	InstrumentUID uuid.UUID       `json:"instrument_uid"`
	Ticker        string          `json:"ticker"`
	TradeDate     time.Time       `json:"trade_date"`
	Quantity      decimal.Decimal `json:"quantity"`
	Price         decimal.Decimal `json:"price"`

	// Gross execution costs are carried for display; the ledger engine
	// excludes them from P&L.
	GrossCommissions decimal.Decimal `json:"gross_commissions"`
	GrossFees        decimal.Decimal `json:"gross_fees"`
	GrossTaxes       decimal.Decimal `json:"gross_taxes"`
}
