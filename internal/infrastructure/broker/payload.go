package broker

import (
	"errors"
	"time"

	trading "main/internal/domain/entity/trading"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TradeMessage is the wire payload published for one executed trade from the
// OMS export. TradeID is absent on purpose: the database sequence assigns it
// on insert, which is what makes it a valid same-date tie-breaker.
type TradeMessage struct {
	InstrumentUID    uuid.UUID       `json:"instrument_uid"`
	Ticker           string          `json:"ticker,omitempty"`
	TradeDate        time.Time       `json:"trade_date"`
	Quantity         decimal.Decimal `json:"quantity"`
	Price            decimal.Decimal `json:"price"`
	GrossCommissions decimal.Decimal `json:"gross_commissions"`
	GrossFees        decimal.Decimal `json:"gross_fees"`
	GrossTaxes       decimal.Decimal `json:"gross_taxes"`
}

// Validate rejects payloads the ledger engine would refuse later anyway, so
// bad trades never reach the database.
func (m *TradeMessage) Validate() error {
	switch {
	case m.InstrumentUID == uuid.Nil:
		return errors.New("instrument uid is required")
	case m.TradeDate.IsZero():
		return errors.New("trade date is required")
	case m.Quantity.IsZero():
		return errors.New("quantity is zero")
	case !m.Price.IsPositive():
		return errors.New("price is not positive")
	}
	return nil
}

func (m *TradeMessage) toDomain() trading.Trade {
	return trading.Trade{
		InstrumentUID:    m.InstrumentUID,
		Ticker:           m.Ticker,
		TradeDate:        m.TradeDate,
		Quantity:         m.Quantity,
		Price:            m.Price,
		GrossCommissions: m.GrossCommissions,
		GrossFees:        m.GrossFees,
		GrossTaxes:       m.GrossTaxes,
	}
}
