// Package fifo implements the first-in-first-out trade ledger engine behind
// the trade blotter. It replays one instrument's chronological trade tape,
// matching closing activity against the oldest opposite-side inventory lot
// first, and emits one ledger row per trade plus a final summary.
//
// The engine is a pure function of its input: no I/O, no clock, no shared
// state. Arithmetic is decimal throughout; rounding happens only at the
// presentation layer.
package fifo

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side classifies the economic effect of a trade. The label is fixed by the
// state of the opposite-side queue at the moment the trade is processed,
// before any of that trade's matching.
type Side string

const (
	SideOpenLong   Side = "Open Long"
	SideCloseLong  Side = "Close Long"
	SideOpenShort  Side = "Open Short"
	SideCoverShort Side = "Cover Short"
)

// Trade is one executed trade on the tape. Quantity is signed: positive buys,
// negative sells. Sequence breaks ties between trades on the same date and
// must be monotonically assigned at ingestion.
type Trade struct {
	Date     time.Time
	Sequence int64
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// Row is one ledger line, emitted per input trade and never mutated after
// emission.
type Row struct {
	Date     time.Time
	Sequence int64
	Quantity decimal.Decimal
	Price    decimal.Decimal
	Side     Side

	// TradeNotional is quantity times price, signed.
	TradeNotional decimal.Decimal
	// GrossNotional is the absolute running position marked at this trade's
	// price, unsigned.
	GrossNotional decimal.Decimal
	// Position is the signed cumulative quantity after this trade.
	Position decimal.Decimal
	// RealizedPnL is the P&L crystallized by this trade's matching only.
	RealizedPnL decimal.Decimal
	// CumulativeRealizedPnL is the running sum of realized P&L up to and
	// including this trade.
	CumulativeRealizedPnL decimal.Decimal
	// UnrealizedPnL marks every lot still open after this trade at this
	// trade's price. Historical rows keep their at-the-time mark; they are
	// not re-marked to later prices.
	UnrealizedPnL decimal.Decimal
}

// TotalPnL is realized plus unrealized as of this row.
func (r Row) TotalPnL() decimal.Decimal {
	return r.CumulativeRealizedPnL.Add(r.UnrealizedPnL)
}

// Summary captures the terminal state of a replay. Unrealized P&L is marked
// at the last trade's price.
type Summary struct {
	FinalPosition decimal.Decimal
	RealizedPnL   decimal.Decimal
	UnrealizedPnL decimal.Decimal
	TotalPnL      decimal.Decimal
	OpenLongLots  int
	OpenShortLots int
}

// BuildLedger replays trades in the order given and returns one ledger row
// per trade plus the terminal summary. The caller must supply the tape
// already sorted ascending by (date, sequence); the whole input is validated
// before any state mutation, so a rejected tape never yields a partial
// ledger.
func BuildLedger(trades []Trade) ([]Row, Summary, error) {
	if err := validate(trades); err != nil {
		return nil, Summary{}, err
	}

	var (
		longs       lotQueue
		shorts      lotQueue
		position    decimal.Decimal
		cumRealized decimal.Decimal
	)

	rows := make([]Row, 0, len(trades))
	for _, trade := range trades {
		var side Side
		var realized decimal.Decimal

		if trade.Quantity.IsPositive() {
			side = SideOpenLong
			if !shorts.Empty() {
				side = SideCoverShort
			}
			remaining := trade.Quantity
			for remaining.IsPositive() && !shorts.Empty() {
				l := shorts.Front()
				matched := decimal.Min(l.remaining, remaining)
				// Short P&L: profit when the price fell since the short
				// was opened.
				realized = realized.Add(matched.Mul(l.cost.Sub(trade.Price)))
				l.remaining = l.remaining.Sub(matched)
				remaining = remaining.Sub(matched)
				if l.remaining.IsZero() {
					shorts.PopFront()
				}
			}
			if remaining.IsPositive() {
				longs.Push(lot{remaining: remaining, cost: trade.Price})
			}
		} else {
			side = SideOpenShort
			if !longs.Empty() {
				side = SideCloseLong
			}
			remaining := trade.Quantity.Neg()
			for remaining.IsPositive() && !longs.Empty() {
				l := longs.Front()
				matched := decimal.Min(l.remaining, remaining)
				realized = realized.Add(matched.Mul(trade.Price.Sub(l.cost)))
				l.remaining = l.remaining.Sub(matched)
				remaining = remaining.Sub(matched)
				if l.remaining.IsZero() {
					longs.PopFront()
				}
			}
			if remaining.IsPositive() {
				shorts.Push(lot{remaining: remaining, cost: trade.Price})
			}
		}

		position = position.Add(trade.Quantity)
		cumRealized = cumRealized.Add(realized)

		if lotTotal := longs.Total().Sub(shorts.Total()); !position.Equal(lotTotal) {
			return nil, Summary{}, &InvariantError{
				Date:     trade.Date,
				Sequence: trade.Sequence,
				Position: position,
				LotTotal: lotTotal,
			}
		}

		unrealized := longs.MarkLong(trade.Price).Add(shorts.MarkShort(trade.Price))

		rows = append(rows, Row{
			Date:                  trade.Date,
			Sequence:              trade.Sequence,
			Quantity:              trade.Quantity,
			Price:                 trade.Price,
			Side:                  side,
			TradeNotional:         trade.Quantity.Mul(trade.Price),
			GrossNotional:         position.Abs().Mul(trade.Price),
			Position:              position,
			RealizedPnL:           realized,
			CumulativeRealizedPnL: cumRealized,
			UnrealizedPnL:         unrealized,
		})
	}

	summary := Summary{
		FinalPosition: position,
		RealizedPnL:   cumRealized,
		OpenLongLots:  longs.Len(),
		OpenShortLots: shorts.Len(),
	}
	if len(rows) > 0 {
		summary.UnrealizedPnL = rows[len(rows)-1].UnrealizedPnL
	}
	summary.TotalPnL = summary.RealizedPnL.Add(summary.UnrealizedPnL)

	return rows, summary, nil
}

func validate(trades []Trade) error {
	for i, trade := range trades {
		switch {
		case trade.Quantity.IsZero():
			return &InputError{Date: trade.Date, Sequence: trade.Sequence, Reason: "quantity is zero"}
		case !trade.Price.IsPositive():
			return &InputError{Date: trade.Date, Sequence: trade.Sequence, Reason: "price is not positive"}
		}
		if i == 0 {
			continue
		}
		prev := trades[i-1]
		if trade.Date.Before(prev.Date) ||
			(trade.Date.Equal(prev.Date) && trade.Sequence <= prev.Sequence) {
			return &InputError{Date: trade.Date, Sequence: trade.Sequence, Reason: "tape is not sorted by (date, sequence)"}
		}
	}
	return nil
}
