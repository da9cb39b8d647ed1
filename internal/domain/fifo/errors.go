package fifo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InputError reports a trade rejected during pre-replay validation. The
// engine never emits a row for a tape it could not validate.
type InputError struct {
	Date     time.Time
	Sequence int64
	Reason   string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid trade (date=%s, sequence=%d): %s",
		e.Date.Format("2006-01-02"), e.Sequence, e.Reason)
}

// InvariantError reports a divergence between the running position and the
// signed sum of open-lot quantities after processing a trade. It indicates a
// defect in the replay itself, not a data problem, and is fatal.
type InvariantError struct {
	Date     time.Time
	Sequence int64
	Position decimal.Decimal
	LotTotal decimal.Decimal
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ledger invariant violated after trade (date=%s, sequence=%d): position=%s open-lot total=%s",
		e.Date.Format("2006-01-02"), e.Sequence, e.Position, e.LotTotal)
}
