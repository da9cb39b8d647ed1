package fifo

import "github.com/shopspring/decimal"

// lot is a discrete slice of open inventory with a fixed acquisition price.
type lot struct {
	// remaining is strictly positive while the lot sits in a queue; the lot
	// is popped the instant it reaches zero.
	remaining decimal.Decimal
	// cost is the price the lot was opened at, immutable for its life.
	cost decimal.Decimal
}

// lotQueue is an ordered queue of open lots over a slice arena with a head
// cursor, so popping the oldest lot is O(1) instead of re-slicing the front.
type lotQueue struct {
	lots []lot
	head int
}

func (q *lotQueue) Empty() bool { return q.head >= len(q.lots) }

func (q *lotQueue) Len() int { return len(q.lots) - q.head }

// Front returns the oldest open lot. Callers must check Empty first.
func (q *lotQueue) Front() *lot { return &q.lots[q.head] }

func (q *lotQueue) Push(l lot) { q.lots = append(q.lots, l) }

func (q *lotQueue) PopFront() {
	q.lots[q.head] = lot{}
	q.head++
	if q.head == len(q.lots) {
		q.lots = q.lots[:0]
		q.head = 0
	}
}

// Total sums the remaining quantity of every open lot.
func (q *lotQueue) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range q.lots[q.head:] {
		total = total.Add(l.remaining)
	}
	return total
}

// MarkLong marks every open lot as long inventory at the given price:
// remaining * (price - cost), summed.
func (q *lotQueue) MarkLong(price decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, l := range q.lots[q.head:] {
		total = total.Add(l.remaining.Mul(price.Sub(l.cost)))
	}
	return total
}

// MarkShort marks every open lot as short inventory at the given price:
// remaining * (cost - price), summed.
func (q *lotQueue) MarkShort(price decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, l := range q.lots[q.head:] {
		total = total.Add(l.remaining.Mul(l.cost.Sub(price)))
	}
	return total
}
