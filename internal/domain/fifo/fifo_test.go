package fifo

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day0 = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func tape(t *testing.T, legs ...[2]string) []Trade {
	t.Helper()
	trades := make([]Trade, 0, len(legs))
	for i, leg := range legs {
		qty, err := decimal.NewFromString(leg[0])
		require.NoError(t, err)
		price, err := decimal.NewFromString(leg[1])
		require.NoError(t, err)
		trades = append(trades, Trade{
			Date:     day0.AddDate(0, 0, i),
			Sequence: int64(i + 1),
			Quantity: qty,
			Price:    price,
		})
	}
	return trades
}

func requireDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	wantDec, err := decimal.NewFromString(want)
	require.NoError(t, err)
	require.Truef(t, wantDec.Equal(got), "want %s, got %s (%v)", want, got, msgAndArgs)
}

func TestBuildLedger_PartialCloseOfLong(t *testing.T) {
	rows, summary, err := BuildLedger(tape(t,
		[2]string{"100", "10"},
		[2]string{"-40", "15"},
	))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, SideOpenLong, rows[0].Side)
	requireDec(t, "100", rows[0].Position)
	requireDec(t, "0", rows[0].RealizedPnL)
	requireDec(t, "0", rows[0].UnrealizedPnL)
	requireDec(t, "1000", rows[0].TradeNotional)
	requireDec(t, "1000", rows[0].GrossNotional)

	assert.Equal(t, SideCloseLong, rows[1].Side)
	requireDec(t, "200", rows[1].RealizedPnL)
	requireDec(t, "60", rows[1].Position)
	requireDec(t, "300", rows[1].UnrealizedPnL)
	requireDec(t, "500", rows[1].TotalPnL())

	requireDec(t, "60", summary.FinalPosition)
	requireDec(t, "200", summary.RealizedPnL)
	requireDec(t, "300", summary.UnrealizedPnL)
	requireDec(t, "500", summary.TotalPnL)
	assert.Equal(t, 1, summary.OpenLongLots)
	assert.Equal(t, 0, summary.OpenShortLots)
}

func TestBuildLedger_SellFlipsLongToShort(t *testing.T) {
	rows, summary, err := BuildLedger(tape(t,
		[2]string{"50", "20"},
		[2]string{"-80", "18"},
	))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// The flip happens inside a single trade: the whole long queue is
	// consumed, then the leftover 30 units open a short lot at 18.
	assert.Equal(t, SideCloseLong, rows[1].Side)
	requireDec(t, "-100", rows[1].RealizedPnL)
	requireDec(t, "-30", rows[1].Position)
	requireDec(t, "0", rows[1].UnrealizedPnL)
	requireDec(t, "540", rows[1].GrossNotional)

	requireDec(t, "-30", summary.FinalPosition)
	assert.Equal(t, 0, summary.OpenLongLots)
	assert.Equal(t, 1, summary.OpenShortLots)
}

func TestBuildLedger_ShortFirstThenFullCover(t *testing.T) {
	rows, summary, err := BuildLedger(tape(t,
		[2]string{"-100", "30"},
		[2]string{"100", "25"},
	))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, SideOpenShort, rows[0].Side)
	requireDec(t, "-100", rows[0].Position)
	requireDec(t, "0", rows[0].UnrealizedPnL)

	assert.Equal(t, SideCoverShort, rows[1].Side)
	requireDec(t, "500", rows[1].RealizedPnL)
	requireDec(t, "0", rows[1].Position)
	requireDec(t, "0", rows[1].UnrealizedPnL)
	requireDec(t, "0", rows[1].GrossNotional)

	requireDec(t, "0", summary.FinalPosition)
	assert.Equal(t, 0, summary.OpenLongLots)
	assert.Equal(t, 0, summary.OpenShortLots)
}

func TestBuildLedger_SellSweepsLotsOldestFirst(t *testing.T) {
	rows, _, err := BuildLedger(tape(t,
		[2]string{"10", "5"},
		[2]string{"10", "7"},
		[2]string{"-15", "9"},
	))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// 10 units from the 5 lot (40) then 5 units from the 7 lot (10).
	requireDec(t, "50", rows[2].RealizedPnL)
	requireDec(t, "5", rows[2].Position)
	requireDec(t, "10", rows[2].UnrealizedPnL)
}

func TestBuildLedger_FIFONotCheapestNotNewest(t *testing.T) {
	// Three lots at prices where FIFO, LIFO, and lowest-cost selection all
	// give different answers: the sell must hit the oldest lot at 8.
	rows, _, err := BuildLedger(tape(t,
		[2]string{"10", "8"},
		[2]string{"10", "3"},
		[2]string{"10", "12"},
		[2]string{"-5", "10"},
	))
	require.NoError(t, err)
	requireDec(t, "10", rows[3].RealizedPnL) // 5 x (10 - 8)
}

func TestBuildLedger_SamePriceRoundTripIsExactlyZero(t *testing.T) {
	rows, summary, err := BuildLedger(tape(t,
		[2]string{"10", "10"},
		[2]string{"-10", "10"},
	))
	require.NoError(t, err)

	require.True(t, rows[1].RealizedPnL.IsZero())
	assert.Equal(t, "0", rows[1].RealizedPnL.String())
	require.True(t, summary.TotalPnL.IsZero())
}

func TestBuildLedger_CoverShortLabelAndPartialCover(t *testing.T) {
	rows, summary, err := BuildLedger(tape(t,
		[2]string{"10", "10"},
		[2]string{"-25", "12"},
		[2]string{"5", "11"},
	))
	require.NoError(t, err)

	requireDec(t, "20", rows[1].RealizedPnL) // 10 x (12 - 10)
	requireDec(t, "-15", rows[1].Position)

	assert.Equal(t, SideCoverShort, rows[2].Side)
	requireDec(t, "5", rows[2].RealizedPnL) // 5 x (12 - 11)
	requireDec(t, "-10", rows[2].Position)
	requireDec(t, "10", rows[2].UnrealizedPnL) // 10 x (12 - 11)

	assert.Equal(t, 0, summary.OpenLongLots)
	assert.Equal(t, 1, summary.OpenShortLots)
}

func TestBuildLedger_ConservationOverMixedTape(t *testing.T) {
	legs := [][2]string{
		{"100", "10"},
		{"-30", "11"},
		{"-90", "9.5"},
		{"40", "9"},
		{"-25", "10.25"},
		{"120", "10.1"},
		{"-115", "10.4"},
	}
	rows, _, err := BuildLedger(tape(t, legs...))
	require.NoError(t, err)

	running := decimal.Zero
	for i, leg := range legs {
		qty, qerr := decimal.NewFromString(leg[0])
		require.NoError(t, qerr)
		running = running.Add(qty)
		require.Truef(t, running.Equal(rows[i].Position),
			"row %d: position %s, prefix sum %s", i, rows[i].Position, running)
	}

	// Cumulative realized is the running sum of per-trade realized.
	cum := decimal.Zero
	for i, row := range rows {
		cum = cum.Add(row.RealizedPnL)
		require.Truef(t, cum.Equal(row.CumulativeRealizedPnL),
			"row %d: cumulative realized mismatch", i)
	}
}

func TestBuildLedger_ReplayIsDeterministic(t *testing.T) {
	legs := [][2]string{
		{"100", "10"},
		{"-130", "12"},
		{"60", "11"},
		{"-30", "11.5"},
	}
	rows1, summary1, err := BuildLedger(tape(t, legs...))
	require.NoError(t, err)
	rows2, summary2, err := BuildLedger(tape(t, legs...))
	require.NoError(t, err)

	require.Equal(t, rows1, rows2)
	require.Equal(t, summary1, summary2)
}

func TestBuildLedger_EmptyTape(t *testing.T) {
	rows, summary, err := BuildLedger(nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, 0, summary.OpenLongLots)
	assert.Equal(t, 0, summary.OpenShortLots)
	require.True(t, summary.FinalPosition.IsZero())
}

func TestBuildLedger_RejectsBadInput(t *testing.T) {
	valid := Trade{Date: day0, Sequence: 1, Quantity: decimal.NewFromInt(10), Price: decimal.NewFromInt(5)}

	tests := []struct {
		name   string
		trades []Trade
		reason string
	}{
		{
			name:   "zero quantity",
			trades: []Trade{{Date: day0, Sequence: 1, Quantity: decimal.Zero, Price: decimal.NewFromInt(5)}},
			reason: "quantity is zero",
		},
		{
			name:   "zero price",
			trades: []Trade{{Date: day0, Sequence: 1, Quantity: decimal.NewFromInt(1), Price: decimal.Zero}},
			reason: "price is not positive",
		},
		{
			name:   "negative price",
			trades: []Trade{{Date: day0, Sequence: 1, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(-3)}},
			reason: "price is not positive",
		},
		{
			name: "date goes backwards",
			trades: []Trade{
				valid,
				{Date: day0.AddDate(0, 0, -1), Sequence: 2, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(5)},
			},
			reason: "tape is not sorted by (date, sequence)",
		},
		{
			name: "duplicate date and sequence",
			trades: []Trade{
				valid,
				{Date: day0, Sequence: 1, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(5)},
			},
			reason: "tape is not sorted by (date, sequence)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rows, _, err := BuildLedger(tc.trades)
			require.Error(t, err)
			assert.Nil(t, rows, "no partial ledger on rejection")

			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tc.reason, inputErr.Reason)
		})
	}
}

func TestBuildLedger_ValidationFailsBeforeAnyRow(t *testing.T) {
	// A valid prefix followed by a bad trade must reject the whole tape.
	trades := tape(t,
		[2]string{"10", "10"},
		[2]string{"-5", "12"},
	)
	trades = append(trades, Trade{
		Date:     trades[1].Date.AddDate(0, 0, 1),
		Sequence: 3,
		Quantity: decimal.Zero,
		Price:    decimal.NewFromInt(10),
	})

	rows, _, err := BuildLedger(trades)
	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Nil(t, rows)
}

func TestBuildLedger_SameDateOrderedBySequence(t *testing.T) {
	trades := []Trade{
		{Date: day0, Sequence: 1, Quantity: decimal.NewFromInt(10), Price: decimal.NewFromInt(5)},
		{Date: day0, Sequence: 2, Quantity: decimal.NewFromInt(-4), Price: decimal.NewFromInt(6)},
	}
	rows, _, err := BuildLedger(trades)
	require.NoError(t, err)
	requireDec(t, "4", rows[1].RealizedPnL)
}
