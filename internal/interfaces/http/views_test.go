package http

import (
	"testing"

	"main/internal/domain/fifo"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmountRoundsHalfUp(t *testing.T) {
	assert.Equal(t, "1.01", formatAmount(decimal.RequireFromString("1.005")))
	assert.Equal(t, "2.35", formatAmount(decimal.RequireFromString("2.345")))
	assert.Equal(t, "0.00", formatAmount(decimal.Zero))
	assert.Equal(t, "-3.50", formatAmount(decimal.RequireFromString("-3.5")))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "100", formatQuantity(decimal.RequireFromString("100")))
	assert.Equal(t, "-40", formatQuantity(decimal.RequireFromString("-40.00")))
	assert.Equal(t, "2.50", formatQuantity(decimal.RequireFromString("2.5")))
}

func TestAvgCostBasis(t *testing.T) {
	longRow := fifo.Row{
		Position:      decimal.RequireFromString("60"),
		Price:         decimal.RequireFromString("15"),
		UnrealizedPnL: decimal.RequireFromString("300"),
	}
	assert.True(t, avgCostBasis(longRow).Equal(decimal.RequireFromString("10")))

	shortRow := fifo.Row{
		Position:      decimal.RequireFromString("-30"),
		Price:         decimal.RequireFromString("18"),
		UnrealizedPnL: decimal.RequireFromString("60"),
	}
	assert.True(t, avgCostBasis(shortRow).IsZero())

	flatRow := fifo.Row{Position: decimal.Zero, Price: decimal.RequireFromString("25")}
	assert.True(t, avgCostBasis(flatRow).IsZero())
}
