package blotter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	trading "main/internal/domain/entity/trading"
	"main/internal/domain/fifo"
	interfaces "main/internal/domain/interfaces"
)

var (
	ErrEmptyTicker = errors.New("ticker is required")
	ErrNoTrades    = errors.New("no trades found for ticker")
)

// Ledger is the blotter output for one ticker: the replayed FIFO ledger rows
// and the terminal summary.
type Ledger struct {
	Ticker  string
	Rows    []fifo.Row
	Summary fifo.Summary
}

type Service struct {
	repo interfaces.TradeRepository
}

func NewService(repo interfaces.TradeRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Tickers(ctx context.Context) ([]string, error) {
	return s.repo.ListTickers(ctx)
}

// Trades returns the raw tape for one ticker, already sorted by
// (trade_date, trade_id).
func (s *Service) Trades(ctx context.Context, ticker string) ([]trading.Trade, error) {
	ticker, err := normalizeTicker(ticker)
	if err != nil {
		return nil, err
	}
	return s.repo.TapeForTicker(ctx, ticker)
}

// Ledger loads the full tape for one ticker and replays it through the FIFO
// engine. The ledger is recomputed from scratch on every call; nothing is
// persisted between invocations.
func (s *Service) Ledger(ctx context.Context, ticker string) (*Ledger, error) {
	ticker, err := normalizeTicker(ticker)
	if err != nil {
		return nil, err
	}
	tape, err := s.repo.TapeForTicker(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if len(tape) == 0 {
		return nil, ErrNoTrades
	}

	legs := make([]fifo.Trade, 0, len(tape))
	for _, trade := range tape {
		legs = append(legs, fifo.Trade{
			Date:     trade.TradeDate,
			Sequence: trade.TradeID,
			Quantity: trade.Quantity,
			Price:    trade.Price,
		})
	}

	rows, summary, err := fifo.BuildLedger(legs)
	if err != nil {
		return nil, fmt.Errorf("build ledger for %s: %w", ticker, err)
	}
	return &Ledger{Ticker: ticker, Rows: rows, Summary: summary}, nil
}

// AddTrades stores a batch of trades arriving from the ingestion pipeline.
func (s *Service) AddTrades(ctx context.Context, trades []trading.Trade) error {
	if len(trades) == 0 {
		return nil
	}
	return s.repo.AddTrades(ctx, trades)
}

func (s *Service) Close() {
	s.repo.Close()
}

func normalizeTicker(ticker string) (string, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return "", ErrEmptyTicker
	}
	return ticker, nil
}
