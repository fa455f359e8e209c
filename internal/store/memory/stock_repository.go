package memory

import (
	"context"

	"github.com/goto/screener/core/stock"
)

// StockRepository serves stocks from a CSV or XLSX table. Legacy tables with
// pe, ps and sentiment headers are understood as well.
type StockRepository struct {
	store *Store[stock.Stock]
}

func NewStockRepository(file File) *StockRepository {
	src := TableSource[stock.Stock]{
		File:     file,
		Required: [][]string{{"ticker"}, {"name"}},
		Decode:   decodeStock,
	}
	return &StockRepository{
		store: New[stock.Stock]("stocks", src, func(s stock.Stock) string { return s.Ticker }),
	}
}

func (r *StockRepository) GetAll(_ context.Context) ([]stock.Stock, error) {
	return r.store.All(), nil
}

func (r *StockRepository) GetByTicker(_ context.Context, ticker string) (stock.Stock, error) {
	s, ok := r.store.Get(ticker)
	if !ok {
		return stock.Stock{}, stock.NotFoundError{Ticker: ticker}
	}
	return s, nil
}

func (r *StockRepository) Name() string { return r.store.Name() }

func (r *StockRepository) Len() int { return r.store.Len() }

func (r *StockRepository) Reload(ctx context.Context) error {
	return r.store.Reload(ctx)
}

func decodeStock(row Row) (stock.Stock, bool) {
	ticker := row.String("ticker")
	if ticker == "" {
		return stock.Stock{}, false
	}

	return stock.Stock{
		Ticker:             ticker,
		Name:               row.String("name"),
		Sector:             row.String("sector"),
		MarketCap:          row.Float("market_cap"),
		Price:              row.Float("price"),
		PERatio:            row.Float("pe_ratio", "pe"),
		PSRatio:            row.Float("ps_ratio", "ps"),
		PBRatio:            row.Float("pb_ratio", "pb"),
		EVEBITDA:           row.Float("ev_ebitda"),
		RevenueGrowth:      row.Float("revenue_growth"),
		EarningsGrowth:     row.Float("earnings_growth"),
		SentimentScore:     row.Float("sentiment_score", "sentiment"),
		SentimentTrend:     stock.ParseTrend(row.String("sentiment_trend")),
		ManagementGuidance: stock.ParseGuidance(row.String("management_guidance", "guidance")),
		Volume:             row.Int("volume"),
		LastUpdated:        row.String("last_updated"),
	}, true
}
