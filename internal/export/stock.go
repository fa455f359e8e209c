package export

import (
	"github.com/goto/screener/core/stock"
)

// StockColumns is the layout of an exported stock screen.
var StockColumns = []Column[stock.Stock]{
	{"ticker", func(s stock.Stock) any { return s.Ticker }},
	{"name", func(s stock.Stock) any { return s.Name }},
	{"sector", func(s stock.Stock) any { return s.Sector }},
	{"market_cap", func(s stock.Stock) any { return s.MarketCap }},
	{"price", func(s stock.Stock) any { return s.Price }},
	{"pe_ratio", func(s stock.Stock) any { return s.PERatio }},
	{"ps_ratio", func(s stock.Stock) any { return s.PSRatio }},
	{"pb_ratio", func(s stock.Stock) any { return s.PBRatio }},
	{"ev_ebitda", func(s stock.Stock) any { return s.EVEBITDA }},
	{"revenue_growth", func(s stock.Stock) any { return s.RevenueGrowth }},
	{"earnings_growth", func(s stock.Stock) any { return s.EarningsGrowth }},
	{"sentiment_score", func(s stock.Stock) any { return s.SentimentScore }},
	{"sentiment_trend", func(s stock.Stock) any { return string(s.SentimentTrend) }},
	{"management_guidance", func(s stock.Stock) any { return string(s.ManagementGuidance) }},
	{"volume", func(s stock.Stock) any { return s.Volume }},
	{"last_updated", func(s stock.Stock) any { return s.LastUpdated }},
}
