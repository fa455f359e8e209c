package stock

//go:generate mockery --name=Repository -r --case underscore --with-expecter --structname StockRepository --filename stock_repository.go --output=./mocks
import (
	"context"
	"strings"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Stock, error)
	GetByTicker(ctx context.Context, ticker string) (Stock, error)
}

// Guidance is the tone of the latest management outlook.
type Guidance string

const (
	GuidancePositive Guidance = "positive"
	GuidanceNeutral  Guidance = "neutral"
	GuidanceNegative Guidance = "negative"
)

// Guidances lists every supported Guidance value.
var Guidances = []string{string(GuidancePositive), string(GuidanceNeutral), string(GuidanceNegative)}

// ParseGuidance returns the guidance matching s regardless of case, or an
// empty Guidance when s is not one of Guidances.
func ParseGuidance(s string) Guidance {
	for _, g := range Guidances {
		if strings.EqualFold(g, strings.TrimSpace(s)) {
			return Guidance(g)
		}
	}
	return ""
}

// Trend is the direction the sentiment score has been moving.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

func ParseTrend(s string) Trend {
	switch t := Trend(strings.ToLower(strings.TrimSpace(s))); t {
	case TrendUp, TrendDown, TrendStable:
		return t
	}
	return ""
}

// Stock is one listed company with its valuation metrics. Market cap is in
// billions, growth figures are percentages and the sentiment score lies in
// [0, 100]. A nil metric is unknown, which is not the same as zero.
type Stock struct {
	Ticker             string   `json:"ticker"`
	Name               string   `json:"name"`
	Sector             string   `json:"sector,omitempty"`
	MarketCap          *float64 `json:"market_cap"`
	Price              *float64 `json:"price"`
	PERatio            *float64 `json:"pe_ratio"`
	PSRatio            *float64 `json:"ps_ratio"`
	PBRatio            *float64 `json:"pb_ratio"`
	EVEBITDA           *float64 `json:"ev_ebitda"`
	RevenueGrowth      *float64 `json:"revenue_growth"`
	EarningsGrowth     *float64 `json:"earnings_growth"`
	SentimentScore     *float64 `json:"sentiment_score"`
	SentimentTrend     Trend    `json:"sentiment_trend,omitempty"`
	ManagementGuidance Guidance `json:"management_guidance,omitempty"`
	Volume             *int64   `json:"volume"`
	LastUpdated        string   `json:"last_updated,omitempty"`
}

// Stats summarises a collection of stocks.
type Stats struct {
	TotalStocks       int              `json:"total_stocks"`
	AveragePE         *float64         `json:"average_pe"`
	AverageSentiment  *float64         `json:"average_sentiment"`
	GuidanceBreakdown map[Guidance]int `json:"guidance_breakdown"`
	SectorBreakdown   map[string]int   `json:"sector_breakdown"`
}
