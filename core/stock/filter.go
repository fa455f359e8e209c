package stock

import (
	"github.com/goto/screener/core/query"
	"github.com/goto/screener/core/validator"
)

// Filter holds the screening criteria accepted from clients. Legacy
// parameter names pe_max, ps_max and sentiment_min are accepted as aliases.
type Filter struct {
	MinMarketCap      *float64 `json:"min_market_cap" validate:"omitempty,gte=0"`
	MaxMarketCap      *float64 `json:"max_market_cap" validate:"omitempty,gte=0"`
	MinPERatio        *float64 `json:"min_pe_ratio" validate:"omitempty,gt=0"`
	MaxPERatio        *float64 `json:"max_pe_ratio" validate:"omitempty,gt=0"`
	MinPSRatio        *float64 `json:"min_ps_ratio" validate:"omitempty,gt=0"`
	MaxPSRatio        *float64 `json:"max_ps_ratio" validate:"omitempty,gt=0"`
	MinRevenueGrowth  *float64 `json:"min_revenue_growth"`
	MinSentimentScore *float64 `json:"min_sentiment_score" validate:"omitempty,gte=0,lte=100"`
	Sectors           []string `json:"sectors"`
	Guidance          []string `json:"management_guidance"`
	Query             string   `json:"q"`
	SortBy            string   `json:"sort"`
	SortDirection     string   `json:"direction"`
	Page              query.Page
}

// FilterFromParams parses request parameters into a Filter. Only parse
// errors are reported here; bounds are checked by Validate.
func FilterFromParams(params query.Params) (Filter, error) {
	var (
		flt Filter
		err error
	)

	floats := []struct {
		dst  **float64
		keys []string
	}{
		{&flt.MinMarketCap, []string{"min_market_cap"}},
		{&flt.MaxMarketCap, []string{"max_market_cap"}},
		{&flt.MinPERatio, []string{"min_pe_ratio"}},
		{&flt.MaxPERatio, []string{"max_pe_ratio", "pe_max"}},
		{&flt.MinPSRatio, []string{"min_ps_ratio"}},
		{&flt.MaxPSRatio, []string{"max_ps_ratio", "ps_max"}},
		{&flt.MinRevenueGrowth, []string{"min_revenue_growth"}},
		{&flt.MinSentimentScore, []string{"min_sentiment_score", "sentiment_min"}},
	}
	for _, f := range floats {
		if *f.dst, err = query.Float(params, f.keys...); err != nil {
			return Filter{}, err
		}
	}

	flt.Sectors = query.List(params, "sectors", "sector")
	flt.Guidance = query.List(params, "management_guidance", "guidance")
	flt.Query = query.Text(params, query.ParamQuery)
	flt.SortBy = query.Text(params, query.ParamSort)
	flt.SortDirection = query.Text(params, query.ParamDirection)

	if flt.Page, err = query.PageFrom(params); err != nil {
		return Filter{}, err
	}
	return flt, nil
}

func (f Filter) Validate() error {
	return query.Validate(validator.Default(), f)
}

// Criteria validates f and builds the query criteria for it.
func (f Filter) Criteria() (query.Criteria[Stock], error) {
	if err := f.Validate(); err != nil {
		return query.Criteria[Stock]{}, err
	}

	var filters []query.Filter[Stock]
	add := func(flt query.Filter[Stock], err error) error {
		if err != nil {
			return err
		}
		filters = append(filters, flt)
		return nil
	}

	ranges := []struct {
		field    string
		min, max *float64
		value    func(Stock) (float64, bool)
	}{
		{"market_cap", f.MinMarketCap, f.MaxMarketCap, marketCap},
		{"pe_ratio", f.MinPERatio, f.MaxPERatio, peRatio},
		{"ps_ratio", f.MinPSRatio, f.MaxPSRatio, psRatio},
		{"revenue_growth", f.MinRevenueGrowth, nil, revenueGrowth},
		{"sentiment_score", f.MinSentimentScore, nil, sentimentScore},
	}
	for _, r := range ranges {
		if err := add(query.NewRange(r.field, r.min, r.max, r.value)); err != nil {
			return query.Criteria[Stock]{}, err
		}
	}

	if err := add(query.NewSet("sectors", f.Sectors, true, sector)); err != nil {
		return query.Criteria[Stock]{}, err
	}
	if err := add(query.NewEnumSet("management_guidance", f.Guidance, Guidances, guidance)); err != nil {
		return query.Criteria[Stock]{}, err
	}
	if err := add(query.NewText(query.ParamQuery, f.Query, searchable)); err != nil {
		return query.Criteria[Stock]{}, err
	}

	c := query.Criteria[Stock]{Filters: filters, Page: f.Page}
	if f.SortBy != "" {
		s, err := query.NewSort(SortKeys, f.SortBy, f.SortDirection)
		if err != nil {
			return query.Criteria[Stock]{}, err
		}
		c.Sort = s
	}
	return c, nil
}

// SortKeys are the fields a stock listing can be ordered by.
var SortKeys = query.SortKeys[Stock]{
	query.TextKey("ticker", func(s Stock) (string, bool) { return s.Ticker, true }),
	query.TextKey("name", func(s Stock) (string, bool) { return s.Name, true }),
	query.TextKey("sector", sector),
	query.NumberKey("market_cap", marketCap),
	query.NumberKey("price", func(s Stock) (float64, bool) { return deref(s.Price) }),
	query.NumberKey("pe_ratio", peRatio),
	query.NumberKey("ps_ratio", psRatio),
	query.NumberKey("revenue_growth", revenueGrowth),
	query.NumberKey("sentiment_score", sentimentScore),
	query.NumberKey("volume", func(s Stock) (float64, bool) {
		if s.Volume == nil {
			return 0, false
		}
		return float64(*s.Volume), true
	}),
}

func marketCap(s Stock) (float64, bool)      { return deref(s.MarketCap) }
func peRatio(s Stock) (float64, bool)        { return deref(s.PERatio) }
func psRatio(s Stock) (float64, bool)        { return deref(s.PSRatio) }
func revenueGrowth(s Stock) (float64, bool)  { return deref(s.RevenueGrowth) }
func sentimentScore(s Stock) (float64, bool) { return deref(s.SentimentScore) }

func sector(s Stock) (string, bool)   { return s.Sector, s.Sector != "" }
func guidance(s Stock) (string, bool) { return string(s.ManagementGuidance), s.ManagementGuidance != "" }

func searchable(s Stock) []string {
	return []string{s.Ticker, s.Name, s.Sector}
}

func deref(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}
