package product

import (
	"github.com/goto/screener/core/query"
	"github.com/goto/screener/core/validator"
)

type Filter struct {
	Types         []string `json:"types"`
	Categories    []string `json:"categories"`
	MinPrice      *float64 `json:"min_price" validate:"omitempty,gte=0"`
	MaxPrice      *float64 `json:"max_price" validate:"omitempty,gte=0"`
	MinRating     *float64 `json:"min_rating" validate:"omitempty,gte=0,lte=5"`
	InStock       bool     `json:"in_stock"`
	Query         string   `json:"q"`
	SortBy        string   `json:"sort"`
	SortDirection string   `json:"direction"`
	Page          query.Page
}

func FilterFromParams(params query.Params) (Filter, error) {
	var (
		flt Filter
		err error
	)

	if flt.MinPrice, err = query.Float(params, "min_price"); err != nil {
		return Filter{}, err
	}
	if flt.MaxPrice, err = query.Float(params, "max_price"); err != nil {
		return Filter{}, err
	}
	if flt.MinRating, err = query.Float(params, "min_rating"); err != nil {
		return Filter{}, err
	}

	flt.Types = query.List(params, "types", "type")
	flt.Categories = query.List(params, "categories", "category")
	flt.InStock = query.Bool(params, "in_stock")
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

func (f Filter) Criteria() (query.Criteria[Product], error) {
	if err := f.Validate(); err != nil {
		return query.Criteria[Product]{}, err
	}

	types, err := query.NewEnumSet("types", f.Types, Types, func(p Product) (string, bool) {
		return string(p.Type), p.Type != ""
	})
	if err != nil {
		return query.Criteria[Product]{}, err
	}
	categories, err := query.NewSet("categories", f.Categories, true, category)
	if err != nil {
		return query.Criteria[Product]{}, err
	}
	prices, err := query.NewRange("price", f.MinPrice, f.MaxPrice, price)
	if err != nil {
		return query.Criteria[Product]{}, err
	}
	ratings, err := query.NewRange("rating", f.MinRating, nil, rating)
	if err != nil {
		return query.Criteria[Product]{}, err
	}
	inStock, err := query.NewBool("in_stock", f.InStock, true, func(p Product) bool { return p.InStock })
	if err != nil {
		return query.Criteria[Product]{}, err
	}
	text, err := query.NewText(query.ParamQuery, f.Query, func(p Product) []string {
		return append([]string{p.SKU, p.Name, p.Category}, p.Tags...)
	})
	if err != nil {
		return query.Criteria[Product]{}, err
	}

	c := query.Criteria[Product]{
		Filters: []query.Filter[Product]{types, categories, prices, ratings, inStock, text},
		Page:    f.Page,
	}
	if f.SortBy != "" {
		if c.Sort, err = query.NewSort(SortKeys, f.SortBy, f.SortDirection); err != nil {
			return query.Criteria[Product]{}, err
		}
	}
	return c, nil
}

var SortKeys = query.SortKeys[Product]{
	query.TextKey("sku", func(p Product) (string, bool) { return p.SKU, true }),
	query.TextKey("name", func(p Product) (string, bool) { return p.Name, true }),
	query.NumberKey("price", price),
	query.NumberKey("rating", rating),
	query.TextKey("category", category),
}

func price(p Product) (float64, bool) {
	if p.Price == nil {
		return 0, false
	}
	return *p.Price, true
}

func rating(p Product) (float64, bool) {
	if p.Rating == nil {
		return 0, false
	}
	return *p.Rating, true
}

func category(p Product) (string, bool) { return p.Category, p.Category != "" }
