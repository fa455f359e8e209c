package query_test

import (
	"encoding/json"
	"net/url"
	"testing"

	"github.com/goto/screener/core/query"
	"github.com/goto/screener/core/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	type testCase struct {
		Description string
		Params      url.Values
		Keys        []string
		Expected    *float64
		ErrField    string
	}
	testCases := []testCase{
		{Description: "absent yields nil", Params: url.Values{}, Keys: []string{"min"}},
		{Description: "blank yields nil", Params: url.Values{"min": {"  "}}, Keys: []string{"min"}},
		{Description: "parses number", Params: url.Values{"min": {"12.5"}}, Keys: []string{"min"}, Expected: f(12.5)},
		{Description: "falls back to alias", Params: url.Values{"pe_max": {"20"}}, Keys: []string{"max_pe_ratio", "pe_max"}, Expected: f(20)},
		{Description: "first key wins", Params: url.Values{"a": {"1"}, "b": {"2"}}, Keys: []string{"a", "b"}, Expected: f(1)},
		{Description: "rejects garbage", Params: url.Values{"min": {"abc"}}, Keys: []string{"min"}, ErrField: "min"},
		{Description: "rejects infinity", Params: url.Values{"min": {"Inf"}}, Keys: []string{"min"}, ErrField: "min"},
		{Description: "rejects NaN", Params: url.Values{"min": {"NaN"}}, Keys: []string{"min"}, ErrField: "min"},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			got, err := query.Float(tc.Params, tc.Keys...)
			if tc.ErrField != "" {
				var ipe query.InvalidParameterError
				require.ErrorAs(t, err, &ipe)
				assert.Equal(t, tc.ErrField, ipe.Field)
				assert.Equal(t, "must be a finite number", ipe.Reason)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestInt(t *testing.T) {
	n, err := query.Int(url.Values{"page": {"3"}}, "page")
	require.NoError(t, err)
	assert.Equal(t, 3, *n)

	_, err = query.Int(url.Values{"page": {"3.5"}}, "page")
	assert.EqualError(t, err, `invalid parameter "page" with value "3.5": must be an integer`)
}

func TestBool(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "1", "yes", " Yes "} {
		assert.True(t, query.Bool(url.Values{"in_stock": {v}}, "in_stock"), v)
	}
	for _, v := range []string{"false", "0", "no", "maybe", ""} {
		assert.False(t, query.Bool(url.Values{"in_stock": {v}}, "in_stock"), v)
	}
	assert.False(t, query.Bool(url.Values{}, "in_stock"))
}

func TestList(t *testing.T) {
	params := url.Values{
		"sectors": {"Technology, Healthcare", "", " Energy "},
		"sector":  {"Finance,,"},
	}
	assert.Equal(t,
		[]string{"Technology", "Healthcare", "Energy", "Finance"},
		query.List(params, "sectors", "sector"),
	)
	assert.Empty(t, query.List(url.Values{}, "sectors"))
}

func TestPageFrom(t *testing.T) {
	type testCase struct {
		Description string
		Params      url.Values
		Expected    query.Page
		Err         bool
	}
	testCases := []testCase{
		{Description: "defaults", Params: url.Values{}, Expected: query.Page{Number: 1, Size: query.DefaultPageSize}},
		{Description: "explicit values", Params: url.Values{"page": {"2"}, "page_size": {"10"}}, Expected: query.Page{Number: 2, Size: 10}},
		{Description: "limit alias", Params: url.Values{"limit": {"5"}}, Expected: query.Page{Number: 1, Size: 5}},
		{Description: "explicit zero size clamps to one", Params: url.Values{"page_size": {"0"}}, Expected: query.Page{Number: 1, Size: 1}},
		{Description: "oversized clamps to cap", Params: url.Values{"page_size": {"10000"}}, Expected: query.Page{Number: 1, Size: query.MaxPageSize}},
		{Description: "zero page clamps to one", Params: url.Values{"page": {"0"}}, Expected: query.Page{Number: 1, Size: query.DefaultPageSize}},
		{Description: "non numeric page", Params: url.Values{"page": {"two"}}, Err: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			got, err := query.PageFrom(tc.Params)
			if tc.Err {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got)
		})
	}
}

func TestValidate(t *testing.T) {
	type bounds struct {
		Min *float64 `json:"min_sentiment_score" validate:"omitempty,gte=0,lte=100"`
		PE  *float64 `json:"max_pe_ratio" validate:"omitempty,gt=0"`
	}

	err := query.Validate(validator.Default(), bounds{Min: f(50), PE: f(10)})
	assert.NoError(t, err)

	err = query.Validate(validator.Default(), bounds{Min: f(101)})
	var ipe query.InvalidParameterError
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, "min_sentiment_score", ipe.Field)
	assert.Equal(t, "101", ipe.Value)
	assert.Equal(t, "must be 100 or less", ipe.Reason)

	err = query.Validate(validator.Default(), bounds{PE: f(-1)})
	require.ErrorAs(t, err, &ipe)
	assert.Equal(t, "max_pe_ratio", ipe.Field)
	assert.Equal(t, "must be greater than 0", ipe.Reason)
}

func TestValidateOneOf(t *testing.T) {
	assert.NoError(t, query.ValidateOneOf("format", "", "csv", "xlsx"))
	assert.NoError(t, query.ValidateOneOf("format", "xlsx", "csv", "xlsx"))

	err := query.ValidateOneOf("format", "pdf", "csv", "xlsx")
	assert.Equal(t, query.InvalidParameterError{
		Field:  "format",
		Value:  "pdf",
		Reason: "must be one of [csv xlsx]",
	}, err)
}

func TestFlattenJSON(t *testing.T) {
	t.Run("scalars and arrays", func(t *testing.T) {
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(`{
			"min_market_cap": 1000,
			"sectors": ["Technology", "Energy"],
			"in_stock": true,
			"q": "apple",
			"max_pe_ratio": null,
			"statuses": []
		}`), &body))

		got, err := query.FlattenJSON(body)
		require.NoError(t, err)

		assert.Equal(t, "1000", got.Get("min_market_cap"))
		assert.Equal(t, []string{"Technology", "Energy"}, got["sectors"])
		assert.Equal(t, "true", got.Get("in_stock"))
		assert.Equal(t, "apple", got.Get("q"))
		assert.NotContains(t, got, "max_pe_ratio")
		assert.Empty(t, got["statuses"])
	})

	t.Run("nested objects are rejected", func(t *testing.T) {
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(`{"sort": {"key": "price"}}`), &body))

		_, err := query.FlattenJSON(body)
		var ipe query.InvalidParameterError
		require.ErrorAs(t, err, &ipe)
		assert.Equal(t, "sort", ipe.Field)
	})
}
