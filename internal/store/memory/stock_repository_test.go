package memory_test

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/goto/screener/core/stock"
	"github.com/goto/screener/internal/data"
	"github.com/goto/screener/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func loadedStocks(t *testing.T, file memory.File) *memory.StockRepository {
	t.Helper()
	repo := memory.NewStockRepository(file)
	require.NoError(t, repo.Reload(context.Background()))
	return repo
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func tickerList(stocks []stock.Stock) []string {
	out := []string{}
	for _, s := range stocks {
		out = append(out, s.Ticker)
	}
	return out
}

func TestStockRepositoryEmbedded(t *testing.T) {
	ctx := context.Background()
	repo := loadedStocks(t, memory.File{Embedded: data.Stocks})
	svc := stock.NewService(stock.ServiceDeps{Repository: repo})

	list := func(t *testing.T, params url.Values) (items []string, total, totalPages int) {
		t.Helper()
		flt, err := stock.FilterFromParams(params)
		require.NoError(t, err)
		page, err := svc.List(ctx, flt)
		require.NoError(t, err)
		return tickerList(page.Items), page.Total, page.TotalPages
	}

	t.Run("loads all eighteen stocks", func(t *testing.T) {
		assert.Equal(t, 18, repo.Len())
	})

	t.Run("large cap screen keeps only stocks at or above the bound", func(t *testing.T) {
		items, total, _ := list(t, url.Values{"min_market_cap": {"1000"}})

		assert.Subset(t, items, []string{"AAPL", "MSFT", "NVDA"})
		assert.NotContains(t, items, "PYPL")
		assert.Equal(t, len(items), total)
		for _, ticker := range items {
			s, err := repo.GetByTicker(ctx, ticker)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, *s.MarketCap, 1000.0)
		}
	})

	t.Run("empty sector list keeps every stock", func(t *testing.T) {
		_, total, _ := list(t, url.Values{"sectors": {""}})
		assert.Equal(t, 18, total)
	})

	t.Run("lookup ignores case", func(t *testing.T) {
		lower, err := repo.GetByTicker(ctx, "aapl")
		require.NoError(t, err)
		upper, err := repo.GetByTicker(ctx, "AAPL")
		require.NoError(t, err)
		assert.Equal(t, upper, lower)
	})

	t.Run("unknown ticker is a stock not found error", func(t *testing.T) {
		_, err := repo.GetByTicker(ctx, "ZZZZ")
		assert.ErrorAs(t, err, new(stock.NotFoundError))
	})

	t.Run("min above max returns nothing", func(t *testing.T) {
		items, total, _ := list(t, url.Values{"min_market_cap": {"1000"}, "max_market_cap": {"100"}})
		assert.Empty(t, items)
		assert.Equal(t, 0, total)
	})

	t.Run("page beyond the end is empty", func(t *testing.T) {
		items, total, totalPages := list(t, url.Values{"page": {"999"}, "page_size": {"50"}})
		assert.Empty(t, items)
		assert.Equal(t, 18, total)
		assert.Equal(t, 1, totalPages)
	})

	t.Run("unknown values read as null", func(t *testing.T) {
		snow, err := repo.GetByTicker(ctx, "SNOW")
		require.NoError(t, err)
		assert.Nil(t, snow.PERatio)
		assert.Nil(t, snow.EVEBITDA)
		require.NotNil(t, snow.PSRatio)
		assert.Equal(t, 13.0, *snow.PSRatio)

		pltr, err := repo.GetByTicker(ctx, "PLTR")
		require.NoError(t, err)
		assert.Nil(t, pltr.EVEBITDA)
		assert.Nil(t, pltr.EarningsGrowth)
	})
}

func TestStockRepositoryLegacyHeaders(t *testing.T) {
	path := writeFile(t, "legacy.csv", "\xEF\xBB\xBFticker,name,pe,ps,sentiment\n"+
		"AAA,Alpha,12.5,3,80\n"+
		"BBB,Beta,N/A,na,\n"+
		",Nameless,1,1,1\n"+
		"\n"+
		"CCC,Gamma,inf,-,none\n")
	repo := loadedStocks(t, memory.File{Path: path})

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "BBB", "CCC"}, tickerList(all))

	assert.Equal(t, 12.5, *all[0].PERatio)
	assert.Equal(t, 3.0, *all[0].PSRatio)
	assert.Equal(t, 80.0, *all[0].SentimentScore)
	for _, s := range all[1:] {
		assert.Nil(t, s.PERatio, s.Ticker)
		assert.Nil(t, s.PSRatio, s.Ticker)
		assert.Nil(t, s.SentimentScore, s.Ticker)
	}
}

func TestStockRepositoryVolume(t *testing.T) {
	type testCase struct {
		Description string
		Cell        string
		Expected    *int64
	}

	testCases := []testCase{
		{Description: "plain integer", Cell: "1200", Expected: ptr(int64(1200))},
		{Description: "thousands separators", Cell: `"1,200,300"`, Expected: ptr(int64(1200300))},
		{Description: "fraction is truncated", Cell: "99.9", Expected: ptr(int64(99))},
		{Description: "exponent within range", Cell: "2e6", Expected: ptr(int64(2000000))},
		{Description: "exponent beyond int64", Cell: "1e30", Expected: nil},
		{Description: "negative beyond int64", Cell: "-1e19", Expected: nil},
		{Description: "placeholder", Cell: "N/A", Expected: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			path := writeFile(t, "stocks.csv", "ticker,volume\nAAA,"+tc.Cell+"\n")
			repo := loadedStocks(t, memory.File{Path: path})

			got, err := repo.GetByTicker(context.Background(), "AAA")
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, got.Volume)
		})
	}
}

func TestStockRepositoryXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"Ticker", "Name", "Market_Cap"},
		{"XLS", "Sheet Corp", 12.5},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(t.TempDir(), "stocks.xlsx")
	require.NoError(t, f.SaveAs(path))

	repo := loadedStocks(t, memory.File{Path: path})
	got, err := repo.GetByTicker(context.Background(), "xls")
	require.NoError(t, err)
	assert.Equal(t, "Sheet Corp", got.Name)
	assert.Equal(t, 12.5, *got.MarketCap)
}

func TestStockRepositoryLoadFailures(t *testing.T) {
	t.Run("missing configured file", func(t *testing.T) {
		repo := memory.NewStockRepository(memory.File{Path: filepath.Join(t.TempDir(), "missing.csv")})

		var nfe memory.NotFoundError
		require.ErrorAs(t, repo.Reload(context.Background()), &nfe)
		assert.Contains(t, nfe.Path, "missing.csv")
	})

	t.Run("missing optional file is empty", func(t *testing.T) {
		repo := memory.NewStockRepository(memory.File{Path: filepath.Join(t.TempDir(), "missing.csv"), Optional: true})

		require.NoError(t, repo.Reload(context.Background()))
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("header without ticker column", func(t *testing.T) {
		path := writeFile(t, "bad.csv", "symbol,name\nAAA,Alpha\n")
		repo := memory.NewStockRepository(memory.File{Path: path})

		var le memory.LoadError
		require.ErrorAs(t, repo.Reload(context.Background()), &le)
		assert.Equal(t, path, le.Source)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, "stocks.parquet", "ticker,name\n")
		repo := memory.NewStockRepository(memory.File{Path: path})

		assert.ErrorAs(t, repo.Reload(context.Background()), new(memory.LoadError))
	})
}
