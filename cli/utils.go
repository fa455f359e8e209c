package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goto/salt/term"
	"github.com/goto/screener/core/query"
	"github.com/goto/screener/internal/client"
	"github.com/spf13/cobra"
)

const (
	pageSize   = 20
	timeLayout = "2006-01-02 15:04:05 MST"
	outputJSON = "json"
)

func newClient(cfg *Config) (*client.Client, error) {
	return client.New(cfg.Client)
}

func prettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", "\t")
	return string(s)
}

// listFlags are the flags shared by every list command.
type listFlags struct {
	filters   map[string]string
	q         string
	sort      string
	direction string
	page      int
	size      int
	output    string
}

func (f *listFlags) register(cmd *cobra.Command, filterHelp string) {
	cmd.Flags().StringToStringVarP(&f.filters, "filter", "f", nil, filterHelp)
	cmd.Flags().StringVarP(&f.q, "query", "q", "", "free text search")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort by certain fields")
	cmd.Flags().StringVar(&f.direction, "sort_dir", "", "sorting direction (asc / desc)")
	cmd.Flags().IntVar(&f.page, "page", 1, "Page number (starts from 1)")
	cmd.Flags().IntVar(&f.size, "size", pageSize, "Size of each page")
	outputFlag(cmd, &f.output)
}

func (f *listFlags) params() url.Values {
	params := url.Values{}
	for k, v := range f.filters {
		params.Set(k, v)
	}
	set := func(key, val string) {
		if val != "" {
			params.Set(key, val)
		}
	}
	set(query.ParamQuery, f.q)
	set(query.ParamSort, f.sort)
	set(query.ParamDirection, f.direction)
	set(query.ParamPage, strconv.Itoa(f.page))
	set(query.ParamPageSize, strconv.Itoa(f.size))
	return params
}

func outputFlag(cmd *cobra.Command, output *string) {
	cmd.Flags().StringVarP(output, "out", "o", "table", "flag to control output viewing, for json `-o json`")
}

func pageFooter[T any](page query.ResultPage[T]) string {
	return term.Cyanf("page %d of %d, %d total. To view all the data in JSON format, use flag `-o json`", page.Page, page.TotalPages, page.Total)
}

func fmtFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

func fmtList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

func fmtOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printJSON(v interface{}) {
	fmt.Println(term.Bluef(prettyPrint(v)))
}
