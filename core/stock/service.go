package stock

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/goto/screener/core/query"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Service struct {
	repository Repository

	opCounter metric.Int64Counter
}

type ServiceDeps struct {
	Repository Repository
}

func NewService(deps ServiceDeps) *Service {
	opCounter, err := otel.Meter("github.com/goto/screener/core/stock").
		Int64Counter("screener.stock.operation")
	if err != nil {
		otel.Handle(err)
	}

	return &Service{
		repository: deps.Repository,
		opCounter:  opCounter,
	}
}

// List evaluates flt against every stock and returns the requested page.
func (s *Service) List(ctx context.Context, flt Filter) (page query.ResultPage[Stock], err error) {
	defer func() {
		s.instrumentOp(ctx, "List", err)
	}()

	c, err := flt.Criteria()
	if err != nil {
		return query.ResultPage[Stock]{}, err
	}

	stocks, err := s.repository.GetAll(ctx)
	if err != nil {
		return query.ResultPage[Stock]{}, fmt.Errorf("list stocks: %w", err)
	}

	return query.Evaluate(stocks, c), nil
}

// Select returns every stock matching flt in sorted order, ignoring paging.
func (s *Service) Select(ctx context.Context, flt Filter) (stocks []Stock, err error) {
	defer func() {
		s.instrumentOp(ctx, "Select", err)
	}()

	c, err := flt.Criteria()
	if err != nil {
		return nil, err
	}

	all, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("select stocks: %w", err)
	}

	return query.Select(all, c), nil
}

func (s *Service) GetByTicker(ctx context.Context, ticker string) (st Stock, err error) {
	defer func() {
		s.instrumentOp(ctx, "GetByTicker", err)
	}()

	return s.repository.GetByTicker(ctx, strings.TrimSpace(ticker))
}

// Sectors returns the distinct sector names in alphabetical order.
func (s *Service) Sectors(ctx context.Context) ([]string, error) {
	stocks, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sectors: %w", err)
	}

	seen := make(map[string]struct{})
	sectors := []string{}
	for _, st := range stocks {
		if st.Sector == "" {
			continue
		}
		if _, ok := seen[st.Sector]; ok {
			continue
		}
		seen[st.Sector] = struct{}{}
		sectors = append(sectors, st.Sector)
	}
	sort.Strings(sectors)

	return sectors, nil
}

// Stats computes summary figures over every stock. Averages skip unknown
// values and are rounded to two decimals; they are nil when nothing is known.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	stocks, err := s.repository.GetAll(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("stock stats: %w", err)
	}

	stats := Stats{
		TotalStocks: len(stocks),
		GuidanceBreakdown: map[Guidance]int{
			GuidancePositive: 0,
			GuidanceNeutral:  0,
			GuidanceNegative: 0,
		},
		SectorBreakdown: map[string]int{},
	}

	var pe, sentiment average
	for _, st := range stocks {
		pe.add(st.PERatio)
		sentiment.add(st.SentimentScore)
		if st.ManagementGuidance != "" {
			stats.GuidanceBreakdown[st.ManagementGuidance]++
		}
		if st.Sector != "" {
			stats.SectorBreakdown[st.Sector]++
		}
	}
	stats.AveragePE = pe.value()
	stats.AverageSentiment = sentiment.value()

	return stats, nil
}

func (s *Service) instrumentOp(ctx context.Context, op string, err error) {
	if s.opCounter == nil {
		return
	}
	s.opCounter.Add(ctx, 1, metric.WithAttributes(
		attribute.String("screener.stock_operation", op),
		attribute.Bool("operation.success", err == nil),
	))
}

type average struct {
	sum float64
	n   int
}

func (a *average) add(v *float64) {
	if v == nil {
		return
	}
	a.sum += *v
	a.n++
}

func (a average) value() *float64 {
	if a.n == 0 {
		return nil
	}
	v := math.Round(a.sum/float64(a.n)*100) / 100
	return &v
}
