package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
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
	opCounter, err := otel.Meter("github.com/goto/screener/core/product").
		Int64Counter("screener.product.operation")
	if err != nil {
		otel.Handle(err)
	}

	return &Service{
		repository: deps.Repository,
		opCounter:  opCounter,
	}
}

func (s *Service) List(ctx context.Context, flt Filter) (page query.ResultPage[Product], err error) {
	defer func() {
		s.instrumentOp(ctx, "List", "", err)
	}()

	c, err := flt.Criteria()
	if err != nil {
		return query.ResultPage[Product]{}, err
	}

	products, err := s.repository.GetAll(ctx)
	if err != nil {
		return query.ResultPage[Product]{}, fmt.Errorf("list products: %w", err)
	}

	return query.Evaluate(products, c), nil
}

// Get looks a product up by UUID when id parses as one, by SKU otherwise.
func (s *Service) Get(ctx context.Context, id string) (p Product, err error) {
	id = strings.TrimSpace(id)
	defer func() {
		s.instrumentOp(ctx, "Get", id, err)
	}()

	if isValidUUID(id) {
		p, err = s.repository.GetByID(ctx, id)
		if err != nil {
			return Product{}, fmt.Errorf("get product by id: %w", err)
		}
		return p, nil
	}

	p, err = s.repository.GetBySKU(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

func (s *Service) instrumentOp(ctx context.Context, op, id string, err error) {
	if s.opCounter == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("screener.product_operation", op),
		attribute.Bool("operation.success", err == nil),
	}
	if id != "" {
		identifier := "SKU"
		if isValidUUID(id) {
			identifier = "ID"
		}
		attrs = append(attrs, attribute.String("product.identifier", identifier))
	}
	s.opCounter.Add(ctx, 1, metric.WithAttributes(attrs...))
}

func isValidUUID(u string) bool {
	_, err := uuid.Parse(u)
	return err == nil
}
