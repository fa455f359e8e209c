package memory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/google/uuid"
	"github.com/goto/screener/core/product"
)

// ProductDatasetVersions is the range of product document versions this
// build understands.
const ProductDatasetVersions = ">= 1.0.0, < 2.0.0"

var errMissingVersion = errors.New("product document has no version")

type ProductRepository struct {
	store *Store[product.Product]
}

func NewProductRepository(file File) *ProductRepository {
	src := JSONSource[product.Product]{File: file, Decode: decodeProducts}
	return &ProductRepository{
		store: New[product.Product]("products", src,
			func(p product.Product) string { return p.ID },
			WithClone(func(p product.Product) product.Product {
				p.Tags = slices.Clone(p.Tags)
				return p
			}),
		),
	}
}

func (r *ProductRepository) GetAll(_ context.Context) ([]product.Product, error) {
	return r.store.All(), nil
}

func (r *ProductRepository) GetByID(_ context.Context, id string) (product.Product, error) {
	p, ok := r.store.Get(id)
	if !ok {
		return product.Product{}, product.NotFoundError{ID: id}
	}
	return p, nil
}

func (r *ProductRepository) GetBySKU(_ context.Context, sku string) (product.Product, error) {
	sku = strings.TrimSpace(sku)
	p, ok := r.store.Find(func(p product.Product) bool {
		return strings.EqualFold(p.SKU, sku)
	})
	if !ok {
		return product.Product{}, product.NotFoundError{SKU: sku}
	}
	return p, nil
}

func (r *ProductRepository) Name() string { return r.store.Name() }

func (r *ProductRepository) Len() int { return r.store.Len() }

func (r *ProductRepository) Reload(ctx context.Context) error {
	return r.store.Reload(ctx)
}

type productDocument struct {
	Version  string          `json:"version"`
	Products json.RawMessage `json:"products"`
}

type productRecord struct {
	ID       string     `json:"id"`
	SKU      string     `json:"sku"`
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Category string     `json:"category"`
	Price    jsonNumber `json:"price"`
	Rating   jsonNumber `json:"rating"`
	InStock  jsonBool   `json:"in_stock"`
	Tags     []string   `json:"tags"`
}

// decodeProducts accepts a versioned document or, for older files, a bare
// list of products.
func decodeProducts(data []byte) ([]product.Product, error) {
	list := json.RawMessage(data)
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		var doc productDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
		if err := checkProductVersion(doc.Version); err != nil {
			return nil, err
		}
		list = doc.Products
		if len(list) == 0 {
			list = json.RawMessage("null")
		}
	}

	records, err := decodeRecords[productRecord](list)
	if err != nil {
		return nil, err
	}

	products := make([]product.Product, 0, len(records))
	for _, rec := range records {
		if p, ok := rec.toProduct(); ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func checkProductVersion(v string) error {
	if strings.TrimSpace(v) == "" {
		return errMissingVersion
	}

	version, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("product document version %q: %w", v, err)
	}
	constraint, err := semver.NewConstraint(ProductDatasetVersions)
	if err != nil {
		return err
	}
	if !constraint.Check(version) {
		return fmt.Errorf("product document version %s is not within %q", version, ProductDatasetVersions)
	}
	return nil
}

// toProduct skips records without a SKU or with an id that is not a UUID.
// A record without an id gets one derived from its SKU so it stays stable
// across reloads.
func (rec productRecord) toProduct() (product.Product, bool) {
	sku := strings.TrimSpace(rec.SKU)
	if sku == "" {
		return product.Product{}, false
	}

	id := strings.TrimSpace(rec.ID)
	if id == "" {
		id = uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToUpper(sku))).String()
	} else {
		parsed, err := uuid.Parse(id)
		if err != nil {
			return product.Product{}, false
		}
		id = parsed.String()
	}

	typ := product.Type(strings.ToLower(strings.TrimSpace(rec.Type)))
	if !typ.IsValid() {
		typ = ""
	}

	price := rec.Price.Float()
	if price != nil && *price < 0 {
		price = nil
	}
	rating := rec.Rating.Float()
	if rating != nil && (*rating < 0 || *rating > 5) {
		rating = nil
	}

	return product.Product{
		ID:       id,
		SKU:      sku,
		Name:     rec.Name,
		Type:     typ,
		Category: rec.Category,
		Price:    price,
		Rating:   rating,
		InStock:  bool(rec.InStock),
		Tags:     rec.Tags,
	}, true
}
