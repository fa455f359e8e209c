package product

//go:generate mockery --name=Repository -r --case underscore --with-expecter --structname ProductRepository --filename product_repository.go --output=./mocks
import (
	"context"
)

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	GetBySKU(ctx context.Context, sku string) (Product, error)
}

type Type string

const (
	TypePhysical     Type = "physical"
	TypeDigital      Type = "digital"
	TypeSubscription Type = "subscription"
)

// Types lists every supported product Type.
var Types = []string{string(TypePhysical), string(TypeDigital), string(TypeSubscription)}

func (t Type) IsValid() bool {
	switch t {
	case TypePhysical, TypeDigital, TypeSubscription:
		return true
	}
	return false
}

// Product is a catalogue entry. ID is a UUID, SKU is the human facing code.
// Rating is nil for products nobody has rated yet.
type Product struct {
	ID       string   `json:"id"`
	SKU      string   `json:"sku"`
	Name     string   `json:"name"`
	Type     Type     `json:"type"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	Rating   *float64 `json:"rating"`
	InStock  bool     `json:"in_stock"`
	Tags     []string `json:"tags,omitempty"`
}
