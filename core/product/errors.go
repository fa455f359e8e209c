package product

import (
	"fmt"
)

type NotFoundError struct {
	ID  string
	SKU string
}

func (err NotFoundError) Error() string {
	if err.ID != "" {
		return fmt.Sprintf("could not find product with id %q", err.ID)
	}
	return fmt.Sprintf("could not find product with sku %q", err.SKU)
}
