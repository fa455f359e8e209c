package stock

import (
	"fmt"
)

type NotFoundError struct {
	Ticker string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("could not find stock %q", err.Ticker)
}
