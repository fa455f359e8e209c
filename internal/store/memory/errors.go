package memory

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrKeyChanged     = errors.New("record key cannot be changed")
	ErrNilSource      = errors.New("store has no source")
)

// NotFoundError is returned when a configured dataset file does not exist.
type NotFoundError struct {
	Path string
}

func (err NotFoundError) Error() string {
	return fmt.Sprintf("dataset file not found: %s", err.Path)
}

// LoadError reports a dataset that exists but cannot be used at all, such
// as a CSV without its key column or malformed JSON.
type LoadError struct {
	Source string
	Err    error
}

func (err LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %s", err.Source, err.Err)
}

func (err LoadError) Unwrap() error {
	return err.Err
}
