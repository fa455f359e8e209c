package validator

import (
	"strings"
	"sync"
)

var (
	defaultOnce      sync.Once
	defaultValidator Validator
)

// Default returns the shared validator used for request parameters. Its
// messages omit the field name so callers can attach their own.
func Default() Validator {
	defaultOnce.Do(func() {
		v, err := NewBuilder().
			WithTranslations([]Translation{
				{Tag: "required", Message: "cannot be empty", Override: true},
				{Tag: "oneof", Message: "must be one of [{0}]", Override: true},
				{Tag: "gt", Message: "must be greater than {0}", Override: true},
				{Tag: "gte", Message: "must be {0} or greater", Override: true},
				{Tag: "lt", Message: "must be less than {0}", Override: true},
				{Tag: "lte", Message: "must be {0} or less", Override: true},
			}).
			Build()
		if err != nil {
			panic(err)
		}
		defaultValidator = v
	})
	return defaultValidator
}

// ValidateOneOf checks that value, when set, is one of enums.
func ValidateOneOf(field, value string, enums ...string) error {
	if value == "" {
		return nil
	}
	for _, e := range enums {
		if value == e {
			return nil
		}
	}
	return Violations{{
		Field:   field,
		Value:   value,
		Tag:     "oneof",
		Message: "must be one of [" + strings.Join(enums, " ") + "]",
	}}
}
