package validator

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// Validator is contract to do validation
type Validator interface {
	Validate(interface{}) error
}

// Translation is a type to describe how to translate
type Translation struct {
	Tag             string
	Message         string
	Override        bool
	TranslationFunc func(ut.Translator, validator.FieldError) string
}

// Violation is one failed constraint.
type Violation struct {
	Field   string
	Value   interface{}
	Tag     string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %s", v.Field, v.Message)
}

// Violations is the error returned by Validate.
type Violations []Violation

func (vs Violations) Error() string {
	msgs := make([]string, 0, len(vs))
	for _, v := range vs {
		msgs = append(msgs, v.String())
	}
	return strings.Join(msgs, " and ")
}
