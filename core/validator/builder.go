package validator

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translation "github.com/go-playground/validator/v10/translations/en"
)

const defaultLocale = "en"

// Builder assembles a Validator from custom translations on top of the
// English defaults.
type Builder struct {
	translations []Translation

	validate   *validator.Validate
	translator ut.Translator
}

// NewBuilder initializes builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithTranslations tells builder to include custom translation
func (b *Builder) WithTranslations(translations []Translation) *Builder {
	output := *b
	output.translations = translations
	return &output
}

// Build builds the validator
func (b *Builder) Build() (Validator, error) {
	universalTranslator := ut.New(en.New(), en.New())
	b.translator, _ = universalTranslator.GetTranslator(defaultLocale)

	b.validate = validator.New()
	b.validate.RegisterTagNameFunc(jsonTagName)
	if err := en_translation.RegisterDefaultTranslations(b.validate, b.translator); err != nil {
		return nil, err
	}

	for _, t := range b.translations {
		transFunc := t.TranslationFunc
		if transFunc == nil {
			transFunc = paramTransFunc
		}
		if err := b.validate.RegisterTranslation(t.Tag, b.translator, registerFn(t.Tag, t.Message, t.Override), transFunc); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Validate checks s against its validate tags. Violations are returned in
// struct field order.
func (b *Builder) Validate(s interface{}) error {
	err := b.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	violations := make(Violations, 0, len(validationErrs))
	for _, fe := range validationErrs {
		violations = append(violations, Violation{
			Field:   fieldPath(fe.Namespace()),
			Value:   fe.Value(),
			Tag:     fe.Tag(),
			Message: fe.Translate(b.translator),
		})
	}
	return violations
}

// fieldPath drops the struct name from a namespace such as
// "Filter.sectors[0]".
func fieldPath(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		return strings.Join(parts[1:], ".")
	}
	return parts[0]
}

func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func paramTransFunc(t ut.Translator, fe validator.FieldError) string {
	output, _ := t.T(fe.Tag(), fe.Param())
	return output
}

func registerFn(tag, translation string, override bool) validator.RegisterTranslationsFunc {
	return func(t ut.Translator) error {
		return t.Add(tag, translation, override)
	}
}
