package query

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goto/screener/core/validator"
)

const (
	ParamSort      = "sort"
	ParamDirection = "direction"
	ParamPage      = "page"
	ParamPageSize  = "page_size"
	ParamQuery     = "q"
)

// Params are untrusted request parameters: query string values or a flattened
// JSON body.
type Params = url.Values

// lookup returns the first non blank value found under any of keys.
func lookup(params Params, keys ...string) (key, raw string, ok bool) {
	for _, k := range keys {
		v := strings.TrimSpace(params.Get(k))
		if v != "" {
			return k, v, true
		}
	}
	return "", "", false
}

// Float parses an optional finite number. Blank or absent yields nil.
func Float(params Params, keys ...string) (*float64, error) {
	key, raw, ok := lookup(params, keys...)
	if !ok {
		return nil, nil
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || !isFinite(f) {
		return nil, invalidParam(key, raw, "must be a finite number")
	}
	return &f, nil
}

// Int parses an optional integer. Blank or absent yields nil.
func Int(params Params, keys ...string) (*int, error) {
	key, raw, ok := lookup(params, keys...)
	if !ok {
		return nil, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, invalidParam(key, raw, "must be an integer")
	}
	return &n, nil
}

// Bool is lenient: "true", "1" and "yes" in any case are true, everything
// else including absence is false.
func Bool(params Params, key string) bool {
	switch strings.ToLower(strings.TrimSpace(params.Get(key))) {
	case "true", "1", "yes":
		return true
	}
	return false
}

// List gathers repeated and comma separated values, dropping blanks.
func List(params Params, keys ...string) []string {
	var out []string
	for _, k := range keys {
		for _, value := range params[k] {
			for _, v := range strings.Split(value, ",") {
				if v = strings.TrimSpace(v); v != "" {
					out = append(out, v)
				}
			}
		}
	}
	return out
}

// Text returns the trimmed value of key.
func Text(params Params, key string) string {
	return strings.TrimSpace(params.Get(key))
}

// PageFrom reads page and page_size. Absent values fall back to page 1 and
// DefaultPageSize; present values are clamped.
func PageFrom(params Params) (Page, error) {
	number, err := Int(params, ParamPage)
	if err != nil {
		return Page{}, err
	}
	size, err := Int(params, ParamPageSize, "size", "limit")
	if err != nil {
		return Page{}, err
	}

	p := Page{Number: 1, Size: DefaultPageSize}
	if number != nil {
		p.Number = *number
	}
	if size != nil {
		p.Size = *size
	}
	return NewPage(p.Number, p.Size), nil
}

// Validate runs v over s and reports the first violation as an
// InvalidParameterError.
func Validate(v validator.Validator, s interface{}) error {
	return fromViolations(v.Validate(s))
}

// ValidateOneOf reports value as an InvalidParameterError on field unless
// it is blank or one of enums.
func ValidateOneOf(field, value string, enums ...string) error {
	return fromViolations(validator.ValidateOneOf(field, value, enums...))
}

func fromViolations(err error) error {
	if err == nil {
		return nil
	}

	var violations validator.Violations
	if errors.As(err, &violations) && len(violations) > 0 {
		first := violations[0]
		return InvalidParameterError{
			Field:  first.Field,
			Value:  formatValue(first.Value),
			Reason: first.Message,
		}
	}
	return err
}

func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case *float64:
		if t == nil {
			return ""
		}
		return strconv.FormatFloat(*t, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}

// FlattenJSON converts a decoded JSON object into Params. Numbers and
// booleans are rendered as strings, arrays become repeated values and nulls
// are dropped. Nested objects are rejected.
func FlattenJSON(body map[string]interface{}) (Params, error) {
	params := Params{}
	for key, value := range body {
		switch v := value.(type) {
		case nil:
		case []interface{}:
			if len(v) == 0 {
				params[key] = []string{}
			}
			for _, item := range v {
				s, err := scalarString(key, item)
				if err != nil {
					return nil, err
				}
				params.Add(key, s)
			}
		default:
			s, err := scalarString(key, v)
			if err != nil {
				return nil, err
			}
			params.Set(key, s)
		}
	}
	return params, nil
}

func scalarString(key string, v interface{}) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	}
	return "", invalidParam(key, fmt.Sprint(v), "must be a string, number, boolean or list of them")
}
