package query

import (
	"math"
	"strings"
)

// Filter is a single predicate of a Criteria. Filters of one Criteria are
// combined with a logical AND.
type Filter[T any] interface {
	// Field names the record field the filter reads.
	Field() string
	// Active reports whether the filter restricts anything at all.
	Active() bool
	Match(rec T) bool
}

// RangeFilter keeps records whose numeric field lies within [min, max].
// Either bound may be omitted. A record without the field never matches.
type RangeFilter[T any] struct {
	field string
	min   *float64
	max   *float64
	value func(T) (float64, bool)
}

// NewRange builds a range filter. A missing field name, a nil accessor or a
// non finite bound is rejected here so evaluation never sees them.
func NewRange[T any](field string, min, max *float64, value func(T) (float64, bool)) (RangeFilter[T], error) {
	if field == "" {
		return RangeFilter[T]{}, ErrEmptyField
	}
	if value == nil {
		return RangeFilter[T]{}, ErrNilAccessor
	}
	if min != nil && !isFinite(*min) {
		return RangeFilter[T]{}, ErrNonFiniteMin
	}
	if max != nil && !isFinite(*max) {
		return RangeFilter[T]{}, ErrNonFiniteMax
	}
	return RangeFilter[T]{field: field, min: min, max: max, value: value}, nil
}

func (f RangeFilter[T]) Field() string { return f.field }

func (f RangeFilter[T]) Active() bool { return f.min != nil || f.max != nil }

func (f RangeFilter[T]) Match(rec T) bool {
	v, ok := f.value(rec)
	if !ok {
		return false
	}
	if f.min != nil && v < *f.min {
		return false
	}
	if f.max != nil && v > *f.max {
		return false
	}
	return true
}

// SetFilter keeps records whose field value is a member of the allowed set.
// An empty allowed set restricts nothing.
type SetFilter[T any] struct {
	field    string
	allowed  map[string]struct{}
	foldCase bool
	value    func(T) (string, bool)
}

// NewSet builds a membership filter. With foldCase the comparison ignores case.
func NewSet[T any](field string, values []string, foldCase bool, value func(T) (string, bool)) (SetFilter[T], error) {
	if field == "" {
		return SetFilter[T]{}, ErrEmptyField
	}
	if value == nil {
		return SetFilter[T]{}, ErrNilAccessor
	}

	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		if foldCase {
			v = strings.ToLower(v)
		}
		allowed[v] = struct{}{}
	}
	return SetFilter[T]{field: field, allowed: allowed, foldCase: foldCase, value: value}, nil
}

// NewEnumSet is NewSet for enumerated fields: every requested value must be
// one of enums, otherwise an InvalidParameterError naming the value is returned.
func NewEnumSet[T any](field string, values, enums []string, value func(T) (string, bool)) (SetFilter[T], error) {
	for _, v := range values {
		if !containsFold(enums, v) {
			return SetFilter[T]{}, invalidParam(field, v, "must be one of ["+strings.Join(enums, " ")+"]")
		}
	}
	return NewSet(field, values, true, value)
}

func (f SetFilter[T]) Field() string { return f.field }

func (f SetFilter[T]) Active() bool { return len(f.allowed) > 0 }

func (f SetFilter[T]) Match(rec T) bool {
	if len(f.allowed) == 0 {
		return true
	}
	v, ok := f.value(rec)
	if !ok {
		return false
	}
	if f.foldCase {
		v = strings.ToLower(v)
	}
	_, found := f.allowed[v]
	return found
}

// BoolFilter keeps records whose boolean field equals want. It is only
// active when enabled, so a lenient "false" parameter leaves records alone.
type BoolFilter[T any] struct {
	field   string
	enabled bool
	want    bool
	value   func(T) bool
}

func NewBool[T any](field string, enabled, want bool, value func(T) bool) (BoolFilter[T], error) {
	if field == "" {
		return BoolFilter[T]{}, ErrEmptyField
	}
	if value == nil {
		return BoolFilter[T]{}, ErrNilAccessor
	}
	return BoolFilter[T]{field: field, enabled: enabled, want: want, value: value}, nil
}

func (f BoolFilter[T]) Field() string { return f.field }

func (f BoolFilter[T]) Active() bool { return f.enabled }

func (f BoolFilter[T]) Match(rec T) bool {
	if !f.enabled {
		return true
	}
	return f.value(rec) == f.want
}

// TextFilter keeps records where any of the searched fields contains the
// needle, ignoring case. An empty needle restricts nothing.
type TextFilter[T any] struct {
	field  string
	needle string
	values func(T) []string
}

func NewText[T any](field, needle string, values func(T) []string) (TextFilter[T], error) {
	if field == "" {
		return TextFilter[T]{}, ErrEmptyField
	}
	if values == nil {
		return TextFilter[T]{}, ErrNilAccessor
	}
	return TextFilter[T]{field: field, needle: strings.ToLower(strings.TrimSpace(needle)), values: values}, nil
}

func (f TextFilter[T]) Field() string { return f.field }

func (f TextFilter[T]) Active() bool { return f.needle != "" }

func (f TextFilter[T]) Match(rec T) bool {
	if f.needle == "" {
		return true
	}
	for _, v := range f.values(rec) {
		if strings.Contains(strings.ToLower(v), f.needle) {
			return true
		}
	}
	return false
}

// Criteria describes one query: filters, an optional sort and a page.
// The zero value selects every record in natural order on the first page.
type Criteria[T any] struct {
	Filters []Filter[T]
	Sort    *Sort[T]
	Page    Page
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func containsFold(values []string, v string) bool {
	for _, s := range values {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
