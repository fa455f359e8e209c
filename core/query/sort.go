package query

import (
	"cmp"
	"slices"
	"strings"
)

// Direction is the ordering direction of a sort.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Directions lists the supported sort directions.
var Directions = []string{string(Ascending), string(Descending)}

// SortKey is one sortable field of T.
type SortKey[T any] struct {
	Name    string
	null    func(T) bool
	compare func(a, b T) int
}

// NumberKey builds a sort key over a nullable numeric field.
func NumberKey[T any](name string, value func(T) (float64, bool)) SortKey[T] {
	return SortKey[T]{
		Name: name,
		null: func(rec T) bool {
			_, ok := value(rec)
			return !ok
		},
		compare: func(a, b T) int {
			av, _ := value(a)
			bv, _ := value(b)
			return cmp.Compare(av, bv)
		},
	}
}

// TextKey builds a sort key over a nullable string field, compared without
// regard to case.
func TextKey[T any](name string, value func(T) (string, bool)) SortKey[T] {
	return SortKey[T]{
		Name: name,
		null: func(rec T) bool {
			_, ok := value(rec)
			return !ok
		},
		compare: func(a, b T) int {
			av, _ := value(a)
			bv, _ := value(b)
			return strings.Compare(strings.ToLower(av), strings.ToLower(bv))
		},
	}
}

// SortKeys is the fixed set of keys a record type can be sorted by.
type SortKeys[T any] []SortKey[T]

// Lookup finds a key by name.
func (keys SortKeys[T]) Lookup(name string) (SortKey[T], bool) {
	for _, k := range keys {
		if strings.EqualFold(k.Name, name) {
			return k, true
		}
	}
	return SortKey[T]{}, false
}

// Names returns the key names in declaration order.
func (keys SortKeys[T]) Names() []string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.Name)
	}
	return names
}

// Sort orders records by Key in Direction.
type Sort[T any] struct {
	Key       SortKey[T]
	Direction Direction
}

// NewSort resolves name against keys. An unknown key or direction is an
// InvalidParameterError; an empty direction means ascending.
func NewSort[T any](keys SortKeys[T], name string, direction string) (*Sort[T], error) {
	key, ok := keys.Lookup(name)
	if !ok {
		return nil, invalidParam("sort", name, "must be one of ["+strings.Join(keys.Names(), " ")+"]")
	}

	dir := Direction(strings.ToLower(direction))
	switch dir {
	case "":
		dir = Ascending
	case Ascending, Descending:
	default:
		return nil, invalidParam("direction", direction, "must be one of ["+strings.Join(Directions, " ")+"]")
	}

	return &Sort[T]{Key: key, Direction: dir}, nil
}

// apply sorts items in place. Null values come first in both directions and
// equal keys keep their relative order.
func (s Sort[T]) apply(items []T) {
	if s.Key.compare == nil {
		return
	}
	slices.SortStableFunc(items, func(a, b T) int {
		an, bn := s.Key.null(a), s.Key.null(b)
		switch {
		case an && bn:
			return 0
		case an:
			return -1
		case bn:
			return 1
		}

		c := s.Key.compare(a, b)
		if s.Direction == Descending {
			c = -c
		}
		return c
	})
}
