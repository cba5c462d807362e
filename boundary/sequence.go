// SPDX-License-Identifier: MIT
package boundary

import (
	"errors"
	"reflect"

	"github.com/spf13/cast"
)

// Sequence is an indexable collection of loosely typed values.
// Any Go slice or array is treated as a Sequence too, except string and
// []byte, which are scalars at this boundary.
type Sequence interface {
	Len() int
	At(i int) any
}

// reflectSequence adapts a slice or array value.
type reflectSequence struct{ v reflect.Value }

func (s reflectSequence) Len() int     { return s.v.Len() }
func (s reflectSequence) At(i int) any { return s.v.Index(i).Interface() }

// asSequence reports whether v is sequence-shaped and returns a view of it.
// A nil interface is not a sequence; a nil slice is an empty one.
func asSequence(v any) (Sequence, bool) {
	if s, ok := v.(Sequence); ok {
		return s, true
	}
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
	case reflect.Array:
	default:
		return nil, false
	}

	return reflectSequence{v: rv}, true
}

var (
	errNilElement = errors.New("nil element")
	errTextNumber = errors.New("text is not a number")
)

// toText coerces a scalar to its text form: strings as-is, numbers and bools
// formatted, fmt.Stringer and error through their methods.
func toText(v any) (string, error) {
	if v == nil {
		return "", errNilElement
	}

	return cast.ToStringE(v)
}

// toFloat coerces a numeric scalar to float64. Booleans count as 0/1; text
// never does, even when it spells a number.
func toFloat(v any) (float64, error) {
	switch x := v.(type) {
	case nil:
		return 0, errNilElement
	case float64:
		return x, nil
	case string:
		return 0, errTextNumber
	}

	return cast.ToFloat64E(v)
}
