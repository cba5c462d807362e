// SPDX-License-Identifier: MIT
package boundary

import (
	"fmt"
	"math"
	"reflect"

	"github.com/go-viper/mapstructure/v2"
)

// Keyword names accepted by ConstructTreeKeywords.
const (
	KeyAlgorithm       = "algorithm"
	KeySequences       = "sequences"
	KeyDistances       = "distances"
	KeyNumberOfThreads = "number_of_threads"
	KeyPrecision       = "precision"
	KeyVerbosity       = "verbosity"
)

// DecodeRequest decodes a keyword map into a Request. Unknown keywords, text
// for an integer, or a non-integral number for an integer fail with
// ErrInvalidArguments. Absent keywords keep their zero value.
func DecodeRequest(kw map[string]any) (Request, error) {
	var req Request
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &req,
		ErrorUnused: true,
		DecodeHook:  mapstructure.DecodeHookFuncType(integralHook),
	})
	if err != nil {
		return Request{}, err
	}
	if err := dec.Decode(kw); err != nil {
		e := newError(ErrInvalidArguments, "invalid arguments: %v", err)
		e.Cause = err

		return Request{}, e
	}

	return req, nil
}

// ConstructTreeKeywords decodes kw and runs ConstructTree.
func ConstructTreeKeywords(kw map[string]any, opts ...Option) (string, error) {
	req, err := DecodeRequest(kw)
	if err != nil {
		return "", err
	}

	return ConstructTree(req, opts...)
}

// integralHook rejects float inputs with a fractional part for int targets;
// mapstructure would otherwise truncate them.
func integralHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.Int {
		return data, nil
	}
	var f float64
	switch from.Kind() {
	case reflect.Float32, reflect.Float64:
		f = reflect.ValueOf(data).Float()
	default:
		return data, nil
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%v is not an integer", data)
	}

	return int(f), nil
}
