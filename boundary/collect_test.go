// SPDX-License-Identifier: MIT
package boundary_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/decenttree/boundary"
	"github.com/katalvlaran/decenttree/ndarray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labelSeq is a custom Sequence implementation.
type labelSeq []string

func (s labelSeq) Len() int     { return len(s) }
func (s labelSeq) At(i int) any { return s[i] }

type taxon struct{ id int }

func (t taxon) String() string { return "taxon-" + string(rune('0'+t.id)) }

// TestStrings_Coercion accepts any scalar with a text form.
func TestStrings_Coercion(t *testing.T) {
	got, err := boundary.Strings("sequences", []any{"A", 1, 2.5, true, taxon{7}, errors.New("e")})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "1", "2.5", "true", "taxon-7", "e"}, got)

	got, err = boundary.Strings("sequences", labelSeq{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got)

	got, err = boundary.Strings("sequences", [2]string{"p", "q"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q"}, got)
}

// TestStrings_CopiesInput makes sure the label list does not alias the caller's slice.
func TestStrings_CopiesInput(t *testing.T) {
	in := []string{"A", "B", "C"}
	got, err := boundary.Strings("sequences", in)
	require.NoError(t, err)
	in[0] = "Z"
	assert.Equal(t, "A", got[0])
}

// TestStrings_Errors covers non-sequences and uncoercible elements.
func TestStrings_Errors(t *testing.T) {
	_, err := boundary.Strings("names", map[string]int{"A": 1})
	requireKind(t, err, boundary.ErrNotASequence)
	assert.Equal(t, "Error: names is not a sequence.", err.Error())

	_, err = boundary.Strings("names", []byte("ABC"))
	requireKind(t, err, boundary.ErrNotASequence)

	_, err = boundary.Strings("names", []any{"A", "B", []int{1}})
	requireKind(t, err, boundary.ErrElementNotTextCoercible)
	assert.Contains(t, err.Error(), "item 2")
}

// TestFloat64s_Coercion accepts Go numeric kinds and booleans.
func TestFloat64s_Coercion(t *testing.T) {
	got, err := boundary.Float64s("distances", []any{0, int64(1), float32(2.5), uint8(3), true, 4.25})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2.5, 3, 1, 4.25}, got)

	got, err = boundary.Float64s("distances", []int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)

	got, err = boundary.Float64s("distances", []any(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestFloat64s_Errors rejects text, nil and nested rows on the sequence path.
func TestFloat64s_Errors(t *testing.T) {
	for name, in := range map[string]any{
		"text":   []any{1.0, "2"},
		"nil":    []any{1.0, nil},
		"nested": [][]float64{{0, 1}, {1, 0}},
	} {
		_, err := boundary.Float64s("distances", in)
		e := requireKind(t, err, boundary.ErrElementNotNumeric)
		assert.Equal(t, "ELEMENT_NOT_NUMERIC", e.Code(), name)
	}

	_, err := boundary.Float64s("distances", "0 1 2")
	requireKind(t, err, boundary.ErrNotASequence)
}

// TestReadTyped covers the borrowed path and its rejections.
func TestReadTyped(t *testing.T) {
	data := []float64{0, 1, 1, 0}
	a, err := ndarray.NewFloat64(data, 2, 2)
	require.NoError(t, err)

	buf, err := boundary.ReadTyped(a)
	require.NoError(t, err)
	assert.True(t, buf.Borrowed)
	assert.Equal(t, 4, buf.Len())
	assert.Same(t, &data[0], &buf.Data[0])

	f32, err := ndarray.NewFloat32([]float32{0, 1, 1, 0}, 2, 2)
	require.NoError(t, err)
	_, err = boundary.ReadTyped(f32)
	requireKind(t, err, boundary.ErrWrongElementType)

	scalar, err := ndarray.NewFloat64([]float64{1})
	require.NoError(t, err)
	_, err = boundary.ReadTyped(scalar)
	e := requireKind(t, err, boundary.ErrWrongDimensionality)
	assert.Contains(t, e.Message, "has 0 dimensions")

	_, err = boundary.ReadTyped(nil)
	requireKind(t, err, boundary.ErrMissingDistances)
}

// foreignArray is an ndarray.Array whose Size and storage may disagree
// with its shape.
type foreignArray struct {
	shape []int
	size  int
	data  []float64
}

func (a foreignArray) DType() ndarray.DType { return ndarray.Float64 }
func (a foreignArray) NDim() int            { return len(a.shape) }
func (a foreignArray) Shape() []int         { return append([]int(nil), a.shape...) }
func (a foreignArray) Size() int            { return a.size }
func (a foreignArray) Float64s() []float64  { return a.data }

// TestReadTyped_CountFromShape sizes the borrowed buffer by the extents and
// rejects storage that is shorter than the shape.
func TestReadTyped_CountFromShape(t *testing.T) {
	long := make([]float64, 9)
	buf, err := boundary.ReadTyped(foreignArray{shape: []int{2, 2}, size: 9, data: long})
	require.NoError(t, err)
	assert.Equal(t, 4, buf.Len())
	assert.True(t, buf.Borrowed)

	cases := []struct {
		name string
		arr  foreignArray
	}{
		{"storage shorter than shape", foreignArray{shape: []int{3, 3}, size: 9, data: make([]float64, 4)}},
		{"nil storage", foreignArray{shape: []int{9}, size: 9}},
		{"negative extent", foreignArray{shape: []int{-1, 3}, size: 0, data: long}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := boundary.ReadTyped(tc.arr)
			requireKind(t, err, boundary.ErrWrongElementType)
		})
	}
}
