package cyclic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/juggle/cyclic"
)

func TestSeq_ModularIndexing(t *testing.T) {
	s := cyclic.From([]int{1, 2, 3})

	assert.Equal(t, 1, s.At(0))
	assert.Equal(t, 1, s.At(3))
	assert.Equal(t, 3, s.At(-1))
	assert.Equal(t, 2, s.At(-5))
	assert.Equal(t, 2, s.Index(7))

	s.Set(4, 9)
	assert.Equal(t, []int{1, 9, 3}, s.Values())
	s.Set(-3, 7)
	assert.Equal(t, []int{7, 9, 3}, s.Values())
}

func TestSeq_Empty(t *testing.T) {
	var s cyclic.Seq[int]
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 0, s.At(5))
	s.Set(2, 4)
	s.RotateLeft(3)
	assert.Empty(t, s.Values())

	neg := cyclic.New(-2, 1)
	assert.Equal(t, 0, neg.Len())
}

func TestSeq_Rotate(t *testing.T) {
	s := cyclic.From([]int{1, 2, 3, 4, 5})

	s.RotateLeft(2)
	assert.Equal(t, []int{3, 4, 5, 1, 2}, s.Values())

	s.RotateRight(2)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Values())

	s.RotateRight(1)
	assert.Equal(t, []int{5, 1, 2, 3, 4}, s.Values())

	s.RotateLeft(6) // same as 1
	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Values())

	s.RotateLeft(-1)
	assert.Equal(t, []int{5, 1, 2, 3, 4}, s.Values())
}

func TestSeq_CloneIsIndependent(t *testing.T) {
	s := cyclic.New(3, 'x')
	c := s.Clone()
	c.Set(0, 'y')

	require.Equal(t, 3, c.Len())
	assert.Equal(t, 'x', s.At(0))
	assert.Equal(t, 'y', c.At(0))

	vals := s.Values()
	vals[1] = 'z'
	assert.Equal(t, 'x', s.At(1), "Values must return a copy")
}

func TestSeq_FromCopiesInput(t *testing.T) {
	in := []int{4, 4, 1}
	s := cyclic.From(in)
	in[0] = 0
	assert.Equal(t, 4, s.At(0))
}
