package subset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/multiclass/fault"
)

func TestStack_PushPop(t *testing.T) {
	s := New(9)
	assert.Equal(t, 9, s.Len())
	assert.Equal(t, 0, s.Depth())

	require.NoError(t, s.Push([]int{2, 5}))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []int{2, 5}, s.Rows())

	require.NoError(t, s.Pop())
	assert.Equal(t, 9, s.Len())
	assert.Equal(t, 0, s.Depth())
}

func TestStack_NestedPushesCompose(t *testing.T) {
	s := New(10)
	require.NoError(t, s.Push([]int{9, 7, 5, 3, 1}))
	require.NoError(t, s.Push([]int{4, 0}))

	assert.Equal(t, []int{1, 9}, s.Rows())
	assert.Equal(t, 2, s.Depth())

	require.NoError(t, s.Pop())
	assert.Equal(t, []int{9, 7, 5, 3, 1}, s.Rows())
	require.NoError(t, s.Pop())
	assert.Equal(t, 10, s.Len())
}

func TestStack_EmptyPushHidesAllRows(t *testing.T) {
	s := New(4)
	require.NoError(t, s.Push(nil))
	assert.Equal(t, 0, s.Len())
	require.NoError(t, s.Pop())
	assert.Equal(t, 4, s.Len())
}

func TestStack_PushOutOfRange(t *testing.T) {
	s := New(3)
	require.NoError(t, s.Push([]int{0, 1}))

	err := s.Push([]int{2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fault.ErrIndex))
	assert.True(t, errors.Is(err, fault.ErrInvariant))
	assert.Equal(t, 1, s.Depth(), "failed push must not change the view")
}

func TestStack_UnbalancedPop(t *testing.T) {
	s := New(3)
	err := s.Pop()
	require.Error(t, err)
	assert.True(t, errors.Is(err, fault.ErrInvariant))
	assert.False(t, errors.Is(err, fault.ErrIndex))
}
