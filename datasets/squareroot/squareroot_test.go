package squareroot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	tb := Table(Tiny())
	require.Equal(t, 64, tb.Len())
	assert.Equal(t, []float64{10}, tb.Rows[10])
	assert.Equal(t, 3, tb.Classes[10])
	assert.Equal(t, 7, tb.Classes[63])

	_, l, err := tb.Build()
	require.NoError(t, err)
	assert.Equal(t, 1<<TinyClasses, l.NumClasses())
}

func TestSize(t *testing.T) {
	assert.Len(t, Size("small"), 256)
	assert.Len(t, Size("medium"), 1024)
	assert.Nil(t, Size("enormous"))
	assert.Equal(t, 1<<SmallClasses, Small()[255].Output()+1)
}
