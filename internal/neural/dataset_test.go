package neural_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallcluster/cbnn/internal/neural"
)

func TestDataTable_RowMajorAccess(t *testing.T) {
	table, err := neural.NewDataTable(3, []float64{
		1, 2, 3,
		4, 5, 6,
	})
	require.NoError(t, err)

	assert.Equal(t, 3, table.Width())
	assert.Equal(t, 2, table.Size())
	assert.Equal(t, 1.0, table.Get(0, 0))
	assert.Equal(t, 6.0, table.Get(1, 2))
	assert.Equal(t, 5.0, table.Get(1, 1))
}

func TestDataTable_RejectsRaggedData(t *testing.T) {
	_, err := neural.NewDataTable(3, []float64{1, 2, 3, 4})
	assert.Error(t, err)

	_, err = neural.NewDataTable(0, nil)
	assert.Error(t, err)
}

func TestDataSet_RejectsRowCountMismatch(t *testing.T) {
	in, err := neural.NewDataTable(2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	out, err := neural.NewDataTable(1, []float64{1})
	require.NoError(t, err)

	_, err = neural.NewDataSet(in, out)
	assert.Error(t, err)

	out, err = neural.NewDataTable(1, []float64{1, 2})
	require.NoError(t, err)
	ds, err := neural.NewDataSet(in, out)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Size())
}
