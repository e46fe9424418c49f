package neural

import "fmt"

// DataTable is a flat row-major table of float64 values with a fixed row
// width.
type DataTable struct {
	width int
	data  []float64
}

// NewDataTable validates and wraps a flat row-major value slice.
func NewDataTable(width int, data []float64) (DataTable, error) {
	if width <= 0 {
		return DataTable{}, fmt.Errorf("neural: table width must be positive, got %d", width)
	}
	if len(data)%width != 0 {
		return DataTable{}, fmt.Errorf("neural: %d values do not divide into rows of width %d", len(data), width)
	}
	return DataTable{width: width, data: data}, nil
}

// Width returns the number of columns.
func (t DataTable) Width() int { return t.width }

// Size returns the number of rows.
func (t DataTable) Size() int { return len(t.data) / t.width }

// Get returns the value at (row, col).
func (t DataTable) Get(row, col int) float64 {
	return t.data[row*t.width+col]
}

// DataSet pairs an input table with an output table row for row.
type DataSet struct {
	inputs  DataTable
	outputs DataTable
}

// NewDataSet validates that both tables have the same number of rows.
func NewDataSet(inputs, outputs DataTable) (DataSet, error) {
	if inputs.Size() != outputs.Size() {
		return DataSet{}, fmt.Errorf("neural: input table has %d rows, output table has %d",
			inputs.Size(), outputs.Size())
	}
	return DataSet{inputs: inputs, outputs: outputs}, nil
}

// InputTable returns the input columns.
func (d DataSet) InputTable() DataTable { return d.inputs }

// OutputTable returns the expected-output columns.
func (d DataSet) OutputTable() DataTable { return d.outputs }

// Size returns the number of examples.
func (d DataSet) Size() int { return d.inputs.Size() }
