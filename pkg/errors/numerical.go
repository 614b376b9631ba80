package errors

import (
	"math"
)

// CheckNumericalStability returns an error if values contain NaN or Inf.
func CheckNumericalStability(operation string, values []float64, row int) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values, row)
		}
	}
	return nil
}

// CheckScalar checks a single scalar value for numerical instability.
func CheckScalar(operation string, value float64, row int) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return NewNumericalInstabilityError(operation, []float64{value}, row)
	}
	return nil
}

// CheckColumn checks one column of a matrix for NaN or Inf entries. Unlike
// attribute columns, where NaN marks a missing value, the target and weight
// columns must be entirely finite.
func CheckColumn(operation string, m interface{ At(int, int) float64 }, rows, col int) error {
	for i := 0; i < rows; i++ {
		v := m.At(i, col)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, []float64{v}, i)
		}
	}
	return nil
}
