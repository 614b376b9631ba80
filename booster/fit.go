package booster

import (
	"math"

	"github.com/grovelabs/xgrove/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// buildTrainingSet validates the training input and materializes the owned
// data view. This is the capability check: it runs before any statistics
// are computed, and a failure here is fatal to the training call.
//
// Targets and weights must be finite and weights non-negative. Attribute
// values may be NaN, which marks a missing entry, but not infinite. A nil
// sampleWeight means unit weights.
func buildTrainingSet(op string, X, y mat.Matrix, sampleWeight []float64) (*trainingSet, error) {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	yRows, yCols := y.Dims()
	if rows != yRows {
		return nil, errors.NewDimensionError(op, rows, yRows, 0)
	}
	if yCols != 1 {
		return nil, errors.NewDimensionError(op, 1, yCols, 1)
	}
	if sampleWeight != nil && len(sampleWeight) != rows {
		return nil, errors.NewDimensionError(op, rows, len(sampleWeight), 0)
	}
	if err := errors.CheckColumn(op+": target", y, rows, 0); err != nil {
		return nil, err
	}

	targets := make([]float64, rows)
	weights := make([]float64, rows)
	for i := 0; i < rows; i++ {
		targets[i] = y.At(i, 0)

		w := 1.0
		if sampleWeight != nil {
			w = sampleWeight[i]
		}
		if err := errors.CheckScalar(op+": weight", w, i); err != nil {
			return nil, err
		}
		if w < 0 {
			return nil, errors.NewValueError(op, "sample weights must be non-negative")
		}
		weights[i] = w

		for j := 0; j < cols; j++ {
			if math.IsInf(X.At(i, j), 0) {
				return nil, errors.NewNumericalInstabilityError(op+": attribute", []float64{X.At(i, j)}, i)
			}
		}
	}
	return newTrainingSet(X, targets, weights), nil
}

// predictMatrix runs a fitted structure over every row of X.
func predictMatrix(root node, X mat.Matrix) *mat.Dense {
	rows, cols := X.Dims()
	out := mat.NewDense(rows, 1, nil)
	row := make([]float64, cols)
	for i := 0; i < rows; i++ {
		mat.Row(row, i, X)
		out.Set(i, 0, root.predict(row))
	}
	return out
}
