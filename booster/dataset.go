package booster

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// trainingSet is the immutable view of the data one training call works on.
// Rows are always referenced by index; subsets are index slices, never
// copies of the data itself. A NaN attribute value marks a missing entry.
type trainingSet struct {
	x     *mat.Dense
	y     []float64 // negative-gradient proxies
	w     []float64 // hessian proxies
	nAttr int
}

func newTrainingSet(X mat.Matrix, y, w []float64) *trainingSet {
	_, cols := X.Dims()
	return &trainingSet{
		x:     mat.DenseCopyOf(X),
		y:     y,
		w:     w,
		nAttr: cols,
	}
}

func (ts *trainingSet) rows() int { return len(ts.y) }

func (ts *trainingSet) value(row, attr int) float64 { return ts.x.At(row, attr) }

func (ts *trainingSet) target(row int) float64 { return ts.y[row] }

func (ts *trainingSet) weight(row int) float64 { return ts.w[row] }

func (ts *trainingSet) missing(row, attr int) bool {
	return math.IsNaN(ts.x.At(row, attr))
}

// subsetStats sums the statistics of a row-index subset.
func (ts *trainingSet) subsetStats(indices []int) Stats {
	var s Stats
	for _, i := range indices {
		s.Update(ts.target(i), ts.weight(i), true)
	}
	return s
}

// sortByAttr returns the subset's indices ordered by the attribute's value
// ascending. Rows with a missing value are excluded: they cannot serve as
// split boundaries and do not enter the scan statistics.
func (ts *trainingSet) sortByAttr(indices []int, attr int) []int {
	order := make([]int, 0, len(indices))
	for _, i := range indices {
		if !ts.missing(i, attr) {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return ts.value(order[a], attr) < ts.value(order[b], attr)
	})
	return order
}

// partition splits a subset at value < threshold. Missing values compare
// false and therefore land on the right (>=) side.
func (ts *trainingSet) partition(indices []int, attr int, threshold float64) (left, right []int) {
	left = make([]int, 0, len(indices))
	right = make([]int, 0, len(indices))
	for _, i := range indices {
		if ts.value(i, attr) < threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return left, right
}
