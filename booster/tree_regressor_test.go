package booster

import (
	"math"
	"testing"

	xgerrors "github.com/grovelabs/xgrove/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// exactTree returns a regressor with sampling and regularization disabled,
// so splits depend only on the data.
func exactTree() *TreeRegressor {
	return NewTreeRegressor().
		WithEta(1).WithLambda(0).WithGamma(0).
		WithSubsample(1).WithColsampleByNode(1).
		WithMinChildWeight(0)
}

func TestTreeRegressorScenario(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 10})
	y := mat.NewDense(4, 1, []float64{1, 1, -1, -1})

	tr := exactTree().WithMaxDepth(1)
	if err := tr.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	root, ok := tr.root.(*treeSplit)
	if !ok {
		t.Fatalf("root is %T, want *treeSplit", tr.root)
	}
	if math.Abs(root.threshold-2.5) > 1e-12 {
		t.Errorf("threshold = %v, want 2.5", root.threshold)
	}

	preds, err := tr.Predict(X)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	want := []float64{1, 1, -1, -1}
	for i, w := range want {
		if math.Abs(preds.At(i, 0)-w) > 1e-12 {
			t.Errorf("prediction[%d] = %v, want %v", i, preds.At(i, 0), w)
		}
	}

	leaves, err := tr.LeafCount()
	if err != nil {
		t.Fatalf("LeafCount: %v", err)
	}
	if leaves != 2 {
		t.Errorf("LeafCount = %d, want 2", leaves)
	}
}

func TestTreeRegressorGammaForcesRootLeaf(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 10})
	y := mat.NewDense(4, 1, []float64{1, 1, -1, -1})

	// The best attainable gain is 2.0; a larger gamma must reject every split.
	tr := exactTree().WithMaxDepth(4).WithGamma(10)
	if err := tr.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if _, ok := tr.root.(leaf); !ok {
		t.Fatalf("root is %T, want leaf", tr.root)
	}
	leaves, _ := tr.LeafCount()
	if leaves != 1 {
		t.Errorf("LeafCount = %d, want 1", leaves)
	}
}

// pathDepth reports the longest root-to-leaf path in internal nodes.
func pathDepth(n node) int {
	switch v := n.(type) {
	case leaf:
		return 0
	case *treeSplit:
		l, r := pathDepth(v.left), pathDepth(v.right)
		if l > r {
			return 1 + l
		}
		return 1 + r
	}
	return 0
}

func TestTreeRegressorDepthBound(t *testing.T) {
	n := 64
	X := mat.NewDense(n, 1, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		y.Set(i, 0, float64(i%7)) // enough structure to keep splitting
	}

	for _, depth := range []int{0, 1, 2, 3} {
		tr := exactTree().WithMaxDepth(depth)
		if err := tr.Fit(X, y); err != nil {
			t.Fatalf("Fit(depth=%d): %v", depth, err)
		}
		if got := pathDepth(tr.root); got > depth {
			t.Errorf("pathDepth = %d, exceeds max_depth %d", got, depth)
		}
	}
}

func TestTreeRegressorReproducible(t *testing.T) {
	n := 40
	X := mat.NewDense(n, 3, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		X.Set(i, 1, float64((i*7)%13))
		X.Set(i, 2, float64((i*3)%5))
		y.Set(i, 0, float64(i%2)*2-1)
	}

	a := exactTree().WithMaxDepth(4).WithSubsample(0.8).WithColsampleByNode(0.7).WithSeed(42)
	b := exactTree().WithMaxDepth(4).WithSubsample(0.8).WithColsampleByNode(0.7).WithSeed(42)
	if err := a.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if err := b.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if a.String() != b.String() {
		t.Errorf("same seed grew different trees:\n%s\nvs\n%s", a, b)
	}

	c := exactTree().WithMaxDepth(4).WithSubsample(0.8).WithColsampleByNode(0.7).WithSeed(7)
	if err := c.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	// Not guaranteed in general, but on this data a different seed draws a
	// different row subset.
	if a.String() == c.String() {
		t.Log("different seeds produced identical trees; check subsampling draw order")
	}
}

func TestTreeRegressorPredictIdempotent(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 10})
	y := mat.NewDense(4, 1, []float64{1, 1, -1, -1})

	tr := exactTree().WithMaxDepth(2)
	if err := tr.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	p1, err := tr.Predict(X)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	p2, err := tr.Predict(X)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for i := 0; i < 4; i++ {
		if p1.At(i, 0) != p2.At(i, 0) {
			t.Errorf("prediction[%d] differs between calls: %v vs %v", i, p1.At(i, 0), p2.At(i, 0))
		}
	}
}

func TestTreeRegressorWeightedFit(t *testing.T) {
	// Weights enter the Newton step as hessian mass: G/(H+lambda) over the
	// whole set when max_depth forces a root leaf.
	X := mat.NewDense(2, 1, []float64{1, 2})
	y := mat.NewDense(2, 1, []float64{3, 0})

	tr := exactTree().WithMaxDepth(0)
	if err := tr.FitWeighted(X, y, []float64{2, 1}); err != nil {
		t.Fatalf("FitWeighted: %v", err)
	}
	preds, err := tr.Predict(X)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	// G=3, H=3: each row predicts 1.0. Unit weights would give 1.5.
	if math.Abs(preds.At(0, 0)-1.0) > 1e-12 {
		t.Errorf("prediction = %v, want 1.0", preds.At(0, 0))
	}
}

func TestTreeRegressorValidation(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{1, 2})
	y := mat.NewDense(2, 1, []float64{1, -1})

	tests := []struct {
		name string
		tr   *TreeRegressor
	}{
		{"eta zero", exactTree().WithEta(0)},
		{"subsample zero", exactTree().WithSubsample(0)},
		{"subsample above one", exactTree().WithSubsample(1.5)},
		{"colsample zero", exactTree().WithColsampleByNode(0)},
		{"negative lambda", exactTree().WithLambda(-1)},
		{"negative gamma", exactTree().WithGamma(-0.5)},
		{"negative min child weight", exactTree().WithMinChildWeight(-1)},
		{"pathological depth", exactTree().WithMaxDepth(1000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tr.Fit(X, y)
			var verr *xgerrors.ValidationError
			if !xgerrors.As(err, &verr) {
				t.Errorf("Fit error = %v, want ValidationError", err)
			}
		})
	}

	t.Run("nan target", func(t *testing.T) {
		bad := mat.NewDense(2, 1, []float64{1, math.NaN()})
		err := exactTree().Fit(X, bad)
		var nerr *xgerrors.NumericalInstabilityError
		if !xgerrors.As(err, &nerr) {
			t.Errorf("Fit error = %v, want NumericalInstabilityError", err)
		}
	})

	t.Run("negative weight", func(t *testing.T) {
		err := exactTree().FitWeighted(X, y, []float64{1, -1})
		if err == nil {
			t.Error("FitWeighted accepted a negative weight")
		}
	})

	t.Run("row mismatch", func(t *testing.T) {
		bad := mat.NewDense(3, 1, []float64{1, -1, 0})
		err := exactTree().Fit(X, bad)
		var derr *xgerrors.DimensionError
		if !xgerrors.As(err, &derr) {
			t.Errorf("Fit error = %v, want DimensionError", err)
		}
	})
}

func TestTreeRegressorNotFitted(t *testing.T) {
	tr := NewTreeRegressor()
	X := mat.NewDense(1, 1, []float64{1})

	_, err := tr.Predict(X)
	var nferr *xgerrors.NotFittedError
	if !xgerrors.As(err, &nferr) {
		t.Errorf("Predict error = %v, want NotFittedError", err)
	}
	if _, err := tr.LeafCount(); err == nil {
		t.Error("LeafCount succeeded on an unfitted model")
	}
}

func TestTreeRegressorPredictDimensionCheck(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{1, 0, 2, 0, 3, 1, 10, 1})
	y := mat.NewDense(4, 1, []float64{1, 1, -1, -1})

	tr := exactTree().WithMaxDepth(1)
	if err := tr.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	_, err := tr.Predict(mat.NewDense(1, 3, []float64{1, 2, 3}))
	var derr *xgerrors.DimensionError
	if !xgerrors.As(err, &derr) {
		t.Errorf("Predict error = %v, want DimensionError", err)
	}
}

func TestTreeRegressorMeasures(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 10})
	y := mat.NewDense(4, 1, []float64{1, 1, -1, -1})

	tr := exactTree().WithMaxDepth(1)
	if err := tr.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	measures := tr.EnumerateMeasures()
	if len(measures) != 1 || measures[0] != MeasureNumLeaves {
		t.Errorf("EnumerateMeasures = %v", measures)
	}

	got, err := tr.GetMeasure(MeasureNumLeaves)
	if err != nil {
		t.Fatalf("GetMeasure: %v", err)
	}
	if got != 2 {
		t.Errorf("GetMeasure(%s) = %v, want 2", MeasureNumLeaves, got)
	}

	if _, err := tr.GetMeasure("nope"); err == nil {
		t.Error("GetMeasure accepted an unknown measure name")
	}
}

func TestTreeRegressorString(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 10})
	y := mat.NewDense(4, 1, []float64{1, 1, -1, -1})

	tr := exactTree().WithMaxDepth(1).WithFeatureNames([]string{"age"})
	if err := tr.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	want := "\nage < 2.5: 1\nage >= 2.5: -1"
	if tr.String() != want {
		t.Errorf("String() = %q, want %q", tr.String(), want)
	}
}

func TestTreeRegressorMissingValuesRouteRight(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 10})
	y := mat.NewDense(4, 1, []float64{1, 1, -1, -1})

	tr := exactTree().WithMaxDepth(1)
	if err := tr.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	preds, err := tr.Predict(mat.NewDense(1, 1, []float64{math.NaN()}))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	// NaN fails the "< threshold" test and follows the >= branch.
	if math.Abs(preds.At(0, 0)-(-1)) > 1e-12 {
		t.Errorf("prediction for missing value = %v, want -1", preds.At(0, 0))
	}
}

func TestTreeRegressorScore(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 10})
	y := mat.NewDense(4, 1, []float64{1, 1, -1, -1})

	tr := exactTree().WithMaxDepth(2)
	if err := tr.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	r2, err := tr.Score(X, y)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if math.Abs(r2-1.0) > 1e-9 {
		t.Errorf("Score = %v, want 1.0 on perfectly separable data", r2)
	}
}
