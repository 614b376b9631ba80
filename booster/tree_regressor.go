package booster

import (
	"math/rand"
	"strings"
	"time"

	"github.com/grovelabs/xgrove/core/model"
	"github.com/grovelabs/xgrove/metrics"
	xgerrors "github.com/grovelabs/xgrove/pkg/errors"
	"github.com/grovelabs/xgrove/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// MeasureNumLeaves names the leaf-count introspection measure.
const MeasureNumLeaves = "num_leaves"

// TreeRegressor grows one regularized binary regression tree from weighted
// rows in a single boosting round. The zero value is not usable; construct
// with NewTreeRegressor.
//
// Training is deterministic for a fixed (data, Params, Seed) triple. A
// fitted TreeRegressor is immutable and safe for concurrent Predict calls.
type TreeRegressor struct {
	state *model.StateManager

	// Params holds the growth hyperparameters. Adjust before Fit, either
	// directly or through the With* setters.
	Params Params

	// FeatureNames optionally names the attribute columns for String().
	FeatureNames []string

	// Verbose enables structured fit logging.
	Verbose bool

	root node
}

// NewTreeRegressor creates a TreeRegressor with default hyperparameters.
func NewTreeRegressor() *TreeRegressor {
	return &TreeRegressor{
		state:  model.NewStateManager("TreeRegressor"),
		Params: DefaultParams(),
	}
}

// WithEta sets the shrinkage rate.
func (t *TreeRegressor) WithEta(eta float64) *TreeRegressor {
	t.Params.Eta = eta
	return t
}

// WithLambda sets the L2 regularization term.
func (t *TreeRegressor) WithLambda(lambda float64) *TreeRegressor {
	t.Params.Lambda = lambda
	return t
}

// WithGamma sets the per-split gain penalty.
func (t *TreeRegressor) WithGamma(gamma float64) *TreeRegressor {
	t.Params.Gamma = gamma
	return t
}

// WithSubsample sets the row subsampling fraction.
func (t *TreeRegressor) WithSubsample(s float64) *TreeRegressor {
	t.Params.Subsample = s
	return t
}

// WithColsampleByNode sets the per-node attribute sampling fraction.
func (t *TreeRegressor) WithColsampleByNode(c float64) *TreeRegressor {
	t.Params.ColsampleByNode = c
	return t
}

// WithMaxDepth sets the recursion depth bound.
func (t *TreeRegressor) WithMaxDepth(d int) *TreeRegressor {
	t.Params.MaxDepth = d
	return t
}

// WithMinChildWeight sets the curvature floor for split children.
func (t *TreeRegressor) WithMinChildWeight(w float64) *TreeRegressor {
	t.Params.MinChildWeight = w
	return t
}

// WithSeed sets the subsampling random seed.
func (t *TreeRegressor) WithSeed(seed int64) *TreeRegressor {
	t.Params.Seed = seed
	return t
}

// WithFeatureNames sets display names for the attribute columns.
func (t *TreeRegressor) WithFeatureNames(names []string) *TreeRegressor {
	t.FeatureNames = names
	return t
}

// Fit grows the tree with unit sample weights. Each target value is the
// row's negative-gradient proxy; with unit weights every row contributes a
// hessian of one.
func (t *TreeRegressor) Fit(X, y mat.Matrix) error {
	return t.FitWeighted(X, y, nil)
}

// FitWeighted grows the tree with per-row hessian proxies. The dataset and
// random source live only for the duration of the call; the finished root
// node is the only state that survives.
func (t *TreeRegressor) FitWeighted(X, y mat.Matrix, sampleWeight []float64) (err error) {
	defer xgerrors.Recover(&err, "TreeRegressor.Fit")

	if err := t.Params.Validate(); err != nil {
		return err
	}
	data, err := buildTrainingSet("TreeRegressor.Fit", X, y, sampleWeight)
	if err != nil {
		return err
	}

	start := time.Now()
	g := &grower{
		data: data,
		rng:  rand.New(rand.NewSource(t.Params.Seed)),
		p:    t.Params,
	}
	t.root = g.growTree(g.sampleRows(), 0)
	t.state.SetFitted(data.rows(), data.nAttr)

	if t.Verbose {
		log.GetLoggerWithName("booster.tree").Info("fit complete",
			log.ModelNameKey, "TreeRegressor",
			log.OperationKey, "fit",
			log.RowsKey, data.rows(),
			log.AttributesKey, data.nAttr,
			log.SeedKey, t.Params.Seed,
			log.LeafCountKey, t.root.leafCount(),
			log.DurationMsKey, time.Since(start).Milliseconds())
	}
	return nil
}

// Predict returns an n×1 matrix of predictions for the rows of X. It is a
// pure function of the fitted structure and the input and is safe for
// concurrent use.
func (t *TreeRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := t.state.RequireFitted("Predict"); err != nil {
		return nil, err
	}
	_, nAttrs := t.state.Dimensions()
	_, cols := X.Dims()
	if cols != nAttrs {
		return nil, xgerrors.NewDimensionError("Predict", nAttrs, cols, 1)
	}
	return predictMatrix(t.root, X), nil
}

// Score returns the coefficient of determination R² on (X, y).
func (t *TreeRegressor) Score(X, y mat.Matrix) (float64, error) {
	if err := t.state.RequireFitted("Score"); err != nil {
		return 0, err
	}
	pred, err := t.Predict(X)
	if err != nil {
		return 0, err
	}
	yVec, err := metrics.ColumnVec(y)
	if err != nil {
		return 0, err
	}
	predVec, err := metrics.ColumnVec(pred)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(yVec, predVec)
}

// LeafCount returns the number of leaves in the fitted tree.
func (t *TreeRegressor) LeafCount() (int, error) {
	if err := t.state.RequireFitted("LeafCount"); err != nil {
		return 0, err
	}
	return t.root.leafCount(), nil
}

// EnumerateMeasures lists the named introspection measures.
func (t *TreeRegressor) EnumerateMeasures() []string {
	return []string{MeasureNumLeaves}
}

// GetMeasure returns a named measure, or an invalid-argument error for an
// unknown name. Model state is never affected.
func (t *TreeRegressor) GetMeasure(name string) (float64, error) {
	switch name {
	case MeasureNumLeaves:
		n, err := t.LeafCount()
		return float64(n), err
	default:
		return 0, xgerrors.NewValueError("GetMeasure", "measure "+name+" not supported")
	}
}

// String renders the fitted tree as nested branch text.
func (t *TreeRegressor) String() string {
	if !t.state.IsFitted() {
		return "TreeRegressor: not fitted"
	}
	var sb strings.Builder
	renderTree(&sb, t.root, t.FeatureNames, 0)
	return sb.String()
}

var _ model.Regressor = (*TreeRegressor)(nil)
