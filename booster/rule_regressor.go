package booster

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/grovelabs/xgrove/core/model"
	"github.com/grovelabs/xgrove/metrics"
	xgerrors "github.com/grovelabs/xgrove/pkg/errors"
	"github.com/grovelabs/xgrove/pkg/log"
	"gonum.org/v1/gonum/mat"
)

// Named introspection measures of the rule regressor.
const (
	// MeasureNumRules is the number of grown rules, always 1 once fitted.
	MeasureNumRules = "num_rules"

	// MeasureRuleLength is the number of conditions in the fitted rule.
	MeasureRuleLength = "rule_length"
)

// RuleRegressor grows one conjunctive rule, a single path of conditions,
// from weighted rows in a single boosting round. Where the tree bifurcates,
// the rule always continues into the better of the two candidate branches,
// and it stops as soon as the marginal gain of another condition is no
// longer strictly increasing.
//
// A row that fails any condition of the fitted rule predicts exactly 0.
// Construct with NewRuleRegressor; a fitted RuleRegressor is immutable and
// safe for concurrent Predict calls.
type RuleRegressor struct {
	state *model.StateManager

	// Params holds the growth hyperparameters; MaxLength bounds the number
	// of conditions.
	Params Params

	// FeatureNames optionally names the attribute columns for String().
	FeatureNames []string

	// Verbose enables structured fit logging.
	Verbose bool

	root node
}

// NewRuleRegressor creates a RuleRegressor with default hyperparameters.
func NewRuleRegressor() *RuleRegressor {
	return &RuleRegressor{
		state:  model.NewStateManager("RuleRegressor"),
		Params: DefaultParams(),
	}
}

// WithEta sets the shrinkage rate.
func (r *RuleRegressor) WithEta(eta float64) *RuleRegressor {
	r.Params.Eta = eta
	return r
}

// WithLambda sets the L2 regularization term.
func (r *RuleRegressor) WithLambda(lambda float64) *RuleRegressor {
	r.Params.Lambda = lambda
	return r
}

// WithGamma sets the per-condition gain penalty.
func (r *RuleRegressor) WithGamma(gamma float64) *RuleRegressor {
	r.Params.Gamma = gamma
	return r
}

// WithSubsample sets the row subsampling fraction.
func (r *RuleRegressor) WithSubsample(s float64) *RuleRegressor {
	r.Params.Subsample = s
	return r
}

// WithColsampleByNode sets the per-node attribute sampling fraction.
func (r *RuleRegressor) WithColsampleByNode(c float64) *RuleRegressor {
	r.Params.ColsampleByNode = c
	return r
}

// WithMaxLength sets the bound on the number of rule conditions.
func (r *RuleRegressor) WithMaxLength(l int) *RuleRegressor {
	r.Params.MaxLength = l
	return r
}

// WithMinChildWeight sets the curvature floor for candidate branches.
func (r *RuleRegressor) WithMinChildWeight(w float64) *RuleRegressor {
	r.Params.MinChildWeight = w
	return r
}

// WithSeed sets the subsampling random seed.
func (r *RuleRegressor) WithSeed(seed int64) *RuleRegressor {
	r.Params.Seed = seed
	return r
}

// WithFeatureNames sets display names for the attribute columns.
func (r *RuleRegressor) WithFeatureNames(names []string) *RuleRegressor {
	r.FeatureNames = names
	return r
}

// Fit grows the rule with unit sample weights.
func (r *RuleRegressor) Fit(X, y mat.Matrix) error {
	return r.FitWeighted(X, y, nil)
}

// FitWeighted grows the rule with per-row hessian proxies. The dataset and
// random source live only for the duration of the call.
func (r *RuleRegressor) FitWeighted(X, y mat.Matrix, sampleWeight []float64) (err error) {
	defer xgerrors.Recover(&err, "RuleRegressor.Fit")

	if err := r.Params.Validate(); err != nil {
		return err
	}
	data, err := buildTrainingSet("RuleRegressor.Fit", X, y, sampleWeight)
	if err != nil {
		return err
	}

	start := time.Now()
	g := &grower{
		data: data,
		rng:  rand.New(rand.NewSource(r.Params.Seed)),
		p:    r.Params,
	}
	r.root = g.growRule(g.sampleRows(), 0, math.Inf(-1))
	r.state.SetFitted(data.rows(), data.nAttr)

	if r.Verbose {
		log.GetLoggerWithName("booster.rule").Info("fit complete",
			log.ModelNameKey, "RuleRegressor",
			log.OperationKey, "fit",
			log.RowsKey, data.rows(),
			log.AttributesKey, data.nAttr,
			log.SeedKey, r.Params.Seed,
			log.DepthKey, r.ruleLength(),
			log.DurationMsKey, time.Since(start).Milliseconds())
	}
	return nil
}

// Predict returns an n×1 matrix of predictions for the rows of X. Rows not
// covered by the rule predict 0. Safe for concurrent use.
func (r *RuleRegressor) Predict(X mat.Matrix) (mat.Matrix, error) {
	if err := r.state.RequireFitted("Predict"); err != nil {
		return nil, err
	}
	_, nAttrs := r.state.Dimensions()
	_, cols := X.Dims()
	if cols != nAttrs {
		return nil, xgerrors.NewDimensionError("Predict", nAttrs, cols, 1)
	}
	return predictMatrix(r.root, X), nil
}

// Score returns the coefficient of determination R² on (X, y).
func (r *RuleRegressor) Score(X, y mat.Matrix) (float64, error) {
	if err := r.state.RequireFitted("Score"); err != nil {
		return 0, err
	}
	pred, err := r.Predict(X)
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

// RuleLength returns the number of conditions in the fitted rule.
func (r *RuleRegressor) RuleLength() (int, error) {
	if err := r.state.RequireFitted("RuleLength"); err != nil {
		return 0, err
	}
	return r.ruleLength(), nil
}

func (r *RuleRegressor) ruleLength() int {
	length := 0
	for n := r.root; ; {
		cond, ok := n.(*ruleCondition)
		if !ok {
			return length
		}
		length++
		n = cond.next
	}
}

// EnumerateMeasures lists the named introspection measures.
func (r *RuleRegressor) EnumerateMeasures() []string {
	return []string{MeasureNumRules, MeasureRuleLength}
}

// GetMeasure returns a named measure, or an invalid-argument error for an
// unknown name. Model state is never affected.
func (r *RuleRegressor) GetMeasure(name string) (float64, error) {
	switch name {
	case MeasureNumRules:
		if err := r.state.RequireFitted("GetMeasure"); err != nil {
			return 0, err
		}
		return float64(r.root.leafCount()), nil
	case MeasureRuleLength:
		n, err := r.RuleLength()
		return float64(n), err
	default:
		return 0, xgerrors.NewValueError("GetMeasure", "measure "+name+" not supported")
	}
}

// String renders the fitted rule as "if ... and ... then ..." text.
func (r *RuleRegressor) String() string {
	if !r.state.IsFitted() {
		return "RuleRegressor: not fitted"
	}
	var sb strings.Builder
	renderRule(&sb, r.root, r.FeatureNames)
	return sb.String()
}

var _ model.Regressor = (*RuleRegressor)(nil)
