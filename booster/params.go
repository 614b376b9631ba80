package booster

import (
	"github.com/grovelabs/xgrove/pkg/errors"
)

// minGain is the numerical floor below which a split is considered to carry
// no meaningful gain and growth stops.
const minGain = 1e-6

// maxRecursionBound caps max_depth and max_length. Recursion depth is user
// configurable, so a runaway value must be rejected up front rather than
// exhaust the stack.
const maxRecursionBound = 64

// Params holds the hyperparameters shared by the tree and rule growers.
// MaxDepth bounds the tree, MaxLength bounds the rule; each grower reads
// only its own bound.
type Params struct {
	// Eta is the shrinkage rate applied to each leaf's Newton step, in (0, 1].
	Eta float64

	// Lambda is the L2 regularization term on leaf weights, >= 0.
	Lambda float64

	// Gamma is the minimum-gain penalty per split. The rule grower scales it
	// by path length instead of charging a flat amount.
	Gamma float64

	// Subsample is the fraction of rows drawn before growth, in (0, 1].
	Subsample float64

	// ColsampleByNode is the fraction of attributes considered at each node,
	// in (0, 1].
	ColsampleByNode float64

	// MaxDepth bounds tree recursion depth, in [0, 64].
	MaxDepth int

	// MaxLength bounds the number of rule conditions, in [0, 64].
	MaxLength int

	// MinChildWeight is the curvature floor: both sides of an accepted split
	// must have at least this much summed hessian. >= 0.
	MinChildWeight float64

	// Seed initializes the random source used for row and column subsampling.
	Seed int64
}

// DefaultParams returns the default hyperparameters.
func DefaultParams() Params {
	return Params{
		Eta:             0.3,
		Lambda:          1.0,
		Gamma:           1.0,
		Subsample:       0.5,
		ColsampleByNode: 1.0,
		MaxDepth:        6,
		MaxLength:       6,
		MinChildWeight:  1.0,
		Seed:            1,
	}
}

// Validate checks every hyperparameter range and fails fast before any
// statistics are computed.
func (p Params) Validate() error {
	if !(p.Eta > 0 && p.Eta <= 1) {
		return errors.NewValidationError("eta", "must be in (0, 1]", p.Eta)
	}
	if p.Lambda < 0 {
		return errors.NewValidationError("lambda", "must be >= 0", p.Lambda)
	}
	if p.Gamma < 0 {
		return errors.NewValidationError("gamma", "must be >= 0", p.Gamma)
	}
	if !(p.Subsample > 0 && p.Subsample <= 1) {
		return errors.NewValidationError("subsample", "must be in (0, 1]", p.Subsample)
	}
	if !(p.ColsampleByNode > 0 && p.ColsampleByNode <= 1) {
		return errors.NewValidationError("colsample_bynode", "must be in (0, 1]", p.ColsampleByNode)
	}
	if p.MaxDepth < 0 || p.MaxDepth > maxRecursionBound {
		return errors.NewValidationError("max_depth", "must be in [0, 64]", p.MaxDepth)
	}
	if p.MaxLength < 0 || p.MaxLength > maxRecursionBound {
		return errors.NewValidationError("max_length", "must be in [0, 64]", p.MaxLength)
	}
	if p.MinChildWeight < 0 {
		return errors.NewValidationError("min_child_weight", "must be >= 0", p.MinChildWeight)
	}
	return nil
}
