package booster

// Stats accumulates the sufficient statistics of a row subset: the summed
// negative gradients and summed hessians. It is a small value type; scans
// own their accumulators and update them incrementally, never recomputing
// from scratch per candidate.
type Stats struct {
	SumNegGrad float64
	SumHess    float64
}

// Update adds (add=true) or removes (add=false) one row's contribution.
// Adding then removing the same row restores the prior state.
func (s *Stats) Update(negGradient, hessian float64, add bool) {
	if add {
		s.SumNegGrad += negGradient
		s.SumHess += hessian
	} else {
		s.SumNegGrad -= negGradient
		s.SumHess -= hessian
	}
}

// impurity is the regularized squared-gradient score of a subset. A subset
// with no curvature has no impurity.
func impurity(s Stats, lambda float64) float64 {
	if s.SumHess <= 0 {
		return 0
	}
	return s.SumNegGrad * s.SumNegGrad / (s.SumHess + lambda)
}

// treeSplitQuality is the regularized gain of splitting parent into left and
// right, net of the flat per-split penalty gamma.
func treeSplitQuality(parent, left, right Stats, lambda, gamma float64) float64 {
	return 0.5*(impurity(left, lambda)+impurity(right, lambda)-impurity(parent, lambda)) - gamma
}

// ruleBranchQuality scores one candidate continuation branch of a rule with
// resulting path length pathLen. The gamma penalty grows with the path, so
// longer rules must keep earning their conditions.
func ruleBranchQuality(branch Stats, pathLen int, lambda, gamma float64) float64 {
	return 0.5*branch.SumNegGrad*branch.SumNegGrad/(branch.SumHess+lambda) - gamma*float64(pathLen)
}

// leafValue is the shrinkage-scaled one-step Newton update for a subset.
// An empty subset with lambda == 0 has a 0/0 step; such a leaf predicts 0.
func leafValue(s Stats, eta, lambda float64) float64 {
	if s.SumHess+lambda <= 0 {
		return 0
	}
	return eta * s.SumNegGrad / (s.SumHess + lambda)
}
