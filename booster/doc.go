// Package booster implements single-round second-order gradient boosting:
// one regularized binary regression tree (TreeRegressor) or one conjunctive
// rule (RuleRegressor) grown from weighted rows by exact-greedy split search.
//
// Each row's target is treated as a negative-gradient proxy and its weight
// as a hessian proxy, so a fitted leaf holds a shrinkage-scaled Newton step
// eta*G/(H+lambda). Split candidates are scanned in sorted attribute order
// with incrementally maintained left/right statistics, gain is evaluated
// under L2 regularization with a per-split penalty gamma, and children below
// the min_child_weight curvature floor are rejected.
//
// The tree recurses into both sides of the best split until max_depth or the
// 1e-6 gain floor stops it. The rule always continues into the better of the
// two directional branches, stops additionally when the gain is no longer
// strictly increasing, and predicts exactly 0 for rows that fail any of its
// conditions.
package booster
