// Package xgrove grows single regularized decision structures, either a
// binary regression tree or a one-path conjunctive rule, from weighted training
// rows using second-order gradient-boosting statistics, in the style of a
// single XGBoost boosting round.
//
// The interesting work lives in the booster package: exact-greedy split
// search over sorted attribute values, L2-regularized gain evaluation with a
// minimum-curvature constraint, and recursive growth bounded by depth (tree)
// or length plus a monotonic-improvement test (rule).
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/grovelabs/xgrove/booster"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{1, 2, 3, 10})
//	    y := mat.NewDense(4, 1, []float64{1, 1, -1, -1})
//
//	    tree := booster.NewTreeRegressor().WithMaxDepth(1).WithEta(1)
//	    if err := tree.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//	    preds, _ := tree.Predict(X)
//	    fmt.Println(mat.Formatted(preds))
//	}
//
// The host application supplies per-row targets standing in for negative
// gradients and per-row weights standing in for hessians; xgrove performs
// one Newton step per leaf, scaled by the shrinkage rate eta.
package xgrove
