package booster

import "math"

// node is the sealed sum type of grown structures. Exactly three shapes
// exist: leaf, treeSplit and ruleCondition. Dispatch is through methods on
// each variant, so traversal has no "should never happen" branch; rendering
// type-switches over the same three shapes and panics on anything else.
type node interface {
	// predict traverses the structure for one row of attribute values.
	predict(row []float64) float64

	// leafCount reports the number of leaves reachable from this node.
	leafCount() int
}

// leaf terminates growth and stores the shrinkage-scaled Newton step of its
// row subset.
type leaf struct {
	prediction float64
}

func (l leaf) predict(row []float64) float64 { return l.prediction }

func (l leaf) leafCount() int { return 1 }

// treeSplit is a binary interior node. Both children are always present.
type treeSplit struct {
	attr        int
	threshold   float64
	left, right node
}

// predict goes left on value < threshold and right otherwise. A missing
// (NaN) value compares false and follows the right branch.
func (t *treeSplit) predict(row []float64) float64 {
	if row[t.attr] < t.threshold {
		return t.left.predict(row)
	}
	return t.right.predict(row)
}

func (t *treeSplit) leafCount() int {
	return t.left.leafCount() + t.right.leafCount()
}

// ruleCondition is one conjunct of a rule. It has exactly one continuation;
// the complementary branch is implicitly terminal and predicts 0.
type ruleCondition struct {
	attr      int
	threshold float64
	testGE    bool
	next      node
}

// predict continues into next only when the row satisfies the stored test.
// A row failing any condition is not covered by the rule and scores exactly
// 0, regardless of how deep the path goes. Missing values fail a "<" test
// and fail a ">=" test alike.
func (r *ruleCondition) predict(row []float64) float64 {
	v := row[r.attr]
	if math.IsNaN(v) {
		return 0.0
	}
	if r.testGE && v >= r.threshold {
		return r.next.predict(row)
	}
	if !r.testGE && v < r.threshold {
		return r.next.predict(row)
	}
	return 0.0
}

// leafCount follows the single continuation; a complete rule therefore
// always reports 1.
func (r *ruleCondition) leafCount() int {
	return r.next.leafCount()
}
