package booster

import (
	"math"
	"math/rand"
)

// splitCandidate is a scored threshold on one attribute. testGE is only
// meaningful for the rule grower and marks which side the rule continues
// into: false for "value < threshold", true for "value >= threshold".
type splitCandidate struct {
	attr      int
	threshold float64
	quality   float64
	testGE    bool
}

func noSplit() splitCandidate {
	return splitCandidate{attr: -1, quality: math.Inf(-1)}
}

// grower carries the state of one training call: the data view, the seeded
// random source and the hyperparameters. It is created in Fit and dropped
// when Fit returns; nothing of it survives into the fitted model.
type grower struct {
	data *trainingSet
	rng  *rand.Rand
	p    Params
}

// sampleRows draws the row subset for this training call. The shuffle
// happens before any per-node attribute shuffles, which keeps the draw
// order, and therefore the grown structure, reproducible for a given seed.
func (g *grower) sampleRows() []int {
	n := g.data.rows()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if g.p.Subsample < 1.0 {
		g.rng.Shuffle(n, func(a, b int) {
			indices[a], indices[b] = indices[b], indices[a]
		})
	}
	return indices[:int(g.p.Subsample*float64(n))]
}

// sampleAttrs draws the candidate attribute set for one node.
func (g *grower) sampleAttrs() []int {
	attrs := make([]int, g.data.nAttr)
	for i := range attrs {
		attrs[i] = i
	}
	if g.p.ColsampleByNode < 1.0 {
		g.rng.Shuffle(len(attrs), func(a, b int) {
			attrs[a], attrs[b] = attrs[b], attrs[a]
		})
	}
	return attrs[:int(g.p.ColsampleByNode*float64(len(attrs)))]
}

// findBestSplit scans one attribute for the best two-sided (tree) split.
// It walks the subset in sorted value order once, maintaining running left
// and right statistics. A candidate threshold is the midpoint of each pair
// of adjacent distinct values; both sides must carry at least
// min_child_weight summed hessian. Only strictly better quality replaces
// the incumbent, so ties keep the lowest threshold.
func (g *grower) findBestSplit(indices []int, attr int) splitCandidate {
	order := g.data.sortByAttr(indices, attr)
	total := g.data.subsetStats(order)

	left := Stats{}
	right := total
	best := noSplit()
	best.attr = attr
	prev := math.Inf(-1)

	for _, i := range order {
		v := g.data.value(i, attr)
		if v > prev {
			if left.SumHess != 0 && right.SumHess != 0 &&
				left.SumHess >= g.p.MinChildWeight && right.SumHess >= g.p.MinChildWeight {
				quality := treeSplitQuality(total, left, right, g.p.Lambda, g.p.Gamma)
				if quality > best.quality {
					best.quality = quality
					best.threshold = (v + prev) / 2
				}
			}
			prev = v
		}
		left.Update(g.data.target(i), g.data.weight(i), true)
		right.Update(g.data.target(i), g.data.weight(i), false)
	}
	return best
}

// findBestCondition scans one attribute for the best single-sided (rule)
// condition extending a path to length pathLen+1. Both directional
// qualities are evaluated at each boundary and either may replace the
// incumbent independently, so the winner records its direction.
func (g *grower) findBestCondition(indices []int, attr, pathLen int) splitCandidate {
	order := g.data.sortByAttr(indices, attr)
	total := g.data.subsetStats(order)

	left := Stats{}
	right := total
	best := noSplit()
	best.attr = attr
	prev := math.Inf(-1)

	for _, i := range order {
		v := g.data.value(i, attr)
		if v > prev {
			// The first distinct value has an empty left side and no lower
			// neighbour to form a midpoint with.
			if !math.IsInf(prev, -1) {
				mid := (v + prev) / 2
				if left.SumHess != 0 && left.SumHess >= g.p.MinChildWeight {
					quality := ruleBranchQuality(left, pathLen+1, g.p.Lambda, g.p.Gamma)
					if quality > best.quality {
						best.quality = quality
						best.threshold = mid
						best.testGE = false
					}
				}
				if right.SumHess != 0 && right.SumHess >= g.p.MinChildWeight {
					quality := ruleBranchQuality(right, pathLen+1, g.p.Lambda, g.p.Gamma)
					if quality > best.quality {
						best.quality = quality
						best.threshold = mid
						best.testGE = true
					}
				}
			}
			prev = v
		}
		left.Update(g.data.target(i), g.data.weight(i), true)
		right.Update(g.data.target(i), g.data.weight(i), false)
	}
	return best
}
