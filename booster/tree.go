package booster

// growTree recursively partitions a row subset into a binary tree.
//
// The node becomes a leaf when the subset carries no curvature, falls below
// the min_child_weight floor, hits the depth bound, or no sampled attribute
// offers a split above the numerical gain floor. Otherwise the subset is
// partitioned at the best split across sampled attributes and both sides
// are always grown; once a split is accepted neither branch is pruned.
func (g *grower) growTree(indices []int, depth int) node {
	stats := g.data.subsetStats(indices)
	if stats.SumHess <= 0 || stats.SumHess < g.p.MinChildWeight || depth >= g.p.MaxDepth {
		return leaf{prediction: leafValue(stats, g.p.Eta, g.p.Lambda)}
	}

	best := noSplit()
	for _, attr := range g.sampleAttrs() {
		candidate := g.findBestSplit(indices, attr)
		if candidate.quality > best.quality {
			best = candidate
		}
	}
	if best.quality <= minGain {
		return leaf{prediction: leafValue(stats, g.p.Eta, g.p.Lambda)}
	}

	left, right := g.data.partition(indices, best.attr, best.threshold)
	return &treeSplit{
		attr:      best.attr,
		threshold: best.threshold,
		left:      g.growTree(left, depth+1),
		right:     g.growTree(right, depth+1),
	}
}

// growRule extends a single conjunctive path. pathLen is the number of
// conditions so far, parentQuality the quality of the previous step
// (negative infinity at the root).
//
// On top of the tree's stopping rules, growth halts when the best quality
// does not strictly improve on the parent's: each added condition must earn
// strictly more than the last. The rule then recurses only into the winning
// direction's subset; rows falling on the other side receive no coverage.
func (g *grower) growRule(indices []int, pathLen int, parentQuality float64) node {
	stats := g.data.subsetStats(indices)
	if stats.SumHess <= 0 || stats.SumHess < g.p.MinChildWeight || pathLen >= g.p.MaxLength {
		return leaf{prediction: leafValue(stats, g.p.Eta, g.p.Lambda)}
	}

	best := noSplit()
	for _, attr := range g.sampleAttrs() {
		candidate := g.findBestCondition(indices, attr, pathLen)
		if candidate.quality > best.quality {
			best = candidate
		}
	}
	if best.quality <= minGain || best.quality-parentQuality <= minGain {
		return leaf{prediction: leafValue(stats, g.p.Eta, g.p.Lambda)}
	}

	left, right := g.data.partition(indices, best.attr, best.threshold)
	continuation := left
	if best.testGE {
		continuation = right
	}
	return &ruleCondition{
		attr:      best.attr,
		threshold: best.threshold,
		testGE:    best.testGE,
		next:      g.growRule(continuation, pathLen+1, best.quality),
	}
}
