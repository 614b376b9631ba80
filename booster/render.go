package booster

import (
	"fmt"
	"strings"
)

// attrName resolves a display name for an attribute index, falling back to
// x<i> when the caller supplied no names.
func attrName(names []string, attr int) string {
	if attr >= 0 && attr < len(names) && names[attr] != "" {
		return names[attr]
	}
	return fmt.Sprintf("x%d", attr)
}

// renderTree writes the nested branch text of a subtree:
//
//	x0 < 2.5: 1
//	x0 >= 2.5
//	|   x1 < 0.5: -0.2
//	|   x1 >= 0.5: 0.4
func renderTree(sb *strings.Builder, n node, names []string, level int) {
	switch t := n.(type) {
	case leaf:
		fmt.Fprintf(sb, ": %g", t.prediction)
	case *treeSplit:
		renderTreeBranch(sb, t, names, level, true)
		renderTreeBranch(sb, t, names, level, false)
	default:
		panic(fmt.Sprintf("booster: malformed node of type %T in tree", n))
	}
}

func renderTreeBranch(sb *strings.Builder, t *treeSplit, names []string, level int, left bool) {
	sb.WriteString("\n")
	for i := 0; i < level; i++ {
		sb.WriteString("|   ")
	}
	op, child := " >= ", t.right
	if left {
		op, child = " < ", t.left
	}
	fmt.Fprintf(sb, "%s%s%g", attrName(names, t.attr), op, t.threshold)
	renderTree(sb, child, names, level+1)
}

// renderRule writes the conjunctive text of a rule:
//
//	if x0 >= 2.5 and x1 < 7 then 0.42
//
// An unconditional rule renders as "if true then <prediction>".
func renderRule(sb *strings.Builder, n node, names []string) {
	var conds []string
	for {
		switch r := n.(type) {
		case leaf:
			if len(conds) == 0 {
				fmt.Fprintf(sb, "if true then %g\n", r.prediction)
			} else {
				fmt.Fprintf(sb, "if %s then %g\n", strings.Join(conds, " and "), r.prediction)
			}
			return
		case *ruleCondition:
			op := " < "
			if r.testGE {
				op = " >= "
			}
			conds = append(conds, fmt.Sprintf("%s%s%g", attrName(names, r.attr), op, r.threshold))
			n = r.next
		default:
			panic(fmt.Sprintf("booster: malformed node of type %T in rule", n))
		}
	}
}
