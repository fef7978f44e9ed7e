package planner

import (
	"github.com/dshills/rmplan/internal/ast"
	"github.com/dshills/rmplan/internal/config"
	"github.com/dshills/rmplan/internal/errors"
)

// pushResult is push_conds' tri-state-plus-one return, named rather
// than left as magic integers 0..3.
type pushResult int

const (
	notFound pushResult = iota
	lhsMatched
	rhsMatched
	attached
)

// makeOneRel assembles scans and the residual predicate list into a
// single left-deep join tree (or returns the lone scan directly when
// there is only one table).
func makeOneRel(cfg *config.PlannerConfig, scans map[string]*ScanPlan, order []string, residual []ast.Condition) (PlanNode, error) {
	if len(order) == 1 {
		return scans[order[0]], nil
	}

	algo, err := chooseAlgo(cfg)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool, len(order))
	popScan := func(table string) PlanNode {
		if used[table] {
			return nil
		}
		s, ok := scans[table]
		if !ok {
			return nil
		}
		used[table] = true
		return s
	}

	var root PlanNode
	conds := append([]ast.Condition{}, residual...)

	if len(conds) > 0 {
		seed := conds[0]
		conds = conds[1:]

		left := popScan(seed.Lhs.TableName)
		right := popScan(seed.RhsCol.TableName)
		if left == nil || right == nil {
			return nil, errors.InternalErrorf("join seed predicate references a table outside the query's table list")
		}

		root = &JoinPlan{Algo: algo, Left: left, Right: right, Conds: []ast.Condition{seed}}

		for _, c := range conds {
			root, err = extendJoin(root, c, popScan, algo)
			if err != nil {
				return nil, err
			}
		}
	} else {
		// No residual conditions: seed with the first table in order,
		// the Cartesian fallback below attaches the rest.
		root = popScan(order[0])
	}

	// Cartesian fallback: attach every still-unused table. The tree
	// under construction always stays on the left; each newly attached
	// table takes the right, same as the one-new-side extensions in
	// extendJoin.
	for _, name := range order {
		if used[name] {
			continue
		}
		unusedScan := popScan(name)
		if unusedScan == nil {
			continue
		}
		root = &JoinPlan{Algo: algo, Left: root, Right: unusedScan, Conds: nil}
	}

	return root, nil
}

// extendJoin folds one residual predicate c into the tree under
// construction. When one side is new, the existing tree ends up on
// Left and the newly attached scan on Right, so a condition referencing
// the new table through its Lhs is swapped to keep Lhs pointed at the
// already-joined side. When both sides are new, they are joined to each
// other on Left and the existing tree becomes Right, with no condition
// on that outer join.
func extendJoin(root PlanNode, c ast.Condition, popScan func(string) PlanNode, algo JoinAlgo) (PlanNode, error) {
	leftNew := popScan(c.Lhs.TableName)
	rightNew := popScan(c.RhsCol.TableName)

	switch {
	case leftNew != nil && rightNew != nil:
		inner := &JoinPlan{Algo: algo, Left: leftNew, Right: rightNew, Conds: []ast.Condition{c}}
		return &JoinPlan{Algo: algo, Left: inner, Right: root, Conds: nil}, nil

	case leftNew != nil:
		return &JoinPlan{Algo: algo, Left: root, Right: leftNew, Conds: []ast.Condition{c.Swapped()}}, nil

	case rightNew != nil:
		return &JoinPlan{Algo: algo, Left: root, Right: rightNew, Conds: []ast.Condition{c}}, nil

	default:
		// Neither side is new: both tables are already part of root.
		// Walk the tree and attach the condition at the join that owns
		// both sides.
		result, newRoot := pushConds(c, root)
		if result != attached {
			return nil, errors.InternalErrorf("condition %s could not be attached to the join tree", c)
		}
		return newRoot, nil
	}
}

// pushConds walks plan looking for the join node that owns both sides
// of cond, attaching cond there. It returns the tri-state result for
// this subtree and the (possibly rewritten) subtree itself.
func pushConds(cond ast.Condition, plan PlanNode) (pushResult, PlanNode) {
	join, ok := plan.(*JoinPlan)
	if !ok {
		return scanOwnership(cond, plan), plan
	}

	leftResult, newLeft := pushConds(cond, join.Left)
	if leftResult == attached {
		join.Left = newLeft
		return attached, join
	}

	rightResult, newRight := pushConds(cond, join.Right)
	if rightResult == attached {
		join.Right = newRight
		return attached, join
	}

	if (leftResult == lhsMatched && rightResult == rhsMatched) ||
		(leftResult == rhsMatched && rightResult == lhsMatched) {
		join.Conds = append(join.Conds, cond)
		return attached, join
	}

	if leftResult != notFound {
		return leftResult, join
	}
	return rightResult, join
}

// scanOwnership reports whether a leaf's table owns cond's lhs, rhs,
// or neither.
func scanOwnership(cond ast.Condition, plan PlanNode) pushResult {
	scan, ok := plan.(*ScanPlan)
	if !ok {
		return notFound
	}

	name := scan.TableName
	if scan.Alias != "" {
		name = scan.Alias
	}

	switch name {
	case cond.Lhs.TableName:
		return lhsMatched
	case cond.RhsCol.TableName:
		return rhsMatched
	default:
		return notFound
	}
}

func chooseAlgo(cfg *config.PlannerConfig) (JoinAlgo, error) {
	switch {
	case cfg.EnableNestedLoopJoin && cfg.EnableSortMergeJoin:
		return NestLoop, nil
	case cfg.EnableNestedLoopJoin:
		return NestLoop, nil
	case cfg.EnableSortMergeJoin:
		return SortMerge, nil
	default:
		return 0, errors.NoJoinExecutorSelectedError()
	}
}
