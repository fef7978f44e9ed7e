package planner

import "github.com/dshills/rmplan/internal/ast"

// popConds removes and returns every predicate attributable to table:
// single-sided predicates on it, and self-referential join-shaped
// predicates (both sides name the same table). The remaining slice,
// written back through conds, is the residual cross-table set that
// make_one_rel consumes.
func popConds(conds *[]ast.Condition, table string) []ast.Condition {
	var popped []ast.Condition
	remaining := (*conds)[:0:0]

	for _, c := range *conds {
		switch {
		case c.RhsIsValue && c.Lhs.TableName == table:
			popped = append(popped, c)
		case !c.RhsIsValue && c.Lhs.TableName == c.RhsCol.TableName && c.Lhs.TableName == table:
			popped = append(popped, c)
		default:
			remaining = append(remaining, c)
		}
	}

	*conds = remaining
	return popped
}
