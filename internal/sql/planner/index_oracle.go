package planner

import (
	"sort"

	"github.com/dshills/rmplan/internal/ast"
	"github.com/dshills/rmplan/internal/catalog"
)

// getIndexCols decides whether a usable index exists for table over
// conds and, if so, returns its column list. Candidate columns are
// every lhs of a single-sided predicate on this table whose operator
// could in principle drive an index scan (equality, inequality, or
// range). A single-column index wins over a composite one; ties among
// single-column candidates are broken by sorted column name, which
// keeps the result a pure function of (table, conds) so repeated
// planning of the same query produces the same plan.
func getIndexCols(table *catalog.Table, conds []ast.Condition) ([]string, bool) {
	candidates := candidateIndexColumns(table.Name, conds)
	if len(candidates) == 0 {
		return nil, false
	}

	sorted := make([]string, 0, len(candidates))
	for c := range candidates {
		sorted = append(sorted, c)
	}
	sort.Strings(sorted)

	for _, c := range sorted {
		if table.IsIndex([]string{c}) {
			return []string{c}, true
		}
	}

	if table.IsIndex(sorted) {
		return sorted, true
	}

	return nil, false
}

func candidateIndexColumns(tableName string, conds []ast.Condition) map[string]struct{} {
	candidates := make(map[string]struct{})
	for _, c := range conds {
		if c.Lhs.TableName != tableName || !c.RhsIsValue {
			continue
		}
		switch c.Op {
		case ast.OpEQ, ast.OpLT, ast.OpLE, ast.OpGT, ast.OpGE, ast.OpNE:
			candidates[c.Lhs.ColumnName] = struct{}{}
		}
	}
	return candidates
}
