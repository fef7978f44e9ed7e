package planner

import "github.com/dshills/rmplan/internal/ast"

// applyProjectionPushdown inserts per-table ProjectionPlans above scans
// whose needed-column set is a strict subset of their full column set,
// then always wraps the root in a ProjectionPlan carrying query.Cols
// (the expanded list for SELECT *).
func applyProjectionPushdown(plan PlanNode, query *Query, tableCols map[string][]string) PlanNode {
	needed := neededColumns(query, plan)

	if len(query.Tables) > 1 && !query.IsSelectStar && len(query.Cols) > 0 {
		plan = pushProjections(plan, needed, tableCols)
	}

	return &ProjectionPlan{Child: plan, Cols: query.Cols}
}

// neededColumns recomputes the needed-column set independently of the
// logical pass's recording, grouped per table, including columns
// referenced by join conditions collected from the tree.
func neededColumns(query *Query, plan PlanNode) map[string]map[string]struct{} {
	needed := make(map[string]map[string]struct{})
	add := func(col ast.TabCol) {
		if col.TableName == "" {
			return
		}
		if needed[col.TableName] == nil {
			needed[col.TableName] = make(map[string]struct{})
		}
		needed[col.TableName][col.ColumnName] = struct{}{}
	}

	for _, c := range query.Cols {
		add(c)
	}
	for _, c := range query.Conds {
		add(c.Lhs)
		if !c.RhsIsValue {
			add(c.RhsCol)
		}
	}
	collectJoinConditionColumns(plan, add)

	return needed
}

func collectJoinConditionColumns(plan PlanNode, add func(ast.TabCol)) {
	switch p := plan.(type) {
	case *JoinPlan:
		for _, c := range p.Conds {
			add(c.Lhs)
			if !c.RhsIsValue {
				add(c.RhsCol)
			}
		}
		collectJoinConditionColumns(p.Left, add)
		collectJoinConditionColumns(p.Right, add)
	case *FilterPlan:
		for _, c := range p.Conds {
			add(c.Lhs)
			if !c.RhsIsValue {
				add(c.RhsCol)
			}
		}
		collectJoinConditionColumns(p.Child, add)
	case *ProjectionPlan:
		collectJoinConditionColumns(p.Child, add)
	case *SortPlan:
		collectJoinConditionColumns(p.Child, add)
	}
}

func pushProjections(plan PlanNode, needed map[string]map[string]struct{}, tableCols map[string][]string) PlanNode {
	switch p := plan.(type) {
	case *JoinPlan:
		p.Left = pushProjections(p.Left, needed, tableCols)
		p.Right = pushProjections(p.Right, needed, tableCols)
		return p

	case *FilterPlan:
		p.Child = pushProjections(p.Child, needed, tableCols)
		return p

	case *ScanPlan:
		name := p.TableName
		if p.Alias != "" {
			name = p.Alias
		}
		full := tableCols[p.TableName]
		have := needed[name]
		if len(have) == 0 || len(have) >= len(full) {
			return p
		}

		cols := make([]ast.TabCol, 0, len(have))
		for _, colName := range full {
			if _, ok := have[colName]; ok {
				cols = append(cols, ast.TabCol{TableName: name, ColumnName: colName})
			}
		}
		return &ProjectionPlan{Child: p, Cols: cols}

	default:
		return plan
	}
}
