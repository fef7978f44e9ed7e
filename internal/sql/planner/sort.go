package planner

import (
	"github.com/dshills/rmplan/internal/ast"
	"github.com/dshills/rmplan/internal/catalog"
	"github.com/dshills/rmplan/internal/errors"
)

// generateSortPlan wraps plan in a SortPlan when the query carries an
// ORDER BY, locating the sort column across the query's tables by
// name (first hit wins). Otherwise plan is returned unchanged.
func generateSortPlan(cat catalog.Catalog, query *Query, plan PlanNode) (PlanNode, error) {
	if !query.HasSort {
		return plan, nil
	}

	for _, ref := range query.Tables {
		table, err := cat.GetTable(ref.TableName)
		if err != nil {
			return nil, errors.UndefinedTableError(ref.TableName)
		}
		if table.GetColumn(query.SortColumn) == nil {
			continue
		}
		key := ast.TabCol{TableName: ref.EffectiveName(), ColumnName: query.SortColumn}
		return &SortPlan{Child: plan, Key: key, Descending: query.SortDesc}, nil
	}

	return nil, errors.UndefinedColumnError(query.SortColumn, "")
}
