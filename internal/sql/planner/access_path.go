package planner

import (
	"github.com/dshills/rmplan/internal/ast"
	"github.com/dshills/rmplan/internal/catalog"
	"github.com/dshills/rmplan/internal/errors"
)

// buildAccessPaths constructs one ScanPlan per table in query.Tables,
// in order, consuming each table's single-table predicates out of
// conds via popConds. The predicates left in conds after this call are
// the residual (join/cross-table) set make_one_rel assembles.
func buildAccessPaths(cat catalog.Catalog, query *Query, conds *[]ast.Condition) (map[string]*ScanPlan, error) {
	scans := make(map[string]*ScanPlan, len(query.Tables))

	for _, ref := range query.Tables {
		table, err := cat.GetTable(ref.TableName)
		if err != nil {
			return nil, errors.UndefinedTableError(ref.TableName)
		}

		name := ref.EffectiveName()
		tableConds := popConds(conds, name)

		indexCols, useIndex := getIndexCols(table, tableConds)

		kind := SeqScan
		if useIndex {
			kind = IndexScan
		}

		scans[name] = &ScanPlan{
			Kind:      kind,
			TableName: ref.TableName,
			Alias:     ref.Alias,
			Conds:     tableConds,
			FedConds:  append([]ast.Condition{}, tableConds...),
			IndexCols: indexCols,
		}
	}

	return scans, nil
}
