package planner

import (
	"github.com/dshills/rmplan/internal/ast"
	"github.com/dshills/rmplan/internal/catalog"
	"github.com/dshills/rmplan/internal/config"
	"github.com/dshills/rmplan/internal/errors"
	"github.com/dshills/rmplan/internal/log"
)

// Plan dispatches on query.ASTRoot's concrete type and builds the
// corresponding plan shape. cfg is snapshotted by value by the caller
// before this call — the planner never re-reads live configuration
// mid-call, so a query's join-algorithm choice is stable even if a
// concurrent SET statement flips a knob.
func Plan(cat catalog.Catalog, cfg config.PlannerConfig, query *Query) (PlanNode, error) {
	switch stmt := query.ASTRoot.(type) {
	case *ast.CreateTableStmt:
		return &DDLPlan{Op: OpCreateTable, TableName: stmt.TableName, Columns: stmt.Columns}, nil

	case *ast.DropTableStmt:
		return &DDLPlan{Op: OpDropTable, TableName: stmt.TableName}, nil

	case *ast.CreateIndexStmt:
		return &DDLPlan{Op: OpCreateIndex, TableName: stmt.TableName, IndexCols: stmt.ColumnNames}, nil

	case *ast.DropIndexStmt:
		return &DDLPlan{Op: OpDropIndex, TableName: stmt.TableName, IndexCols: stmt.ColumnNames}, nil

	case *ast.ShowIndexStmt:
		return &OtherPlan{Op: OpShowIndex, TableName: stmt.TableName}, nil

	case *ast.InsertStmt:
		return &DMLPlan{Op: OpInsert, TableName: stmt.TableName, Values: stmt.Values}, nil

	case *ast.DeleteStmt:
		scan, err := buildSingleTableScan(cat, stmt.TableName, stmt.Where)
		if err != nil {
			return nil, err
		}
		return &DMLPlan{Op: OpDelete, Child: scan, TableName: stmt.TableName, Conds: stmt.Where}, nil

	case *ast.UpdateStmt:
		scan, err := buildSingleTableScan(cat, stmt.TableName, stmt.Where)
		if err != nil {
			return nil, err
		}
		return &DMLPlan{Op: OpUpdate, Child: scan, TableName: stmt.TableName, Conds: stmt.Where, SetClauses: stmt.Set}, nil

	case *ast.SelectStmt:
		child, err := generateSelectPlan(cat, cfg, query)
		if err != nil {
			return nil, err
		}
		return &DMLPlan{Op: OpSelect, Child: child}, nil

	case *ast.ExplainStmt:
		inner := *query
		inner.ASTRoot = stmt.Child
		child, err := generateSelectPlan(cat, cfg, &inner)
		if err != nil {
			return nil, err
		}
		return &DMLPlan{
			Op:           OpExplain,
			Child:        child,
			AliasMap:     query.AliasMap,
			IsSelectStar: query.IsSelectStar,
		}, nil

	default:
		return nil, errors.UnexpectedASTRootError(kindOf(query.ASTRoot))
	}
}

// generateSelectPlan runs the full SELECT pipeline: logical optimize,
// physical assembly, then the two refinement passes and sort
// generation, in that order. The sort node is placed beneath the root
// projection, so the projection stays the root of the plan.
func generateSelectPlan(cat catalog.Catalog, cfg config.PlannerConfig, query *Query) (PlanNode, error) {
	if err := optimizeLogical(cat, query); err != nil {
		return nil, err
	}

	residual := append([]ast.Condition{}, query.Conds...)
	scans, err := buildAccessPaths(cat, query, &residual)
	if err != nil {
		return nil, err
	}

	tableOrder := query.TableNames()
	residual = orderResidualConds(tableOrder, residual)

	log.Debug("assembling join tree",
		log.Any("tables", tableOrder),
		log.Int("residual_conds", len(residual)))

	plan, err := makeOneRel(&cfg, scans, tableOrder, residual)
	if err != nil {
		return nil, err
	}

	plan = applyPredicatePushdown(plan)

	tableCols, err := columnNamesByTable(cat, query)
	if err != nil {
		return nil, err
	}
	root := applyProjectionPushdown(plan, query, tableCols).(*ProjectionPlan)

	sorted, err := generateSortPlan(cat, query, root.Child)
	if err != nil {
		return nil, err
	}
	root.Child = sorted
	return root, nil
}

// buildSingleTableScan constructs the access path DELETE/UPDATE plan
// against a single target table, using the same index oracle and
// predicate classifier as a SELECT's per-table scan.
func buildSingleTableScan(cat catalog.Catalog, tableName string, where []ast.Condition) (PlanNode, error) {
	table, err := cat.GetTable(tableName)
	if err != nil {
		return nil, errors.UndefinedTableError(tableName)
	}

	conds := append([]ast.Condition{}, where...)
	tableConds := popConds(&conds, tableName)

	indexCols, useIndex := getIndexCols(table, tableConds)
	kind := SeqScan
	if useIndex {
		kind = IndexScan
	}

	return &ScanPlan{
		Kind:      kind,
		TableName: tableName,
		Conds:     tableConds,
		FedConds:  append([]ast.Condition{}, tableConds...),
		IndexCols: indexCols,
	}, nil
}

func columnNamesByTable(cat catalog.Catalog, query *Query) (map[string][]string, error) {
	cols := make(map[string][]string, len(query.Tables))
	for _, ref := range query.Tables {
		table, err := cat.GetTable(ref.TableName)
		if err != nil {
			return nil, errors.UndefinedTableError(ref.TableName)
		}
		names := make([]string, len(table.Columns))
		for i, c := range table.Columns {
			names[i] = c.Name
		}
		cols[ref.TableName] = names
	}
	return cols, nil
}

func kindOf(stmt ast.Statement) string {
	if stmt == nil {
		return "<nil>"
	}
	return stmt.String()
}
