package planner

import (
	"sort"

	"github.com/dshills/rmplan/internal/ast"
	"github.com/dshills/rmplan/internal/catalog"
	"github.com/dshills/rmplan/internal/log"
)

const pageUtilization = 0.7

// defaultCardinality is the fallback row estimate when the catalog
// cannot supply a table's file handle — the one swallowed error class
// in this planner.
const defaultCardinality = 1000

// optimizeLogical applies predicate pushdown, projection pushdown, and
// greedy join ordering to query. It is a no-op for anything but a
// SELECT.
func optimizeLogical(cat catalog.Catalog, query *Query) error {
	if _, ok := query.ASTRoot.(*ast.SelectStmt); !ok {
		return nil
	}

	pushdownPredicates(query)
	recordNeededColumns(query)

	if len(query.Tables) >= 3 {
		if err := orderJoins(cat, query); err != nil {
			return err
		}
	}

	return nil
}

// pushdownPredicates is the logical-level predicate pushdown pass.
// Actual movement of single-table predicates into scans happens later
// in popConds during physical construction, and filter placement
// happens in the refinement pass; this hook exists so the pipeline
// stage is present and idempotent, matching a no-op fixed point.
func pushdownPredicates(query *Query) {}

// recordNeededColumns computes the set of qualified column names the
// query needs — select columns, predicate columns, and the ORDER BY
// column — and records it on the query. The projection-pushdown
// refiner recomputes this set independently rather than consuming it,
// since nothing downstream has ever been observed reading it back.
func recordNeededColumns(query *Query) {
	needed := make(map[ast.TabCol]struct{})

	for _, c := range query.Cols {
		needed[ast.TabCol{TableName: c.TableName, ColumnName: c.ColumnName}] = struct{}{}
	}
	for _, c := range query.Conds {
		needed[ast.TabCol{TableName: c.Lhs.TableName, ColumnName: c.Lhs.ColumnName}] = struct{}{}
		if !c.RhsIsValue {
			needed[ast.TabCol{TableName: c.RhsCol.TableName, ColumnName: c.RhsCol.ColumnName}] = struct{}{}
		}
	}
	if query.HasSort {
		for _, t := range query.Tables {
			needed[ast.TabCol{TableName: t.EffectiveName(), ColumnName: query.SortColumn}] = struct{}{}
		}
	}

	query.neededCols = needed
}

// estimateCardinality returns a table's estimated row count using only
// page counts and a fixed utilization factor — no histograms, no
// sampling. Any catalog error is swallowed and defaults to 1000 rows.
func estimateCardinality(cat catalog.Catalog, tableName string) int {
	h, err := cat.GetFileHandle(tableName)
	if err != nil {
		log.Warn("cardinality estimate defaulted after catalog error",
			log.String("table", tableName), log.Any("error", err))
		return defaultCardinality
	}

	est := int(float64(h.NumPages-1) * float64(h.RecordsPerPage) * pageUtilization)
	if est < 1 {
		est = 1
	}
	return est
}

// orderJoins reorders query.Tables greedily by ascending cardinality,
// always extending from a table connected to the already-chosen set
// when one exists.
func orderJoins(cat catalog.Catalog, query *Query) error {
	card := make(map[string]int, len(query.Tables))
	for _, t := range query.Tables {
		card[t.EffectiveName()] = estimateCardinality(cat, t.TableName)
	}

	edges := joinGraph(query.Conds)

	remaining := append([]ast.TableRef{}, query.Tables...)
	sort.SliceStable(remaining, func(i, j int) bool {
		return card[remaining[i].EffectiveName()] < card[remaining[j].EffectiveName()]
	})

	if len(remaining) < 2 {
		return nil
	}

	ordered := []ast.TableRef{remaining[0], remaining[1]}
	chosen := map[string]struct{}{
		remaining[0].EffectiveName(): {},
		remaining[1].EffectiveName(): {},
	}
	remaining = remaining[2:]

	for len(remaining) > 0 {
		idx := pickNextConnected(remaining, chosen, edges, card)
		if idx < 0 {
			idx = 0 // nothing connects; take cheapest remaining regardless
		}
		next := remaining[idx]
		ordered = append(ordered, next)
		chosen[next.EffectiveName()] = struct{}{}
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	query.Tables = ordered
	return nil
}

// pickNextConnected returns the index within remaining (already sorted
// ascending by cardinality) of the cheapest table with a join edge
// into chosen, or -1 if none qualifies.
func pickNextConnected(remaining []ast.TableRef, chosen map[string]struct{}, edges map[string]map[string]struct{}, card map[string]int) int {
	for i, t := range remaining {
		name := t.EffectiveName()
		for c := range chosen {
			if _, ok := edges[name][c]; ok {
				return i
			}
		}
	}
	return -1
}

// orderResidualConds moves the condition connecting order's first two
// tables to the front of conds, leaving the rest in place. make_one_rel
// seeds its join tree from the first residual condition; without this,
// the seed pair would track whichever predicate happened to come
// first in the WHERE clause rather than the cardinality-driven table
// order orderJoins already computed, producing a tree whose shape
// drifts from the cost order it was built from.
func orderResidualConds(order []string, conds []ast.Condition) []ast.Condition {
	if len(order) < 2 || len(conds) < 2 {
		return conds
	}

	first, second := order[0], order[1]
	for i, c := range conds {
		if i == 0 {
			continue
		}
		connects := (c.Lhs.TableName == first && c.RhsCol.TableName == second) ||
			(c.Lhs.TableName == second && c.RhsCol.TableName == first)
		if !connects {
			continue
		}

		reordered := make([]ast.Condition, 0, len(conds))
		reordered = append(reordered, c)
		reordered = append(reordered, conds[:i]...)
		reordered = append(reordered, conds[i+1:]...)
		return reordered
	}

	return conds
}

// joinGraph builds an undirected adjacency set: an edge exists between
// two tables iff some condition is join-shaped (rhs_is_value == false)
// and references both.
func joinGraph(conds []ast.Condition) map[string]map[string]struct{} {
	edges := make(map[string]map[string]struct{})
	addEdge := func(a, b string) {
		if edges[a] == nil {
			edges[a] = make(map[string]struct{})
		}
		if edges[b] == nil {
			edges[b] = make(map[string]struct{})
		}
		edges[a][b] = struct{}{}
		edges[b][a] = struct{}{}
	}

	for _, c := range conds {
		if c.RhsIsValue {
			continue
		}
		addEdge(c.Lhs.TableName, c.RhsCol.TableName)
	}

	return edges
}
