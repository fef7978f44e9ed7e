package planner

import (
	"testing"

	"github.com/dshills/rmplan/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyProjectionPushdownNarrowsWideScan(t *testing.T) {
	scan := &ScanPlan{TableName: "r"}
	join := &JoinPlan{
		Algo:  NestLoop,
		Left:  scan,
		Right: &ScanPlan{TableName: "s"},
		Conds: []ast.Condition{
			{Lhs: ast.TabCol{TableName: "r", ColumnName: "x"}, Op: ast.OpEQ, RhsCol: ast.TabCol{TableName: "s", ColumnName: "u"}},
		},
	}

	query := &Query{
		Tables: []ast.TableRef{{TableName: "r"}, {TableName: "s"}},
		Cols:   []ast.TabCol{{TableName: "s", ColumnName: "v"}},
	}
	tableCols := map[string][]string{
		"r": {"x", "y", "z"},
		"s": {"u", "v"},
	}

	plan := applyProjectionPushdown(join, query, tableCols)

	root, ok := plan.(*ProjectionPlan)
	require.True(t, ok)
	assert.Equal(t, query.Cols, root.Cols)

	inner, ok := root.Child.(*JoinPlan)
	require.True(t, ok)

	rProj, ok := inner.Left.(*ProjectionPlan)
	require.True(t, ok, "r is only needed for its join column, so it gets narrowed")
	assert.Equal(t, []ast.TabCol{{TableName: "r", ColumnName: "x"}}, rProj.Cols)

	// s needs both its join column and its selected column, i.e. every
	// column it has, so no ProjectionPlan is inserted above its scan.
	_, sNarrowed := inner.Right.(*ProjectionPlan)
	assert.False(t, sNarrowed)
}

func TestApplyProjectionPushdownSkipsSelectStar(t *testing.T) {
	scan := &ScanPlan{TableName: "t"}
	query := &Query{
		Tables:       []ast.TableRef{{TableName: "t"}},
		IsSelectStar: true,
	}

	plan := applyProjectionPushdown(scan, query, map[string][]string{"t": {"a", "b"}})

	root, ok := plan.(*ProjectionPlan)
	require.True(t, ok)
	assert.Same(t, scan, root.Child, "single-table SELECT * never gets a per-scan projection inserted")
}

func TestApplyProjectionPushdownSingleTableLeavesScanAlone(t *testing.T) {
	scan := &ScanPlan{TableName: "t"}
	query := &Query{
		Tables: []ast.TableRef{{TableName: "t"}},
		Cols:   []ast.TabCol{{TableName: "t", ColumnName: "a"}},
	}

	plan := applyProjectionPushdown(scan, query, map[string][]string{"t": {"a", "b"}})

	root, ok := plan.(*ProjectionPlan)
	require.True(t, ok)
	assert.Same(t, scan, root.Child, "a lone table's scan is never wrapped; only the top projection carries Cols")
}
