package planner

import (
	"testing"

	"github.com/dshills/rmplan/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerateSortPlanWrapsChild covers S6: SELECT a FROM t ORDER BY a
// DESC produces a SortPlan beneath the eventual projection.
func TestGenerateSortPlanWrapsChild(t *testing.T) {
	cat := buildCatalog(t, tableSpec{name: "t", columns: []string{"a"}})
	scan := &ScanPlan{TableName: "t"}
	query := &Query{
		Tables:     []ast.TableRef{{TableName: "t"}},
		HasSort:    true,
		SortColumn: "a",
		SortDesc:   true,
	}

	plan, err := generateSortPlan(cat, query, scan)
	require.NoError(t, err)

	sort, ok := plan.(*SortPlan)
	require.True(t, ok)
	assert.Same(t, scan, sort.Child)
	assert.Equal(t, ast.TabCol{TableName: "t", ColumnName: "a"}, sort.Key)
	assert.True(t, sort.Descending)
}

func TestGenerateSortPlanNoOrderByPassesThrough(t *testing.T) {
	cat := buildCatalog(t, tableSpec{name: "t", columns: []string{"a"}})
	scan := &ScanPlan{TableName: "t"}
	query := &Query{Tables: []ast.TableRef{{TableName: "t"}}}

	plan, err := generateSortPlan(cat, query, scan)
	require.NoError(t, err)
	assert.Same(t, scan, plan)
}

func TestGenerateSortPlanUndefinedColumnErrors(t *testing.T) {
	cat := buildCatalog(t, tableSpec{name: "t", columns: []string{"a"}})
	scan := &ScanPlan{TableName: "t"}
	query := &Query{
		Tables:     []ast.TableRef{{TableName: "t"}},
		HasSort:    true,
		SortColumn: "ghost",
	}

	_, err := generateSortPlan(cat, query, scan)
	assert.Error(t, err)
}

func TestGenerateSortPlanFindsColumnAcrossJoinedTables(t *testing.T) {
	cat := buildCatalog(t,
		tableSpec{name: "r", columns: []string{"x"}},
		tableSpec{name: "s", columns: []string{"y"}},
	)
	scan := &ScanPlan{TableName: "r"}
	query := &Query{
		Tables:     []ast.TableRef{{TableName: "r"}, {TableName: "s"}},
		HasSort:    true,
		SortColumn: "y",
	}

	plan, err := generateSortPlan(cat, query, scan)
	require.NoError(t, err)

	sort, ok := plan.(*SortPlan)
	require.True(t, ok)
	assert.Equal(t, "s", sort.Key.TableName)
}
