package planner

import (
	"testing"

	"github.com/dshills/rmplan/internal/ast"
	"github.com/dshills/rmplan/internal/sql/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetIndexColsSingleColumnMatch(t *testing.T) {
	cat := buildCatalog(t, tableSpec{
		name:    "t",
		columns: []string{"a", "b"},
		indexes: [][]string{{"a"}},
	})
	table, err := cat.GetTable("t")
	require.NoError(t, err)

	conds := []ast.Condition{
		{Lhs: ast.TabCol{TableName: "t", ColumnName: "a"}, Op: ast.OpEQ, RhsValue: types.NewBigIntValue(5), RhsIsValue: true},
	}

	cols, ok := getIndexCols(table, conds)
	assert.True(t, ok)
	assert.Equal(t, []string{"a"}, cols)
}

func TestGetIndexColsNoMatch(t *testing.T) {
	cat := buildCatalog(t, tableSpec{name: "t", columns: []string{"a", "b"}})
	table, err := cat.GetTable("t")
	require.NoError(t, err)

	conds := []ast.Condition{
		{Lhs: ast.TabCol{TableName: "t", ColumnName: "a"}, Op: ast.OpEQ, RhsValue: types.NewBigIntValue(5), RhsIsValue: true},
	}

	cols, ok := getIndexCols(table, conds)
	assert.False(t, ok)
	assert.Empty(t, cols)
}

func TestGetIndexColsCompositeFallback(t *testing.T) {
	cat := buildCatalog(t, tableSpec{
		name:    "t",
		columns: []string{"a", "b"},
		indexes: [][]string{{"a", "b"}},
	})
	table, err := cat.GetTable("t")
	require.NoError(t, err)

	conds := []ast.Condition{
		{Lhs: ast.TabCol{TableName: "t", ColumnName: "a"}, Op: ast.OpEQ, RhsValue: types.NewBigIntValue(5), RhsIsValue: true},
		{Lhs: ast.TabCol{TableName: "t", ColumnName: "b"}, Op: ast.OpEQ, RhsValue: types.NewBigIntValue(6), RhsIsValue: true},
	}

	cols, ok := getIndexCols(table, conds)
	assert.True(t, ok)
	assert.ElementsMatch(t, []string{"a", "b"}, cols)
}

func TestGetIndexColsDeterministicTieBreak(t *testing.T) {
	cat := buildCatalog(t, tableSpec{
		name:    "t",
		columns: []string{"a", "b", "c"},
		indexes: [][]string{{"b"}, {"a"}},
	})
	table, err := cat.GetTable("t")
	require.NoError(t, err)

	conds := []ast.Condition{
		{Lhs: ast.TabCol{TableName: "t", ColumnName: "b"}, Op: ast.OpEQ, RhsValue: types.NewBigIntValue(1), RhsIsValue: true},
		{Lhs: ast.TabCol{TableName: "t", ColumnName: "a"}, Op: ast.OpEQ, RhsValue: types.NewBigIntValue(2), RhsIsValue: true},
	}

	cols, ok := getIndexCols(table, conds)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, cols, "sorted candidate order picks a's index before b's")
}
