package planner

import (
	"testing"

	"github.com/dshills/rmplan/internal/ast"
	"github.com/dshills/rmplan/internal/sql/types"
	"github.com/stretchr/testify/assert"
)

func TestPopCondsSingleSided(t *testing.T) {
	conds := []ast.Condition{
		{Lhs: ast.TabCol{TableName: "r", ColumnName: "x"}, Op: ast.OpEQ, RhsValue: types.NewBigIntValue(1), RhsIsValue: true},
		{Lhs: ast.TabCol{TableName: "s", ColumnName: "y"}, Op: ast.OpEQ, RhsValue: types.NewBigIntValue(2), RhsIsValue: true},
	}

	popped := popConds(&conds, "r")
	assert.Len(t, popped, 1)
	assert.Equal(t, "r", popped[0].Lhs.TableName)
	assert.Len(t, conds, 1)
	assert.Equal(t, "s", conds[0].Lhs.TableName)
}

func TestPopCondsSelfReferential(t *testing.T) {
	conds := []ast.Condition{
		{Lhs: ast.TabCol{TableName: "r", ColumnName: "x"}, Op: ast.OpLT, RhsCol: ast.TabCol{TableName: "r", ColumnName: "y"}},
	}

	popped := popConds(&conds, "r")
	assert.Len(t, popped, 1)
	assert.Empty(t, conds)
}

func TestPopCondsLeavesJoinShapedResidual(t *testing.T) {
	conds := []ast.Condition{
		{Lhs: ast.TabCol{TableName: "r", ColumnName: "x"}, Op: ast.OpEQ, RhsCol: ast.TabCol{TableName: "s", ColumnName: "y"}},
	}

	popped := popConds(&conds, "r")
	assert.Empty(t, popped)
	assert.Len(t, conds, 1, "a join-shaped predicate across two different tables is residual, not attributable to either alone")
}
