package planner

import (
	"github.com/dshills/rmplan/internal/ast"
	"github.com/dshills/rmplan/internal/sql/types"
)

// Query is the planner's annotated input: a statement root plus the
// flattened table/column/predicate lists the logical optimizer and
// physical builder operate on. Tables is reordered in place by greedy
// join-order optimization (logical.go).
type Query struct {
	ASTRoot      ast.Statement
	Tables       []ast.TableRef
	Cols         []ast.TabCol
	Conds        []ast.Condition
	SetClauses   []ast.SetClause
	Values       []types.Value
	AliasMap     map[string]string
	IsSelectStar bool
	HasSort      bool
	SortColumn   string
	SortDesc     bool

	// neededCols is the column set projection pushdown's logical pass
	// records. The refinement pass does not read it; it recomputes its
	// own set (neededColumns in projection_pushdown.go).
	neededCols map[ast.TabCol]struct{}
}

// TableNames returns the effective (alias-resolved) names of every
// table in the query, in current order.
func (q *Query) TableNames() []string {
	names := make([]string, len(q.Tables))
	for i, t := range q.Tables {
		names[i] = t.EffectiveName()
	}
	return names
}
