// Package ast defines the statement and predicate node types the planner
// dispatches on. It does not parse SQL text: the lexer/grammar that
// produces these nodes lives elsewhere, mirroring the common split
// between grammar (lexer, parser) and node shapes (ast) — this package
// keeps only the latter.
package ast

import (
	"fmt"

	"github.com/dshills/rmplan/internal/sql/types"
)

// Node is the base interface for every AST node.
type Node interface {
	String() string
}

// Statement is the base interface for every SQL statement the planner
// dispatches on.
type Statement interface {
	Node
	statementNode()
}

// TabCol identifies a column, optionally qualified by table and alias.
// Two TabCol values are equal when table and column match.
type TabCol struct {
	TableName string
	ColumnName string
	Alias     string
}

func (c TabCol) String() string {
	if c.TableName == "" {
		return c.ColumnName
	}
	return fmt.Sprintf("%s.%s", c.TableName, c.ColumnName)
}

// Equal reports whether two column references name the same column.
func (c TabCol) Equal(other TabCol) bool {
	return c.TableName == other.TableName && c.ColumnName == other.ColumnName
}

// CompOp is a binary comparison operator.
type CompOp int

const (
	OpEQ CompOp = iota
	OpNE
	OpLT
	OpLE
	OpGT
	OpGE
)

func (op CompOp) String() string {
	switch op {
	case OpEQ:
		return "="
	case OpNE:
		return "!="
	case OpLT:
		return "<"
	case OpLE:
		return "<="
	case OpGT:
		return ">"
	case OpGE:
		return ">="
	default:
		return "?"
	}
}

// Swap returns the operator that preserves meaning when the two sides
// of a comparison are exchanged: A op B ≡ B Swap(op) A. It is an
// involution: Swap(Swap(op)) == op for every operator.
func (op CompOp) Swap() CompOp {
	switch op {
	case OpEQ:
		return OpEQ
	case OpNE:
		return OpNE
	case OpLT:
		return OpGT
	case OpGT:
		return OpLT
	case OpLE:
		return OpGE
	case OpGE:
		return OpLE
	default:
		return op
	}
}

// Condition is a single predicate. When RhsIsValue is true, Rhs carries
// a literal and the predicate is single-sided (targets Lhs's table);
// otherwise RhsCol references a (possibly different) table and the
// predicate is join-shaped.
type Condition struct {
	Lhs        TabCol
	Op         CompOp
	RhsCol     TabCol
	RhsValue   types.Value
	RhsIsValue bool
}

func (c Condition) String() string {
	if c.RhsIsValue {
		return fmt.Sprintf("%s %s %s", c.Lhs, c.Op, c.RhsValue.String())
	}
	return fmt.Sprintf("%s %s %s", c.Lhs, c.Op, c.RhsCol)
}

// Swapped returns the condition with its sides exchanged: the old Rhs
// (column side) becomes Lhs, the old Lhs becomes RhsCol, and Op is
// replaced by its Swap(). Only meaningful for join-shaped conditions.
func (c Condition) Swapped() Condition {
	return Condition{
		Lhs:        c.RhsCol,
		Op:         c.Op.Swap(),
		RhsCol:     c.Lhs,
		RhsIsValue: false,
	}
}

// SetClause is a single "column = value" assignment in an UPDATE.
type SetClause struct {
	ColumnName string
	NewValue   types.Value
}

// TableRef is a table named in a FROM clause, with its optional alias.
type TableRef struct {
	TableName string
	Alias     string
}

// EffectiveName returns the alias if present, else the table name —
// downstream resolution always uses this as the effective table name.
func (t TableRef) EffectiveName() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.TableName
}

// ColDef is a single column definition in a CREATE TABLE statement.
type ColDef struct {
	Name        string
	DataType    types.DataType
	Constraints []string
}

func (c ColDef) String() string {
	return fmt.Sprintf("%s %s", c.Name, c.DataType.Name())
}
