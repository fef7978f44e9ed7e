package ast

import (
	"fmt"
	"strings"

	"github.com/dshills/rmplan/internal/sql/types"
)

// CreateTableStmt represents a CREATE TABLE statement.
type CreateTableStmt struct {
	TableName string
	Columns   []ColDef
}

func (s *CreateTableStmt) statementNode() {}
func (s *CreateTableStmt) String() string {
	cols := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		cols[i] = c.String()
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", s.TableName, strings.Join(cols, ", "))
}

// DropTableStmt represents a DROP TABLE statement.
type DropTableStmt struct {
	TableName string
}

func (s *DropTableStmt) statementNode() {}
func (s *DropTableStmt) String() string { return fmt.Sprintf("DROP TABLE %s", s.TableName) }

// CreateIndexStmt represents a CREATE INDEX statement.
type CreateIndexStmt struct {
	TableName   string
	ColumnNames []string
}

func (s *CreateIndexStmt) statementNode() {}
func (s *CreateIndexStmt) String() string {
	return fmt.Sprintf("CREATE INDEX ON %s (%s)", s.TableName, strings.Join(s.ColumnNames, ", "))
}

// DropIndexStmt represents a DROP INDEX statement.
type DropIndexStmt struct {
	TableName   string
	ColumnNames []string
}

func (s *DropIndexStmt) statementNode() {}
func (s *DropIndexStmt) String() string {
	return fmt.Sprintf("DROP INDEX ON %s (%s)", s.TableName, strings.Join(s.ColumnNames, ", "))
}

// ShowIndexStmt represents a SHOW INDEX FROM statement.
type ShowIndexStmt struct {
	TableName string
}

func (s *ShowIndexStmt) statementNode() {}
func (s *ShowIndexStmt) String() string { return fmt.Sprintf("SHOW INDEX FROM %s", s.TableName) }

// InsertStmt represents an INSERT statement. RMDB's grammar requires a
// full positional value list (no column list form), so Values lines up
// 1:1 with the target table's column order.
type InsertStmt struct {
	TableName string
	Values    []types.Value
}

func (s *InsertStmt) statementNode() {}
func (s *InsertStmt) String() string {
	return fmt.Sprintf("INSERT INTO %s VALUES (...)", s.TableName)
}

// DeleteStmt represents a DELETE statement.
type DeleteStmt struct {
	TableName string
	Where     []Condition
}

func (s *DeleteStmt) statementNode() {}
func (s *DeleteStmt) String() string { return fmt.Sprintf("DELETE FROM %s", s.TableName) }

// UpdateStmt represents an UPDATE statement.
type UpdateStmt struct {
	TableName string
	Set       []SetClause
	Where     []Condition
}

func (s *UpdateStmt) statementNode() {}
func (s *UpdateStmt) String() string { return fmt.Sprintf("UPDATE %s", s.TableName) }

// SelectStmt represents a SELECT statement. RMDB's grammar reduces the
// FROM clause straight to a flat table list (no nested join tree) and
// the WHERE clause straight to a flat AND-only predicate list, so
// there is no separate expression tree to walk here — these lists
// already are the planner's input shape.
type SelectStmt struct {
	Tables     []TableRef
	Cols       []TabCol
	Where      []Condition
	SelectStar bool
	HasSort    bool
	SortColumn string
	SortDesc   bool
}

func (s *SelectStmt) statementNode() {}
func (s *SelectStmt) String() string {
	names := make([]string, len(s.Tables))
	for i, t := range s.Tables {
		names[i] = t.TableName
	}
	if s.SelectStar {
		return fmt.Sprintf("SELECT * FROM %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("SELECT ... FROM %s", strings.Join(names, ", "))
}

// ExplainStmt wraps a child statement, asking the planner to build its
// plan without executing it.
type ExplainStmt struct {
	Child Statement
}

func (s *ExplainStmt) statementNode() {}
func (s *ExplainStmt) String() string { return fmt.Sprintf("EXPLAIN %s", s.Child.String()) }

// SetStmt sets one of the two process-wide join-algorithm knobs:
// "SET enable_nestloop = true|false;" or
// "SET enable_sortmerge = true|false;". The original RMDB grammar
// recognizes these identifiers as a special statement form distinct
// from ordinary variable assignment.
type SetStmt struct {
	Name  string
	Value bool
}

func (s *SetStmt) statementNode() {}
func (s *SetStmt) String() string { return fmt.Sprintf("SET %s = %t", s.Name, s.Value) }
