// Package catalog is the planner's read-only view of table metadata:
// column lists, index definitions, and the per-table page counts the
// cardinality estimator reads. It never mutates tables or indexes as
// a side effect of planning; DDL plans carry catalog changes
// downstream to the executor, which is the actual owner of persistence.
package catalog

import (
	"fmt"

	"github.com/dshills/rmplan/internal/sql/types"
)

// Catalog is the read-only metadata view the planner consults. The
// table and index mutation methods are used to populate a catalog
// (schema loading, test setup); the planner itself only calls GetTable
// and GetFileHandle, and its DDL dispatch returns a DDLPlan without
// calling any of them.
type Catalog interface {
	GetTable(name string) (*Table, error)
	CreateTable(name string, columns []ColumnDef) (*Table, error)
	DropTable(name string) error

	CreateIndex(tableName string, columns []string) (*Index, error)
	DropIndex(tableName string, columns []string) error

	// GetFileHandle returns the page-count statistics the cardinality
	// estimator needs. An error here is the planner's one swallowed
	// error class — callers default to 1000 rows.
	GetFileHandle(tableName string) (*FileHandle, error)
}

// ColumnDef defines a column when creating a table.
type ColumnDef struct {
	Name     string
	DataType types.DataType
	Nullable bool
}

// Column is a resolved column within a table.
type Column struct {
	Name     string
	DataType types.DataType
	Nullable bool
}

// Index is a single-column or composite index over a table.
type Index struct {
	Name    string
	Columns []string // column names, in declared order
}

// columnSet returns the index's columns as a set for order-independent
// composite matching.
func (idx *Index) columnSet() map[string]struct{} {
	set := make(map[string]struct{}, len(idx.Columns))
	for _, c := range idx.Columns {
		set[c] = struct{}{}
	}
	return set
}

// matchesSet reports whether this index's column set equals cols, as
// sets, order-independent.
func (idx *Index) matchesSet(cols []string) bool {
	if len(idx.Columns) != len(cols) {
		return false
	}
	set := idx.columnSet()
	for _, c := range cols {
		if _, ok := set[c]; !ok {
			return false
		}
	}
	return true
}

// Table is a table's metadata: its columns and the indexes defined on it.
type Table struct {
	Name    string
	Columns []*Column
	Indexes []*Index
}

// GetColumn returns a column by name, or nil if it does not exist.
func (t *Table) GetColumn(name string) *Column {
	for _, c := range t.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// IsIndex reports whether an index exists whose column set exactly
// equals cols: single-column lookups pass a one-element slice,
// composite lookups pass the full candidate set.
func (t *Table) IsIndex(cols []string) bool {
	for _, idx := range t.Indexes {
		if idx.matchesSet(cols) {
			return true
		}
	}
	return false
}

// FileHandle exposes the page-level statistics the cardinality
// estimator reads: no histograms, no sampling, just page and
// per-page record counts.
type FileHandle struct {
	NumPages       int
	RecordsPerPage int
}

// ErrTableNotFound is returned by GetTable/GetFileHandle for an
// unknown table.
type ErrTableNotFound struct {
	Name string
}

func (e *ErrTableNotFound) Error() string {
	return fmt.Sprintf("table %q does not exist", e.Name)
}

// ErrTableExists is returned by CreateTable for a duplicate name.
type ErrTableExists struct {
	Name string
}

func (e *ErrTableExists) Error() string {
	return fmt.Sprintf("table %q already exists", e.Name)
}
