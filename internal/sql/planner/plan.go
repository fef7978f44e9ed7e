// Package planner turns a parsed statement into an executable plan
// tree: access-path selection, join ordering and assembly, predicate
// and projection placement, and sort generation.
package planner

import (
	"fmt"
	"strings"

	"github.com/dshills/rmplan/internal/ast"
	"github.com/dshills/rmplan/internal/sql/types"
)

// PlanNode is the base interface every plan node satisfies. Node kinds are
// a closed, tagged set — ScanPlan, JoinPlan, FilterPlan,
// ProjectionPlan, SortPlan, DMLPlan, DDLPlan, OtherPlan — so a walker
// switches on concrete type rather than downcasting through a base
// pointer.
type PlanNode interface {
	Children() []PlanNode
	Schema() *Schema
	String() string
}

// Schema describes a plan node's output columns.
type Schema struct {
	Columns []ast.TabCol
}

func schemaOf(cols []ast.TabCol) *Schema {
	return &Schema{Columns: cols}
}

// ScanKind distinguishes a sequential scan from an index-driven one.
type ScanKind int

const (
	SeqScan ScanKind = iota
	IndexScan
)

func (k ScanKind) String() string {
	if k == IndexScan {
		return "IndexScan"
	}
	return "SeqScan"
}

// ScanPlan reads a single table, optionally through an index. Conds
// holds the predicates the scan itself evaluates; FedConds starts as a
// copy of Conds and names the subset the executor applies at record
// time. The predicate-pushdown refinement pass clears both when it
// moves the conditions into a FilterPlan.
type ScanPlan struct {
	Kind      ScanKind
	TableName string
	Alias     string
	Conds     []ast.Condition
	FedConds  []ast.Condition
	IndexCols []string
}

func (s *ScanPlan) Children() []PlanNode { return nil }

func (s *ScanPlan) Schema() *Schema {
	return schemaOf([]ast.TabCol{{TableName: s.effectiveName()}})
}

func (s *ScanPlan) effectiveName() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.TableName
}

func (s *ScanPlan) String() string {
	return fmt.Sprintf("%s(%s, conds=%d, index_cols=%v)", s.Kind, s.TableName, len(s.Conds), s.IndexCols)
}

// JoinAlgo selects the physical join algorithm.
type JoinAlgo int

const (
	NestLoop JoinAlgo = iota
	SortMerge
)

func (a JoinAlgo) String() string {
	if a == SortMerge {
		return "SortMerge"
	}
	return "NestLoop"
}

// JoinPlan combines two subtrees. Constructed left-deep by
// make_one_rel: Right is a scan on the primary construction path and in
// the Cartesian fallback. The sole exception is a predicate whose two
// tables are both new: they form their own sub-join on Left and the
// existing tree, itself a JoinPlan, becomes Right.
type JoinPlan struct {
	Algo  JoinAlgo
	Left  PlanNode
	Right PlanNode
	Conds []ast.Condition
}

func (j *JoinPlan) Children() []PlanNode { return []PlanNode{j.Left, j.Right} }

func (j *JoinPlan) Schema() *Schema {
	cols := append(append([]ast.TabCol{}, j.Left.Schema().Columns...), j.Right.Schema().Columns...)
	return schemaOf(cols)
}

func (j *JoinPlan) String() string {
	return fmt.Sprintf("%s(%s, %s, conds=%d)", j.Algo, j.Left, j.Right, len(j.Conds))
}

// FilterPlan applies a residual predicate list above its child.
type FilterPlan struct {
	Child PlanNode
	Conds []ast.Condition
}

func (f *FilterPlan) Children() []PlanNode { return []PlanNode{f.Child} }
func (f *FilterPlan) Schema() *Schema  { return f.Child.Schema() }
func (f *FilterPlan) String() string {
	return fmt.Sprintf("Filter(%s, conds=%d)", f.Child, len(f.Conds))
}

// ProjectionPlan narrows its child's output to Cols.
type ProjectionPlan struct {
	Child PlanNode
	Cols  []ast.TabCol
}

func (p *ProjectionPlan) Children() []PlanNode { return []PlanNode{p.Child} }
func (p *ProjectionPlan) Schema() *Schema  { return schemaOf(p.Cols) }
func (p *ProjectionPlan) String() string {
	names := make([]string, len(p.Cols))
	for i, c := range p.Cols {
		names[i] = c.String()
	}
	return fmt.Sprintf("Projection([%s], %s)", strings.Join(names, ", "), p.Child)
}

// SortPlan orders its child's rows by Key.
type SortPlan struct {
	Child      PlanNode
	Key        ast.TabCol
	Descending bool
}

func (s *SortPlan) Children() []PlanNode { return []PlanNode{s.Child} }
func (s *SortPlan) Schema() *Schema  { return s.Child.Schema() }
func (s *SortPlan) String() string {
	dir := "ASC"
	if s.Descending {
		dir = "DESC"
	}
	return fmt.Sprintf("Sort(key=%s %s, %s)", s.Key, dir, s.Child)
}

// DMLOp distinguishes a DMLPlan's statement kind.
type DMLOp int

const (
	OpInsert DMLOp = iota
	OpDelete
	OpUpdate
	OpSelect
	OpExplain
)

func (op DMLOp) String() string {
	switch op {
	case OpInsert:
		return "Insert"
	case OpDelete:
		return "Delete"
	case OpUpdate:
		return "Update"
	case OpSelect:
		return "Select"
	case OpExplain:
		return "Explain"
	default:
		return "Unknown"
	}
}

// DMLPlan wraps a data-manipulation statement. Child is the scan or
// select subplan (nil for Insert). AliasMap and IsSelectStar are set
// only by the Explain dispatch and left zero for every other op, kept
// as named fields rather than a separate Explain-only type so EXPLAIN
// can carry the same shape as SELECT plus its two extra fields.
type DMLPlan struct {
	Op           DMLOp
	Child        PlanNode
	TableName    string
	Values       []types.Value
	Conds        []ast.Condition
	SetClauses   []ast.SetClause
	AliasMap     map[string]string
	IsSelectStar bool
}

func (d *DMLPlan) Children() []PlanNode {
	if d.Child == nil {
		return nil
	}
	return []PlanNode{d.Child}
}

func (d *DMLPlan) Schema() *Schema {
	if d.Child == nil {
		return &Schema{}
	}
	return d.Child.Schema()
}

func (d *DMLPlan) String() string {
	if d.Child == nil {
		return fmt.Sprintf("%s(%s)", d.Op, d.TableName)
	}
	return fmt.Sprintf("%s(%s)", d.Op, d.Child)
}

// DDLOp distinguishes a DDLPlan's statement kind.
type DDLOp int

const (
	OpCreateTable DDLOp = iota
	OpDropTable
	OpCreateIndex
	OpDropIndex
)

func (op DDLOp) String() string {
	switch op {
	case OpCreateTable:
		return "CreateTable"
	case OpDropTable:
		return "DropTable"
	case OpCreateIndex:
		return "CreateIndex"
	case OpDropIndex:
		return "DropIndex"
	default:
		return "Unknown"
	}
}

// DDLPlan represents a schema-changing statement.
type DDLPlan struct {
	Op        DDLOp
	TableName string
	Columns   []ast.ColDef
	IndexCols []string
}

func (d *DDLPlan) Children() []PlanNode { return nil }
func (d *DDLPlan) Schema() *Schema  { return &Schema{} }
func (d *DDLPlan) String() string   { return fmt.Sprintf("%s(%s)", d.Op, d.TableName) }

// OtherOp distinguishes an OtherPlan's statement kind.
type OtherOp int

const (
	OpShowIndex OtherOp = iota
)

func (op OtherOp) String() string { return "ShowIndex" }

// OtherPlan covers statement kinds that are neither DML nor DDL.
type OtherPlan struct {
	Op        OtherOp
	TableName string
}

func (o *OtherPlan) Children() []PlanNode { return nil }
func (o *OtherPlan) Schema() *Schema  { return &Schema{} }
func (o *OtherPlan) String() string   { return fmt.Sprintf("%s(%s)", o.Op, o.TableName) }
