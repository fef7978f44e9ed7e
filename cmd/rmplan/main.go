// Command rmplan drives the planner against a JSON-described catalog
// and query, printing the resulting plan tree. It exists to exercise
// the planner end-to-end without a SQL lexer/parser in the loop — the
// query file carries the already-parsed shape Plan() expects.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dshills/rmplan/internal/ast"
	"github.com/dshills/rmplan/internal/catalog"
	"github.com/dshills/rmplan/internal/config"
	"github.com/dshills/rmplan/internal/log"
	"github.com/dshills/rmplan/internal/sql/planner"
	"github.com/dshills/rmplan/internal/sql/types"
)

func main() {
	schemaPath := flag.String("schema", "", "path to a JSON catalog description")
	queryPath := flag.String("query", "", "path to a JSON query description")
	configPath := flag.String("config", "", "path to a JSON PlannerConfig (defaults to both joins enabled)")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: rmplan -schema <file> -query <file> [-config <file>]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *schemaPath == "" || *queryPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	log.Configure(log.Config{Level: *logLevel, Format: "text"})

	cfg := config.DefaultPlannerConfig()
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rmplan: loading config: %v\n", err)
			os.Exit(1)
		}
	}

	cat, err := buildCatalog(*schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rmplan: loading schema: %v\n", err)
		os.Exit(1)
	}

	query, err := buildQuery(*queryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rmplan: loading query: %v\n", err)
		os.Exit(1)
	}

	plan, err := planner.Plan(cat, *cfg, query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rmplan: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(plan.String())
}

// schemaFile is the on-disk shape of -schema.
type schemaFile struct {
	Tables []tableSpec `json:"tables"`
}

type tableSpec struct {
	Name           string       `json:"name"`
	Columns        []columnSpec `json:"columns"`
	Indexes        [][]string   `json:"indexes"`
	NumPages       int          `json:"num_pages"`
	RecordsPerPage int          `json:"records_per_page"`
}

type columnSpec struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func buildCatalog(path string) (*catalog.MemoryCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var spec schemaFile
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}

	cat := catalog.NewMemoryCatalog()
	for _, table := range spec.Tables {
		cols := make([]catalog.ColumnDef, len(table.Columns))
		for i, c := range table.Columns {
			dt, err := dataTypeByName(c.Type)
			if err != nil {
				return nil, err
			}
			cols[i] = catalog.ColumnDef{Name: c.Name, DataType: dt}
		}

		if _, err := cat.CreateTable(table.Name, cols); err != nil {
			return nil, err
		}
		for _, idx := range table.Indexes {
			if _, err := cat.CreateIndex(table.Name, idx); err != nil {
				return nil, err
			}
		}

		numPages, recordsPerPage := table.NumPages, table.RecordsPerPage
		if numPages == 0 {
			numPages = 1
		}
		if recordsPerPage == 0 {
			recordsPerPage = 100
		}
		cat.SetFileHandle(table.Name, &catalog.FileHandle{NumPages: numPages, RecordsPerPage: recordsPerPage})
	}

	return cat, nil
}

func dataTypeByName(name string) (types.DataType, error) {
	switch name {
	case "bigint":
		return types.BigInt, nil
	case "text":
		return types.Text, nil
	case "double":
		return types.Double, nil
	case "boolean":
		return types.Boolean, nil
	default:
		return nil, fmt.Errorf("unknown column type %q", name)
	}
}

// queryFile is the on-disk shape of -query: an already-resolved SELECT
// shape, standing in for what a real lexer/parser would hand the
// planner.
type queryFile struct {
	Tables      []tableRefSpec  `json:"tables"`
	Cols        []tabColSpec    `json:"cols"`
	Conds       []conditionSpec `json:"conds"`
	SelectStar  bool            `json:"select_star"`
	OrderBy     string          `json:"order_by"`
	OrderByDesc bool            `json:"order_by_desc"`
	ExplainOnly bool            `json:"explain"`
}

type tableRefSpec struct {
	Table string `json:"table"`
	Alias string `json:"alias"`
}

type tabColSpec struct {
	Table  string `json:"table"`
	Column string `json:"column"`
}

type conditionSpec struct {
	LhsTable  string      `json:"lhs_table"`
	LhsColumn string      `json:"lhs_column"`
	Op        string      `json:"op"`
	RhsTable  string      `json:"rhs_table"`
	RhsColumn string      `json:"rhs_column"`
	RhsValue  interface{} `json:"rhs_value"`
}

func buildQuery(path string) (*planner.Query, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var spec queryFile
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, err
	}

	tables := make([]ast.TableRef, len(spec.Tables))
	for i, t := range spec.Tables {
		tables[i] = ast.TableRef{TableName: t.Table, Alias: t.Alias}
	}

	cols := make([]ast.TabCol, len(spec.Cols))
	for i, c := range spec.Cols {
		cols[i] = ast.TabCol{TableName: c.Table, ColumnName: c.Column}
	}

	conds := make([]ast.Condition, len(spec.Conds))
	for i, c := range spec.Conds {
		op, err := parseOp(c.Op)
		if err != nil {
			return nil, err
		}
		cond := ast.Condition{
			Lhs: ast.TabCol{TableName: c.LhsTable, ColumnName: c.LhsColumn},
			Op:  op,
		}
		if c.RhsValue != nil {
			cond.RhsIsValue = true
			cond.RhsValue = jsonToValue(c.RhsValue)
		} else {
			cond.RhsCol = ast.TabCol{TableName: c.RhsTable, ColumnName: c.RhsColumn}
		}
		conds[i] = cond
	}

	stmt := &ast.SelectStmt{
		Tables:     tables,
		Cols:       cols,
		Where:      conds,
		SelectStar: spec.SelectStar,
		HasSort:    spec.OrderBy != "",
		SortColumn: spec.OrderBy,
		SortDesc:   spec.OrderByDesc,
	}

	var root ast.Statement = stmt
	if spec.ExplainOnly {
		root = &ast.ExplainStmt{Child: stmt}
	}

	return &planner.Query{
		ASTRoot:      root,
		Tables:       tables,
		Cols:         cols,
		Conds:        conds,
		IsSelectStar: spec.SelectStar,
		HasSort:      stmt.HasSort,
		SortColumn:   stmt.SortColumn,
		SortDesc:     stmt.SortDesc,
	}, nil
}

func parseOp(s string) (ast.CompOp, error) {
	switch s {
	case "=":
		return ast.OpEQ, nil
	case "!=", "<>":
		return ast.OpNE, nil
	case "<":
		return ast.OpLT, nil
	case "<=":
		return ast.OpLE, nil
	case ">":
		return ast.OpGT, nil
	case ">=":
		return ast.OpGE, nil
	default:
		return 0, fmt.Errorf("unknown operator %q", s)
	}
}

func jsonToValue(v interface{}) types.Value {
	switch val := v.(type) {
	case string:
		return types.NewTextValue(val)
	case bool:
		return types.NewBooleanValue(val)
	case float64:
		if val == float64(int64(val)) {
			return types.NewBigIntValue(int64(val))
		}
		return types.NewDoubleValue(val)
	default:
		return types.NewNullValue()
	}
}
