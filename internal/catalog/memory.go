package catalog

import (
	"fmt"
	"sync"
)

// MemoryCatalog is an in-memory Catalog. Tables and their file handles
// live in plain maps guarded by a single RWMutex — there is no schema
// namespacing, since every table named in a query lives in one flat
// namespace.
type MemoryCatalog struct {
	mu      sync.RWMutex
	tables  map[string]*Table
	handles map[string]*FileHandle
}

// NewMemoryCatalog creates an empty in-memory catalog. Newly created
// tables start with a FileHandle of one page and 100 records per page,
// matching an empty table that has never been analyzed.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		tables:  make(map[string]*Table),
		handles: make(map[string]*FileHandle),
	}
}

func (c *MemoryCatalog) GetTable(name string) (*Table, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.tables[name]
	if !ok {
		return nil, &ErrTableNotFound{Name: name}
	}
	return t, nil
}

func (c *MemoryCatalog) CreateTable(name string, columns []ColumnDef) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tables[name]; exists {
		return nil, &ErrTableExists{Name: name}
	}

	cols := make([]*Column, len(columns))
	for i, cd := range columns {
		cols[i] = &Column{Name: cd.Name, DataType: cd.DataType, Nullable: cd.Nullable}
	}

	t := &Table{Name: name, Columns: cols}
	c.tables[name] = t
	c.handles[name] = &FileHandle{NumPages: 1, RecordsPerPage: 100}
	return t, nil
}

func (c *MemoryCatalog) DropTable(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tables[name]; !exists {
		return &ErrTableNotFound{Name: name}
	}
	delete(c.tables, name)
	delete(c.handles, name)
	return nil
}

func (c *MemoryCatalog) CreateIndex(tableName string, columns []string) (*Index, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.tables[tableName]
	if !ok {
		return nil, &ErrTableNotFound{Name: tableName}
	}

	idx := &Index{Name: indexName(tableName, columns), Columns: columns}
	t.Indexes = append(t.Indexes, idx)
	return idx, nil
}

func (c *MemoryCatalog) DropIndex(tableName string, columns []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.tables[tableName]
	if !ok {
		return &ErrTableNotFound{Name: tableName}
	}

	for i, idx := range t.Indexes {
		if idx.matchesSet(columns) {
			t.Indexes = append(t.Indexes[:i], t.Indexes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no index on %s(%v)", tableName, columns)
}

func (c *MemoryCatalog) GetFileHandle(tableName string) (*FileHandle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	h, ok := c.handles[tableName]
	if !ok {
		return nil, &ErrTableNotFound{Name: tableName}
	}
	return h, nil
}

// SetFileHandle lets test setup and analyze-style tooling fix a
// table's page statistics directly, bypassing data-driven accounting.
func (c *MemoryCatalog) SetFileHandle(tableName string, h *FileHandle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handles[tableName] = h
}

func indexName(tableName string, columns []string) string {
	name := tableName + "_idx"
	for _, col := range columns {
		name += "_" + col
	}
	return name
}
