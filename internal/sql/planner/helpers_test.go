package planner

import (
	"testing"

	"github.com/dshills/rmplan/internal/catalog"
	"github.com/dshills/rmplan/internal/sql/types"
	"github.com/stretchr/testify/require"
)

// tableSpec describes a table for test catalog setup.
type tableSpec struct {
	name           string
	columns        []string
	indexes        [][]string
	numPages       int
	recordsPerPage int
}

func buildCatalog(t *testing.T, specs ...tableSpec) catalog.Catalog {
	t.Helper()
	cat := catalog.NewMemoryCatalog()

	for _, spec := range specs {
		cols := make([]catalog.ColumnDef, len(spec.columns))
		for i, name := range spec.columns {
			cols[i] = catalog.ColumnDef{Name: name, DataType: types.BigInt}
		}
		_, err := cat.CreateTable(spec.name, cols)
		require.NoError(t, err)

		for _, idx := range spec.indexes {
			_, err := cat.CreateIndex(spec.name, idx)
			require.NoError(t, err)
		}

		numPages := spec.numPages
		if numPages == 0 {
			numPages = 1
		}
		recordsPerPage := spec.recordsPerPage
		if recordsPerPage == 0 {
			recordsPerPage = 100
		}
		cat.SetFileHandle(spec.name, &catalog.FileHandle{NumPages: numPages, RecordsPerPage: recordsPerPage})
	}

	return cat
}
