package sqlgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/zorple/sqlgen/internal/types"
)

// Schema validates descriptor identifiers against a DBML project before
// they reach a generator. The generator itself never checks that referenced
// tables or columns exist; callers that want that guarantee resolve names
// through a Schema first.
type Schema struct {
	project *dbml.Project
	// internal indexes for fast validation
	tables  map[string]*dbml.Table
	columns map[string]map[string]*dbml.Column // table -> column
}

// NewSchema creates a Schema from a DBML project.
func NewSchema(project *dbml.Project) (*Schema, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	s := &Schema{
		project: project,
		tables:  make(map[string]*dbml.Table),
		columns: make(map[string]map[string]*dbml.Column),
	}
	for _, table := range project.Tables {
		s.tables[table.Name] = table
		s.columns[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			s.columns[table.Name][col.Name] = col
		}
	}
	return s, nil
}

// Table returns the validated table name, or an error when the schema does
// not define it.
func (s *Schema) Table(name string) (string, error) {
	if _, ok := s.tables[name]; !ok {
		return "", fmt.Errorf("table '%s' not found in schema", name)
	}
	return name, nil
}

// Column returns a validated column reference. The ref may be bare or
// "table.column"; a bare ref must resolve in exactly one context, the given
// table.
func (s *Schema) Column(table, ref string) (types.Column, error) {
	name := ref
	qualifier := table
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		qualifier = ref[:i]
		name = ref[i+1:]
	}
	cols, ok := s.columns[qualifier]
	if !ok {
		return types.Column{}, fmt.Errorf("table '%s' not found in schema", qualifier)
	}
	if _, ok := cols[name]; !ok {
		return types.Column{}, fmt.Errorf("column '%s' not found in table '%s'", name, qualifier)
	}
	if i := strings.IndexByte(ref, '.'); i >= 0 {
		return types.Column{Table: qualifier, Name: name}, nil
	}
	return types.Column{Name: name}, nil
}

// Tables lists the schema's table names, sorted.
func (s *Schema) Tables() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Columns lists a table's column names in declaration order.
func (s *Schema) Columns(table string) ([]string, error) {
	t, ok := s.tables[table]
	if !ok {
		return nil, fmt.Errorf("table '%s' not found in schema", table)
	}
	names := make([]string, 0, len(t.Columns))
	for _, col := range t.Columns {
		names = append(names, col.Name)
	}
	return names, nil
}
