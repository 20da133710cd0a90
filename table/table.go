// Package table is the generic extensible table the localization types are
// built on: named typed columns of equal length, row ids, and region columns
// that link rows to rows of another table.
package table

import (
	"fmt"

	"github.com/google/uuid"
)

// Row maps column names to one value per column.
type Row map[string]any

// Table is an ordered set of equal-length columns.
type Table struct {
	ObjectID    uuid.UUID
	Name        string
	Description string

	ids     []int
	columns []Column
	index   map[string]int
}

// Config lists the constructor parameters of a Table.
type Config struct {
	ObjectID    uuid.UUID // generated when zero
	Name        string
	Description string
	// IDs defaults to 0..n-1.
	IDs     []int
	Columns []Column
}

// New builds a table from cfg. Column names must be unique and all columns
// must have the same length.
func New(cfg Config) (*Table, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("table: name is required")
	}
	t := &Table{
		ObjectID:    cfg.ObjectID,
		Name:        cfg.Name,
		Description: cfg.Description,
		index:       map[string]int{},
	}
	if t.ObjectID == uuid.Nil {
		t.ObjectID = uuid.New()
	}
	n := -1
	for _, c := range cfg.Columns {
		if c == nil {
			return nil, fmt.Errorf("table %q: nil column", cfg.Name)
		}
		if n >= 0 && c.Len() != n {
			return nil, fmt.Errorf("table %q: column %q has %d rows, want %d", cfg.Name, c.Name(), c.Len(), n)
		}
		n = c.Len()
		if err := t.attach(c); err != nil {
			return nil, err
		}
	}
	if n < 0 {
		n = len(cfg.IDs)
	}
	switch {
	case cfg.IDs == nil:
		t.ids = make([]int, n)
		for i := range t.ids {
			t.ids[i] = i
		}
	case len(cfg.IDs) != n:
		return nil, fmt.Errorf("table %q: %d ids for %d rows", cfg.Name, len(cfg.IDs), n)
	default:
		t.ids = append([]int(nil), cfg.IDs...)
	}
	return t, nil
}

// NewEmpty returns a column-less table with n rows. It stands in for target
// tables such as an electrodes table in tests and examples.
func NewEmpty(name, description string, n int) *Table {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return &Table{ObjectID: uuid.New(), Name: name, Description: description, ids: ids, index: map[string]int{}}
}

func (t *Table) attach(c Column) error {
	if _, dup := t.index[c.Name()]; dup {
		return fmt.Errorf("table %q: duplicate column %q", t.Name, c.Name())
	}
	if rc, ok := c.(*RegionColumn); ok {
		for _, i := range rc.data {
			if err := rc.checkIndex(i); err != nil {
				return fmt.Errorf("table %q: %w", t.Name, err)
			}
		}
	}
	t.index[c.Name()] = len(t.columns)
	t.columns = append(t.columns, c)
	return nil
}

// AddColumn appends a column that already has one value per row.
func (t *Table) AddColumn(c Column) error {
	if c == nil {
		return fmt.Errorf("table %q: nil column", t.Name)
	}
	if c.Len() != t.Len() {
		return fmt.Errorf("table %q: column %q has %d rows, want %d", t.Name, c.Name(), c.Len(), t.Len())
	}
	return t.attach(c)
}

// AddRow appends one value to every column. The row must name every column
// and nothing else. On error the table is left unchanged.
func (t *Table) AddRow(r Row) error {
	if len(r) != len(t.columns) {
		for k := range r {
			if _, ok := t.index[k]; !ok {
				return fmt.Errorf("table %q: unknown column %q", t.Name, k)
			}
		}
	}
	for _, c := range t.columns {
		if _, ok := r[c.Name()]; !ok {
			return fmt.Errorf("table %q: missing value for column %q", t.Name, c.Name())
		}
	}
	n := t.Len()
	for i, c := range t.columns {
		if err := c.appendValue(r[c.Name()]); err != nil {
			t.truncate(i, n)
			return fmt.Errorf("table %q: %w", t.Name, err)
		}
	}
	next := 0
	if len(t.ids) > 0 {
		next = t.ids[len(t.ids)-1] + 1
	}
	t.ids = append(t.ids, next)
	return nil
}

// truncate drops the value appended to the first k columns during a failed
// AddRow.
func (t *Table) truncate(k, n int) {
	for _, c := range t.columns[:k] {
		switch col := c.(type) {
		case *FloatColumn:
			col.data = col.data[:n]
		case *IntColumn:
			col.data = col.data[:n]
		case *TextColumn:
			col.data = col.data[:n]
		case *RegionColumn:
			col.data = col.data[:n]
		}
	}
}

// Len is the number of rows.
func (t *Table) Len() int { return len(t.ids) }

// IDs returns the row ids.
func (t *Table) IDs() []int { return t.ids }

// Columns returns the columns in declaration order.
func (t *Table) Columns() []Column { return t.columns }

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.Name()
	}
	return out
}

// HasColumn reports whether a column with this name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the named column or nil.
func (t *Table) Column(name string) Column {
	i, ok := t.index[name]
	if !ok {
		return nil
	}
	return t.columns[i]
}
