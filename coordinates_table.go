package anatloc

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/catalystneuro/ndx-anatomical-localization/table"
)

// Standard column names of an AnatomicalCoordinatesTable.
const (
	ColumnX               = "x"
	ColumnY               = "y"
	ColumnZ               = "z"
	ColumnBrainRegion     = "brain_region"
	ColumnLocalizedEntity = "localized_entity"
)

var standardColumns = []struct {
	name, kind, description string
}{
	{ColumnX, "float", "x coordinate"},
	{ColumnY, "float", "y coordinate"},
	{ColumnZ, "float", "z coordinate"},
	{ColumnBrainRegion, "text", "brain region of the localized entity"},
	{ColumnLocalizedEntity, "region", "the entity that these coordinates localize"},
}

// AnatomicalCoordinatesTable holds one (x, y, z, brain_region) row per entity
// of a target table, expressed in a single Space.
type AnatomicalCoordinatesTable struct {
	*table.Table
	Space  *Space
	Method string
}

// TableConfig lists the constructor parameters of an
// AnatomicalCoordinatesTable.
type TableConfig struct {
	ObjectID    uuid.UUID
	Name        string
	Description string
	Space       *Space
	// Method describes how the coordinates were obtained.
	Method string
	// Target is the table whose rows are localized. It is ignored when Columns
	// already holds a localized_entity column.
	Target  *table.Table
	Columns []table.Column
	IDs     []int
}

// NewAnatomicalCoordinatesTable validates cfg and builds the table. Missing
// standard columns are created empty.
func NewAnatomicalCoordinatesTable(cfg TableConfig) (*AnatomicalCoordinatesTable, error) {
	var iss Issues
	root := Root()
	if cfg.Name == "" {
		iss = append(iss, root.Field("name").Issue(CodeRequired, map[string]string{"field": "name"}))
	}
	if cfg.Space == nil {
		iss = append(iss, root.Field("space").Issue(CodeRequired, map[string]string{"field": "space"}))
	}
	if cfg.Method == "" {
		iss = append(iss, root.Field("method").Issue(CodeRequired, map[string]string{"field": "method"}))
	}

	supplied := map[string]table.Column{}
	for _, c := range cfg.Columns {
		if c != nil {
			supplied[c.Name()] = c
		}
	}
	for _, sc := range standardColumns {
		if c, ok := supplied[sc.name]; ok && c.Kind() != sc.kind {
			iss = append(iss, root.Field("columns").Field(sc.name).Issue(CodeInvalidType, nil))
		}
	}
	if _, ok := supplied[ColumnLocalizedEntity]; !ok && cfg.Target == nil {
		iss = append(iss, root.Field("target").Issue(CodeMissingTarget, map[string]string{"column": ColumnLocalizedEntity}))
	}
	if err := iss.orNil(); err != nil {
		return nil, err
	}

	cols := make([]table.Column, 0, len(cfg.Columns)+len(standardColumns))
	for _, sc := range standardColumns {
		if c, ok := supplied[sc.name]; ok {
			cols = append(cols, c)
			continue
		}
		switch sc.kind {
		case "float":
			cols = append(cols, table.NewFloatColumn(sc.name, sc.description))
		case "text":
			cols = append(cols, table.NewTextColumn(sc.name, sc.description))
		case "region":
			cols = append(cols, table.NewRegionColumn(sc.name, sc.description, cfg.Target))
		}
	}
	for _, c := range cfg.Columns {
		if c != nil && !isStandardColumn(c.Name()) {
			cols = append(cols, c)
		}
	}

	t, err := table.New(table.Config{
		ObjectID:    cfg.ObjectID,
		Name:        cfg.Name,
		Description: cfg.Description,
		IDs:         cfg.IDs,
		Columns:     cols,
	})
	if err != nil {
		return nil, fmt.Errorf("anatomical coordinates table: %w", err)
	}
	return &AnatomicalCoordinatesTable{Table: t, Space: cfg.Space, Method: cfg.Method}, nil
}

func isStandardColumn(name string) bool {
	for _, sc := range standardColumns {
		if sc.name == name {
			return true
		}
	}
	return false
}

// CoordinateRow is one localized entity.
type CoordinateRow struct {
	X, Y, Z     float64
	BrainRegion string
	// Entity is the row index into the target table.
	Entity int
	// Extra holds values for non-standard columns.
	Extra table.Row
}

// AddRow appends r to the table.
func (t *AnatomicalCoordinatesTable) AddRow(r CoordinateRow) error {
	row := table.Row{
		ColumnX:               r.X,
		ColumnY:               r.Y,
		ColumnZ:               r.Z,
		ColumnBrainRegion:     r.BrainRegion,
		ColumnLocalizedEntity: r.Entity,
	}
	for k, v := range r.Extra {
		if !isStandardColumn(k) {
			row[k] = v
		}
	}
	return t.Table.AddRow(row)
}

// Row returns the standard fields of row i.
func (t *AnatomicalCoordinatesTable) Row(i int) (CoordinateRow, error) {
	if i < 0 || i >= t.Len() {
		return CoordinateRow{}, Issues{Root().Index(i).Issue(CodeOutOfRange, map[string]string{
			"i": fmt.Sprint(i), "j": "0", "shape": fmt.Sprintf("(%d,)", t.Len()),
		})}
	}
	return CoordinateRow{
		X:           t.floats(ColumnX)[i],
		Y:           t.floats(ColumnY)[i],
		Z:           t.floats(ColumnZ)[i],
		BrainRegion: t.Column(ColumnBrainRegion).(*table.TextColumn).Data()[i],
		Entity:      t.Column(ColumnLocalizedEntity).(*table.RegionColumn).Data()[i],
	}, nil
}

func (t *AnatomicalCoordinatesTable) floats(name string) []float64 {
	return t.Column(name).(*table.FloatColumn).Data()
}

// Target is the table the localized_entity column links into.
func (t *AnatomicalCoordinatesTable) Target() *table.Table {
	return t.Column(ColumnLocalizedEntity).(*table.RegionColumn).Target()
}
