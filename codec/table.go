package codec

import (
	"context"
	"fmt"
	"slices"
	"strings"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
	"github.com/catalystneuro/ndx-anatomical-localization/table"
)

// Table returns the codec between TableRecord and *table.Table. Region
// columns resolve their target through r.
func Table(r Resolver) anatloc.Codec[TableRecord, *table.Table] { return tableCodec{r: r} }

type tableCodec struct{ r Resolver }

func (c tableCodec) Decode(ctx context.Context, rec TableRecord) (*table.Table, error) {
	if err := ValidateRecord(rec); err != nil {
		return nil, err
	}
	cols, err := decodeColumns(c.r, anatloc.Root(), rec.Name, rec.Columns)
	if err != nil {
		return nil, err
	}
	return table.New(table.Config{
		ObjectID:    parseID(rec.ObjectID),
		Name:        rec.Name,
		Description: rec.Description,
		IDs:         rec.IDs,
		Columns:     cols,
	})
}

func (c tableCodec) Encode(ctx context.Context, t *table.Table) (TableRecord, error) {
	if t == nil {
		return TableRecord{}, fmt.Errorf("codec: nil table")
	}
	cols, err := encodeColumns(c.r, anatloc.Root(), t.Name, t.Columns())
	if err != nil {
		return TableRecord{}, err
	}
	return TableRecord{
		ObjectID:      t.ObjectID.String(),
		NeurodataType: TypeDynamicTable,
		Name:          t.Name,
		Description:   t.Description,
		IDs:           append([]int(nil), t.IDs()...),
		Columns:       cols,
	}, nil
}

// CoordinatesTable returns the codec for AnatomicalCoordinatesTable.
func CoordinatesTable(r Resolver) anatloc.Codec[CoordinatesTableRecord, *anatloc.AnatomicalCoordinatesTable] {
	return coordinatesTableCodec{r: r}
}

type coordinatesTableCodec struct{ r Resolver }

func (c coordinatesTableCodec) Decode(ctx context.Context, rec CoordinatesTableRecord) (*anatloc.AnatomicalCoordinatesTable, error) {
	if err := ValidateRecord(rec); err != nil {
		return nil, err
	}
	space, ok := c.r.Space(parseID(rec.Space))
	if !ok {
		return nil, anatloc.Issues{dangling(anatloc.Root().Field("space"), "table", rec.Name, "space", rec.Space)}
	}
	cols, err := decodeColumns(c.r, anatloc.Root(), rec.Name, rec.Columns)
	if err != nil {
		return nil, err
	}
	return anatloc.NewAnatomicalCoordinatesTable(anatloc.TableConfig{
		ObjectID:    parseID(rec.ObjectID),
		Name:        rec.Name,
		Description: rec.Description,
		Space:       space,
		Method:      rec.Method,
		IDs:         rec.IDs,
		Columns:     cols,
	})
}

func (c coordinatesTableCodec) Encode(ctx context.Context, t *anatloc.AnatomicalCoordinatesTable) (CoordinatesTableRecord, error) {
	if t == nil || t.Table == nil {
		return CoordinatesTableRecord{}, fmt.Errorf("codec: nil coordinates table")
	}
	if t.Space == nil {
		return CoordinatesTableRecord{}, anatloc.Issues{anatloc.Root().Field("space").Issue(anatloc.CodeRequired, map[string]string{"field": "space"})}
	}
	if _, ok := c.r.Space(t.Space.ObjectID); !ok {
		return CoordinatesTableRecord{}, anatloc.Issues{dangling(anatloc.Root().Field("space"), "table", t.Name, "space", t.Space.Name)}
	}
	cols, err := encodeColumns(c.r, anatloc.Root(), t.Name, t.Columns())
	if err != nil {
		return CoordinatesTableRecord{}, err
	}
	return CoordinatesTableRecord{
		ObjectID:      t.ObjectID.String(),
		NeurodataType: TypeAnatomicalCoordinatesTable,
		Name:          t.Name,
		Description:   t.Description,
		Method:        t.Method,
		Space:         t.Space.ObjectID.String(),
		IDs:           append([]int(nil), t.IDs()...),
		Columns:       cols,
	}, nil
}

func decodeColumns(r Resolver, base anatloc.PathRef, tableName string, recs []ColumnRecord) ([]table.Column, error) {
	cols := make([]table.Column, 0, len(recs))
	var iss anatloc.Issues
	for i, cr := range recs {
		if sub := checkColumnData(base.Field("columns").Index(i), cr); len(sub) > 0 {
			iss = append(iss, sub...)
			continue
		}
		switch cr.Kind {
		case "float":
			cols = append(cols, table.NewFloatColumn(cr.Name, cr.Description, fromFloats(cr.FloatData)...))
		case "int":
			cols = append(cols, table.NewIntColumn(cr.Name, cr.Description, cr.IntData...))
		case "text":
			cols = append(cols, table.NewTextColumn(cr.Name, cr.Description, cr.TextData...))
		case "region":
			target, ok := r.Table(parseID(cr.Target))
			if !ok {
				iss = append(iss, dangling(base.Field("columns").Index(i).Field("target"), "table", tableName, "table", cr.Target))
				continue
			}
			cols = append(cols, table.NewRegionColumn(cr.Name, cr.Description, target, cr.IntData...))
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return cols, nil
}

// checkColumnData reports data fields that do not belong to the column kind.
func checkColumnData(p anatloc.PathRef, cr ColumnRecord) anatloc.Issues {
	present := []struct {
		field string
		set   bool
		kinds string
	}{
		{"float_data", len(cr.FloatData) > 0, "float"},
		{"int_data", len(cr.IntData) > 0, "int region"},
		{"text_data", len(cr.TextData) > 0, "text"},
		{"target", cr.Target != "", "region"},
	}
	var iss anatloc.Issues
	for _, f := range present {
		if f.set && !slices.Contains(strings.Fields(f.kinds), cr.Kind) {
			iss = append(iss, p.Field(f.field).Issue(anatloc.CodeInvalidValue, map[string]string{
				"field": f.field, "rule": "kind=" + strings.ReplaceAll(f.kinds, " ", "|"),
			}))
		}
	}
	return iss
}

func encodeColumns(r Resolver, base anatloc.PathRef, tableName string, cols []table.Column) ([]ColumnRecord, error) {
	out := make([]ColumnRecord, 0, len(cols))
	for i, c := range cols {
		cr := ColumnRecord{Name: c.Name(), Description: c.Description(), Kind: c.Kind()}
		switch col := c.(type) {
		case *table.FloatColumn:
			cr.FloatData = toFloats(col.Data())
		case *table.IntColumn:
			cr.IntData = append([]int(nil), col.Data()...)
		case *table.TextColumn:
			cr.TextData = append([]string(nil), col.Data()...)
		case *table.RegionColumn:
			target := col.Target()
			if target == nil {
				return nil, anatloc.Issues{base.Field("columns").Index(i).Field("target").Issue(anatloc.CodeRequired, map[string]string{"field": "target"})}
			}
			if _, ok := r.Table(target.ObjectID); !ok {
				return nil, anatloc.Issues{dangling(base.Field("columns").Index(i).Field("target"), "table", tableName, "table", target.Name)}
			}
			cr.IntData = append([]int(nil), col.Data()...)
			cr.Target = target.ObjectID.String()
		default:
			return nil, fmt.Errorf("codec: table %q: unsupported column type %T", tableName, c)
		}
		out = append(out, cr)
	}
	return out, nil
}
