package anatloc_test

import (
	"testing"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
	"github.com/catalystneuro/ndx-anatomical-localization/table"
)

const missingTargetMessage = `"target" (the target table that contains the objects that have these coordinates) must be provided if the "localized_entity" column is not in "columns"`

func newElectrodes(t *testing.T, n int) *table.Table {
	t.Helper()
	return table.NewEmpty("electrodes", "metadata about extracellular electrodes", n)
}

func TestNewAnatomicalCoordinatesTable_WithTarget(t *testing.T) {
	electrodes := newElectrodes(t, 5)
	tbl, err := anatloc.NewAnatomicalCoordinatesTable(anatloc.TableConfig{
		Name:        "MyAnatomicalLocalization",
		Description: "Anatomical coordinates table",
		Space:       anatloc.AllenCCFv3Space(""),
		Method:      "method",
		Target:      electrodes,
	})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err := tbl.AddRow(anatloc.CoordinateRow{X: 1, Y: 2, Z: 3, BrainRegion: "CA1", Entity: i}); err != nil {
			t.Fatalf("add row %d: %v", i, err)
		}
	}
	if tbl.Len() != 5 || tbl.Target() != electrodes {
		t.Fatalf("len=%d target=%v", tbl.Len(), tbl.Target())
	}
	row, err := tbl.Row(3)
	if err != nil {
		t.Fatalf("row: %v", err)
	}
	if row.X != 1 || row.Y != 2 || row.Z != 3 || row.BrainRegion != "CA1" || row.Entity != 3 {
		t.Fatalf("row=%+v", row)
	}
	want := []string{"x", "y", "z", "brain_region", "localized_entity"}
	got := tbl.ColumnNames()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("columns=%v", got)
		}
	}
	if err := tbl.AddRow(anatloc.CoordinateRow{Entity: 5}); err == nil {
		t.Fatalf("expected out of range link")
	}
	if _, err := tbl.Row(5); !anatloc.HasCode(err, anatloc.CodeOutOfRange) {
		t.Fatalf("expected out_of_range, got %v", err)
	}
}

func TestNewAnatomicalCoordinatesTable_MissingTarget(t *testing.T) {
	tbl, err := anatloc.NewAnatomicalCoordinatesTable(anatloc.TableConfig{
		Name:   "t",
		Space:  anatloc.AllenCCFv3Space(""),
		Method: "method",
	})
	if tbl != nil {
		t.Fatalf("partial table returned")
	}
	iss, ok := anatloc.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != anatloc.CodeMissingTarget {
		t.Fatalf("unexpected: %v", err)
	}
	if iss[0].Message != missingTargetMessage {
		t.Fatalf("message=%q", iss[0].Message)
	}
}

func TestNewAnatomicalCoordinatesTable_LinkColumnWithoutTarget(t *testing.T) {
	electrodes := newElectrodes(t, 2)
	other := newElectrodes(t, 7)
	tbl, err := anatloc.NewAnatomicalCoordinatesTable(anatloc.TableConfig{
		Name:   "t",
		Space:  anatloc.AllenCCFv3Space(""),
		Method: "method",
		Columns: []table.Column{
			table.NewFloatColumn("x", "", 1, 4),
			table.NewFloatColumn("y", "", 2, 5),
			table.NewFloatColumn("z", "", 3, 6),
			table.NewTextColumn("brain_region", "", "CA1", "CA3"),
			table.NewRegionColumn("localized_entity", "", electrodes, 0, 1),
		},
	})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	if tbl.Target() != electrodes {
		t.Fatalf("expected supplied column target")
	}

	// an explicit target is ignored when the link column is supplied
	tbl2, err := anatloc.NewAnatomicalCoordinatesTable(anatloc.TableConfig{
		Name:    "t2",
		Space:   anatloc.AllenCCFv3Space(""),
		Method:  "method",
		Target:  other,
		Columns: []table.Column{table.NewRegionColumn("localized_entity", "", electrodes)},
	})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	if tbl2.Target() != electrodes {
		t.Fatalf("target argument must be ignored for the link column")
	}
}

func TestNewAnatomicalCoordinatesTable_RequiredFields(t *testing.T) {
	_, err := anatloc.NewAnatomicalCoordinatesTable(anatloc.TableConfig{Target: newElectrodes(t, 1)})
	iss, _ := anatloc.AsIssues(err)
	paths := map[string]bool{}
	for _, it := range iss {
		if it.Code == anatloc.CodeRequired {
			paths[it.Path] = true
		}
	}
	for _, p := range []string{"/name", "/space", "/method"} {
		if !paths[p] {
			t.Fatalf("missing required issue at %s: %v", p, iss)
		}
	}
}

func TestNewAnatomicalCoordinatesTable_WrongColumnKind(t *testing.T) {
	_, err := anatloc.NewAnatomicalCoordinatesTable(anatloc.TableConfig{
		Name:    "t",
		Space:   anatloc.AllenCCFv3Space(""),
		Method:  "method",
		Target:  newElectrodes(t, 1),
		Columns: []table.Column{table.NewTextColumn("x", "")},
	})
	iss, _ := anatloc.AsIssues(err)
	if len(iss) != 1 || iss[0].Code != anatloc.CodeInvalidType || iss[0].Path != "/columns/x" {
		t.Fatalf("unexpected: %v", err)
	}
}

func TestAnatomicalCoordinatesTable_ExtraColumns(t *testing.T) {
	tbl, err := anatloc.NewAnatomicalCoordinatesTable(anatloc.TableConfig{
		Name:    "t",
		Space:   anatloc.AllenCCFv3Space(""),
		Method:  "method",
		Target:  newElectrodes(t, 1),
		Columns: []table.Column{table.NewIntColumn("confidence", "")},
	})
	if err != nil {
		t.Fatalf("new table: %v", err)
	}
	if err := tbl.AddRow(anatloc.CoordinateRow{BrainRegion: "DG"}); err == nil {
		t.Fatalf("expected missing extra column value")
	}
	if err := tbl.AddRow(anatloc.CoordinateRow{BrainRegion: "DG", Extra: table.Row{"confidence": 3}}); err != nil {
		t.Fatalf("add row: %v", err)
	}
}
