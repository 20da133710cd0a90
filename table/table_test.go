package table_test

import (
	"strings"
	"testing"

	"github.com/catalystneuro/ndx-anatomical-localization/table"
)

func TestNew_RejectsDuplicateAndRaggedColumns(t *testing.T) {
	_, err := table.New(table.Config{
		Name: "t",
		Columns: []table.Column{
			table.NewFloatColumn("x", ""),
			table.NewFloatColumn("x", ""),
		},
	})
	if err == nil || !strings.Contains(err.Error(), "duplicate column") {
		t.Fatalf("expected duplicate column error, got %v", err)
	}

	_, err = table.New(table.Config{
		Name: "t",
		Columns: []table.Column{
			table.NewFloatColumn("x", "", 1, 2),
			table.NewTextColumn("label", "", "a"),
		},
	})
	if err == nil {
		t.Fatalf("expected ragged column error")
	}
}

func TestAddRow_TypesAndLinks(t *testing.T) {
	target := table.NewEmpty("electrodes", "electrodes", 3)
	tb, err := table.New(table.Config{
		Name: "t",
		Columns: []table.Column{
			table.NewFloatColumn("x", "x"),
			table.NewTextColumn("label", "label"),
			table.NewRegionColumn("entity", "link", target),
		},
	})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := tb.AddRow(table.Row{"x": 1.5, "label": "CA1", "entity": 2}); err != nil {
		t.Fatalf("add row: %v", err)
	}
	if tb.Len() != 1 || tb.IDs()[0] != 0 {
		t.Fatalf("unexpected rows: len=%d ids=%v", tb.Len(), tb.IDs())
	}

	// out of range link leaves the table unchanged
	if err := tb.AddRow(table.Row{"x": 1.0, "label": "CA3", "entity": 3}); err == nil {
		t.Fatalf("expected out of range error")
	}
	if tb.Len() != 1 || tb.Column("x").Len() != 1 || tb.Column("label").Len() != 1 {
		t.Fatalf("failed row must not be partially applied")
	}

	if err := tb.AddRow(table.Row{"x": "nope", "label": "CA3", "entity": 0}); err == nil {
		t.Fatalf("expected type error")
	}
	if err := tb.AddRow(table.Row{"x": 1.0, "label": "CA3"}); err == nil {
		t.Fatalf("expected missing column error")
	}
	if err := tb.AddRow(table.Row{"x": 1.0, "label": "CA3", "entity": 0, "extra": 1}); err == nil {
		t.Fatalf("expected unknown column error")
	}
}

func TestNew_ValidatesRegionIndices(t *testing.T) {
	target := table.NewEmpty("electrodes", "", 2)
	_, err := table.New(table.Config{
		Name:    "t",
		Columns: []table.Column{table.NewRegionColumn("entity", "", target, 0, 5)},
	})
	if err == nil {
		t.Fatalf("expected index error")
	}
}

func TestAddColumn_LengthMustMatch(t *testing.T) {
	tb := table.NewEmpty("t", "", 2)
	if err := tb.AddColumn(table.NewIntColumn("n", "", 1)); err == nil {
		t.Fatalf("expected length error")
	}
	if err := tb.AddColumn(table.NewIntColumn("n", "", 1, 2)); err != nil {
		t.Fatalf("add column: %v", err)
	}
	if !tb.HasColumn("n") || tb.ColumnNames()[0] != "n" {
		t.Fatalf("column not attached: %v", tb.ColumnNames())
	}
}
