package namespace_test

import (
	"testing"

	"github.com/catalystneuro/ndx-anatomical-localization/namespace"
)

func TestLoad(t *testing.T) {
	ns, err := namespace.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ns.Name != "ndx-anatomical-localization" || ns.Version == "" {
		t.Fatalf("unexpected namespace %q %q", ns.Name, ns.Version)
	}
	for _, name := range []string{"Space", "AllenCCFv3Space", "AnatomicalCoordinatesTable", "AnatomicalCoordinatesImage", "Localization"} {
		if ns.Type(name) == nil {
			t.Fatalf("missing type %s", name)
		}
	}
	if ns.Type("TetrodeSeries") != nil {
		t.Fatalf("unexpected type")
	}
	again, _ := namespace.Load()
	if again != ns {
		t.Fatalf("expected the shared namespace")
	}
}

func TestIsAndFieldDoc(t *testing.T) {
	ns := namespace.MustLoad()
	if !ns.Is("AllenCCFv3Space", "Space") || ns.Is("Space", "AllenCCFv3Space") {
		t.Fatalf("unexpected inheritance")
	}
	// inherited through Space
	if doc := ns.FieldDoc("AllenCCFv3Space", "origin"); doc == "" {
		t.Fatalf("expected inherited origin doc")
	}
	if doc := ns.FieldDoc("AnatomicalCoordinatesTable", "localized_entity"); doc != "the entity that these coordinates localize" {
		t.Fatalf("doc=%q", doc)
	}
	var extent namespace.Field
	for _, f := range ns.Type("Space").Attributes {
		if f.Name == "extent" {
			extent = f
		}
	}
	if !extent.Optional() || len(extent.Shape) != 1 || *extent.Shape[0] != 3 {
		t.Fatalf("extent=%+v", extent)
	}
}
