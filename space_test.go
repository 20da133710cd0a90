package anatloc_test

import (
	"reflect"
	"testing"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
)

func TestNewSpace_OK(t *testing.T) {
	s, err := anatloc.NewSpace(anatloc.SpaceConfig{
		Name:        "space",
		SpaceName:   "bregma-RAS",
		Origin:      "bregma",
		Units:       "mm",
		Orientation: "RAS",
		Extent:      []float64{10, 12, 8},
	})
	if err != nil {
		t.Fatalf("new space: %v", err)
	}
	if s.Type != anatloc.SpaceTypeSpace || s.Orientation != "RAS" {
		t.Fatalf("unexpected space: %+v", s)
	}
}

func TestNewSpace_ExtentOptional(t *testing.T) {
	s, err := anatloc.NewSpace(anatloc.SpaceConfig{Name: "s", SpaceName: "s", Orientation: "LPI"})
	if err != nil || s.Extent != nil {
		t.Fatalf("unexpected: %v %+v", err, s)
	}
}

func TestNewSpace_InvalidExtent(t *testing.T) {
	for _, ext := range [][]float64{{13200, -1, 100}, {1, 2}, {1, 2, 3, 4}, {0, 1, 1}, {}} {
		s, err := anatloc.NewSpace(anatloc.SpaceConfig{Name: "s", SpaceName: "s", Orientation: "RAS", Extent: ext})
		if s != nil {
			t.Fatalf("%v: partial space returned", ext)
		}
		iss, ok := anatloc.AsIssues(err)
		if !ok || !iss.HasCode(anatloc.CodeInvalidExtent) {
			t.Fatalf("%v: expected invalid_extent, got %v", ext, err)
		}
		if iss[0].Message != "extent must be 3 positive numbers" {
			t.Fatalf("message=%q", iss[0].Message)
		}
	}
}

func TestNewSpace_CollectsAllIssues(t *testing.T) {
	_, err := anatloc.NewSpace(anatloc.SpaceConfig{Orientation: "AAS", Extent: []float64{1}})
	iss, _ := anatloc.AsIssues(err)
	for _, code := range []string{anatloc.CodeRequired, anatloc.CodeOrientationAxis, anatloc.CodeInvalidExtent} {
		if !iss.HasCode(code) {
			t.Fatalf("missing %s in %v", code, iss)
		}
	}
}

func TestAllenCCFv3Space_FixedRegardlessOfName(t *testing.T) {
	for _, name := range []string{"", "AllenCCFv3", "my_ccf"} {
		s := anatloc.AllenCCFv3Space(name)
		if s.Type != anatloc.SpaceTypeAllenCCFv3 {
			t.Fatalf("type=%s", s.Type)
		}
		if s.Orientation != "ASL" || s.Origin != anatloc.AllenCCFv3Origin || s.Units != "um" || s.SpaceName != "AllenCCFv3" {
			t.Fatalf("%q: unexpected constants %+v", name, s)
		}
		if !reflect.DeepEqual(s.Extent, []float64{13200, 8000, 11400}) {
			t.Fatalf("extent=%v", s.Extent)
		}
		if err := anatloc.ValidateOrientation(string(s.Orientation)); err != nil {
			t.Fatalf("constant orientation invalid: %v", err)
		}
	}
	if anatloc.AllenCCFv3Space("").Name != "AllenCCFv3" {
		t.Fatalf("expected default name")
	}
	if anatloc.AllenCCFv3Space("x").Name != "x" {
		t.Fatalf("expected explicit name")
	}
}

func TestPredefinedSpace(t *testing.T) {
	s, err := anatloc.PredefinedSpace("CCFv3")
	if err != nil || s.Type != anatloc.SpaceTypeAllenCCFv3 {
		t.Fatalf("lookup: %v %+v", err, s)
	}
	other, _ := anatloc.PredefinedSpace("CCFv3")
	if s == other || s.ObjectID == other.ObjectID {
		t.Fatalf("each lookup must return a fresh space")
	}

	_, err = anatloc.PredefinedSpace("MNI152")
	iss, ok := anatloc.AsIssues(err)
	if !ok || iss[0].Code != anatloc.CodeUnknownSpace || iss[0].Message != `unknown predefined space "MNI152"` {
		t.Fatalf("unexpected: %v", err)
	}
	if iss[0].Params["key"] != "MNI152" {
		t.Fatalf("params=%v", iss[0].Params)
	}

	if names := anatloc.PredefinedSpaceNames(); !reflect.DeepEqual(names, []string{"AllenCCFv3", "CCFv3"}) {
		t.Fatalf("names=%v", names)
	}
}

func TestSpace_Equal(t *testing.T) {
	a := anatloc.AllenCCFv3Space("")
	b := *a
	b.Extent = append([]float64(nil), a.Extent...)
	if !a.Equal(&b) {
		t.Fatalf("expected equal copies")
	}
	b.Extent[0] = 1
	if a.Equal(&b) {
		t.Fatalf("extent change must be detected")
	}
}
