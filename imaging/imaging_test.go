package imaging_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/catalystneuro/ndx-anatomical-localization/grid"
	"github.com/catalystneuro/ndx-anatomical-localization/imaging"
)

func TestNewImage(t *testing.T) {
	img, err := imaging.NewImage("img", grid.Shape{2, 3}, make([]float64, 6))
	if err != nil {
		t.Fatalf("new image: %v", err)
	}
	if img.ObjectID == uuid.Nil {
		t.Fatalf("expected object id")
	}
	if _, err := imaging.NewImage("img", grid.Shape{2, 3}, make([]float64, 5)); err == nil {
		t.Fatalf("expected size error")
	}
	if _, err := imaging.NewImage("img", grid.Shape{6}, make([]float64, 6)); err == nil {
		t.Fatalf("expected rank error")
	}
	if _, err := imaging.NewImage("", grid.Shape{1, 1}, []float64{0}); err == nil {
		t.Fatalf("expected name error")
	}
}

func TestNewImagingPlane(t *testing.T) {
	p, err := imaging.NewImagingPlane("plane", "imaging plane", "CA1")
	if err != nil || p.Location != "CA1" {
		t.Fatalf("unexpected: %v %+v", err, p)
	}
	if _, err := imaging.NewImagingPlane("", "", ""); err == nil {
		t.Fatalf("expected name error")
	}
}
