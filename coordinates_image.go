package anatloc

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/catalystneuro/ndx-anatomical-localization/grid"
	"github.com/catalystneuro/ndx-anatomical-localization/imaging"
)

// Reference is what per-pixel coordinates are aligned to: either an ImageRef
// or a PlaneRef.
type Reference interface {
	isReference()
	// ObjectID identifies the referenced object.
	ObjectID() uuid.UUID
}

// ImageRef aligns coordinates to the pixels of an image.
type ImageRef struct{ Image *imaging.Image }

// PlaneRef aligns coordinates to an imaging plane.
type PlaneRef struct{ Plane *imaging.ImagingPlane }

func (ImageRef) isReference() {}
func (PlaneRef) isReference() {}

func (r ImageRef) ObjectID() uuid.UUID { return r.Image.ObjectID }
func (r PlaneRef) ObjectID() uuid.UUID { return r.Plane.ObjectID }

// Point is an (x, y, z) triple.
type Point [3]float64

func (p Point) X() float64 { return p[0] }
func (p Point) Y() float64 { return p[1] }
func (p Point) Z() float64 { return p[2] }

// AnatomicalCoordinatesImage stores an (x, y, z) coordinate and optionally a
// brain region for every pixel of an image or imaging plane.
type AnatomicalCoordinatesImage struct {
	ObjectID    uuid.UUID
	Name        string
	Description string
	Space       *Space
	Method      string
	Reference   Reference

	X, Y, Z       grid.Grid[float64]
	BrainRegion   grid.Grid[string] // empty when absent
	BrainRegionID grid.Grid[int]    // empty when absent
}

// ImageConfig lists the constructor parameters of an
// AnatomicalCoordinatesImage. Exactly one of Image and ImagingPlane must be
// set.
type ImageConfig struct {
	ObjectID      uuid.UUID
	Name          string
	Description   string
	Space         *Space
	Method        string
	Image         *imaging.Image
	ImagingPlane  *imaging.ImagingPlane
	X, Y, Z       grid.Grid[float64]
	BrainRegion   grid.Grid[string]
	BrainRegionID grid.Grid[int]
}

// NewAnatomicalCoordinatesImage validates cfg and builds the record.
func NewAnatomicalCoordinatesImage(cfg ImageConfig) (*AnatomicalCoordinatesImage, error) {
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

	missing := false
	for _, c := range []struct {
		field string
		g     grid.Grid[float64]
	}{{"x", cfg.X}, {"y", cfg.Y}, {"z", cfg.Z}} {
		if c.g.Shape().Size() == 0 {
			missing = true
			iss = append(iss, root.Field(c.field).Issue(CodeRequired, map[string]string{"field": c.field}))
		}
	}

	ref, err := resolveReference(cfg.Image, cfg.ImagingPlane)
	if err != nil {
		sub, _ := AsIssues(err)
		iss = append(iss, sub...)
	}
	if missing {
		return nil, iss
	}
	if img, ok := ref.(ImageRef); ok {
		xs, ys, zs := cfg.X.Shape(), cfg.Y.Shape(), cfg.Z.Shape()
		if !xs.Equal(img.Image.Shape) || !ys.Equal(img.Image.Shape) || !zs.Equal(img.Image.Shape) {
			iss = append(iss, root.Issue(CodeShapeMismatch, map[string]string{
				"x": xs.String(), "y": ys.String(), "z": zs.String(), "image": img.Image.Shape.String(),
			}))
		}
	}
	iss = append(iss, checkSameShape(root, cfg)...)
	if err := iss.orNil(); err != nil {
		return nil, err
	}

	id := cfg.ObjectID
	if id == uuid.Nil {
		id = uuid.New()
	}
	return &AnatomicalCoordinatesImage{
		ObjectID:      id,
		Name:          cfg.Name,
		Description:   cfg.Description,
		Space:         cfg.Space,
		Method:        cfg.Method,
		Reference:     ref,
		X:             cfg.X,
		Y:             cfg.Y,
		Z:             cfg.Z,
		BrainRegion:   cfg.BrainRegion,
		BrainRegionID: cfg.BrainRegionID,
	}, nil
}

func resolveReference(img *imaging.Image, plane *imaging.ImagingPlane) (Reference, error) {
	switch {
	case img != nil && plane != nil:
		return nil, Issues{Root().Issue(CodeImageAndPlane, nil)}
	case img != nil:
		return ImageRef{Image: img}, nil
	case plane != nil:
		return PlaneRef{Plane: plane}, nil
	default:
		return nil, Issues{Root().Issue(CodeImageOrPlaneRequired, nil)}
	}
}

// checkSameShape requires y, z and the optional region grids to share x's
// shape, so that every pixel has a complete record.
func checkSameShape(root PathRef, cfg ImageConfig) Issues {
	want := cfg.X.Shape()
	var iss Issues
	check := func(field string, got grid.Shape) {
		if !got.Equal(want) {
			iss = append(iss, root.Field(field).Issue(CodeShapeInconsistent, map[string]string{
				"field": field, "got": got.String(), "want": want.String(),
			}))
		}
	}
	check("y", cfg.Y.Shape())
	check("z", cfg.Z.Shape())
	if !cfg.BrainRegion.Empty() {
		check("brain_region", cfg.BrainRegion.Shape())
	}
	if !cfg.BrainRegionID.Empty() {
		check("brain_region_id", cfg.BrainRegionID.Shape())
	}
	return iss
}

// Image returns the referenced image, or nil when aligned to a plane.
func (a *AnatomicalCoordinatesImage) Image() *imaging.Image {
	if r, ok := a.Reference.(ImageRef); ok {
		return r.Image
	}
	return nil
}

// ImagingPlane returns the referenced plane, or nil when aligned to an image.
func (a *AnatomicalCoordinatesImage) ImagingPlane() *imaging.ImagingPlane {
	if r, ok := a.Reference.(PlaneRef); ok {
		return r.Plane
	}
	return nil
}

// Shape is the (H, W) shape of the coordinate grids.
func (a *AnatomicalCoordinatesImage) Shape() grid.Shape { return a.X.Shape() }

// CoordinatesAt returns (x[i,j], y[i,j], z[i,j]).
func (a *AnatomicalCoordinatesImage) CoordinatesAt(i, j int) (Point, error) {
	if !a.X.InBounds(i, j) {
		return Point{}, Issues{Root().Issue(CodeOutOfRange, map[string]string{
			"i": strconv.Itoa(i), "j": strconv.Itoa(j), "shape": a.Shape().String(),
		})}
	}
	return Point{a.X.At(i, j), a.Y.At(i, j), a.Z.At(i, j)}, nil
}

// Coordinates returns the whole field as an (H, W, 3) array.
func (a *AnatomicalCoordinatesImage) Coordinates() [][]Point {
	s := a.Shape()
	out := make([][]Point, s[0])
	for i := range out {
		row := make([]Point, s[1])
		for j := range row {
			row[j] = Point{a.X.At(i, j), a.Y.At(i, j), a.Z.At(i, j)}
		}
		out[i] = row
	}
	return out
}
