// Package imaging holds the image and imaging-plane records that per-pixel
// coordinates are aligned to.
package imaging

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/catalystneuro/ndx-anatomical-localization/grid"
)

// Image is an n-dimensional image stored row-major, e.g. (H, W) grayscale or
// (H, W, 3) RGB.
type Image struct {
	ObjectID    uuid.UUID
	Name        string
	Description string
	Shape       grid.Shape
	Data        []float64
}

// NewImage checks that data fills shape.
func NewImage(name string, shape grid.Shape, data []float64) (*Image, error) {
	if name == "" {
		return nil, fmt.Errorf("image: name is required")
	}
	if len(shape) < 2 {
		return nil, fmt.Errorf("image %q: shape %s must have at least 2 dimensions", name, shape)
	}
	if shape.Size() != len(data) {
		return nil, fmt.Errorf("image %q: %d values do not fill shape %s", name, len(data), shape)
	}
	return &Image{
		ObjectID: uuid.New(),
		Name:     name,
		Shape:    append(grid.Shape(nil), shape...),
		Data:     data,
	}, nil
}

// ImagingPlane describes the plane an optical recording was taken in.
type ImagingPlane struct {
	ObjectID    uuid.UUID
	Name        string
	Description string
	Location    string
}

// NewImagingPlane returns a plane with a fresh object id.
func NewImagingPlane(name, description, location string) (*ImagingPlane, error) {
	if name == "" {
		return nil, fmt.Errorf("imaging plane: name is required")
	}
	return &ImagingPlane{ObjectID: uuid.New(), Name: name, Description: description, Location: location}, nil
}
