package codec

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
	"github.com/catalystneuro/ndx-anatomical-localization/grid"
	"github.com/catalystneuro/ndx-anatomical-localization/imaging"
)

// Image returns the codec for images.
func Image() anatloc.Codec[ImageRecord, *imaging.Image] { return imageCodec{} }

type imageCodec struct{}

func (imageCodec) Decode(ctx context.Context, rec ImageRecord) (*imaging.Image, error) {
	if err := ValidateRecord(rec); err != nil {
		return nil, err
	}
	img, err := imaging.NewImage(rec.Name, grid.Shape(rec.Shape), fromFloats(rec.Data))
	if err != nil {
		return nil, err
	}
	img.ObjectID = parseID(rec.ObjectID)
	img.Description = rec.Description
	return img, nil
}

func (imageCodec) Encode(ctx context.Context, img *imaging.Image) (ImageRecord, error) {
	if img == nil {
		return ImageRecord{}, fmt.Errorf("codec: nil image")
	}
	return ImageRecord{
		ObjectID:      img.ObjectID.String(),
		NeurodataType: TypeImage,
		Name:          img.Name,
		Description:   img.Description,
		Shape:         append([]int(nil), img.Shape...),
		Data:          toFloats(img.Data),
	}, nil
}

// ImagingPlane returns the codec for imaging planes.
func ImagingPlane() anatloc.Codec[ImagingPlaneRecord, *imaging.ImagingPlane] { return planeCodec{} }

type planeCodec struct{}

func (planeCodec) Decode(ctx context.Context, rec ImagingPlaneRecord) (*imaging.ImagingPlane, error) {
	if err := ValidateRecord(rec); err != nil {
		return nil, err
	}
	p, err := imaging.NewImagingPlane(rec.Name, rec.Description, rec.Location)
	if err != nil {
		return nil, err
	}
	p.ObjectID = parseID(rec.ObjectID)
	return p, nil
}

func (planeCodec) Encode(ctx context.Context, p *imaging.ImagingPlane) (ImagingPlaneRecord, error) {
	if p == nil {
		return ImagingPlaneRecord{}, fmt.Errorf("codec: nil imaging plane")
	}
	return ImagingPlaneRecord{
		ObjectID:      p.ObjectID.String(),
		NeurodataType: TypeImagingPlane,
		Name:          p.Name,
		Description:   p.Description,
		Location:      p.Location,
	}, nil
}

// CoordinatesImage returns the codec for AnatomicalCoordinatesImage.
func CoordinatesImage(r Resolver) anatloc.Codec[CoordinatesImageRecord, *anatloc.AnatomicalCoordinatesImage] {
	return coordinatesImageCodec{r: r}
}

type coordinatesImageCodec struct{ r Resolver }

func (c coordinatesImageCodec) Decode(ctx context.Context, rec CoordinatesImageRecord) (*anatloc.AnatomicalCoordinatesImage, error) {
	if err := ValidateRecord(rec); err != nil {
		return nil, err
	}
	root := anatloc.Root()
	var iss anatloc.Issues
	cfg := anatloc.ImageConfig{
		ObjectID:    parseID(rec.ObjectID),
		Name:        rec.Name,
		Description: rec.Description,
		Method:      rec.Method,
	}
	if s, ok := c.r.Space(parseID(rec.Space)); ok {
		cfg.Space = s
	} else {
		iss = append(iss, dangling(root.Field("space"), "image", rec.Name, "space", rec.Space))
	}
	if rec.Image != "" {
		if img, ok := c.r.Image(parseID(rec.Image)); ok {
			cfg.Image = img
		} else {
			iss = append(iss, dangling(root.Field("image"), "image", rec.Name, "image", rec.Image))
		}
	}
	if rec.ImagingPlane != "" {
		if p, ok := c.r.ImagingPlane(parseID(rec.ImagingPlane)); ok {
			cfg.ImagingPlane = p
		} else {
			iss = append(iss, dangling(root.Field("imaging_plane"), "image", rec.Name, "imaging_plane", rec.ImagingPlane))
		}
	}
	grids := []struct {
		field string
		rows  [][]float64
		dst   *grid.Grid[float64]
	}{
		{"x", fromFloatRows(rec.X), &cfg.X},
		{"y", fromFloatRows(rec.Y), &cfg.Y},
		{"z", fromFloatRows(rec.Z), &cfg.Z},
	}
	for _, g := range grids {
		v, err := grid.FromRows(g.rows)
		if err != nil {
			iss = append(iss, root.Field(g.field).Issue(anatloc.CodeInvalidType, nil))
			continue
		}
		*g.dst = v
	}
	if rec.BrainRegion != nil {
		v, err := grid.FromRows(rec.BrainRegion)
		if err != nil {
			iss = append(iss, root.Field("brain_region").Issue(anatloc.CodeInvalidType, nil))
		}
		cfg.BrainRegion = v
	}
	if rec.BrainRegionID != nil {
		v, err := grid.FromRows(rec.BrainRegionID)
		if err != nil {
			iss = append(iss, root.Field("brain_region_id").Issue(anatloc.CodeInvalidType, nil))
		}
		cfg.BrainRegionID = v
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return anatloc.NewAnatomicalCoordinatesImage(cfg)
}

func (c coordinatesImageCodec) Encode(ctx context.Context, a *anatloc.AnatomicalCoordinatesImage) (CoordinatesImageRecord, error) {
	if a == nil {
		return CoordinatesImageRecord{}, fmt.Errorf("codec: nil coordinates image")
	}
	root := anatloc.Root()
	if a.Space == nil {
		return CoordinatesImageRecord{}, anatloc.Issues{root.Field("space").Issue(anatloc.CodeRequired, map[string]string{"field": "space"})}
	}
	if _, ok := c.r.Space(a.Space.ObjectID); !ok {
		return CoordinatesImageRecord{}, anatloc.Issues{dangling(root.Field("space"), "image", a.Name, "space", a.Space.Name)}
	}
	rec := CoordinatesImageRecord{
		ObjectID:      a.ObjectID.String(),
		NeurodataType: TypeAnatomicalCoordinatesImage,
		Name:          a.Name,
		Description:   a.Description,
		Method:        a.Method,
		Space:         a.Space.ObjectID.String(),
		X:             toFloatRows(a.X.Rows()),
		Y:             toFloatRows(a.Y.Rows()),
		Z:             toFloatRows(a.Z.Rows()),
	}
	switch ref := a.Reference.(type) {
	case anatloc.ImageRef:
		if !c.has(ref.ObjectID(), true) {
			return CoordinatesImageRecord{}, anatloc.Issues{dangling(root.Field("image"), "image", a.Name, "image", ref.Image.Name)}
		}
		rec.Image = ref.ObjectID().String()
	case anatloc.PlaneRef:
		if !c.has(ref.ObjectID(), false) {
			return CoordinatesImageRecord{}, anatloc.Issues{dangling(root.Field("imaging_plane"), "image", a.Name, "imaging_plane", ref.Plane.Name)}
		}
		rec.ImagingPlane = ref.ObjectID().String()
	default:
		return CoordinatesImageRecord{}, anatloc.Issues{root.Issue(anatloc.CodeImageOrPlaneRequired, nil)}
	}
	if !a.BrainRegion.Empty() {
		rec.BrainRegion = a.BrainRegion.Rows()
	}
	if !a.BrainRegionID.Empty() {
		rec.BrainRegionID = a.BrainRegionID.Rows()
	}
	return rec, nil
}

func (c coordinatesImageCodec) has(id uuid.UUID, image bool) bool {
	if image {
		_, ok := c.r.Image(id)
		return ok
	}
	_, ok := c.r.ImagingPlane(id)
	return ok
}
