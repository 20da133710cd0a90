package codec

import (
	"context"
	"fmt"

	anatloc "github.com/catalystneuro/ndx-anatomical-localization"
)

// Localization returns the codec for a Localization. Decoded spaces are added
// to reg before the tables and images that link to them are decoded; targets,
// images and imaging planes must already be in reg.
func Localization(reg *Registry) anatloc.Codec[LocalizationRecord, *anatloc.Localization] {
	return localizationCodec{reg: reg}
}

type localizationCodec struct{ reg *Registry }

func (c localizationCodec) Decode(ctx context.Context, rec LocalizationRecord) (*anatloc.Localization, error) {
	if err := ValidateRecord(rec); err != nil {
		return nil, err
	}
	loc := anatloc.NewLocalization(rec.Name)
	root := anatloc.Root()
	var iss anatloc.Issues
	collect := func(p anatloc.PathRef, err error) {
		if sub, ok := anatloc.AsIssues(err); ok {
			iss = append(iss, anatloc.Rebase(p, sub)...)
			return
		}
		iss = append(iss, anatloc.Issue{Path: p.Pointer(), Code: anatloc.CodeInvalidType, Message: err.Error(), Cause: err})
	}

	for i, sr := range rec.Spaces {
		p := root.Field("spaces").Index(i)
		s, err := Space().Decode(ctx, sr)
		if err == nil {
			err = loc.AddSpace(s)
		}
		if err != nil {
			collect(p, err)
			continue
		}
		c.reg.AddSpace(s)
	}
	if len(iss) > 0 {
		return nil, iss
	}

	tc := CoordinatesTable(c.reg)
	for i, tr := range rec.Tables {
		p := root.Field("anatomical_coordinates_tables").Index(i)
		t, err := tc.Decode(ctx, tr)
		if err == nil {
			err = loc.AddTable(t)
		}
		if err != nil {
			collect(p, err)
		}
	}
	ic := CoordinatesImage(c.reg)
	for i, ir := range rec.Images {
		p := root.Field("anatomical_coordinates_images").Index(i)
		img, err := ic.Decode(ctx, ir)
		if err == nil {
			err = loc.AddImage(img)
		}
		if err != nil {
			collect(p, err)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return loc, nil
}

func (c localizationCodec) Encode(ctx context.Context, loc *anatloc.Localization) (LocalizationRecord, error) {
	if loc == nil {
		return LocalizationRecord{}, fmt.Errorf("codec: nil localization")
	}
	if err := loc.Validate(); err != nil {
		return LocalizationRecord{}, err
	}
	root := anatloc.Root()
	rec := LocalizationRecord{
		NeurodataType: TypeLocalization,
		Name:          loc.Name,
		Spaces:        make([]SpaceRecord, 0, len(loc.Spaces())),
		Tables:        make([]CoordinatesTableRecord, 0, len(loc.Tables())),
		Images:        make([]CoordinatesImageRecord, 0, len(loc.Images())),
	}
	for i, s := range loc.Spaces() {
		sr, err := Space().Encode(ctx, s)
		if err != nil {
			return LocalizationRecord{}, rebaseErr(root.Field("spaces").Index(i), err)
		}
		c.reg.AddSpace(s)
		rec.Spaces = append(rec.Spaces, sr)
	}
	tc := CoordinatesTable(c.reg)
	for i, t := range loc.Tables() {
		tr, err := tc.Encode(ctx, t)
		if err != nil {
			return LocalizationRecord{}, rebaseErr(root.Field("anatomical_coordinates_tables").Index(i), err)
		}
		rec.Tables = append(rec.Tables, tr)
	}
	ic := CoordinatesImage(c.reg)
	for i, img := range loc.Images() {
		ir, err := ic.Encode(ctx, img)
		if err != nil {
			return LocalizationRecord{}, rebaseErr(root.Field("anatomical_coordinates_images").Index(i), err)
		}
		rec.Images = append(rec.Images, ir)
	}
	return rec, nil
}

func rebaseErr(p anatloc.PathRef, err error) error {
	if iss, ok := anatloc.AsIssues(err); ok {
		return anatloc.Rebase(p, iss)
	}
	return fmt.Errorf("%s: %w", p.Pointer(), err)
}
